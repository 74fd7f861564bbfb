package traversal

import (
	"github.com/plan-systems/klog"

	"dbgwalk-core/kmer"
)

// NonLoopingCursor is a Cursor that refuses to enter any k-mer in a shared
// VisitedSet, and adds every position it steps from to that set.
type NonLoopingCursor[D Direction] struct {
	*Cursor[D]

	visited *VisitedSet
}

// NewNonLoopingCursor returns a cursor at start that shares visited with
// any other cursor of the same assembly. A visited-set filter is pushed on
// top of filters.
func NewNonLoopingCursor[D Direction](g Graph, start kmer.Kmer, filters FilterChain, visited *VisitedSet) *NonLoopingCursor[D] {
	c := NewCursor[D](g, start, filters)
	c.PushFilter(VisitedFilter(visited))
	return &NonLoopingCursor[D]{Cursor: c, visited: visited}
}

// Step marks the current position visited, then steps as Cursor.Step.
// The position is marked even when the step stops.
func (c *NonLoopingCursor[D]) Step() (byte, bool) {
	c.visited.Add(c.cursor)
	klog.V(4).Infof("%s step; visited %d", c.dir, c.visited.Len())
	return c.Cursor.Step()
}

// Visited returns the shared visited set.
func (c *NonLoopingCursor[D]) Visited() *VisitedSet { return c.visited }

var (
	_ Walker = (*NonLoopingCursor[Left])(nil)
	_ Walker = (*NonLoopingCursor[Right])(nil)
)
