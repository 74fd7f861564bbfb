package traversal

import "dbgwalk-core/kmer"

// Walker is the stepping surface shared by Cursor and NonLoopingCursor.
type Walker interface {
	Step() (base byte, ok bool)
	Position() kmer.Kmer
	SetPosition(node kmer.Kmer) bool
	Degree() int
	Enumerate(q *Queue, filter Filter, maxNeighbors int) int
	Rejects(km kmer.Kmer) bool
	PushFilter(f Filter)
	PopFilter() (Filter, error)
	JoinContigs(a, b string) string
	Direction() string
}

// Cursor walks the graph in direction D one base at a time. It advances
// only while exactly one acceptable neighbor exists.
type Cursor[D Direction] struct {
	*Traverser

	cursor  kmer.Kmer
	filters FilterChain
	dir     D
}

// NewCursor returns a cursor at start over g. The cursor owns a copy of
// filters; later pushes and pops do not affect the caller's chain.
func NewCursor[D Direction](g Graph, start kmer.Kmer, filters FilterChain) *Cursor[D] {
	return &Cursor[D]{
		Traverser: NewTraverser(g),
		cursor:    start,
		filters:   append(FilterChain(nil), filters...),
	}
}

// Step tries to advance by one base. If exactly one neighbor in the walk
// direction is present in the graph and passes the filters, the cursor
// moves there and that neighbor's new base is returned with ok=true.
// With zero or several candidates ok is false and the cursor is unchanged.
func (c *Cursor[D]) Step() (base byte, ok bool) {
	var (
		found int
		next  kmer.Kmer
	)
	for i := 0; i < len(kmer.Alphabet); i++ {
		sym := kmer.Alphabet[i]
		nb := c.dir.neighbor(c.Traverser, c.cursor, sym)
		if c.graph.Count(nb) == 0 || c.filters.Rejects(nb) {
			continue
		}
		found++
		if found > 1 {
			return 0, false
		}
		base, next = sym, nb
	}
	if found == 0 {
		return 0, false
	}
	c.cursor = next
	return base, true
}

// Position returns the k-mer the cursor is at.
func (c *Cursor[D]) Position() kmer.Kmer { return c.cursor }

// SetPosition moves the cursor to node unless the filters reject it.
func (c *Cursor[D]) SetPosition(node kmer.Kmer) bool {
	if c.filters.Rejects(node) {
		return false
	}
	c.cursor = node
	return true
}

// Degree is the unfiltered degree of the current position in direction D.
func (c *Cursor[D]) Degree() int { return c.dir.degree(c.Traverser, c.cursor) }

// Enumerate queues the neighbors of the current position in direction D,
// as Traverser.EnumerateLeft/Right. filter replaces the cursor's own chain;
// nil accepts every neighbor present in the graph.
func (c *Cursor[D]) Enumerate(q *Queue, filter Filter, maxNeighbors int) int {
	return c.dir.enumerate(c.Traverser, c.cursor, q, filter, maxNeighbors)
}

// Rejects reports whether the cursor's filter chain rejects km.
func (c *Cursor[D]) Rejects(km kmer.Kmer) bool { return c.filters.Rejects(km) }

// PushFilter adds f on top of the cursor's filter chain.
func (c *Cursor[D]) PushFilter(f Filter) { c.filters.Push(f) }

// PopFilter removes the most recently pushed filter.
func (c *Cursor[D]) PopFilter() (Filter, error) { return c.filters.Pop() }

// Filters returns the number of filters currently applied.
func (c *Cursor[D]) Filters() int { return c.filters.Len() }

// JoinContigs merges two sequences that overlap by exactly k bases. For a
// rightward cursor the result is a followed by b minus its first k bases;
// for a leftward cursor it is b followed by a minus its first k bases. The
// overlap is not verified.
func (c *Cursor[D]) JoinContigs(a, b string) string { return c.dir.join(c.K(), a, b) }

// Direction names the walk direction ("left" or "right").
func (c *Cursor[D]) Direction() string { return c.dir.String() }

var (
	_ Walker = (*Cursor[Left])(nil)
	_ Walker = (*Cursor[Right])(nil)
)
