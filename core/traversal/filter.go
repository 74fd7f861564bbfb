package traversal

import (
	"github.com/pkg/errors"

	"dbgwalk-core/kmer"
)

// ErrEmptyFilterChain is returned when popping a chain with no filters.
var ErrEmptyFilterChain = errors.New("traversal: pop from empty filter chain")

// Filter reports whether a candidate k-mer should be rejected.
type Filter func(km kmer.Kmer) bool

// FilterChain is an ordered stack of filters. A candidate is rejected when
// any filter rejects it.
type FilterChain []Filter

// Rejects reports whether any filter in the chain rejects km.
func (c FilterChain) Rejects(km kmer.Kmer) bool {
	for _, f := range c {
		if f(km) {
			return true
		}
	}
	return false
}

// Push adds f to the end of the chain.
func (c *FilterChain) Push(f Filter) { *c = append(*c, f) }

// Pop removes and returns the most recently pushed filter.
func (c *FilterChain) Pop() (Filter, error) {
	n := len(*c)
	if n == 0 {
		return nil, ErrEmptyFilterChain
	}
	f := (*c)[n-1]
	(*c)[n-1] = nil
	*c = (*c)[:n-1]
	return f, nil
}

// Len is the number of filters in the chain.
func (c FilterChain) Len() int { return len(c) }

// VisitedFilter rejects k-mers already in v.
func VisitedFilter(v *VisitedSet) Filter {
	return func(km kmer.Kmer) bool { return v.Contains(km) }
}

// StopAt rejects the given k-mers, on either strand.
func StopAt(stops ...kmer.Kmer) Filter {
	set := make(map[uint64]struct{}, len(stops))
	for _, s := range stops {
		set[s.Canonical()] = struct{}{}
	}
	return func(km kmer.Kmer) bool {
		_, hit := set[km.Canonical()]
		return hit
	}
}

// MinCount rejects k-mers whose abundance in g is below n.
func MinCount(g Graph, n uint64) Filter {
	return func(km kmer.Kmer) bool { return g.Count(km) < n }
}
