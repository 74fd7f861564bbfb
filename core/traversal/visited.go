package traversal

import (
	"github.com/emirpasic/gods/sets/hashset"

	"dbgwalk-core/kmer"
)

// VisitedSet records k-mers by canonical identity. It only grows during an
// assembly and is shared by pointer between the cursors of that assembly.
// It is not safe for concurrent use.
type VisitedSet struct {
	set *hashset.Set
}

// NewVisitedSet returns an empty set.
func NewVisitedSet() *VisitedSet {
	return &VisitedSet{set: hashset.New()}
}

// Add marks km visited.
func (v *VisitedSet) Add(km kmer.Kmer) { v.set.Add(km.Canonical()) }

// Contains reports whether km, or its reverse complement, was visited.
func (v *VisitedSet) Contains(km kmer.Kmer) bool { return v.set.Contains(km.Canonical()) }

// Len is the number of distinct k-mers visited.
func (v *VisitedSet) Len() int { return v.set.Size() }

// Hashes returns the canonical hashes in the set, in no particular order.
func (v *VisitedSet) Hashes() []uint64 {
	vals := v.set.Values()
	out := make([]uint64, 0, len(vals))
	for _, x := range vals {
		out = append(out, x.(uint64))
	}
	return out
}
