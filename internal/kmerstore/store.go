// Package kmerstore holds k-mer count tables that serve as the graph
// oracle for traversal. Counts are keyed by canonical hash, so a k-mer and
// its reverse complement share one entry.
package kmerstore

import (
	"github.com/pkg/errors"

	"dbgwalk-core/kmer"
	"dbgwalk-core/traversal"
)

var ErrKSizeMismatch = errors.New("kmerstore: k does not match the stored table")

// Store is a count table usable as a traversal.Graph.
type Store interface {
	traversal.Graph

	// AddBatch adds counts keyed by canonical hash.
	AddBatch(counts map[uint64]uint64) error
	// ForEach calls fn for every entry; order is store-specific.
	ForEach(fn func(hash, count uint64) error) error
	// Len is the number of distinct canonical k-mers.
	Len() int
	Close() error
}

// Add counts a single k-mer n times.
func Add(s Store, km kmer.Kmer, n uint64) error {
	return s.AddBatch(map[uint64]uint64{km.Canonical(): n})
}

// AddSequence counts every ACGT-only k-mer of seq once.
func AddSequence(s Store, seq []byte) error {
	f, err := kmer.NewFactory(s.KSize())
	if err != nil {
		return err
	}
	batch := make(map[uint64]uint64)
	f.Each(seq, func(_ int, km kmer.Kmer) { batch[km.Canonical()]++ })
	return s.AddBatch(batch)
}
