package traversal

import "dbgwalk-core/kmer"

// Graph is the read-only count oracle the traversal is built on.
type Graph interface {
	// Count returns the abundance of km; zero means absent.
	Count(km kmer.Kmer) uint64
	// KSize is the k-mer length, fixed for the graph's lifetime.
	KSize() int
}
