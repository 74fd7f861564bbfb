package traversal

import "dbgwalk-core/kmer"

// Queue is a FIFO of k-mers filled by neighbor enumeration.
type Queue struct {
	items []kmer.Kmer
	head  int
}

// Push appends km.
func (q *Queue) Push(km kmer.Kmer) { q.items = append(q.items, km) }

// Pop removes and returns the oldest k-mer; ok is false when empty.
func (q *Queue) Pop() (km kmer.Kmer, ok bool) {
	if q.head >= len(q.items) {
		return kmer.Kmer{}, false
	}
	km = q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
	}
	return km, true
}

// Len is the number of queued k-mers.
func (q *Queue) Len() int { return len(q.items) - q.head }

// Slice returns the queued k-mers, oldest first, without consuming them.
func (q *Queue) Slice() []kmer.Kmer {
	return append([]kmer.Kmer(nil), q.items[q.head:]...)
}
