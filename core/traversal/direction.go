package traversal

import "dbgwalk-core/kmer"

// Left and Right are the two walk directions. They are used only as type
// arguments; a cursor's direction is fixed by its type.
type (
	Left  struct{}
	Right struct{}
)

// Direction is the closed set {Left, Right}. Each member selects the
// extension, degree and contig-join rule for a cursor.
type Direction interface {
	Left | Right

	neighbor(t *Traverser, node kmer.Kmer, base byte) kmer.Kmer
	degree(t *Traverser, node kmer.Kmer) int
	enumerate(t *Traverser, node kmer.Kmer, q *Queue, filter Filter, maxNeighbors int) int
	join(k int, a, b string) string
	String() string
}

func (Left) neighbor(t *Traverser, node kmer.Kmer, base byte) kmer.Kmer { return t.Left(node, base) }
func (Left) degree(t *Traverser, node kmer.Kmer) int                  { return t.DegreeLeft(node) }
func (Left) String() string                                            { return "left" }

func (Left) enumerate(t *Traverser, node kmer.Kmer, q *Queue, filter Filter, maxNeighbors int) int {
	return t.EnumerateLeft(node, q, filter, maxNeighbors)
}

// A leftward walk accumulates sequence ahead of what it started from, so b
// leads and a's shared k-mer prefix is dropped.
func (Left) join(k int, a, b string) string { return b + a[k:] }

func (Right) neighbor(t *Traverser, node kmer.Kmer, base byte) kmer.Kmer { return t.Right(node, base) }
func (Right) degree(t *Traverser, node kmer.Kmer) int                  { return t.DegreeRight(node) }
func (Right) String() string                                            { return "right" }

func (Right) enumerate(t *Traverser, node kmer.Kmer, q *Queue, filter Filter, maxNeighbors int) int {
	return t.EnumerateRight(node, q, filter, maxNeighbors)
}

func (Right) join(k int, a, b string) string { return a + b[k:] }
