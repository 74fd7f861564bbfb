package traversal

import (
	"fmt"

	"dbgwalk-core/kmer"
)

// Traverser computes extensions, neighbors and degree over one Graph.
// It holds no per-walk state and may be shared.
type Traverser struct {
	graph       Graph
	factory     kmer.Factory
	rcLeftShift uint
}

// NewTraverser binds a Traverser to g. It panics if g reports a k outside
// 1..kmer.MaxK, which no valid store can.
func NewTraverser(g Graph) *Traverser {
	f, err := kmer.NewFactory(g.KSize())
	if err != nil {
		panic(fmt.Sprintf("traversal: %v", err))
	}
	return &Traverser{
		graph:       g,
		factory:     f,
		rcLeftShift: uint(2*f.K() - 2),
	}
}

// Graph returns the oracle the Traverser queries.
func (t *Traverser) Graph() Graph { return t.graph }

// Factory returns the k-mer factory for the graph's k.
func (t *Traverser) Factory() kmer.Factory { return t.factory }

// K returns the k-mer length.
func (t *Traverser) K() int { return t.factory.K() }

// Left returns the k-mer obtained by prepending base to node.
func (t *Traverser) Left(node kmer.Kmer, base byte) kmer.Kmer {
	fwd := node.Fwd()>>2 | kmer.TwoBit(base)<<t.rcLeftShift
	rc := (node.RC()<<2)&t.factory.Mask() | kmer.TwoBitComp(base)
	return t.factory.Build(fwd, rc)
}

// Right returns the k-mer obtained by appending base to node.
func (t *Traverser) Right(node kmer.Kmer, base byte) kmer.Kmer {
	fwd := (node.Fwd()<<2)&t.factory.Mask() | kmer.TwoBit(base)
	rc := node.RC()>>2 | kmer.TwoBitComp(base)<<t.rcLeftShift
	return t.factory.Build(fwd, rc)
}

// EnumerateLeft pushes onto q every left neighbor of node present in the
// graph and not rejected by filter (nil accepts all), in alphabet order.
// It returns as soon as more than maxNeighbors have been found, so callers
// that only need to detect a branch can pass 1.
func (t *Traverser) EnumerateLeft(node kmer.Kmer, q *Queue, filter Filter, maxNeighbors int) int {
	return t.enumerate(t.Left, node, q, filter, maxNeighbors)
}

// EnumerateRight is EnumerateLeft for right neighbors.
func (t *Traverser) EnumerateRight(node kmer.Kmer, q *Queue, filter Filter, maxNeighbors int) int {
	return t.enumerate(t.Right, node, q, filter, maxNeighbors)
}

func (t *Traverser) enumerate(
	extend func(kmer.Kmer, byte) kmer.Kmer,
	node kmer.Kmer,
	q *Queue,
	filter Filter,
	maxNeighbors int,
) int {
	found := 0
	for i := 0; i < len(kmer.Alphabet); i++ {
		nb := extend(node, kmer.Alphabet[i])
		if t.graph.Count(nb) == 0 || (filter != nil && filter(nb)) {
			continue
		}
		q.Push(nb)
		found++
		if found > maxNeighbors {
			return found
		}
	}
	return found
}

// DegreeLeft counts the left neighbors of node present in the graph.
func (t *Traverser) DegreeLeft(node kmer.Kmer) int {
	return t.degree(t.Left, node)
}

// DegreeRight counts the right neighbors of node present in the graph.
func (t *Traverser) DegreeRight(node kmer.Kmer) int {
	return t.degree(t.Right, node)
}

// Degree is DegreeLeft + DegreeRight.
func (t *Traverser) Degree(node kmer.Kmer) int {
	return t.DegreeRight(node) + t.DegreeLeft(node)
}

func (t *Traverser) degree(extend func(kmer.Kmer, byte) kmer.Kmer, node kmer.Kmer) int {
	d := 0
	for i := 0; i < len(kmer.Alphabet); i++ {
		if t.graph.Count(extend(node, kmer.Alphabet[i])) > 0 {
			d++
		}
	}
	return d
}
