package traversal

import (
	"testing"

	"dbgwalk-core/kmer"
)

// testGraph is a count table keyed either by canonical hash (both strands
// present, like a real store) or by forward hash only (strand-specific,
// which keeps small fixtures free of accidental reverse-complement edges).
type testGraph struct {
	k         int
	canonical bool
	counts    map[uint64]uint64
}

func (g *testGraph) KSize() int { return g.k }

func (g *testGraph) Count(km kmer.Kmer) uint64 { return g.counts[g.key(km)] }

func (g *testGraph) key(km kmer.Kmer) uint64 {
	if g.canonical {
		return km.Canonical()
	}
	return km.Fwd()
}

func (g *testGraph) add(f kmer.Factory, seq string) {
	f.Each([]byte(seq), func(_ int, km kmer.Kmer) { g.counts[g.key(km)]++ })
}

// strandGraph builds a forward-only graph from linear sequences.
func strandGraph(t *testing.T, k int, seqs ...string) (*testGraph, kmer.Factory) {
	t.Helper()
	f, err := kmer.NewFactory(k)
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	g := &testGraph{k: k, counts: map[uint64]uint64{}}
	for _, s := range seqs {
		g.add(f, s)
	}
	return g, f
}

// cycleGraph builds a forward-only graph from a circular sequence.
func cycleGraph(t *testing.T, k int, ring string) (*testGraph, kmer.Factory) {
	t.Helper()
	return strandGraph(t, k, ring+ring[:k-1])
}

// canonicalGraph builds a strand-agnostic graph.
func canonicalGraph(t *testing.T, k int, seqs ...string) (*testGraph, kmer.Factory) {
	t.Helper()
	g, f := strandGraph(t, k)
	g.canonical = true
	for _, s := range seqs {
		g.add(f, s)
	}
	return g, f
}

// walk steps w until it stops and returns the bases produced.
func walk(w Walker, limit int) string {
	var out []byte
	for i := 0; i < limit; i++ {
		b, ok := w.Step()
		if !ok {
			break
		}
		out = append(out, b)
	}
	return string(out)
}

// zero is the all-A k-mer, handy when the start position does not matter.
func (g *testGraph) zero() kmer.Kmer {
	f, _ := kmer.NewFactory(g.k)
	return f.Build(0, f.Mask())
}
