package output

import (
	"dbgwalk-core/kmer"
	"dbgwalk-core/traversal"

	"dbgwalk/pkg/api"
)

// Node reports the count and degrees of km; neighbors adds the neighbor
// k-mers in alphabet order, each spelled on km's strand.
func Node(tr *traversal.Traverser, km kmer.Kmer, neighbors bool) api.NodeV1 {
	f := tr.Factory()
	n := api.NodeV1{
		Kmer:      f.Decode(km),
		Canonical: f.Decode(km),
		Count:     tr.Graph().Count(km),
		InDegree:  tr.DegreeLeft(km),
		OutDegree: tr.DegreeRight(km),
	}
	if !km.IsForward() {
		n.Canonical = f.DecodeRC(km)
	}
	if !neighbors {
		return n
	}
	var q traversal.Queue
	tr.EnumerateLeft(km, &q, nil, len(kmer.Alphabet))
	n.Left = decodeAll(f, &q)
	tr.EnumerateRight(km, &q, nil, len(kmer.Alphabet))
	n.Right = decodeAll(f, &q)
	return n
}

func decodeAll(f kmer.Factory, q *traversal.Queue) []string {
	var out []string
	for km, ok := q.Pop(); ok; km, ok = q.Pop() {
		out = append(out, f.Decode(km))
	}
	return out
}
