// Package assembly builds linear contigs by walking left and right from a
// seed k-mer until both walks stop.
package assembly

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"dbgwalk-core/kmer"
	"dbgwalk-core/traversal"
)

// DefaultLoopingMaxLength caps contigs built with WithLooping when no
// explicit maximum was given; a plain cursor never stops on a cycle.
const DefaultLoopingMaxLength = 1 << 20

// ErrSeedNotInGraph is returned when the seed k-mer has zero count.
var ErrSeedNotInGraph = errors.New("assembly: seed k-mer not in graph")

// StopReason says why one side of an assembly ended.
type StopReason int

const (
	StopDeadEnd   StopReason = iota // no neighbor in the graph
	StopBranch                      // two or more acceptable neighbors
	StopVisited                     // every neighbor was already walked
	StopFiltered                    // every neighbor was rejected, some by a filter
	StopMaxLength                   // contig reached the length cap
)

func (r StopReason) String() string {
	switch r {
	case StopDeadEnd:
		return "dead-end"
	case StopBranch:
		return "branch"
	case StopVisited:
		return "visited"
	case StopFiltered:
		return "filtered"
	case StopMaxLength:
		return "max-length"
	default:
		return "unknown"
	}
}

// Contig is one assembled sequence and how each side of it ended.
type Contig struct {
	Seed       string
	Seq        string
	LeftSteps  int
	RightSteps int
	LeftStop   StopReason
	RightStop  StopReason
	Visited    int // distinct k-mers marked visited; 0 with WithLooping
}

// Assembler walks one graph. It keeps no state between calls.
type Assembler struct {
	graph     traversal.Graph
	tr        *traversal.Traverser
	filters   traversal.FilterChain
	maxLength int
	looping   bool
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithMaxLength caps the contig length in bases; n <= 0 means no cap.
func WithMaxLength(n int) Option { return func(a *Assembler) { a.maxLength = n } }

// WithFilters adds filters applied by both walks.
func WithFilters(fs ...traversal.Filter) Option {
	return func(a *Assembler) { a.filters = append(a.filters, fs...) }
}

// WithMinCount rejects k-mers seen fewer than n times. n <= 1 is a no-op.
func WithMinCount(n uint64) Option {
	return func(a *Assembler) {
		if n > 1 {
			a.filters = append(a.filters, traversal.MinCount(a.graph, n))
		}
	}
}

// WithLooping walks with plain cursors that do not track visited k-mers.
func WithLooping(on bool) Option { return func(a *Assembler) { a.looping = on } }

// New returns an Assembler over g.
func New(g traversal.Graph, opts ...Option) *Assembler {
	a := &Assembler{graph: g, tr: traversal.NewTraverser(g)}
	for _, o := range opts {
		o(a)
	}
	if a.looping && a.maxLength <= 0 {
		a.maxLength = DefaultLoopingMaxLength
	}
	return a
}

// Factory returns the k-mer factory for the graph's k.
func (a *Assembler) Factory() kmer.Factory { return a.tr.Factory() }

// Assemble extends seed rightward, then leftward, and joins the two halves.
func (a *Assembler) Assemble(seed kmer.Kmer) (Contig, error) {
	return a.assemble(seed, nil)
}

// AssembleString is Assemble for a seed given as a nucleotide string.
func (a *Assembler) AssembleString(seed string) (Contig, error) {
	km, err := a.Factory().Encode(seed)
	if err != nil {
		return Contig{}, err
	}
	return a.Assemble(km)
}

// AssembleUntil is Assemble with both walks refusing to enter any of stops.
func (a *Assembler) AssembleUntil(seed kmer.Kmer, stops ...kmer.Kmer) (Contig, error) {
	if len(stops) == 0 {
		return a.Assemble(seed)
	}
	return a.assemble(seed, traversal.StopAt(stops...))
}

func (a *Assembler) assemble(seed kmer.Kmer, scoped traversal.Filter) (Contig, error) {
	f := a.Factory()
	if a.graph.Count(seed) == 0 {
		return Contig{}, errors.Wrap(ErrSeedNotInGraph, f.Decode(seed))
	}

	var (
		visited     *traversal.VisitedSet
		right, left traversal.Walker
	)
	if a.looping {
		right = traversal.NewCursor[traversal.Right](a.graph, seed, a.filters)
		left = traversal.NewCursor[traversal.Left](a.graph, seed, a.filters)
	} else {
		visited = traversal.NewVisitedSet()
		right = traversal.NewNonLoopingCursor[traversal.Right](a.graph, seed, a.filters, visited)
		left = traversal.NewNonLoopingCursor[traversal.Left](a.graph, seed, a.filters, visited)
	}
	if scoped != nil {
		right.PushFilter(scoped)
		left.PushFilter(scoped)
	}

	budget := -1
	if a.maxLength > 0 {
		budget = a.maxLength - f.K()
		if budget < 0 {
			budget = 0
		}
	}

	seedSeq := f.Decode(seed)
	ctg := Contig{Seed: seedSeq}

	rbases, rstop := a.walk(right, visited, budget)
	if budget >= 0 {
		budget -= len(rbases)
	}
	lbases, lstop := a.walk(left, visited, budget)

	if scoped != nil {
		for _, w := range []traversal.Walker{right, left} {
			if _, err := w.PopFilter(); err != nil {
				return Contig{}, err
			}
		}
	}

	reverse(lbases)
	ctg.Seq = right.JoinContigs(string(lbases)+seedSeq, seedSeq+string(rbases))
	ctg.RightSteps, ctg.RightStop = len(rbases), rstop
	ctg.LeftSteps, ctg.LeftStop = len(lbases), lstop
	if visited != nil {
		ctg.Visited = visited.Len()
	}
	klog.V(2).Infof("assembled %d bp from %s (left %d/%s, right %d/%s)",
		len(ctg.Seq), seedSeq, ctg.LeftSteps, ctg.LeftStop, ctg.RightSteps, ctg.RightStop)
	return ctg, nil
}

// walk steps w until it stops or budget (if >= 0) bases have been produced.
func (a *Assembler) walk(w traversal.Walker, visited *traversal.VisitedSet, budget int) ([]byte, StopReason) {
	var bases []byte
	for budget < 0 || len(bases) < budget {
		b, ok := w.Step()
		if !ok {
			return bases, a.classify(w, visited)
		}
		bases = append(bases, b)
	}
	return bases, StopMaxLength
}

// classify inspects the neighborhood of a stopped walker. A stop with two
// or more acceptable neighbors is a branch; otherwise every neighbor was
// rejected, and the stop is visited only if all of them had been walked.
func (a *Assembler) classify(w traversal.Walker, visited *traversal.VisitedSet) StopReason {
	var q traversal.Queue
	w.Enumerate(&q, nil, len(kmer.Alphabet))
	all := q.Slice()
	if len(all) == 0 {
		return StopDeadEnd
	}
	accepted, walked := 0, 0
	for _, nb := range all {
		switch {
		case !w.Rejects(nb):
			accepted++
		case visited != nil && visited.Contains(nb):
			walked++
		}
	}
	switch {
	case accepted > 1:
		return StopBranch
	case walked == len(all):
		return StopVisited
	default:
		return StopFiltered
	}
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
