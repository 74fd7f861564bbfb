// Package kmer holds the canonical k-mer value type and the factory that
// builds, encodes and decodes it for a fixed k.
package kmer

import (
	"strings"

	"github.com/pkg/errors"
)

// MaxK is the largest k whose 2k-bit encoding fits a uint64.
const MaxK = 32

var (
	ErrKSize       = errors.New("kmer: k must be in 1..32")
	ErrLength      = errors.New("kmer: sequence length does not match k")
	ErrInvalidBase = errors.New("kmer: sequence contains a non-ACGT base")
)

// Kmer is a k-length window held as its forward 2-bit encoding and the
// encoding of its reverse complement. The two hashes always describe the same
// window; values are only produced by a Factory or by Traverser extension.
type Kmer struct {
	fwd uint64
	rc  uint64
}

// Fwd returns the forward-strand hash.
func (km Kmer) Fwd() uint64 { return km.fwd }

// RC returns the reverse-complement hash.
func (km Kmer) RC() uint64 { return km.rc }

// Canonical is the strand-independent identity: min(Fwd, RC).
func (km Kmer) Canonical() uint64 {
	if km.rc < km.fwd {
		return km.rc
	}
	return km.fwd
}

// IsForward reports whether the forward strand is the canonical one.
func (km Kmer) IsForward() bool { return km.fwd <= km.rc }

// Factory builds k-mers of one fixed length.
type Factory struct {
	k    int
	mask uint64
}

// NewFactory returns a Factory for k in 1..MaxK.
func NewFactory(k int) (Factory, error) {
	if k < 1 || k > MaxK {
		return Factory{}, errors.Wrapf(ErrKSize, "got %d", k)
	}
	var mask uint64
	for i := 0; i < k; i++ {
		mask = mask<<2 | 3
	}
	return Factory{k: k, mask: mask}, nil
}

// K returns the k-mer length.
func (f Factory) K() int { return f.k }

// Mask returns the 2k-bit mask.
func (f Factory) Mask() uint64 { return f.mask }

// Build pairs a forward and reverse-complement hash into a Kmer. Both are
// truncated to 2k bits; no other validation is done.
func (f Factory) Build(fwd, rc uint64) Kmer {
	return Kmer{fwd: fwd & f.mask, rc: rc & f.mask}
}

// Encode converts a k-length nucleotide string into a Kmer.
func (f Factory) Encode(s string) (Kmer, error) {
	if len(s) != f.k {
		return Kmer{}, errors.Wrapf(ErrLength, "%q has length %d, k=%d", s, len(s), f.k)
	}
	var fwd, rc uint64
	for i := 0; i < f.k; i++ {
		b := s[i]
		if !IsBase(b) {
			return Kmer{}, errors.Wrapf(ErrInvalidBase, "%q at %d", b, i)
		}
		fwd = fwd<<2 | TwoBit(b)
		rc = rc>>2 | TwoBitComp(b)<<uint(2*f.k-2)
	}
	return Kmer{fwd: fwd, rc: rc}, nil
}

// MustEncode is Encode for literals known to be valid; it panics otherwise.
func (f Factory) MustEncode(s string) Kmer {
	km, err := f.Encode(s)
	if err != nil {
		panic(err)
	}
	return km
}

// Decode returns the forward-strand sequence of km.
func (f Factory) Decode(km Kmer) string {
	return f.decode(km.fwd)
}

// DecodeRC returns the reverse-complement sequence of km.
func (f Factory) DecodeRC(km Kmer) string {
	return f.decode(km.rc)
}

func (f Factory) decode(h uint64) string {
	var sb strings.Builder
	sb.Grow(f.k)
	for i := f.k - 1; i >= 0; i-- {
		sb.WriteByte(Base(h >> uint(2*i)))
	}
	return sb.String()
}

// Each calls fn for every k-length window of seq that contains only ACGT,
// in order of position. Windows spanning any other symbol are skipped and
// the rolling state restarts after it.
func (f Factory) Each(seq []byte, fn func(pos int, km Kmer)) {
	var (
		fwd, rc uint64
		run     int
		shift   = uint(2*f.k - 2)
	)
	for i, b := range seq {
		if !IsBase(b) {
			run = 0
			fwd, rc = 0, 0
			continue
		}
		fwd = (fwd<<2 | TwoBit(b)) & f.mask
		rc = rc>>2 | TwoBitComp(b)<<shift
		run++
		if run >= f.k {
			fn(i-f.k+1, Kmer{fwd: fwd, rc: rc})
		}
	}
}
