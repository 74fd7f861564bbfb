// core/kmer/alphabet.go
package kmer

// Alphabet is the fixed nucleotide alphabet, in the iteration order used by
// every neighbor enumeration, degree count and cursor step.
const Alphabet = "ACGT"

// twobit maps a base to its 2-bit code (A=0 C=1 G=2 T=3); -1 for anything else.
var twobit [256]int8

var complement [256]byte

func init() {
	for i := range twobit {
		twobit[i] = -1
	}
	for code, b := range []byte(Alphabet) {
		twobit[b] = int8(code)
		twobit[b|0x20] = int8(code) // lowercase
	}

	complement['A'] = 'T'; complement['C'] = 'G'; complement['G'] = 'C'; complement['T'] = 'A'
	complement['a'] = 't'; complement['c'] = 'g'; complement['g'] = 'c'; complement['t'] = 'a'
	complement['N'] = 'N'; complement['n'] = 'n'
}

// IsBase reports whether b is one of A/C/G/T (either case).
func IsBase(b byte) bool { return twobit[b] >= 0 }

// TwoBit returns the 2-bit code of b. Non-ACGT input yields 0 (treated as A);
// callers that care must check IsBase first.
func TwoBit(b byte) uint64 {
	c := twobit[b]
	if c < 0 {
		return 0
	}
	return uint64(c)
}

// TwoBitComp returns the 2-bit code of b's Watson-Crick complement.
func TwoBitComp(b byte) uint64 { return 3 - TwoBit(b) }

// Base returns the upper-case base for a 2-bit code.
func Base(code uint64) byte { return Alphabet[code&3] }

// RevComp returns the reverse complement of seq. Unknown symbols become 'N'.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}
