package output

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"dbgwalk-core/assembly"

	"dbgwalk/pkg/api"
)

// ContigID names a contig by its sequence, so the same contig gets the same
// ID across runs and seeds.
func ContigID(seq string) string {
	sum := blake3.Sum256([]byte(seq))
	return "contig_" + hex.EncodeToString(sum[:6])
}

// FromContig converts an assembled contig to its wire form.
func FromContig(c assembly.Contig) api.ContigV1 {
	return api.ContigV1{
		ID:         ContigID(c.Seq),
		Seed:       c.Seed,
		Length:     len(c.Seq),
		LeftSteps:  c.LeftSteps,
		RightSteps: c.RightSteps,
		LeftStop:   c.LeftStop.String(),
		RightStop:  c.RightStop.String(),
		Seq:        c.Seq,
	}
}
