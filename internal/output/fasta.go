package output

import (
	"fmt"
	"io"

	"dbgwalk/pkg/api"
)

const fastaLineWidth = 60

// WriteContigsFASTA writes contigs as FASTA records wrapped at 60 columns.
func WriteContigsFASTA(w io.Writer, list []api.ContigV1) error {
	for _, c := range list {
		if _, err := fmt.Fprintf(w, ">%s seed=%s len=%d left_stop=%s right_stop=%s\n",
			c.ID, c.Seed, c.Length, c.LeftStop, c.RightStop,
		); err != nil {
			return err
		}
		for s := c.Seq; len(s) > 0; {
			n := fastaLineWidth
			if len(s) < n {
				n = len(s)
			}
			if _, err := fmt.Fprintln(w, s[:n]); err != nil {
				return err
			}
			s = s[n:]
		}
	}
	return nil
}
