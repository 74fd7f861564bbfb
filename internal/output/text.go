package output

import (
	"fmt"
	"io"
	"strings"

	"dbgwalk/pkg/api"
)

// WriteContigsTSV writes one tab-delimited line per contig.
func WriteContigsTSV(w io.Writer, list []api.ContigV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, ContigTSVHeader); err != nil {
			return err
		}
	}
	for _, c := range list {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\t%s\t%s\n",
			c.ID, c.Seed, c.Length, c.LeftSteps, c.RightSteps, c.LeftStop, c.RightStop, c.Seq,
		); err != nil {
			return err
		}
	}
	return nil
}

// WriteContigsText prints a short block per contig for reading at a terminal.
func WriteContigsText(w io.Writer, list []api.ContigV1, header bool) error {
	for i, c := range list {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s  seed=%s  length=%d\n  left:  %d steps, %s\n  right: %d steps, %s\n  %s\n",
			c.ID, c.Seed, c.Length, c.LeftSteps, c.LeftStop, c.RightSteps, c.RightStop, c.Seq,
		); err != nil {
			return err
		}
	}
	return nil
}

// WriteNodesTSV writes one tab-delimited line per node; neighbor lists are
// comma separated.
func WriteNodesTSV(w io.Writer, list []api.NodeV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, NodeTSVHeader); err != nil {
			return err
		}
	}
	for _, n := range list {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			n.Kmer, n.Canonical, n.Count, n.InDegree, n.OutDegree, csv(n.Left), csv(n.Right),
		); err != nil {
			return err
		}
	}
	return nil
}

func csv(xs []string) string {
	if len(xs) == 0 {
		return "-"
	}
	return strings.Join(xs, ",")
}
