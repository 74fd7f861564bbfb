package cli

import (
	"io"

	"github.com/spf13/cobra"

	"dbgwalk-core/traversal"

	"dbgwalk/internal/output"
	"dbgwalk/internal/writers"
	"dbgwalk/pkg/api"
)

func newDegreeCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "degree KMER [KMER ...]",
		Short:   "Print the count and in/out degree of k-mers",
		Example: `  dbgwalk degree --snapshot counts.snap GATTACAGGCTTCAGCATGCA`,
		Args:    usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.inspect(cmd, args, false)
		},
	}
}

func newNeighborsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "neighbors KMER [KMER ...]",
		Short:   "Print the left and right graph neighbors of k-mers",
		Example: `  dbgwalk neighbors --store counts.db -o json GATTACAGGCTTCAGCATGCA`,
		Args:    usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.inspect(cmd, args, true)
		},
	}
}

func (s *session) inspect(cmd *cobra.Command, args []string, neighbors bool) error {
	if _, ok := writers.NodeWriters[s.cfg.Output]; !ok {
		return usagef("output %q is not available for k-mer reports", s.cfg.Output)
	}
	st, err := s.openGraph(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	tr := traversal.NewTraverser(st)
	list := make([]api.NodeV1, 0, len(args))
	for _, a := range args {
		km, err := parseKmer(tr.Factory(), a)
		if err != nil {
			return err
		}
		list = append(list, output.Node(tr, km, neighbors))
	}
	if err := storeErr(st); err != nil {
		return err
	}
	return buffered(cmd, func(w io.Writer) error {
		return writers.WriteNodes(s.cfg.Output, w, list, s.cfg.Header)
	})
}
