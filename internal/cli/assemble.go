package cli

import (
	"io"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"dbgwalk-core/assembly"

	"dbgwalk/internal/output"
	"dbgwalk/internal/writers"
	"dbgwalk/pkg/api"
)

func newAssembleCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assemble [--seed KMER ...] [KMER ...]",
		Short: "Assemble linear contigs outward from seed k-mers",
		Long: `Walk right and then left from each seed k-mer until the path branches,
dead-ends, revisits a k-mer or reaches --max-length, and print the joined
contig. Seeds may be given with --seed or as arguments; a contig reached
from several seeds is printed once.`,
		Example: `  dbgwalk assemble --store counts.db --seed GATTACAGGCTTCAGCATGCA
  dbgwalk assemble --k 15 --reads reads.fa --min-count 2 -o fasta GATTACAGGCTTCAG`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds, _ := cmd.Flags().GetStringSlice("seed")
			seeds = append(seeds, args...)
			if len(seeds) == 0 {
				return usagef("assemble: no seed k-mer")
			}

			st, err := s.openGraph(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			cfg := s.cfg
			asm := assembly.New(st,
				assembly.WithMaxLength(cfg.MaxLength),
				assembly.WithMinCount(cfg.MinCount),
				assembly.WithLooping(cfg.Looping),
			)
			f := asm.Factory()
			if cfg.MaxLength > 0 && cfg.MaxLength < f.K() {
				return usagef("assemble: max-length %d is shorter than k=%d", cfg.MaxLength, f.K())
			}

			var (
				list []api.ContigV1
				seen = make(map[string]struct{})
			)
			for _, seed := range seeds {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				km, err := parseKmer(f, seed)
				if err != nil {
					return err
				}
				c, err := asm.Assemble(km)
				if errors.Cause(err) == assembly.ErrSeedNotInGraph {
					klog.Warningf("assemble: seed %s is not in the graph", seed)
					continue
				}
				if err != nil {
					return err
				}
				rec := output.FromContig(c)
				if _, dup := seen[rec.ID]; dup {
					klog.V(1).Infof("assemble: seed %s repeats %s", seed, rec.ID)
					continue
				}
				seen[rec.ID] = struct{}{}
				list = append(list, rec)
			}
			if err := storeErr(st); err != nil {
				return errors.Wrap(err, "count table read failed during assembly")
			}
			return buffered(cmd, func(w io.Writer) error {
				return writers.WriteContigs(cfg.Output, w, list, cfg.Header)
			})
		},
	}

	fl := cmd.Flags()
	fl.StringSlice("seed", nil, "seed k-mer (repeatable)")
	fl.Int("max-length", 0, "contig length cap in bases (0=none; --looping defaults to 1048576)")
	fl.Uint64("min-count", 1, "ignore k-mers seen fewer times than this")
	fl.Bool("looping", false, "walk without a visited set (cycles run until --max-length)")
	for _, key := range []string{"max-length", "min-count", "looping"} {
		_ = s.v.BindPFlag(key, fl.Lookup(key))
	}
	return cmd
}
