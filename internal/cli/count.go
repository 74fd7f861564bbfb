package cli

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"dbgwalk-core/kmer"

	"dbgwalk/internal/count"
	"dbgwalk/internal/kmerstore"
	"dbgwalk/internal/output"
)

type countReport struct {
	K        int    `json:"k" yaml:"k"`
	Records  int64  `json:"records" yaml:"records"`
	Bases    int64  `json:"bases" yaml:"bases"`
	Kmers    int64  `json:"kmers" yaml:"kmers"`
	Distinct int    `json:"distinct" yaml:"distinct"`
	Store    string `json:"store,omitempty" yaml:"store,omitempty"`
	Snapshot string `json:"snapshot,omitempty" yaml:"snapshot,omitempty"`
}

func newCountCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "count [reads.fa[.gz] ...]",
		Short: "Count canonical k-mers from FASTA reads",
		Long: `Count every canonical k-mer of the given FASTA files (and --reads) into a
badger store (--store) and/or a snapshot file (--snapshot). k-mers
containing bases other than ACGT are skipped.`,
		Example: `  dbgwalk count --k 25 --store counts.db reads.fa.gz
  zcat reads.fa.gz | dbgwalk count --k 25 --snapshot counts.snap -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := s.cfg
			paths := append(append([]string(nil), args...), cfg.Reads...)
			if len(paths) == 0 {
				return usagef("count: no FASTA input")
			}
			if _, err := kmer.NewFactory(cfg.K); err != nil {
				return usage(err)
			}
			st, err := openCountTarget(cfg.Store, cfg.Snapshot, s.kHint(cmd), cfg.K)
			if err != nil {
				return err
			}
			defer st.Close()
			f, err := kmer.NewFactory(st.KSize())
			if err != nil {
				return err
			}

			stats, err := count.Files(cmd.Context(), countConfig(cfg), paths, f, st)
			if err != nil {
				return err
			}
			if cfg.Snapshot != "" {
				if err := kmerstore.SaveSnapshotFile(cfg.Snapshot, st); err != nil {
					return errors.Wrapf(err, "snapshot %s", cfg.Snapshot)
				}
			}
			rep := countReport{
				K: st.KSize(), Records: stats.Records, Bases: stats.Bases, Kmers: stats.Kmers,
				Distinct: stats.Distinct, Store: cfg.Store, Snapshot: cfg.Snapshot,
			}
			return buffered(cmd, func(w io.Writer) error { return writeCountReport(w, cfg.Output, rep) })
		},
	}
}

// openCountTarget returns the badger store to count into, or a memory table
// when only a snapshot (or nothing) is wanted. An existing store keeps its
// own k unless hint asks for a specific one; k sizes anything new.
func openCountTarget(store, snapshot string, hint, k int) (kmerstore.Store, error) {
	if store != "" {
		open := kmerstore.OpenBadgerAdopting
		if hint > 0 {
			open = kmerstore.OpenBadger
		}
		bs, err := open(store, k)
		if err != nil {
			return nil, err
		}
		return bs, nil
	}
	if snapshot == "" {
		klog.Warningf("count: neither --store nor --snapshot given; counts are discarded")
	}
	m, err := kmerstore.NewMemoryStore(k)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func writeCountReport(w io.Writer, format string, r countReport) error {
	switch format {
	case "json":
		return output.WriteJSON(w, r)
	case "jsonl":
		return output.WriteJSONL(w, []countReport{r})
	case "yaml":
		return output.WriteYAML(w, r)
	default:
		_, err := fmt.Fprintf(w, "k=%d records=%d bases=%d kmers=%d distinct=%d\n",
			r.K, r.Records, r.Bases, r.Kmers, r.Distinct)
		return err
	}
}
