package cli

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"dbgwalk-core/kmer"

	"dbgwalk/internal/config"
	"dbgwalk/internal/count"
	"dbgwalk/internal/kmerstore"
)

// kHint is the k the user asked for, or 0 when k was left at its default
// and a stored table may supply it.
func (s *session) kHint(cmd *cobra.Command) int {
	if cmd.Flags().Changed("k") || s.v.InConfig("k") || os.Getenv(config.EnvPrefix+"_K") != "" {
		return s.cfg.K
	}
	return 0
}

// openGraph picks the count table a query command walks: a badger store, a
// snapshot, or reads counted into memory, in that order of preference.
func (s *session) openGraph(ctx context.Context, cmd *cobra.Command) (kmerstore.Store, error) {
	cfg := s.cfg
	hint := s.kHint(cmd)
	switch {
	case cfg.Store != "":
		klog.V(1).Infof("graph: badger store %s", cfg.Store)
		bs, err := kmerstore.OpenBadger(cfg.Store, hint)
		if err != nil {
			return nil, err
		}
		return bs, nil

	case cfg.Snapshot != "":
		klog.V(1).Infof("graph: snapshot %s", cfg.Snapshot)
		m, err := kmerstore.LoadSnapshotFile(cfg.Snapshot)
		if err != nil {
			return nil, err
		}
		if hint > 0 && hint != m.KSize() {
			return nil, errors.Wrapf(kmerstore.ErrKSizeMismatch, "requested %d, snapshot %d", hint, m.KSize())
		}
		return m, nil

	case len(cfg.Reads) > 0:
		klog.V(1).Infof("graph: counting %d read file(s) with k=%d", len(cfg.Reads), cfg.K)
		f, err := kmer.NewFactory(cfg.K)
		if err != nil {
			return nil, usage(err)
		}
		m, err := kmerstore.NewMemoryStore(cfg.K)
		if err != nil {
			return nil, usage(err)
		}
		if _, err := count.Files(ctx, countConfig(cfg), cfg.Reads, f, m); err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, usagef("no graph: give --store, --snapshot or --reads")
}

// storeErr surfaces read failures a badger store logged during a walk.
func storeErr(st kmerstore.Store) error {
	if bs, ok := st.(*kmerstore.BadgerStore); ok {
		return bs.Err()
	}
	return nil
}

func countConfig(cfg config.Config) count.Config {
	return count.Config{Threads: cfg.Threads, ChunkSize: cfg.ChunkSize}
}

// parseKmer reads a k-mer argument; a wrong length or base is a usage error.
func parseKmer(f kmer.Factory, s string) (kmer.Kmer, error) {
	km, err := f.Encode(s)
	if err != nil {
		return kmer.Kmer{}, usage(errors.Wrapf(err, "k-mer %q (k=%d)", s, f.K()))
	}
	return km, nil
}
