package count

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"dbgwalk-core/fasta"
	"dbgwalk-core/kmer"

	"dbgwalk/internal/kmerstore"
)

// Config controls the counting pipeline.
type Config struct {
	Threads   int // number of worker goroutines (>=1)
	ChunkSize int // FASTA window size; 0 disables chunking
}

// Stats summarizes one counting run.
type Stats struct {
	Records  int64 // FASTA records
	Bases    int64 // bases read, N included
	Kmers    int64 // k-mers counted
	Distinct int   // distinct canonical k-mers in the store afterwards
}

type batch struct {
	counts  map[uint64]uint64
	bases   int64
	kmers   int64
	records int64
}

// Files counts every ACGT-only k-mer in paths into store. It returns the
// first error encountered, including context cancellation.
func Files(ctx context.Context, cfg Config, paths []string, f kmer.Factory, store kmerstore.Store) (Stats, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if f.K() != store.KSize() {
		return Stats{}, errors.Wrapf(kmerstore.ErrKSizeMismatch, "counting k=%d into store k=%d", f.K(), store.KSize())
	}
	overlap := f.K() - 1

	jobs := make(chan fasta.Record, cfg.Threads*2)
	results := make(chan batch, cfg.Threads*2)

	var (
		errMu    sync.Mutex
		firstErr error
	)
	setErr := func(err error) {
		errMu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		errMu.Unlock()
	}

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case rec, ok := <-jobs:
					if !ok {
						return
					}
					b := batch{counts: make(map[uint64]uint64, len(rec.Seq)), bases: int64(len(rec.Seq))}
					if rec.Offset == 0 {
						b.records = 1
					} else {
						b.bases -= int64(overlap)
					}
					f.Each(rec.Seq, func(_ int, km kmer.Kmer) {
						b.counts[km.Canonical()]++
						b.kmers++
					})
					select {
					case results <- b:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var (
		st  Stats
		cwg sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		failed := false
		for b := range results {
			if failed {
				continue
			}
			if err := store.AddBatch(b.counts); err != nil {
				setErr(errors.Wrap(err, "store counts"))
				failed = true
				continue
			}
			st.Records += b.records
			st.Bases += b.bases
			st.Kmers += b.kmers
		}
	}()

	// Feed work
	for _, path := range paths {
		klog.V(1).Infof("count: reading %s", path)
		err := fasta.StreamPath(ctx, path, cfg.ChunkSize, overlap, func(rec fasta.Record) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- rec:
				return nil
			}
		})
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			// Keep counting other files; first error will be returned.
			setErr(err)
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return st, ctx.Err()
	}
	st.Distinct = store.Len()
	klog.V(1).Infof("count: %d records, %d bases, %d k-mers, %d distinct", st.Records, st.Bases, st.Kmers, st.Distinct)
	return st, firstErr
}
