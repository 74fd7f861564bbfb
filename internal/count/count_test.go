package count

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"dbgwalk-core/kmer"

	"dbgwalk/internal/kmerstore"
)

func writeFASTA(t *testing.T, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "reads.fa")
	if err := os.WriteFile(fn, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return fn
}

func snapshot(t *testing.T, s kmerstore.Store) map[uint64]uint64 {
	t.Helper()
	m := map[uint64]uint64{}
	_ = s.ForEach(func(h, c uint64) error { m[h] = c; return nil })
	return m
}

const reads = ">r1 first\nGATTACAGGC\nTTCAGCATG\n>r2\nACGGTNNCATTGACGGTCATTG\n>r3\nAC\n"

func TestFilesCounts(t *testing.T) {
	fn := writeFASTA(t, reads)
	f, _ := kmer.NewFactory(5)
	store, _ := kmerstore.NewMemoryStore(5)

	st, err := Files(context.Background(), Config{Threads: 1}, []string{fn}, f, store)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if st.Records != 3 {
		t.Fatalf("Records=%d want 3", st.Records)
	}
	if st.Bases != 19+22+2 {
		t.Fatalf("Bases=%d want 43", st.Bases)
	}
	// 15 from r1; r2 splits into ACGGT and CATTGACGGTCATTG (1 + 11).
	if st.Kmers != 27 {
		t.Fatalf("Kmers=%d want 27", st.Kmers)
	}
	if st.Distinct != store.Len() {
		t.Fatalf("Distinct=%d Len=%d", st.Distinct, store.Len())
	}
	if c := store.Count(f.MustEncode("ACGGT")); c != 2 {
		t.Fatalf("ACGGT=%d want 2", c)
	}
	if c := store.Count(f.MustEncode("CATTG")); c != 2 {
		t.Fatalf("CATTG=%d want 2", c)
	}
}

func TestFilesChunkedMatchesWhole(t *testing.T) {
	seq := strings.Repeat("GATTACAGGCTTCAGCATGNACGGTCATTG", 20)
	fn := writeFASTA(t, ">long\n"+seq+"\n>short\nACGTTGCA\n")
	f, _ := kmer.NewFactory(7)

	whole, _ := kmerstore.NewMemoryStore(7)
	ws, err := Files(context.Background(), Config{Threads: 1}, []string{fn}, f, whole)
	if err != nil {
		t.Fatal(err)
	}
	for _, cfg := range []Config{{Threads: 1, ChunkSize: 50}, {Threads: 4, ChunkSize: 13}, {Threads: 3, ChunkSize: 7}} {
		chunked, _ := kmerstore.NewMemoryStore(7)
		cs, err := Files(context.Background(), cfg, []string{fn}, f, chunked)
		if err != nil {
			t.Fatalf("%+v: %v", cfg, err)
		}
		if cs != ws {
			t.Fatalf("%+v: stats %+v want %+v", cfg, cs, ws)
		}
		want, got := snapshot(t, whole), snapshot(t, chunked)
		if len(got) != len(want) {
			t.Fatalf("%+v: %d distinct want %d", cfg, len(got), len(want))
		}
		for h, c := range want {
			if got[h] != c {
				t.Fatalf("%+v: hash %x got %d want %d", cfg, h, got[h], c)
			}
		}
	}
}

func TestFilesIntoBadger(t *testing.T) {
	fn := writeFASTA(t, reads)
	f, _ := kmer.NewFactory(5)
	mem, _ := kmerstore.NewMemoryStore(5)
	db, err := kmerstore.OpenBadger("", 5)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if _, err := Files(context.Background(), Config{Threads: 2, ChunkSize: 8}, []string{fn}, f, mem); err != nil {
		t.Fatal(err)
	}
	if _, err := Files(context.Background(), Config{Threads: 2, ChunkSize: 8}, []string{fn}, f, db); err != nil {
		t.Fatal(err)
	}
	want, got := snapshot(t, mem), snapshot(t, db)
	if len(got) != len(want) {
		t.Fatalf("%d distinct want %d", len(got), len(want))
	}
	for h, c := range want {
		if got[h] != c {
			t.Fatalf("hash %x got %d want %d", h, got[h], c)
		}
	}
}

func TestFilesMissingFileKeepsGoing(t *testing.T) {
	fn := writeFASTA(t, reads)
	f, _ := kmer.NewFactory(5)
	store, _ := kmerstore.NewMemoryStore(5)
	missing := filepath.Join(t.TempDir(), "nope.fa")

	st, err := Files(context.Background(), Config{Threads: 2}, []string{missing, fn}, f, store)
	if err == nil {
		t.Fatal("missing file not reported")
	}
	if st.Records != 3 {
		t.Fatalf("Records=%d want 3", st.Records)
	}
}

func TestFilesKMismatch(t *testing.T) {
	f, _ := kmer.NewFactory(5)
	store, _ := kmerstore.NewMemoryStore(7)
	_, err := Files(context.Background(), Config{}, nil, f, store)
	if errors.Cause(err) != kmerstore.ErrKSizeMismatch {
		t.Fatalf("err=%v", err)
	}
}

func TestFilesCancelled(t *testing.T) {
	fn := writeFASTA(t, reads)
	f, _ := kmer.NewFactory(5)
	store, _ := kmerstore.NewMemoryStore(5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Files(ctx, Config{Threads: 2}, []string{fn}, f, store); err != context.Canceled {
		t.Fatalf("err=%v want context.Canceled", err)
	}
}
