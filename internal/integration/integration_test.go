package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dbgwalk/internal/app"
	"dbgwalk/internal/output"
	"dbgwalk/pkg/api"
)

const contig = "ACGGTCATTG"

func writeReads(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "reads.fa")
	if err := os.WriteFile(fn, []byte(">r1\n"+contig+"\n"), 0o644); err != nil {
		t.Fatalf("write fasta: %v", err)
	}
	return fn
}

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestCountSnapshotThenAssemble(t *testing.T) {
	fa := writeReads(t)
	snap := filepath.Join(t.TempDir(), "counts.snap")

	code, out, errs := run(t, "count", "--k", "5", "--snapshot", snap, fa)
	if code != 0 {
		t.Fatalf("count exit %d: %s", code, errs)
	}
	if !strings.Contains(out, "k=5 records=1 bases=10 kmers=6 distinct=6") {
		t.Fatalf("count report %q", out)
	}

	code, out, errs = run(t, "assemble", "--snapshot", snap, "--seed", "GGTCA", "-o", "tsv", "ACGGT")
	if code != 0 {
		t.Fatalf("assemble exit %d: %s", code, errs)
	}
	want := output.ContigTSVHeader + "\n" +
		output.ContigID(contig) + "\tGGTCA\t10\t2\t3\tdead-end\tdead-end\t" + contig + "\n"
	if out != want {
		t.Fatalf("got %q\nwant %q", out, want)
	}
}

func TestBadgerStoreFlow(t *testing.T) {
	fa := writeReads(t)
	db := filepath.Join(t.TempDir(), "counts.db")

	if code, _, errs := run(t, "count", "--k", "5", "--store", db, fa, "-o", "json"); code != 0 {
		t.Fatalf("count exit %d: %s", code, errs)
	}
	code, out, errs := run(t, "assemble", "--store", db, "-o", "json", "CATTG")
	if code != 0 {
		t.Fatalf("assemble exit %d: %s", code, errs)
	}
	var got []api.ContigV1
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("json: %v\n%s", err, out)
	}
	if len(got) != 1 || got[0].Seq != contig || got[0].LeftSteps != 5 || got[0].RightSteps != 0 {
		t.Fatalf("contigs %+v", got)
	}

	if code, _, _ := run(t, "assemble", "--store", db, "--k", "7", "CATTGAC"); code != 3 {
		t.Fatalf("k mismatch exit %d want 3", code)
	}
}

func TestMaxLengthUsesSnapshotK(t *testing.T) {
	fa := writeReads(t)
	snap := filepath.Join(t.TempDir(), "counts.snap")
	if code, _, errs := run(t, "count", "--k", "5", "--snapshot", snap, fa); code != 0 {
		t.Fatalf("count exit %d: %s", code, errs)
	}

	code, out, errs := run(t, "assemble", "--snapshot", snap, "--max-length", "8", "-o", "json", "GGTCA")
	if code != 0 {
		t.Fatalf("assemble exit %d: %s", code, errs)
	}
	var got []api.ContigV1
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("json: %v\n%s", err, out)
	}
	if len(got) != 1 {
		t.Fatalf("contigs %+v", got)
	}
	c := got[0]
	if c.Seq != "GGTCATTG" || c.Length != 8 || c.RightSteps != 3 || c.LeftSteps != 0 ||
		c.RightStop != "max-length" || c.LeftStop != "max-length" {
		t.Fatalf("contig %+v", c)
	}

	if code, _, _ := run(t, "assemble", "--snapshot", snap, "--max-length", "4", "GGTCA"); code != 2 {
		t.Fatalf("max-length below k exit %d want 2", code)
	}
}

func TestCountReusesStoreK(t *testing.T) {
	fa := writeReads(t)
	db := filepath.Join(t.TempDir(), "counts.db")

	if code, _, errs := run(t, "count", "--k", "5", "--store", db, fa); code != 0 {
		t.Fatalf("first count exit %d: %s", code, errs)
	}
	code, out, errs := run(t, "count", "--store", db, fa)
	if code != 0 {
		t.Fatalf("second count exit %d: %s", code, errs)
	}
	if !strings.Contains(out, "k=5 ") || !strings.Contains(out, "distinct=6") {
		t.Fatalf("second count report %q", out)
	}

	code, out, errs = run(t, "degree", "--store", db, "-o", "tsv", "--header=false", "GTCAT")
	if code != 0 {
		t.Fatalf("degree exit %d: %s", code, errs)
	}
	if out != "GTCAT\tATGAC\t2\t1\t1\t-\t-\n" {
		t.Fatalf("degree %q", out)
	}

	if code, _, _ := run(t, "count", "--k", "7", "--store", db, fa); code != 3 {
		t.Fatalf("explicit k mismatch exit %d want 3", code)
	}
}

func TestAssembleFromReads(t *testing.T) {
	fa := writeReads(t)
	code, out, errs := run(t, "assemble", "--k", "5", "--reads", fa, "-o", "fasta", "GGTCA")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errs)
	}
	want := ">" + output.ContigID(contig) + " seed=GGTCA len=10 left_stop=dead-end right_stop=dead-end\n" + contig + "\n"
	if out != want {
		t.Fatalf("got %q\nwant %q", out, want)
	}
}

func TestSeedNotInGraph(t *testing.T) {
	fa := writeReads(t)
	code, out, _ := run(t, "assemble", "--k", "5", "--reads", fa, "-o", "json", "TTTTT")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Fatalf("got %q", out)
	}
}

func TestDegreeAndNeighbors(t *testing.T) {
	fa := writeReads(t)
	code, out, errs := run(t, "degree", "--k", "5", "--reads", fa, "-o", "tsv", "--header=false", "GTCAT")
	if code != 0 {
		t.Fatalf("degree exit %d: %s", code, errs)
	}
	if out != "GTCAT\tATGAC\t1\t1\t1\t-\t-\n" {
		t.Fatalf("degree %q", out)
	}

	cfg := filepath.Join(t.TempDir(), "dbgwalk.yaml")
	if err := os.WriteFile(cfg, []byte("k: 5\noutput: json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	code, out, errs = run(t, "neighbors", "--config", cfg, "--reads", fa, "GTCAT")
	if code != 0 {
		t.Fatalf("neighbors exit %d: %s", code, errs)
	}
	var nodes []api.NodeV1
	if err := json.Unmarshal([]byte(out), &nodes); err != nil {
		t.Fatalf("json: %v\n%s", err, out)
	}
	if len(nodes) != 1 || strings.Join(nodes[0].Left, ",") != "GGTCA" || strings.Join(nodes[0].Right, ",") != "TCATT" {
		t.Fatalf("nodes %+v", nodes)
	}
}

func TestUsageErrorsExit2(t *testing.T) {
	fa := writeReads(t)
	cases := [][]string{
		{"assemble", "--k", "5", "--reads", fa},
		{"assemble", "--k", "5", "--reads", fa, "ACG"},
		{"assemble", "--k", "5", "--reads", fa, "ACGNT"},
		{"assemble", "GGTCA"},
		{"count"},
		{"count", "--k", "40", fa},
		{"count", "--bogus", fa},
		{"frobnicate"},
		{"degree"},
		{"neighbors", "--k", "5", "--reads", fa, "-o", "fasta", "GTCAT"},
		{"assemble", "--k", "5", "--reads", fa, "-o", "xml", "GGTCA"},
	}
	for _, argv := range cases {
		if code, _, errs := run(t, argv...); code != 2 {
			t.Errorf("%v: exit %d want 2 (%s)", argv, code, errs)
		}
	}
}

func TestRuntimeErrorExit3(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.snap")
	code, _, errs := run(t, "assemble", "--snapshot", missing, "GGTCA")
	if code != 3 {
		t.Fatalf("exit %d want 3", code)
	}
	if !strings.Contains(errs, "open snapshot") {
		t.Fatalf("stderr %q", errs)
	}
}

func TestVersionAndHelp(t *testing.T) {
	code, out, _ := run(t, "version")
	if code != 0 || out != "dbgwalk version dev\n" {
		t.Fatalf("version: %d %q", code, out)
	}
	code, out, _ = run(t, "--help")
	if code != 0 || !strings.Contains(out, "assemble") || !strings.Contains(out, "neighbors") {
		t.Fatalf("help: %d %q", code, out)
	}
}

func TestCancelledExit130(t *testing.T) {
	fa := writeReads(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errBuf bytes.Buffer
	if code := app.RunContext(ctx, []string{"count", "--k", "5", fa}, &out, &errBuf); code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d (%s)", code, errBuf.String())
	}
}
