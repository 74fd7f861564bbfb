package writers

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"syscall"
	"testing"

	"dbgwalk/pkg/api"
)

func TestUnknownFormatErrors(t *testing.T) {
	var b bytes.Buffer
	if err := WriteContigs("nope-format", &b, nil, false); err == nil || !strings.Contains(err.Error(), "unknown contig format") {
		t.Fatalf("want 'unknown contig format' error, got: %v", err)
	}
	if err := WriteNodes("fasta", &b, nil, false); err == nil || !strings.Contains(err.Error(), "unknown node format") {
		t.Fatalf("want 'unknown node format' error, got: %v", err)
	}
}

func TestFormatsRegistered(t *testing.T) {
	got := strings.Join(Formats(), ",")
	if got != "fasta,json,jsonl,text,tsv,yaml" {
		t.Fatalf("formats %q", got)
	}
	list := []api.ContigV1{{ID: "contig_x", Seed: "ACG", Length: 4, Seq: "ACGT", LeftStop: "dead-end", RightStop: "dead-end"}}
	for _, f := range Formats() {
		var b bytes.Buffer
		if err := WriteContigs(f, &b, list, true); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if !strings.Contains(b.String(), "ACGT") {
			t.Fatalf("%s: sequence missing:\n%s", f, b.String())
		}
	}
	for f := range NodeWriters {
		var b bytes.Buffer
		if err := WriteNodes(f, &b, []api.NodeV1{{Kmer: "ACG", Canonical: "ACG"}}, false); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(fmt.Errorf("write: %w", syscall.EPIPE)) || !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatal("pipe errors not recognized")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(io.EOF) {
		t.Fatal("false positive")
	}
}
