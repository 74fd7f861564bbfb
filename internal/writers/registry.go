package writers

import (
	"fmt"
	"io"
	"sort"

	"dbgwalk/pkg/api"
)

// Writer registries (format → handler). Register in init() blocks from
// contig.go and node.go.
var (
	ContigWriters = map[string]func(w io.Writer, list []api.ContigV1, header bool) error{}
	NodeWriters   = map[string]func(w io.Writer, list []api.NodeV1, header bool) error{}
)

// Register helpers (idempotent last-wins)
func RegisterContig(format string, fn func(io.Writer, []api.ContigV1, bool) error) {
	ContigWriters[format] = fn
}
func RegisterNode(format string, fn func(io.Writer, []api.NodeV1, bool) error) { NodeWriters[format] = fn }

// WriteContigs dispatches to the writer registered for format.
func WriteContigs(format string, w io.Writer, list []api.ContigV1, header bool) error {
	fn, ok := ContigWriters[format]
	if !ok {
		return fmt.Errorf("unknown contig format %q (no writer registered)", format)
	}
	return fn(w, list, header)
}

func WriteNodes(format string, w io.Writer, list []api.NodeV1, header bool) error {
	fn, ok := NodeWriters[format]
	if !ok {
		return fmt.Errorf("unknown node format %q (no writer registered)", format)
	}
	return fn(w, list, header)
}

// Formats lists the formats with a contig writer, sorted.
func Formats() []string {
	out := make([]string, 0, len(ContigWriters))
	for f := range ContigWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
