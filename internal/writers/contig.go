package writers

import (
	"io"

	"dbgwalk/internal/output"
	"dbgwalk/pkg/api"
)

func init() {
	RegisterContig("text", output.WriteContigsText)
	RegisterContig("tsv", output.WriteContigsTSV)
	RegisterContig("json", func(w io.Writer, list []api.ContigV1, _ bool) error {
		return output.WriteContigsJSON(w, list)
	})
	RegisterContig("jsonl", func(w io.Writer, list []api.ContigV1, _ bool) error {
		return output.WriteJSONL(w, list)
	})
	RegisterContig("yaml", func(w io.Writer, list []api.ContigV1, _ bool) error {
		if list == nil {
			list = []api.ContigV1{}
		}
		return output.WriteYAML(w, list)
	})
	RegisterContig("fasta", func(w io.Writer, list []api.ContigV1, _ bool) error {
		return output.WriteContigsFASTA(w, list)
	})
}
