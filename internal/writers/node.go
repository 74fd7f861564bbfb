package writers

import (
	"io"

	"dbgwalk/internal/output"
	"dbgwalk/pkg/api"
)

// Nodes have no FASTA form; text and tsv share the table layout.
func init() {
	RegisterNode("text", output.WriteNodesTSV)
	RegisterNode("tsv", output.WriteNodesTSV)
	RegisterNode("json", func(w io.Writer, list []api.NodeV1, _ bool) error {
		return output.WriteNodesJSON(w, list)
	})
	RegisterNode("jsonl", func(w io.Writer, list []api.NodeV1, _ bool) error {
		return output.WriteJSONL(w, list)
	})
	RegisterNode("yaml", func(w io.Writer, list []api.NodeV1, _ bool) error {
		if list == nil {
			list = []api.NodeV1{}
		}
		return output.WriteYAML(w, list)
	})
}
