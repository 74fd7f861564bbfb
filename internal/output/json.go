package output

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"dbgwalk/pkg/api"
)

// WriteContigsJSON writes the contigs as one indented JSON array.
func WriteContigsJSON(w io.Writer, list []api.ContigV1) error {
	if list == nil {
		list = []api.ContigV1{}
	}
	return WriteJSON(w, list)
}

func WriteNodesJSON(w io.Writer, list []api.NodeV1) error {
	if list == nil {
		list = []api.NodeV1{}
	}
	return WriteJSON(w, list)
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteYAML writes v as a YAML document.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// WriteJSONL writes one compact JSON object per line.
func WriteJSONL[T any](w io.Writer, list []T) error {
	enc := json.NewEncoder(w)
	for _, v := range list {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}
