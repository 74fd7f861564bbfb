// pkg/api/contig_v1.go
package api

// ContigV1 is the stable JSON/YAML schema for an assembled contig.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ContigV1 struct {
	ID         string `json:"id" yaml:"id"`
	Seed       string `json:"seed" yaml:"seed"`
	Length     int    `json:"length" yaml:"length"`
	LeftSteps  int    `json:"left_steps" yaml:"left_steps"`
	RightSteps int    `json:"right_steps" yaml:"right_steps"`
	LeftStop   string `json:"left_stop" yaml:"left_stop"`   // "dead-end" | "branch" | "visited" | "filtered" | "max-length"
	RightStop  string `json:"right_stop" yaml:"right_stop"` // same values as LeftStop
	Seq        string `json:"seq,omitempty" yaml:"seq,omitempty"`
}

// NodeV1 is the schema for a single k-mer neighbourhood report.
type NodeV1 struct {
	Kmer      string   `json:"kmer" yaml:"kmer"`
	Canonical string   `json:"canonical" yaml:"canonical"`
	Count     uint64   `json:"count" yaml:"count"`
	InDegree  int      `json:"in_degree" yaml:"in_degree"`
	OutDegree int      `json:"out_degree" yaml:"out_degree"`
	Left      []string `json:"left,omitempty" yaml:"left,omitempty"`
	Right     []string `json:"right,omitempty" yaml:"right,omitempty"`
}
