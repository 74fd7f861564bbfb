// Package writers turns contigs and node reports into serialized outputs.
//
// Design:
//   • Writers own the format → renderer mapping; output owns the layouts.
//   • Assembly stays domain-only; the CLI only picks a format name.
//   • JSON/YAML go through pkg/api (v1) for a stable wire format.
package writers
