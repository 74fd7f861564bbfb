// Package count streams FASTA records through a pool of k-mer counting
// workers and folds their per-window tables into a kmerstore.Store.
//
// Long records are split into windows that overlap by k-1 bases, so every
// k-mer is seen by exactly one window.
package count
