package output

// Header rows for text/TSV outputs. Keep these as the single source of truth.
const (
	ContigTSVHeader = "id\tseed\tlength\tleft_steps\tright_steps\tleft_stop\tright_stop\tseq"
	NodeTSVHeader   = "kmer\tcanonical\tcount\tin_degree\tout_degree\tleft\tright"
)
