// Package api defines the stable wire schema for JSON output.
package api

// KmerCountV1 is one k-mer/count pair.
type KmerCountV1 struct {
	Kmer  string `json:"kmer"`
	Count int    `json:"count"`
}

// ReportV1 is the versioned JSON form of a sequence summary.
type ReportV1 struct {
	Length            int           `json:"length"`
	GCPercent         float64       `json:"gc_percent"`
	ATPercent         float64       `json:"at_percent"`
	ReverseComplement string        `json:"reverse_complement,omitempty"`
	K                 int           `json:"k"`
	TopKmers          []KmerCountV1 `json:"top_kmers,omitempty"`
}
