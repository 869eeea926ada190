// Package report assembles the transient per-invocation summary.
package report

import (
	"github.com/aryanthorat85-star/DNA-Analyzer/internal/kmer"
	"github.com/aryanthorat85-star/DNA-Analyzer/internal/seq"
)

// Report holds everything the renderers need. Derived fresh per run,
// never persisted.
type Report struct {
	Length  int
	GC      float64
	AT      float64
	RevComp string
	K       int
	TopN    int
	Kmers   []kmer.Entry
}

// Build computes the full summary for an already-cleaned sequence.
// A zero-length sequence yields a report with only Length/K/TopN set.
func Build(cleaned string, k, topN int) (Report, error) {
	r := Report{Length: len(cleaned), K: k, TopN: topN}
	if r.Length == 0 {
		return r, nil
	}
	r.GC = seq.GCContent(cleaned)
	r.AT = seq.ATContent(cleaned)
	r.RevComp = seq.RevComp(cleaned)

	table, err := kmer.Count(cleaned, k)
	if err != nil {
		return Report{}, err
	}
	r.Kmers = table.TopN(topN)
	return r, nil
}
