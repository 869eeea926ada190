// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"github.com/aryanthorat85-star/DNA-Analyzer/internal/report"
	"github.com/aryanthorat85-star/DNA-Analyzer/pkg/api"
)

// ToAPIReport converts a domain Report to the stable wire schema (v1).
func ToAPIReport(r report.Report) api.ReportV1 {
	v := api.ReportV1{
		Length:            r.Length,
		GCPercent:         r.GC,
		ATPercent:         r.AT,
		ReverseComplement: r.RevComp,
		K:                 r.K,
	}
	for _, e := range r.Kmers {
		v.TopKmers = append(v.TopKmers, api.KmerCountV1{Kmer: e.Kmer, Count: e.Count})
	}
	return v
}

// WriteJSON writes the v1 report as indented JSON.
func WriteJSON(w io.Writer, r report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPIReport(r))
}
