// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"github.com/aryanthorat85-star/DNA-Analyzer/internal/report"
)

// WriteText renders the summary in its fixed layout. The ordering is
// deterministic: identical inputs produce byte-identical output.
func WriteText(w io.Writer, r report.Report) error {
	if _, err := fmt.Fprintf(w, "\n--- DNA Analyzer Summary ---\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Sequence length: %d\n", r.Length); err != nil {
		return err
	}
	if r.Length == 0 {
		_, err := fmt.Fprintln(w, "No valid A/C/G/T bases found.")
		return err
	}
	if _, err := fmt.Fprintf(w, "GC content: %.2f%%\n", r.GC); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "AT content: %.2f%%\n", r.AT); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Reverse complement: %s\n", r.RevComp); err != nil {
		return err
	}
	if len(r.Kmers) > 0 {
		if _, err := fmt.Fprintf(w, "Top %d %d-mers:\n", r.TopN, r.K); err != nil {
			return err
		}
		for _, e := range r.Kmers {
			if _, err := fmt.Fprintf(w, "  %s: %d\n", e.Kmer, e.Count); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "-----------------------------\n\n")
	return err
}
