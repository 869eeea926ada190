package seq

import "strings"

// GCContent returns the percentage of G and C bases in s.
// Returns 0.0 for the empty string.
func GCContent(s string) float64 {
	if len(s) == 0 {
		return 0.0
	}
	n := strings.Count(s, "G") + strings.Count(s, "C")
	return 100.0 * float64(n) / float64(len(s))
}

// ATContent returns the percentage of A and T bases in s.
// Returns 0.0 for the empty string.
func ATContent(s string) float64 {
	if len(s) == 0 {
		return 0.0
	}
	n := strings.Count(s, "A") + strings.Count(s, "T")
	return 100.0 * float64(n) / float64(len(s))
}
