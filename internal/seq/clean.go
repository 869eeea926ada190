// Package seq holds the per-sequence primitives: normalization,
// base-content percentages and reverse complement.
package seq

var valid [256]bool

func init() {
	valid['A'] = true
	valid['C'] = true
	valid['G'] = true
	valid['T'] = true
}

// Clean uppercases s and strips every byte outside {A,C,G,T}.
// Total and idempotent; empty or fully-invalid input yields "".
func Clean(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		if valid[b] {
			out = append(out, b)
		}
	}
	return string(out)
}
