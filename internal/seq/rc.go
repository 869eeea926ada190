package seq

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
}

// RevComp maps A↔T, C↔G and reverses the order. Length-preserving;
// bytes without a complement entry pass through unchanged.
func RevComp(s string) string {
	n := len(s)
	if n == 0 {
		return ""
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := s[n-1-i]
		if c := complement[b]; c != 0 {
			b = c
		}
		out[i] = b
	}
	return string(out)
}
