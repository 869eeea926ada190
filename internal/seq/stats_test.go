package seq

import (
	"math"
	"testing"
)

func TestGCContentHalf(t *testing.T) {
	if got := GCContent("ACGTACGT"); got != 50.0 {
		t.Errorf("GCContent(ACGTACGT) = %v, want 50", got)
	}
	if got := ATContent("ACGTACGT"); got != 50.0 {
		t.Errorf("ATContent(ACGTACGT) = %v, want 50", got)
	}
}

func TestContentExtremes(t *testing.T) {
	if got := GCContent("GGCC"); got != 100.0 {
		t.Errorf("GCContent(GGCC) = %v, want 100", got)
	}
	if got := ATContent("GGCC"); got != 0.0 {
		t.Errorf("ATContent(GGCC) = %v, want 0", got)
	}
}

func TestContentEmptyIsZero(t *testing.T) {
	if GCContent("") != 0.0 || ATContent("") != 0.0 {
		t.Errorf("content of empty sequence should be 0")
	}
}

func TestContentsSumToHundred(t *testing.T) {
	for _, s := range []string{"A", "ACGT", "GGGCCCATT", "TTTTACGGTA", "CGCGCG"} {
		sum := GCContent(s) + ATContent(s)
		if math.Abs(sum-100.0) > 1e-9 {
			t.Errorf("GC+AT for %s = %v, want 100", s, sum)
		}
	}
}
