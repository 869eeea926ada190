package kmer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryanthorat85-star/DNA-Analyzer/internal/kmer"
)

func TestCountSpecExample(t *testing.T) {
	table, err := kmer.Count("ACGTACGT", 3)
	require.NoError(t, err)

	assert.Equal(t, 6, table.Windows())
	assert.Equal(t, 4, table.Len())
	assert.Equal(t, []kmer.Entry{
		{Kmer: "ACG", Count: 2},
		{Kmer: "CGT", Count: 2},
		{Kmer: "GTA", Count: 1},
		{Kmer: "TAC", Count: 1},
	}, table.Entries())
}

func TestTopNTiesFirstSeen(t *testing.T) {
	table, err := kmer.Count("ACGTACGT", 3)
	require.NoError(t, err)

	top := table.TopN(3)
	require.Len(t, top, 3)
	assert.Equal(t, kmer.Entry{Kmer: "ACG", Count: 2}, top[0])
	assert.Equal(t, kmer.Entry{Kmer: "CGT", Count: 2}, top[1])
	assert.Equal(t, kmer.Entry{Kmer: "GTA", Count: 1}, top[2])
}

func TestTopNFewerThanN(t *testing.T) {
	table, err := kmer.Count("AAAA", 2)
	require.NoError(t, err)

	top := table.TopN(5)
	assert.Equal(t, []kmer.Entry{{Kmer: "AA", Count: 3}}, top)
}

func TestWindowTotalInvariant(t *testing.T) {
	seqs := []string{"", "A", "ACGT", "ACGTACGTACGTACGT"}
	for _, s := range seqs {
		for k := 1; k <= 6; k++ {
			table, err := kmer.Count(s, k)
			require.NoError(t, err)

			want := len(s) - k + 1
			if want < 0 {
				want = 0
			}
			assert.Equal(t, want, table.Windows(), "seq=%q k=%d", s, k)
		}
	}
}

func TestCountKLargerThanSequence(t *testing.T) {
	table, err := kmer.Count("ACG", 4)
	require.NoError(t, err)
	assert.Zero(t, table.Len())
	assert.Zero(t, table.Windows())
	assert.Empty(t, table.TopN(5))
}

func TestCountRejectsNonPositiveK(t *testing.T) {
	for _, k := range []int{0, -1, -100} {
		_, err := kmer.Count("ACGT", k)
		require.Error(t, err, "k=%d", k)
	}
}

// Windows wider than 32 bases leave the packed representation; the
// ordering and counting semantics must not change.
func TestCountWideWindowFallback(t *testing.T) {
	s := strings.Repeat("ACGT", 10) // 40 bases
	k := 33

	table, err := kmer.Count(s, k)
	require.NoError(t, err)
	assert.Equal(t, len(s)-k+1, table.Windows())

	entries := table.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, s[:k], entries[0].Kmer)
	for _, e := range entries {
		assert.Len(t, e.Kmer, k)
	}
}

func TestPackedRepeatCounts(t *testing.T) {
	table, err := kmer.Count("AAAAAA", 3) // 4 windows, all AAA
	require.NoError(t, err)
	assert.Equal(t, []kmer.Entry{{Kmer: "AAA", Count: 4}}, table.Entries())
}
