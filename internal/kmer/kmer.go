// Package kmer counts overlapping fixed-length windows of a cleaned
// DNA sequence.
package kmer

import (
	"fmt"
	"sort"

	"github.com/shenwei356/kmers"
)

// maxPackedK is the widest window that still fits a 2-bit-per-base uint64.
const maxPackedK = 32

// Entry is one k-mer with its occurrence count.
type Entry struct {
	Kmer  string
	Count int
}

// Table is a k-mer frequency table. Windows of length ≤ 32 are stored
// 2-bit packed; longer windows fall back to substring keys. Both paths
// order ties by first appearance in the left-to-right scan.
type Table struct {
	k       int
	windows int

	packed     bool
	codeCounts map[uint64]int
	codeOrder  []uint64

	strCounts map[string]int
	strOrder  []string
}

// Count scans every window seq[i:i+k] for 0 ≤ i ≤ len(seq)-k and builds
// the frequency table. seq must already be cleaned to {A,C,G,T}.
// k > len(seq) yields an empty table; k ≤ 0 is an error.
func Count(seq string, k int) (*Table, error) {
	if k <= 0 {
		return nil, fmt.Errorf("k-mer length must be ≥ 1, got %d", k)
	}
	t := &Table{k: k, packed: k <= maxPackedK}
	if t.packed {
		t.codeCounts = make(map[uint64]int)
	} else {
		t.strCounts = make(map[string]int)
	}
	for i := 0; i+k <= len(seq); i++ {
		w := seq[i : i+k]
		if t.packed {
			code, err := kmers.Encode([]byte(w))
			if err != nil {
				return nil, fmt.Errorf("window %q at %d: %w", w, i, err)
			}
			if _, seen := t.codeCounts[code]; !seen {
				t.codeOrder = append(t.codeOrder, code)
			}
			t.codeCounts[code]++
		} else {
			if _, seen := t.strCounts[w]; !seen {
				t.strOrder = append(t.strOrder, w)
			}
			t.strCounts[w]++
		}
		t.windows++
	}
	return t, nil
}

// K returns the window length the table was built with.
func (t *Table) K() int { return t.k }

// Windows returns the total number of windows scanned,
// max(0, len(seq)-k+1).
func (t *Table) Windows() int { return t.windows }

// Len returns the number of distinct k-mers.
func (t *Table) Len() int {
	if t.packed {
		return len(t.codeCounts)
	}
	return len(t.strCounts)
}

// Entries returns all k-mers in first-seen order.
func (t *Table) Entries() []Entry {
	if t.packed {
		out := make([]Entry, 0, len(t.codeOrder))
		for _, code := range t.codeOrder {
			out = append(out, Entry{
				Kmer:  string(kmers.MustDecode(code, t.k)),
				Count: t.codeCounts[code],
			})
		}
		return out
	}
	out := make([]Entry, 0, len(t.strOrder))
	for _, w := range t.strOrder {
		out = append(out, Entry{Kmer: w, Count: t.strCounts[w]})
	}
	return out
}

// TopN returns the n highest-count entries, ties broken by first
// appearance. Fewer than n distinct k-mers returns all of them.
func (t *Table) TopN(n int) []Entry {
	entries := t.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
