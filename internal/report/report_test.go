package report_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aryanthorat85-star/DNA-Analyzer/internal/kmer"
	"github.com/aryanthorat85-star/DNA-Analyzer/internal/report"
)

func TestBuildFull(t *testing.T) {
	got, err := report.Build("ACGTACGT", 3, 3)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := report.Report{
		Length:  8,
		GC:      50.0,
		AT:      50.0,
		RevComp: "ACGTACGT",
		K:       3,
		TopN:    3,
		Kmers: []kmer.Entry{
			{Kmer: "ACG", Count: 2},
			{Kmer: "CGT", Count: 2},
			{Kmer: "GTA", Count: 1},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildEmptySequence(t *testing.T) {
	got, err := report.Build("", 3, 5)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := report.Report{Length: 0, K: 3, TopN: 5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildKLargerThanSequence(t *testing.T) {
	got, err := report.Build("ACG", 5, 5)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got.Length != 3 || len(got.Kmers) != 0 {
		t.Errorf("want 3 bases and no k-mers, got %+v", got)
	}
}

func TestBuildRejectsBadK(t *testing.T) {
	if _, err := report.Build("ACGT", 0, 5); err == nil {
		t.Fatalf("expected error for k=0")
	}
}
