package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProcessedSetSortedNumeric(t *testing.T) {
	set := NewProcessedSet("1000", "20", "3", "abc", "20")

	want := []string{"3", "20", "1000", "abc"}
	if diff := cmp.Diff(want, set.Sorted()); diff != "" {
		t.Fatalf("sorted mismatch (-want +got):\n%s", diff)
	}
	if set.Len() != 4 {
		t.Fatalf("Len = %d, want 4", set.Len())
	}
}

func TestProcessedSetZeroValue(t *testing.T) {
	var set ProcessedSet
	if set.Has("1") {
		t.Fatal("zero set should be empty")
	}
	set.Add("1")
	set.Add("")
	if !set.Has("1") || set.Len() != 1 {
		t.Fatalf("unexpected set state: %v", set.Sorted())
	}
}

func TestSubmissionDetailAccepted(t *testing.T) {
	if !(SubmissionDetail{Status: "Accepted"}).Accepted() {
		t.Fatal("Accepted status not recognized")
	}
	if (SubmissionDetail{Status: "Wrong Answer"}).Accepted() {
		t.Fatal("Wrong Answer reported as accepted")
	}
}
