package tasks

import (
	"testing"

	"github.com/google/uuid"
)

func matrixTask(p Priority, u Urgency, s Status) Task {
	return Task{ID: uuid.New(), Title: "t", Priority: p, Urgency: u, Status: s}
}

func TestBuildMatrixBucketing(t *testing.T) {
	ts := []Task{
		matrixTask(PriorityHigh, UrgencyHigh, StatusNotStarted),
		matrixTask(PriorityHigh, UrgencyHigh, StatusInProgress),
		matrixTask(PriorityHigh, UrgencyLow, StatusOnHold),
		matrixTask(PriorityLow, UrgencyHigh, StatusNotStarted),
		matrixTask(PriorityLow, UrgencyLow, StatusNotStarted),
		matrixTask(PriorityMedium, UrgencyMedium, StatusNotStarted),
		matrixTask(PriorityHigh, UrgencyMedium, StatusNotStarted),
	}

	got := BuildMatrix(ts)

	if len(got.Matrix) != 9 {
		t.Fatalf("matrix keys: got %d, want 9", len(got.Matrix))
	}
	for _, k := range matrixKeys {
		if _, ok := got.Matrix[k]; !ok {
			t.Errorf("matrix missing key %q", k)
		}
	}

	wantSizes := map[string]int{
		"high_high": 2, "high_low": 1, "low_high": 1, "low_low": 1,
		"medium_medium": 1, "high_medium": 1,
	}
	for k, want := range wantSizes {
		if len(got.Matrix[k]) != want {
			t.Errorf("bucket %s: got %d, want %d", k, len(got.Matrix[k]), want)
		}
	}

	if got.Summary.TotalTasks != 7 {
		t.Errorf("total_tasks: got %d, want 7", got.Summary.TotalTasks)
	}

	// quadrants only count the extreme cells
	wantQuadrants := map[string]int{
		"quadrant_1": 2, "quadrant_2": 1, "quadrant_3": 1, "quadrant_4": 1,
	}
	for k, want := range wantQuadrants {
		if got.Summary.ByQuadrant[k] != want {
			t.Errorf("%s: got %d, want %d", k, got.Summary.ByQuadrant[k], want)
		}
	}
}

func TestBuildMatrixSkipsCompleted(t *testing.T) {
	ts := []Task{
		matrixTask(PriorityHigh, UrgencyHigh, StatusCompleted),
		matrixTask(PriorityHigh, UrgencyHigh, StatusNotStarted),
	}

	got := BuildMatrix(ts)

	if len(got.Matrix["high_high"]) != 1 {
		t.Errorf("high_high: got %d, want 1", len(got.Matrix["high_high"]))
	}
	if got.Summary.TotalTasks != 1 {
		t.Errorf("total_tasks: got %d, want 1", got.Summary.TotalTasks)
	}
}

func TestBuildMatrixSingleBucketMembership(t *testing.T) {
	task := matrixTask(PriorityHigh, UrgencyHigh, StatusNotStarted)
	got := BuildMatrix([]Task{task})

	for k, bucket := range got.Matrix {
		want := 0
		if k == "high_high" {
			want = 1
		}
		if len(bucket) != want {
			t.Errorf("bucket %s: got %d entries, want %d", k, len(bucket), want)
		}
	}
	if got.Summary.ByQuadrant["quadrant_1"] != len(got.Matrix["high_high"]) {
		t.Errorf("quadrant_1 %d != len(high_high) %d",
			got.Summary.ByQuadrant["quadrant_1"], len(got.Matrix["high_high"]))
	}
}
