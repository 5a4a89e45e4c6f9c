package digest

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeCounter struct {
	counts map[string]int
	fail   map[string]bool
}

func (f *fakeCounter) DueCount(_ context.Context, learnerID string, _ time.Time) (int, error) {
	if f.fail[learnerID] {
		return 0, errors.New("store unavailable")
	}
	return f.counts[learnerID], nil
}

type fakeLister struct {
	learners []string
}

func (f *fakeLister) ListLearners(_ context.Context) ([]string, error) {
	return f.learners, nil
}

func TestScanReportsOnlyNonZeroCounts(t *testing.T) {
	counter := &fakeCounter{counts: map[string]int{"a": 5, "b": 0, "c": 2}}
	lister := &fakeLister{learners: []string{"a", "b", "c"}}

	got := make(map[string]int)
	d := New(counter, lister, func(learnerID string, n int) {
		got[learnerID] = n
	})
	d.Scan()

	if len(got) != 2 {
		t.Fatalf("digest entries = %d, want 2", len(got))
	}
	if got["a"] != 5 || got["c"] != 2 {
		t.Errorf("digest = %v, want a:5 c:2", got)
	}
	if _, ok := got["b"]; ok {
		t.Error("learner with zero due items included in digest")
	}
}

func TestScanSkipsFailingLearners(t *testing.T) {
	counter := &fakeCounter{
		counts: map[string]int{"a": 1, "c": 3},
		fail:   map[string]bool{"b": true},
	}
	lister := &fakeLister{learners: []string{"a", "b", "c"}}

	var entries int
	d := New(counter, lister, func(string, int) { entries++ })
	d.Scan()

	if entries != 2 {
		t.Errorf("digest entries = %d, want 2 (failure skipped, not fatal)", entries)
	}
}
