package review

import (
	"context"
	"testing"
	"time"

	"github.com/lexora/srs/internal/sm2"
)

func seedResolver(t *testing.T) (*Resolver, *memScheduleStore) {
	t.Helper()
	schedules := newMemScheduleStore()
	return NewResolver(schedules), schedules
}

func TestDueNowBoundary(t *testing.T) {
	r, schedules := seedResolver(t)
	ctx := context.Background()

	schedules.states[pairKey("lea", "exact")] = sm2.State{NextReview: testNow}
	schedules.states[pairKey("lea", "past")] = sm2.State{NextReview: testNow.Add(-time.Hour)}
	schedules.states[pairKey("lea", "future")] = sm2.State{NextReview: testNow.Add(time.Second)}

	due, err := r.DueNow(ctx, "lea", testNow)
	if err != nil {
		t.Fatal(err)
	}

	got := make(map[string]bool)
	for _, id := range due {
		got[id] = true
	}
	if !got["exact"] {
		t.Error("item due exactly at T not returned; boundary must be inclusive")
	}
	if !got["past"] {
		t.Error("overdue item not returned")
	}
	if got["future"] {
		t.Error("future item returned as due")
	}
}

func TestDueNowMostOverdueFirst(t *testing.T) {
	r, schedules := seedResolver(t)

	schedules.states[pairKey("lea", "a")] = sm2.State{NextReview: testNow.Add(-time.Hour)}
	schedules.states[pairKey("lea", "b")] = sm2.State{NextReview: testNow.Add(-72 * time.Hour)}
	schedules.states[pairKey("lea", "c")] = sm2.State{NextReview: testNow.Add(-24 * time.Hour)}

	due, err := r.DueNow(context.Background(), "lea", testNow)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"b", "c", "a"}
	for i := range want {
		if due[i] != want[i] {
			t.Fatalf("due order = %v, want %v", due, want)
		}
	}
}

func TestDueNowIsolatedPerLearner(t *testing.T) {
	r, schedules := seedResolver(t)

	schedules.states[pairKey("lea", "mine")] = sm2.State{NextReview: testNow.Add(-time.Hour)}
	schedules.states[pairKey("other", "theirs")] = sm2.State{NextReview: testNow.Add(-time.Hour)}

	due, err := r.DueNow(context.Background(), "lea", testNow)
	if err != nil {
		t.Fatal(err)
	}
	if len(due) != 1 || due[0] != "mine" {
		t.Errorf("due = %v, want [mine]", due)
	}
}

func TestForecastDensity(t *testing.T) {
	r, schedules := seedResolver(t)
	ctx := context.Background()

	for _, horizon := range []int{0, 1, 7, 30} {
		buckets, err := r.Forecast(ctx, "lea", horizon, testNow)
		if err != nil {
			t.Fatalf("forecast(%d): %v", horizon, err)
		}
		if len(buckets) != horizon {
			t.Errorf("forecast(%d) returned %d buckets, want %d", horizon, len(buckets), horizon)
		}
		for i, b := range buckets {
			if b.Count != 0 {
				t.Errorf("empty learner: bucket %d count = %d, want 0", i, b.Count)
			}
		}
	}

	// Dense even with sparse schedules.
	schedules.states[pairKey("lea", "x")] = sm2.State{NextReview: testNow.AddDate(0, 0, 5)}
	buckets, err := r.Forecast(ctx, "lea", 7, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if len(buckets) != 7 {
		t.Fatalf("buckets = %d, want 7", len(buckets))
	}
	if buckets[5].Count != 1 {
		t.Errorf("day 5 count = %d, want 1", buckets[5].Count)
	}
}

func TestForecastOverdueCountsAsToday(t *testing.T) {
	r, schedules := seedResolver(t)

	schedules.states[pairKey("lea", "stale")] = sm2.State{NextReview: testNow.AddDate(0, 0, -10)}
	schedules.states[pairKey("lea", "today")] = sm2.State{NextReview: testNow}
	schedules.states[pairKey("lea", "beyond")] = sm2.State{NextReview: testNow.AddDate(0, 0, 40)}

	buckets, err := r.Forecast(context.Background(), "lea", 7, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if buckets[0].Count != 2 {
		t.Errorf("day 0 count = %d, want 2 (overdue folds into today)", buckets[0].Count)
	}
	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	if total != 2 {
		t.Errorf("total within horizon = %d, want 2 (beyond-horizon item excluded)", total)
	}
}

func TestForecastBucketsByCalendarDayAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	r, schedules := seedResolver(t)

	// The night of 2026-03-08 is spring-forward: only 71 hours separate
	// midnight Mar 7 from midnight Mar 10. The item must still land on its
	// own calendar day, not one bucket early.
	now := time.Date(2026, 3, 7, 9, 0, 0, 0, loc)
	schedules.states[pairKey("lea", "due-mar-10")] = sm2.State{
		NextReview: time.Date(2026, 3, 10, 9, 0, 0, 0, loc),
	}

	buckets, err := r.Forecast(context.Background(), "lea", 5, now)
	if err != nil {
		t.Fatal(err)
	}
	for i, b := range buckets {
		want := 0
		if b.Date.Day() == 10 {
			want = 1
		}
		if b.Count != want {
			t.Errorf("bucket %d (%s): count = %d, want %d", i, b.Date.Format("2006-01-02"), b.Count, want)
		}
	}
}

func TestForecastNegativeHorizon(t *testing.T) {
	r, _ := seedResolver(t)
	if _, err := r.Forecast(context.Background(), "lea", -1, testNow); !IsValidation(err) {
		t.Errorf("error = %v, want ValidationError", err)
	}
}

func TestCountByClassification(t *testing.T) {
	r, schedules := seedResolver(t)

	schedules.states[pairKey("lea", "m")] = sm2.State{EaseFactor: 3.2, IntervalDays: 30, Repetitions: 6}
	schedules.states[pairKey("lea", "l")] = sm2.State{EaseFactor: 2.5, IntervalDays: 7, Repetitions: 2}
	schedules.states[pairKey("lea", "s")] = sm2.State{EaseFactor: 2.5, IntervalDays: 1, Repetitions: 0}

	counts, err := r.CountByClassification(context.Background(), "lea")
	if err != nil {
		t.Fatal(err)
	}
	if counts[sm2.ClassMastered] != 1 || counts[sm2.ClassLearning] != 1 || counts[sm2.ClassStruggling] != 1 {
		t.Errorf("counts = %v, want one of each", counts)
	}
}
