package sm2

import (
	"errors"
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

func TestEaseDeltaByQuality(t *testing.T) {
	tests := []struct {
		quality  Quality
		wantEase float64
	}{
		{QualityEasy, 2.65},
		{QualityGood, 2.5},
		{QualityHard, 2.5},
		{QualityHesitant, 2.3},
		{QualityAgain, 2.2},
	}

	for _, tt := range tests {
		s := NewState(testNow)
		got, err := Review(s, tt.quality, testNow)
		if err != nil {
			t.Fatalf("Review(q=%d): %v", tt.quality, err)
		}
		if math.Abs(got.EaseFactor-tt.wantEase) > 1e-9 {
			t.Errorf("Review(q=%d) ease = %v, want %v", tt.quality, got.EaseFactor, tt.wantEase)
		}
	}
}

func TestEaseNeverBelowFloor(t *testing.T) {
	s := NewState(testNow)
	now := testNow

	// Twenty lapses in a row must not push ease below 1.3.
	for i := 0; i < 20; i++ {
		var err error
		s, err = Review(s, QualityAgain, now)
		if err != nil {
			t.Fatalf("review %d: %v", i, err)
		}
		if s.EaseFactor < MinEaseFactor {
			t.Fatalf("review %d: ease = %v, below floor %v", i, s.EaseFactor, MinEaseFactor)
		}
		now = now.Add(time.Hour)
	}
	if s.EaseFactor != MinEaseFactor {
		t.Errorf("ease after repeated lapses = %v, want exactly %v", s.EaseFactor, MinEaseFactor)
	}
}

func TestLapseResetsProgress(t *testing.T) {
	for _, q := range []Quality{QualityAgain, QualityHesitant} {
		s := State{
			EaseFactor:   2.5,
			IntervalDays: 14,
			Repetitions:  4,
			NextReview:   testNow,
		}
		got, err := Review(s, q, testNow)
		if err != nil {
			t.Fatalf("Review(q=%d): %v", q, err)
		}
		if got.Repetitions != 0 {
			t.Errorf("q=%d: repetitions = %d, want 0", q, got.Repetitions)
		}
		if got.IntervalDays != 0 {
			t.Errorf("q=%d: interval = %d, want 0", q, got.IntervalDays)
		}
		if !got.NextReview.Equal(testNow) {
			t.Errorf("q=%d: next review = %v, want due immediately", q, got.NextReview)
		}
	}
}

func TestIntervalGrowthOnRepeatedSuccess(t *testing.T) {
	s := NewState(testNow)
	now := testNow

	var intervals []int
	var eases []float64
	for i := 0; i < 3; i++ {
		var err error
		s, err = Review(s, QualityEasy, now)
		if err != nil {
			t.Fatalf("review %d: %v", i, err)
		}
		intervals = append(intervals, s.IntervalDays)
		eases = append(eases, s.EaseFactor)
		now = s.NextReview
	}

	if intervals[0] != 1 {
		t.Errorf("first interval = %d, want 1", intervals[0])
	}
	if intervals[1] != 3 {
		t.Errorf("second interval = %d, want 3", intervals[1])
	}
	wantThird := int(math.Round(3 * eases[2]))
	if intervals[2] != wantThird {
		t.Errorf("third interval = %d, want round(3*%v) = %d", intervals[2], eases[2], wantThird)
	}
	if !(eases[0] < eases[1] && eases[1] < eases[2]) {
		t.Errorf("ease not strictly increasing: %v", eases)
	}
}

func TestOneDayIntervalDueNextCalendarDay(t *testing.T) {
	// Late-evening answer: due date must be the start of tomorrow, not
	// now+24h (which would land two calendar days out).
	lateEvening := time.Date(2026, 3, 10, 23, 45, 0, 0, time.UTC)
	got, err := Review(NewState(lateEvening), QualityEasy, lateEvening)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	if !got.NextReview.Equal(want) {
		t.Errorf("next review = %v, want %v", got.NextReview, want)
	}
}

func TestMultiDayIntervalDueFromNow(t *testing.T) {
	s := State{EaseFactor: 2.5, IntervalDays: 1, Repetitions: 1, NextReview: testNow}
	got, err := Review(s, QualityGood, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if got.IntervalDays != 3 {
		t.Fatalf("interval = %d, want 3", got.IntervalDays)
	}
	want := testNow.AddDate(0, 0, 3)
	if !got.NextReview.Equal(want) {
		t.Errorf("next review = %v, want %v", got.NextReview, want)
	}
}

func TestNextReviewNeverBeforeComputation(t *testing.T) {
	qualities := []Quality{QualityEasy, QualityAgain, QualityGood, QualityHesitant, QualityHard, QualityEasy}
	s := NewState(testNow)
	now := testNow
	for i, q := range qualities {
		var err error
		s, err = Review(s, q, now)
		if err != nil {
			t.Fatalf("review %d: %v", i, err)
		}
		if s.NextReview.Before(now) {
			t.Errorf("review %d (q=%d): next review %v before now %v", i, q, s.NextReview, now)
		}
		if s.IntervalDays < 0 {
			t.Errorf("review %d (q=%d): negative interval %d", i, q, s.IntervalDays)
		}
		now = now.Add(36 * time.Hour)
	}
}

func TestInvalidQualityRejected(t *testing.T) {
	for _, q := range []Quality{0, -1, 6, 42} {
		_, err := Review(NewState(testNow), q, testNow)
		if !errors.Is(err, ErrInvalidQuality) {
			t.Errorf("Review(q=%d) error = %v, want ErrInvalidQuality", q, err)
		}
	}
}

// TestWorkedScenario walks the documented three-review scenario end to end:
// fast correct, slow correct the next day, then a miss.
func TestWorkedScenario(t *testing.T) {
	day1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	s, err := Review(NewState(day1), Classify(true, 3000, true), day1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(s.EaseFactor-2.65) > 1e-9 {
		t.Errorf("after review 1: ease = %v, want 2.65", s.EaseFactor)
	}
	if s.IntervalDays != 1 || s.Repetitions != 1 {
		t.Errorf("after review 1: interval=%d reps=%d, want 1/1", s.IntervalDays, s.Repetitions)
	}
	wantDue := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	if !s.NextReview.Equal(wantDue) {
		t.Errorf("after review 1: due %v, want local midnight %v", s.NextReview, wantDue)
	}

	day2 := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	s, err = Review(s, Classify(true, 12000, true), day2)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(s.EaseFactor-2.65) > 1e-9 {
		t.Errorf("after review 2: ease = %v, want unchanged 2.65", s.EaseFactor)
	}
	if s.IntervalDays != 3 || s.Repetitions != 2 {
		t.Errorf("after review 2: interval=%d reps=%d, want 3/2", s.IntervalDays, s.Repetitions)
	}

	day3 := s.NextReview
	s, err = Review(s, Classify(false, 2000, true), day3)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(s.EaseFactor-2.35) > 1e-9 {
		t.Errorf("after lapse: ease = %v, want 2.35", s.EaseFactor)
	}
	if s.IntervalDays != 0 || s.Repetitions != 0 {
		t.Errorf("after lapse: interval=%d reps=%d, want 0/0", s.IntervalDays, s.Repetitions)
	}
	if !s.IsDue(day3) {
		t.Error("after lapse: item should be due immediately")
	}
}
