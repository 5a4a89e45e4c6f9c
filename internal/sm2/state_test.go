package sm2

import (
	"testing"
	"time"
)

func TestNewState(t *testing.T) {
	s := NewState(testNow)
	if s.EaseFactor != InitialEaseFactor {
		t.Errorf("ease = %v, want %v", s.EaseFactor, InitialEaseFactor)
	}
	if s.IntervalDays != InitialIntervalDay {
		t.Errorf("interval = %d, want %d", s.IntervalDays, InitialIntervalDay)
	}
	if s.Repetitions != 0 {
		t.Errorf("repetitions = %d, want 0", s.Repetitions)
	}
	if !s.IsDue(testNow) {
		t.Error("fresh state should be due immediately")
	}
}

func TestIsDueBoundaryInclusive(t *testing.T) {
	s := State{NextReview: testNow}

	if !s.IsDue(testNow) {
		t.Error("IsDue at exact review time = false, want true")
	}
	if !s.IsDue(testNow.Add(time.Nanosecond)) {
		t.Error("IsDue just past review time = false, want true")
	}
	if s.IsDue(testNow.Add(-time.Nanosecond)) {
		t.Error("IsDue just before review time = true, want false")
	}
}

func TestOverdueDays(t *testing.T) {
	s := State{NextReview: testNow}

	if got := s.OverdueDays(testNow.Add(-time.Hour)); got != 0 {
		t.Errorf("OverdueDays before due = %v, want 0", got)
	}
	if got := s.OverdueDays(testNow.Add(48 * time.Hour)); got != 2 {
		t.Errorf("OverdueDays two days past = %v, want 2", got)
	}
}

func TestClassify_Mastery(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Classification
	}{
		{"fresh", State{EaseFactor: 2.5, IntervalDays: 1, Repetitions: 0}, ClassStruggling},
		{"low ease", State{EaseFactor: 1.9, IntervalDays: 30, Repetitions: 5}, ClassStruggling},
		{"lapsed veteran", State{EaseFactor: 3.2, IntervalDays: 0, Repetitions: 0}, ClassStruggling},
		{"mid progress", State{EaseFactor: 2.5, IntervalDays: 7, Repetitions: 3}, ClassLearning},
		{"high ease short interval", State{EaseFactor: 3.1, IntervalDays: 14, Repetitions: 4}, ClassLearning},
		{"long interval moderate ease", State{EaseFactor: 2.8, IntervalDays: 40, Repetitions: 6}, ClassLearning},
		{"mastered boundary", State{EaseFactor: 3.0, IntervalDays: 21, Repetitions: 5}, ClassMastered},
		{"mastered", State{EaseFactor: 3.4, IntervalDays: 60, Repetitions: 8}, ClassMastered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.Classify(); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}
