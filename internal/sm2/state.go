package sm2

import "time"

// Defaults for a freshly initialized schedule.
const (
	InitialEaseFactor  = 2.5
	InitialIntervalDay = 1
	MinEaseFactor      = 1.3
)

// State holds the spaced-repetition scheduling state for a single
// (learner, item) pair. It is self-contained: reviewing never consults the
// attempt history, only the previous State.
type State struct {
	EaseFactor   float64   `json:"ease_factor"`
	IntervalDays int       `json:"interval_days"`
	Repetitions  int       `json:"repetitions"`
	NextReview   time.Time `json:"next_review_date"`

	// Audit fields, not used in computation. LastAttemptID is the
	// idempotency key of the attempt that produced this state; a retried
	// attempt carrying the same key must not advance the schedule again.
	LastReviewed  time.Time `json:"last_reviewed_at"`
	LastQuality   Quality   `json:"last_quality_rating"`
	LastAttemptID string    `json:"last_attempt_id"`
}

// NewState returns the initial schedule for an item a learner has not
// reviewed yet: due immediately, standard ease, one-day interval.
func NewState(now time.Time) State {
	return State{
		EaseFactor:   InitialEaseFactor,
		IntervalDays: InitialIntervalDay,
		Repetitions:  0,
		NextReview:   now,
	}
}

// IsDue reports whether the item is due at t. The boundary is inclusive:
// an item whose review date equals t counts as due.
func (s State) IsDue(t time.Time) bool {
	return !s.NextReview.After(t)
}

// OverdueDays returns how many days past due the state is at t, or 0 if the
// item is not yet due. Used only for display ordering.
func (s State) OverdueDays(t time.Time) float64 {
	if !s.IsDue(t) {
		return 0
	}
	return t.Sub(s.NextReview).Hours() / 24.0
}

// Classification buckets a schedule by retention strength. Derived at read
// time from State, never stored.
type Classification string

const (
	ClassMastered   Classification = "mastered"
	ClassLearning   Classification = "learning"
	ClassStruggling Classification = "struggling"
)

// Mastery thresholds for Classify.
const (
	masteredEase     = 3.0
	masteredInterval = 21
	strugglingEase   = 2.0
)

// Classify returns the mastery classification for a schedule state.
func (s State) Classify() Classification {
	if s.EaseFactor >= masteredEase && s.IntervalDays >= masteredInterval {
		return ClassMastered
	}
	if s.Repetitions == 0 || s.EaseFactor < strugglingEase {
		return ClassStruggling
	}
	return ClassLearning
}
