package sm2

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidQuality indicates a quality rating outside [1,5]. This is a
// caller programming error, not a learner outcome: Classify never produces
// one, so it fails fast instead of being clamped.
var ErrInvalidQuality = errors.New("sm2: quality rating outside [1,5]")

// easeDelta returns the ease-factor adjustment for a quality rating.
func easeDelta(q Quality) float64 {
	switch q {
	case QualityEasy:
		return 0.15
	case QualityGood, QualityHard:
		return 0
	case QualityHesitant:
		return -0.20
	default: // QualityAgain
		return -0.30
	}
}

// Review applies one review outcome to a schedule state and returns the next
// state. It is a pure function: no I/O, no clock reads beyond now, safe to
// call from any number of concurrent callers.
//
// Ease is floored at MinEaseFactor. A lapse (q < 3) resets repetitions and
// interval to zero, making the item due immediately. On a pass the interval
// follows the 1 / 3 / round(interval * ease) ladder. A one-day interval is
// due at the start of the next calendar day rather than now+24h, so clock
// skew can't re-expose the item the same day.
func Review(s State, q Quality, now time.Time) (State, error) {
	if !q.Valid() {
		return State{}, fmt.Errorf("%w: %d", ErrInvalidQuality, q)
	}

	next := s
	next.EaseFactor = math.Max(MinEaseFactor, s.EaseFactor+easeDelta(q))
	next.LastReviewed = now
	next.LastQuality = q

	if !q.Passing() {
		next.Repetitions = 0
		next.IntervalDays = 0
		next.NextReview = now
		return next, nil
	}

	switch s.Repetitions {
	case 0:
		next.IntervalDays = 1
	case 1:
		next.IntervalDays = 3
	default:
		next.IntervalDays = int(math.Round(float64(s.IntervalDays) * next.EaseFactor))
	}
	next.Repetitions = s.Repetitions + 1

	if next.IntervalDays == 1 {
		next.NextReview = startOfNextDay(now)
	} else {
		next.NextReview = now.AddDate(0, 0, next.IntervalDays)
	}
	return next, nil
}

// startOfNextDay returns local midnight of the calendar day after t.
func startOfNextDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}
