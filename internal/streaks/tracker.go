package streaks

import (
	"context"
	"fmt"
	"time"

	"github.com/lexora/srs/internal/sm2"
)

// StreakStore persists one Streak row per learner.
type StreakStore interface {
	// Get returns the learner's streak, or nil when none exists yet.
	Get(ctx context.Context, learnerID string) (*Streak, error)

	// Upsert writes the streak, creating it if absent.
	Upsert(ctx context.Context, s Streak) error
}

// AchievementStore persists award records. Grant must be duplicate-safe:
// granting an already-held achievement is a no-op, not an error.
type AchievementStore interface {
	Has(ctx context.Context, learnerID, achievementID string) (bool, error)
	Grant(ctx context.Context, learnerID, achievementID string, at time.Time) error
}

// ScheduleSource is the read side of the schedule store the Tracker scans to
// recompute mastery totals.
type ScheduleSource interface {
	ListByLearner(ctx context.Context, learnerID string) (map[string]sm2.State, error)
}

// AttemptCounter counts a learner's lifetime attempts for the attempt
// thresholds.
type AttemptCounter interface {
	CountByLearner(ctx context.Context, learnerID string) (int, error)
}

// Tracker maintains daily-practice streaks and unlocks achievements.
type Tracker struct {
	streaks      StreakStore
	achievements AchievementStore
	schedules    ScheduleSource
	attempts     AttemptCounter
}

// NewTracker creates a Tracker over the given stores.
func NewTracker(streaks StreakStore, achievements AchievementStore, schedules ScheduleSource, attempts AttemptCounter) *Tracker {
	return &Tracker{
		streaks:      streaks,
		achievements: achievements,
		schedules:    schedules,
		attempts:     attempts,
	}
}

// RecordPractice applies the daily streak rule for a practice at now,
// recomputes the learner's mastery totals from a full schedule scan, and
// evaluates the achievement table. It returns the identifiers of newly
// granted achievements. Safe to call on every attempt: within a calendar day
// only the first call changes the streak, and totals recomputation is
// deliberately scan-based so repeated calls cannot drift.
func (t *Tracker) RecordPractice(ctx context.Context, learnerID string, now time.Time) ([]string, error) {
	streak, err := t.streaks.Get(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load streak: %w", err)
	}
	if streak == nil {
		streak = &Streak{LearnerID: learnerID}
	}

	advanced := streak.advance(now)

	learned, mastered, err := t.recomputeTotals(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	changed := advanced || learned != streak.TotalLearned || mastered != streak.TotalMastered
	streak.TotalLearned = learned
	streak.TotalMastered = mastered

	if changed {
		if err := t.streaks.Upsert(ctx, *streak); err != nil {
			return nil, fmt.Errorf("persist streak: %w", err)
		}
	}

	return t.evaluateAchievements(ctx, learnerID, streak, now)
}

// Get returns the learner's streak, synthesizing an empty one with fresh
// totals when the learner has never practiced.
func (t *Tracker) Get(ctx context.Context, learnerID string) (*Streak, error) {
	streak, err := t.streaks.Get(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load streak: %w", err)
	}
	if streak == nil {
		streak = &Streak{LearnerID: learnerID}
		learned, mastered, err := t.recomputeTotals(ctx, learnerID)
		if err != nil {
			return nil, err
		}
		streak.TotalLearned = learned
		streak.TotalMastered = mastered
	}
	return streak, nil
}

// recomputeTotals derives learned/mastered counts from a fresh scan of the
// learner's schedules. An O(items) scan per update is the price of counts
// that cannot drift.
func (t *Tracker) recomputeTotals(ctx context.Context, learnerID string) (learned, mastered int, err error) {
	schedules, err := t.schedules.ListByLearner(ctx, learnerID)
	if err != nil {
		return 0, 0, fmt.Errorf("scan schedules: %w", err)
	}
	for _, s := range schedules {
		switch s.Classify() {
		case sm2.ClassMastered:
			mastered++
			learned++
		case sm2.ClassLearning:
			learned++
		}
	}
	return learned, mastered, nil
}

func (t *Tracker) evaluateAchievements(ctx context.Context, learnerID string, streak *Streak, now time.Time) ([]string, error) {
	attempts, err := t.attempts.CountByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("count attempts: %w", err)
	}

	var granted []string
	for _, th := range crossed(streak.TotalMastered, streak.CurrentDays, attempts) {
		has, err := t.achievements.Has(ctx, learnerID, th.ID)
		if err != nil {
			return granted, fmt.Errorf("check achievement %s: %w", th.ID, err)
		}
		if has {
			continue
		}
		if err := t.achievements.Grant(ctx, learnerID, th.ID, now); err != nil {
			return granted, fmt.Errorf("grant achievement %s: %w", th.ID, err)
		}
		granted = append(granted, th.ID)
	}
	return granted, nil
}
