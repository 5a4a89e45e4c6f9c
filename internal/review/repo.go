package review

import (
	"context"
	"time"

	"github.com/lexora/srs/internal/sm2"
)

// Attempt is one append-only answer event. Write-once; never mutated.
type Attempt struct {
	AttemptID     string
	LearnerID     string
	ItemID        string
	SelectedIndex int
	Correct       bool
	TimeMs        int
	Quality       sm2.Quality
	Timestamp     time.Time
}

// ScheduleStore is the durable (learner, item) -> schedule mapping. The
// engine reads and writes through it; it never implements storage itself.
type ScheduleStore interface {
	// Get returns the schedule for a pair, or ErrScheduleNotFound.
	Get(ctx context.Context, learnerID, itemID string) (sm2.State, error)

	// Upsert writes the schedule for a pair, creating it if absent.
	Upsert(ctx context.Context, learnerID, itemID string, s sm2.State) error

	// ListByLearner returns every schedule a learner has, keyed by item ID.
	ListByLearner(ctx context.Context, learnerID string) (map[string]sm2.State, error)
}

// AttemptLog is the append-only attempt event sink. Append must be
// duplicate-safe on AttemptID; Find is how the recorder detects a retry.
type AttemptLog interface {
	Append(ctx context.Context, a Attempt) error

	// Find returns the attempt with the given idempotency key, or nil when
	// none exists.
	Find(ctx context.Context, attemptID string) (*Attempt, error)
}

// Catalog resolves item answers and learner existence. Owned by the
// surrounding platform; the engine consumes it read-only.
type Catalog interface {
	// CorrectIndex returns the correct answer index for an item, or
	// ErrItemNotFound.
	CorrectIndex(ctx context.Context, itemID string) (int, error)

	// ChoiceCount returns how many answer choices an item carries, or zero
	// when the catalog holds no choice list for it.
	ChoiceCount(ctx context.Context, itemID string) (int, error)

	// LearnerExists reports whether the learner is known.
	LearnerExists(ctx context.Context, learnerID string) (bool, error)
}

// ProgressTracker receives practice notifications after a scheduling write.
// Implementations update streaks and evaluate achievements; returned IDs are
// achievements unlocked by this practice.
type ProgressTracker interface {
	RecordPractice(ctx context.Context, learnerID string, now time.Time) ([]string, error)
}
