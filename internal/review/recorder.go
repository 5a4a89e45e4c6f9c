package review

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/lexora/srs/internal/sm2"
)

// Recorder orchestrates one answer event end to end: classify, schedule,
// persist, then notify the progress tracker. The scheduling math itself is
// injected via the sm2 package and stays unit-testable without any store.
type Recorder struct {
	schedules ScheduleStore
	attempts  AttemptLog
	catalog   Catalog
	tracker   ProgressTracker

	// now is swappable for tests.
	now func() time.Time
}

// NewRecorder creates a Recorder over the given collaborators. tracker may
// be nil when streak tracking is not wanted.
func NewRecorder(schedules ScheduleStore, attempts AttemptLog, catalog Catalog, tracker ProgressTracker) *Recorder {
	return &Recorder{
		schedules: schedules,
		attempts:  attempts,
		catalog:   catalog,
		tracker:   tracker,
		now:       time.Now,
	}
}

// WithClock replaces the wall clock. Test hook.
func (r *Recorder) WithClock(now func() time.Time) *Recorder {
	r.now = now
	return r
}

// AttemptRequest is one answer event from the platform.
type AttemptRequest struct {
	// AttemptID is the attempt's idempotency key. Callers that retry after a
	// transient store failure must resend the same key; the retry then
	// returns the recorded outcome instead of applying the review twice.
	// Left empty, a fresh key is generated.
	AttemptID string

	LearnerID      string
	ItemID         string
	SelectedIndex  int
	ResponseTimeMs int
	// HasTiming is false when the client captured no latency; the classifier
	// then falls back to the neutral-good rating for correct answers.
	HasTiming bool
}

// AttemptResult reports the outcome of a recorded attempt.
type AttemptResult struct {
	Correct  bool
	Quality  sm2.Quality
	Schedule sm2.State

	// Unlocked lists achievements granted by this attempt's practice update.
	Unlocked []string

	// Degraded is true when the scheduling write succeeded but the streak or
	// achievement update failed. The review itself is valid and durable.
	Degraded bool
}

// RecordAttempt is the main write path. The schedule upsert happens before
// the attempt append, so a retry never records an attempt without a
// corresponding schedule update, and a retried AttemptID replays the stored
// outcome instead of advancing the schedule a second time. Tracker failures
// are logged and swallowed: they must never roll back a scheduling write.
func (r *Recorder) RecordAttempt(ctx context.Context, req AttemptRequest) (*AttemptResult, error) {
	if req.SelectedIndex < 0 {
		return nil, &ValidationError{Field: "selected_index", Reason: "must be non-negative"}
	}

	ok, err := r.catalog.LearnerExists(ctx, req.LearnerID)
	if err != nil {
		return nil, fmt.Errorf("check learner: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLearnerNotFound, req.LearnerID)
	}

	correctIdx, err := r.catalog.CorrectIndex(ctx, req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("look up item %s: %w", req.ItemID, err)
	}
	choiceCount, err := r.catalog.ChoiceCount(ctx, req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("look up item %s: %w", req.ItemID, err)
	}
	if choiceCount > 0 && req.SelectedIndex >= choiceCount {
		return nil, &ValidationError{Field: "selected_index", Reason: "outside choice range"}
	}

	if req.AttemptID == "" {
		req.AttemptID = uuid.NewString()
	} else if res, err := r.replay(ctx, req); err != nil {
		return nil, err
	} else if res != nil {
		return res, nil
	}

	now := r.now()
	correct := req.SelectedIndex == correctIdx
	quality := sm2.Classify(correct, req.ResponseTimeMs, req.HasTiming)

	state, err := r.loadOrInit(ctx, req.LearnerID, req.ItemID, now)
	if err != nil {
		return nil, err
	}

	// A schedule already stamped with this attempt's key means an earlier
	// delivery advanced it and then died before the append. Skip the review
	// step and finish the interrupted write instead of applying it twice.
	next := state
	if state.LastAttemptID != req.AttemptID {
		next, err = sm2.Review(state, quality, now)
		if err != nil {
			return nil, fmt.Errorf("review schedule: %w", err)
		}
		next.LastAttemptID = req.AttemptID

		if err := r.schedules.Upsert(ctx, req.LearnerID, req.ItemID, next); err != nil {
			return nil, fmt.Errorf("persist schedule: %w", err)
		}
	}

	attempt := Attempt{
		AttemptID:     req.AttemptID,
		LearnerID:     req.LearnerID,
		ItemID:        req.ItemID,
		SelectedIndex: req.SelectedIndex,
		Correct:       correct,
		TimeMs:        req.ResponseTimeMs,
		Quality:       quality,
		Timestamp:     now,
	}
	if err := r.attempts.Append(ctx, attempt); err != nil {
		return nil, fmt.Errorf("append attempt: %w", err)
	}

	result := &AttemptResult{Correct: correct, Quality: quality, Schedule: next}

	if r.tracker != nil {
		unlocked, trackErr := r.tracker.RecordPractice(ctx, req.LearnerID, now)
		if trackErr != nil {
			fmt.Fprintf(os.Stderr, "warning: progress update for %s failed: %v\n", req.LearnerID, trackErr)
			result.Degraded = true
		} else {
			result.Unlocked = unlocked
		}
	}

	return result, nil
}

// replay returns the recorded outcome when the request's idempotency key
// was already appended, or nil when this is a first delivery. The schedule
// current at replay time is the one the original attempt produced, since
// the upsert precedes the append.
func (r *Recorder) replay(ctx context.Context, req AttemptRequest) (*AttemptResult, error) {
	prior, err := r.attempts.Find(ctx, req.AttemptID)
	if err != nil {
		return nil, fmt.Errorf("check attempt %s: %w", req.AttemptID, err)
	}
	if prior == nil {
		return nil, nil
	}
	state, err := r.schedules.Get(ctx, prior.LearnerID, prior.ItemID)
	if err != nil {
		return nil, fmt.Errorf("load schedule for replay: %w", err)
	}
	return &AttemptResult{Correct: prior.Correct, Quality: prior.Quality, Schedule: state}, nil
}

// InitializeSchedule creates the schedule for a (learner, item) pair, or
// returns the existing one unchanged. Idempotent: a second call is a no-op.
func (r *Recorder) InitializeSchedule(ctx context.Context, learnerID, itemID string) (sm2.State, error) {
	ok, err := r.catalog.LearnerExists(ctx, learnerID)
	if err != nil {
		return sm2.State{}, fmt.Errorf("check learner: %w", err)
	}
	if !ok {
		return sm2.State{}, fmt.Errorf("%w: %s", ErrLearnerNotFound, learnerID)
	}
	if _, err := r.catalog.CorrectIndex(ctx, itemID); err != nil {
		return sm2.State{}, fmt.Errorf("look up item %s: %w", itemID, err)
	}
	return r.loadOrInit(ctx, learnerID, itemID, r.now())
}

// loadOrInit fetches the pair's schedule, synthesizing and persisting a
// fresh one on first contact.
func (r *Recorder) loadOrInit(ctx context.Context, learnerID, itemID string, now time.Time) (sm2.State, error) {
	state, err := r.schedules.Get(ctx, learnerID, itemID)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, ErrScheduleNotFound) {
		return sm2.State{}, fmt.Errorf("load schedule: %w", err)
	}

	state = sm2.NewState(now)
	if err := r.schedules.Upsert(ctx, learnerID, itemID, state); err != nil {
		return sm2.State{}, fmt.Errorf("initialize schedule: %w", err)
	}
	return state, nil
}
