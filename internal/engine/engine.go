// Package engine wires the scheduling core over the store and exposes the
// operations the surrounding platform calls.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/lexora/srs/internal/plan"
	"github.com/lexora/srs/internal/review"
	"github.com/lexora/srs/internal/session"
	"github.com/lexora/srs/internal/sm2"
	"github.com/lexora/srs/internal/store"
	"github.com/lexora/srs/internal/streaks"
)

// Engine is the scheduling engine facade.
type Engine struct {
	store    *store.Store
	recorder *review.Recorder
	resolver *review.Resolver
	tracker  *streaks.Tracker

	now func() time.Time
}

// New builds an Engine over an open store.
func New(st *store.Store) *Engine {
	schedules := st.Schedules()
	attempts := st.Attempts()
	tracker := streaks.NewTracker(st.Streaks(), st.Achievements(), schedules, attempts)

	return &Engine{
		store:    st,
		recorder: review.NewRecorder(schedules, attempts, st.Catalog(), tracker),
		resolver: review.NewResolver(schedules),
		tracker:  tracker,
		now:      time.Now,
	}
}

// WithClock replaces the wall clock. Test hook.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	e.recorder.WithClock(now)
	return e
}

// RecordAttempt records one answer event: classify, reschedule, persist,
// update streaks and achievements. Callers that retry after a transient
// failure should set req.AttemptID so the retry replays instead of
// re-reviewing.
func (e *Engine) RecordAttempt(ctx context.Context, req review.AttemptRequest) (*review.AttemptResult, error) {
	return e.recorder.RecordAttempt(ctx, req)
}

// InitializeSchedule eagerly creates the schedule for a (learner, item)
// pair. Idempotent.
func (e *Engine) InitializeSchedule(ctx context.Context, learnerID, itemID string) (sm2.State, error) {
	return e.recorder.InitializeSchedule(ctx, learnerID, itemID)
}

// GetDueItems returns the learner's due item IDs as of asOf.
func (e *Engine) GetDueItems(ctx context.Context, learnerID string, asOf time.Time) ([]string, error) {
	return e.resolver.DueNow(ctx, learnerID, asOf)
}

// GetForecast returns a dense per-day due histogram for the next
// horizonDays days.
func (e *Engine) GetForecast(ctx context.Context, learnerID string, horizonDays int) ([]review.ForecastBucket, error) {
	return e.resolver.Forecast(ctx, learnerID, horizonDays, e.now())
}

// DueCount returns how many items the learner has due as of asOf.
func (e *Engine) DueCount(ctx context.Context, learnerID string, asOf time.Time) (int, error) {
	due, err := e.resolver.DueNow(ctx, learnerID, asOf)
	if err != nil {
		return 0, err
	}
	return len(due), nil
}

// ClassificationCounts buckets the learner's scheduled items by retention
// strength (mastered, learning, struggling).
func (e *Engine) ClassificationCounts(ctx context.Context, learnerID string) (map[sm2.Classification]int, error) {
	return e.resolver.CountByClassification(ctx, learnerID)
}

// ListLearners enumerates every registered learner.
func (e *Engine) ListLearners(ctx context.Context) ([]string, error) {
	return e.store.Catalog().ListLearners(ctx)
}

// StreakInfo is a learner's streak plus earned achievements.
type StreakInfo struct {
	Streak       streaks.Streak
	Achievements []store.Award
}

// GetStreak returns the learner's streak and achievements.
func (e *Engine) GetStreak(ctx context.Context, learnerID string) (*StreakInfo, error) {
	s, err := e.tracker.Get(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	awards, err := e.store.Achievements().List(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	return &StreakInfo{Streak: *s, Achievements: awards}, nil
}

// PlanStudySchedule forecasts how a learner can clear the given sets by
// targetDate. Set totals come from the catalog; per-set mastered counts come
// from the learner's current schedules.
func (e *Engine) PlanStudySchedule(ctx context.Context, setIDs []string, targetDate time.Time, strategy plan.Strategy, learnerID string) (*plan.Plan, error) {
	ok, err := e.store.Catalog().LearnerExists(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("check learner: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", review.ErrLearnerNotFound, learnerID)
	}

	summaries, err := e.setSummaries(ctx, setIDs, learnerID)
	if err != nil {
		return nil, err
	}

	return plan.Build(plan.Input{
		Sets:       summaries,
		TargetDate: targetDate,
		Strategy:   strategy,
		Now:        e.now(),
	})
}

// PlanFromTemplate runs a stored study-plan template for a learner.
func (e *Engine) PlanFromTemplate(ctx context.Context, planID, learnerID string) (*plan.Plan, error) {
	tmpl, err := e.store.Plans().Get(ctx, planID)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, fmt.Errorf("study plan %s not found", planID)
	}
	return e.PlanStudySchedule(ctx, tmpl.SetIDs, tmpl.TargetDate, tmpl.Strategy, learnerID)
}

func (e *Engine) setSummaries(ctx context.Context, setIDs []string, learnerID string) ([]plan.SetSummary, error) {
	schedules, err := e.store.Schedules().ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}

	summaries := make([]plan.SetSummary, 0, len(setIDs))
	for _, setID := range setIDs {
		items, err := e.store.Catalog().ItemsInSet(ctx, setID)
		if err != nil {
			return nil, err
		}
		mastered := 0
		for _, itemID := range items {
			if s, ok := schedules[itemID]; ok && s.Classify() == sm2.ClassMastered {
				mastered++
			}
		}
		summaries = append(summaries, plan.SetSummary{
			SetID:    setID,
			Total:    len(items),
			Mastered: mastered,
		})
	}
	return summaries, nil
}

// SaveSession persists session progress. Upsert keyed by (learner, set).
func (e *Engine) SaveSession(ctx context.Context, s session.State) error {
	return e.store.Sessions().Save(ctx, s)
}

// LoadSession returns the learner's in-flight session for a set, or nil.
func (e *Engine) LoadSession(ctx context.Context, learnerID, setID string) (*session.State, error) {
	return e.store.Sessions().Load(ctx, learnerID, setID)
}

// ClearSession drops a finished or abandoned session.
func (e *Engine) ClearSession(ctx context.Context, learnerID, setID string) error {
	return e.store.Sessions().Clear(ctx, learnerID, setID)
}

// Store exposes the underlying store for commands that need direct repo
// access (seeding, reset).
func (e *Engine) Store() *store.Store {
	return e.store
}
