package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexora/srs/internal/plan"
	"github.com/lexora/srs/internal/review"
	"github.com/lexora/srs/internal/session"
	"github.com/lexora/srs/internal/sm2"
	"github.com/lexora/srs/internal/store"
)

var engineNow = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	ctx := context.Background()
	catalog := st.Catalog()
	require.NoError(t, catalog.RegisterLearner(ctx, "lea", "Lea"))
	require.NoError(t, catalog.RegisterItem(ctx, "item-1", "set-1", "capital of France?", []string{"Lyon", "Paris"}, 1))
	require.NoError(t, catalog.RegisterItem(ctx, "item-2", "set-1", "capital of Japan?", []string{"Tokyo", "Kyoto"}, 0))
	require.NoError(t, catalog.RegisterItem(ctx, "item-3", "set-2", "2+2?", []string{"3", "4"}, 1))

	return New(st).WithClock(func() time.Time { return engineNow })
}

func TestRecordAttemptEndToEnd(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	res, err := e.RecordAttempt(ctx, review.AttemptRequest{LearnerID: "lea", ItemID: "item-1", SelectedIndex: 1, ResponseTimeMs: 3000, HasTiming: true})
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, sm2.QualityEasy, res.Quality)
	assert.Equal(t, 1, res.Schedule.Repetitions)
	assert.False(t, res.Degraded)

	// Schedule persisted.
	state, err := e.Store().Schedules().Get(ctx, "lea", "item-1")
	require.NoError(t, err)
	assert.InDelta(t, 2.65, state.EaseFactor, 1e-9)

	// Attempt logged.
	n, err := e.Store().Attempts().CountByLearner(ctx, "lea")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Streak started.
	info, err := e.GetStreak(ctx, "lea")
	require.NoError(t, err)
	assert.Equal(t, 1, info.Streak.CurrentDays)
}

func TestRecordAttemptIdempotencyKey(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	req := review.AttemptRequest{
		AttemptID: "delivery-1", LearnerID: "lea", ItemID: "item-1",
		SelectedIndex: 1, ResponseTimeMs: 3000, HasTiming: true,
	}
	first, err := e.RecordAttempt(ctx, req)
	require.NoError(t, err)
	second, err := e.RecordAttempt(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, 1, first.Schedule.Repetitions)
	assert.Equal(t, 1, second.Schedule.Repetitions, "resend must not advance the schedule")
	assert.Equal(t, first.Schedule.EaseFactor, second.Schedule.EaseFactor)

	n, err := e.Store().Attempts().CountByLearner(ctx, "lea")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecordAttemptIndexOutsideChoices(t *testing.T) {
	e := newTestEngine(t)

	// item-1 has two choices; index 5 is past both.
	_, err := e.RecordAttempt(context.Background(), review.AttemptRequest{
		LearnerID: "lea", ItemID: "item-1", SelectedIndex: 5,
	})
	assert.True(t, review.IsValidation(err), "error = %v, want ValidationError", err)
}

func TestRecordAttemptUnknownIDs(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	_, err := e.RecordAttempt(ctx, review.AttemptRequest{LearnerID: "ghost", ItemID: "item-1", SelectedIndex: 0, ResponseTimeMs: 0, HasTiming: false})
	assert.ErrorIs(t, err, review.ErrLearnerNotFound)

	_, err = e.RecordAttempt(ctx, review.AttemptRequest{LearnerID: "lea", ItemID: "missing", SelectedIndex: 0, ResponseTimeMs: 0, HasTiming: false})
	assert.ErrorIs(t, err, review.ErrItemNotFound)
}

func TestDueAndForecastFlow(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	// A wrong answer leaves the item due immediately.
	_, err := e.RecordAttempt(ctx, review.AttemptRequest{LearnerID: "lea", ItemID: "item-1", SelectedIndex: 0, ResponseTimeMs: 2000, HasTiming: true})
	require.NoError(t, err)
	// A correct answer pushes item-2 to tomorrow.
	_, err = e.RecordAttempt(ctx, review.AttemptRequest{LearnerID: "lea", ItemID: "item-2", SelectedIndex: 0, ResponseTimeMs: 2000, HasTiming: true})
	require.NoError(t, err)

	due, err := e.GetDueItems(ctx, "lea", engineNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"item-1"}, due)

	buckets, err := e.GetForecast(ctx, "lea", 3)
	require.NoError(t, err)
	require.Len(t, buckets, 3)
	assert.Equal(t, 1, buckets[0].Count) // item-1 due now
	assert.Equal(t, 1, buckets[1].Count) // item-2 due tomorrow
	assert.Equal(t, 0, buckets[2].Count)
}

func TestInitializeScheduleIdempotent(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	first, err := e.InitializeSchedule(ctx, "lea", "item-1")
	require.NoError(t, err)
	assert.Equal(t, 0, first.Repetitions)
	assert.True(t, first.IsDue(engineNow))

	// Review it, then re-init: the reviewed state must survive.
	_, err = e.RecordAttempt(ctx, review.AttemptRequest{LearnerID: "lea", ItemID: "item-1", SelectedIndex: 1, ResponseTimeMs: 3000, HasTiming: true})
	require.NoError(t, err)

	again, err := e.InitializeSchedule(ctx, "lea", "item-1")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Repetitions, "second initialize must return existing state")
}

func TestPlanStudySchedule(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	p, err := e.PlanStudySchedule(ctx, []string{"set-1", "set-2"}, engineNow.AddDate(0, 0, 3), plan.StrategyBalanced, "lea")
	require.NoError(t, err)
	assert.Equal(t, 3, p.RemainingItems)
	assert.Equal(t, 3, p.DaysRemaining)
	assert.Equal(t, 1, p.DailyNewTarget)
	assert.Len(t, p.Schedule, 3)

	_, err = e.PlanStudySchedule(ctx, []string{"set-1"}, engineNow, plan.StrategyBalanced, "ghost")
	assert.ErrorIs(t, err, review.ErrLearnerNotFound)
}

func TestPlanFromTemplate(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	id, err := e.Store().Plans().Create(ctx, store.PlanTemplate{
		Name:       "geo",
		SetIDs:     []string{"set-1"},
		TargetDate: engineNow.AddDate(0, 0, 2),
		Strategy:   plan.StrategySequential,
		CreatedBy:  "teacher-1",
	})
	require.NoError(t, err)

	p, err := e.PlanFromTemplate(ctx, id, "lea")
	require.NoError(t, err)
	assert.Equal(t, 2, p.RemainingItems)

	_, err = e.PlanFromTemplate(ctx, "missing", "lea")
	assert.Error(t, err)
}

func TestSessionLifecycle(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	s := session.State{
		SessionID:    "sess-1",
		LearnerID:    "lea",
		SetID:        "set-1",
		CurrentIndex: 1,
		Completed:    []session.ItemResult{{ItemID: "item-1", Correct: true, TimeMs: 3000}},
		StartedAt:    engineNow,
		UpdatedAt:    engineNow,
	}
	require.NoError(t, e.SaveSession(ctx, s))
	require.NoError(t, e.SaveSession(ctx, s)) // idempotent

	loaded, err := e.LoadSession(ctx, "lea", "set-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 1, loaded.CurrentIndex)

	require.NoError(t, e.ClearSession(ctx, "lea", "set-1"))
	loaded, err = e.LoadSession(ctx, "lea", "set-1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
