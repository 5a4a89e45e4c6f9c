package store

import (
	"context"
	"fmt"

	"github.com/lexora/srs/ent"
	"github.com/lexora/srs/ent/schedule"
	"github.com/lexora/srs/internal/review"
	"github.com/lexora/srs/internal/sm2"
)

// scheduleRepo implements review.ScheduleStore over the ent client.
type scheduleRepo struct {
	client *ent.Client
}

// Schedules returns the schedule record store backed by this Store.
func (s *Store) Schedules() review.ScheduleStore {
	return &scheduleRepo{client: s.client}
}

func (r *scheduleRepo) Get(ctx context.Context, learnerID, itemID string) (sm2.State, error) {
	row, err := r.client.Schedule.Query().
		Where(schedule.LearnerID(learnerID), schedule.ItemID(itemID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return sm2.State{}, fmt.Errorf("%w: %s/%s", review.ErrScheduleNotFound, learnerID, itemID)
		}
		return sm2.State{}, fmt.Errorf("query schedule: %w", err)
	}
	return rowToState(row), nil
}

func (r *scheduleRepo) Upsert(ctx context.Context, learnerID, itemID string, state sm2.State) error {
	row, err := r.client.Schedule.Query().
		Where(schedule.LearnerID(learnerID), schedule.ItemID(itemID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query schedule: %w", err)
		}
		builder := r.client.Schedule.Create().
			SetLearnerID(learnerID).
			SetItemID(itemID).
			SetEaseFactor(state.EaseFactor).
			SetIntervalDays(state.IntervalDays).
			SetRepetitions(state.Repetitions).
			SetNextReviewDate(state.NextReview).
			SetLastQuality(int(state.LastQuality)).
			SetLastAttemptID(state.LastAttemptID)
		if !state.LastReviewed.IsZero() {
			builder = builder.SetLastReviewedAt(state.LastReviewed)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("create schedule: %w", err)
		}
		return nil
	}

	update := row.Update().
		SetEaseFactor(state.EaseFactor).
		SetIntervalDays(state.IntervalDays).
		SetRepetitions(state.Repetitions).
		SetNextReviewDate(state.NextReview).
		SetLastQuality(int(state.LastQuality)).
		SetLastAttemptID(state.LastAttemptID)
	if !state.LastReviewed.IsZero() {
		update = update.SetLastReviewedAt(state.LastReviewed)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}
	return nil
}

func (r *scheduleRepo) ListByLearner(ctx context.Context, learnerID string) (map[string]sm2.State, error) {
	rows, err := r.client.Schedule.Query().
		Where(schedule.LearnerID(learnerID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}

	out := make(map[string]sm2.State, len(rows))
	for _, row := range rows {
		out[row.ItemID] = rowToState(row)
	}
	return out, nil
}

// DeleteByLearner removes every schedule a learner has. Used by reset.
func (r *scheduleRepo) DeleteByLearner(ctx context.Context, learnerID string) error {
	_, err := r.client.Schedule.Delete().
		Where(schedule.LearnerID(learnerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete schedules: %w", err)
	}
	return nil
}

func rowToState(row *ent.Schedule) sm2.State {
	s := sm2.State{
		EaseFactor:    row.EaseFactor,
		IntervalDays:  row.IntervalDays,
		Repetitions:   row.Repetitions,
		NextReview:    row.NextReviewDate,
		LastQuality:   sm2.Quality(row.LastQuality),
		LastAttemptID: row.LastAttemptID,
	}
	if row.LastReviewedAt != nil {
		s.LastReviewed = *row.LastReviewedAt
	}
	return s
}
