package store

import (
	"context"
	"fmt"

	"github.com/lexora/srs/ent"
	"github.com/lexora/srs/ent/streak"
	"github.com/lexora/srs/internal/streaks"
)

// streakRepo implements streaks.StreakStore over the ent client.
type streakRepo struct {
	client *ent.Client
}

// Streaks returns the streak store backed by this Store.
func (s *Store) Streaks() streaks.StreakStore {
	return &streakRepo{client: s.client}
}

func (r *streakRepo) Get(ctx context.Context, learnerID string) (*streaks.Streak, error) {
	row, err := r.client.Streak.Query().
		Where(streak.LearnerID(learnerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query streak: %w", err)
	}

	s := &streaks.Streak{
		LearnerID:        row.LearnerID,
		CurrentDays:      row.CurrentDays,
		LongestDays:      row.LongestDays,
		TotalLearned:     row.TotalLearned,
		TotalMastered:    row.TotalMastered,
		LastPracticeDate: row.LastPracticeDate,
	}
	return s, nil
}

func (r *streakRepo) Upsert(ctx context.Context, s streaks.Streak) error {
	row, err := r.client.Streak.Query().
		Where(streak.LearnerID(s.LearnerID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query streak: %w", err)
		}
		builder := r.client.Streak.Create().
			SetLearnerID(s.LearnerID).
			SetCurrentDays(s.CurrentDays).
			SetLongestDays(s.LongestDays).
			SetTotalLearned(s.TotalLearned).
			SetTotalMastered(s.TotalMastered)
		if s.LastPracticeDate != nil {
			builder = builder.SetLastPracticeDate(*s.LastPracticeDate)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("create streak: %w", err)
		}
		return nil
	}

	update := row.Update().
		SetCurrentDays(s.CurrentDays).
		SetLongestDays(s.LongestDays).
		SetTotalLearned(s.TotalLearned).
		SetTotalMastered(s.TotalMastered)
	if s.LastPracticeDate != nil {
		update = update.SetLastPracticeDate(*s.LastPracticeDate)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("update streak: %w", err)
	}
	return nil
}

// DeleteByLearner removes the learner's streak row. Used by reset.
func (r *streakRepo) DeleteByLearner(ctx context.Context, learnerID string) error {
	_, err := r.client.Streak.Delete().
		Where(streak.LearnerID(learnerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete streak: %w", err)
	}
	return nil
}
