package store

import (
	"context"
	"fmt"
	"time"

	"github.com/lexora/srs/ent"
	"github.com/lexora/srs/ent/achievement"
	"github.com/lexora/srs/internal/streaks"
)

// achievementRepo implements streaks.AchievementStore over the ent client.
type achievementRepo struct {
	client *ent.Client
}

// Achievements returns the achievement store backed by this Store.
func (s *Store) Achievements() *achievementRepo {
	return &achievementRepo{client: s.client}
}

var _ streaks.AchievementStore = (*achievementRepo)(nil)

func (r *achievementRepo) Has(ctx context.Context, learnerID, achievementID string) (bool, error) {
	exists, err := r.client.Achievement.Query().
		Where(
			achievement.LearnerID(learnerID),
			achievement.AchievementType(achievementID),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("query achievement: %w", err)
	}
	return exists, nil
}

func (r *achievementRepo) Grant(ctx context.Context, learnerID, achievementID string, at time.Time) error {
	_, err := r.client.Achievement.Create().
		SetLearnerID(learnerID).
		SetAchievementType(achievementID).
		SetAwardedAt(at).
		Save(ctx)
	if err != nil {
		// The unique (learner, type) index is the authoritative duplicate
		// guard; a concurrent grant losing the race is not an error.
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("grant achievement: %w", err)
	}
	return nil
}

// Award is one granted achievement for display.
type Award struct {
	AchievementID string
	AwardedAt     time.Time
}

// List returns the learner's achievements, oldest first.
func (r *achievementRepo) List(ctx context.Context, learnerID string) ([]Award, error) {
	rows, err := r.client.Achievement.Query().
		Where(achievement.LearnerID(learnerID)).
		Order(ent.Asc(achievement.FieldAwardedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}

	awards := make([]Award, len(rows))
	for i, row := range rows {
		awards[i] = Award{AchievementID: row.AchievementType, AwardedAt: row.AwardedAt}
	}
	return awards, nil
}

// DeleteByLearner removes the learner's achievements. Used by reset.
func (r *achievementRepo) DeleteByLearner(ctx context.Context, learnerID string) error {
	_, err := r.client.Achievement.Delete().
		Where(achievement.LearnerID(learnerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete achievements: %w", err)
	}
	return nil
}
