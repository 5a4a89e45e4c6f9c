package store

import (
	"context"
	"fmt"

	"github.com/lexora/srs/ent"
	"github.com/lexora/srs/ent/item"
	"github.com/lexora/srs/ent/learner"
	"github.com/lexora/srs/internal/review"
)

// catalogRepo resolves learners and items. The platform owns this data; the
// engine only needs identity checks, correct-answer lookup, and set listing.
type catalogRepo struct {
	client *ent.Client
}

// Catalog returns the learner/item catalog backed by this Store.
func (s *Store) Catalog() *catalogRepo {
	return &catalogRepo{client: s.client}
}

func (r *catalogRepo) CorrectIndex(ctx context.Context, itemID string) (int, error) {
	row, err := r.client.Item.Query().
		Where(item.ItemID(itemID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, fmt.Errorf("%w: %s", review.ErrItemNotFound, itemID)
		}
		return 0, fmt.Errorf("query item: %w", err)
	}
	return row.CorrectIndex, nil
}

func (r *catalogRepo) ChoiceCount(ctx context.Context, itemID string) (int, error) {
	row, err := r.client.Item.Query().
		Where(item.ItemID(itemID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, fmt.Errorf("%w: %s", review.ErrItemNotFound, itemID)
		}
		return 0, fmt.Errorf("query item: %w", err)
	}
	return len(row.Choices), nil
}

func (r *catalogRepo) LearnerExists(ctx context.Context, learnerID string) (bool, error) {
	exists, err := r.client.Learner.Query().
		Where(learner.LearnerIDEQ(learnerID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("query learner: %w", err)
	}
	return exists, nil
}

// ItemsInSet returns the IDs of every item in a set.
func (r *catalogRepo) ItemsInSet(ctx context.Context, setID string) ([]string, error) {
	rows, err := r.client.Item.Query().
		Where(item.SetID(setID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query set items: %w", err)
	}
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ItemID
	}
	return ids, nil
}

// ListLearners returns every registered learner ID.
func (r *catalogRepo) ListLearners(ctx context.Context) ([]string, error) {
	rows, err := r.client.Learner.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query learners: %w", err)
	}
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.LearnerID
	}
	return ids, nil
}

// RegisterLearner creates a learner if absent. Idempotent seed helper for
// the CLI; the platform normally provisions learners.
func (r *catalogRepo) RegisterLearner(ctx context.Context, learnerID, displayName string) error {
	exists, err := r.LearnerExists(ctx, learnerID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = r.client.Learner.Create().
		SetLearnerID(learnerID).
		SetDisplayName(displayName).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create learner: %w", err)
	}
	return nil
}

// RegisterItem creates an item if absent. Idempotent seed helper.
func (r *catalogRepo) RegisterItem(ctx context.Context, itemID, setID, prompt string, choices []string, correctIndex int) error {
	if correctIndex < 0 || (len(choices) > 0 && correctIndex >= len(choices)) {
		return &review.ValidationError{Field: "correct_index", Reason: "outside choice range"}
	}
	exists, err := r.client.Item.Query().
		Where(item.ItemID(itemID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("query item: %w", err)
	}
	if exists {
		return nil
	}
	_, err = r.client.Item.Create().
		SetItemID(itemID).
		SetSetID(setID).
		SetPrompt(prompt).
		SetChoices(choices).
		SetCorrectIndex(correctIndex).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}
