package store

import (
	"context"
	"fmt"

	"github.com/lexora/srs/ent"
	"github.com/lexora/srs/ent/attemptevent"
	"github.com/lexora/srs/internal/review"
	"github.com/lexora/srs/internal/sm2"
)

// attemptRepo implements the append-only attempt log and the attempt
// counters the streak tracker needs.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

// Attempts returns the attempt event log backed by this Store.
func (s *Store) Attempts() *attemptRepo {
	return &attemptRepo{client: s.client, seq: s.seq}
}

func (r *attemptRepo) Append(ctx context.Context, a review.Attempt) error {
	// Duplicate-safe: a retried attempt with the same idempotency key hits
	// the unique attempt_id index instead of double-recording.
	exists, err := r.client.AttemptEvent.Query().
		Where(attemptevent.AttemptID(a.AttemptID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check attempt: %w", err)
	}
	if exists {
		return nil
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(a.Timestamp).
		SetAttemptID(a.AttemptID).
		SetLearnerID(a.LearnerID).
		SetItemID(a.ItemID).
		SetSelectedIndex(a.SelectedIndex).
		SetCorrect(a.Correct).
		SetTimeMs(a.TimeMs).
		SetQuality(int(a.Quality)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *attemptRepo) Find(ctx context.Context, attemptID string) (*review.Attempt, error) {
	row, err := r.client.AttemptEvent.Query().
		Where(attemptevent.AttemptID(attemptID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query attempt: %w", err)
	}
	return &review.Attempt{
		AttemptID:     row.AttemptID,
		LearnerID:     row.LearnerID,
		ItemID:        row.ItemID,
		SelectedIndex: row.SelectedIndex,
		Correct:       row.Correct,
		TimeMs:        row.TimeMs,
		Quality:       sm2.Quality(row.Quality),
		Timestamp:     row.Timestamp,
	}, nil
}

func (r *attemptRepo) CountByLearner(ctx context.Context, learnerID string) (int, error) {
	n, err := r.client.AttemptEvent.Query().
		Where(attemptevent.LearnerID(learnerID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return n, nil
}

// Recent returns the learner's latest attempts, newest first.
func (r *attemptRepo) Recent(ctx context.Context, learnerID string, limit int) ([]review.Attempt, error) {
	query := r.client.AttemptEvent.Query().
		Where(attemptevent.LearnerID(learnerID)).
		Order(ent.Desc(attemptevent.FieldSequence))
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	out := make([]review.Attempt, len(rows))
	for i, row := range rows {
		out[i] = review.Attempt{
			AttemptID:     row.AttemptID,
			LearnerID:     row.LearnerID,
			ItemID:        row.ItemID,
			SelectedIndex: row.SelectedIndex,
			Correct:       row.Correct,
			TimeMs:        row.TimeMs,
			Quality:       sm2.Quality(row.Quality),
			Timestamp:     row.Timestamp,
		}
	}
	return out, nil
}

// Accuracy returns the learner's lifetime answer accuracy and attempt count.
func (r *attemptRepo) Accuracy(ctx context.Context, learnerID string) (float64, int, error) {
	total, err := r.CountByLearner(ctx, learnerID)
	if err != nil {
		return 0, 0, err
	}
	if total == 0 {
		return 0, 0, nil
	}
	correct, err := r.client.AttemptEvent.Query().
		Where(attemptevent.LearnerID(learnerID), attemptevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count correct attempts: %w", err)
	}
	return float64(correct) / float64(total), total, nil
}
