package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lexora/srs/ent"
	"github.com/lexora/srs/ent/studyplan"
	"github.com/lexora/srs/internal/plan"
	"github.com/lexora/srs/internal/review"
)

// PlanTemplate is a stored study-plan template.
type PlanTemplate struct {
	PlanID     string
	Name       string
	SetIDs     []string
	TargetDate time.Time
	Strategy   plan.Strategy
	CreatedBy  string
	CreatedAt  time.Time
}

// planRepo persists study-plan templates.
type planRepo struct {
	client *ent.Client
}

// Plans returns the study-plan template store backed by this Store.
func (s *Store) Plans() *planRepo {
	return &planRepo{client: s.client}
}

// Create stores a new template and returns its generated ID.
func (r *planRepo) Create(ctx context.Context, t PlanTemplate) (string, error) {
	if !t.Strategy.Valid() {
		return "", &review.ValidationError{Field: "strategy", Reason: "must be balanced or sequential"}
	}
	id := uuid.NewString()
	_, err := r.client.StudyPlan.Create().
		SetPlanID(id).
		SetName(t.Name).
		SetSetIds(t.SetIDs).
		SetTargetDate(t.TargetDate).
		SetStrategy(string(t.Strategy)).
		SetCreatedBy(t.CreatedBy).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("create study plan: %w", err)
	}
	return id, nil
}

// Get returns a template by ID, or nil when it does not exist.
func (r *planRepo) Get(ctx context.Context, planID string) (*PlanTemplate, error) {
	row, err := r.client.StudyPlan.Query().
		Where(studyplan.PlanID(planID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query study plan: %w", err)
	}
	return &PlanTemplate{
		PlanID:     row.PlanID,
		Name:       row.Name,
		SetIDs:     row.SetIds,
		TargetDate: row.TargetDate,
		Strategy:   plan.Strategy(row.Strategy),
		CreatedBy:  row.CreatedBy,
		CreatedAt:  row.CreatedAt,
	}, nil
}
