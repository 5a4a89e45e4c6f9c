// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lexora/srs/ent/schedule"
)

// ScheduleCreate is the builder for creating a Schedule entity.
type ScheduleCreate struct {
	config
	mutation *ScheduleMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (sc *ScheduleCreate) SetLearnerID(s string) *ScheduleCreate {
	sc.mutation.SetLearnerID(s)
	return sc
}

// SetItemID sets the "item_id" field.
func (sc *ScheduleCreate) SetItemID(s string) *ScheduleCreate {
	sc.mutation.SetItemID(s)
	return sc
}

// SetEaseFactor sets the "ease_factor" field.
func (sc *ScheduleCreate) SetEaseFactor(f float64) *ScheduleCreate {
	sc.mutation.SetEaseFactor(f)
	return sc
}

// SetIntervalDays sets the "interval_days" field.
func (sc *ScheduleCreate) SetIntervalDays(i int) *ScheduleCreate {
	sc.mutation.SetIntervalDays(i)
	return sc
}

// SetRepetitions sets the "repetitions" field.
func (sc *ScheduleCreate) SetRepetitions(i int) *ScheduleCreate {
	sc.mutation.SetRepetitions(i)
	return sc
}

// SetNextReviewDate sets the "next_review_date" field.
func (sc *ScheduleCreate) SetNextReviewDate(t time.Time) *ScheduleCreate {
	sc.mutation.SetNextReviewDate(t)
	return sc
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (sc *ScheduleCreate) SetLastReviewedAt(t time.Time) *ScheduleCreate {
	sc.mutation.SetLastReviewedAt(t)
	return sc
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (sc *ScheduleCreate) SetNillableLastReviewedAt(t *time.Time) *ScheduleCreate {
	if t != nil {
		sc.SetLastReviewedAt(*t)
	}
	return sc
}

// SetLastQuality sets the "last_quality" field.
func (sc *ScheduleCreate) SetLastQuality(i int) *ScheduleCreate {
	sc.mutation.SetLastQuality(i)
	return sc
}

// SetNillableLastQuality sets the "last_quality" field if the given value is not nil.
func (sc *ScheduleCreate) SetNillableLastQuality(i *int) *ScheduleCreate {
	if i != nil {
		sc.SetLastQuality(*i)
	}
	return sc
}

// SetLastAttemptID sets the "last_attempt_id" field.
func (sc *ScheduleCreate) SetLastAttemptID(s string) *ScheduleCreate {
	sc.mutation.SetLastAttemptID(s)
	return sc
}

// SetNillableLastAttemptID sets the "last_attempt_id" field if the given value is not nil.
func (sc *ScheduleCreate) SetNillableLastAttemptID(s *string) *ScheduleCreate {
	if s != nil {
		sc.SetLastAttemptID(*s)
	}
	return sc
}

// Mutation returns the ScheduleMutation object of the builder.
func (sc *ScheduleCreate) Mutation() *ScheduleMutation {
	return sc.mutation
}

// Save creates the Schedule in the database.
func (sc *ScheduleCreate) Save(ctx context.Context) (*Schedule, error) {
	sc.defaults()
	return withHooks(ctx, sc.sqlSave, sc.mutation, sc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sc *ScheduleCreate) SaveX(ctx context.Context) *Schedule {
	v, err := sc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sc *ScheduleCreate) Exec(ctx context.Context) error {
	_, err := sc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sc *ScheduleCreate) ExecX(ctx context.Context) {
	if err := sc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sc *ScheduleCreate) defaults() {
	if _, ok := sc.mutation.LastQuality(); !ok {
		v := schedule.DefaultLastQuality
		sc.mutation.SetLastQuality(v)
	}
	if _, ok := sc.mutation.LastAttemptID(); !ok {
		v := schedule.DefaultLastAttemptID
		sc.mutation.SetLastAttemptID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sc *ScheduleCreate) check() error {
	if _, ok := sc.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "Schedule.learner_id"`)}
	}
	if v, ok := sc.mutation.LearnerID(); ok {
		if err := schedule.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Schedule.learner_id": %w`, err)}
		}
	}
	if _, ok := sc.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "Schedule.item_id"`)}
	}
	if v, ok := sc.mutation.ItemID(); ok {
		if err := schedule.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Schedule.item_id": %w`, err)}
		}
	}
	if _, ok := sc.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "Schedule.ease_factor"`)}
	}
	if _, ok := sc.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "Schedule.interval_days"`)}
	}
	if v, ok := sc.mutation.IntervalDays(); ok {
		if err := schedule.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "Schedule.interval_days": %w`, err)}
		}
	}
	if _, ok := sc.mutation.Repetitions(); !ok {
		return &ValidationError{Name: "repetitions", err: errors.New(`ent: missing required field "Schedule.repetitions"`)}
	}
	if v, ok := sc.mutation.Repetitions(); ok {
		if err := schedule.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "Schedule.repetitions": %w`, err)}
		}
	}
	if _, ok := sc.mutation.NextReviewDate(); !ok {
		return &ValidationError{Name: "next_review_date", err: errors.New(`ent: missing required field "Schedule.next_review_date"`)}
	}
	if _, ok := sc.mutation.LastQuality(); !ok {
		return &ValidationError{Name: "last_quality", err: errors.New(`ent: missing required field "Schedule.last_quality"`)}
	}
	if _, ok := sc.mutation.LastAttemptID(); !ok {
		return &ValidationError{Name: "last_attempt_id", err: errors.New(`ent: missing required field "Schedule.last_attempt_id"`)}
	}
	return nil
}

func (sc *ScheduleCreate) sqlSave(ctx context.Context) (*Schedule, error) {
	if err := sc.check(); err != nil {
		return nil, err
	}
	_node, _spec := sc.createSpec()
	if err := sqlgraph.CreateNode(ctx, sc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	sc.mutation.id = &_node.ID
	sc.mutation.done = true
	return _node, nil
}

func (sc *ScheduleCreate) createSpec() (*Schedule, *sqlgraph.CreateSpec) {
	var (
		_node = &Schedule{config: sc.config}
		_spec = sqlgraph.NewCreateSpec(schedule.Table, sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeInt))
	)
	if value, ok := sc.mutation.LearnerID(); ok {
		_spec.SetField(schedule.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := sc.mutation.ItemID(); ok {
		_spec.SetField(schedule.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := sc.mutation.EaseFactor(); ok {
		_spec.SetField(schedule.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := sc.mutation.IntervalDays(); ok {
		_spec.SetField(schedule.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := sc.mutation.Repetitions(); ok {
		_spec.SetField(schedule.FieldRepetitions, field.TypeInt, value)
		_node.Repetitions = value
	}
	if value, ok := sc.mutation.NextReviewDate(); ok {
		_spec.SetField(schedule.FieldNextReviewDate, field.TypeTime, value)
		_node.NextReviewDate = value
	}
	if value, ok := sc.mutation.LastReviewedAt(); ok {
		_spec.SetField(schedule.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = &value
	}
	if value, ok := sc.mutation.LastQuality(); ok {
		_spec.SetField(schedule.FieldLastQuality, field.TypeInt, value)
		_node.LastQuality = value
	}
	if value, ok := sc.mutation.LastAttemptID(); ok {
		_spec.SetField(schedule.FieldLastAttemptID, field.TypeString, value)
		_node.LastAttemptID = value
	}
	return _node, _spec
}

// ScheduleCreateBulk is the builder for creating many Schedule entities in bulk.
type ScheduleCreateBulk struct {
	config
	err      error
	builders []*ScheduleCreate
}

// Save creates the Schedule entities in the database.
func (scb *ScheduleCreateBulk) Save(ctx context.Context) ([]*Schedule, error) {
	if scb.err != nil {
		return nil, scb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(scb.builders))
	nodes := make([]*Schedule, len(scb.builders))
	mutators := make([]Mutator, len(scb.builders))
	for i := range scb.builders {
		func(i int, root context.Context) {
			builder := scb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, scb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, scb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, scb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (scb *ScheduleCreateBulk) SaveX(ctx context.Context) []*Schedule {
	v, err := scb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (scb *ScheduleCreateBulk) Exec(ctx context.Context) error {
	_, err := scb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (scb *ScheduleCreateBulk) ExecX(ctx context.Context) {
	if err := scb.Exec(ctx); err != nil {
		panic(err)
	}
}
