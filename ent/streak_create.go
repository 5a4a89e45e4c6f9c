// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lexora/srs/ent/streak"
)

// StreakCreate is the builder for creating a Streak entity.
type StreakCreate struct {
	config
	mutation *StreakMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (sc *StreakCreate) SetLearnerID(s string) *StreakCreate {
	sc.mutation.SetLearnerID(s)
	return sc
}

// SetCurrentDays sets the "current_days" field.
func (sc *StreakCreate) SetCurrentDays(i int) *StreakCreate {
	sc.mutation.SetCurrentDays(i)
	return sc
}

// SetNillableCurrentDays sets the "current_days" field if the given value is not nil.
func (sc *StreakCreate) SetNillableCurrentDays(i *int) *StreakCreate {
	if i != nil {
		sc.SetCurrentDays(*i)
	}
	return sc
}

// SetLongestDays sets the "longest_days" field.
func (sc *StreakCreate) SetLongestDays(i int) *StreakCreate {
	sc.mutation.SetLongestDays(i)
	return sc
}

// SetNillableLongestDays sets the "longest_days" field if the given value is not nil.
func (sc *StreakCreate) SetNillableLongestDays(i *int) *StreakCreate {
	if i != nil {
		sc.SetLongestDays(*i)
	}
	return sc
}

// SetLastPracticeDate sets the "last_practice_date" field.
func (sc *StreakCreate) SetLastPracticeDate(t time.Time) *StreakCreate {
	sc.mutation.SetLastPracticeDate(t)
	return sc
}

// SetNillableLastPracticeDate sets the "last_practice_date" field if the given value is not nil.
func (sc *StreakCreate) SetNillableLastPracticeDate(t *time.Time) *StreakCreate {
	if t != nil {
		sc.SetLastPracticeDate(*t)
	}
	return sc
}

// SetTotalLearned sets the "total_learned" field.
func (sc *StreakCreate) SetTotalLearned(i int) *StreakCreate {
	sc.mutation.SetTotalLearned(i)
	return sc
}

// SetNillableTotalLearned sets the "total_learned" field if the given value is not nil.
func (sc *StreakCreate) SetNillableTotalLearned(i *int) *StreakCreate {
	if i != nil {
		sc.SetTotalLearned(*i)
	}
	return sc
}

// SetTotalMastered sets the "total_mastered" field.
func (sc *StreakCreate) SetTotalMastered(i int) *StreakCreate {
	sc.mutation.SetTotalMastered(i)
	return sc
}

// SetNillableTotalMastered sets the "total_mastered" field if the given value is not nil.
func (sc *StreakCreate) SetNillableTotalMastered(i *int) *StreakCreate {
	if i != nil {
		sc.SetTotalMastered(*i)
	}
	return sc
}

// SetUpdatedAt sets the "updated_at" field.
func (sc *StreakCreate) SetUpdatedAt(t time.Time) *StreakCreate {
	sc.mutation.SetUpdatedAt(t)
	return sc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (sc *StreakCreate) SetNillableUpdatedAt(t *time.Time) *StreakCreate {
	if t != nil {
		sc.SetUpdatedAt(*t)
	}
	return sc
}

// Mutation returns the StreakMutation object of the builder.
func (sc *StreakCreate) Mutation() *StreakMutation {
	return sc.mutation
}

// Save creates the Streak in the database.
func (sc *StreakCreate) Save(ctx context.Context) (*Streak, error) {
	sc.defaults()
	return withHooks(ctx, sc.sqlSave, sc.mutation, sc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sc *StreakCreate) SaveX(ctx context.Context) *Streak {
	v, err := sc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sc *StreakCreate) Exec(ctx context.Context) error {
	_, err := sc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sc *StreakCreate) ExecX(ctx context.Context) {
	if err := sc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sc *StreakCreate) defaults() {
	if _, ok := sc.mutation.CurrentDays(); !ok {
		v := streak.DefaultCurrentDays
		sc.mutation.SetCurrentDays(v)
	}
	if _, ok := sc.mutation.LongestDays(); !ok {
		v := streak.DefaultLongestDays
		sc.mutation.SetLongestDays(v)
	}
	if _, ok := sc.mutation.TotalLearned(); !ok {
		v := streak.DefaultTotalLearned
		sc.mutation.SetTotalLearned(v)
	}
	if _, ok := sc.mutation.TotalMastered(); !ok {
		v := streak.DefaultTotalMastered
		sc.mutation.SetTotalMastered(v)
	}
	if _, ok := sc.mutation.UpdatedAt(); !ok {
		v := streak.DefaultUpdatedAt()
		sc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sc *StreakCreate) check() error {
	if _, ok := sc.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "Streak.learner_id"`)}
	}
	if v, ok := sc.mutation.LearnerID(); ok {
		if err := streak.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Streak.learner_id": %w`, err)}
		}
	}
	if _, ok := sc.mutation.CurrentDays(); !ok {
		return &ValidationError{Name: "current_days", err: errors.New(`ent: missing required field "Streak.current_days"`)}
	}
	if v, ok := sc.mutation.CurrentDays(); ok {
		if err := streak.CurrentDaysValidator(v); err != nil {
			return &ValidationError{Name: "current_days", err: fmt.Errorf(`ent: validator failed for field "Streak.current_days": %w`, err)}
		}
	}
	if _, ok := sc.mutation.LongestDays(); !ok {
		return &ValidationError{Name: "longest_days", err: errors.New(`ent: missing required field "Streak.longest_days"`)}
	}
	if v, ok := sc.mutation.LongestDays(); ok {
		if err := streak.LongestDaysValidator(v); err != nil {
			return &ValidationError{Name: "longest_days", err: fmt.Errorf(`ent: validator failed for field "Streak.longest_days": %w`, err)}
		}
	}
	if _, ok := sc.mutation.TotalLearned(); !ok {
		return &ValidationError{Name: "total_learned", err: errors.New(`ent: missing required field "Streak.total_learned"`)}
	}
	if v, ok := sc.mutation.TotalLearned(); ok {
		if err := streak.TotalLearnedValidator(v); err != nil {
			return &ValidationError{Name: "total_learned", err: fmt.Errorf(`ent: validator failed for field "Streak.total_learned": %w`, err)}
		}
	}
	if _, ok := sc.mutation.TotalMastered(); !ok {
		return &ValidationError{Name: "total_mastered", err: errors.New(`ent: missing required field "Streak.total_mastered"`)}
	}
	if v, ok := sc.mutation.TotalMastered(); ok {
		if err := streak.TotalMasteredValidator(v); err != nil {
			return &ValidationError{Name: "total_mastered", err: fmt.Errorf(`ent: validator failed for field "Streak.total_mastered": %w`, err)}
		}
	}
	if _, ok := sc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Streak.updated_at"`)}
	}
	return nil
}

func (sc *StreakCreate) sqlSave(ctx context.Context) (*Streak, error) {
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

func (sc *StreakCreate) createSpec() (*Streak, *sqlgraph.CreateSpec) {
	var (
		_node = &Streak{config: sc.config}
		_spec = sqlgraph.NewCreateSpec(streak.Table, sqlgraph.NewFieldSpec(streak.FieldID, field.TypeInt))
	)
	if value, ok := sc.mutation.LearnerID(); ok {
		_spec.SetField(streak.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := sc.mutation.CurrentDays(); ok {
		_spec.SetField(streak.FieldCurrentDays, field.TypeInt, value)
		_node.CurrentDays = value
	}
	if value, ok := sc.mutation.LongestDays(); ok {
		_spec.SetField(streak.FieldLongestDays, field.TypeInt, value)
		_node.LongestDays = value
	}
	if value, ok := sc.mutation.LastPracticeDate(); ok {
		_spec.SetField(streak.FieldLastPracticeDate, field.TypeTime, value)
		_node.LastPracticeDate = &value
	}
	if value, ok := sc.mutation.TotalLearned(); ok {
		_spec.SetField(streak.FieldTotalLearned, field.TypeInt, value)
		_node.TotalLearned = value
	}
	if value, ok := sc.mutation.TotalMastered(); ok {
		_spec.SetField(streak.FieldTotalMastered, field.TypeInt, value)
		_node.TotalMastered = value
	}
	if value, ok := sc.mutation.UpdatedAt(); ok {
		_spec.SetField(streak.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// StreakCreateBulk is the builder for creating many Streak entities in bulk.
type StreakCreateBulk struct {
	config
	err      error
	builders []*StreakCreate
}

// Save creates the Streak entities in the database.
func (scb *StreakCreateBulk) Save(ctx context.Context) ([]*Streak, error) {
	if scb.err != nil {
		return nil, scb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(scb.builders))
	nodes := make([]*Streak, len(scb.builders))
	mutators := make([]Mutator, len(scb.builders))
	for i := range scb.builders {
		func(i int, root context.Context) {
			builder := scb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StreakMutation)
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
func (scb *StreakCreateBulk) SaveX(ctx context.Context) []*Streak {
	v, err := scb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (scb *StreakCreateBulk) Exec(ctx context.Context) error {
	_, err := scb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (scb *StreakCreateBulk) ExecX(ctx context.Context) {
	if err := scb.Exec(ctx); err != nil {
		panic(err)
	}
}
