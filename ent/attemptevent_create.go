// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lexora/srs/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (aec *AttemptEventCreate) SetSequence(i int64) *AttemptEventCreate {
	aec.mutation.SetSequence(i)
	return aec
}

// SetTimestamp sets the "timestamp" field.
func (aec *AttemptEventCreate) SetTimestamp(t time.Time) *AttemptEventCreate {
	aec.mutation.SetTimestamp(t)
	return aec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (aec *AttemptEventCreate) SetNillableTimestamp(t *time.Time) *AttemptEventCreate {
	if t != nil {
		aec.SetTimestamp(*t)
	}
	return aec
}

// SetAttemptID sets the "attempt_id" field.
func (aec *AttemptEventCreate) SetAttemptID(s string) *AttemptEventCreate {
	aec.mutation.SetAttemptID(s)
	return aec
}

// SetLearnerID sets the "learner_id" field.
func (aec *AttemptEventCreate) SetLearnerID(s string) *AttemptEventCreate {
	aec.mutation.SetLearnerID(s)
	return aec
}

// SetItemID sets the "item_id" field.
func (aec *AttemptEventCreate) SetItemID(s string) *AttemptEventCreate {
	aec.mutation.SetItemID(s)
	return aec
}

// SetSelectedIndex sets the "selected_index" field.
func (aec *AttemptEventCreate) SetSelectedIndex(i int) *AttemptEventCreate {
	aec.mutation.SetSelectedIndex(i)
	return aec
}

// SetCorrect sets the "correct" field.
func (aec *AttemptEventCreate) SetCorrect(b bool) *AttemptEventCreate {
	aec.mutation.SetCorrect(b)
	return aec
}

// SetTimeMs sets the "time_ms" field.
func (aec *AttemptEventCreate) SetTimeMs(i int) *AttemptEventCreate {
	aec.mutation.SetTimeMs(i)
	return aec
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (aec *AttemptEventCreate) SetNillableTimeMs(i *int) *AttemptEventCreate {
	if i != nil {
		aec.SetTimeMs(*i)
	}
	return aec
}

// SetQuality sets the "quality" field.
func (aec *AttemptEventCreate) SetQuality(i int) *AttemptEventCreate {
	aec.mutation.SetQuality(i)
	return aec
}

// Mutation returns the AttemptEventMutation object of the builder.
func (aec *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return aec.mutation
}

// Save creates the AttemptEvent in the database.
func (aec *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	aec.defaults()
	return withHooks(ctx, aec.sqlSave, aec.mutation, aec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (aec *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := aec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aec *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := aec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aec *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := aec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aec *AttemptEventCreate) defaults() {
	if _, ok := aec.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		aec.mutation.SetTimestamp(v)
	}
	if _, ok := aec.mutation.TimeMs(); !ok {
		v := attemptevent.DefaultTimeMs
		aec.mutation.SetTimeMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aec *AttemptEventCreate) check() error {
	if _, ok := aec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := aec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := aec.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "AttemptEvent.attempt_id"`)}
	}
	if v, ok := aec.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if _, ok := aec.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "AttemptEvent.learner_id"`)}
	}
	if v, ok := aec.mutation.LearnerID(); ok {
		if err := attemptevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := aec.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "AttemptEvent.item_id"`)}
	}
	if v, ok := aec.mutation.ItemID(); ok {
		if err := attemptevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.item_id": %w`, err)}
		}
	}
	if _, ok := aec.mutation.SelectedIndex(); !ok {
		return &ValidationError{Name: "selected_index", err: errors.New(`ent: missing required field "AttemptEvent.selected_index"`)}
	}
	if v, ok := aec.mutation.SelectedIndex(); ok {
		if err := attemptevent.SelectedIndexValidator(v); err != nil {
			return &ValidationError{Name: "selected_index", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.selected_index": %w`, err)}
		}
	}
	if _, ok := aec.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AttemptEvent.correct"`)}
	}
	if _, ok := aec.mutation.TimeMs(); !ok {
		return &ValidationError{Name: "time_ms", err: errors.New(`ent: missing required field "AttemptEvent.time_ms"`)}
	}
	if _, ok := aec.mutation.Quality(); !ok {
		return &ValidationError{Name: "quality", err: errors.New(`ent: missing required field "AttemptEvent.quality"`)}
	}
	return nil
}

func (aec *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
	if err := aec.check(); err != nil {
		return nil, err
	}
	_node, _spec := aec.createSpec()
	if err := sqlgraph.CreateNode(ctx, aec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	aec.mutation.id = &_node.ID
	aec.mutation.done = true
	return _node, nil
}

func (aec *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: aec.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	if value, ok := aec.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := aec.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := aec.mutation.AttemptID(); ok {
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := aec.mutation.LearnerID(); ok {
		_spec.SetField(attemptevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := aec.mutation.ItemID(); ok {
		_spec.SetField(attemptevent.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := aec.mutation.SelectedIndex(); ok {
		_spec.SetField(attemptevent.FieldSelectedIndex, field.TypeInt, value)
		_node.SelectedIndex = value
	}
	if value, ok := aec.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := aec.mutation.TimeMs(); ok {
		_spec.SetField(attemptevent.FieldTimeMs, field.TypeInt, value)
		_node.TimeMs = value
	}
	if value, ok := aec.mutation.Quality(); ok {
		_spec.SetField(attemptevent.FieldQuality, field.TypeInt, value)
		_node.Quality = value
	}
	return _node, _spec
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
}

// Save creates the AttemptEvent entities in the database.
func (aecb *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if aecb.err != nil {
		return nil, aecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(aecb.builders))
	nodes := make([]*AttemptEvent, len(aecb.builders))
	mutators := make([]Mutator, len(aecb.builders))
	for i := range aecb.builders {
		func(i int, root context.Context) {
			builder := aecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
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
					_, err = mutators[i+1].Mutate(root, aecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, aecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, aecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (aecb *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := aecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aecb *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := aecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aecb *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := aecb.Exec(ctx); err != nil {
		panic(err)
	}
}
