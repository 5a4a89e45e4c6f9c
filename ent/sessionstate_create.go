// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lexora/srs/ent/sessionstate"
)

// SessionStateCreate is the builder for creating a SessionState entity.
type SessionStateCreate struct {
	config
	mutation *SessionStateMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (ssc *SessionStateCreate) SetLearnerID(s string) *SessionStateCreate {
	ssc.mutation.SetLearnerID(s)
	return ssc
}

// SetSetID sets the "set_id" field.
func (ssc *SessionStateCreate) SetSetID(s string) *SessionStateCreate {
	ssc.mutation.SetSetID(s)
	return ssc
}

// SetData sets the "data" field.
func (ssc *SessionStateCreate) SetData(m map[string]interface{}) *SessionStateCreate {
	ssc.mutation.SetData(m)
	return ssc
}

// SetUpdatedAt sets the "updated_at" field.
func (ssc *SessionStateCreate) SetUpdatedAt(t time.Time) *SessionStateCreate {
	ssc.mutation.SetUpdatedAt(t)
	return ssc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ssc *SessionStateCreate) SetNillableUpdatedAt(t *time.Time) *SessionStateCreate {
	if t != nil {
		ssc.SetUpdatedAt(*t)
	}
	return ssc
}

// Mutation returns the SessionStateMutation object of the builder.
func (ssc *SessionStateCreate) Mutation() *SessionStateMutation {
	return ssc.mutation
}

// Save creates the SessionState in the database.
func (ssc *SessionStateCreate) Save(ctx context.Context) (*SessionState, error) {
	ssc.defaults()
	return withHooks(ctx, ssc.sqlSave, ssc.mutation, ssc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ssc *SessionStateCreate) SaveX(ctx context.Context) *SessionState {
	v, err := ssc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ssc *SessionStateCreate) Exec(ctx context.Context) error {
	_, err := ssc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ssc *SessionStateCreate) ExecX(ctx context.Context) {
	if err := ssc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ssc *SessionStateCreate) defaults() {
	if _, ok := ssc.mutation.UpdatedAt(); !ok {
		v := sessionstate.DefaultUpdatedAt()
		ssc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ssc *SessionStateCreate) check() error {
	if _, ok := ssc.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "SessionState.learner_id"`)}
	}
	if v, ok := ssc.mutation.LearnerID(); ok {
		if err := sessionstate.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SessionState.learner_id": %w`, err)}
		}
	}
	if _, ok := ssc.mutation.SetID(); !ok {
		return &ValidationError{Name: "set_id", err: errors.New(`ent: missing required field "SessionState.set_id"`)}
	}
	if v, ok := ssc.mutation.SetID(); ok {
		if err := sessionstate.SetIDValidator(v); err != nil {
			return &ValidationError{Name: "set_id", err: fmt.Errorf(`ent: validator failed for field "SessionState.set_id": %w`, err)}
		}
	}
	if _, ok := ssc.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "SessionState.data"`)}
	}
	if _, ok := ssc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SessionState.updated_at"`)}
	}
	return nil
}

func (ssc *SessionStateCreate) sqlSave(ctx context.Context) (*SessionState, error) {
	if err := ssc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ssc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ssc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ssc.mutation.id = &_node.ID
	ssc.mutation.done = true
	return _node, nil
}

func (ssc *SessionStateCreate) createSpec() (*SessionState, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionState{config: ssc.config}
		_spec = sqlgraph.NewCreateSpec(sessionstate.Table, sqlgraph.NewFieldSpec(sessionstate.FieldID, field.TypeInt))
	)
	if value, ok := ssc.mutation.LearnerID(); ok {
		_spec.SetField(sessionstate.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := ssc.mutation.SetID(); ok {
		_spec.SetField(sessionstate.FieldSetID, field.TypeString, value)
		_node.SetID = value
	}
	if value, ok := ssc.mutation.Data(); ok {
		_spec.SetField(sessionstate.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := ssc.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SessionStateCreateBulk is the builder for creating many SessionState entities in bulk.
type SessionStateCreateBulk struct {
	config
	err      error
	builders []*SessionStateCreate
}

// Save creates the SessionState entities in the database.
func (sscb *SessionStateCreateBulk) Save(ctx context.Context) ([]*SessionState, error) {
	if sscb.err != nil {
		return nil, sscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(sscb.builders))
	nodes := make([]*SessionState, len(sscb.builders))
	mutators := make([]Mutator, len(sscb.builders))
	for i := range sscb.builders {
		func(i int, root context.Context) {
			builder := sscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionStateMutation)
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
					_, err = mutators[i+1].Mutate(root, sscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, sscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, sscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (sscb *SessionStateCreateBulk) SaveX(ctx context.Context) []*SessionState {
	v, err := sscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sscb *SessionStateCreateBulk) Exec(ctx context.Context) error {
	_, err := sscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sscb *SessionStateCreateBulk) ExecX(ctx context.Context) {
	if err := sscb.Exec(ctx); err != nil {
		panic(err)
	}
}
