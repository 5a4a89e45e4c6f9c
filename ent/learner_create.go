// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lexora/srs/ent/learner"
)

// LearnerCreate is the builder for creating a Learner entity.
type LearnerCreate struct {
	config
	mutation *LearnerMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (lc *LearnerCreate) SetLearnerID(s string) *LearnerCreate {
	lc.mutation.SetLearnerID(s)
	return lc
}

// SetDisplayName sets the "display_name" field.
func (lc *LearnerCreate) SetDisplayName(s string) *LearnerCreate {
	lc.mutation.SetDisplayName(s)
	return lc
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (lc *LearnerCreate) SetNillableDisplayName(s *string) *LearnerCreate {
	if s != nil {
		lc.SetDisplayName(*s)
	}
	return lc
}

// SetCreatedAt sets the "created_at" field.
func (lc *LearnerCreate) SetCreatedAt(t time.Time) *LearnerCreate {
	lc.mutation.SetCreatedAt(t)
	return lc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (lc *LearnerCreate) SetNillableCreatedAt(t *time.Time) *LearnerCreate {
	if t != nil {
		lc.SetCreatedAt(*t)
	}
	return lc
}

// Mutation returns the LearnerMutation object of the builder.
func (lc *LearnerCreate) Mutation() *LearnerMutation {
	return lc.mutation
}

// Save creates the Learner in the database.
func (lc *LearnerCreate) Save(ctx context.Context) (*Learner, error) {
	lc.defaults()
	return withHooks(ctx, lc.sqlSave, lc.mutation, lc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (lc *LearnerCreate) SaveX(ctx context.Context) *Learner {
	v, err := lc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lc *LearnerCreate) Exec(ctx context.Context) error {
	_, err := lc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lc *LearnerCreate) ExecX(ctx context.Context) {
	if err := lc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lc *LearnerCreate) defaults() {
	if _, ok := lc.mutation.DisplayName(); !ok {
		v := learner.DefaultDisplayName
		lc.mutation.SetDisplayName(v)
	}
	if _, ok := lc.mutation.CreatedAt(); !ok {
		v := learner.DefaultCreatedAt()
		lc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lc *LearnerCreate) check() error {
	if _, ok := lc.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "Learner.learner_id"`)}
	}
	if v, ok := lc.mutation.LearnerID(); ok {
		if err := learner.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Learner.learner_id": %w`, err)}
		}
	}
	if _, ok := lc.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "Learner.display_name"`)}
	}
	if _, ok := lc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Learner.created_at"`)}
	}
	return nil
}

func (lc *LearnerCreate) sqlSave(ctx context.Context) (*Learner, error) {
	if err := lc.check(); err != nil {
		return nil, err
	}
	_node, _spec := lc.createSpec()
	if err := sqlgraph.CreateNode(ctx, lc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	lc.mutation.id = &_node.ID
	lc.mutation.done = true
	return _node, nil
}

func (lc *LearnerCreate) createSpec() (*Learner, *sqlgraph.CreateSpec) {
	var (
		_node = &Learner{config: lc.config}
		_spec = sqlgraph.NewCreateSpec(learner.Table, sqlgraph.NewFieldSpec(learner.FieldID, field.TypeInt))
	)
	if value, ok := lc.mutation.LearnerID(); ok {
		_spec.SetField(learner.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := lc.mutation.DisplayName(); ok {
		_spec.SetField(learner.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := lc.mutation.CreatedAt(); ok {
		_spec.SetField(learner.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// LearnerCreateBulk is the builder for creating many Learner entities in bulk.
type LearnerCreateBulk struct {
	config
	err      error
	builders []*LearnerCreate
}

// Save creates the Learner entities in the database.
func (lcb *LearnerCreateBulk) Save(ctx context.Context) ([]*Learner, error) {
	if lcb.err != nil {
		return nil, lcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(lcb.builders))
	nodes := make([]*Learner, len(lcb.builders))
	mutators := make([]Mutator, len(lcb.builders))
	for i := range lcb.builders {
		func(i int, root context.Context) {
			builder := lcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnerMutation)
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
					_, err = mutators[i+1].Mutate(root, lcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, lcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, lcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (lcb *LearnerCreateBulk) SaveX(ctx context.Context) []*Learner {
	v, err := lcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lcb *LearnerCreateBulk) Exec(ctx context.Context) error {
	_, err := lcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lcb *LearnerCreateBulk) ExecX(ctx context.Context) {
	if err := lcb.Exec(ctx); err != nil {
		panic(err)
	}
}
