// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lexora/srs/ent/achievement"
)

// AchievementCreate is the builder for creating a Achievement entity.
type AchievementCreate struct {
	config
	mutation *AchievementMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (ac *AchievementCreate) SetLearnerID(s string) *AchievementCreate {
	ac.mutation.SetLearnerID(s)
	return ac
}

// SetAchievementType sets the "achievement_type" field.
func (ac *AchievementCreate) SetAchievementType(s string) *AchievementCreate {
	ac.mutation.SetAchievementType(s)
	return ac
}

// SetAwardedAt sets the "awarded_at" field.
func (ac *AchievementCreate) SetAwardedAt(t time.Time) *AchievementCreate {
	ac.mutation.SetAwardedAt(t)
	return ac
}

// SetNillableAwardedAt sets the "awarded_at" field if the given value is not nil.
func (ac *AchievementCreate) SetNillableAwardedAt(t *time.Time) *AchievementCreate {
	if t != nil {
		ac.SetAwardedAt(*t)
	}
	return ac
}

// Mutation returns the AchievementMutation object of the builder.
func (ac *AchievementCreate) Mutation() *AchievementMutation {
	return ac.mutation
}

// Save creates the Achievement in the database.
func (ac *AchievementCreate) Save(ctx context.Context) (*Achievement, error) {
	ac.defaults()
	return withHooks(ctx, ac.sqlSave, ac.mutation, ac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ac *AchievementCreate) SaveX(ctx context.Context) *Achievement {
	v, err := ac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ac *AchievementCreate) Exec(ctx context.Context) error {
	_, err := ac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ac *AchievementCreate) ExecX(ctx context.Context) {
	if err := ac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ac *AchievementCreate) defaults() {
	if _, ok := ac.mutation.AwardedAt(); !ok {
		v := achievement.DefaultAwardedAt()
		ac.mutation.SetAwardedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ac *AchievementCreate) check() error {
	if _, ok := ac.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "Achievement.learner_id"`)}
	}
	if v, ok := ac.mutation.LearnerID(); ok {
		if err := achievement.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Achievement.learner_id": %w`, err)}
		}
	}
	if _, ok := ac.mutation.AchievementType(); !ok {
		return &ValidationError{Name: "achievement_type", err: errors.New(`ent: missing required field "Achievement.achievement_type"`)}
	}
	if v, ok := ac.mutation.AchievementType(); ok {
		if err := achievement.AchievementTypeValidator(v); err != nil {
			return &ValidationError{Name: "achievement_type", err: fmt.Errorf(`ent: validator failed for field "Achievement.achievement_type": %w`, err)}
		}
	}
	if _, ok := ac.mutation.AwardedAt(); !ok {
		return &ValidationError{Name: "awarded_at", err: errors.New(`ent: missing required field "Achievement.awarded_at"`)}
	}
	return nil
}

func (ac *AchievementCreate) sqlSave(ctx context.Context) (*Achievement, error) {
	if err := ac.check(); err != nil {
		return nil, err
	}
	_node, _spec := ac.createSpec()
	if err := sqlgraph.CreateNode(ctx, ac.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ac.mutation.id = &_node.ID
	ac.mutation.done = true
	return _node, nil
}

func (ac *AchievementCreate) createSpec() (*Achievement, *sqlgraph.CreateSpec) {
	var (
		_node = &Achievement{config: ac.config}
		_spec = sqlgraph.NewCreateSpec(achievement.Table, sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeInt))
	)
	if value, ok := ac.mutation.LearnerID(); ok {
		_spec.SetField(achievement.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := ac.mutation.AchievementType(); ok {
		_spec.SetField(achievement.FieldAchievementType, field.TypeString, value)
		_node.AchievementType = value
	}
	if value, ok := ac.mutation.AwardedAt(); ok {
		_spec.SetField(achievement.FieldAwardedAt, field.TypeTime, value)
		_node.AwardedAt = value
	}
	return _node, _spec
}

// AchievementCreateBulk is the builder for creating many Achievement entities in bulk.
type AchievementCreateBulk struct {
	config
	err      error
	builders []*AchievementCreate
}

// Save creates the Achievement entities in the database.
func (acb *AchievementCreateBulk) Save(ctx context.Context) ([]*Achievement, error) {
	if acb.err != nil {
		return nil, acb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(acb.builders))
	nodes := make([]*Achievement, len(acb.builders))
	mutators := make([]Mutator, len(acb.builders))
	for i := range acb.builders {
		func(i int, root context.Context) {
			builder := acb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AchievementMutation)
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
					_, err = mutators[i+1].Mutate(root, acb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, acb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, acb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (acb *AchievementCreateBulk) SaveX(ctx context.Context) []*Achievement {
	v, err := acb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (acb *AchievementCreateBulk) Exec(ctx context.Context) error {
	_, err := acb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (acb *AchievementCreateBulk) ExecX(ctx context.Context) {
	if err := acb.Exec(ctx); err != nil {
		panic(err)
	}
}
