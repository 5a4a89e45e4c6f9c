// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lexora/srs/ent/studyplan"
)

// StudyPlanCreate is the builder for creating a StudyPlan entity.
type StudyPlanCreate struct {
	config
	mutation *StudyPlanMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (spc *StudyPlanCreate) SetPlanID(s string) *StudyPlanCreate {
	spc.mutation.SetPlanID(s)
	return spc
}

// SetName sets the "name" field.
func (spc *StudyPlanCreate) SetName(s string) *StudyPlanCreate {
	spc.mutation.SetName(s)
	return spc
}

// SetNillableName sets the "name" field if the given value is not nil.
func (spc *StudyPlanCreate) SetNillableName(s *string) *StudyPlanCreate {
	if s != nil {
		spc.SetName(*s)
	}
	return spc
}

// SetSetIds sets the "set_ids" field.
func (spc *StudyPlanCreate) SetSetIds(s []string) *StudyPlanCreate {
	spc.mutation.SetSetIds(s)
	return spc
}

// SetTargetDate sets the "target_date" field.
func (spc *StudyPlanCreate) SetTargetDate(t time.Time) *StudyPlanCreate {
	spc.mutation.SetTargetDate(t)
	return spc
}

// SetStrategy sets the "strategy" field.
func (spc *StudyPlanCreate) SetStrategy(s string) *StudyPlanCreate {
	spc.mutation.SetStrategy(s)
	return spc
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (spc *StudyPlanCreate) SetNillableStrategy(s *string) *StudyPlanCreate {
	if s != nil {
		spc.SetStrategy(*s)
	}
	return spc
}

// SetCreatedBy sets the "created_by" field.
func (spc *StudyPlanCreate) SetCreatedBy(s string) *StudyPlanCreate {
	spc.mutation.SetCreatedBy(s)
	return spc
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (spc *StudyPlanCreate) SetNillableCreatedBy(s *string) *StudyPlanCreate {
	if s != nil {
		spc.SetCreatedBy(*s)
	}
	return spc
}

// SetCreatedAt sets the "created_at" field.
func (spc *StudyPlanCreate) SetCreatedAt(t time.Time) *StudyPlanCreate {
	spc.mutation.SetCreatedAt(t)
	return spc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (spc *StudyPlanCreate) SetNillableCreatedAt(t *time.Time) *StudyPlanCreate {
	if t != nil {
		spc.SetCreatedAt(*t)
	}
	return spc
}

// Mutation returns the StudyPlanMutation object of the builder.
func (spc *StudyPlanCreate) Mutation() *StudyPlanMutation {
	return spc.mutation
}

// Save creates the StudyPlan in the database.
func (spc *StudyPlanCreate) Save(ctx context.Context) (*StudyPlan, error) {
	spc.defaults()
	return withHooks(ctx, spc.sqlSave, spc.mutation, spc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (spc *StudyPlanCreate) SaveX(ctx context.Context) *StudyPlan {
	v, err := spc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (spc *StudyPlanCreate) Exec(ctx context.Context) error {
	_, err := spc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (spc *StudyPlanCreate) ExecX(ctx context.Context) {
	if err := spc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (spc *StudyPlanCreate) defaults() {
	if _, ok := spc.mutation.Name(); !ok {
		v := studyplan.DefaultName
		spc.mutation.SetName(v)
	}
	if _, ok := spc.mutation.Strategy(); !ok {
		v := studyplan.DefaultStrategy
		spc.mutation.SetStrategy(v)
	}
	if _, ok := spc.mutation.CreatedBy(); !ok {
		v := studyplan.DefaultCreatedBy
		spc.mutation.SetCreatedBy(v)
	}
	if _, ok := spc.mutation.CreatedAt(); !ok {
		v := studyplan.DefaultCreatedAt()
		spc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (spc *StudyPlanCreate) check() error {
	if _, ok := spc.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "StudyPlan.plan_id"`)}
	}
	if v, ok := spc.mutation.PlanID(); ok {
		if err := studyplan.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.plan_id": %w`, err)}
		}
	}
	if _, ok := spc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "StudyPlan.name"`)}
	}
	if _, ok := spc.mutation.SetIds(); !ok {
		return &ValidationError{Name: "set_ids", err: errors.New(`ent: missing required field "StudyPlan.set_ids"`)}
	}
	if _, ok := spc.mutation.TargetDate(); !ok {
		return &ValidationError{Name: "target_date", err: errors.New(`ent: missing required field "StudyPlan.target_date"`)}
	}
	if _, ok := spc.mutation.Strategy(); !ok {
		return &ValidationError{Name: "strategy", err: errors.New(`ent: missing required field "StudyPlan.strategy"`)}
	}
	if _, ok := spc.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "StudyPlan.created_by"`)}
	}
	if _, ok := spc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StudyPlan.created_at"`)}
	}
	return nil
}

func (spc *StudyPlanCreate) sqlSave(ctx context.Context) (*StudyPlan, error) {
	if err := spc.check(); err != nil {
		return nil, err
	}
	_node, _spec := spc.createSpec()
	if err := sqlgraph.CreateNode(ctx, spc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	spc.mutation.id = &_node.ID
	spc.mutation.done = true
	return _node, nil
}

func (spc *StudyPlanCreate) createSpec() (*StudyPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &StudyPlan{config: spc.config}
		_spec = sqlgraph.NewCreateSpec(studyplan.Table, sqlgraph.NewFieldSpec(studyplan.FieldID, field.TypeInt))
	)
	if value, ok := spc.mutation.PlanID(); ok {
		_spec.SetField(studyplan.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := spc.mutation.Name(); ok {
		_spec.SetField(studyplan.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := spc.mutation.SetIds(); ok {
		_spec.SetField(studyplan.FieldSetIds, field.TypeJSON, value)
		_node.SetIds = value
	}
	if value, ok := spc.mutation.TargetDate(); ok {
		_spec.SetField(studyplan.FieldTargetDate, field.TypeTime, value)
		_node.TargetDate = value
	}
	if value, ok := spc.mutation.Strategy(); ok {
		_spec.SetField(studyplan.FieldStrategy, field.TypeString, value)
		_node.Strategy = value
	}
	if value, ok := spc.mutation.CreatedBy(); ok {
		_spec.SetField(studyplan.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := spc.mutation.CreatedAt(); ok {
		_spec.SetField(studyplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// StudyPlanCreateBulk is the builder for creating many StudyPlan entities in bulk.
type StudyPlanCreateBulk struct {
	config
	err      error
	builders []*StudyPlanCreate
}

// Save creates the StudyPlan entities in the database.
func (spcb *StudyPlanCreateBulk) Save(ctx context.Context) ([]*StudyPlan, error) {
	if spcb.err != nil {
		return nil, spcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(spcb.builders))
	nodes := make([]*StudyPlan, len(spcb.builders))
	mutators := make([]Mutator, len(spcb.builders))
	for i := range spcb.builders {
		func(i int, root context.Context) {
			builder := spcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudyPlanMutation)
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
					_, err = mutators[i+1].Mutate(root, spcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, spcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, spcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (spcb *StudyPlanCreateBulk) SaveX(ctx context.Context) []*StudyPlan {
	v, err := spcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (spcb *StudyPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := spcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (spcb *StudyPlanCreateBulk) ExecX(ctx context.Context) {
	if err := spcb.Exec(ctx); err != nil {
		panic(err)
	}
}
