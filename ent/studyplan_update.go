// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/lexora/srs/ent/predicate"
	"github.com/lexora/srs/ent/studyplan"
)

// StudyPlanUpdate is the builder for updating StudyPlan entities.
type StudyPlanUpdate struct {
	config
	hooks    []Hook
	mutation *StudyPlanMutation
}

// Where appends a list predicates to the StudyPlanUpdate builder.
func (spu *StudyPlanUpdate) Where(ps ...predicate.StudyPlan) *StudyPlanUpdate {
	spu.mutation.Where(ps...)
	return spu
}

// SetName sets the "name" field.
func (spu *StudyPlanUpdate) SetName(s string) *StudyPlanUpdate {
	spu.mutation.SetName(s)
	return spu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (spu *StudyPlanUpdate) SetNillableName(s *string) *StudyPlanUpdate {
	if s != nil {
		spu.SetName(*s)
	}
	return spu
}

// SetSetIds sets the "set_ids" field.
func (spu *StudyPlanUpdate) SetSetIds(s []string) *StudyPlanUpdate {
	spu.mutation.SetSetIds(s)
	return spu
}

// AppendSetIds appends s to the "set_ids" field.
func (spu *StudyPlanUpdate) AppendSetIds(s []string) *StudyPlanUpdate {
	spu.mutation.AppendSetIds(s)
	return spu
}

// SetTargetDate sets the "target_date" field.
func (spu *StudyPlanUpdate) SetTargetDate(t time.Time) *StudyPlanUpdate {
	spu.mutation.SetTargetDate(t)
	return spu
}

// SetNillableTargetDate sets the "target_date" field if the given value is not nil.
func (spu *StudyPlanUpdate) SetNillableTargetDate(t *time.Time) *StudyPlanUpdate {
	if t != nil {
		spu.SetTargetDate(*t)
	}
	return spu
}

// SetStrategy sets the "strategy" field.
func (spu *StudyPlanUpdate) SetStrategy(s string) *StudyPlanUpdate {
	spu.mutation.SetStrategy(s)
	return spu
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (spu *StudyPlanUpdate) SetNillableStrategy(s *string) *StudyPlanUpdate {
	if s != nil {
		spu.SetStrategy(*s)
	}
	return spu
}

// SetCreatedBy sets the "created_by" field.
func (spu *StudyPlanUpdate) SetCreatedBy(s string) *StudyPlanUpdate {
	spu.mutation.SetCreatedBy(s)
	return spu
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (spu *StudyPlanUpdate) SetNillableCreatedBy(s *string) *StudyPlanUpdate {
	if s != nil {
		spu.SetCreatedBy(*s)
	}
	return spu
}

// Mutation returns the StudyPlanMutation object of the builder.
func (spu *StudyPlanUpdate) Mutation() *StudyPlanMutation {
	return spu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (spu *StudyPlanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, spu.sqlSave, spu.mutation, spu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (spu *StudyPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := spu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (spu *StudyPlanUpdate) Exec(ctx context.Context) error {
	_, err := spu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (spu *StudyPlanUpdate) ExecX(ctx context.Context) {
	if err := spu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (spu *StudyPlanUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(studyplan.Table, studyplan.Columns, sqlgraph.NewFieldSpec(studyplan.FieldID, field.TypeInt))
	if ps := spu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := spu.mutation.Name(); ok {
		_spec.SetField(studyplan.FieldName, field.TypeString, value)
	}
	if value, ok := spu.mutation.SetIds(); ok {
		_spec.SetField(studyplan.FieldSetIds, field.TypeJSON, value)
	}
	if value, ok := spu.mutation.AppendedSetIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studyplan.FieldSetIds, value)
		})
	}
	if value, ok := spu.mutation.TargetDate(); ok {
		_spec.SetField(studyplan.FieldTargetDate, field.TypeTime, value)
	}
	if value, ok := spu.mutation.Strategy(); ok {
		_spec.SetField(studyplan.FieldStrategy, field.TypeString, value)
	}
	if value, ok := spu.mutation.CreatedBy(); ok {
		_spec.SetField(studyplan.FieldCreatedBy, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, spu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	spu.mutation.done = true
	return n, nil
}

// StudyPlanUpdateOne is the builder for updating a single StudyPlan entity.
type StudyPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudyPlanMutation
}

// SetName sets the "name" field.
func (spuo *StudyPlanUpdateOne) SetName(s string) *StudyPlanUpdateOne {
	spuo.mutation.SetName(s)
	return spuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (spuo *StudyPlanUpdateOne) SetNillableName(s *string) *StudyPlanUpdateOne {
	if s != nil {
		spuo.SetName(*s)
	}
	return spuo
}

// SetSetIds sets the "set_ids" field.
func (spuo *StudyPlanUpdateOne) SetSetIds(s []string) *StudyPlanUpdateOne {
	spuo.mutation.SetSetIds(s)
	return spuo
}

// AppendSetIds appends s to the "set_ids" field.
func (spuo *StudyPlanUpdateOne) AppendSetIds(s []string) *StudyPlanUpdateOne {
	spuo.mutation.AppendSetIds(s)
	return spuo
}

// SetTargetDate sets the "target_date" field.
func (spuo *StudyPlanUpdateOne) SetTargetDate(t time.Time) *StudyPlanUpdateOne {
	spuo.mutation.SetTargetDate(t)
	return spuo
}

// SetNillableTargetDate sets the "target_date" field if the given value is not nil.
func (spuo *StudyPlanUpdateOne) SetNillableTargetDate(t *time.Time) *StudyPlanUpdateOne {
	if t != nil {
		spuo.SetTargetDate(*t)
	}
	return spuo
}

// SetStrategy sets the "strategy" field.
func (spuo *StudyPlanUpdateOne) SetStrategy(s string) *StudyPlanUpdateOne {
	spuo.mutation.SetStrategy(s)
	return spuo
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (spuo *StudyPlanUpdateOne) SetNillableStrategy(s *string) *StudyPlanUpdateOne {
	if s != nil {
		spuo.SetStrategy(*s)
	}
	return spuo
}

// SetCreatedBy sets the "created_by" field.
func (spuo *StudyPlanUpdateOne) SetCreatedBy(s string) *StudyPlanUpdateOne {
	spuo.mutation.SetCreatedBy(s)
	return spuo
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (spuo *StudyPlanUpdateOne) SetNillableCreatedBy(s *string) *StudyPlanUpdateOne {
	if s != nil {
		spuo.SetCreatedBy(*s)
	}
	return spuo
}

// Mutation returns the StudyPlanMutation object of the builder.
func (spuo *StudyPlanUpdateOne) Mutation() *StudyPlanMutation {
	return spuo.mutation
}

// Where appends a list predicates to the StudyPlanUpdate builder.
func (spuo *StudyPlanUpdateOne) Where(ps ...predicate.StudyPlan) *StudyPlanUpdateOne {
	spuo.mutation.Where(ps...)
	return spuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (spuo *StudyPlanUpdateOne) Select(field string, fields ...string) *StudyPlanUpdateOne {
	spuo.fields = append([]string{field}, fields...)
	return spuo
}

// Save executes the query and returns the updated StudyPlan entity.
func (spuo *StudyPlanUpdateOne) Save(ctx context.Context) (*StudyPlan, error) {
	return withHooks(ctx, spuo.sqlSave, spuo.mutation, spuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (spuo *StudyPlanUpdateOne) SaveX(ctx context.Context) *StudyPlan {
	node, err := spuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (spuo *StudyPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := spuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (spuo *StudyPlanUpdateOne) ExecX(ctx context.Context) {
	if err := spuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (spuo *StudyPlanUpdateOne) sqlSave(ctx context.Context) (_node *StudyPlan, err error) {
	_spec := sqlgraph.NewUpdateSpec(studyplan.Table, studyplan.Columns, sqlgraph.NewFieldSpec(studyplan.FieldID, field.TypeInt))
	id, ok := spuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudyPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := spuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studyplan.FieldID)
		for _, f := range fields {
			if !studyplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studyplan.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := spuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := spuo.mutation.Name(); ok {
		_spec.SetField(studyplan.FieldName, field.TypeString, value)
	}
	if value, ok := spuo.mutation.SetIds(); ok {
		_spec.SetField(studyplan.FieldSetIds, field.TypeJSON, value)
	}
	if value, ok := spuo.mutation.AppendedSetIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studyplan.FieldSetIds, value)
		})
	}
	if value, ok := spuo.mutation.TargetDate(); ok {
		_spec.SetField(studyplan.FieldTargetDate, field.TypeTime, value)
	}
	if value, ok := spuo.mutation.Strategy(); ok {
		_spec.SetField(studyplan.FieldStrategy, field.TypeString, value)
	}
	if value, ok := spuo.mutation.CreatedBy(); ok {
		_spec.SetField(studyplan.FieldCreatedBy, field.TypeString, value)
	}
	_node = &StudyPlan{config: spuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, spuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	spuo.mutation.done = true
	return _node, nil
}
