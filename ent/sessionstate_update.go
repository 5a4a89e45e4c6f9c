// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lexora/srs/ent/predicate"
	"github.com/lexora/srs/ent/sessionstate"
)

// SessionStateUpdate is the builder for updating SessionState entities.
type SessionStateUpdate struct {
	config
	hooks    []Hook
	mutation *SessionStateMutation
}

// Where appends a list predicates to the SessionStateUpdate builder.
func (ssu *SessionStateUpdate) Where(ps ...predicate.SessionState) *SessionStateUpdate {
	ssu.mutation.Where(ps...)
	return ssu
}

// SetData sets the "data" field.
func (ssu *SessionStateUpdate) SetData(m map[string]interface{}) *SessionStateUpdate {
	ssu.mutation.SetData(m)
	return ssu
}

// SetUpdatedAt sets the "updated_at" field.
func (ssu *SessionStateUpdate) SetUpdatedAt(t time.Time) *SessionStateUpdate {
	ssu.mutation.SetUpdatedAt(t)
	return ssu
}

// Mutation returns the SessionStateMutation object of the builder.
func (ssu *SessionStateUpdate) Mutation() *SessionStateMutation {
	return ssu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ssu *SessionStateUpdate) Save(ctx context.Context) (int, error) {
	ssu.defaults()
	return withHooks(ctx, ssu.sqlSave, ssu.mutation, ssu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ssu *SessionStateUpdate) SaveX(ctx context.Context) int {
	affected, err := ssu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ssu *SessionStateUpdate) Exec(ctx context.Context) error {
	_, err := ssu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ssu *SessionStateUpdate) ExecX(ctx context.Context) {
	if err := ssu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ssu *SessionStateUpdate) defaults() {
	if _, ok := ssu.mutation.UpdatedAt(); !ok {
		v := sessionstate.UpdateDefaultUpdatedAt()
		ssu.mutation.SetUpdatedAt(v)
	}
}

func (ssu *SessionStateUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sessionstate.Table, sessionstate.Columns, sqlgraph.NewFieldSpec(sessionstate.FieldID, field.TypeInt))
	if ps := ssu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ssu.mutation.Data(); ok {
		_spec.SetField(sessionstate.FieldData, field.TypeJSON, value)
	}
	if value, ok := ssu.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ssu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ssu.mutation.done = true
	return n, nil
}

// SessionStateUpdateOne is the builder for updating a single SessionState entity.
type SessionStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionStateMutation
}

// SetData sets the "data" field.
func (ssuo *SessionStateUpdateOne) SetData(m map[string]interface{}) *SessionStateUpdateOne {
	ssuo.mutation.SetData(m)
	return ssuo
}

// SetUpdatedAt sets the "updated_at" field.
func (ssuo *SessionStateUpdateOne) SetUpdatedAt(t time.Time) *SessionStateUpdateOne {
	ssuo.mutation.SetUpdatedAt(t)
	return ssuo
}

// Mutation returns the SessionStateMutation object of the builder.
func (ssuo *SessionStateUpdateOne) Mutation() *SessionStateMutation {
	return ssuo.mutation
}

// Where appends a list predicates to the SessionStateUpdate builder.
func (ssuo *SessionStateUpdateOne) Where(ps ...predicate.SessionState) *SessionStateUpdateOne {
	ssuo.mutation.Where(ps...)
	return ssuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ssuo *SessionStateUpdateOne) Select(field string, fields ...string) *SessionStateUpdateOne {
	ssuo.fields = append([]string{field}, fields...)
	return ssuo
}

// Save executes the query and returns the updated SessionState entity.
func (ssuo *SessionStateUpdateOne) Save(ctx context.Context) (*SessionState, error) {
	ssuo.defaults()
	return withHooks(ctx, ssuo.sqlSave, ssuo.mutation, ssuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ssuo *SessionStateUpdateOne) SaveX(ctx context.Context) *SessionState {
	node, err := ssuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ssuo *SessionStateUpdateOne) Exec(ctx context.Context) error {
	_, err := ssuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ssuo *SessionStateUpdateOne) ExecX(ctx context.Context) {
	if err := ssuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ssuo *SessionStateUpdateOne) defaults() {
	if _, ok := ssuo.mutation.UpdatedAt(); !ok {
		v := sessionstate.UpdateDefaultUpdatedAt()
		ssuo.mutation.SetUpdatedAt(v)
	}
}

func (ssuo *SessionStateUpdateOne) sqlSave(ctx context.Context) (_node *SessionState, err error) {
	_spec := sqlgraph.NewUpdateSpec(sessionstate.Table, sessionstate.Columns, sqlgraph.NewFieldSpec(sessionstate.FieldID, field.TypeInt))
	id, ok := ssuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ssuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionstate.FieldID)
		for _, f := range fields {
			if !sessionstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionstate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ssuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ssuo.mutation.Data(); ok {
		_spec.SetField(sessionstate.FieldData, field.TypeJSON, value)
	}
	if value, ok := ssuo.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SessionState{config: ssuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ssuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ssuo.mutation.done = true
	return _node, nil
}
