// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/lexora/srs/ent/item"
	"github.com/lexora/srs/ent/predicate"
)

// ItemUpdate is the builder for updating Item entities.
type ItemUpdate struct {
	config
	hooks    []Hook
	mutation *ItemMutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (iu *ItemUpdate) Where(ps ...predicate.Item) *ItemUpdate {
	iu.mutation.Where(ps...)
	return iu
}

// SetSetID sets the "set_id" field.
func (iu *ItemUpdate) SetSetID(s string) *ItemUpdate {
	iu.mutation.SetSetID(s)
	return iu
}

// SetNillableSetID sets the "set_id" field if the given value is not nil.
func (iu *ItemUpdate) SetNillableSetID(s *string) *ItemUpdate {
	if s != nil {
		iu.SetSetID(*s)
	}
	return iu
}

// SetPrompt sets the "prompt" field.
func (iu *ItemUpdate) SetPrompt(s string) *ItemUpdate {
	iu.mutation.SetPrompt(s)
	return iu
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (iu *ItemUpdate) SetNillablePrompt(s *string) *ItemUpdate {
	if s != nil {
		iu.SetPrompt(*s)
	}
	return iu
}

// SetChoices sets the "choices" field.
func (iu *ItemUpdate) SetChoices(s []string) *ItemUpdate {
	iu.mutation.SetChoices(s)
	return iu
}

// AppendChoices appends s to the "choices" field.
func (iu *ItemUpdate) AppendChoices(s []string) *ItemUpdate {
	iu.mutation.AppendChoices(s)
	return iu
}

// ClearChoices clears the value of the "choices" field.
func (iu *ItemUpdate) ClearChoices() *ItemUpdate {
	iu.mutation.ClearChoices()
	return iu
}

// SetCorrectIndex sets the "correct_index" field.
func (iu *ItemUpdate) SetCorrectIndex(i int) *ItemUpdate {
	iu.mutation.ResetCorrectIndex()
	iu.mutation.SetCorrectIndex(i)
	return iu
}

// SetNillableCorrectIndex sets the "correct_index" field if the given value is not nil.
func (iu *ItemUpdate) SetNillableCorrectIndex(i *int) *ItemUpdate {
	if i != nil {
		iu.SetCorrectIndex(*i)
	}
	return iu
}

// AddCorrectIndex adds i to the "correct_index" field.
func (iu *ItemUpdate) AddCorrectIndex(i int) *ItemUpdate {
	iu.mutation.AddCorrectIndex(i)
	return iu
}

// Mutation returns the ItemMutation object of the builder.
func (iu *ItemUpdate) Mutation() *ItemMutation {
	return iu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (iu *ItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, iu.sqlSave, iu.mutation, iu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iu *ItemUpdate) SaveX(ctx context.Context) int {
	affected, err := iu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (iu *ItemUpdate) Exec(ctx context.Context) error {
	_, err := iu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iu *ItemUpdate) ExecX(ctx context.Context) {
	if err := iu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iu *ItemUpdate) check() error {
	if v, ok := iu.mutation.SetID(); ok {
		if err := item.SetIDValidator(v); err != nil {
			return &ValidationError{Name: "set_id", err: fmt.Errorf(`ent: validator failed for field "Item.set_id": %w`, err)}
		}
	}
	if v, ok := iu.mutation.CorrectIndex(); ok {
		if err := item.CorrectIndexValidator(v); err != nil {
			return &ValidationError{Name: "correct_index", err: fmt.Errorf(`ent: validator failed for field "Item.correct_index": %w`, err)}
		}
	}
	return nil
}

func (iu *ItemUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := iu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	if ps := iu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iu.mutation.SetID(); ok {
		_spec.SetField(item.FieldSetID, field.TypeString, value)
	}
	if value, ok := iu.mutation.Prompt(); ok {
		_spec.SetField(item.FieldPrompt, field.TypeString, value)
	}
	if value, ok := iu.mutation.Choices(); ok {
		_spec.SetField(item.FieldChoices, field.TypeJSON, value)
	}
	if value, ok := iu.mutation.AppendedChoices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldChoices, value)
		})
	}
	if iu.mutation.ChoicesCleared() {
		_spec.ClearField(item.FieldChoices, field.TypeJSON)
	}
	if value, ok := iu.mutation.CorrectIndex(); ok {
		_spec.SetField(item.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := iu.mutation.AddedCorrectIndex(); ok {
		_spec.AddField(item.FieldCorrectIndex, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, iu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	iu.mutation.done = true
	return n, nil
}

// ItemUpdateOne is the builder for updating a single Item entity.
type ItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemMutation
}

// SetSetID sets the "set_id" field.
func (iuo *ItemUpdateOne) SetSetID(s string) *ItemUpdateOne {
	iuo.mutation.SetSetID(s)
	return iuo
}

// SetNillableSetID sets the "set_id" field if the given value is not nil.
func (iuo *ItemUpdateOne) SetNillableSetID(s *string) *ItemUpdateOne {
	if s != nil {
		iuo.SetSetID(*s)
	}
	return iuo
}

// SetPrompt sets the "prompt" field.
func (iuo *ItemUpdateOne) SetPrompt(s string) *ItemUpdateOne {
	iuo.mutation.SetPrompt(s)
	return iuo
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (iuo *ItemUpdateOne) SetNillablePrompt(s *string) *ItemUpdateOne {
	if s != nil {
		iuo.SetPrompt(*s)
	}
	return iuo
}

// SetChoices sets the "choices" field.
func (iuo *ItemUpdateOne) SetChoices(s []string) *ItemUpdateOne {
	iuo.mutation.SetChoices(s)
	return iuo
}

// AppendChoices appends s to the "choices" field.
func (iuo *ItemUpdateOne) AppendChoices(s []string) *ItemUpdateOne {
	iuo.mutation.AppendChoices(s)
	return iuo
}

// ClearChoices clears the value of the "choices" field.
func (iuo *ItemUpdateOne) ClearChoices() *ItemUpdateOne {
	iuo.mutation.ClearChoices()
	return iuo
}

// SetCorrectIndex sets the "correct_index" field.
func (iuo *ItemUpdateOne) SetCorrectIndex(i int) *ItemUpdateOne {
	iuo.mutation.ResetCorrectIndex()
	iuo.mutation.SetCorrectIndex(i)
	return iuo
}

// SetNillableCorrectIndex sets the "correct_index" field if the given value is not nil.
func (iuo *ItemUpdateOne) SetNillableCorrectIndex(i *int) *ItemUpdateOne {
	if i != nil {
		iuo.SetCorrectIndex(*i)
	}
	return iuo
}

// AddCorrectIndex adds i to the "correct_index" field.
func (iuo *ItemUpdateOne) AddCorrectIndex(i int) *ItemUpdateOne {
	iuo.mutation.AddCorrectIndex(i)
	return iuo
}

// Mutation returns the ItemMutation object of the builder.
func (iuo *ItemUpdateOne) Mutation() *ItemMutation {
	return iuo.mutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (iuo *ItemUpdateOne) Where(ps ...predicate.Item) *ItemUpdateOne {
	iuo.mutation.Where(ps...)
	return iuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (iuo *ItemUpdateOne) Select(field string, fields ...string) *ItemUpdateOne {
	iuo.fields = append([]string{field}, fields...)
	return iuo
}

// Save executes the query and returns the updated Item entity.
func (iuo *ItemUpdateOne) Save(ctx context.Context) (*Item, error) {
	return withHooks(ctx, iuo.sqlSave, iuo.mutation, iuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iuo *ItemUpdateOne) SaveX(ctx context.Context) *Item {
	node, err := iuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (iuo *ItemUpdateOne) Exec(ctx context.Context) error {
	_, err := iuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iuo *ItemUpdateOne) ExecX(ctx context.Context) {
	if err := iuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iuo *ItemUpdateOne) check() error {
	if v, ok := iuo.mutation.SetID(); ok {
		if err := item.SetIDValidator(v); err != nil {
			return &ValidationError{Name: "set_id", err: fmt.Errorf(`ent: validator failed for field "Item.set_id": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.CorrectIndex(); ok {
		if err := item.CorrectIndexValidator(v); err != nil {
			return &ValidationError{Name: "correct_index", err: fmt.Errorf(`ent: validator failed for field "Item.correct_index": %w`, err)}
		}
	}
	return nil
}

func (iuo *ItemUpdateOne) sqlSave(ctx context.Context) (_node *Item, err error) {
	if err := iuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	id, ok := iuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Item.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := iuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, item.FieldID)
		for _, f := range fields {
			if !item.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != item.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := iuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iuo.mutation.SetID(); ok {
		_spec.SetField(item.FieldSetID, field.TypeString, value)
	}
	if value, ok := iuo.mutation.Prompt(); ok {
		_spec.SetField(item.FieldPrompt, field.TypeString, value)
	}
	if value, ok := iuo.mutation.Choices(); ok {
		_spec.SetField(item.FieldChoices, field.TypeJSON, value)
	}
	if value, ok := iuo.mutation.AppendedChoices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldChoices, value)
		})
	}
	if iuo.mutation.ChoicesCleared() {
		_spec.ClearField(item.FieldChoices, field.TypeJSON)
	}
	if value, ok := iuo.mutation.CorrectIndex(); ok {
		_spec.SetField(item.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := iuo.mutation.AddedCorrectIndex(); ok {
		_spec.AddField(item.FieldCorrectIndex, field.TypeInt, value)
	}
	_node = &Item{config: iuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, iuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	iuo.mutation.done = true
	return _node, nil
}
