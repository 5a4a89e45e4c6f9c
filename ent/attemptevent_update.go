// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lexora/srs/ent/attemptevent"
	"github.com/lexora/srs/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (aeu *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	aeu.mutation.Where(ps...)
	return aeu
}

// SetLearnerID sets the "learner_id" field.
func (aeu *AttemptEventUpdate) SetLearnerID(s string) *AttemptEventUpdate {
	aeu.mutation.SetLearnerID(s)
	return aeu
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableLearnerID(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetLearnerID(*s)
	}
	return aeu
}

// SetItemID sets the "item_id" field.
func (aeu *AttemptEventUpdate) SetItemID(s string) *AttemptEventUpdate {
	aeu.mutation.SetItemID(s)
	return aeu
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableItemID(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetItemID(*s)
	}
	return aeu
}

// SetSelectedIndex sets the "selected_index" field.
func (aeu *AttemptEventUpdate) SetSelectedIndex(i int) *AttemptEventUpdate {
	aeu.mutation.ResetSelectedIndex()
	aeu.mutation.SetSelectedIndex(i)
	return aeu
}

// SetNillableSelectedIndex sets the "selected_index" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableSelectedIndex(i *int) *AttemptEventUpdate {
	if i != nil {
		aeu.SetSelectedIndex(*i)
	}
	return aeu
}

// AddSelectedIndex adds i to the "selected_index" field.
func (aeu *AttemptEventUpdate) AddSelectedIndex(i int) *AttemptEventUpdate {
	aeu.mutation.AddSelectedIndex(i)
	return aeu
}

// SetCorrect sets the "correct" field.
func (aeu *AttemptEventUpdate) SetCorrect(b bool) *AttemptEventUpdate {
	aeu.mutation.SetCorrect(b)
	return aeu
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableCorrect(b *bool) *AttemptEventUpdate {
	if b != nil {
		aeu.SetCorrect(*b)
	}
	return aeu
}

// SetTimeMs sets the "time_ms" field.
func (aeu *AttemptEventUpdate) SetTimeMs(i int) *AttemptEventUpdate {
	aeu.mutation.ResetTimeMs()
	aeu.mutation.SetTimeMs(i)
	return aeu
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableTimeMs(i *int) *AttemptEventUpdate {
	if i != nil {
		aeu.SetTimeMs(*i)
	}
	return aeu
}

// AddTimeMs adds i to the "time_ms" field.
func (aeu *AttemptEventUpdate) AddTimeMs(i int) *AttemptEventUpdate {
	aeu.mutation.AddTimeMs(i)
	return aeu
}

// SetQuality sets the "quality" field.
func (aeu *AttemptEventUpdate) SetQuality(i int) *AttemptEventUpdate {
	aeu.mutation.ResetQuality()
	aeu.mutation.SetQuality(i)
	return aeu
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableQuality(i *int) *AttemptEventUpdate {
	if i != nil {
		aeu.SetQuality(*i)
	}
	return aeu
}

// AddQuality adds i to the "quality" field.
func (aeu *AttemptEventUpdate) AddQuality(i int) *AttemptEventUpdate {
	aeu.mutation.AddQuality(i)
	return aeu
}

// Mutation returns the AttemptEventMutation object of the builder.
func (aeu *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return aeu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aeu *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aeu.sqlSave, aeu.mutation, aeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeu *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := aeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aeu *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := aeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeu *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := aeu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeu *AttemptEventUpdate) check() error {
	if v, ok := aeu.mutation.LearnerID(); ok {
		if err := attemptevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.ItemID(); ok {
		if err := attemptevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.item_id": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.SelectedIndex(); ok {
		if err := attemptevent.SelectedIndexValidator(v); err != nil {
			return &ValidationError{Name: "selected_index", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.selected_index": %w`, err)}
		}
	}
	return nil
}

func (aeu *AttemptEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aeu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := aeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeu.mutation.LearnerID(); ok {
		_spec.SetField(attemptevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.ItemID(); ok {
		_spec.SetField(attemptevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.SelectedIndex(); ok {
		_spec.SetField(attemptevent.FieldSelectedIndex, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedSelectedIndex(); ok {
		_spec.AddField(attemptevent.FieldSelectedIndex, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := aeu.mutation.TimeMs(); ok {
		_spec.SetField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedTimeMs(); ok {
		_spec.AddField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.Quality(); ok {
		_spec.SetField(attemptevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedQuality(); ok {
		_spec.AddField(attemptevent.FieldQuality, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aeu.mutation.done = true
	return n, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (aeuo *AttemptEventUpdateOne) SetLearnerID(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetLearnerID(s)
	return aeuo
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableLearnerID(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetLearnerID(*s)
	}
	return aeuo
}

// SetItemID sets the "item_id" field.
func (aeuo *AttemptEventUpdateOne) SetItemID(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetItemID(s)
	return aeuo
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableItemID(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetItemID(*s)
	}
	return aeuo
}

// SetSelectedIndex sets the "selected_index" field.
func (aeuo *AttemptEventUpdateOne) SetSelectedIndex(i int) *AttemptEventUpdateOne {
	aeuo.mutation.ResetSelectedIndex()
	aeuo.mutation.SetSelectedIndex(i)
	return aeuo
}

// SetNillableSelectedIndex sets the "selected_index" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableSelectedIndex(i *int) *AttemptEventUpdateOne {
	if i != nil {
		aeuo.SetSelectedIndex(*i)
	}
	return aeuo
}

// AddSelectedIndex adds i to the "selected_index" field.
func (aeuo *AttemptEventUpdateOne) AddSelectedIndex(i int) *AttemptEventUpdateOne {
	aeuo.mutation.AddSelectedIndex(i)
	return aeuo
}

// SetCorrect sets the "correct" field.
func (aeuo *AttemptEventUpdateOne) SetCorrect(b bool) *AttemptEventUpdateOne {
	aeuo.mutation.SetCorrect(b)
	return aeuo
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableCorrect(b *bool) *AttemptEventUpdateOne {
	if b != nil {
		aeuo.SetCorrect(*b)
	}
	return aeuo
}

// SetTimeMs sets the "time_ms" field.
func (aeuo *AttemptEventUpdateOne) SetTimeMs(i int) *AttemptEventUpdateOne {
	aeuo.mutation.ResetTimeMs()
	aeuo.mutation.SetTimeMs(i)
	return aeuo
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableTimeMs(i *int) *AttemptEventUpdateOne {
	if i != nil {
		aeuo.SetTimeMs(*i)
	}
	return aeuo
}

// AddTimeMs adds i to the "time_ms" field.
func (aeuo *AttemptEventUpdateOne) AddTimeMs(i int) *AttemptEventUpdateOne {
	aeuo.mutation.AddTimeMs(i)
	return aeuo
}

// SetQuality sets the "quality" field.
func (aeuo *AttemptEventUpdateOne) SetQuality(i int) *AttemptEventUpdateOne {
	aeuo.mutation.ResetQuality()
	aeuo.mutation.SetQuality(i)
	return aeuo
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableQuality(i *int) *AttemptEventUpdateOne {
	if i != nil {
		aeuo.SetQuality(*i)
	}
	return aeuo
}

// AddQuality adds i to the "quality" field.
func (aeuo *AttemptEventUpdateOne) AddQuality(i int) *AttemptEventUpdateOne {
	aeuo.mutation.AddQuality(i)
	return aeuo
}

// Mutation returns the AttemptEventMutation object of the builder.
func (aeuo *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return aeuo.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (aeuo *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	aeuo.mutation.Where(ps...)
	return aeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aeuo *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	aeuo.fields = append([]string{field}, fields...)
	return aeuo
}

// Save executes the query and returns the updated AttemptEvent entity.
func (aeuo *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, aeuo.sqlSave, aeuo.mutation, aeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeuo *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := aeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aeuo *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := aeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeuo *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := aeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeuo *AttemptEventUpdateOne) check() error {
	if v, ok := aeuo.mutation.LearnerID(); ok {
		if err := attemptevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.ItemID(); ok {
		if err := attemptevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.item_id": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.SelectedIndex(); ok {
		if err := attemptevent.SelectedIndexValidator(v); err != nil {
			return &ValidationError{Name: "selected_index", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.selected_index": %w`, err)}
		}
	}
	return nil
}

func (aeuo *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := aeuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := aeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeuo.mutation.LearnerID(); ok {
		_spec.SetField(attemptevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.ItemID(); ok {
		_spec.SetField(attemptevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.SelectedIndex(); ok {
		_spec.SetField(attemptevent.FieldSelectedIndex, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedSelectedIndex(); ok {
		_spec.AddField(attemptevent.FieldSelectedIndex, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := aeuo.mutation.TimeMs(); ok {
		_spec.SetField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedTimeMs(); ok {
		_spec.AddField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.Quality(); ok {
		_spec.SetField(attemptevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedQuality(); ok {
		_spec.AddField(attemptevent.FieldQuality, field.TypeInt, value)
	}
	_node = &AttemptEvent{config: aeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aeuo.mutation.done = true
	return _node, nil
}
