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
	"github.com/lexora/srs/ent/streak"
)

// StreakUpdate is the builder for updating Streak entities.
type StreakUpdate struct {
	config
	hooks    []Hook
	mutation *StreakMutation
}

// Where appends a list predicates to the StreakUpdate builder.
func (su *StreakUpdate) Where(ps ...predicate.Streak) *StreakUpdate {
	su.mutation.Where(ps...)
	return su
}

// SetCurrentDays sets the "current_days" field.
func (su *StreakUpdate) SetCurrentDays(i int) *StreakUpdate {
	su.mutation.ResetCurrentDays()
	su.mutation.SetCurrentDays(i)
	return su
}

// SetNillableCurrentDays sets the "current_days" field if the given value is not nil.
func (su *StreakUpdate) SetNillableCurrentDays(i *int) *StreakUpdate {
	if i != nil {
		su.SetCurrentDays(*i)
	}
	return su
}

// AddCurrentDays adds i to the "current_days" field.
func (su *StreakUpdate) AddCurrentDays(i int) *StreakUpdate {
	su.mutation.AddCurrentDays(i)
	return su
}

// SetLongestDays sets the "longest_days" field.
func (su *StreakUpdate) SetLongestDays(i int) *StreakUpdate {
	su.mutation.ResetLongestDays()
	su.mutation.SetLongestDays(i)
	return su
}

// SetNillableLongestDays sets the "longest_days" field if the given value is not nil.
func (su *StreakUpdate) SetNillableLongestDays(i *int) *StreakUpdate {
	if i != nil {
		su.SetLongestDays(*i)
	}
	return su
}

// AddLongestDays adds i to the "longest_days" field.
func (su *StreakUpdate) AddLongestDays(i int) *StreakUpdate {
	su.mutation.AddLongestDays(i)
	return su
}

// SetLastPracticeDate sets the "last_practice_date" field.
func (su *StreakUpdate) SetLastPracticeDate(t time.Time) *StreakUpdate {
	su.mutation.SetLastPracticeDate(t)
	return su
}

// SetNillableLastPracticeDate sets the "last_practice_date" field if the given value is not nil.
func (su *StreakUpdate) SetNillableLastPracticeDate(t *time.Time) *StreakUpdate {
	if t != nil {
		su.SetLastPracticeDate(*t)
	}
	return su
}

// ClearLastPracticeDate clears the value of the "last_practice_date" field.
func (su *StreakUpdate) ClearLastPracticeDate() *StreakUpdate {
	su.mutation.ClearLastPracticeDate()
	return su
}

// SetTotalLearned sets the "total_learned" field.
func (su *StreakUpdate) SetTotalLearned(i int) *StreakUpdate {
	su.mutation.ResetTotalLearned()
	su.mutation.SetTotalLearned(i)
	return su
}

// SetNillableTotalLearned sets the "total_learned" field if the given value is not nil.
func (su *StreakUpdate) SetNillableTotalLearned(i *int) *StreakUpdate {
	if i != nil {
		su.SetTotalLearned(*i)
	}
	return su
}

// AddTotalLearned adds i to the "total_learned" field.
func (su *StreakUpdate) AddTotalLearned(i int) *StreakUpdate {
	su.mutation.AddTotalLearned(i)
	return su
}

// SetTotalMastered sets the "total_mastered" field.
func (su *StreakUpdate) SetTotalMastered(i int) *StreakUpdate {
	su.mutation.ResetTotalMastered()
	su.mutation.SetTotalMastered(i)
	return su
}

// SetNillableTotalMastered sets the "total_mastered" field if the given value is not nil.
func (su *StreakUpdate) SetNillableTotalMastered(i *int) *StreakUpdate {
	if i != nil {
		su.SetTotalMastered(*i)
	}
	return su
}

// AddTotalMastered adds i to the "total_mastered" field.
func (su *StreakUpdate) AddTotalMastered(i int) *StreakUpdate {
	su.mutation.AddTotalMastered(i)
	return su
}

// SetUpdatedAt sets the "updated_at" field.
func (su *StreakUpdate) SetUpdatedAt(t time.Time) *StreakUpdate {
	su.mutation.SetUpdatedAt(t)
	return su
}

// Mutation returns the StreakMutation object of the builder.
func (su *StreakUpdate) Mutation() *StreakMutation {
	return su.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (su *StreakUpdate) Save(ctx context.Context) (int, error) {
	su.defaults()
	return withHooks(ctx, su.sqlSave, su.mutation, su.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (su *StreakUpdate) SaveX(ctx context.Context) int {
	affected, err := su.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (su *StreakUpdate) Exec(ctx context.Context) error {
	_, err := su.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (su *StreakUpdate) ExecX(ctx context.Context) {
	if err := su.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (su *StreakUpdate) defaults() {
	if _, ok := su.mutation.UpdatedAt(); !ok {
		v := streak.UpdateDefaultUpdatedAt()
		su.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (su *StreakUpdate) check() error {
	if v, ok := su.mutation.CurrentDays(); ok {
		if err := streak.CurrentDaysValidator(v); err != nil {
			return &ValidationError{Name: "current_days", err: fmt.Errorf(`ent: validator failed for field "Streak.current_days": %w`, err)}
		}
	}
	if v, ok := su.mutation.LongestDays(); ok {
		if err := streak.LongestDaysValidator(v); err != nil {
			return &ValidationError{Name: "longest_days", err: fmt.Errorf(`ent: validator failed for field "Streak.longest_days": %w`, err)}
		}
	}
	if v, ok := su.mutation.TotalLearned(); ok {
		if err := streak.TotalLearnedValidator(v); err != nil {
			return &ValidationError{Name: "total_learned", err: fmt.Errorf(`ent: validator failed for field "Streak.total_learned": %w`, err)}
		}
	}
	if v, ok := su.mutation.TotalMastered(); ok {
		if err := streak.TotalMasteredValidator(v); err != nil {
			return &ValidationError{Name: "total_mastered", err: fmt.Errorf(`ent: validator failed for field "Streak.total_mastered": %w`, err)}
		}
	}
	return nil
}

func (su *StreakUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := su.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(streak.Table, streak.Columns, sqlgraph.NewFieldSpec(streak.FieldID, field.TypeInt))
	if ps := su.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := su.mutation.CurrentDays(); ok {
		_spec.SetField(streak.FieldCurrentDays, field.TypeInt, value)
	}
	if value, ok := su.mutation.AddedCurrentDays(); ok {
		_spec.AddField(streak.FieldCurrentDays, field.TypeInt, value)
	}
	if value, ok := su.mutation.LongestDays(); ok {
		_spec.SetField(streak.FieldLongestDays, field.TypeInt, value)
	}
	if value, ok := su.mutation.AddedLongestDays(); ok {
		_spec.AddField(streak.FieldLongestDays, field.TypeInt, value)
	}
	if value, ok := su.mutation.LastPracticeDate(); ok {
		_spec.SetField(streak.FieldLastPracticeDate, field.TypeTime, value)
	}
	if su.mutation.LastPracticeDateCleared() {
		_spec.ClearField(streak.FieldLastPracticeDate, field.TypeTime)
	}
	if value, ok := su.mutation.TotalLearned(); ok {
		_spec.SetField(streak.FieldTotalLearned, field.TypeInt, value)
	}
	if value, ok := su.mutation.AddedTotalLearned(); ok {
		_spec.AddField(streak.FieldTotalLearned, field.TypeInt, value)
	}
	if value, ok := su.mutation.TotalMastered(); ok {
		_spec.SetField(streak.FieldTotalMastered, field.TypeInt, value)
	}
	if value, ok := su.mutation.AddedTotalMastered(); ok {
		_spec.AddField(streak.FieldTotalMastered, field.TypeInt, value)
	}
	if value, ok := su.mutation.UpdatedAt(); ok {
		_spec.SetField(streak.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, su.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{streak.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	su.mutation.done = true
	return n, nil
}

// StreakUpdateOne is the builder for updating a single Streak entity.
type StreakUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StreakMutation
}

// SetCurrentDays sets the "current_days" field.
func (suo *StreakUpdateOne) SetCurrentDays(i int) *StreakUpdateOne {
	suo.mutation.ResetCurrentDays()
	suo.mutation.SetCurrentDays(i)
	return suo
}

// SetNillableCurrentDays sets the "current_days" field if the given value is not nil.
func (suo *StreakUpdateOne) SetNillableCurrentDays(i *int) *StreakUpdateOne {
	if i != nil {
		suo.SetCurrentDays(*i)
	}
	return suo
}

// AddCurrentDays adds i to the "current_days" field.
func (suo *StreakUpdateOne) AddCurrentDays(i int) *StreakUpdateOne {
	suo.mutation.AddCurrentDays(i)
	return suo
}

// SetLongestDays sets the "longest_days" field.
func (suo *StreakUpdateOne) SetLongestDays(i int) *StreakUpdateOne {
	suo.mutation.ResetLongestDays()
	suo.mutation.SetLongestDays(i)
	return suo
}

// SetNillableLongestDays sets the "longest_days" field if the given value is not nil.
func (suo *StreakUpdateOne) SetNillableLongestDays(i *int) *StreakUpdateOne {
	if i != nil {
		suo.SetLongestDays(*i)
	}
	return suo
}

// AddLongestDays adds i to the "longest_days" field.
func (suo *StreakUpdateOne) AddLongestDays(i int) *StreakUpdateOne {
	suo.mutation.AddLongestDays(i)
	return suo
}

// SetLastPracticeDate sets the "last_practice_date" field.
func (suo *StreakUpdateOne) SetLastPracticeDate(t time.Time) *StreakUpdateOne {
	suo.mutation.SetLastPracticeDate(t)
	return suo
}

// SetNillableLastPracticeDate sets the "last_practice_date" field if the given value is not nil.
func (suo *StreakUpdateOne) SetNillableLastPracticeDate(t *time.Time) *StreakUpdateOne {
	if t != nil {
		suo.SetLastPracticeDate(*t)
	}
	return suo
}

// ClearLastPracticeDate clears the value of the "last_practice_date" field.
func (suo *StreakUpdateOne) ClearLastPracticeDate() *StreakUpdateOne {
	suo.mutation.ClearLastPracticeDate()
	return suo
}

// SetTotalLearned sets the "total_learned" field.
func (suo *StreakUpdateOne) SetTotalLearned(i int) *StreakUpdateOne {
	suo.mutation.ResetTotalLearned()
	suo.mutation.SetTotalLearned(i)
	return suo
}

// SetNillableTotalLearned sets the "total_learned" field if the given value is not nil.
func (suo *StreakUpdateOne) SetNillableTotalLearned(i *int) *StreakUpdateOne {
	if i != nil {
		suo.SetTotalLearned(*i)
	}
	return suo
}

// AddTotalLearned adds i to the "total_learned" field.
func (suo *StreakUpdateOne) AddTotalLearned(i int) *StreakUpdateOne {
	suo.mutation.AddTotalLearned(i)
	return suo
}

// SetTotalMastered sets the "total_mastered" field.
func (suo *StreakUpdateOne) SetTotalMastered(i int) *StreakUpdateOne {
	suo.mutation.ResetTotalMastered()
	suo.mutation.SetTotalMastered(i)
	return suo
}

// SetNillableTotalMastered sets the "total_mastered" field if the given value is not nil.
func (suo *StreakUpdateOne) SetNillableTotalMastered(i *int) *StreakUpdateOne {
	if i != nil {
		suo.SetTotalMastered(*i)
	}
	return suo
}

// AddTotalMastered adds i to the "total_mastered" field.
func (suo *StreakUpdateOne) AddTotalMastered(i int) *StreakUpdateOne {
	suo.mutation.AddTotalMastered(i)
	return suo
}

// SetUpdatedAt sets the "updated_at" field.
func (suo *StreakUpdateOne) SetUpdatedAt(t time.Time) *StreakUpdateOne {
	suo.mutation.SetUpdatedAt(t)
	return suo
}

// Mutation returns the StreakMutation object of the builder.
func (suo *StreakUpdateOne) Mutation() *StreakMutation {
	return suo.mutation
}

// Where appends a list predicates to the StreakUpdate builder.
func (suo *StreakUpdateOne) Where(ps ...predicate.Streak) *StreakUpdateOne {
	suo.mutation.Where(ps...)
	return suo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (suo *StreakUpdateOne) Select(field string, fields ...string) *StreakUpdateOne {
	suo.fields = append([]string{field}, fields...)
	return suo
}

// Save executes the query and returns the updated Streak entity.
func (suo *StreakUpdateOne) Save(ctx context.Context) (*Streak, error) {
	suo.defaults()
	return withHooks(ctx, suo.sqlSave, suo.mutation, suo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (suo *StreakUpdateOne) SaveX(ctx context.Context) *Streak {
	node, err := suo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (suo *StreakUpdateOne) Exec(ctx context.Context) error {
	_, err := suo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (suo *StreakUpdateOne) ExecX(ctx context.Context) {
	if err := suo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (suo *StreakUpdateOne) defaults() {
	if _, ok := suo.mutation.UpdatedAt(); !ok {
		v := streak.UpdateDefaultUpdatedAt()
		suo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (suo *StreakUpdateOne) check() error {
	if v, ok := suo.mutation.CurrentDays(); ok {
		if err := streak.CurrentDaysValidator(v); err != nil {
			return &ValidationError{Name: "current_days", err: fmt.Errorf(`ent: validator failed for field "Streak.current_days": %w`, err)}
		}
	}
	if v, ok := suo.mutation.LongestDays(); ok {
		if err := streak.LongestDaysValidator(v); err != nil {
			return &ValidationError{Name: "longest_days", err: fmt.Errorf(`ent: validator failed for field "Streak.longest_days": %w`, err)}
		}
	}
	if v, ok := suo.mutation.TotalLearned(); ok {
		if err := streak.TotalLearnedValidator(v); err != nil {
			return &ValidationError{Name: "total_learned", err: fmt.Errorf(`ent: validator failed for field "Streak.total_learned": %w`, err)}
		}
	}
	if v, ok := suo.mutation.TotalMastered(); ok {
		if err := streak.TotalMasteredValidator(v); err != nil {
			return &ValidationError{Name: "total_mastered", err: fmt.Errorf(`ent: validator failed for field "Streak.total_mastered": %w`, err)}
		}
	}
	return nil
}

func (suo *StreakUpdateOne) sqlSave(ctx context.Context) (_node *Streak, err error) {
	if err := suo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(streak.Table, streak.Columns, sqlgraph.NewFieldSpec(streak.FieldID, field.TypeInt))
	id, ok := suo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Streak.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := suo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, streak.FieldID)
		for _, f := range fields {
			if !streak.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != streak.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := suo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := suo.mutation.CurrentDays(); ok {
		_spec.SetField(streak.FieldCurrentDays, field.TypeInt, value)
	}
	if value, ok := suo.mutation.AddedCurrentDays(); ok {
		_spec.AddField(streak.FieldCurrentDays, field.TypeInt, value)
	}
	if value, ok := suo.mutation.LongestDays(); ok {
		_spec.SetField(streak.FieldLongestDays, field.TypeInt, value)
	}
	if value, ok := suo.mutation.AddedLongestDays(); ok {
		_spec.AddField(streak.FieldLongestDays, field.TypeInt, value)
	}
	if value, ok := suo.mutation.LastPracticeDate(); ok {
		_spec.SetField(streak.FieldLastPracticeDate, field.TypeTime, value)
	}
	if suo.mutation.LastPracticeDateCleared() {
		_spec.ClearField(streak.FieldLastPracticeDate, field.TypeTime)
	}
	if value, ok := suo.mutation.TotalLearned(); ok {
		_spec.SetField(streak.FieldTotalLearned, field.TypeInt, value)
	}
	if value, ok := suo.mutation.AddedTotalLearned(); ok {
		_spec.AddField(streak.FieldTotalLearned, field.TypeInt, value)
	}
	if value, ok := suo.mutation.TotalMastered(); ok {
		_spec.SetField(streak.FieldTotalMastered, field.TypeInt, value)
	}
	if value, ok := suo.mutation.AddedTotalMastered(); ok {
		_spec.AddField(streak.FieldTotalMastered, field.TypeInt, value)
	}
	if value, ok := suo.mutation.UpdatedAt(); ok {
		_spec.SetField(streak.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Streak{config: suo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, suo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{streak.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	suo.mutation.done = true
	return _node, nil
}
