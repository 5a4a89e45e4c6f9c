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
	"github.com/lexora/srs/ent/schedule"
)

// ScheduleUpdate is the builder for updating Schedule entities.
type ScheduleUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduleMutation
}

// Where appends a list predicates to the ScheduleUpdate builder.
func (su *ScheduleUpdate) Where(ps ...predicate.Schedule) *ScheduleUpdate {
	su.mutation.Where(ps...)
	return su
}

// SetEaseFactor sets the "ease_factor" field.
func (su *ScheduleUpdate) SetEaseFactor(f float64) *ScheduleUpdate {
	su.mutation.ResetEaseFactor()
	su.mutation.SetEaseFactor(f)
	return su
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (su *ScheduleUpdate) SetNillableEaseFactor(f *float64) *ScheduleUpdate {
	if f != nil {
		su.SetEaseFactor(*f)
	}
	return su
}

// AddEaseFactor adds f to the "ease_factor" field.
func (su *ScheduleUpdate) AddEaseFactor(f float64) *ScheduleUpdate {
	su.mutation.AddEaseFactor(f)
	return su
}

// SetIntervalDays sets the "interval_days" field.
func (su *ScheduleUpdate) SetIntervalDays(i int) *ScheduleUpdate {
	su.mutation.ResetIntervalDays()
	su.mutation.SetIntervalDays(i)
	return su
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (su *ScheduleUpdate) SetNillableIntervalDays(i *int) *ScheduleUpdate {
	if i != nil {
		su.SetIntervalDays(*i)
	}
	return su
}

// AddIntervalDays adds i to the "interval_days" field.
func (su *ScheduleUpdate) AddIntervalDays(i int) *ScheduleUpdate {
	su.mutation.AddIntervalDays(i)
	return su
}

// SetRepetitions sets the "repetitions" field.
func (su *ScheduleUpdate) SetRepetitions(i int) *ScheduleUpdate {
	su.mutation.ResetRepetitions()
	su.mutation.SetRepetitions(i)
	return su
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (su *ScheduleUpdate) SetNillableRepetitions(i *int) *ScheduleUpdate {
	if i != nil {
		su.SetRepetitions(*i)
	}
	return su
}

// AddRepetitions adds i to the "repetitions" field.
func (su *ScheduleUpdate) AddRepetitions(i int) *ScheduleUpdate {
	su.mutation.AddRepetitions(i)
	return su
}

// SetNextReviewDate sets the "next_review_date" field.
func (su *ScheduleUpdate) SetNextReviewDate(t time.Time) *ScheduleUpdate {
	su.mutation.SetNextReviewDate(t)
	return su
}

// SetNillableNextReviewDate sets the "next_review_date" field if the given value is not nil.
func (su *ScheduleUpdate) SetNillableNextReviewDate(t *time.Time) *ScheduleUpdate {
	if t != nil {
		su.SetNextReviewDate(*t)
	}
	return su
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (su *ScheduleUpdate) SetLastReviewedAt(t time.Time) *ScheduleUpdate {
	su.mutation.SetLastReviewedAt(t)
	return su
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (su *ScheduleUpdate) SetNillableLastReviewedAt(t *time.Time) *ScheduleUpdate {
	if t != nil {
		su.SetLastReviewedAt(*t)
	}
	return su
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (su *ScheduleUpdate) ClearLastReviewedAt() *ScheduleUpdate {
	su.mutation.ClearLastReviewedAt()
	return su
}

// SetLastQuality sets the "last_quality" field.
func (su *ScheduleUpdate) SetLastQuality(i int) *ScheduleUpdate {
	su.mutation.ResetLastQuality()
	su.mutation.SetLastQuality(i)
	return su
}

// SetNillableLastQuality sets the "last_quality" field if the given value is not nil.
func (su *ScheduleUpdate) SetNillableLastQuality(i *int) *ScheduleUpdate {
	if i != nil {
		su.SetLastQuality(*i)
	}
	return su
}

// AddLastQuality adds i to the "last_quality" field.
func (su *ScheduleUpdate) AddLastQuality(i int) *ScheduleUpdate {
	su.mutation.AddLastQuality(i)
	return su
}

// SetLastAttemptID sets the "last_attempt_id" field.
func (su *ScheduleUpdate) SetLastAttemptID(s string) *ScheduleUpdate {
	su.mutation.SetLastAttemptID(s)
	return su
}

// SetNillableLastAttemptID sets the "last_attempt_id" field if the given value is not nil.
func (su *ScheduleUpdate) SetNillableLastAttemptID(s *string) *ScheduleUpdate {
	if s != nil {
		su.SetLastAttemptID(*s)
	}
	return su
}

// Mutation returns the ScheduleMutation object of the builder.
func (su *ScheduleUpdate) Mutation() *ScheduleMutation {
	return su.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (su *ScheduleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, su.sqlSave, su.mutation, su.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (su *ScheduleUpdate) SaveX(ctx context.Context) int {
	affected, err := su.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (su *ScheduleUpdate) Exec(ctx context.Context) error {
	_, err := su.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (su *ScheduleUpdate) ExecX(ctx context.Context) {
	if err := su.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (su *ScheduleUpdate) check() error {
	if v, ok := su.mutation.IntervalDays(); ok {
		if err := schedule.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "Schedule.interval_days": %w`, err)}
		}
	}
	if v, ok := su.mutation.Repetitions(); ok {
		if err := schedule.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "Schedule.repetitions": %w`, err)}
		}
	}
	return nil
}

func (su *ScheduleUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := su.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(schedule.Table, schedule.Columns, sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeInt))
	if ps := su.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := su.mutation.EaseFactor(); ok {
		_spec.SetField(schedule.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := su.mutation.AddedEaseFactor(); ok {
		_spec.AddField(schedule.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := su.mutation.IntervalDays(); ok {
		_spec.SetField(schedule.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := su.mutation.AddedIntervalDays(); ok {
		_spec.AddField(schedule.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := su.mutation.Repetitions(); ok {
		_spec.SetField(schedule.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := su.mutation.AddedRepetitions(); ok {
		_spec.AddField(schedule.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := su.mutation.NextReviewDate(); ok {
		_spec.SetField(schedule.FieldNextReviewDate, field.TypeTime, value)
	}
	if value, ok := su.mutation.LastReviewedAt(); ok {
		_spec.SetField(schedule.FieldLastReviewedAt, field.TypeTime, value)
	}
	if su.mutation.LastReviewedAtCleared() {
		_spec.ClearField(schedule.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := su.mutation.LastQuality(); ok {
		_spec.SetField(schedule.FieldLastQuality, field.TypeInt, value)
	}
	if value, ok := su.mutation.AddedLastQuality(); ok {
		_spec.AddField(schedule.FieldLastQuality, field.TypeInt, value)
	}
	if value, ok := su.mutation.LastAttemptID(); ok {
		_spec.SetField(schedule.FieldLastAttemptID, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, su.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	su.mutation.done = true
	return n, nil
}

// ScheduleUpdateOne is the builder for updating a single Schedule entity.
type ScheduleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduleMutation
}

// SetEaseFactor sets the "ease_factor" field.
func (suo *ScheduleUpdateOne) SetEaseFactor(f float64) *ScheduleUpdateOne {
	suo.mutation.ResetEaseFactor()
	suo.mutation.SetEaseFactor(f)
	return suo
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (suo *ScheduleUpdateOne) SetNillableEaseFactor(f *float64) *ScheduleUpdateOne {
	if f != nil {
		suo.SetEaseFactor(*f)
	}
	return suo
}

// AddEaseFactor adds f to the "ease_factor" field.
func (suo *ScheduleUpdateOne) AddEaseFactor(f float64) *ScheduleUpdateOne {
	suo.mutation.AddEaseFactor(f)
	return suo
}

// SetIntervalDays sets the "interval_days" field.
func (suo *ScheduleUpdateOne) SetIntervalDays(i int) *ScheduleUpdateOne {
	suo.mutation.ResetIntervalDays()
	suo.mutation.SetIntervalDays(i)
	return suo
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (suo *ScheduleUpdateOne) SetNillableIntervalDays(i *int) *ScheduleUpdateOne {
	if i != nil {
		suo.SetIntervalDays(*i)
	}
	return suo
}

// AddIntervalDays adds i to the "interval_days" field.
func (suo *ScheduleUpdateOne) AddIntervalDays(i int) *ScheduleUpdateOne {
	suo.mutation.AddIntervalDays(i)
	return suo
}

// SetRepetitions sets the "repetitions" field.
func (suo *ScheduleUpdateOne) SetRepetitions(i int) *ScheduleUpdateOne {
	suo.mutation.ResetRepetitions()
	suo.mutation.SetRepetitions(i)
	return suo
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (suo *ScheduleUpdateOne) SetNillableRepetitions(i *int) *ScheduleUpdateOne {
	if i != nil {
		suo.SetRepetitions(*i)
	}
	return suo
}

// AddRepetitions adds i to the "repetitions" field.
func (suo *ScheduleUpdateOne) AddRepetitions(i int) *ScheduleUpdateOne {
	suo.mutation.AddRepetitions(i)
	return suo
}

// SetNextReviewDate sets the "next_review_date" field.
func (suo *ScheduleUpdateOne) SetNextReviewDate(t time.Time) *ScheduleUpdateOne {
	suo.mutation.SetNextReviewDate(t)
	return suo
}

// SetNillableNextReviewDate sets the "next_review_date" field if the given value is not nil.
func (suo *ScheduleUpdateOne) SetNillableNextReviewDate(t *time.Time) *ScheduleUpdateOne {
	if t != nil {
		suo.SetNextReviewDate(*t)
	}
	return suo
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (suo *ScheduleUpdateOne) SetLastReviewedAt(t time.Time) *ScheduleUpdateOne {
	suo.mutation.SetLastReviewedAt(t)
	return suo
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (suo *ScheduleUpdateOne) SetNillableLastReviewedAt(t *time.Time) *ScheduleUpdateOne {
	if t != nil {
		suo.SetLastReviewedAt(*t)
	}
	return suo
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (suo *ScheduleUpdateOne) ClearLastReviewedAt() *ScheduleUpdateOne {
	suo.mutation.ClearLastReviewedAt()
	return suo
}

// SetLastQuality sets the "last_quality" field.
func (suo *ScheduleUpdateOne) SetLastQuality(i int) *ScheduleUpdateOne {
	suo.mutation.ResetLastQuality()
	suo.mutation.SetLastQuality(i)
	return suo
}

// SetNillableLastQuality sets the "last_quality" field if the given value is not nil.
func (suo *ScheduleUpdateOne) SetNillableLastQuality(i *int) *ScheduleUpdateOne {
	if i != nil {
		suo.SetLastQuality(*i)
	}
	return suo
}

// AddLastQuality adds i to the "last_quality" field.
func (suo *ScheduleUpdateOne) AddLastQuality(i int) *ScheduleUpdateOne {
	suo.mutation.AddLastQuality(i)
	return suo
}

// SetLastAttemptID sets the "last_attempt_id" field.
func (suo *ScheduleUpdateOne) SetLastAttemptID(s string) *ScheduleUpdateOne {
	suo.mutation.SetLastAttemptID(s)
	return suo
}

// SetNillableLastAttemptID sets the "last_attempt_id" field if the given value is not nil.
func (suo *ScheduleUpdateOne) SetNillableLastAttemptID(s *string) *ScheduleUpdateOne {
	if s != nil {
		suo.SetLastAttemptID(*s)
	}
	return suo
}

// Mutation returns the ScheduleMutation object of the builder.
func (suo *ScheduleUpdateOne) Mutation() *ScheduleMutation {
	return suo.mutation
}

// Where appends a list predicates to the ScheduleUpdate builder.
func (suo *ScheduleUpdateOne) Where(ps ...predicate.Schedule) *ScheduleUpdateOne {
	suo.mutation.Where(ps...)
	return suo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (suo *ScheduleUpdateOne) Select(field string, fields ...string) *ScheduleUpdateOne {
	suo.fields = append([]string{field}, fields...)
	return suo
}

// Save executes the query and returns the updated Schedule entity.
func (suo *ScheduleUpdateOne) Save(ctx context.Context) (*Schedule, error) {
	return withHooks(ctx, suo.sqlSave, suo.mutation, suo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (suo *ScheduleUpdateOne) SaveX(ctx context.Context) *Schedule {
	node, err := suo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (suo *ScheduleUpdateOne) Exec(ctx context.Context) error {
	_, err := suo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (suo *ScheduleUpdateOne) ExecX(ctx context.Context) {
	if err := suo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (suo *ScheduleUpdateOne) check() error {
	if v, ok := suo.mutation.IntervalDays(); ok {
		if err := schedule.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "Schedule.interval_days": %w`, err)}
		}
	}
	if v, ok := suo.mutation.Repetitions(); ok {
		if err := schedule.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "Schedule.repetitions": %w`, err)}
		}
	}
	return nil
}

func (suo *ScheduleUpdateOne) sqlSave(ctx context.Context) (_node *Schedule, err error) {
	if err := suo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schedule.Table, schedule.Columns, sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeInt))
	id, ok := suo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Schedule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := suo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schedule.FieldID)
		for _, f := range fields {
			if !schedule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != schedule.FieldID {
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
	if value, ok := suo.mutation.EaseFactor(); ok {
		_spec.SetField(schedule.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := suo.mutation.AddedEaseFactor(); ok {
		_spec.AddField(schedule.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := suo.mutation.IntervalDays(); ok {
		_spec.SetField(schedule.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := suo.mutation.AddedIntervalDays(); ok {
		_spec.AddField(schedule.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := suo.mutation.Repetitions(); ok {
		_spec.SetField(schedule.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := suo.mutation.AddedRepetitions(); ok {
		_spec.AddField(schedule.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := suo.mutation.NextReviewDate(); ok {
		_spec.SetField(schedule.FieldNextReviewDate, field.TypeTime, value)
	}
	if value, ok := suo.mutation.LastReviewedAt(); ok {
		_spec.SetField(schedule.FieldLastReviewedAt, field.TypeTime, value)
	}
	if suo.mutation.LastReviewedAtCleared() {
		_spec.ClearField(schedule.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := suo.mutation.LastQuality(); ok {
		_spec.SetField(schedule.FieldLastQuality, field.TypeInt, value)
	}
	if value, ok := suo.mutation.AddedLastQuality(); ok {
		_spec.AddField(schedule.FieldLastQuality, field.TypeInt, value)
	}
	if value, ok := suo.mutation.LastAttemptID(); ok {
		_spec.SetField(schedule.FieldLastAttemptID, field.TypeString, value)
	}
	_node = &Schedule{config: suo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, suo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	suo.mutation.done = true
	return _node, nil
}
