// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lexora/srs/ent/schedule"
)

// Schedule is the model entity for the Schedule schema.
type Schedule struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// ItemID holds the value of the "item_id" field.
	ItemID string `json:"item_id,omitempty"`
	// Interval growth multiplier, floored at 1.3
	EaseFactor float64 `json:"ease_factor,omitempty"`
	// Days until the next review once due
	IntervalDays int `json:"interval_days,omitempty"`
	// Consecutive successful reviews since the last lapse
	Repetitions int `json:"repetitions,omitempty"`
	// When the item is next due
	NextReviewDate time.Time `json:"next_review_date,omitempty"`
	// Audit field, not used in computation
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	// Quality rating of the most recent review (audit)
	LastQuality int `json:"last_quality,omitempty"`
	// Idempotency key of the attempt that produced this state
	LastAttemptID string `json:"last_attempt_id,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Schedule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case schedule.FieldEaseFactor:
			values[i] = new(sql.NullFloat64)
		case schedule.FieldID, schedule.FieldIntervalDays, schedule.FieldRepetitions, schedule.FieldLastQuality:
			values[i] = new(sql.NullInt64)
		case schedule.FieldLearnerID, schedule.FieldItemID, schedule.FieldLastAttemptID:
			values[i] = new(sql.NullString)
		case schedule.FieldNextReviewDate, schedule.FieldLastReviewedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Schedule fields.
func (s *Schedule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case schedule.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			s.ID = int(value.Int64)
		case schedule.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				s.LearnerID = value.String
			}
		case schedule.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				s.ItemID = value.String
			}
		case schedule.FieldEaseFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_factor", values[i])
			} else if value.Valid {
				s.EaseFactor = value.Float64
			}
		case schedule.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				s.IntervalDays = int(value.Int64)
			}
		case schedule.FieldRepetitions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repetitions", values[i])
			} else if value.Valid {
				s.Repetitions = int(value.Int64)
			}
		case schedule.FieldNextReviewDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_date", values[i])
			} else if value.Valid {
				s.NextReviewDate = value.Time
			}
		case schedule.FieldLastReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reviewed_at", values[i])
			} else if value.Valid {
				s.LastReviewedAt = new(time.Time)
				*s.LastReviewedAt = value.Time
			}
		case schedule.FieldLastQuality:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_quality", values[i])
			} else if value.Valid {
				s.LastQuality = int(value.Int64)
			}
		case schedule.FieldLastAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_attempt_id", values[i])
			} else if value.Valid {
				s.LastAttemptID = value.String
			}
		default:
			s.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Schedule.
// This includes values selected through modifiers, order, etc.
func (s *Schedule) Value(name string) (ent.Value, error) {
	return s.selectValues.Get(name)
}

// Update returns a builder for updating this Schedule.
// Note that you need to call Schedule.Unwrap() before calling this method if this Schedule
// was returned from a transaction, and the transaction was committed or rolled back.
func (s *Schedule) Update() *ScheduleUpdateOne {
	return NewScheduleClient(s.config).UpdateOne(s)
}

// Unwrap unwraps the Schedule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (s *Schedule) Unwrap() *Schedule {
	_tx, ok := s.config.driver.(*txDriver)
	if !ok {
		panic("ent: Schedule is not a transactional entity")
	}
	s.config.driver = _tx.drv
	return s
}

// String implements the fmt.Stringer.
func (s *Schedule) String() string {
	var builder strings.Builder
	builder.WriteString("Schedule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", s.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(s.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("item_id=")
	builder.WriteString(s.ItemID)
	builder.WriteString(", ")
	builder.WriteString("ease_factor=")
	builder.WriteString(fmt.Sprintf("%v", s.EaseFactor))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", s.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("repetitions=")
	builder.WriteString(fmt.Sprintf("%v", s.Repetitions))
	builder.WriteString(", ")
	builder.WriteString("next_review_date=")
	builder.WriteString(s.NextReviewDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := s.LastReviewedAt; v != nil {
		builder.WriteString("last_reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_quality=")
	builder.WriteString(fmt.Sprintf("%v", s.LastQuality))
	builder.WriteString(", ")
	builder.WriteString("last_attempt_id=")
	builder.WriteString(s.LastAttemptID)
	builder.WriteByte(')')
	return builder.String()
}

// Schedules is a parsable slice of Schedule.
type Schedules []*Schedule
