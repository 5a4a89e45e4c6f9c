// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lexora/srs/ent/streak"
)

// Streak is the model entity for the Streak schema.
type Streak struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// CurrentDays holds the value of the "current_days" field.
	CurrentDays int `json:"current_days,omitempty"`
	// LongestDays holds the value of the "longest_days" field.
	LongestDays int `json:"longest_days,omitempty"`
	// Calendar day of the most recent counted practice
	LastPracticeDate *time.Time `json:"last_practice_date,omitempty"`
	// Schedules classified learning or mastered, recomputed on update
	TotalLearned int `json:"total_learned,omitempty"`
	// Schedules classified mastered, recomputed on update
	TotalMastered int `json:"total_mastered,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Streak) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case streak.FieldID, streak.FieldCurrentDays, streak.FieldLongestDays, streak.FieldTotalLearned, streak.FieldTotalMastered:
			values[i] = new(sql.NullInt64)
		case streak.FieldLearnerID:
			values[i] = new(sql.NullString)
		case streak.FieldLastPracticeDate, streak.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Streak fields.
func (s *Streak) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case streak.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			s.ID = int(value.Int64)
		case streak.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				s.LearnerID = value.String
			}
		case streak.FieldCurrentDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_days", values[i])
			} else if value.Valid {
				s.CurrentDays = int(value.Int64)
			}
		case streak.FieldLongestDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field longest_days", values[i])
			} else if value.Valid {
				s.LongestDays = int(value.Int64)
			}
		case streak.FieldLastPracticeDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_practice_date", values[i])
			} else if value.Valid {
				s.LastPracticeDate = new(time.Time)
				*s.LastPracticeDate = value.Time
			}
		case streak.FieldTotalLearned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_learned", values[i])
			} else if value.Valid {
				s.TotalLearned = int(value.Int64)
			}
		case streak.FieldTotalMastered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_mastered", values[i])
			} else if value.Valid {
				s.TotalMastered = int(value.Int64)
			}
		case streak.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				s.UpdatedAt = value.Time
			}
		default:
			s.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Streak.
// This includes values selected through modifiers, order, etc.
func (s *Streak) Value(name string) (ent.Value, error) {
	return s.selectValues.Get(name)
}

// Update returns a builder for updating this Streak.
// Note that you need to call Streak.Unwrap() before calling this method if this Streak
// was returned from a transaction, and the transaction was committed or rolled back.
func (s *Streak) Update() *StreakUpdateOne {
	return NewStreakClient(s.config).UpdateOne(s)
}

// Unwrap unwraps the Streak entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (s *Streak) Unwrap() *Streak {
	_tx, ok := s.config.driver.(*txDriver)
	if !ok {
		panic("ent: Streak is not a transactional entity")
	}
	s.config.driver = _tx.drv
	return s
}

// String implements the fmt.Stringer.
func (s *Streak) String() string {
	var builder strings.Builder
	builder.WriteString("Streak(")
	builder.WriteString(fmt.Sprintf("id=%v, ", s.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(s.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("current_days=")
	builder.WriteString(fmt.Sprintf("%v", s.CurrentDays))
	builder.WriteString(", ")
	builder.WriteString("longest_days=")
	builder.WriteString(fmt.Sprintf("%v", s.LongestDays))
	builder.WriteString(", ")
	if v := s.LastPracticeDate; v != nil {
		builder.WriteString("last_practice_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("total_learned=")
	builder.WriteString(fmt.Sprintf("%v", s.TotalLearned))
	builder.WriteString(", ")
	builder.WriteString("total_mastered=")
	builder.WriteString(fmt.Sprintf("%v", s.TotalMastered))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(s.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Streaks is a parsable slice of Streak.
type Streaks []*Streak
