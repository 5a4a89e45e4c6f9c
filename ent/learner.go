// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lexora/srs/ent/learner"
)

// Learner is the model entity for the Learner schema.
type Learner struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// External learner identity from the platform
	LearnerID string `json:"learner_id,omitempty"`
	// Optional display name for CLI output
	DisplayName string `json:"display_name,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Learner) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learner.FieldID:
			values[i] = new(sql.NullInt64)
		case learner.FieldLearnerID, learner.FieldDisplayName:
			values[i] = new(sql.NullString)
		case learner.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Learner fields.
func (l *Learner) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learner.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			l.ID = int(value.Int64)
		case learner.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				l.LearnerID = value.String
			}
		case learner.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				l.DisplayName = value.String
			}
		case learner.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				l.CreatedAt = value.Time
			}
		default:
			l.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Learner.
// This includes values selected through modifiers, order, etc.
func (l *Learner) Value(name string) (ent.Value, error) {
	return l.selectValues.Get(name)
}

// Update returns a builder for updating this Learner.
// Note that you need to call Learner.Unwrap() before calling this method if this Learner
// was returned from a transaction, and the transaction was committed or rolled back.
func (l *Learner) Update() *LearnerUpdateOne {
	return NewLearnerClient(l.config).UpdateOne(l)
}

// Unwrap unwraps the Learner entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (l *Learner) Unwrap() *Learner {
	_tx, ok := l.config.driver.(*txDriver)
	if !ok {
		panic("ent: Learner is not a transactional entity")
	}
	l.config.driver = _tx.drv
	return l
}

// String implements the fmt.Stringer.
func (l *Learner) String() string {
	var builder strings.Builder
	builder.WriteString("Learner(")
	builder.WriteString(fmt.Sprintf("id=%v, ", l.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(l.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(l.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(l.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Learners is a parsable slice of Learner.
type Learners []*Learner
