// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lexora/srs/ent/sessionstate"
)

// SessionState is the model entity for the SessionState schema.
type SessionState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// SetID holds the value of the "set_id" field.
	SetID string `json:"set_id,omitempty"`
	// Session progress as JSON, validated on load
	Data map[string]interface{} `json:"data,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionstate.FieldData:
			values[i] = new([]byte)
		case sessionstate.FieldID:
			values[i] = new(sql.NullInt64)
		case sessionstate.FieldLearnerID, sessionstate.FieldSetID:
			values[i] = new(sql.NullString)
		case sessionstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionState fields.
func (ss *SessionState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ss.ID = int(value.Int64)
		case sessionstate.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				ss.LearnerID = value.String
			}
		case sessionstate.FieldSetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field set_id", values[i])
			} else if value.Valid {
				ss.SetID = value.String
			}
		case sessionstate.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ss.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case sessionstate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ss.UpdatedAt = value.Time
			}
		default:
			ss.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionState.
// This includes values selected through modifiers, order, etc.
func (ss *SessionState) Value(name string) (ent.Value, error) {
	return ss.selectValues.Get(name)
}

// Update returns a builder for updating this SessionState.
// Note that you need to call SessionState.Unwrap() before calling this method if this SessionState
// was returned from a transaction, and the transaction was committed or rolled back.
func (ss *SessionState) Update() *SessionStateUpdateOne {
	return NewSessionStateClient(ss.config).UpdateOne(ss)
}

// Unwrap unwraps the SessionState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ss *SessionState) Unwrap() *SessionState {
	_tx, ok := ss.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionState is not a transactional entity")
	}
	ss.config.driver = _tx.drv
	return ss
}

// String implements the fmt.Stringer.
func (ss *SessionState) String() string {
	var builder strings.Builder
	builder.WriteString("SessionState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ss.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(ss.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("set_id=")
	builder.WriteString(ss.SetID)
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", ss.Data))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ss.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionStates is a parsable slice of SessionState.
type SessionStates []*SessionState
