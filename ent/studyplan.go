// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lexora/srs/ent/studyplan"
)

// StudyPlan is the model entity for the StudyPlan schema.
type StudyPlan struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// PlanID holds the value of the "plan_id" field.
	PlanID string `json:"plan_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Item sets the plan distributes
	SetIds []string `json:"set_ids,omitempty"`
	// Deadline the backlog should be mastered by
	TargetDate time.Time `json:"target_date,omitempty"`
	// balanced or sequential
	Strategy string `json:"strategy,omitempty"`
	// Creator identity from the platform
	CreatedBy string `json:"created_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudyPlan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studyplan.FieldSetIds:
			values[i] = new([]byte)
		case studyplan.FieldID:
			values[i] = new(sql.NullInt64)
		case studyplan.FieldPlanID, studyplan.FieldName, studyplan.FieldStrategy, studyplan.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case studyplan.FieldTargetDate, studyplan.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudyPlan fields.
func (sp *StudyPlan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studyplan.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			sp.ID = int(value.Int64)
		case studyplan.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				sp.PlanID = value.String
			}
		case studyplan.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				sp.Name = value.String
			}
		case studyplan.FieldSetIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field set_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &sp.SetIds); err != nil {
					return fmt.Errorf("unmarshal field set_ids: %w", err)
				}
			}
		case studyplan.FieldTargetDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field target_date", values[i])
			} else if value.Valid {
				sp.TargetDate = value.Time
			}
		case studyplan.FieldStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strategy", values[i])
			} else if value.Valid {
				sp.Strategy = value.String
			}
		case studyplan.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				sp.CreatedBy = value.String
			}
		case studyplan.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				sp.CreatedAt = value.Time
			}
		default:
			sp.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudyPlan.
// This includes values selected through modifiers, order, etc.
func (sp *StudyPlan) Value(name string) (ent.Value, error) {
	return sp.selectValues.Get(name)
}

// Update returns a builder for updating this StudyPlan.
// Note that you need to call StudyPlan.Unwrap() before calling this method if this StudyPlan
// was returned from a transaction, and the transaction was committed or rolled back.
func (sp *StudyPlan) Update() *StudyPlanUpdateOne {
	return NewStudyPlanClient(sp.config).UpdateOne(sp)
}

// Unwrap unwraps the StudyPlan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (sp *StudyPlan) Unwrap() *StudyPlan {
	_tx, ok := sp.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudyPlan is not a transactional entity")
	}
	sp.config.driver = _tx.drv
	return sp
}

// String implements the fmt.Stringer.
func (sp *StudyPlan) String() string {
	var builder strings.Builder
	builder.WriteString("StudyPlan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", sp.ID))
	builder.WriteString("plan_id=")
	builder.WriteString(sp.PlanID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(sp.Name)
	builder.WriteString(", ")
	builder.WriteString("set_ids=")
	builder.WriteString(fmt.Sprintf("%v", sp.SetIds))
	builder.WriteString(", ")
	builder.WriteString("target_date=")
	builder.WriteString(sp.TargetDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("strategy=")
	builder.WriteString(sp.Strategy)
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(sp.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(sp.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StudyPlans is a parsable slice of StudyPlan.
type StudyPlans []*StudyPlan
