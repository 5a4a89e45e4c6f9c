// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lexora/srs/ent/item"
)

// Item is the model entity for the Item schema.
type Item struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// External item identity from the platform
	ItemID string `json:"item_id,omitempty"`
	// Item set (deck) this item belongs to
	SetID string `json:"set_id,omitempty"`
	// Question text shown to the learner
	Prompt string `json:"prompt,omitempty"`
	// Answer choices in display order
	Choices []string `json:"choices,omitempty"`
	// Index of the correct answer in choices
	CorrectIndex int `json:"correct_index,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Item) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case item.FieldChoices:
			values[i] = new([]byte)
		case item.FieldID, item.FieldCorrectIndex:
			values[i] = new(sql.NullInt64)
		case item.FieldItemID, item.FieldSetID, item.FieldPrompt:
			values[i] = new(sql.NullString)
		case item.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Item fields.
func (i *Item) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for j := range columns {
		switch columns[j] {
		case item.FieldID:
			value, ok := values[j].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			i.ID = int(value.Int64)
		case item.FieldItemID:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[j])
			} else if value.Valid {
				i.ItemID = value.String
			}
		case item.FieldSetID:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field set_id", values[j])
			} else if value.Valid {
				i.SetID = value.String
			}
		case item.FieldPrompt:
			if value, ok := values[j].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[j])
			} else if value.Valid {
				i.Prompt = value.String
			}
		case item.FieldChoices:
			if value, ok := values[j].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field choices", values[j])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &i.Choices); err != nil {
					return fmt.Errorf("unmarshal field choices: %w", err)
				}
			}
		case item.FieldCorrectIndex:
			if value, ok := values[j].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_index", values[j])
			} else if value.Valid {
				i.CorrectIndex = int(value.Int64)
			}
		case item.FieldCreatedAt:
			if value, ok := values[j].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[j])
			} else if value.Valid {
				i.CreatedAt = value.Time
			}
		default:
			i.selectValues.Set(columns[j], values[j])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Item.
// This includes values selected through modifiers, order, etc.
func (i *Item) Value(name string) (ent.Value, error) {
	return i.selectValues.Get(name)
}

// Update returns a builder for updating this Item.
// Note that you need to call Item.Unwrap() before calling this method if this Item
// was returned from a transaction, and the transaction was committed or rolled back.
func (i *Item) Update() *ItemUpdateOne {
	return NewItemClient(i.config).UpdateOne(i)
}

// Unwrap unwraps the Item entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (i *Item) Unwrap() *Item {
	_tx, ok := i.config.driver.(*txDriver)
	if !ok {
		panic("ent: Item is not a transactional entity")
	}
	i.config.driver = _tx.drv
	return i
}

// String implements the fmt.Stringer.
func (i *Item) String() string {
	var builder strings.Builder
	builder.WriteString("Item(")
	builder.WriteString(fmt.Sprintf("id=%v, ", i.ID))
	builder.WriteString("item_id=")
	builder.WriteString(i.ItemID)
	builder.WriteString(", ")
	builder.WriteString("set_id=")
	builder.WriteString(i.SetID)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(i.Prompt)
	builder.WriteString(", ")
	builder.WriteString("choices=")
	builder.WriteString(fmt.Sprintf("%v", i.Choices))
	builder.WriteString(", ")
	builder.WriteString("correct_index=")
	builder.WriteString(fmt.Sprintf("%v", i.CorrectIndex))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(i.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Items is a parsable slice of Item.
type Items []*Item
