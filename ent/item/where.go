// Code generated by ent, DO NOT EDIT.

package item

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lexora/srs/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldID, id))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldItemID, v))
}

// SetID applies equality check predicate on the "set_id" field. It's identical to SetIDEQ.
func SetID(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldSetID, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldPrompt, v))
}

// CorrectIndex applies equality check predicate on the "correct_index" field. It's identical to CorrectIndexEQ.
func CorrectIndex(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCorrectIndex, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCreatedAt, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldItemID, v))
}

// SetIDEQ applies the EQ predicate on the "set_id" field.
func SetIDEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldSetID, v))
}

// SetIDNEQ applies the NEQ predicate on the "set_id" field.
func SetIDNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldSetID, v))
}

// SetIDIn applies the In predicate on the "set_id" field.
func SetIDIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldSetID, vs...))
}

// SetIDNotIn applies the NotIn predicate on the "set_id" field.
func SetIDNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldSetID, vs...))
}

// SetIDGT applies the GT predicate on the "set_id" field.
func SetIDGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldSetID, v))
}

// SetIDGTE applies the GTE predicate on the "set_id" field.
func SetIDGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldSetID, v))
}

// SetIDLT applies the LT predicate on the "set_id" field.
func SetIDLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldSetID, v))
}

// SetIDLTE applies the LTE predicate on the "set_id" field.
func SetIDLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldSetID, v))
}

// SetIDContains applies the Contains predicate on the "set_id" field.
func SetIDContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldSetID, v))
}

// SetIDHasPrefix applies the HasPrefix predicate on the "set_id" field.
func SetIDHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldSetID, v))
}

// SetIDHasSuffix applies the HasSuffix predicate on the "set_id" field.
func SetIDHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldSetID, v))
}

// SetIDEqualFold applies the EqualFold predicate on the "set_id" field.
func SetIDEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldSetID, v))
}

// SetIDContainsFold applies the ContainsFold predicate on the "set_id" field.
func SetIDContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldSetID, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldPrompt, v))
}

// ChoicesIsNil applies the IsNil predicate on the "choices" field.
func ChoicesIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldChoices))
}

// ChoicesNotNil applies the NotNil predicate on the "choices" field.
func ChoicesNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldChoices))
}

// CorrectIndexEQ applies the EQ predicate on the "correct_index" field.
func CorrectIndexEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCorrectIndex, v))
}

// CorrectIndexNEQ applies the NEQ predicate on the "correct_index" field.
func CorrectIndexNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldCorrectIndex, v))
}

// CorrectIndexIn applies the In predicate on the "correct_index" field.
func CorrectIndexIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldCorrectIndex, vs...))
}

// CorrectIndexNotIn applies the NotIn predicate on the "correct_index" field.
func CorrectIndexNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldCorrectIndex, vs...))
}

// CorrectIndexGT applies the GT predicate on the "correct_index" field.
func CorrectIndexGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldCorrectIndex, v))
}

// CorrectIndexGTE applies the GTE predicate on the "correct_index" field.
func CorrectIndexGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldCorrectIndex, v))
}

// CorrectIndexLT applies the LT predicate on the "correct_index" field.
func CorrectIndexLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldCorrectIndex, v))
}

// CorrectIndexLTE applies the LTE predicate on the "correct_index" field.
func CorrectIndexLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldCorrectIndex, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Item) predicate.Item {
	return predicate.Item(sql.NotPredicates(p))
}
