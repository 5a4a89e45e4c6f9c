// Code generated by ent, DO NOT EDIT.

package sessionstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lexora/srs/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionState {
	return predicate.SessionState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionState {
	return predicate.SessionState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionState {
	return predicate.SessionState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionState {
	return predicate.SessionState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionState {
	return predicate.SessionState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionState {
	return predicate.SessionState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionState {
	return predicate.SessionState(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldLearnerID, v))
}

// SetID applies equality check predicate on the "set_id" field. It's identical to SetIDEQ.
func SetID(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldSetID, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldUpdatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.SessionState {
	return predicate.SessionState(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.SessionState {
	return predicate.SessionState(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldContainsFold(FieldLearnerID, v))
}

// SetIDEQ applies the EQ predicate on the "set_id" field.
func SetIDEQ(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldSetID, v))
}

// SetIDNEQ applies the NEQ predicate on the "set_id" field.
func SetIDNEQ(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldNEQ(FieldSetID, v))
}

// SetIDIn applies the In predicate on the "set_id" field.
func SetIDIn(vs ...string) predicate.SessionState {
	return predicate.SessionState(sql.FieldIn(FieldSetID, vs...))
}

// SetIDNotIn applies the NotIn predicate on the "set_id" field.
func SetIDNotIn(vs ...string) predicate.SessionState {
	return predicate.SessionState(sql.FieldNotIn(FieldSetID, vs...))
}

// SetIDGT applies the GT predicate on the "set_id" field.
func SetIDGT(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldGT(FieldSetID, v))
}

// SetIDGTE applies the GTE predicate on the "set_id" field.
func SetIDGTE(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldGTE(FieldSetID, v))
}

// SetIDLT applies the LT predicate on the "set_id" field.
func SetIDLT(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldLT(FieldSetID, v))
}

// SetIDLTE applies the LTE predicate on the "set_id" field.
func SetIDLTE(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldLTE(FieldSetID, v))
}

// SetIDContains applies the Contains predicate on the "set_id" field.
func SetIDContains(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldContains(FieldSetID, v))
}

// SetIDHasPrefix applies the HasPrefix predicate on the "set_id" field.
func SetIDHasPrefix(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldHasPrefix(FieldSetID, v))
}

// SetIDHasSuffix applies the HasSuffix predicate on the "set_id" field.
func SetIDHasSuffix(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldHasSuffix(FieldSetID, v))
}

// SetIDEqualFold applies the EqualFold predicate on the "set_id" field.
func SetIDEqualFold(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEqualFold(FieldSetID, v))
}

// SetIDContainsFold applies the ContainsFold predicate on the "set_id" field.
func SetIDContainsFold(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldContainsFold(FieldSetID, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SessionState {
	return predicate.SessionState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionState) predicate.SessionState {
	return predicate.SessionState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionState) predicate.SessionState {
	return predicate.SessionState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionState) predicate.SessionState {
	return predicate.SessionState(sql.NotPredicates(p))
}
