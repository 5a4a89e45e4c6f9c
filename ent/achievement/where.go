// Code generated by ent, DO NOT EDIT.

package achievement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lexora/srs/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldLearnerID, v))
}

// AchievementType applies equality check predicate on the "achievement_type" field. It's identical to AchievementTypeEQ.
func AchievementType(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldAchievementType, v))
}

// AwardedAt applies equality check predicate on the "awarded_at" field. It's identical to AwardedAtEQ.
func AwardedAt(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldAwardedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContainsFold(FieldLearnerID, v))
}

// AchievementTypeEQ applies the EQ predicate on the "achievement_type" field.
func AchievementTypeEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldAchievementType, v))
}

// AchievementTypeNEQ applies the NEQ predicate on the "achievement_type" field.
func AchievementTypeNEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldAchievementType, v))
}

// AchievementTypeIn applies the In predicate on the "achievement_type" field.
func AchievementTypeIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldAchievementType, vs...))
}

// AchievementTypeNotIn applies the NotIn predicate on the "achievement_type" field.
func AchievementTypeNotIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldAchievementType, vs...))
}

// AchievementTypeGT applies the GT predicate on the "achievement_type" field.
func AchievementTypeGT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldAchievementType, v))
}

// AchievementTypeGTE applies the GTE predicate on the "achievement_type" field.
func AchievementTypeGTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldAchievementType, v))
}

// AchievementTypeLT applies the LT predicate on the "achievement_type" field.
func AchievementTypeLT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldAchievementType, v))
}

// AchievementTypeLTE applies the LTE predicate on the "achievement_type" field.
func AchievementTypeLTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldAchievementType, v))
}

// AchievementTypeContains applies the Contains predicate on the "achievement_type" field.
func AchievementTypeContains(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContains(FieldAchievementType, v))
}

// AchievementTypeHasPrefix applies the HasPrefix predicate on the "achievement_type" field.
func AchievementTypeHasPrefix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasPrefix(FieldAchievementType, v))
}

// AchievementTypeHasSuffix applies the HasSuffix predicate on the "achievement_type" field.
func AchievementTypeHasSuffix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasSuffix(FieldAchievementType, v))
}

// AchievementTypeEqualFold applies the EqualFold predicate on the "achievement_type" field.
func AchievementTypeEqualFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEqualFold(FieldAchievementType, v))
}

// AchievementTypeContainsFold applies the ContainsFold predicate on the "achievement_type" field.
func AchievementTypeContainsFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContainsFold(FieldAchievementType, v))
}

// AwardedAtEQ applies the EQ predicate on the "awarded_at" field.
func AwardedAtEQ(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldAwardedAt, v))
}

// AwardedAtNEQ applies the NEQ predicate on the "awarded_at" field.
func AwardedAtNEQ(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldAwardedAt, v))
}

// AwardedAtIn applies the In predicate on the "awarded_at" field.
func AwardedAtIn(vs ...time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldAwardedAt, vs...))
}

// AwardedAtNotIn applies the NotIn predicate on the "awarded_at" field.
func AwardedAtNotIn(vs ...time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldAwardedAt, vs...))
}

// AwardedAtGT applies the GT predicate on the "awarded_at" field.
func AwardedAtGT(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldAwardedAt, v))
}

// AwardedAtGTE applies the GTE predicate on the "awarded_at" field.
func AwardedAtGTE(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldAwardedAt, v))
}

// AwardedAtLT applies the LT predicate on the "awarded_at" field.
func AwardedAtLT(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldAwardedAt, v))
}

// AwardedAtLTE applies the LTE predicate on the "awarded_at" field.
func AwardedAtLTE(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldAwardedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Achievement) predicate.Achievement {
	return predicate.Achievement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Achievement) predicate.Achievement {
	return predicate.Achievement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Achievement) predicate.Achievement {
	return predicate.Achievement(sql.NotPredicates(p))
}
