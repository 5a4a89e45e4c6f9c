// Code generated by ent, DO NOT EDIT.

package streak

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lexora/srs/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Streak {
	return predicate.Streak(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Streak {
	return predicate.Streak(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Streak {
	return predicate.Streak(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Streak {
	return predicate.Streak(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Streak {
	return predicate.Streak(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Streak {
	return predicate.Streak(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Streak {
	return predicate.Streak(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldLearnerID, v))
}

// CurrentDays applies equality check predicate on the "current_days" field. It's identical to CurrentDaysEQ.
func CurrentDays(v int) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldCurrentDays, v))
}

// LongestDays applies equality check predicate on the "longest_days" field. It's identical to LongestDaysEQ.
func LongestDays(v int) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldLongestDays, v))
}

// LastPracticeDate applies equality check predicate on the "last_practice_date" field. It's identical to LastPracticeDateEQ.
func LastPracticeDate(v time.Time) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldLastPracticeDate, v))
}

// TotalLearned applies equality check predicate on the "total_learned" field. It's identical to TotalLearnedEQ.
func TotalLearned(v int) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldTotalLearned, v))
}

// TotalMastered applies equality check predicate on the "total_mastered" field. It's identical to TotalMasteredEQ.
func TotalMastered(v int) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldTotalMastered, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldUpdatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.Streak {
	return predicate.Streak(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.Streak {
	return predicate.Streak(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.Streak {
	return predicate.Streak(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.Streak {
	return predicate.Streak(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.Streak {
	return predicate.Streak(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.Streak {
	return predicate.Streak(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.Streak {
	return predicate.Streak(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.Streak {
	return predicate.Streak(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.Streak {
	return predicate.Streak(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.Streak {
	return predicate.Streak(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.Streak {
	return predicate.Streak(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.Streak {
	return predicate.Streak(sql.FieldContainsFold(FieldLearnerID, v))
}

// CurrentDaysEQ applies the EQ predicate on the "current_days" field.
func CurrentDaysEQ(v int) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldCurrentDays, v))
}

// CurrentDaysNEQ applies the NEQ predicate on the "current_days" field.
func CurrentDaysNEQ(v int) predicate.Streak {
	return predicate.Streak(sql.FieldNEQ(FieldCurrentDays, v))
}

// CurrentDaysIn applies the In predicate on the "current_days" field.
func CurrentDaysIn(vs ...int) predicate.Streak {
	return predicate.Streak(sql.FieldIn(FieldCurrentDays, vs...))
}

// CurrentDaysNotIn applies the NotIn predicate on the "current_days" field.
func CurrentDaysNotIn(vs ...int) predicate.Streak {
	return predicate.Streak(sql.FieldNotIn(FieldCurrentDays, vs...))
}

// CurrentDaysGT applies the GT predicate on the "current_days" field.
func CurrentDaysGT(v int) predicate.Streak {
	return predicate.Streak(sql.FieldGT(FieldCurrentDays, v))
}

// CurrentDaysGTE applies the GTE predicate on the "current_days" field.
func CurrentDaysGTE(v int) predicate.Streak {
	return predicate.Streak(sql.FieldGTE(FieldCurrentDays, v))
}

// CurrentDaysLT applies the LT predicate on the "current_days" field.
func CurrentDaysLT(v int) predicate.Streak {
	return predicate.Streak(sql.FieldLT(FieldCurrentDays, v))
}

// CurrentDaysLTE applies the LTE predicate on the "current_days" field.
func CurrentDaysLTE(v int) predicate.Streak {
	return predicate.Streak(sql.FieldLTE(FieldCurrentDays, v))
}

// LongestDaysEQ applies the EQ predicate on the "longest_days" field.
func LongestDaysEQ(v int) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldLongestDays, v))
}

// LongestDaysNEQ applies the NEQ predicate on the "longest_days" field.
func LongestDaysNEQ(v int) predicate.Streak {
	return predicate.Streak(sql.FieldNEQ(FieldLongestDays, v))
}

// LongestDaysIn applies the In predicate on the "longest_days" field.
func LongestDaysIn(vs ...int) predicate.Streak {
	return predicate.Streak(sql.FieldIn(FieldLongestDays, vs...))
}

// LongestDaysNotIn applies the NotIn predicate on the "longest_days" field.
func LongestDaysNotIn(vs ...int) predicate.Streak {
	return predicate.Streak(sql.FieldNotIn(FieldLongestDays, vs...))
}

// LongestDaysGT applies the GT predicate on the "longest_days" field.
func LongestDaysGT(v int) predicate.Streak {
	return predicate.Streak(sql.FieldGT(FieldLongestDays, v))
}

// LongestDaysGTE applies the GTE predicate on the "longest_days" field.
func LongestDaysGTE(v int) predicate.Streak {
	return predicate.Streak(sql.FieldGTE(FieldLongestDays, v))
}

// LongestDaysLT applies the LT predicate on the "longest_days" field.
func LongestDaysLT(v int) predicate.Streak {
	return predicate.Streak(sql.FieldLT(FieldLongestDays, v))
}

// LongestDaysLTE applies the LTE predicate on the "longest_days" field.
func LongestDaysLTE(v int) predicate.Streak {
	return predicate.Streak(sql.FieldLTE(FieldLongestDays, v))
}

// LastPracticeDateEQ applies the EQ predicate on the "last_practice_date" field.
func LastPracticeDateEQ(v time.Time) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldLastPracticeDate, v))
}

// LastPracticeDateNEQ applies the NEQ predicate on the "last_practice_date" field.
func LastPracticeDateNEQ(v time.Time) predicate.Streak {
	return predicate.Streak(sql.FieldNEQ(FieldLastPracticeDate, v))
}

// LastPracticeDateIn applies the In predicate on the "last_practice_date" field.
func LastPracticeDateIn(vs ...time.Time) predicate.Streak {
	return predicate.Streak(sql.FieldIn(FieldLastPracticeDate, vs...))
}

// LastPracticeDateNotIn applies the NotIn predicate on the "last_practice_date" field.
func LastPracticeDateNotIn(vs ...time.Time) predicate.Streak {
	return predicate.Streak(sql.FieldNotIn(FieldLastPracticeDate, vs...))
}

// LastPracticeDateGT applies the GT predicate on the "last_practice_date" field.
func LastPracticeDateGT(v time.Time) predicate.Streak {
	return predicate.Streak(sql.FieldGT(FieldLastPracticeDate, v))
}

// LastPracticeDateGTE applies the GTE predicate on the "last_practice_date" field.
func LastPracticeDateGTE(v time.Time) predicate.Streak {
	return predicate.Streak(sql.FieldGTE(FieldLastPracticeDate, v))
}

// LastPracticeDateLT applies the LT predicate on the "last_practice_date" field.
func LastPracticeDateLT(v time.Time) predicate.Streak {
	return predicate.Streak(sql.FieldLT(FieldLastPracticeDate, v))
}

// LastPracticeDateLTE applies the LTE predicate on the "last_practice_date" field.
func LastPracticeDateLTE(v time.Time) predicate.Streak {
	return predicate.Streak(sql.FieldLTE(FieldLastPracticeDate, v))
}

// LastPracticeDateIsNil applies the IsNil predicate on the "last_practice_date" field.
func LastPracticeDateIsNil() predicate.Streak {
	return predicate.Streak(sql.FieldIsNull(FieldLastPracticeDate))
}

// LastPracticeDateNotNil applies the NotNil predicate on the "last_practice_date" field.
func LastPracticeDateNotNil() predicate.Streak {
	return predicate.Streak(sql.FieldNotNull(FieldLastPracticeDate))
}

// TotalLearnedEQ applies the EQ predicate on the "total_learned" field.
func TotalLearnedEQ(v int) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldTotalLearned, v))
}

// TotalLearnedNEQ applies the NEQ predicate on the "total_learned" field.
func TotalLearnedNEQ(v int) predicate.Streak {
	return predicate.Streak(sql.FieldNEQ(FieldTotalLearned, v))
}

// TotalLearnedIn applies the In predicate on the "total_learned" field.
func TotalLearnedIn(vs ...int) predicate.Streak {
	return predicate.Streak(sql.FieldIn(FieldTotalLearned, vs...))
}

// TotalLearnedNotIn applies the NotIn predicate on the "total_learned" field.
func TotalLearnedNotIn(vs ...int) predicate.Streak {
	return predicate.Streak(sql.FieldNotIn(FieldTotalLearned, vs...))
}

// TotalLearnedGT applies the GT predicate on the "total_learned" field.
func TotalLearnedGT(v int) predicate.Streak {
	return predicate.Streak(sql.FieldGT(FieldTotalLearned, v))
}

// TotalLearnedGTE applies the GTE predicate on the "total_learned" field.
func TotalLearnedGTE(v int) predicate.Streak {
	return predicate.Streak(sql.FieldGTE(FieldTotalLearned, v))
}

// TotalLearnedLT applies the LT predicate on the "total_learned" field.
func TotalLearnedLT(v int) predicate.Streak {
	return predicate.Streak(sql.FieldLT(FieldTotalLearned, v))
}

// TotalLearnedLTE applies the LTE predicate on the "total_learned" field.
func TotalLearnedLTE(v int) predicate.Streak {
	return predicate.Streak(sql.FieldLTE(FieldTotalLearned, v))
}

// TotalMasteredEQ applies the EQ predicate on the "total_mastered" field.
func TotalMasteredEQ(v int) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldTotalMastered, v))
}

// TotalMasteredNEQ applies the NEQ predicate on the "total_mastered" field.
func TotalMasteredNEQ(v int) predicate.Streak {
	return predicate.Streak(sql.FieldNEQ(FieldTotalMastered, v))
}

// TotalMasteredIn applies the In predicate on the "total_mastered" field.
func TotalMasteredIn(vs ...int) predicate.Streak {
	return predicate.Streak(sql.FieldIn(FieldTotalMastered, vs...))
}

// TotalMasteredNotIn applies the NotIn predicate on the "total_mastered" field.
func TotalMasteredNotIn(vs ...int) predicate.Streak {
	return predicate.Streak(sql.FieldNotIn(FieldTotalMastered, vs...))
}

// TotalMasteredGT applies the GT predicate on the "total_mastered" field.
func TotalMasteredGT(v int) predicate.Streak {
	return predicate.Streak(sql.FieldGT(FieldTotalMastered, v))
}

// TotalMasteredGTE applies the GTE predicate on the "total_mastered" field.
func TotalMasteredGTE(v int) predicate.Streak {
	return predicate.Streak(sql.FieldGTE(FieldTotalMastered, v))
}

// TotalMasteredLT applies the LT predicate on the "total_mastered" field.
func TotalMasteredLT(v int) predicate.Streak {
	return predicate.Streak(sql.FieldLT(FieldTotalMastered, v))
}

// TotalMasteredLTE applies the LTE predicate on the "total_mastered" field.
func TotalMasteredLTE(v int) predicate.Streak {
	return predicate.Streak(sql.FieldLTE(FieldTotalMastered, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Streak {
	return predicate.Streak(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Streak {
	return predicate.Streak(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Streak {
	return predicate.Streak(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Streak {
	return predicate.Streak(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Streak {
	return predicate.Streak(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Streak {
	return predicate.Streak(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Streak {
	return predicate.Streak(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Streak {
	return predicate.Streak(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Streak) predicate.Streak {
	return predicate.Streak(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Streak) predicate.Streak {
	return predicate.Streak(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Streak) predicate.Streak {
	return predicate.Streak(sql.NotPredicates(p))
}
