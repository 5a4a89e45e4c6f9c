// Code generated by ent, DO NOT EDIT.

package schedule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lexora/srs/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldLearnerID, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldItemID, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldEaseFactor, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldIntervalDays, v))
}

// Repetitions applies equality check predicate on the "repetitions" field. It's identical to RepetitionsEQ.
func Repetitions(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldRepetitions, v))
}

// NextReviewDate applies equality check predicate on the "next_review_date" field. It's identical to NextReviewDateEQ.
func NextReviewDate(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldNextReviewDate, v))
}

// LastReviewedAt applies equality check predicate on the "last_reviewed_at" field. It's identical to LastReviewedAtEQ.
func LastReviewedAt(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldLastReviewedAt, v))
}

// LastQuality applies equality check predicate on the "last_quality" field. It's identical to LastQualityEQ.
func LastQuality(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldLastQuality, v))
}

// LastAttemptID applies equality check predicate on the "last_attempt_id" field. It's identical to LastAttemptIDEQ.
func LastAttemptID(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldLastAttemptID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldLearnerID, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldItemID, v))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldEaseFactor, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldIntervalDays, v))
}

// RepetitionsEQ applies the EQ predicate on the "repetitions" field.
func RepetitionsEQ(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldRepetitions, v))
}

// RepetitionsNEQ applies the NEQ predicate on the "repetitions" field.
func RepetitionsNEQ(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldRepetitions, v))
}

// RepetitionsIn applies the In predicate on the "repetitions" field.
func RepetitionsIn(vs ...int) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldRepetitions, vs...))
}

// RepetitionsNotIn applies the NotIn predicate on the "repetitions" field.
func RepetitionsNotIn(vs ...int) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldRepetitions, vs...))
}

// RepetitionsGT applies the GT predicate on the "repetitions" field.
func RepetitionsGT(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldRepetitions, v))
}

// RepetitionsGTE applies the GTE predicate on the "repetitions" field.
func RepetitionsGTE(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldRepetitions, v))
}

// RepetitionsLT applies the LT predicate on the "repetitions" field.
func RepetitionsLT(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldRepetitions, v))
}

// RepetitionsLTE applies the LTE predicate on the "repetitions" field.
func RepetitionsLTE(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldRepetitions, v))
}

// NextReviewDateEQ applies the EQ predicate on the "next_review_date" field.
func NextReviewDateEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldNextReviewDate, v))
}

// NextReviewDateNEQ applies the NEQ predicate on the "next_review_date" field.
func NextReviewDateNEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldNextReviewDate, v))
}

// NextReviewDateIn applies the In predicate on the "next_review_date" field.
func NextReviewDateIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldNextReviewDate, vs...))
}

// NextReviewDateNotIn applies the NotIn predicate on the "next_review_date" field.
func NextReviewDateNotIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldNextReviewDate, vs...))
}

// NextReviewDateGT applies the GT predicate on the "next_review_date" field.
func NextReviewDateGT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldNextReviewDate, v))
}

// NextReviewDateGTE applies the GTE predicate on the "next_review_date" field.
func NextReviewDateGTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldNextReviewDate, v))
}

// NextReviewDateLT applies the LT predicate on the "next_review_date" field.
func NextReviewDateLT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldNextReviewDate, v))
}

// NextReviewDateLTE applies the LTE predicate on the "next_review_date" field.
func NextReviewDateLTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldNextReviewDate, v))
}

// LastReviewedAtEQ applies the EQ predicate on the "last_reviewed_at" field.
func LastReviewedAtEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtNEQ applies the NEQ predicate on the "last_reviewed_at" field.
func LastReviewedAtNEQ(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtIn applies the In predicate on the "last_reviewed_at" field.
func LastReviewedAtIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtNotIn applies the NotIn predicate on the "last_reviewed_at" field.
func LastReviewedAtNotIn(vs ...time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtGT applies the GT predicate on the "last_reviewed_at" field.
func LastReviewedAtGT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldLastReviewedAt, v))
}

// LastReviewedAtGTE applies the GTE predicate on the "last_reviewed_at" field.
func LastReviewedAtGTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldLastReviewedAt, v))
}

// LastReviewedAtLT applies the LT predicate on the "last_reviewed_at" field.
func LastReviewedAtLT(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldLastReviewedAt, v))
}

// LastReviewedAtLTE applies the LTE predicate on the "last_reviewed_at" field.
func LastReviewedAtLTE(v time.Time) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldLastReviewedAt, v))
}

// LastReviewedAtIsNil applies the IsNil predicate on the "last_reviewed_at" field.
func LastReviewedAtIsNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldIsNull(FieldLastReviewedAt))
}

// LastReviewedAtNotNil applies the NotNil predicate on the "last_reviewed_at" field.
func LastReviewedAtNotNil() predicate.Schedule {
	return predicate.Schedule(sql.FieldNotNull(FieldLastReviewedAt))
}

// LastQualityEQ applies the EQ predicate on the "last_quality" field.
func LastQualityEQ(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldLastQuality, v))
}

// LastQualityNEQ applies the NEQ predicate on the "last_quality" field.
func LastQualityNEQ(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldLastQuality, v))
}

// LastQualityIn applies the In predicate on the "last_quality" field.
func LastQualityIn(vs ...int) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldLastQuality, vs...))
}

// LastQualityNotIn applies the NotIn predicate on the "last_quality" field.
func LastQualityNotIn(vs ...int) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldLastQuality, vs...))
}

// LastQualityGT applies the GT predicate on the "last_quality" field.
func LastQualityGT(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldLastQuality, v))
}

// LastQualityGTE applies the GTE predicate on the "last_quality" field.
func LastQualityGTE(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldLastQuality, v))
}

// LastQualityLT applies the LT predicate on the "last_quality" field.
func LastQualityLT(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldLastQuality, v))
}

// LastQualityLTE applies the LTE predicate on the "last_quality" field.
func LastQualityLTE(v int) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldLastQuality, v))
}

// LastAttemptIDEQ applies the EQ predicate on the "last_attempt_id" field.
func LastAttemptIDEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEQ(FieldLastAttemptID, v))
}

// LastAttemptIDNEQ applies the NEQ predicate on the "last_attempt_id" field.
func LastAttemptIDNEQ(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNEQ(FieldLastAttemptID, v))
}

// LastAttemptIDIn applies the In predicate on the "last_attempt_id" field.
func LastAttemptIDIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldIn(FieldLastAttemptID, vs...))
}

// LastAttemptIDNotIn applies the NotIn predicate on the "last_attempt_id" field.
func LastAttemptIDNotIn(vs ...string) predicate.Schedule {
	return predicate.Schedule(sql.FieldNotIn(FieldLastAttemptID, vs...))
}

// LastAttemptIDGT applies the GT predicate on the "last_attempt_id" field.
func LastAttemptIDGT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGT(FieldLastAttemptID, v))
}

// LastAttemptIDGTE applies the GTE predicate on the "last_attempt_id" field.
func LastAttemptIDGTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldGTE(FieldLastAttemptID, v))
}

// LastAttemptIDLT applies the LT predicate on the "last_attempt_id" field.
func LastAttemptIDLT(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLT(FieldLastAttemptID, v))
}

// LastAttemptIDLTE applies the LTE predicate on the "last_attempt_id" field.
func LastAttemptIDLTE(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldLTE(FieldLastAttemptID, v))
}

// LastAttemptIDContains applies the Contains predicate on the "last_attempt_id" field.
func LastAttemptIDContains(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContains(FieldLastAttemptID, v))
}

// LastAttemptIDHasPrefix applies the HasPrefix predicate on the "last_attempt_id" field.
func LastAttemptIDHasPrefix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasPrefix(FieldLastAttemptID, v))
}

// LastAttemptIDHasSuffix applies the HasSuffix predicate on the "last_attempt_id" field.
func LastAttemptIDHasSuffix(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldHasSuffix(FieldLastAttemptID, v))
}

// LastAttemptIDEqualFold applies the EqualFold predicate on the "last_attempt_id" field.
func LastAttemptIDEqualFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldEqualFold(FieldLastAttemptID, v))
}

// LastAttemptIDContainsFold applies the ContainsFold predicate on the "last_attempt_id" field.
func LastAttemptIDContainsFold(v string) predicate.Schedule {
	return predicate.Schedule(sql.FieldContainsFold(FieldLastAttemptID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Schedule) predicate.Schedule {
	return predicate.Schedule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Schedule) predicate.Schedule {
	return predicate.Schedule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Schedule) predicate.Schedule {
	return predicate.Schedule(sql.NotPredicates(p))
}
