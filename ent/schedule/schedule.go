// Code generated by ent, DO NOT EDIT.

package schedule

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the schedule type in the database.
	Label = "schedule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldEaseFactor holds the string denoting the ease_factor field in the database.
	FieldEaseFactor = "ease_factor"
	// FieldIntervalDays holds the string denoting the interval_days field in the database.
	FieldIntervalDays = "interval_days"
	// FieldRepetitions holds the string denoting the repetitions field in the database.
	FieldRepetitions = "repetitions"
	// FieldNextReviewDate holds the string denoting the next_review_date field in the database.
	FieldNextReviewDate = "next_review_date"
	// FieldLastReviewedAt holds the string denoting the last_reviewed_at field in the database.
	FieldLastReviewedAt = "last_reviewed_at"
	// FieldLastQuality holds the string denoting the last_quality field in the database.
	FieldLastQuality = "last_quality"
	// FieldLastAttemptID holds the string denoting the last_attempt_id field in the database.
	FieldLastAttemptID = "last_attempt_id"
	// Table holds the table name of the schedule in the database.
	Table = "schedules"
)

// Columns holds all SQL columns for schedule fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldItemID,
	FieldEaseFactor,
	FieldIntervalDays,
	FieldRepetitions,
	FieldNextReviewDate,
	FieldLastReviewedAt,
	FieldLastQuality,
	FieldLastAttemptID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	ItemIDValidator func(string) error
	// IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	IntervalDaysValidator func(int) error
	// RepetitionsValidator is a validator for the "repetitions" field. It is called by the builders before save.
	RepetitionsValidator func(int) error
	// DefaultLastQuality holds the default value on creation for the "last_quality" field.
	DefaultLastQuality int
	// DefaultLastAttemptID holds the default value on creation for the "last_attempt_id" field.
	DefaultLastAttemptID string
)

// OrderOption defines the ordering options for the Schedule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// ByEaseFactor orders the results by the ease_factor field.
func ByEaseFactor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEaseFactor, opts...).ToFunc()
}

// ByIntervalDays orders the results by the interval_days field.
func ByIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalDays, opts...).ToFunc()
}

// ByRepetitions orders the results by the repetitions field.
func ByRepetitions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepetitions, opts...).ToFunc()
}

// ByNextReviewDate orders the results by the next_review_date field.
func ByNextReviewDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReviewDate, opts...).ToFunc()
}

// ByLastReviewedAt orders the results by the last_reviewed_at field.
func ByLastReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReviewedAt, opts...).ToFunc()
}

// ByLastQuality orders the results by the last_quality field.
func ByLastQuality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastQuality, opts...).ToFunc()
}

// ByLastAttemptID orders the results by the last_attempt_id field.
func ByLastAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAttemptID, opts...).ToFunc()
}
