// Code generated by ent, DO NOT EDIT.

package streak

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the streak type in the database.
	Label = "streak"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldCurrentDays holds the string denoting the current_days field in the database.
	FieldCurrentDays = "current_days"
	// FieldLongestDays holds the string denoting the longest_days field in the database.
	FieldLongestDays = "longest_days"
	// FieldLastPracticeDate holds the string denoting the last_practice_date field in the database.
	FieldLastPracticeDate = "last_practice_date"
	// FieldTotalLearned holds the string denoting the total_learned field in the database.
	FieldTotalLearned = "total_learned"
	// FieldTotalMastered holds the string denoting the total_mastered field in the database.
	FieldTotalMastered = "total_mastered"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the streak in the database.
	Table = "streaks"
)

// Columns holds all SQL columns for streak fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldCurrentDays,
	FieldLongestDays,
	FieldLastPracticeDate,
	FieldTotalLearned,
	FieldTotalMastered,
	FieldUpdatedAt,
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
	// DefaultCurrentDays holds the default value on creation for the "current_days" field.
	DefaultCurrentDays int
	// CurrentDaysValidator is a validator for the "current_days" field. It is called by the builders before save.
	CurrentDaysValidator func(int) error
	// DefaultLongestDays holds the default value on creation for the "longest_days" field.
	DefaultLongestDays int
	// LongestDaysValidator is a validator for the "longest_days" field. It is called by the builders before save.
	LongestDaysValidator func(int) error
	// DefaultTotalLearned holds the default value on creation for the "total_learned" field.
	DefaultTotalLearned int
	// TotalLearnedValidator is a validator for the "total_learned" field. It is called by the builders before save.
	TotalLearnedValidator func(int) error
	// DefaultTotalMastered holds the default value on creation for the "total_mastered" field.
	DefaultTotalMastered int
	// TotalMasteredValidator is a validator for the "total_mastered" field. It is called by the builders before save.
	TotalMasteredValidator func(int) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Streak queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByCurrentDays orders the results by the current_days field.
func ByCurrentDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentDays, opts...).ToFunc()
}

// ByLongestDays orders the results by the longest_days field.
func ByLongestDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongestDays, opts...).ToFunc()
}

// ByLastPracticeDate orders the results by the last_practice_date field.
func ByLastPracticeDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPracticeDate, opts...).ToFunc()
}

// ByTotalLearned orders the results by the total_learned field.
func ByTotalLearned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalLearned, opts...).ToFunc()
}

// ByTotalMastered orders the results by the total_mastered field.
func ByTotalMastered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalMastered, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
