// Code generated by ent, DO NOT EDIT.

package achievement

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the achievement type in the database.
	Label = "achievement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldAchievementType holds the string denoting the achievement_type field in the database.
	FieldAchievementType = "achievement_type"
	// FieldAwardedAt holds the string denoting the awarded_at field in the database.
	FieldAwardedAt = "awarded_at"
	// Table holds the table name of the achievement in the database.
	Table = "achievements"
)

// Columns holds all SQL columns for achievement fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldAchievementType,
	FieldAwardedAt,
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
	// AchievementTypeValidator is a validator for the "achievement_type" field. It is called by the builders before save.
	AchievementTypeValidator func(string) error
	// DefaultAwardedAt holds the default value on creation for the "awarded_at" field.
	DefaultAwardedAt func() time.Time
)

// OrderOption defines the ordering options for the Achievement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByAchievementType orders the results by the achievement_type field.
func ByAchievementType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAchievementType, opts...).ToFunc()
}

// ByAwardedAt orders the results by the awarded_at field.
func ByAwardedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAwardedAt, opts...).ToFunc()
}
