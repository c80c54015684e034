// Code generated by ent, DO NOT EDIT.

package reviewcard

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewcard type in the database.
	Label = "review_card"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQuestionHash holds the string denoting the question_hash field in the database.
	FieldQuestionHash = "question_hash"
	// FieldDue holds the string denoting the due field in the database.
	FieldDue = "due"
	// FieldStability holds the string denoting the stability field in the database.
	FieldStability = "stability"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldElapsedDays holds the string denoting the elapsed_days field in the database.
	FieldElapsedDays = "elapsed_days"
	// FieldScheduledDays holds the string denoting the scheduled_days field in the database.
	FieldScheduledDays = "scheduled_days"
	// FieldReps holds the string denoting the reps field in the database.
	FieldReps = "reps"
	// FieldLapses holds the string denoting the lapses field in the database.
	FieldLapses = "lapses"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldLastReview holds the string denoting the last_review field in the database.
	FieldLastReview = "last_review"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// Table holds the table name of the reviewcard in the database.
	Table = "review_cards"
)

// Columns holds all SQL columns for reviewcard fields.
var Columns = []string{
	FieldID,
	FieldQuestionHash,
	FieldDue,
	FieldStability,
	FieldDifficulty,
	FieldElapsedDays,
	FieldScheduledDays,
	FieldReps,
	FieldLapses,
	FieldState,
	FieldLastReview,
	FieldPayload,
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
	// QuestionHashValidator is a validator for the "question_hash" field. It is called by the builders before save.
	QuestionHashValidator func(string) error
	// DefaultElapsedDays holds the default value on creation for the "elapsed_days" field.
	DefaultElapsedDays float64
	// DefaultScheduledDays holds the default value on creation for the "scheduled_days" field.
	DefaultScheduledDays float64
	// DefaultReps holds the default value on creation for the "reps" field.
	DefaultReps int
	// DefaultLapses holds the default value on creation for the "lapses" field.
	DefaultLapses int
	// DefaultState holds the default value on creation for the "state" field.
	DefaultState string
)

// OrderOption defines the ordering options for the ReviewCard queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQuestionHash orders the results by the question_hash field.
func ByQuestionHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionHash, opts...).ToFunc()
}

// ByDue orders the results by the due field.
func ByDue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDue, opts...).ToFunc()
}

// ByStability orders the results by the stability field.
func ByStability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStability, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByElapsedDays orders the results by the elapsed_days field.
func ByElapsedDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElapsedDays, opts...).ToFunc()
}

// ByScheduledDays orders the results by the scheduled_days field.
func ByScheduledDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledDays, opts...).ToFunc()
}

// ByReps orders the results by the reps field.
func ByReps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReps, opts...).ToFunc()
}

// ByLapses orders the results by the lapses field.
func ByLapses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLapses, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByLastReview orders the results by the last_review field.
func ByLastReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReview, opts...).ToFunc()
}
