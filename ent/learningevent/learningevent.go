// Code generated by ent, DO NOT EDIT.

package learningevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learningevent type in the database.
	Label = "learning_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldSkillTag holds the string denoting the skill_tag field in the database.
	FieldSkillTag = "skill_tag"
	// FieldQuestionHash holds the string denoting the question_hash field in the database.
	FieldQuestionHash = "question_hash"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// Table holds the table name of the learningevent in the database.
	Table = "learning_events"
)

// Columns holds all SQL columns for learningevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldEventType,
	FieldSource,
	FieldResult,
	FieldSkillTag,
	FieldQuestionHash,
	FieldSessionID,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	EventTypeValidator func(string) error
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// DefaultResult holds the default value on creation for the "result" field.
	DefaultResult string
	// DefaultSkillTag holds the default value on creation for the "skill_tag" field.
	DefaultSkillTag string
	// DefaultQuestionHash holds the default value on creation for the "question_hash" field.
	DefaultQuestionHash string
	// DefaultSessionID holds the default value on creation for the "session_id" field.
	DefaultSessionID string
)

// OrderOption defines the ordering options for the LearningEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByResult orders the results by the result field.
func ByResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResult, opts...).ToFunc()
}

// BySkillTag orders the results by the skill_tag field.
func BySkillTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillTag, opts...).ToFunc()
}

// ByQuestionHash orders the results by the question_hash field.
func ByQuestionHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionHash, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}
