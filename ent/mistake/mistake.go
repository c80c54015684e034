// Code generated by ent, DO NOT EDIT.

package mistake

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the mistake type in the database.
	Label = "mistake"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMistakeID holds the string denoting the mistake_id field in the database.
	FieldMistakeID = "mistake_id"
	// FieldQuestionHash holds the string denoting the question_hash field in the database.
	FieldQuestionHash = "question_hash"
	// FieldSkillTag holds the string denoting the skill_tag field in the database.
	FieldSkillTag = "skill_tag"
	// FieldQuestionText holds the string denoting the question_text field in the database.
	FieldQuestionText = "question_text"
	// FieldCorrectAnswer holds the string denoting the correct_answer field in the database.
	FieldCorrectAnswer = "correct_answer"
	// FieldLearnerAnswer holds the string denoting the learner_answer field in the database.
	FieldLearnerAnswer = "learner_answer"
	// FieldCauseTag holds the string denoting the cause_tag field in the database.
	FieldCauseTag = "cause_tag"
	// FieldMentorAnalysis holds the string denoting the mentor_analysis field in the database.
	FieldMentorAnalysis = "mentor_analysis"
	// FieldRevengeQuestion holds the string denoting the revenge_question field in the database.
	FieldRevengeQuestion = "revenge_question"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the mistake in the database.
	Table = "mistakes"
)

// Columns holds all SQL columns for mistake fields.
var Columns = []string{
	FieldID,
	FieldMistakeID,
	FieldQuestionHash,
	FieldSkillTag,
	FieldQuestionText,
	FieldCorrectAnswer,
	FieldLearnerAnswer,
	FieldCauseTag,
	FieldMentorAnalysis,
	FieldRevengeQuestion,
	FieldCreatedAt,
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
	// MistakeIDValidator is a validator for the "mistake_id" field. It is called by the builders before save.
	MistakeIDValidator func(string) error
	// DefaultQuestionHash holds the default value on creation for the "question_hash" field.
	DefaultQuestionHash string
	// DefaultSkillTag holds the default value on creation for the "skill_tag" field.
	DefaultSkillTag string
	// QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	QuestionTextValidator func(string) error
	// CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	CorrectAnswerValidator func(string) error
	// LearnerAnswerValidator is a validator for the "learner_answer" field. It is called by the builders before save.
	LearnerAnswerValidator func(string) error
	// DefaultCauseTag holds the default value on creation for the "cause_tag" field.
	DefaultCauseTag string
	// DefaultMentorAnalysis holds the default value on creation for the "mentor_analysis" field.
	DefaultMentorAnalysis string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Mistake queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMistakeID orders the results by the mistake_id field.
func ByMistakeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMistakeID, opts...).ToFunc()
}

// ByQuestionHash orders the results by the question_hash field.
func ByQuestionHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionHash, opts...).ToFunc()
}

// BySkillTag orders the results by the skill_tag field.
func BySkillTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillTag, opts...).ToFunc()
}

// ByQuestionText orders the results by the question_text field.
func ByQuestionText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionText, opts...).ToFunc()
}

// ByCorrectAnswer orders the results by the correct_answer field.
func ByCorrectAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswer, opts...).ToFunc()
}

// ByLearnerAnswer orders the results by the learner_answer field.
func ByLearnerAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerAnswer, opts...).ToFunc()
}

// ByCauseTag orders the results by the cause_tag field.
func ByCauseTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCauseTag, opts...).ToFunc()
}

// ByMentorAnalysis orders the results by the mentor_analysis field.
func ByMentorAnalysis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMentorAnalysis, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
