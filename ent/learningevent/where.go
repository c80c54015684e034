// Code generated by ent, DO NOT EDIT.

package learningevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tmaru/lexiquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEQ(FieldTimestamp, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEQ(FieldEventType, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEQ(FieldSource, v))
}

// Result applies equality check predicate on the "result" field. It's identical to ResultEQ.
func Result(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEQ(FieldResult, v))
}

// SkillTag applies equality check predicate on the "skill_tag" field. It's identical to SkillTagEQ.
func SkillTag(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEQ(FieldSkillTag, v))
}

// QuestionHash applies equality check predicate on the "question_hash" field. It's identical to QuestionHashEQ.
func QuestionHash(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEQ(FieldQuestionHash, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEQ(FieldSessionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldLTE(FieldTimestamp, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldContainsFold(FieldEventType, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldContainsFold(FieldSource, v))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldNotIn(FieldResult, vs...))
}

// ResultGT applies the GT predicate on the "result" field.
func ResultGT(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldGT(FieldResult, v))
}

// ResultGTE applies the GTE predicate on the "result" field.
func ResultGTE(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldGTE(FieldResult, v))
}

// ResultLT applies the LT predicate on the "result" field.
func ResultLT(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldLT(FieldResult, v))
}

// ResultLTE applies the LTE predicate on the "result" field.
func ResultLTE(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldLTE(FieldResult, v))
}

// ResultContains applies the Contains predicate on the "result" field.
func ResultContains(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldContains(FieldResult, v))
}

// ResultHasPrefix applies the HasPrefix predicate on the "result" field.
func ResultHasPrefix(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldHasPrefix(FieldResult, v))
}

// ResultHasSuffix applies the HasSuffix predicate on the "result" field.
func ResultHasSuffix(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldHasSuffix(FieldResult, v))
}

// ResultEqualFold applies the EqualFold predicate on the "result" field.
func ResultEqualFold(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEqualFold(FieldResult, v))
}

// ResultContainsFold applies the ContainsFold predicate on the "result" field.
func ResultContainsFold(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldContainsFold(FieldResult, v))
}

// SkillTagEQ applies the EQ predicate on the "skill_tag" field.
func SkillTagEQ(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEQ(FieldSkillTag, v))
}

// SkillTagNEQ applies the NEQ predicate on the "skill_tag" field.
func SkillTagNEQ(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldNEQ(FieldSkillTag, v))
}

// SkillTagIn applies the In predicate on the "skill_tag" field.
func SkillTagIn(vs ...string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldIn(FieldSkillTag, vs...))
}

// SkillTagNotIn applies the NotIn predicate on the "skill_tag" field.
func SkillTagNotIn(vs ...string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldNotIn(FieldSkillTag, vs...))
}

// SkillTagGT applies the GT predicate on the "skill_tag" field.
func SkillTagGT(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldGT(FieldSkillTag, v))
}

// SkillTagGTE applies the GTE predicate on the "skill_tag" field.
func SkillTagGTE(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldGTE(FieldSkillTag, v))
}

// SkillTagLT applies the LT predicate on the "skill_tag" field.
func SkillTagLT(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldLT(FieldSkillTag, v))
}

// SkillTagLTE applies the LTE predicate on the "skill_tag" field.
func SkillTagLTE(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldLTE(FieldSkillTag, v))
}

// SkillTagContains applies the Contains predicate on the "skill_tag" field.
func SkillTagContains(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldContains(FieldSkillTag, v))
}

// SkillTagHasPrefix applies the HasPrefix predicate on the "skill_tag" field.
func SkillTagHasPrefix(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldHasPrefix(FieldSkillTag, v))
}

// SkillTagHasSuffix applies the HasSuffix predicate on the "skill_tag" field.
func SkillTagHasSuffix(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldHasSuffix(FieldSkillTag, v))
}

// SkillTagEqualFold applies the EqualFold predicate on the "skill_tag" field.
func SkillTagEqualFold(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEqualFold(FieldSkillTag, v))
}

// SkillTagContainsFold applies the ContainsFold predicate on the "skill_tag" field.
func SkillTagContainsFold(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldContainsFold(FieldSkillTag, v))
}

// QuestionHashEQ applies the EQ predicate on the "question_hash" field.
func QuestionHashEQ(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEQ(FieldQuestionHash, v))
}

// QuestionHashNEQ applies the NEQ predicate on the "question_hash" field.
func QuestionHashNEQ(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldNEQ(FieldQuestionHash, v))
}

// QuestionHashIn applies the In predicate on the "question_hash" field.
func QuestionHashIn(vs ...string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldIn(FieldQuestionHash, vs...))
}

// QuestionHashNotIn applies the NotIn predicate on the "question_hash" field.
func QuestionHashNotIn(vs ...string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldNotIn(FieldQuestionHash, vs...))
}

// QuestionHashGT applies the GT predicate on the "question_hash" field.
func QuestionHashGT(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldGT(FieldQuestionHash, v))
}

// QuestionHashGTE applies the GTE predicate on the "question_hash" field.
func QuestionHashGTE(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldGTE(FieldQuestionHash, v))
}

// QuestionHashLT applies the LT predicate on the "question_hash" field.
func QuestionHashLT(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldLT(FieldQuestionHash, v))
}

// QuestionHashLTE applies the LTE predicate on the "question_hash" field.
func QuestionHashLTE(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldLTE(FieldQuestionHash, v))
}

// QuestionHashContains applies the Contains predicate on the "question_hash" field.
func QuestionHashContains(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldContains(FieldQuestionHash, v))
}

// QuestionHashHasPrefix applies the HasPrefix predicate on the "question_hash" field.
func QuestionHashHasPrefix(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldHasPrefix(FieldQuestionHash, v))
}

// QuestionHashHasSuffix applies the HasSuffix predicate on the "question_hash" field.
func QuestionHashHasSuffix(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldHasSuffix(FieldQuestionHash, v))
}

// QuestionHashEqualFold applies the EqualFold predicate on the "question_hash" field.
func QuestionHashEqualFold(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEqualFold(FieldQuestionHash, v))
}

// QuestionHashContainsFold applies the ContainsFold predicate on the "question_hash" field.
func QuestionHashContainsFold(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldContainsFold(FieldQuestionHash, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.LearningEvent {
	return predicate.LearningEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningEvent) predicate.LearningEvent {
	return predicate.LearningEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningEvent) predicate.LearningEvent {
	return predicate.LearningEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningEvent) predicate.LearningEvent {
	return predicate.LearningEvent(sql.NotPredicates(p))
}
