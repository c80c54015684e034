// Code generated by ent, DO NOT EDIT.

package mistake

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tmaru/lexiquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldID, id))
}

// MistakeID applies equality check predicate on the "mistake_id" field. It's identical to MistakeIDEQ.
func MistakeID(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldMistakeID, v))
}

// QuestionHash applies equality check predicate on the "question_hash" field. It's identical to QuestionHashEQ.
func QuestionHash(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldQuestionHash, v))
}

// SkillTag applies equality check predicate on the "skill_tag" field. It's identical to SkillTagEQ.
func SkillTag(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldSkillTag, v))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldQuestionText, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldCorrectAnswer, v))
}

// LearnerAnswer applies equality check predicate on the "learner_answer" field. It's identical to LearnerAnswerEQ.
func LearnerAnswer(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldLearnerAnswer, v))
}

// CauseTag applies equality check predicate on the "cause_tag" field. It's identical to CauseTagEQ.
func CauseTag(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldCauseTag, v))
}

// MentorAnalysis applies equality check predicate on the "mentor_analysis" field. It's identical to MentorAnalysisEQ.
func MentorAnalysis(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldMentorAnalysis, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldCreatedAt, v))
}

// MistakeIDEQ applies the EQ predicate on the "mistake_id" field.
func MistakeIDEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldMistakeID, v))
}

// MistakeIDNEQ applies the NEQ predicate on the "mistake_id" field.
func MistakeIDNEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldMistakeID, v))
}

// MistakeIDIn applies the In predicate on the "mistake_id" field.
func MistakeIDIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldMistakeID, vs...))
}

// MistakeIDNotIn applies the NotIn predicate on the "mistake_id" field.
func MistakeIDNotIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldMistakeID, vs...))
}

// MistakeIDGT applies the GT predicate on the "mistake_id" field.
func MistakeIDGT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldMistakeID, v))
}

// MistakeIDGTE applies the GTE predicate on the "mistake_id" field.
func MistakeIDGTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldMistakeID, v))
}

// MistakeIDLT applies the LT predicate on the "mistake_id" field.
func MistakeIDLT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldMistakeID, v))
}

// MistakeIDLTE applies the LTE predicate on the "mistake_id" field.
func MistakeIDLTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldMistakeID, v))
}

// MistakeIDContains applies the Contains predicate on the "mistake_id" field.
func MistakeIDContains(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContains(FieldMistakeID, v))
}

// MistakeIDHasPrefix applies the HasPrefix predicate on the "mistake_id" field.
func MistakeIDHasPrefix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasPrefix(FieldMistakeID, v))
}

// MistakeIDHasSuffix applies the HasSuffix predicate on the "mistake_id" field.
func MistakeIDHasSuffix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasSuffix(FieldMistakeID, v))
}

// MistakeIDEqualFold applies the EqualFold predicate on the "mistake_id" field.
func MistakeIDEqualFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEqualFold(FieldMistakeID, v))
}

// MistakeIDContainsFold applies the ContainsFold predicate on the "mistake_id" field.
func MistakeIDContainsFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContainsFold(FieldMistakeID, v))
}

// QuestionHashEQ applies the EQ predicate on the "question_hash" field.
func QuestionHashEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldQuestionHash, v))
}

// QuestionHashNEQ applies the NEQ predicate on the "question_hash" field.
func QuestionHashNEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldQuestionHash, v))
}

// QuestionHashIn applies the In predicate on the "question_hash" field.
func QuestionHashIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldQuestionHash, vs...))
}

// QuestionHashNotIn applies the NotIn predicate on the "question_hash" field.
func QuestionHashNotIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldQuestionHash, vs...))
}

// QuestionHashGT applies the GT predicate on the "question_hash" field.
func QuestionHashGT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldQuestionHash, v))
}

// QuestionHashGTE applies the GTE predicate on the "question_hash" field.
func QuestionHashGTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldQuestionHash, v))
}

// QuestionHashLT applies the LT predicate on the "question_hash" field.
func QuestionHashLT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldQuestionHash, v))
}

// QuestionHashLTE applies the LTE predicate on the "question_hash" field.
func QuestionHashLTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldQuestionHash, v))
}

// QuestionHashContains applies the Contains predicate on the "question_hash" field.
func QuestionHashContains(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContains(FieldQuestionHash, v))
}

// QuestionHashHasPrefix applies the HasPrefix predicate on the "question_hash" field.
func QuestionHashHasPrefix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasPrefix(FieldQuestionHash, v))
}

// QuestionHashHasSuffix applies the HasSuffix predicate on the "question_hash" field.
func QuestionHashHasSuffix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasSuffix(FieldQuestionHash, v))
}

// QuestionHashEqualFold applies the EqualFold predicate on the "question_hash" field.
func QuestionHashEqualFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEqualFold(FieldQuestionHash, v))
}

// QuestionHashContainsFold applies the ContainsFold predicate on the "question_hash" field.
func QuestionHashContainsFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContainsFold(FieldQuestionHash, v))
}

// SkillTagEQ applies the EQ predicate on the "skill_tag" field.
func SkillTagEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldSkillTag, v))
}

// SkillTagNEQ applies the NEQ predicate on the "skill_tag" field.
func SkillTagNEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldSkillTag, v))
}

// SkillTagIn applies the In predicate on the "skill_tag" field.
func SkillTagIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldSkillTag, vs...))
}

// SkillTagNotIn applies the NotIn predicate on the "skill_tag" field.
func SkillTagNotIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldSkillTag, vs...))
}

// SkillTagGT applies the GT predicate on the "skill_tag" field.
func SkillTagGT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldSkillTag, v))
}

// SkillTagGTE applies the GTE predicate on the "skill_tag" field.
func SkillTagGTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldSkillTag, v))
}

// SkillTagLT applies the LT predicate on the "skill_tag" field.
func SkillTagLT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldSkillTag, v))
}

// SkillTagLTE applies the LTE predicate on the "skill_tag" field.
func SkillTagLTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldSkillTag, v))
}

// SkillTagContains applies the Contains predicate on the "skill_tag" field.
func SkillTagContains(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContains(FieldSkillTag, v))
}

// SkillTagHasPrefix applies the HasPrefix predicate on the "skill_tag" field.
func SkillTagHasPrefix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasPrefix(FieldSkillTag, v))
}

// SkillTagHasSuffix applies the HasSuffix predicate on the "skill_tag" field.
func SkillTagHasSuffix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasSuffix(FieldSkillTag, v))
}

// SkillTagEqualFold applies the EqualFold predicate on the "skill_tag" field.
func SkillTagEqualFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEqualFold(FieldSkillTag, v))
}

// SkillTagContainsFold applies the ContainsFold predicate on the "skill_tag" field.
func SkillTagContainsFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContainsFold(FieldSkillTag, v))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContainsFold(FieldQuestionText, v))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldCorrectAnswer, v))
}

// CorrectAnswerContains applies the Contains predicate on the "correct_answer" field.
func CorrectAnswerContains(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContains(FieldCorrectAnswer, v))
}

// CorrectAnswerHasPrefix applies the HasPrefix predicate on the "correct_answer" field.
func CorrectAnswerHasPrefix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasPrefix(FieldCorrectAnswer, v))
}

// CorrectAnswerHasSuffix applies the HasSuffix predicate on the "correct_answer" field.
func CorrectAnswerHasSuffix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasSuffix(FieldCorrectAnswer, v))
}

// CorrectAnswerEqualFold applies the EqualFold predicate on the "correct_answer" field.
func CorrectAnswerEqualFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEqualFold(FieldCorrectAnswer, v))
}

// CorrectAnswerContainsFold applies the ContainsFold predicate on the "correct_answer" field.
func CorrectAnswerContainsFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContainsFold(FieldCorrectAnswer, v))
}

// LearnerAnswerEQ applies the EQ predicate on the "learner_answer" field.
func LearnerAnswerEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldLearnerAnswer, v))
}

// LearnerAnswerNEQ applies the NEQ predicate on the "learner_answer" field.
func LearnerAnswerNEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldLearnerAnswer, v))
}

// LearnerAnswerIn applies the In predicate on the "learner_answer" field.
func LearnerAnswerIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldLearnerAnswer, vs...))
}

// LearnerAnswerNotIn applies the NotIn predicate on the "learner_answer" field.
func LearnerAnswerNotIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldLearnerAnswer, vs...))
}

// LearnerAnswerGT applies the GT predicate on the "learner_answer" field.
func LearnerAnswerGT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldLearnerAnswer, v))
}

// LearnerAnswerGTE applies the GTE predicate on the "learner_answer" field.
func LearnerAnswerGTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldLearnerAnswer, v))
}

// LearnerAnswerLT applies the LT predicate on the "learner_answer" field.
func LearnerAnswerLT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldLearnerAnswer, v))
}

// LearnerAnswerLTE applies the LTE predicate on the "learner_answer" field.
func LearnerAnswerLTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldLearnerAnswer, v))
}

// LearnerAnswerContains applies the Contains predicate on the "learner_answer" field.
func LearnerAnswerContains(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContains(FieldLearnerAnswer, v))
}

// LearnerAnswerHasPrefix applies the HasPrefix predicate on the "learner_answer" field.
func LearnerAnswerHasPrefix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasPrefix(FieldLearnerAnswer, v))
}

// LearnerAnswerHasSuffix applies the HasSuffix predicate on the "learner_answer" field.
func LearnerAnswerHasSuffix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasSuffix(FieldLearnerAnswer, v))
}

// LearnerAnswerEqualFold applies the EqualFold predicate on the "learner_answer" field.
func LearnerAnswerEqualFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEqualFold(FieldLearnerAnswer, v))
}

// LearnerAnswerContainsFold applies the ContainsFold predicate on the "learner_answer" field.
func LearnerAnswerContainsFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContainsFold(FieldLearnerAnswer, v))
}

// CauseTagEQ applies the EQ predicate on the "cause_tag" field.
func CauseTagEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldCauseTag, v))
}

// CauseTagNEQ applies the NEQ predicate on the "cause_tag" field.
func CauseTagNEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldCauseTag, v))
}

// CauseTagIn applies the In predicate on the "cause_tag" field.
func CauseTagIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldCauseTag, vs...))
}

// CauseTagNotIn applies the NotIn predicate on the "cause_tag" field.
func CauseTagNotIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldCauseTag, vs...))
}

// CauseTagGT applies the GT predicate on the "cause_tag" field.
func CauseTagGT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldCauseTag, v))
}

// CauseTagGTE applies the GTE predicate on the "cause_tag" field.
func CauseTagGTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldCauseTag, v))
}

// CauseTagLT applies the LT predicate on the "cause_tag" field.
func CauseTagLT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldCauseTag, v))
}

// CauseTagLTE applies the LTE predicate on the "cause_tag" field.
func CauseTagLTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldCauseTag, v))
}

// CauseTagContains applies the Contains predicate on the "cause_tag" field.
func CauseTagContains(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContains(FieldCauseTag, v))
}

// CauseTagHasPrefix applies the HasPrefix predicate on the "cause_tag" field.
func CauseTagHasPrefix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasPrefix(FieldCauseTag, v))
}

// CauseTagHasSuffix applies the HasSuffix predicate on the "cause_tag" field.
func CauseTagHasSuffix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasSuffix(FieldCauseTag, v))
}

// CauseTagEqualFold applies the EqualFold predicate on the "cause_tag" field.
func CauseTagEqualFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEqualFold(FieldCauseTag, v))
}

// CauseTagContainsFold applies the ContainsFold predicate on the "cause_tag" field.
func CauseTagContainsFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContainsFold(FieldCauseTag, v))
}

// MentorAnalysisEQ applies the EQ predicate on the "mentor_analysis" field.
func MentorAnalysisEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldMentorAnalysis, v))
}

// MentorAnalysisNEQ applies the NEQ predicate on the "mentor_analysis" field.
func MentorAnalysisNEQ(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldMentorAnalysis, v))
}

// MentorAnalysisIn applies the In predicate on the "mentor_analysis" field.
func MentorAnalysisIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldMentorAnalysis, vs...))
}

// MentorAnalysisNotIn applies the NotIn predicate on the "mentor_analysis" field.
func MentorAnalysisNotIn(vs ...string) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldMentorAnalysis, vs...))
}

// MentorAnalysisGT applies the GT predicate on the "mentor_analysis" field.
func MentorAnalysisGT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldMentorAnalysis, v))
}

// MentorAnalysisGTE applies the GTE predicate on the "mentor_analysis" field.
func MentorAnalysisGTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldMentorAnalysis, v))
}

// MentorAnalysisLT applies the LT predicate on the "mentor_analysis" field.
func MentorAnalysisLT(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldMentorAnalysis, v))
}

// MentorAnalysisLTE applies the LTE predicate on the "mentor_analysis" field.
func MentorAnalysisLTE(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldMentorAnalysis, v))
}

// MentorAnalysisContains applies the Contains predicate on the "mentor_analysis" field.
func MentorAnalysisContains(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContains(FieldMentorAnalysis, v))
}

// MentorAnalysisHasPrefix applies the HasPrefix predicate on the "mentor_analysis" field.
func MentorAnalysisHasPrefix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasPrefix(FieldMentorAnalysis, v))
}

// MentorAnalysisHasSuffix applies the HasSuffix predicate on the "mentor_analysis" field.
func MentorAnalysisHasSuffix(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldHasSuffix(FieldMentorAnalysis, v))
}

// MentorAnalysisEqualFold applies the EqualFold predicate on the "mentor_analysis" field.
func MentorAnalysisEqualFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldEqualFold(FieldMentorAnalysis, v))
}

// MentorAnalysisContainsFold applies the ContainsFold predicate on the "mentor_analysis" field.
func MentorAnalysisContainsFold(v string) predicate.Mistake {
	return predicate.Mistake(sql.FieldContainsFold(FieldMentorAnalysis, v))
}

// RevengeQuestionIsNil applies the IsNil predicate on the "revenge_question" field.
func RevengeQuestionIsNil() predicate.Mistake {
	return predicate.Mistake(sql.FieldIsNull(FieldRevengeQuestion))
}

// RevengeQuestionNotNil applies the NotNil predicate on the "revenge_question" field.
func RevengeQuestionNotNil() predicate.Mistake {
	return predicate.Mistake(sql.FieldNotNull(FieldRevengeQuestion))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Mistake {
	return predicate.Mistake(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Mistake) predicate.Mistake {
	return predicate.Mistake(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Mistake) predicate.Mistake {
	return predicate.Mistake(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Mistake) predicate.Mistake {
	return predicate.Mistake(sql.NotPredicates(p))
}
