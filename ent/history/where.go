// Code generated by ent, DO NOT EDIT.

package history

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tmaru/lexiquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.History {
	return predicate.History(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.History {
	return predicate.History(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.History {
	return predicate.History(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.History {
	return predicate.History(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.History {
	return predicate.History(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.History {
	return predicate.History(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.History {
	return predicate.History(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.History {
	return predicate.History(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.History {
	return predicate.History(sql.FieldLTE(FieldID, id))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.History {
	return predicate.History(sql.FieldEQ(FieldScore, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.History {
	return predicate.History(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalCorrect applies equality check predicate on the "total_correct" field. It's identical to TotalCorrectEQ.
func TotalCorrect(v int) predicate.History {
	return predicate.History(sql.FieldEQ(FieldTotalCorrect, v))
}

// LevelTitle applies equality check predicate on the "level_title" field. It's identical to LevelTitleEQ.
func LevelTitle(v string) predicate.History {
	return predicate.History(sql.FieldEQ(FieldLevelTitle, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.History {
	return predicate.History(sql.FieldEQ(FieldTimestamp, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.History {
	return predicate.History(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.History {
	return predicate.History(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.History {
	return predicate.History(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.History {
	return predicate.History(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.History {
	return predicate.History(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.History {
	return predicate.History(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.History {
	return predicate.History(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.History {
	return predicate.History(sql.FieldLTE(FieldScore, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.History {
	return predicate.History(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.History {
	return predicate.History(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.History {
	return predicate.History(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.History {
	return predicate.History(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.History {
	return predicate.History(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.History {
	return predicate.History(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.History {
	return predicate.History(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.History {
	return predicate.History(sql.FieldLTE(FieldTotalQuestions, v))
}

// TotalCorrectEQ applies the EQ predicate on the "total_correct" field.
func TotalCorrectEQ(v int) predicate.History {
	return predicate.History(sql.FieldEQ(FieldTotalCorrect, v))
}

// TotalCorrectNEQ applies the NEQ predicate on the "total_correct" field.
func TotalCorrectNEQ(v int) predicate.History {
	return predicate.History(sql.FieldNEQ(FieldTotalCorrect, v))
}

// TotalCorrectIn applies the In predicate on the "total_correct" field.
func TotalCorrectIn(vs ...int) predicate.History {
	return predicate.History(sql.FieldIn(FieldTotalCorrect, vs...))
}

// TotalCorrectNotIn applies the NotIn predicate on the "total_correct" field.
func TotalCorrectNotIn(vs ...int) predicate.History {
	return predicate.History(sql.FieldNotIn(FieldTotalCorrect, vs...))
}

// TotalCorrectGT applies the GT predicate on the "total_correct" field.
func TotalCorrectGT(v int) predicate.History {
	return predicate.History(sql.FieldGT(FieldTotalCorrect, v))
}

// TotalCorrectGTE applies the GTE predicate on the "total_correct" field.
func TotalCorrectGTE(v int) predicate.History {
	return predicate.History(sql.FieldGTE(FieldTotalCorrect, v))
}

// TotalCorrectLT applies the LT predicate on the "total_correct" field.
func TotalCorrectLT(v int) predicate.History {
	return predicate.History(sql.FieldLT(FieldTotalCorrect, v))
}

// TotalCorrectLTE applies the LTE predicate on the "total_correct" field.
func TotalCorrectLTE(v int) predicate.History {
	return predicate.History(sql.FieldLTE(FieldTotalCorrect, v))
}

// SkillStatsIsNil applies the IsNil predicate on the "skill_stats" field.
func SkillStatsIsNil() predicate.History {
	return predicate.History(sql.FieldIsNull(FieldSkillStats))
}

// SkillStatsNotNil applies the NotNil predicate on the "skill_stats" field.
func SkillStatsNotNil() predicate.History {
	return predicate.History(sql.FieldNotNull(FieldSkillStats))
}

// LevelTitleEQ applies the EQ predicate on the "level_title" field.
func LevelTitleEQ(v string) predicate.History {
	return predicate.History(sql.FieldEQ(FieldLevelTitle, v))
}

// LevelTitleNEQ applies the NEQ predicate on the "level_title" field.
func LevelTitleNEQ(v string) predicate.History {
	return predicate.History(sql.FieldNEQ(FieldLevelTitle, v))
}

// LevelTitleIn applies the In predicate on the "level_title" field.
func LevelTitleIn(vs ...string) predicate.History {
	return predicate.History(sql.FieldIn(FieldLevelTitle, vs...))
}

// LevelTitleNotIn applies the NotIn predicate on the "level_title" field.
func LevelTitleNotIn(vs ...string) predicate.History {
	return predicate.History(sql.FieldNotIn(FieldLevelTitle, vs...))
}

// LevelTitleGT applies the GT predicate on the "level_title" field.
func LevelTitleGT(v string) predicate.History {
	return predicate.History(sql.FieldGT(FieldLevelTitle, v))
}

// LevelTitleGTE applies the GTE predicate on the "level_title" field.
func LevelTitleGTE(v string) predicate.History {
	return predicate.History(sql.FieldGTE(FieldLevelTitle, v))
}

// LevelTitleLT applies the LT predicate on the "level_title" field.
func LevelTitleLT(v string) predicate.History {
	return predicate.History(sql.FieldLT(FieldLevelTitle, v))
}

// LevelTitleLTE applies the LTE predicate on the "level_title" field.
func LevelTitleLTE(v string) predicate.History {
	return predicate.History(sql.FieldLTE(FieldLevelTitle, v))
}

// LevelTitleContains applies the Contains predicate on the "level_title" field.
func LevelTitleContains(v string) predicate.History {
	return predicate.History(sql.FieldContains(FieldLevelTitle, v))
}

// LevelTitleHasPrefix applies the HasPrefix predicate on the "level_title" field.
func LevelTitleHasPrefix(v string) predicate.History {
	return predicate.History(sql.FieldHasPrefix(FieldLevelTitle, v))
}

// LevelTitleHasSuffix applies the HasSuffix predicate on the "level_title" field.
func LevelTitleHasSuffix(v string) predicate.History {
	return predicate.History(sql.FieldHasSuffix(FieldLevelTitle, v))
}

// LevelTitleEqualFold applies the EqualFold predicate on the "level_title" field.
func LevelTitleEqualFold(v string) predicate.History {
	return predicate.History(sql.FieldEqualFold(FieldLevelTitle, v))
}

// LevelTitleContainsFold applies the ContainsFold predicate on the "level_title" field.
func LevelTitleContainsFold(v string) predicate.History {
	return predicate.History(sql.FieldContainsFold(FieldLevelTitle, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.History {
	return predicate.History(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.History {
	return predicate.History(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.History {
	return predicate.History(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.History {
	return predicate.History(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.History {
	return predicate.History(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.History {
	return predicate.History(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.History {
	return predicate.History(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.History {
	return predicate.History(sql.FieldLTE(FieldTimestamp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.History) predicate.History {
	return predicate.History(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.History) predicate.History {
	return predicate.History(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.History) predicate.History {
	return predicate.History(sql.NotPredicates(p))
}
