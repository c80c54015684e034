// Code generated by ent, DO NOT EDIT.

package reviewcard

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tmaru/lexiquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldID, id))
}

// QuestionHash applies equality check predicate on the "question_hash" field. It's identical to QuestionHashEQ.
func QuestionHash(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldQuestionHash, v))
}

// Due applies equality check predicate on the "due" field. It's identical to DueEQ.
func Due(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldDue, v))
}

// Stability applies equality check predicate on the "stability" field. It's identical to StabilityEQ.
func Stability(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldStability, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldDifficulty, v))
}

// ElapsedDays applies equality check predicate on the "elapsed_days" field. It's identical to ElapsedDaysEQ.
func ElapsedDays(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldElapsedDays, v))
}

// ScheduledDays applies equality check predicate on the "scheduled_days" field. It's identical to ScheduledDaysEQ.
func ScheduledDays(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldScheduledDays, v))
}

// Reps applies equality check predicate on the "reps" field. It's identical to RepsEQ.
func Reps(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldReps, v))
}

// Lapses applies equality check predicate on the "lapses" field. It's identical to LapsesEQ.
func Lapses(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldLapses, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldState, v))
}

// LastReview applies equality check predicate on the "last_review" field. It's identical to LastReviewEQ.
func LastReview(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldLastReview, v))
}

// QuestionHashEQ applies the EQ predicate on the "question_hash" field.
func QuestionHashEQ(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldQuestionHash, v))
}

// QuestionHashNEQ applies the NEQ predicate on the "question_hash" field.
func QuestionHashNEQ(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldQuestionHash, v))
}

// QuestionHashIn applies the In predicate on the "question_hash" field.
func QuestionHashIn(vs ...string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldQuestionHash, vs...))
}

// QuestionHashNotIn applies the NotIn predicate on the "question_hash" field.
func QuestionHashNotIn(vs ...string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldQuestionHash, vs...))
}

// QuestionHashGT applies the GT predicate on the "question_hash" field.
func QuestionHashGT(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldQuestionHash, v))
}

// QuestionHashGTE applies the GTE predicate on the "question_hash" field.
func QuestionHashGTE(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldQuestionHash, v))
}

// QuestionHashLT applies the LT predicate on the "question_hash" field.
func QuestionHashLT(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldQuestionHash, v))
}

// QuestionHashLTE applies the LTE predicate on the "question_hash" field.
func QuestionHashLTE(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldQuestionHash, v))
}

// QuestionHashContains applies the Contains predicate on the "question_hash" field.
func QuestionHashContains(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldContains(FieldQuestionHash, v))
}

// QuestionHashHasPrefix applies the HasPrefix predicate on the "question_hash" field.
func QuestionHashHasPrefix(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldHasPrefix(FieldQuestionHash, v))
}

// QuestionHashHasSuffix applies the HasSuffix predicate on the "question_hash" field.
func QuestionHashHasSuffix(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldHasSuffix(FieldQuestionHash, v))
}

// QuestionHashEqualFold applies the EqualFold predicate on the "question_hash" field.
func QuestionHashEqualFold(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEqualFold(FieldQuestionHash, v))
}

// QuestionHashContainsFold applies the ContainsFold predicate on the "question_hash" field.
func QuestionHashContainsFold(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldContainsFold(FieldQuestionHash, v))
}

// DueEQ applies the EQ predicate on the "due" field.
func DueEQ(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldDue, v))
}

// DueNEQ applies the NEQ predicate on the "due" field.
func DueNEQ(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldDue, v))
}

// DueIn applies the In predicate on the "due" field.
func DueIn(vs ...time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldDue, vs...))
}

// DueNotIn applies the NotIn predicate on the "due" field.
func DueNotIn(vs ...time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldDue, vs...))
}

// DueGT applies the GT predicate on the "due" field.
func DueGT(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldDue, v))
}

// DueGTE applies the GTE predicate on the "due" field.
func DueGTE(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldDue, v))
}

// DueLT applies the LT predicate on the "due" field.
func DueLT(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldDue, v))
}

// DueLTE applies the LTE predicate on the "due" field.
func DueLTE(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldDue, v))
}

// StabilityEQ applies the EQ predicate on the "stability" field.
func StabilityEQ(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldStability, v))
}

// StabilityNEQ applies the NEQ predicate on the "stability" field.
func StabilityNEQ(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldStability, v))
}

// StabilityIn applies the In predicate on the "stability" field.
func StabilityIn(vs ...float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldStability, vs...))
}

// StabilityNotIn applies the NotIn predicate on the "stability" field.
func StabilityNotIn(vs ...float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldStability, vs...))
}

// StabilityGT applies the GT predicate on the "stability" field.
func StabilityGT(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldStability, v))
}

// StabilityGTE applies the GTE predicate on the "stability" field.
func StabilityGTE(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldStability, v))
}

// StabilityLT applies the LT predicate on the "stability" field.
func StabilityLT(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldStability, v))
}

// StabilityLTE applies the LTE predicate on the "stability" field.
func StabilityLTE(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldStability, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldDifficulty, v))
}

// ElapsedDaysEQ applies the EQ predicate on the "elapsed_days" field.
func ElapsedDaysEQ(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldElapsedDays, v))
}

// ElapsedDaysNEQ applies the NEQ predicate on the "elapsed_days" field.
func ElapsedDaysNEQ(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldElapsedDays, v))
}

// ElapsedDaysIn applies the In predicate on the "elapsed_days" field.
func ElapsedDaysIn(vs ...float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldElapsedDays, vs...))
}

// ElapsedDaysNotIn applies the NotIn predicate on the "elapsed_days" field.
func ElapsedDaysNotIn(vs ...float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldElapsedDays, vs...))
}

// ElapsedDaysGT applies the GT predicate on the "elapsed_days" field.
func ElapsedDaysGT(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldElapsedDays, v))
}

// ElapsedDaysGTE applies the GTE predicate on the "elapsed_days" field.
func ElapsedDaysGTE(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldElapsedDays, v))
}

// ElapsedDaysLT applies the LT predicate on the "elapsed_days" field.
func ElapsedDaysLT(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldElapsedDays, v))
}

// ElapsedDaysLTE applies the LTE predicate on the "elapsed_days" field.
func ElapsedDaysLTE(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldElapsedDays, v))
}

// ScheduledDaysEQ applies the EQ predicate on the "scheduled_days" field.
func ScheduledDaysEQ(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldScheduledDays, v))
}

// ScheduledDaysNEQ applies the NEQ predicate on the "scheduled_days" field.
func ScheduledDaysNEQ(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldScheduledDays, v))
}

// ScheduledDaysIn applies the In predicate on the "scheduled_days" field.
func ScheduledDaysIn(vs ...float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldScheduledDays, vs...))
}

// ScheduledDaysNotIn applies the NotIn predicate on the "scheduled_days" field.
func ScheduledDaysNotIn(vs ...float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldScheduledDays, vs...))
}

// ScheduledDaysGT applies the GT predicate on the "scheduled_days" field.
func ScheduledDaysGT(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldScheduledDays, v))
}

// ScheduledDaysGTE applies the GTE predicate on the "scheduled_days" field.
func ScheduledDaysGTE(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldScheduledDays, v))
}

// ScheduledDaysLT applies the LT predicate on the "scheduled_days" field.
func ScheduledDaysLT(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldScheduledDays, v))
}

// ScheduledDaysLTE applies the LTE predicate on the "scheduled_days" field.
func ScheduledDaysLTE(v float64) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldScheduledDays, v))
}

// RepsEQ applies the EQ predicate on the "reps" field.
func RepsEQ(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldReps, v))
}

// RepsNEQ applies the NEQ predicate on the "reps" field.
func RepsNEQ(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldReps, v))
}

// RepsIn applies the In predicate on the "reps" field.
func RepsIn(vs ...int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldReps, vs...))
}

// RepsNotIn applies the NotIn predicate on the "reps" field.
func RepsNotIn(vs ...int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldReps, vs...))
}

// RepsGT applies the GT predicate on the "reps" field.
func RepsGT(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldReps, v))
}

// RepsGTE applies the GTE predicate on the "reps" field.
func RepsGTE(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldReps, v))
}

// RepsLT applies the LT predicate on the "reps" field.
func RepsLT(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldReps, v))
}

// RepsLTE applies the LTE predicate on the "reps" field.
func RepsLTE(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldReps, v))
}

// LapsesEQ applies the EQ predicate on the "lapses" field.
func LapsesEQ(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldLapses, v))
}

// LapsesNEQ applies the NEQ predicate on the "lapses" field.
func LapsesNEQ(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldLapses, v))
}

// LapsesIn applies the In predicate on the "lapses" field.
func LapsesIn(vs ...int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldLapses, vs...))
}

// LapsesNotIn applies the NotIn predicate on the "lapses" field.
func LapsesNotIn(vs ...int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldLapses, vs...))
}

// LapsesGT applies the GT predicate on the "lapses" field.
func LapsesGT(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldLapses, v))
}

// LapsesGTE applies the GTE predicate on the "lapses" field.
func LapsesGTE(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldLapses, v))
}

// LapsesLT applies the LT predicate on the "lapses" field.
func LapsesLT(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldLapses, v))
}

// LapsesLTE applies the LTE predicate on the "lapses" field.
func LapsesLTE(v int) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldLapses, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldContainsFold(FieldState, v))
}

// LastReviewEQ applies the EQ predicate on the "last_review" field.
func LastReviewEQ(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldEQ(FieldLastReview, v))
}

// LastReviewNEQ applies the NEQ predicate on the "last_review" field.
func LastReviewNEQ(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNEQ(FieldLastReview, v))
}

// LastReviewIn applies the In predicate on the "last_review" field.
func LastReviewIn(vs ...time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIn(FieldLastReview, vs...))
}

// LastReviewNotIn applies the NotIn predicate on the "last_review" field.
func LastReviewNotIn(vs ...time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotIn(FieldLastReview, vs...))
}

// LastReviewGT applies the GT predicate on the "last_review" field.
func LastReviewGT(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGT(FieldLastReview, v))
}

// LastReviewGTE applies the GTE predicate on the "last_review" field.
func LastReviewGTE(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldGTE(FieldLastReview, v))
}

// LastReviewLT applies the LT predicate on the "last_review" field.
func LastReviewLT(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLT(FieldLastReview, v))
}

// LastReviewLTE applies the LTE predicate on the "last_review" field.
func LastReviewLTE(v time.Time) predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldLTE(FieldLastReview, v))
}

// LastReviewIsNil applies the IsNil predicate on the "last_review" field.
func LastReviewIsNil() predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIsNull(FieldLastReview))
}

// LastReviewNotNil applies the NotNil predicate on the "last_review" field.
func LastReviewNotNil() predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotNull(FieldLastReview))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.ReviewCard {
	return predicate.ReviewCard(sql.FieldNotNull(FieldPayload))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewCard) predicate.ReviewCard {
	return predicate.ReviewCard(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewCard) predicate.ReviewCard {
	return predicate.ReviewCard(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewCard) predicate.ReviewCard {
	return predicate.ReviewCard(sql.NotPredicates(p))
}
