// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tmaru/lexiquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldID, id))
}

// SingletonID applies equality check predicate on the "singleton_id" field. It's identical to SingletonIDEQ.
func SingletonID(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldSingletonID, v))
}

// WordsLearned applies equality check predicate on the "words_learned" field. It's identical to WordsLearnedEQ.
func WordsLearned(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldWordsLearned, v))
}

// LessonsCompleted applies equality check predicate on the "lessons_completed" field. It's identical to LessonsCompletedEQ.
func LessonsCompleted(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLessonsCompleted, v))
}

// TotalXp applies equality check predicate on the "total_xp" field. It's identical to TotalXpEQ.
func TotalXp(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTotalXp, v))
}

// CurrentStreak applies equality check predicate on the "current_streak" field. It's identical to CurrentStreakEQ.
func CurrentStreak(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCurrentStreak, v))
}

// BestStreak applies equality check predicate on the "best_streak" field. It's identical to BestStreakEQ.
func BestStreak(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldBestStreak, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// SingletonIDEQ applies the EQ predicate on the "singleton_id" field.
func SingletonIDEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldSingletonID, v))
}

// SingletonIDNEQ applies the NEQ predicate on the "singleton_id" field.
func SingletonIDNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldSingletonID, v))
}

// SingletonIDIn applies the In predicate on the "singleton_id" field.
func SingletonIDIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldSingletonID, vs...))
}

// SingletonIDNotIn applies the NotIn predicate on the "singleton_id" field.
func SingletonIDNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldSingletonID, vs...))
}

// SingletonIDGT applies the GT predicate on the "singleton_id" field.
func SingletonIDGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldSingletonID, v))
}

// SingletonIDGTE applies the GTE predicate on the "singleton_id" field.
func SingletonIDGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldSingletonID, v))
}

// SingletonIDLT applies the LT predicate on the "singleton_id" field.
func SingletonIDLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldSingletonID, v))
}

// SingletonIDLTE applies the LTE predicate on the "singleton_id" field.
func SingletonIDLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldSingletonID, v))
}

// WordsLearnedEQ applies the EQ predicate on the "words_learned" field.
func WordsLearnedEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldWordsLearned, v))
}

// WordsLearnedNEQ applies the NEQ predicate on the "words_learned" field.
func WordsLearnedNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldWordsLearned, v))
}

// WordsLearnedIn applies the In predicate on the "words_learned" field.
func WordsLearnedIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldWordsLearned, vs...))
}

// WordsLearnedNotIn applies the NotIn predicate on the "words_learned" field.
func WordsLearnedNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldWordsLearned, vs...))
}

// WordsLearnedGT applies the GT predicate on the "words_learned" field.
func WordsLearnedGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldWordsLearned, v))
}

// WordsLearnedGTE applies the GTE predicate on the "words_learned" field.
func WordsLearnedGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldWordsLearned, v))
}

// WordsLearnedLT applies the LT predicate on the "words_learned" field.
func WordsLearnedLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldWordsLearned, v))
}

// WordsLearnedLTE applies the LTE predicate on the "words_learned" field.
func WordsLearnedLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldWordsLearned, v))
}

// LessonsCompletedEQ applies the EQ predicate on the "lessons_completed" field.
func LessonsCompletedEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLessonsCompleted, v))
}

// LessonsCompletedNEQ applies the NEQ predicate on the "lessons_completed" field.
func LessonsCompletedNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldLessonsCompleted, v))
}

// LessonsCompletedIn applies the In predicate on the "lessons_completed" field.
func LessonsCompletedIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldLessonsCompleted, vs...))
}

// LessonsCompletedNotIn applies the NotIn predicate on the "lessons_completed" field.
func LessonsCompletedNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldLessonsCompleted, vs...))
}

// LessonsCompletedGT applies the GT predicate on the "lessons_completed" field.
func LessonsCompletedGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldLessonsCompleted, v))
}

// LessonsCompletedGTE applies the GTE predicate on the "lessons_completed" field.
func LessonsCompletedGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldLessonsCompleted, v))
}

// LessonsCompletedLT applies the LT predicate on the "lessons_completed" field.
func LessonsCompletedLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldLessonsCompleted, v))
}

// LessonsCompletedLTE applies the LTE predicate on the "lessons_completed" field.
func LessonsCompletedLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldLessonsCompleted, v))
}

// TotalXpEQ applies the EQ predicate on the "total_xp" field.
func TotalXpEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldTotalXp, v))
}

// TotalXpNEQ applies the NEQ predicate on the "total_xp" field.
func TotalXpNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldTotalXp, v))
}

// TotalXpIn applies the In predicate on the "total_xp" field.
func TotalXpIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldTotalXp, vs...))
}

// TotalXpNotIn applies the NotIn predicate on the "total_xp" field.
func TotalXpNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldTotalXp, vs...))
}

// TotalXpGT applies the GT predicate on the "total_xp" field.
func TotalXpGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldTotalXp, v))
}

// TotalXpGTE applies the GTE predicate on the "total_xp" field.
func TotalXpGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldTotalXp, v))
}

// TotalXpLT applies the LT predicate on the "total_xp" field.
func TotalXpLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldTotalXp, v))
}

// TotalXpLTE applies the LTE predicate on the "total_xp" field.
func TotalXpLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldTotalXp, v))
}

// CurrentStreakEQ applies the EQ predicate on the "current_streak" field.
func CurrentStreakEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCurrentStreak, v))
}

// CurrentStreakNEQ applies the NEQ predicate on the "current_streak" field.
func CurrentStreakNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldCurrentStreak, v))
}

// CurrentStreakIn applies the In predicate on the "current_streak" field.
func CurrentStreakIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldCurrentStreak, vs...))
}

// CurrentStreakNotIn applies the NotIn predicate on the "current_streak" field.
func CurrentStreakNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldCurrentStreak, vs...))
}

// CurrentStreakGT applies the GT predicate on the "current_streak" field.
func CurrentStreakGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldCurrentStreak, v))
}

// CurrentStreakGTE applies the GTE predicate on the "current_streak" field.
func CurrentStreakGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldCurrentStreak, v))
}

// CurrentStreakLT applies the LT predicate on the "current_streak" field.
func CurrentStreakLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldCurrentStreak, v))
}

// CurrentStreakLTE applies the LTE predicate on the "current_streak" field.
func CurrentStreakLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldCurrentStreak, v))
}

// BestStreakEQ applies the EQ predicate on the "best_streak" field.
func BestStreakEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldBestStreak, v))
}

// BestStreakNEQ applies the NEQ predicate on the "best_streak" field.
func BestStreakNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldBestStreak, v))
}

// BestStreakIn applies the In predicate on the "best_streak" field.
func BestStreakIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldBestStreak, vs...))
}

// BestStreakNotIn applies the NotIn predicate on the "best_streak" field.
func BestStreakNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldBestStreak, vs...))
}

// BestStreakGT applies the GT predicate on the "best_streak" field.
func BestStreakGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldBestStreak, v))
}

// BestStreakGTE applies the GTE predicate on the "best_streak" field.
func BestStreakGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldBestStreak, v))
}

// BestStreakLT applies the LT predicate on the "best_streak" field.
func BestStreakLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldBestStreak, v))
}

// BestStreakLTE applies the LTE predicate on the "best_streak" field.
func BestStreakLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldBestStreak, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.NotPredicates(p))
}
