// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// History is the predicate function for history builders.
type History func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LearningEvent is the predicate function for learningevent builders.
type LearningEvent func(*sql.Selector)

// LearningTask is the predicate function for learningtask builders.
type LearningTask func(*sql.Selector)

// MasteryEvent is the predicate function for masteryevent builders.
type MasteryEvent func(*sql.Selector)

// Mistake is the predicate function for mistake builders.
type Mistake func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// RecoveryEvent is the predicate function for recoveryevent builders.
type RecoveryEvent func(*sql.Selector)

// ReviewCard is the predicate function for reviewcard builders.
type ReviewCard func(*sql.Selector)

// SkillMastery is the predicate function for skillmastery builders.
type SkillMastery func(*sql.Selector)
