// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tmaru/lexiquest/ent/history"
	"github.com/tmaru/lexiquest/ent/learningevent"
	"github.com/tmaru/lexiquest/ent/learningtask"
	"github.com/tmaru/lexiquest/ent/llmrequestevent"
	"github.com/tmaru/lexiquest/ent/masteryevent"
	"github.com/tmaru/lexiquest/ent/mistake"
	"github.com/tmaru/lexiquest/ent/profile"
	"github.com/tmaru/lexiquest/ent/recoveryevent"
	"github.com/tmaru/lexiquest/ent/reviewcard"
	"github.com/tmaru/lexiquest/ent/schema"
	"github.com/tmaru/lexiquest/ent/skillmastery"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	historyFields := schema.History{}.Fields()
	_ = historyFields
	// historyDescLevelTitle is the schema descriptor for level_title field.
	historyDescLevelTitle := historyFields[4].Descriptor()
	// history.DefaultLevelTitle holds the default value on creation for the level_title field.
	history.DefaultLevelTitle = historyDescLevelTitle.Default.(string)
	// historyDescTimestamp is the schema descriptor for timestamp field.
	historyDescTimestamp := historyFields[5].Descriptor()
	// history.DefaultTimestamp holds the default value on creation for the timestamp field.
	history.DefaultTimestamp = historyDescTimestamp.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescTier is the schema descriptor for tier field.
	llmrequesteventDescTier := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultTier holds the default value on creation for the tier field.
	llmrequestevent.DefaultTier = llmrequesteventDescTier.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescRateLimited is the schema descriptor for rate_limited field.
	llmrequesteventDescRateLimited := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRateLimited holds the default value on creation for the rate_limited field.
	llmrequestevent.DefaultRateLimited = llmrequesteventDescRateLimited.Default.(bool)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	learningeventMixin := schema.LearningEvent{}.Mixin()
	learningeventMixinFields0 := learningeventMixin[0].Fields()
	_ = learningeventMixinFields0
	learningeventFields := schema.LearningEvent{}.Fields()
	_ = learningeventFields
	// learningeventDescTimestamp is the schema descriptor for timestamp field.
	learningeventDescTimestamp := learningeventMixinFields0[1].Descriptor()
	// learningevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	learningevent.DefaultTimestamp = learningeventDescTimestamp.Default.(func() time.Time)
	// learningeventDescEventType is the schema descriptor for event_type field.
	learningeventDescEventType := learningeventFields[0].Descriptor()
	// learningevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	learningevent.EventTypeValidator = learningeventDescEventType.Validators[0].(func(string) error)
	// learningeventDescSource is the schema descriptor for source field.
	learningeventDescSource := learningeventFields[1].Descriptor()
	// learningevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	learningevent.SourceValidator = learningeventDescSource.Validators[0].(func(string) error)
	// learningeventDescResult is the schema descriptor for result field.
	learningeventDescResult := learningeventFields[2].Descriptor()
	// learningevent.DefaultResult holds the default value on creation for the result field.
	learningevent.DefaultResult = learningeventDescResult.Default.(string)
	// learningeventDescSkillTag is the schema descriptor for skill_tag field.
	learningeventDescSkillTag := learningeventFields[3].Descriptor()
	// learningevent.DefaultSkillTag holds the default value on creation for the skill_tag field.
	learningevent.DefaultSkillTag = learningeventDescSkillTag.Default.(string)
	// learningeventDescQuestionHash is the schema descriptor for question_hash field.
	learningeventDescQuestionHash := learningeventFields[4].Descriptor()
	// learningevent.DefaultQuestionHash holds the default value on creation for the question_hash field.
	learningevent.DefaultQuestionHash = learningeventDescQuestionHash.Default.(string)
	// learningeventDescSessionID is the schema descriptor for session_id field.
	learningeventDescSessionID := learningeventFields[5].Descriptor()
	// learningevent.DefaultSessionID holds the default value on creation for the session_id field.
	learningevent.DefaultSessionID = learningeventDescSessionID.Default.(string)
	learningtaskFields := schema.LearningTask{}.Fields()
	_ = learningtaskFields
	// learningtaskDescTaskID is the schema descriptor for task_id field.
	learningtaskDescTaskID := learningtaskFields[0].Descriptor()
	// learningtask.TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	learningtask.TaskIDValidator = learningtaskDescTaskID.Validators[0].(func(string) error)
	// learningtaskDescProgress is the schema descriptor for progress field.
	learningtaskDescProgress := learningtaskFields[2].Descriptor()
	// learningtask.DefaultProgress holds the default value on creation for the progress field.
	learningtask.DefaultProgress = learningtaskDescProgress.Default.(int)
	// learningtaskDescStatus is the schema descriptor for status field.
	learningtaskDescStatus := learningtaskFields[4].Descriptor()
	// learningtask.DefaultStatus holds the default value on creation for the status field.
	learningtask.DefaultStatus = learningtaskDescStatus.Default.(string)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescSkillTag is the schema descriptor for skill_tag field.
	masteryeventDescSkillTag := masteryeventFields[0].Descriptor()
	// masteryevent.SkillTagValidator is a validator for the "skill_tag" field. It is called by the builders before save.
	masteryevent.SkillTagValidator = masteryeventDescSkillTag.Validators[0].(func(string) error)
	// masteryeventDescFromState is the schema descriptor for from_state field.
	masteryeventDescFromState := masteryeventFields[1].Descriptor()
	// masteryevent.FromStateValidator is a validator for the "from_state" field. It is called by the builders before save.
	masteryevent.FromStateValidator = masteryeventDescFromState.Validators[0].(func(string) error)
	// masteryeventDescToState is the schema descriptor for to_state field.
	masteryeventDescToState := masteryeventFields[2].Descriptor()
	// masteryevent.ToStateValidator is a validator for the "to_state" field. It is called by the builders before save.
	masteryevent.ToStateValidator = masteryeventDescToState.Validators[0].(func(string) error)
	// masteryeventDescTrigger is the schema descriptor for trigger field.
	masteryeventDescTrigger := masteryeventFields[3].Descriptor()
	// masteryevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	masteryevent.TriggerValidator = masteryeventDescTrigger.Validators[0].(func(string) error)
	mistakeFields := schema.Mistake{}.Fields()
	_ = mistakeFields
	// mistakeDescMistakeID is the schema descriptor for mistake_id field.
	mistakeDescMistakeID := mistakeFields[0].Descriptor()
	// mistake.MistakeIDValidator is a validator for the "mistake_id" field. It is called by the builders before save.
	mistake.MistakeIDValidator = mistakeDescMistakeID.Validators[0].(func(string) error)
	// mistakeDescQuestionHash is the schema descriptor for question_hash field.
	mistakeDescQuestionHash := mistakeFields[1].Descriptor()
	// mistake.DefaultQuestionHash holds the default value on creation for the question_hash field.
	mistake.DefaultQuestionHash = mistakeDescQuestionHash.Default.(string)
	// mistakeDescSkillTag is the schema descriptor for skill_tag field.
	mistakeDescSkillTag := mistakeFields[2].Descriptor()
	// mistake.DefaultSkillTag holds the default value on creation for the skill_tag field.
	mistake.DefaultSkillTag = mistakeDescSkillTag.Default.(string)
	// mistakeDescQuestionText is the schema descriptor for question_text field.
	mistakeDescQuestionText := mistakeFields[3].Descriptor()
	// mistake.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	mistake.QuestionTextValidator = mistakeDescQuestionText.Validators[0].(func(string) error)
	// mistakeDescCorrectAnswer is the schema descriptor for correct_answer field.
	mistakeDescCorrectAnswer := mistakeFields[4].Descriptor()
	// mistake.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	mistake.CorrectAnswerValidator = mistakeDescCorrectAnswer.Validators[0].(func(string) error)
	// mistakeDescLearnerAnswer is the schema descriptor for learner_answer field.
	mistakeDescLearnerAnswer := mistakeFields[5].Descriptor()
	// mistake.LearnerAnswerValidator is a validator for the "learner_answer" field. It is called by the builders before save.
	mistake.LearnerAnswerValidator = mistakeDescLearnerAnswer.Validators[0].(func(string) error)
	// mistakeDescCauseTag is the schema descriptor for cause_tag field.
	mistakeDescCauseTag := mistakeFields[6].Descriptor()
	// mistake.DefaultCauseTag holds the default value on creation for the cause_tag field.
	mistake.DefaultCauseTag = mistakeDescCauseTag.Default.(string)
	// mistakeDescMentorAnalysis is the schema descriptor for mentor_analysis field.
	mistakeDescMentorAnalysis := mistakeFields[7].Descriptor()
	// mistake.DefaultMentorAnalysis holds the default value on creation for the mentor_analysis field.
	mistake.DefaultMentorAnalysis = mistakeDescMentorAnalysis.Default.(string)
	// mistakeDescCreatedAt is the schema descriptor for created_at field.
	mistakeDescCreatedAt := mistakeFields[9].Descriptor()
	// mistake.DefaultCreatedAt holds the default value on creation for the created_at field.
	mistake.DefaultCreatedAt = mistakeDescCreatedAt.Default.(func() time.Time)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescWordsLearned is the schema descriptor for words_learned field.
	profileDescWordsLearned := profileFields[1].Descriptor()
	// profile.DefaultWordsLearned holds the default value on creation for the words_learned field.
	profile.DefaultWordsLearned = profileDescWordsLearned.Default.(int)
	// profileDescLessonsCompleted is the schema descriptor for lessons_completed field.
	profileDescLessonsCompleted := profileFields[2].Descriptor()
	// profile.DefaultLessonsCompleted holds the default value on creation for the lessons_completed field.
	profile.DefaultLessonsCompleted = profileDescLessonsCompleted.Default.(int)
	// profileDescTotalXp is the schema descriptor for total_xp field.
	profileDescTotalXp := profileFields[3].Descriptor()
	// profile.DefaultTotalXp holds the default value on creation for the total_xp field.
	profile.DefaultTotalXp = profileDescTotalXp.Default.(int)
	// profileDescCurrentStreak is the schema descriptor for current_streak field.
	profileDescCurrentStreak := profileFields[4].Descriptor()
	// profile.DefaultCurrentStreak holds the default value on creation for the current_streak field.
	profile.DefaultCurrentStreak = profileDescCurrentStreak.Default.(int)
	// profileDescBestStreak is the schema descriptor for best_streak field.
	profileDescBestStreak := profileFields[5].Descriptor()
	// profile.DefaultBestStreak holds the default value on creation for the best_streak field.
	profile.DefaultBestStreak = profileDescBestStreak.Default.(int)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[6].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	recoveryeventMixin := schema.RecoveryEvent{}.Mixin()
	recoveryeventMixinFields0 := recoveryeventMixin[0].Fields()
	_ = recoveryeventMixinFields0
	recoveryeventFields := schema.RecoveryEvent{}.Fields()
	_ = recoveryeventFields
	// recoveryeventDescTimestamp is the schema descriptor for timestamp field.
	recoveryeventDescTimestamp := recoveryeventMixinFields0[1].Descriptor()
	// recoveryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	recoveryevent.DefaultTimestamp = recoveryeventDescTimestamp.Default.(func() time.Time)
	// recoveryeventDescSessionID is the schema descriptor for session_id field.
	recoveryeventDescSessionID := recoveryeventFields[0].Descriptor()
	// recoveryevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	recoveryevent.SessionIDValidator = recoveryeventDescSessionID.Validators[0].(func(string) error)
	// recoveryeventDescAction is the schema descriptor for action field.
	recoveryeventDescAction := recoveryeventFields[1].Descriptor()
	// recoveryevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	recoveryevent.ActionValidator = recoveryeventDescAction.Validators[0].(func(string) error)
	// recoveryeventDescReason is the schema descriptor for reason field.
	recoveryeventDescReason := recoveryeventFields[2].Descriptor()
	// recoveryevent.DefaultReason holds the default value on creation for the reason field.
	recoveryevent.DefaultReason = recoveryeventDescReason.Default.(string)
	reviewcardFields := schema.ReviewCard{}.Fields()
	_ = reviewcardFields
	// reviewcardDescQuestionHash is the schema descriptor for question_hash field.
	reviewcardDescQuestionHash := reviewcardFields[0].Descriptor()
	// reviewcard.QuestionHashValidator is a validator for the "question_hash" field. It is called by the builders before save.
	reviewcard.QuestionHashValidator = reviewcardDescQuestionHash.Validators[0].(func(string) error)
	// reviewcardDescElapsedDays is the schema descriptor for elapsed_days field.
	reviewcardDescElapsedDays := reviewcardFields[4].Descriptor()
	// reviewcard.DefaultElapsedDays holds the default value on creation for the elapsed_days field.
	reviewcard.DefaultElapsedDays = reviewcardDescElapsedDays.Default.(float64)
	// reviewcardDescScheduledDays is the schema descriptor for scheduled_days field.
	reviewcardDescScheduledDays := reviewcardFields[5].Descriptor()
	// reviewcard.DefaultScheduledDays holds the default value on creation for the scheduled_days field.
	reviewcard.DefaultScheduledDays = reviewcardDescScheduledDays.Default.(float64)
	// reviewcardDescReps is the schema descriptor for reps field.
	reviewcardDescReps := reviewcardFields[6].Descriptor()
	// reviewcard.DefaultReps holds the default value on creation for the reps field.
	reviewcard.DefaultReps = reviewcardDescReps.Default.(int)
	// reviewcardDescLapses is the schema descriptor for lapses field.
	reviewcardDescLapses := reviewcardFields[7].Descriptor()
	// reviewcard.DefaultLapses holds the default value on creation for the lapses field.
	reviewcard.DefaultLapses = reviewcardDescLapses.Default.(int)
	// reviewcardDescState is the schema descriptor for state field.
	reviewcardDescState := reviewcardFields[8].Descriptor()
	// reviewcard.DefaultState holds the default value on creation for the state field.
	reviewcard.DefaultState = reviewcardDescState.Default.(string)
	skillmasteryFields := schema.SkillMastery{}.Fields()
	_ = skillmasteryFields
	// skillmasteryDescSkillTag is the schema descriptor for skill_tag field.
	skillmasteryDescSkillTag := skillmasteryFields[0].Descriptor()
	// skillmastery.SkillTagValidator is a validator for the "skill_tag" field. It is called by the builders before save.
	skillmastery.SkillTagValidator = skillmasteryDescSkillTag.Validators[0].(func(string) error)
	// skillmasteryDescScore is the schema descriptor for score field.
	skillmasteryDescScore := skillmasteryFields[1].Descriptor()
	// skillmastery.DefaultScore holds the default value on creation for the score field.
	skillmastery.DefaultScore = skillmasteryDescScore.Default.(float64)
	// skillmasteryDescState is the schema descriptor for state field.
	skillmasteryDescState := skillmasteryFields[2].Descriptor()
	// skillmastery.DefaultState holds the default value on creation for the state field.
	skillmastery.DefaultState = skillmasteryDescState.Default.(string)
	// skillmasteryDescAttempts is the schema descriptor for attempts field.
	skillmasteryDescAttempts := skillmasteryFields[3].Descriptor()
	// skillmastery.DefaultAttempts holds the default value on creation for the attempts field.
	skillmastery.DefaultAttempts = skillmasteryDescAttempts.Default.(int)
	// skillmasteryDescCorrect is the schema descriptor for correct field.
	skillmasteryDescCorrect := skillmasteryFields[4].Descriptor()
	// skillmastery.DefaultCorrect holds the default value on creation for the correct field.
	skillmastery.DefaultCorrect = skillmasteryDescCorrect.Default.(int)
	// skillmasteryDescUpdatedAt is the schema descriptor for updated_at field.
	skillmasteryDescUpdatedAt := skillmasteryFields[6].Descriptor()
	// skillmastery.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	skillmastery.DefaultUpdatedAt = skillmasteryDescUpdatedAt.Default.(func() time.Time)
	// skillmastery.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	skillmastery.UpdateDefaultUpdatedAt = skillmasteryDescUpdatedAt.UpdateDefault.(func() time.Time)
}
