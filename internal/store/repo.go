package store

import (
	"context"
	"time"
)

// EventType discriminates learning event kinds.
type EventType string

const (
	EventAnswer          EventType = "answer"
	EventSessionComplete EventType = "session_complete"
)

// Source identifies which game mode emitted an event.
type Source string

const (
	SourceBattle Source = "battle"
	SourceSRS    Source = "srs"
	SourceDaily  Source = "daily"
)

// Result is the outcome of an answer event.
type Result string

const (
	ResultCorrect Result = "correct"
	ResultWrong   Result = "wrong"
)

// LearningEventData is the append payload for a learning event.
// A zero Timestamp means "now"; an explicit one lets callers append
// out of order (analytics folds order by timestamp, not insertion).
type LearningEventData struct {
	EventType    EventType
	Source       Source
	Result       Result
	SkillTag     string
	QuestionHash string
	SessionID    string
	Timestamp    time.Time
}

// LearningEventRow is a learning event read back from the log.
type LearningEventRow struct {
	Sequence     int64
	Timestamp    time.Time
	EventType    EventType
	Source       Source
	Result       Result
	SkillTag     string
	QuestionHash string
	SessionID    string
}

// RecoveryEventData is the append payload for a session-recovery event.
type RecoveryEventData struct {
	SessionID string
	Action    string // attempt, success, or failure
	Reason    string
	Timestamp time.Time
}

// RecoveryEventRow is a recovery event read back from the log.
type RecoveryEventRow struct {
	Sequence  int64
	Timestamp time.Time
	SessionID string
	Action    string
	Reason    string
}

// LLMRequestEventData captures a single LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Tier         string // free or paid
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	RateLimited  bool
	ErrorMessage string
}

// LLMRequestRow is an LLM request event read back from the log.
type LLMRequestRow struct {
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Tier         string
	Purpose      string
	InputTokens  int
	OutputTokens int
	Success      bool
	RateLimited  bool
	LatencyMs    int64
}

// MasteryEventData records a mastery state transition.
type MasteryEventData struct {
	SkillTag  string
	FromState string
	ToState   string
	Trigger   string
	Score     float64
	SessionID string
}

// MasteryEventRow is a mastery transition read back from the log.
type MasteryEventRow struct {
	Sequence  int64
	Timestamp time.Time
	SkillTag  string
	FromState string
	ToState   string
	Trigger   string
	Score     float64
}

// EventRepo provides append and windowed query access to the event log.
type EventRepo interface {
	AppendLearningEvent(ctx context.Context, data LearningEventData) error
	LearningEventsBetween(ctx context.Context, from, to time.Time) ([]LearningEventRow, error)
	AllLearningEvents(ctx context.Context) ([]LearningEventRow, error)

	AppendRecoveryEvent(ctx context.Context, data RecoveryEventData) error
	RecoveryEventsBetween(ctx context.Context, from, to time.Time) ([]RecoveryEventRow, error)

	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	LLMRequestsBetween(ctx context.Context, from, to time.Time) ([]LLMRequestRow, error)

	AppendMasteryEvent(ctx context.Context, data MasteryEventData) error
	MasteryEventsBetween(ctx context.Context, from, to time.Time) ([]MasteryEventRow, error)

	// CorrectAnswerCount counts answer events with result correct across
	// the whole log. Used as a lower bound by the consistency audit.
	CorrectAnswerCount(ctx context.Context) (int, error)

	// SessionCompleteCount counts session_complete events across the log.
	SessionCompleteCount(ctx context.Context) (int, error)

	// RecentWrongBySkill tallies wrong answers per skill tag since the
	// given time. Feeds the priority ranker's recent-mistake signal.
	RecentWrongBySkill(ctx context.Context, since time.Time) (map[string]int, error)
}

// CardData is the persisted form of a spaced repetition card.
type CardData struct {
	QuestionHash  string
	Due           time.Time
	Stability     float64
	Difficulty    float64
	ElapsedDays   float64
	ScheduledDays float64
	Reps          int
	Lapses        int
	State         string
	LastReview    *time.Time
	Payload       map[string]any
}

// CardRepo manages spaced repetition cards, keyed by question hash.
type CardRepo interface {
	// Get returns the card for a hash, or nil if it doesn't exist.
	Get(ctx context.Context, questionHash string) (*CardData, error)

	// Save creates or overwrites the card for its hash.
	Save(ctx context.Context, card *CardData) error

	// Due returns cards with due <= now, most overdue first.
	// limit 0 means unlimited.
	Due(ctx context.Context, now time.Time, limit int) ([]CardData, error)

	// All returns every card.
	All(ctx context.Context) ([]CardData, error)
}

// SkillMasteryData is the persisted per-skill mastery record.
type SkillMasteryData struct {
	SkillTag       string
	Score          float64
	State          string
	Attempts       int
	Correct        int
	LastReviewedAt *time.Time
	UpdatedAt      time.Time
}

// MasteryRepo manages per-skill mastery records.
type MasteryRepo interface {
	// Get returns the record for a skill tag, or nil if it doesn't exist.
	Get(ctx context.Context, skillTag string) (*SkillMasteryData, error)

	// Save creates or overwrites the record for its skill tag.
	Save(ctx context.Context, rec *SkillMasteryData) error

	// All returns every mastery record.
	All(ctx context.Context) ([]SkillMasteryData, error)
}

// MistakeData is the persisted form of a mistake record.
type MistakeData struct {
	MistakeID       string
	QuestionHash    string
	SkillTag        string
	QuestionText    string
	CorrectAnswer   string
	LearnerAnswer   string
	CauseTag        string
	MentorAnalysis  string
	RevengeQuestion map[string]any
	CreatedAt       time.Time
}

// MistakeRepo manages mistake records.
type MistakeRepo interface {
	Create(ctx context.Context, data MistakeData) error

	// Enrich attaches mentor analysis to an existing mistake.
	Enrich(ctx context.Context, mistakeID, causeTag, analysis string, revenge map[string]any) error

	// Delete removes a mistake (learner-initiated).
	Delete(ctx context.Context, mistakeID string) error

	Between(ctx context.Context, from, to time.Time) ([]MistakeData, error)
	All(ctx context.Context) ([]MistakeData, error)
}

// SkillStat is a per-skill tally inside a history record.
type SkillStat struct {
	SkillTag string
	Attempts int
	Correct  int
}

// HistoryData is a write-once record of a completed mission.
type HistoryData struct {
	Score          int
	TotalQuestions int
	TotalCorrect   int
	SkillStats     []SkillStat
	LevelTitle     string
	Timestamp      time.Time
}

// HistoryRepo manages mission history records.
type HistoryRepo interface {
	Append(ctx context.Context, data HistoryData) error
	Between(ctx context.Context, from, to time.Time) ([]HistoryData, error)
	All(ctx context.Context) ([]HistoryData, error)
}

// ProfileData is the singleton lifetime-counter record.
type ProfileData struct {
	WordsLearned     int
	LessonsCompleted int
	TotalXP          int
	CurrentStreak    int
	BestStreak       int
	UpdatedAt        time.Time
}

// ProfileDelta is an additive update to the profile counters.
// Streak, when >= 0, replaces the current streak (best follows).
type ProfileDelta struct {
	WordsLearned     int
	LessonsCompleted int
	XP               int
	Streak           int
}

// ProfileRepo manages the singleton profile.
type ProfileRepo interface {
	// Get returns the profile, or a zero-valued one if never written.
	Get(ctx context.Context) (*ProfileData, error)

	// Apply adds the delta to the stored counters.
	Apply(ctx context.Context, delta ProfileDelta) error
}

// TaskEvidence is one contributing event attached to a weekly task.
type TaskEvidence struct {
	Timestamp time.Time
	Source    string
	EventType string
	SkillTag  string
}

// TaskData is a weekly quest row.
type TaskData struct {
	TaskID      string
	PeriodStart time.Time
	Progress    int
	Goal        int
	Status      string // active, completed, or expired
	CompletedAt *time.Time
	Evidence    []TaskEvidence
}

// TaskRepo manages weekly quest rows.
type TaskRepo interface {
	// ForPeriod returns the task rows for a week period.
	ForPeriod(ctx context.Context, periodStart time.Time) ([]TaskData, error)

	// Save creates or overwrites the row for (task_id, period_start).
	Save(ctx context.Context, task TaskData) error
}
