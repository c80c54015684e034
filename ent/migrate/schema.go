// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// HistoriesColumns holds the columns for the "histories" table.
	HistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "score", Type: field.TypeInt},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "total_correct", Type: field.TypeInt},
		{Name: "skill_stats", Type: field.TypeJSON, Nullable: true},
		{Name: "level_title", Type: field.TypeString, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// HistoriesTable holds the schema information for the "histories" table.
	HistoriesTable = &schema.Table{
		Name:       "histories",
		Columns:    HistoriesColumns,
		PrimaryKey: []*schema.Column{HistoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "history_timestamp",
				Unique:  false,
				Columns: []*schema.Column{HistoriesColumns[6]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "tier", Type: field.TypeString, Default: "free"},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "rate_limited", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_tier",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[6]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[10]},
			},
		},
	}
	// LearningEventsColumns holds the columns for the "learning_events" table.
	LearningEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "event_type", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "result", Type: field.TypeString, Default: ""},
		{Name: "skill_tag", Type: field.TypeString, Default: ""},
		{Name: "question_hash", Type: field.TypeString, Default: ""},
		{Name: "session_id", Type: field.TypeString, Default: ""},
	}
	// LearningEventsTable holds the schema information for the "learning_events" table.
	LearningEventsTable = &schema.Table{
		Name:       "learning_events",
		Columns:    LearningEventsColumns,
		PrimaryKey: []*schema.Column{LearningEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LearningEventsColumns[1]},
			},
			{
				Name:    "learningevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LearningEventsColumns[2]},
			},
			{
				Name:    "learningevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{LearningEventsColumns[3]},
			},
			{
				Name:    "learningevent_source",
				Unique:  false,
				Columns: []*schema.Column{LearningEventsColumns[4]},
			},
			{
				Name:    "learningevent_skill_tag",
				Unique:  false,
				Columns: []*schema.Column{LearningEventsColumns[6]},
			},
		},
	}
	// LearningTasksColumns holds the columns for the "learning_tasks" table.
	LearningTasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "period_start", Type: field.TypeTime},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "goal", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "evidence", Type: field.TypeJSON, Nullable: true},
	}
	// LearningTasksTable holds the schema information for the "learning_tasks" table.
	LearningTasksTable = &schema.Table{
		Name:       "learning_tasks",
		Columns:    LearningTasksColumns,
		PrimaryKey: []*schema.Column{LearningTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningtask_task_id_period_start",
				Unique:  true,
				Columns: []*schema.Column{LearningTasksColumns[1], LearningTasksColumns[2]},
			},
			{
				Name:    "learningtask_period_start",
				Unique:  false,
				Columns: []*schema.Column{LearningTasksColumns[2]},
			},
		},
	}
	// MasteryEventsColumns holds the columns for the "mastery_events" table.
	MasteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "skill_tag", Type: field.TypeString},
		{Name: "from_state", Type: field.TypeString},
		{Name: "to_state", Type: field.TypeString},
		{Name: "trigger", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// MasteryEventsTable holds the schema information for the "mastery_events" table.
	MasteryEventsTable = &schema.Table{
		Name:       "mastery_events",
		Columns:    MasteryEventsColumns,
		PrimaryKey: []*schema.Column{MasteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[1]},
			},
			{
				Name:    "masteryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[2]},
			},
			{
				Name:    "masteryevent_skill_tag",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[3]},
			},
		},
	}
	// MistakesColumns holds the columns for the "mistakes" table.
	MistakesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "mistake_id", Type: field.TypeString, Unique: true},
		{Name: "question_hash", Type: field.TypeString, Default: ""},
		{Name: "skill_tag", Type: field.TypeString, Default: ""},
		{Name: "question_text", Type: field.TypeString},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "learner_answer", Type: field.TypeString},
		{Name: "cause_tag", Type: field.TypeString, Default: ""},
		{Name: "mentor_analysis", Type: field.TypeString, Default: ""},
		{Name: "revenge_question", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MistakesTable holds the schema information for the "mistakes" table.
	MistakesTable = &schema.Table{
		Name:       "mistakes",
		Columns:    MistakesColumns,
		PrimaryKey: []*schema.Column{MistakesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mistake_skill_tag",
				Unique:  false,
				Columns: []*schema.Column{MistakesColumns[3]},
			},
			{
				Name:    "mistake_cause_tag",
				Unique:  false,
				Columns: []*schema.Column{MistakesColumns[7]},
			},
			{
				Name:    "mistake_created_at",
				Unique:  false,
				Columns: []*schema.Column{MistakesColumns[10]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "singleton_id", Type: field.TypeInt, Unique: true},
		{Name: "words_learned", Type: field.TypeInt, Default: 0},
		{Name: "lessons_completed", Type: field.TypeInt, Default: 0},
		{Name: "total_xp", Type: field.TypeInt, Default: 0},
		{Name: "current_streak", Type: field.TypeInt, Default: 0},
		{Name: "best_streak", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// RecoveryEventsColumns holds the columns for the "recovery_events" table.
	RecoveryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Default: ""},
	}
	// RecoveryEventsTable holds the schema information for the "recovery_events" table.
	RecoveryEventsTable = &schema.Table{
		Name:       "recovery_events",
		Columns:    RecoveryEventsColumns,
		PrimaryKey: []*schema.Column{RecoveryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "recoveryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RecoveryEventsColumns[1]},
			},
			{
				Name:    "recoveryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RecoveryEventsColumns[2]},
			},
			{
				Name:    "recoveryevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{RecoveryEventsColumns[3]},
			},
			{
				Name:    "recoveryevent_action",
				Unique:  false,
				Columns: []*schema.Column{RecoveryEventsColumns[4]},
			},
		},
	}
	// ReviewCardsColumns holds the columns for the "review_cards" table.
	ReviewCardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_hash", Type: field.TypeString, Unique: true},
		{Name: "due", Type: field.TypeTime},
		{Name: "stability", Type: field.TypeFloat64},
		{Name: "difficulty", Type: field.TypeFloat64},
		{Name: "elapsed_days", Type: field.TypeFloat64, Default: 0},
		{Name: "scheduled_days", Type: field.TypeFloat64, Default: 0},
		{Name: "reps", Type: field.TypeInt, Default: 0},
		{Name: "lapses", Type: field.TypeInt, Default: 0},
		{Name: "state", Type: field.TypeString, Default: "new"},
		{Name: "last_review", Type: field.TypeTime, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
	}
	// ReviewCardsTable holds the schema information for the "review_cards" table.
	ReviewCardsTable = &schema.Table{
		Name:       "review_cards",
		Columns:    ReviewCardsColumns,
		PrimaryKey: []*schema.Column{ReviewCardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewcard_due",
				Unique:  false,
				Columns: []*schema.Column{ReviewCardsColumns[2]},
			},
			{
				Name:    "reviewcard_state",
				Unique:  false,
				Columns: []*schema.Column{ReviewCardsColumns[9]},
			},
		},
	}
	// SkillMasteriesColumns holds the columns for the "skill_masteries" table.
	SkillMasteriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "skill_tag", Type: field.TypeString, Unique: true},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
		{Name: "state", Type: field.TypeString, Default: "new"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "last_reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SkillMasteriesTable holds the schema information for the "skill_masteries" table.
	SkillMasteriesTable = &schema.Table{
		Name:       "skill_masteries",
		Columns:    SkillMasteriesColumns,
		PrimaryKey: []*schema.Column{SkillMasteriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skillmastery_state",
				Unique:  false,
				Columns: []*schema.Column{SkillMasteriesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		HistoriesTable,
		LlmRequestEventsTable,
		LearningEventsTable,
		LearningTasksTable,
		MasteryEventsTable,
		MistakesTable,
		ProfilesTable,
		RecoveryEventsTable,
		ReviewCardsTable,
		SkillMasteriesTable,
	}
)

func init() {
}
