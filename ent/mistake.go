// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tmaru/lexiquest/ent/mistake"
)

// Mistake is the model entity for the Mistake schema.
type Mistake struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID
	MistakeID string `json:"mistake_id,omitempty"`
	// QuestionHash holds the value of the "question_hash" field.
	QuestionHash string `json:"question_hash,omitempty"`
	// SkillTag holds the value of the "skill_tag" field.
	SkillTag string `json:"skill_tag,omitempty"`
	// QuestionText holds the value of the "question_text" field.
	QuestionText string `json:"question_text,omitempty"`
	// CorrectAnswer holds the value of the "correct_answer" field.
	CorrectAnswer string `json:"correct_answer,omitempty"`
	// LearnerAnswer holds the value of the "learner_answer" field.
	LearnerAnswer string `json:"learner_answer,omitempty"`
	// Mentor-assigned root cause, e.g. tense_confusion
	CauseTag string `json:"cause_tag,omitempty"`
	// MentorAnalysis holds the value of the "mentor_analysis" field.
	MentorAnalysis string `json:"mentor_analysis,omitempty"`
	// Follow-up question targeting the same cause
	RevengeQuestion map[string]interface{} `json:"revenge_question,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Mistake) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mistake.FieldRevengeQuestion:
			values[i] = new([]byte)
		case mistake.FieldID:
			values[i] = new(sql.NullInt64)
		case mistake.FieldMistakeID, mistake.FieldQuestionHash, mistake.FieldSkillTag, mistake.FieldQuestionText, mistake.FieldCorrectAnswer, mistake.FieldLearnerAnswer, mistake.FieldCauseTag, mistake.FieldMentorAnalysis:
			values[i] = new(sql.NullString)
		case mistake.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Mistake fields.
func (_m *Mistake) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mistake.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case mistake.FieldMistakeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mistake_id", values[i])
			} else if value.Valid {
				_m.MistakeID = value.String
			}
		case mistake.FieldQuestionHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_hash", values[i])
			} else if value.Valid {
				_m.QuestionHash = value.String
			}
		case mistake.FieldSkillTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_tag", values[i])
			} else if value.Valid {
				_m.SkillTag = value.String
			}
		case mistake.FieldQuestionText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_text", values[i])
			} else if value.Valid {
				_m.QuestionText = value.String
			}
		case mistake.FieldCorrectAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value.Valid {
				_m.CorrectAnswer = value.String
			}
		case mistake.FieldLearnerAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_answer", values[i])
			} else if value.Valid {
				_m.LearnerAnswer = value.String
			}
		case mistake.FieldCauseTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cause_tag", values[i])
			} else if value.Valid {
				_m.CauseTag = value.String
			}
		case mistake.FieldMentorAnalysis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mentor_analysis", values[i])
			} else if value.Valid {
				_m.MentorAnalysis = value.String
			}
		case mistake.FieldRevengeQuestion:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field revenge_question", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RevengeQuestion); err != nil {
					return fmt.Errorf("unmarshal field revenge_question: %w", err)
				}
			}
		case mistake.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Mistake.
// This includes values selected through modifiers, order, etc.
func (_m *Mistake) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Mistake.
// Note that you need to call Mistake.Unwrap() before calling this method if this Mistake
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Mistake) Update() *MistakeUpdateOne {
	return NewMistakeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Mistake entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Mistake) Unwrap() *Mistake {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Mistake is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Mistake) String() string {
	var builder strings.Builder
	builder.WriteString("Mistake(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("mistake_id=")
	builder.WriteString(_m.MistakeID)
	builder.WriteString(", ")
	builder.WriteString("question_hash=")
	builder.WriteString(_m.QuestionHash)
	builder.WriteString(", ")
	builder.WriteString("skill_tag=")
	builder.WriteString(_m.SkillTag)
	builder.WriteString(", ")
	builder.WriteString("question_text=")
	builder.WriteString(_m.QuestionText)
	builder.WriteString(", ")
	builder.WriteString("correct_answer=")
	builder.WriteString(_m.CorrectAnswer)
	builder.WriteString(", ")
	builder.WriteString("learner_answer=")
	builder.WriteString(_m.LearnerAnswer)
	builder.WriteString(", ")
	builder.WriteString("cause_tag=")
	builder.WriteString(_m.CauseTag)
	builder.WriteString(", ")
	builder.WriteString("mentor_analysis=")
	builder.WriteString(_m.MentorAnalysis)
	builder.WriteString(", ")
	builder.WriteString("revenge_question=")
	builder.WriteString(fmt.Sprintf("%v", _m.RevengeQuestion))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Mistakes is a parsable slice of Mistake.
type Mistakes []*Mistake
