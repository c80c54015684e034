// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tmaru/lexiquest/ent/learningevent"
)

// LearningEvent is the model entity for the LearningEvent schema.
type LearningEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// answer or session_complete
	EventType string `json:"event_type,omitempty"`
	// battle, srs, or daily
	Source string `json:"source,omitempty"`
	// correct or wrong (answer events only)
	Result string `json:"result,omitempty"`
	// Skill the question exercised, if tagged
	SkillTag string `json:"skill_tag,omitempty"`
	// Stable hash of the question text
	QuestionHash string `json:"question_hash,omitempty"`
	// UUID grouping events in a play session
	SessionID    string `json:"session_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearningEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learningevent.FieldID, learningevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case learningevent.FieldEventType, learningevent.FieldSource, learningevent.FieldResult, learningevent.FieldSkillTag, learningevent.FieldQuestionHash, learningevent.FieldSessionID:
			values[i] = new(sql.NullString)
		case learningevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearningEvent fields.
func (_m *LearningEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learningevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learningevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case learningevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case learningevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case learningevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case learningevent.FieldResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value.Valid {
				_m.Result = value.String
			}
		case learningevent.FieldSkillTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_tag", values[i])
			} else if value.Valid {
				_m.SkillTag = value.String
			}
		case learningevent.FieldQuestionHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_hash", values[i])
			} else if value.Valid {
				_m.QuestionHash = value.String
			}
		case learningevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearningEvent.
// This includes values selected through modifiers, order, etc.
func (_m *LearningEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearningEvent.
// Note that you need to call LearningEvent.Unwrap() before calling this method if this LearningEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearningEvent) Update() *LearningEventUpdateOne {
	return NewLearningEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearningEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearningEvent) Unwrap() *LearningEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearningEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearningEvent) String() string {
	var builder strings.Builder
	builder.WriteString("LearningEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(_m.Result)
	builder.WriteString(", ")
	builder.WriteString("skill_tag=")
	builder.WriteString(_m.SkillTag)
	builder.WriteString(", ")
	builder.WriteString("question_hash=")
	builder.WriteString(_m.QuestionHash)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteByte(')')
	return builder.String()
}

// LearningEvents is a parsable slice of LearningEvent.
type LearningEvents []*LearningEvent
