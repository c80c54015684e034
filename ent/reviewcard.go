// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tmaru/lexiquest/ent/reviewcard"
)

// ReviewCard is the model entity for the ReviewCard schema.
type ReviewCard struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// QuestionHash holds the value of the "question_hash" field.
	QuestionHash string `json:"question_hash,omitempty"`
	// Due holds the value of the "due" field.
	Due time.Time `json:"due,omitempty"`
	// Stability holds the value of the "stability" field.
	Stability float64 `json:"stability,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty float64 `json:"difficulty,omitempty"`
	// ElapsedDays holds the value of the "elapsed_days" field.
	ElapsedDays float64 `json:"elapsed_days,omitempty"`
	// ScheduledDays holds the value of the "scheduled_days" field.
	ScheduledDays float64 `json:"scheduled_days,omitempty"`
	// Reps holds the value of the "reps" field.
	Reps int `json:"reps,omitempty"`
	// Lapses holds the value of the "lapses" field.
	Lapses int `json:"lapses,omitempty"`
	// new, learning, review, or relearning
	State string `json:"state,omitempty"`
	// LastReview holds the value of the "last_review" field.
	LastReview *time.Time `json:"last_review,omitempty"`
	// Denormalized question payload for offline review
	Payload      map[string]interface{} `json:"payload,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewCard) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewcard.FieldPayload:
			values[i] = new([]byte)
		case reviewcard.FieldStability, reviewcard.FieldDifficulty, reviewcard.FieldElapsedDays, reviewcard.FieldScheduledDays:
			values[i] = new(sql.NullFloat64)
		case reviewcard.FieldID, reviewcard.FieldReps, reviewcard.FieldLapses:
			values[i] = new(sql.NullInt64)
		case reviewcard.FieldQuestionHash, reviewcard.FieldState:
			values[i] = new(sql.NullString)
		case reviewcard.FieldDue, reviewcard.FieldLastReview:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewCard fields.
func (_m *ReviewCard) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewcard.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reviewcard.FieldQuestionHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_hash", values[i])
			} else if value.Valid {
				_m.QuestionHash = value.String
			}
		case reviewcard.FieldDue:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due", values[i])
			} else if value.Valid {
				_m.Due = value.Time
			}
		case reviewcard.FieldStability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field stability", values[i])
			} else if value.Valid {
				_m.Stability = value.Float64
			}
		case reviewcard.FieldDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.Float64
			}
		case reviewcard.FieldElapsedDays:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field elapsed_days", values[i])
			} else if value.Valid {
				_m.ElapsedDays = value.Float64
			}
		case reviewcard.FieldScheduledDays:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_days", values[i])
			} else if value.Valid {
				_m.ScheduledDays = value.Float64
			}
		case reviewcard.FieldReps:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reps", values[i])
			} else if value.Valid {
				_m.Reps = int(value.Int64)
			}
		case reviewcard.FieldLapses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lapses", values[i])
			} else if value.Valid {
				_m.Lapses = int(value.Int64)
			}
		case reviewcard.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case reviewcard.FieldLastReview:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_review", values[i])
			} else if value.Valid {
				_m.LastReview = new(time.Time)
				*_m.LastReview = value.Time
			}
		case reviewcard.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewCard.
// This includes values selected through modifiers, order, etc.
func (_m *ReviewCard) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewCard.
// Note that you need to call ReviewCard.Unwrap() before calling this method if this ReviewCard
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReviewCard) Update() *ReviewCardUpdateOne {
	return NewReviewCardClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReviewCard entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReviewCard) Unwrap() *ReviewCard {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewCard is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReviewCard) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewCard(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("question_hash=")
	builder.WriteString(_m.QuestionHash)
	builder.WriteString(", ")
	builder.WriteString("due=")
	builder.WriteString(_m.Due.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("stability=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stability))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("elapsed_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.ElapsedDays))
	builder.WriteString(", ")
	builder.WriteString("scheduled_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScheduledDays))
	builder.WriteString(", ")
	builder.WriteString("reps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reps))
	builder.WriteString(", ")
	builder.WriteString("lapses=")
	builder.WriteString(fmt.Sprintf("%v", _m.Lapses))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	if v := _m.LastReview; v != nil {
		builder.WriteString("last_review=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteByte(')')
	return builder.String()
}

// ReviewCards is a parsable slice of ReviewCard.
type ReviewCards []*ReviewCard
