// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tmaru/lexiquest/ent/predicate"
	"github.com/tmaru/lexiquest/ent/reviewcard"
)

// ReviewCardUpdate is the builder for updating ReviewCard entities.
type ReviewCardUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewCardMutation
}

// Where appends a list predicates to the ReviewCardUpdate builder.
func (_u *ReviewCardUpdate) Where(ps ...predicate.ReviewCard) *ReviewCardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionHash sets the "question_hash" field.
func (_u *ReviewCardUpdate) SetQuestionHash(v string) *ReviewCardUpdate {
	_u.mutation.SetQuestionHash(v)
	return _u
}

// SetNillableQuestionHash sets the "question_hash" field if the given value is not nil.
func (_u *ReviewCardUpdate) SetNillableQuestionHash(v *string) *ReviewCardUpdate {
	if v != nil {
		_u.SetQuestionHash(*v)
	}
	return _u
}

// SetDue sets the "due" field.
func (_u *ReviewCardUpdate) SetDue(v time.Time) *ReviewCardUpdate {
	_u.mutation.SetDue(v)
	return _u
}

// SetNillableDue sets the "due" field if the given value is not nil.
func (_u *ReviewCardUpdate) SetNillableDue(v *time.Time) *ReviewCardUpdate {
	if v != nil {
		_u.SetDue(*v)
	}
	return _u
}

// SetStability sets the "stability" field.
func (_u *ReviewCardUpdate) SetStability(v float64) *ReviewCardUpdate {
	_u.mutation.ResetStability()
	_u.mutation.SetStability(v)
	return _u
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (_u *ReviewCardUpdate) SetNillableStability(v *float64) *ReviewCardUpdate {
	if v != nil {
		_u.SetStability(*v)
	}
	return _u
}

// AddStability adds value to the "stability" field.
func (_u *ReviewCardUpdate) AddStability(v float64) *ReviewCardUpdate {
	_u.mutation.AddStability(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ReviewCardUpdate) SetDifficulty(v float64) *ReviewCardUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ReviewCardUpdate) SetNillableDifficulty(v *float64) *ReviewCardUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ReviewCardUpdate) AddDifficulty(v float64) *ReviewCardUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetElapsedDays sets the "elapsed_days" field.
func (_u *ReviewCardUpdate) SetElapsedDays(v float64) *ReviewCardUpdate {
	_u.mutation.ResetElapsedDays()
	_u.mutation.SetElapsedDays(v)
	return _u
}

// SetNillableElapsedDays sets the "elapsed_days" field if the given value is not nil.
func (_u *ReviewCardUpdate) SetNillableElapsedDays(v *float64) *ReviewCardUpdate {
	if v != nil {
		_u.SetElapsedDays(*v)
	}
	return _u
}

// AddElapsedDays adds value to the "elapsed_days" field.
func (_u *ReviewCardUpdate) AddElapsedDays(v float64) *ReviewCardUpdate {
	_u.mutation.AddElapsedDays(v)
	return _u
}

// SetScheduledDays sets the "scheduled_days" field.
func (_u *ReviewCardUpdate) SetScheduledDays(v float64) *ReviewCardUpdate {
	_u.mutation.ResetScheduledDays()
	_u.mutation.SetScheduledDays(v)
	return _u
}

// SetNillableScheduledDays sets the "scheduled_days" field if the given value is not nil.
func (_u *ReviewCardUpdate) SetNillableScheduledDays(v *float64) *ReviewCardUpdate {
	if v != nil {
		_u.SetScheduledDays(*v)
	}
	return _u
}

// AddScheduledDays adds value to the "scheduled_days" field.
func (_u *ReviewCardUpdate) AddScheduledDays(v float64) *ReviewCardUpdate {
	_u.mutation.AddScheduledDays(v)
	return _u
}

// SetReps sets the "reps" field.
func (_u *ReviewCardUpdate) SetReps(v int) *ReviewCardUpdate {
	_u.mutation.ResetReps()
	_u.mutation.SetReps(v)
	return _u
}

// SetNillableReps sets the "reps" field if the given value is not nil.
func (_u *ReviewCardUpdate) SetNillableReps(v *int) *ReviewCardUpdate {
	if v != nil {
		_u.SetReps(*v)
	}
	return _u
}

// AddReps adds value to the "reps" field.
func (_u *ReviewCardUpdate) AddReps(v int) *ReviewCardUpdate {
	_u.mutation.AddReps(v)
	return _u
}

// SetLapses sets the "lapses" field.
func (_u *ReviewCardUpdate) SetLapses(v int) *ReviewCardUpdate {
	_u.mutation.ResetLapses()
	_u.mutation.SetLapses(v)
	return _u
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_u *ReviewCardUpdate) SetNillableLapses(v *int) *ReviewCardUpdate {
	if v != nil {
		_u.SetLapses(*v)
	}
	return _u
}

// AddLapses adds value to the "lapses" field.
func (_u *ReviewCardUpdate) AddLapses(v int) *ReviewCardUpdate {
	_u.mutation.AddLapses(v)
	return _u
}

// SetState sets the "state" field.
func (_u *ReviewCardUpdate) SetState(v string) *ReviewCardUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ReviewCardUpdate) SetNillableState(v *string) *ReviewCardUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetLastReview sets the "last_review" field.
func (_u *ReviewCardUpdate) SetLastReview(v time.Time) *ReviewCardUpdate {
	_u.mutation.SetLastReview(v)
	return _u
}

// SetNillableLastReview sets the "last_review" field if the given value is not nil.
func (_u *ReviewCardUpdate) SetNillableLastReview(v *time.Time) *ReviewCardUpdate {
	if v != nil {
		_u.SetLastReview(*v)
	}
	return _u
}

// ClearLastReview clears the value of the "last_review" field.
func (_u *ReviewCardUpdate) ClearLastReview() *ReviewCardUpdate {
	_u.mutation.ClearLastReview()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ReviewCardUpdate) SetPayload(v map[string]interface{}) *ReviewCardUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *ReviewCardUpdate) ClearPayload() *ReviewCardUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the ReviewCardMutation object of the builder.
func (_u *ReviewCardUpdate) Mutation() *ReviewCardMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewCardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewCardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewCardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewCardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewCardUpdate) check() error {
	if v, ok := _u.mutation.QuestionHash(); ok {
		if err := reviewcard.QuestionHashValidator(v); err != nil {
			return &ValidationError{Name: "question_hash", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.question_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewCardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewcard.Table, reviewcard.Columns, sqlgraph.NewFieldSpec(reviewcard.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionHash(); ok {
		_spec.SetField(reviewcard.FieldQuestionHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Due(); ok {
		_spec.SetField(reviewcard.FieldDue, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Stability(); ok {
		_spec.SetField(reviewcard.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStability(); ok {
		_spec.AddField(reviewcard.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(reviewcard.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(reviewcard.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ElapsedDays(); ok {
		_spec.SetField(reviewcard.FieldElapsedDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedElapsedDays(); ok {
		_spec.AddField(reviewcard.FieldElapsedDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ScheduledDays(); ok {
		_spec.SetField(reviewcard.FieldScheduledDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScheduledDays(); ok {
		_spec.AddField(reviewcard.FieldScheduledDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reps(); ok {
		_spec.SetField(reviewcard.FieldReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReps(); ok {
		_spec.AddField(reviewcard.FieldReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lapses(); ok {
		_spec.SetField(reviewcard.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLapses(); ok {
		_spec.AddField(reviewcard.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(reviewcard.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastReview(); ok {
		_spec.SetField(reviewcard.FieldLastReview, field.TypeTime, value)
	}
	if _u.mutation.LastReviewCleared() {
		_spec.ClearField(reviewcard.FieldLastReview, field.TypeTime)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(reviewcard.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(reviewcard.FieldPayload, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewcard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewCardUpdateOne is the builder for updating a single ReviewCard entity.
type ReviewCardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewCardMutation
}

// SetQuestionHash sets the "question_hash" field.
func (_u *ReviewCardUpdateOne) SetQuestionHash(v string) *ReviewCardUpdateOne {
	_u.mutation.SetQuestionHash(v)
	return _u
}

// SetNillableQuestionHash sets the "question_hash" field if the given value is not nil.
func (_u *ReviewCardUpdateOne) SetNillableQuestionHash(v *string) *ReviewCardUpdateOne {
	if v != nil {
		_u.SetQuestionHash(*v)
	}
	return _u
}

// SetDue sets the "due" field.
func (_u *ReviewCardUpdateOne) SetDue(v time.Time) *ReviewCardUpdateOne {
	_u.mutation.SetDue(v)
	return _u
}

// SetNillableDue sets the "due" field if the given value is not nil.
func (_u *ReviewCardUpdateOne) SetNillableDue(v *time.Time) *ReviewCardUpdateOne {
	if v != nil {
		_u.SetDue(*v)
	}
	return _u
}

// SetStability sets the "stability" field.
func (_u *ReviewCardUpdateOne) SetStability(v float64) *ReviewCardUpdateOne {
	_u.mutation.ResetStability()
	_u.mutation.SetStability(v)
	return _u
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (_u *ReviewCardUpdateOne) SetNillableStability(v *float64) *ReviewCardUpdateOne {
	if v != nil {
		_u.SetStability(*v)
	}
	return _u
}

// AddStability adds value to the "stability" field.
func (_u *ReviewCardUpdateOne) AddStability(v float64) *ReviewCardUpdateOne {
	_u.mutation.AddStability(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ReviewCardUpdateOne) SetDifficulty(v float64) *ReviewCardUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ReviewCardUpdateOne) SetNillableDifficulty(v *float64) *ReviewCardUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ReviewCardUpdateOne) AddDifficulty(v float64) *ReviewCardUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetElapsedDays sets the "elapsed_days" field.
func (_u *ReviewCardUpdateOne) SetElapsedDays(v float64) *ReviewCardUpdateOne {
	_u.mutation.ResetElapsedDays()
	_u.mutation.SetElapsedDays(v)
	return _u
}

// SetNillableElapsedDays sets the "elapsed_days" field if the given value is not nil.
func (_u *ReviewCardUpdateOne) SetNillableElapsedDays(v *float64) *ReviewCardUpdateOne {
	if v != nil {
		_u.SetElapsedDays(*v)
	}
	return _u
}

// AddElapsedDays adds value to the "elapsed_days" field.
func (_u *ReviewCardUpdateOne) AddElapsedDays(v float64) *ReviewCardUpdateOne {
	_u.mutation.AddElapsedDays(v)
	return _u
}

// SetScheduledDays sets the "scheduled_days" field.
func (_u *ReviewCardUpdateOne) SetScheduledDays(v float64) *ReviewCardUpdateOne {
	_u.mutation.ResetScheduledDays()
	_u.mutation.SetScheduledDays(v)
	return _u
}

// SetNillableScheduledDays sets the "scheduled_days" field if the given value is not nil.
func (_u *ReviewCardUpdateOne) SetNillableScheduledDays(v *float64) *ReviewCardUpdateOne {
	if v != nil {
		_u.SetScheduledDays(*v)
	}
	return _u
}

// AddScheduledDays adds value to the "scheduled_days" field.
func (_u *ReviewCardUpdateOne) AddScheduledDays(v float64) *ReviewCardUpdateOne {
	_u.mutation.AddScheduledDays(v)
	return _u
}

// SetReps sets the "reps" field.
func (_u *ReviewCardUpdateOne) SetReps(v int) *ReviewCardUpdateOne {
	_u.mutation.ResetReps()
	_u.mutation.SetReps(v)
	return _u
}

// SetNillableReps sets the "reps" field if the given value is not nil.
func (_u *ReviewCardUpdateOne) SetNillableReps(v *int) *ReviewCardUpdateOne {
	if v != nil {
		_u.SetReps(*v)
	}
	return _u
}

// AddReps adds value to the "reps" field.
func (_u *ReviewCardUpdateOne) AddReps(v int) *ReviewCardUpdateOne {
	_u.mutation.AddReps(v)
	return _u
}

// SetLapses sets the "lapses" field.
func (_u *ReviewCardUpdateOne) SetLapses(v int) *ReviewCardUpdateOne {
	_u.mutation.ResetLapses()
	_u.mutation.SetLapses(v)
	return _u
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_u *ReviewCardUpdateOne) SetNillableLapses(v *int) *ReviewCardUpdateOne {
	if v != nil {
		_u.SetLapses(*v)
	}
	return _u
}

// AddLapses adds value to the "lapses" field.
func (_u *ReviewCardUpdateOne) AddLapses(v int) *ReviewCardUpdateOne {
	_u.mutation.AddLapses(v)
	return _u
}

// SetState sets the "state" field.
func (_u *ReviewCardUpdateOne) SetState(v string) *ReviewCardUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ReviewCardUpdateOne) SetNillableState(v *string) *ReviewCardUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetLastReview sets the "last_review" field.
func (_u *ReviewCardUpdateOne) SetLastReview(v time.Time) *ReviewCardUpdateOne {
	_u.mutation.SetLastReview(v)
	return _u
}

// SetNillableLastReview sets the "last_review" field if the given value is not nil.
func (_u *ReviewCardUpdateOne) SetNillableLastReview(v *time.Time) *ReviewCardUpdateOne {
	if v != nil {
		_u.SetLastReview(*v)
	}
	return _u
}

// ClearLastReview clears the value of the "last_review" field.
func (_u *ReviewCardUpdateOne) ClearLastReview() *ReviewCardUpdateOne {
	_u.mutation.ClearLastReview()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ReviewCardUpdateOne) SetPayload(v map[string]interface{}) *ReviewCardUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *ReviewCardUpdateOne) ClearPayload() *ReviewCardUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the ReviewCardMutation object of the builder.
func (_u *ReviewCardUpdateOne) Mutation() *ReviewCardMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewCardUpdate builder.
func (_u *ReviewCardUpdateOne) Where(ps ...predicate.ReviewCard) *ReviewCardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewCardUpdateOne) Select(field string, fields ...string) *ReviewCardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewCard entity.
func (_u *ReviewCardUpdateOne) Save(ctx context.Context) (*ReviewCard, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewCardUpdateOne) SaveX(ctx context.Context) *ReviewCard {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewCardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewCardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewCardUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionHash(); ok {
		if err := reviewcard.QuestionHashValidator(v); err != nil {
			return &ValidationError{Name: "question_hash", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.question_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewCardUpdateOne) sqlSave(ctx context.Context) (_node *ReviewCard, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewcard.Table, reviewcard.Columns, sqlgraph.NewFieldSpec(reviewcard.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewCard.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewcard.FieldID)
		for _, f := range fields {
			if !reviewcard.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewcard.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionHash(); ok {
		_spec.SetField(reviewcard.FieldQuestionHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Due(); ok {
		_spec.SetField(reviewcard.FieldDue, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Stability(); ok {
		_spec.SetField(reviewcard.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStability(); ok {
		_spec.AddField(reviewcard.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(reviewcard.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(reviewcard.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ElapsedDays(); ok {
		_spec.SetField(reviewcard.FieldElapsedDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedElapsedDays(); ok {
		_spec.AddField(reviewcard.FieldElapsedDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ScheduledDays(); ok {
		_spec.SetField(reviewcard.FieldScheduledDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScheduledDays(); ok {
		_spec.AddField(reviewcard.FieldScheduledDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reps(); ok {
		_spec.SetField(reviewcard.FieldReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReps(); ok {
		_spec.AddField(reviewcard.FieldReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lapses(); ok {
		_spec.SetField(reviewcard.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLapses(); ok {
		_spec.AddField(reviewcard.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(reviewcard.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastReview(); ok {
		_spec.SetField(reviewcard.FieldLastReview, field.TypeTime, value)
	}
	if _u.mutation.LastReviewCleared() {
		_spec.ClearField(reviewcard.FieldLastReview, field.TypeTime)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(reviewcard.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(reviewcard.FieldPayload, field.TypeJSON)
	}
	_node = &ReviewCard{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewcard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
