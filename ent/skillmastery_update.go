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
	"github.com/tmaru/lexiquest/ent/skillmastery"
)

// SkillMasteryUpdate is the builder for updating SkillMastery entities.
type SkillMasteryUpdate struct {
	config
	hooks    []Hook
	mutation *SkillMasteryMutation
}

// Where appends a list predicates to the SkillMasteryUpdate builder.
func (_u *SkillMasteryUpdate) Where(ps ...predicate.SkillMastery) *SkillMasteryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSkillTag sets the "skill_tag" field.
func (_u *SkillMasteryUpdate) SetSkillTag(v string) *SkillMasteryUpdate {
	_u.mutation.SetSkillTag(v)
	return _u
}

// SetNillableSkillTag sets the "skill_tag" field if the given value is not nil.
func (_u *SkillMasteryUpdate) SetNillableSkillTag(v *string) *SkillMasteryUpdate {
	if v != nil {
		_u.SetSkillTag(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *SkillMasteryUpdate) SetScore(v float64) *SkillMasteryUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SkillMasteryUpdate) SetNillableScore(v *float64) *SkillMasteryUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SkillMasteryUpdate) AddScore(v float64) *SkillMasteryUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetState sets the "state" field.
func (_u *SkillMasteryUpdate) SetState(v string) *SkillMasteryUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *SkillMasteryUpdate) SetNillableState(v *string) *SkillMasteryUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *SkillMasteryUpdate) SetAttempts(v int) *SkillMasteryUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *SkillMasteryUpdate) SetNillableAttempts(v *int) *SkillMasteryUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *SkillMasteryUpdate) AddAttempts(v int) *SkillMasteryUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *SkillMasteryUpdate) SetCorrect(v int) *SkillMasteryUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *SkillMasteryUpdate) SetNillableCorrect(v *int) *SkillMasteryUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *SkillMasteryUpdate) AddCorrect(v int) *SkillMasteryUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *SkillMasteryUpdate) SetLastReviewedAt(v time.Time) *SkillMasteryUpdate {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *SkillMasteryUpdate) SetNillableLastReviewedAt(v *time.Time) *SkillMasteryUpdate {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *SkillMasteryUpdate) ClearLastReviewedAt() *SkillMasteryUpdate {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SkillMasteryUpdate) SetUpdatedAt(v time.Time) *SkillMasteryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SkillMasteryMutation object of the builder.
func (_u *SkillMasteryUpdate) Mutation() *SkillMasteryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SkillMasteryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillMasteryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SkillMasteryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillMasteryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SkillMasteryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := skillmastery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillMasteryUpdate) check() error {
	if v, ok := _u.mutation.SkillTag(); ok {
		if err := skillmastery.SkillTagValidator(v); err != nil {
			return &ValidationError{Name: "skill_tag", err: fmt.Errorf(`ent: validator failed for field "SkillMastery.skill_tag": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillMasteryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skillmastery.Table, skillmastery.Columns, sqlgraph.NewFieldSpec(skillmastery.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SkillTag(); ok {
		_spec.SetField(skillmastery.FieldSkillTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(skillmastery.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(skillmastery.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(skillmastery.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(skillmastery.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(skillmastery.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(skillmastery.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(skillmastery.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(skillmastery.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(skillmastery.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(skillmastery.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SkillMasteryUpdateOne is the builder for updating a single SkillMastery entity.
type SkillMasteryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillMasteryMutation
}

// SetSkillTag sets the "skill_tag" field.
func (_u *SkillMasteryUpdateOne) SetSkillTag(v string) *SkillMasteryUpdateOne {
	_u.mutation.SetSkillTag(v)
	return _u
}

// SetNillableSkillTag sets the "skill_tag" field if the given value is not nil.
func (_u *SkillMasteryUpdateOne) SetNillableSkillTag(v *string) *SkillMasteryUpdateOne {
	if v != nil {
		_u.SetSkillTag(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *SkillMasteryUpdateOne) SetScore(v float64) *SkillMasteryUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SkillMasteryUpdateOne) SetNillableScore(v *float64) *SkillMasteryUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SkillMasteryUpdateOne) AddScore(v float64) *SkillMasteryUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetState sets the "state" field.
func (_u *SkillMasteryUpdateOne) SetState(v string) *SkillMasteryUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *SkillMasteryUpdateOne) SetNillableState(v *string) *SkillMasteryUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *SkillMasteryUpdateOne) SetAttempts(v int) *SkillMasteryUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *SkillMasteryUpdateOne) SetNillableAttempts(v *int) *SkillMasteryUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *SkillMasteryUpdateOne) AddAttempts(v int) *SkillMasteryUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *SkillMasteryUpdateOne) SetCorrect(v int) *SkillMasteryUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *SkillMasteryUpdateOne) SetNillableCorrect(v *int) *SkillMasteryUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *SkillMasteryUpdateOne) AddCorrect(v int) *SkillMasteryUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *SkillMasteryUpdateOne) SetLastReviewedAt(v time.Time) *SkillMasteryUpdateOne {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *SkillMasteryUpdateOne) SetNillableLastReviewedAt(v *time.Time) *SkillMasteryUpdateOne {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *SkillMasteryUpdateOne) ClearLastReviewedAt() *SkillMasteryUpdateOne {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SkillMasteryUpdateOne) SetUpdatedAt(v time.Time) *SkillMasteryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SkillMasteryMutation object of the builder.
func (_u *SkillMasteryUpdateOne) Mutation() *SkillMasteryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SkillMasteryUpdate builder.
func (_u *SkillMasteryUpdateOne) Where(ps ...predicate.SkillMastery) *SkillMasteryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SkillMasteryUpdateOne) Select(field string, fields ...string) *SkillMasteryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SkillMastery entity.
func (_u *SkillMasteryUpdateOne) Save(ctx context.Context) (*SkillMastery, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillMasteryUpdateOne) SaveX(ctx context.Context) *SkillMastery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SkillMasteryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillMasteryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SkillMasteryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := skillmastery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SkillMasteryUpdateOne) check() error {
	if v, ok := _u.mutation.SkillTag(); ok {
		if err := skillmastery.SkillTagValidator(v); err != nil {
			return &ValidationError{Name: "skill_tag", err: fmt.Errorf(`ent: validator failed for field "SkillMastery.skill_tag": %w`, err)}
		}
	}
	return nil
}

func (_u *SkillMasteryUpdateOne) sqlSave(ctx context.Context) (_node *SkillMastery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(skillmastery.Table, skillmastery.Columns, sqlgraph.NewFieldSpec(skillmastery.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SkillMastery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skillmastery.FieldID)
		for _, f := range fields {
			if !skillmastery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skillmastery.FieldID {
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
	if value, ok := _u.mutation.SkillTag(); ok {
		_spec.SetField(skillmastery.FieldSkillTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(skillmastery.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(skillmastery.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(skillmastery.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(skillmastery.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(skillmastery.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(skillmastery.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(skillmastery.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(skillmastery.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(skillmastery.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(skillmastery.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SkillMastery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
