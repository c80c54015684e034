// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tmaru/lexiquest/ent/learningevent"
	"github.com/tmaru/lexiquest/ent/predicate"
)

// LearningEventUpdate is the builder for updating LearningEvent entities.
type LearningEventUpdate struct {
	config
	hooks    []Hook
	mutation *LearningEventMutation
}

// Where appends a list predicates to the LearningEventUpdate builder.
func (_u *LearningEventUpdate) Where(ps ...predicate.LearningEvent) *LearningEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *LearningEventUpdate) SetEventType(v string) *LearningEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *LearningEventUpdate) SetNillableEventType(v *string) *LearningEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *LearningEventUpdate) SetSource(v string) *LearningEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LearningEventUpdate) SetNillableSource(v *string) *LearningEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *LearningEventUpdate) SetResult(v string) *LearningEventUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *LearningEventUpdate) SetNillableResult(v *string) *LearningEventUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetSkillTag sets the "skill_tag" field.
func (_u *LearningEventUpdate) SetSkillTag(v string) *LearningEventUpdate {
	_u.mutation.SetSkillTag(v)
	return _u
}

// SetNillableSkillTag sets the "skill_tag" field if the given value is not nil.
func (_u *LearningEventUpdate) SetNillableSkillTag(v *string) *LearningEventUpdate {
	if v != nil {
		_u.SetSkillTag(*v)
	}
	return _u
}

// SetQuestionHash sets the "question_hash" field.
func (_u *LearningEventUpdate) SetQuestionHash(v string) *LearningEventUpdate {
	_u.mutation.SetQuestionHash(v)
	return _u
}

// SetNillableQuestionHash sets the "question_hash" field if the given value is not nil.
func (_u *LearningEventUpdate) SetNillableQuestionHash(v *string) *LearningEventUpdate {
	if v != nil {
		_u.SetQuestionHash(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *LearningEventUpdate) SetSessionID(v string) *LearningEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LearningEventUpdate) SetNillableSessionID(v *string) *LearningEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the LearningEventMutation object of the builder.
func (_u *LearningEventUpdate) Mutation() *LearningEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningEventUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := learningevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "LearningEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := learningevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "LearningEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningevent.Table, learningevent.Columns, sqlgraph.NewFieldSpec(learningevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(learningevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(learningevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(learningevent.FieldResult, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillTag(); ok {
		_spec.SetField(learningevent.FieldSkillTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionHash(); ok {
		_spec.SetField(learningevent.FieldQuestionHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(learningevent.FieldSessionID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningEventUpdateOne is the builder for updating a single LearningEvent entity.
type LearningEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningEventMutation
}

// SetEventType sets the "event_type" field.
func (_u *LearningEventUpdateOne) SetEventType(v string) *LearningEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *LearningEventUpdateOne) SetNillableEventType(v *string) *LearningEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *LearningEventUpdateOne) SetSource(v string) *LearningEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LearningEventUpdateOne) SetNillableSource(v *string) *LearningEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *LearningEventUpdateOne) SetResult(v string) *LearningEventUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *LearningEventUpdateOne) SetNillableResult(v *string) *LearningEventUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetSkillTag sets the "skill_tag" field.
func (_u *LearningEventUpdateOne) SetSkillTag(v string) *LearningEventUpdateOne {
	_u.mutation.SetSkillTag(v)
	return _u
}

// SetNillableSkillTag sets the "skill_tag" field if the given value is not nil.
func (_u *LearningEventUpdateOne) SetNillableSkillTag(v *string) *LearningEventUpdateOne {
	if v != nil {
		_u.SetSkillTag(*v)
	}
	return _u
}

// SetQuestionHash sets the "question_hash" field.
func (_u *LearningEventUpdateOne) SetQuestionHash(v string) *LearningEventUpdateOne {
	_u.mutation.SetQuestionHash(v)
	return _u
}

// SetNillableQuestionHash sets the "question_hash" field if the given value is not nil.
func (_u *LearningEventUpdateOne) SetNillableQuestionHash(v *string) *LearningEventUpdateOne {
	if v != nil {
		_u.SetQuestionHash(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *LearningEventUpdateOne) SetSessionID(v string) *LearningEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LearningEventUpdateOne) SetNillableSessionID(v *string) *LearningEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the LearningEventMutation object of the builder.
func (_u *LearningEventUpdateOne) Mutation() *LearningEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningEventUpdate builder.
func (_u *LearningEventUpdateOne) Where(ps ...predicate.LearningEvent) *LearningEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningEventUpdateOne) Select(field string, fields ...string) *LearningEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningEvent entity.
func (_u *LearningEventUpdateOne) Save(ctx context.Context) (*LearningEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningEventUpdateOne) SaveX(ctx context.Context) *LearningEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := learningevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "LearningEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := learningevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "LearningEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningEventUpdateOne) sqlSave(ctx context.Context) (_node *LearningEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningevent.Table, learningevent.Columns, sqlgraph.NewFieldSpec(learningevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningevent.FieldID)
		for _, f := range fields {
			if !learningevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningevent.FieldID {
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
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(learningevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(learningevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(learningevent.FieldResult, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillTag(); ok {
		_spec.SetField(learningevent.FieldSkillTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionHash(); ok {
		_spec.SetField(learningevent.FieldQuestionHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(learningevent.FieldSessionID, field.TypeString, value)
	}
	_node = &LearningEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
