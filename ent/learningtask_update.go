// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/tmaru/lexiquest/ent/learningtask"
	"github.com/tmaru/lexiquest/ent/predicate"
	"github.com/tmaru/lexiquest/ent/schema"
)

// LearningTaskUpdate is the builder for updating LearningTask entities.
type LearningTaskUpdate struct {
	config
	hooks    []Hook
	mutation *LearningTaskMutation
}

// Where appends a list predicates to the LearningTaskUpdate builder.
func (_u *LearningTaskUpdate) Where(ps ...predicate.LearningTask) *LearningTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *LearningTaskUpdate) SetTaskID(v string) *LearningTaskUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *LearningTaskUpdate) SetNillableTaskID(v *string) *LearningTaskUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetPeriodStart sets the "period_start" field.
func (_u *LearningTaskUpdate) SetPeriodStart(v time.Time) *LearningTaskUpdate {
	_u.mutation.SetPeriodStart(v)
	return _u
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_u *LearningTaskUpdate) SetNillablePeriodStart(v *time.Time) *LearningTaskUpdate {
	if v != nil {
		_u.SetPeriodStart(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *LearningTaskUpdate) SetProgress(v int) *LearningTaskUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *LearningTaskUpdate) SetNillableProgress(v *int) *LearningTaskUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *LearningTaskUpdate) AddProgress(v int) *LearningTaskUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetGoal sets the "goal" field.
func (_u *LearningTaskUpdate) SetGoal(v int) *LearningTaskUpdate {
	_u.mutation.ResetGoal()
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *LearningTaskUpdate) SetNillableGoal(v *int) *LearningTaskUpdate {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// AddGoal adds value to the "goal" field.
func (_u *LearningTaskUpdate) AddGoal(v int) *LearningTaskUpdate {
	_u.mutation.AddGoal(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LearningTaskUpdate) SetStatus(v string) *LearningTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LearningTaskUpdate) SetNillableStatus(v *string) *LearningTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LearningTaskUpdate) SetCompletedAt(v time.Time) *LearningTaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LearningTaskUpdate) SetNillableCompletedAt(v *time.Time) *LearningTaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LearningTaskUpdate) ClearCompletedAt() *LearningTaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *LearningTaskUpdate) SetEvidence(v []schema.TaskEvidence) *LearningTaskUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// AppendEvidence appends value to the "evidence" field.
func (_u *LearningTaskUpdate) AppendEvidence(v []schema.TaskEvidence) *LearningTaskUpdate {
	_u.mutation.AppendEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *LearningTaskUpdate) ClearEvidence() *LearningTaskUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// Mutation returns the LearningTaskMutation object of the builder.
func (_u *LearningTaskUpdate) Mutation() *LearningTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningTaskUpdate) check() error {
	if v, ok := _u.mutation.TaskID(); ok {
		if err := learningtask.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "LearningTask.task_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningtask.Table, learningtask.Columns, sqlgraph.NewFieldSpec(learningtask.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(learningtask.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PeriodStart(); ok {
		_spec.SetField(learningtask.FieldPeriodStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(learningtask.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(learningtask.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(learningtask.FieldGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGoal(); ok {
		_spec.AddField(learningtask.FieldGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(learningtask.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(learningtask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(learningtask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(learningtask.FieldEvidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningtask.FieldEvidence, value)
		})
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(learningtask.FieldEvidence, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningTaskUpdateOne is the builder for updating a single LearningTask entity.
type LearningTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningTaskMutation
}

// SetTaskID sets the "task_id" field.
func (_u *LearningTaskUpdateOne) SetTaskID(v string) *LearningTaskUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *LearningTaskUpdateOne) SetNillableTaskID(v *string) *LearningTaskUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetPeriodStart sets the "period_start" field.
func (_u *LearningTaskUpdateOne) SetPeriodStart(v time.Time) *LearningTaskUpdateOne {
	_u.mutation.SetPeriodStart(v)
	return _u
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (_u *LearningTaskUpdateOne) SetNillablePeriodStart(v *time.Time) *LearningTaskUpdateOne {
	if v != nil {
		_u.SetPeriodStart(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *LearningTaskUpdateOne) SetProgress(v int) *LearningTaskUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *LearningTaskUpdateOne) SetNillableProgress(v *int) *LearningTaskUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *LearningTaskUpdateOne) AddProgress(v int) *LearningTaskUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetGoal sets the "goal" field.
func (_u *LearningTaskUpdateOne) SetGoal(v int) *LearningTaskUpdateOne {
	_u.mutation.ResetGoal()
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *LearningTaskUpdateOne) SetNillableGoal(v *int) *LearningTaskUpdateOne {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// AddGoal adds value to the "goal" field.
func (_u *LearningTaskUpdateOne) AddGoal(v int) *LearningTaskUpdateOne {
	_u.mutation.AddGoal(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LearningTaskUpdateOne) SetStatus(v string) *LearningTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LearningTaskUpdateOne) SetNillableStatus(v *string) *LearningTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LearningTaskUpdateOne) SetCompletedAt(v time.Time) *LearningTaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LearningTaskUpdateOne) SetNillableCompletedAt(v *time.Time) *LearningTaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LearningTaskUpdateOne) ClearCompletedAt() *LearningTaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *LearningTaskUpdateOne) SetEvidence(v []schema.TaskEvidence) *LearningTaskUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// AppendEvidence appends value to the "evidence" field.
func (_u *LearningTaskUpdateOne) AppendEvidence(v []schema.TaskEvidence) *LearningTaskUpdateOne {
	_u.mutation.AppendEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *LearningTaskUpdateOne) ClearEvidence() *LearningTaskUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// Mutation returns the LearningTaskMutation object of the builder.
func (_u *LearningTaskUpdateOne) Mutation() *LearningTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningTaskUpdate builder.
func (_u *LearningTaskUpdateOne) Where(ps ...predicate.LearningTask) *LearningTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningTaskUpdateOne) Select(field string, fields ...string) *LearningTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningTask entity.
func (_u *LearningTaskUpdateOne) Save(ctx context.Context) (*LearningTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningTaskUpdateOne) SaveX(ctx context.Context) *LearningTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningTaskUpdateOne) check() error {
	if v, ok := _u.mutation.TaskID(); ok {
		if err := learningtask.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "LearningTask.task_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningTaskUpdateOne) sqlSave(ctx context.Context) (_node *LearningTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningtask.Table, learningtask.Columns, sqlgraph.NewFieldSpec(learningtask.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningtask.FieldID)
		for _, f := range fields {
			if !learningtask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningtask.FieldID {
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
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(learningtask.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PeriodStart(); ok {
		_spec.SetField(learningtask.FieldPeriodStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(learningtask.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(learningtask.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(learningtask.FieldGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGoal(); ok {
		_spec.AddField(learningtask.FieldGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(learningtask.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(learningtask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(learningtask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(learningtask.FieldEvidence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvidence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningtask.FieldEvidence, value)
		})
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(learningtask.FieldEvidence, field.TypeJSON)
	}
	_node = &LearningTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
