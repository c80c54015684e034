// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tmaru/lexiquest/ent/learningtask"
	"github.com/tmaru/lexiquest/ent/schema"
)

// LearningTaskCreate is the builder for creating a LearningTask entity.
type LearningTaskCreate struct {
	config
	mutation *LearningTaskMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *LearningTaskCreate) SetTaskID(v string) *LearningTaskCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetPeriodStart sets the "period_start" field.
func (_c *LearningTaskCreate) SetPeriodStart(v time.Time) *LearningTaskCreate {
	_c.mutation.SetPeriodStart(v)
	return _c
}

// SetProgress sets the "progress" field.
func (_c *LearningTaskCreate) SetProgress(v int) *LearningTaskCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *LearningTaskCreate) SetNillableProgress(v *int) *LearningTaskCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetGoal sets the "goal" field.
func (_c *LearningTaskCreate) SetGoal(v int) *LearningTaskCreate {
	_c.mutation.SetGoal(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *LearningTaskCreate) SetStatus(v string) *LearningTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LearningTaskCreate) SetNillableStatus(v *string) *LearningTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *LearningTaskCreate) SetCompletedAt(v time.Time) *LearningTaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *LearningTaskCreate) SetNillableCompletedAt(v *time.Time) *LearningTaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *LearningTaskCreate) SetEvidence(v []schema.TaskEvidence) *LearningTaskCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// Mutation returns the LearningTaskMutation object of the builder.
func (_c *LearningTaskCreate) Mutation() *LearningTaskMutation {
	return _c.mutation
}

// Save creates the LearningTask in the database.
func (_c *LearningTaskCreate) Save(ctx context.Context) (*LearningTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningTaskCreate) SaveX(ctx context.Context) *LearningTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningTaskCreate) defaults() {
	if _, ok := _c.mutation.Progress(); !ok {
		v := learningtask.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := learningtask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningTaskCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "LearningTask.task_id"`)}
	}
	if v, ok := _c.mutation.TaskID(); ok {
		if err := learningtask.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "LearningTask.task_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PeriodStart(); !ok {
		return &ValidationError{Name: "period_start", err: errors.New(`ent: missing required field "LearningTask.period_start"`)}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "LearningTask.progress"`)}
	}
	if _, ok := _c.mutation.Goal(); !ok {
		return &ValidationError{Name: "goal", err: errors.New(`ent: missing required field "LearningTask.goal"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "LearningTask.status"`)}
	}
	return nil
}

func (_c *LearningTaskCreate) sqlSave(ctx context.Context) (*LearningTask, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearningTaskCreate) createSpec() (*LearningTask, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningtask.Table, sqlgraph.NewFieldSpec(learningtask.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(learningtask.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.PeriodStart(); ok {
		_spec.SetField(learningtask.FieldPeriodStart, field.TypeTime, value)
		_node.PeriodStart = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(learningtask.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.Goal(); ok {
		_spec.SetField(learningtask.FieldGoal, field.TypeInt, value)
		_node.Goal = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(learningtask.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(learningtask.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(learningtask.FieldEvidence, field.TypeJSON, value)
		_node.Evidence = value
	}
	return _node, _spec
}

// LearningTaskCreateBulk is the builder for creating many LearningTask entities in bulk.
type LearningTaskCreateBulk struct {
	config
	err      error
	builders []*LearningTaskCreate
}

// Save creates the LearningTask entities in the database.
func (_c *LearningTaskCreateBulk) Save(ctx context.Context) ([]*LearningTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningTaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LearningTaskCreateBulk) SaveX(ctx context.Context) []*LearningTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
