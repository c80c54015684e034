// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tmaru/lexiquest/ent/reviewcard"
)

// ReviewCardCreate is the builder for creating a ReviewCard entity.
type ReviewCardCreate struct {
	config
	mutation *ReviewCardMutation
	hooks    []Hook
}

// SetQuestionHash sets the "question_hash" field.
func (_c *ReviewCardCreate) SetQuestionHash(v string) *ReviewCardCreate {
	_c.mutation.SetQuestionHash(v)
	return _c
}

// SetDue sets the "due" field.
func (_c *ReviewCardCreate) SetDue(v time.Time) *ReviewCardCreate {
	_c.mutation.SetDue(v)
	return _c
}

// SetStability sets the "stability" field.
func (_c *ReviewCardCreate) SetStability(v float64) *ReviewCardCreate {
	_c.mutation.SetStability(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ReviewCardCreate) SetDifficulty(v float64) *ReviewCardCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetElapsedDays sets the "elapsed_days" field.
func (_c *ReviewCardCreate) SetElapsedDays(v float64) *ReviewCardCreate {
	_c.mutation.SetElapsedDays(v)
	return _c
}

// SetNillableElapsedDays sets the "elapsed_days" field if the given value is not nil.
func (_c *ReviewCardCreate) SetNillableElapsedDays(v *float64) *ReviewCardCreate {
	if v != nil {
		_c.SetElapsedDays(*v)
	}
	return _c
}

// SetScheduledDays sets the "scheduled_days" field.
func (_c *ReviewCardCreate) SetScheduledDays(v float64) *ReviewCardCreate {
	_c.mutation.SetScheduledDays(v)
	return _c
}

// SetNillableScheduledDays sets the "scheduled_days" field if the given value is not nil.
func (_c *ReviewCardCreate) SetNillableScheduledDays(v *float64) *ReviewCardCreate {
	if v != nil {
		_c.SetScheduledDays(*v)
	}
	return _c
}

// SetReps sets the "reps" field.
func (_c *ReviewCardCreate) SetReps(v int) *ReviewCardCreate {
	_c.mutation.SetReps(v)
	return _c
}

// SetNillableReps sets the "reps" field if the given value is not nil.
func (_c *ReviewCardCreate) SetNillableReps(v *int) *ReviewCardCreate {
	if v != nil {
		_c.SetReps(*v)
	}
	return _c
}

// SetLapses sets the "lapses" field.
func (_c *ReviewCardCreate) SetLapses(v int) *ReviewCardCreate {
	_c.mutation.SetLapses(v)
	return _c
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_c *ReviewCardCreate) SetNillableLapses(v *int) *ReviewCardCreate {
	if v != nil {
		_c.SetLapses(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *ReviewCardCreate) SetState(v string) *ReviewCardCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ReviewCardCreate) SetNillableState(v *string) *ReviewCardCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetLastReview sets the "last_review" field.
func (_c *ReviewCardCreate) SetLastReview(v time.Time) *ReviewCardCreate {
	_c.mutation.SetLastReview(v)
	return _c
}

// SetNillableLastReview sets the "last_review" field if the given value is not nil.
func (_c *ReviewCardCreate) SetNillableLastReview(v *time.Time) *ReviewCardCreate {
	if v != nil {
		_c.SetLastReview(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ReviewCardCreate) SetPayload(v map[string]interface{}) *ReviewCardCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// Mutation returns the ReviewCardMutation object of the builder.
func (_c *ReviewCardCreate) Mutation() *ReviewCardMutation {
	return _c.mutation
}

// Save creates the ReviewCard in the database.
func (_c *ReviewCardCreate) Save(ctx context.Context) (*ReviewCard, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewCardCreate) SaveX(ctx context.Context) *ReviewCard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewCardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewCardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewCardCreate) defaults() {
	if _, ok := _c.mutation.ElapsedDays(); !ok {
		v := reviewcard.DefaultElapsedDays
		_c.mutation.SetElapsedDays(v)
	}
	if _, ok := _c.mutation.ScheduledDays(); !ok {
		v := reviewcard.DefaultScheduledDays
		_c.mutation.SetScheduledDays(v)
	}
	if _, ok := _c.mutation.Reps(); !ok {
		v := reviewcard.DefaultReps
		_c.mutation.SetReps(v)
	}
	if _, ok := _c.mutation.Lapses(); !ok {
		v := reviewcard.DefaultLapses
		_c.mutation.SetLapses(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := reviewcard.DefaultState
		_c.mutation.SetState(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewCardCreate) check() error {
	if _, ok := _c.mutation.QuestionHash(); !ok {
		return &ValidationError{Name: "question_hash", err: errors.New(`ent: missing required field "ReviewCard.question_hash"`)}
	}
	if v, ok := _c.mutation.QuestionHash(); ok {
		if err := reviewcard.QuestionHashValidator(v); err != nil {
			return &ValidationError{Name: "question_hash", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.question_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Due(); !ok {
		return &ValidationError{Name: "due", err: errors.New(`ent: missing required field "ReviewCard.due"`)}
	}
	if _, ok := _c.mutation.Stability(); !ok {
		return &ValidationError{Name: "stability", err: errors.New(`ent: missing required field "ReviewCard.stability"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "ReviewCard.difficulty"`)}
	}
	if _, ok := _c.mutation.ElapsedDays(); !ok {
		return &ValidationError{Name: "elapsed_days", err: errors.New(`ent: missing required field "ReviewCard.elapsed_days"`)}
	}
	if _, ok := _c.mutation.ScheduledDays(); !ok {
		return &ValidationError{Name: "scheduled_days", err: errors.New(`ent: missing required field "ReviewCard.scheduled_days"`)}
	}
	if _, ok := _c.mutation.Reps(); !ok {
		return &ValidationError{Name: "reps", err: errors.New(`ent: missing required field "ReviewCard.reps"`)}
	}
	if _, ok := _c.mutation.Lapses(); !ok {
		return &ValidationError{Name: "lapses", err: errors.New(`ent: missing required field "ReviewCard.lapses"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "ReviewCard.state"`)}
	}
	return nil
}

func (_c *ReviewCardCreate) sqlSave(ctx context.Context) (*ReviewCard, error) {
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

func (_c *ReviewCardCreate) createSpec() (*ReviewCard, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewCard{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewcard.Table, sqlgraph.NewFieldSpec(reviewcard.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.QuestionHash(); ok {
		_spec.SetField(reviewcard.FieldQuestionHash, field.TypeString, value)
		_node.QuestionHash = value
	}
	if value, ok := _c.mutation.Due(); ok {
		_spec.SetField(reviewcard.FieldDue, field.TypeTime, value)
		_node.Due = value
	}
	if value, ok := _c.mutation.Stability(); ok {
		_spec.SetField(reviewcard.FieldStability, field.TypeFloat64, value)
		_node.Stability = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(reviewcard.FieldDifficulty, field.TypeFloat64, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.ElapsedDays(); ok {
		_spec.SetField(reviewcard.FieldElapsedDays, field.TypeFloat64, value)
		_node.ElapsedDays = value
	}
	if value, ok := _c.mutation.ScheduledDays(); ok {
		_spec.SetField(reviewcard.FieldScheduledDays, field.TypeFloat64, value)
		_node.ScheduledDays = value
	}
	if value, ok := _c.mutation.Reps(); ok {
		_spec.SetField(reviewcard.FieldReps, field.TypeInt, value)
		_node.Reps = value
	}
	if value, ok := _c.mutation.Lapses(); ok {
		_spec.SetField(reviewcard.FieldLapses, field.TypeInt, value)
		_node.Lapses = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(reviewcard.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.LastReview(); ok {
		_spec.SetField(reviewcard.FieldLastReview, field.TypeTime, value)
		_node.LastReview = &value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(reviewcard.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	return _node, _spec
}

// ReviewCardCreateBulk is the builder for creating many ReviewCard entities in bulk.
type ReviewCardCreateBulk struct {
	config
	err      error
	builders []*ReviewCardCreate
}

// Save creates the ReviewCard entities in the database.
func (_c *ReviewCardCreateBulk) Save(ctx context.Context) ([]*ReviewCard, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewCard, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewCardMutation)
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
func (_c *ReviewCardCreateBulk) SaveX(ctx context.Context) []*ReviewCard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewCardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewCardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
