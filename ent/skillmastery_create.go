// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tmaru/lexiquest/ent/skillmastery"
)

// SkillMasteryCreate is the builder for creating a SkillMastery entity.
type SkillMasteryCreate struct {
	config
	mutation *SkillMasteryMutation
	hooks    []Hook
}

// SetSkillTag sets the "skill_tag" field.
func (_c *SkillMasteryCreate) SetSkillTag(v string) *SkillMasteryCreate {
	_c.mutation.SetSkillTag(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *SkillMasteryCreate) SetScore(v float64) *SkillMasteryCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *SkillMasteryCreate) SetNillableScore(v *float64) *SkillMasteryCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *SkillMasteryCreate) SetState(v string) *SkillMasteryCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *SkillMasteryCreate) SetNillableState(v *string) *SkillMasteryCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *SkillMasteryCreate) SetAttempts(v int) *SkillMasteryCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *SkillMasteryCreate) SetNillableAttempts(v *int) *SkillMasteryCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *SkillMasteryCreate) SetCorrect(v int) *SkillMasteryCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *SkillMasteryCreate) SetNillableCorrect(v *int) *SkillMasteryCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_c *SkillMasteryCreate) SetLastReviewedAt(v time.Time) *SkillMasteryCreate {
	_c.mutation.SetLastReviewedAt(v)
	return _c
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_c *SkillMasteryCreate) SetNillableLastReviewedAt(v *time.Time) *SkillMasteryCreate {
	if v != nil {
		_c.SetLastReviewedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SkillMasteryCreate) SetUpdatedAt(v time.Time) *SkillMasteryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SkillMasteryCreate) SetNillableUpdatedAt(v *time.Time) *SkillMasteryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SkillMasteryMutation object of the builder.
func (_c *SkillMasteryCreate) Mutation() *SkillMasteryMutation {
	return _c.mutation
}

// Save creates the SkillMastery in the database.
func (_c *SkillMasteryCreate) Save(ctx context.Context) (*SkillMastery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SkillMasteryCreate) SaveX(ctx context.Context) *SkillMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillMasteryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillMasteryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SkillMasteryCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := skillmastery.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := skillmastery.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := skillmastery.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := skillmastery.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := skillmastery.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SkillMasteryCreate) check() error {
	if _, ok := _c.mutation.SkillTag(); !ok {
		return &ValidationError{Name: "skill_tag", err: errors.New(`ent: missing required field "SkillMastery.skill_tag"`)}
	}
	if v, ok := _c.mutation.SkillTag(); ok {
		if err := skillmastery.SkillTagValidator(v); err != nil {
			return &ValidationError{Name: "skill_tag", err: fmt.Errorf(`ent: validator failed for field "SkillMastery.skill_tag": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "SkillMastery.score"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "SkillMastery.state"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "SkillMastery.attempts"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "SkillMastery.correct"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SkillMastery.updated_at"`)}
	}
	return nil
}

func (_c *SkillMasteryCreate) sqlSave(ctx context.Context) (*SkillMastery, error) {
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

func (_c *SkillMasteryCreate) createSpec() (*SkillMastery, *sqlgraph.CreateSpec) {
	var (
		_node = &SkillMastery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(skillmastery.Table, sqlgraph.NewFieldSpec(skillmastery.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SkillTag(); ok {
		_spec.SetField(skillmastery.FieldSkillTag, field.TypeString, value)
		_node.SkillTag = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(skillmastery.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(skillmastery.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(skillmastery.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(skillmastery.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.LastReviewedAt(); ok {
		_spec.SetField(skillmastery.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(skillmastery.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SkillMasteryCreateBulk is the builder for creating many SkillMastery entities in bulk.
type SkillMasteryCreateBulk struct {
	config
	err      error
	builders []*SkillMasteryCreate
}

// Save creates the SkillMastery entities in the database.
func (_c *SkillMasteryCreateBulk) Save(ctx context.Context) ([]*SkillMastery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SkillMastery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillMasteryMutation)
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
func (_c *SkillMasteryCreateBulk) SaveX(ctx context.Context) []*SkillMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillMasteryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillMasteryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
