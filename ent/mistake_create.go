// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tmaru/lexiquest/ent/mistake"
)

// MistakeCreate is the builder for creating a Mistake entity.
type MistakeCreate struct {
	config
	mutation *MistakeMutation
	hooks    []Hook
}

// SetMistakeID sets the "mistake_id" field.
func (_c *MistakeCreate) SetMistakeID(v string) *MistakeCreate {
	_c.mutation.SetMistakeID(v)
	return _c
}

// SetQuestionHash sets the "question_hash" field.
func (_c *MistakeCreate) SetQuestionHash(v string) *MistakeCreate {
	_c.mutation.SetQuestionHash(v)
	return _c
}

// SetNillableQuestionHash sets the "question_hash" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableQuestionHash(v *string) *MistakeCreate {
	if v != nil {
		_c.SetQuestionHash(*v)
	}
	return _c
}

// SetSkillTag sets the "skill_tag" field.
func (_c *MistakeCreate) SetSkillTag(v string) *MistakeCreate {
	_c.mutation.SetSkillTag(v)
	return _c
}

// SetNillableSkillTag sets the "skill_tag" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableSkillTag(v *string) *MistakeCreate {
	if v != nil {
		_c.SetSkillTag(*v)
	}
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *MistakeCreate) SetQuestionText(v string) *MistakeCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *MistakeCreate) SetCorrectAnswer(v string) *MistakeCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_c *MistakeCreate) SetLearnerAnswer(v string) *MistakeCreate {
	_c.mutation.SetLearnerAnswer(v)
	return _c
}

// SetCauseTag sets the "cause_tag" field.
func (_c *MistakeCreate) SetCauseTag(v string) *MistakeCreate {
	_c.mutation.SetCauseTag(v)
	return _c
}

// SetNillableCauseTag sets the "cause_tag" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableCauseTag(v *string) *MistakeCreate {
	if v != nil {
		_c.SetCauseTag(*v)
	}
	return _c
}

// SetMentorAnalysis sets the "mentor_analysis" field.
func (_c *MistakeCreate) SetMentorAnalysis(v string) *MistakeCreate {
	_c.mutation.SetMentorAnalysis(v)
	return _c
}

// SetNillableMentorAnalysis sets the "mentor_analysis" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableMentorAnalysis(v *string) *MistakeCreate {
	if v != nil {
		_c.SetMentorAnalysis(*v)
	}
	return _c
}

// SetRevengeQuestion sets the "revenge_question" field.
func (_c *MistakeCreate) SetRevengeQuestion(v map[string]interface{}) *MistakeCreate {
	_c.mutation.SetRevengeQuestion(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MistakeCreate) SetCreatedAt(v time.Time) *MistakeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableCreatedAt(v *time.Time) *MistakeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the MistakeMutation object of the builder.
func (_c *MistakeCreate) Mutation() *MistakeMutation {
	return _c.mutation
}

// Save creates the Mistake in the database.
func (_c *MistakeCreate) Save(ctx context.Context) (*Mistake, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MistakeCreate) SaveX(ctx context.Context) *Mistake {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MistakeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MistakeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MistakeCreate) defaults() {
	if _, ok := _c.mutation.QuestionHash(); !ok {
		v := mistake.DefaultQuestionHash
		_c.mutation.SetQuestionHash(v)
	}
	if _, ok := _c.mutation.SkillTag(); !ok {
		v := mistake.DefaultSkillTag
		_c.mutation.SetSkillTag(v)
	}
	if _, ok := _c.mutation.CauseTag(); !ok {
		v := mistake.DefaultCauseTag
		_c.mutation.SetCauseTag(v)
	}
	if _, ok := _c.mutation.MentorAnalysis(); !ok {
		v := mistake.DefaultMentorAnalysis
		_c.mutation.SetMentorAnalysis(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mistake.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MistakeCreate) check() error {
	if _, ok := _c.mutation.MistakeID(); !ok {
		return &ValidationError{Name: "mistake_id", err: errors.New(`ent: missing required field "Mistake.mistake_id"`)}
	}
	if v, ok := _c.mutation.MistakeID(); ok {
		if err := mistake.MistakeIDValidator(v); err != nil {
			return &ValidationError{Name: "mistake_id", err: fmt.Errorf(`ent: validator failed for field "Mistake.mistake_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionHash(); !ok {
		return &ValidationError{Name: "question_hash", err: errors.New(`ent: missing required field "Mistake.question_hash"`)}
	}
	if _, ok := _c.mutation.SkillTag(); !ok {
		return &ValidationError{Name: "skill_tag", err: errors.New(`ent: missing required field "Mistake.skill_tag"`)}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "Mistake.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := mistake.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "Mistake.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "Mistake.correct_answer"`)}
	}
	if v, ok := _c.mutation.CorrectAnswer(); ok {
		if err := mistake.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "Mistake.correct_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerAnswer(); !ok {
		return &ValidationError{Name: "learner_answer", err: errors.New(`ent: missing required field "Mistake.learner_answer"`)}
	}
	if v, ok := _c.mutation.LearnerAnswer(); ok {
		if err := mistake.LearnerAnswerValidator(v); err != nil {
			return &ValidationError{Name: "learner_answer", err: fmt.Errorf(`ent: validator failed for field "Mistake.learner_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CauseTag(); !ok {
		return &ValidationError{Name: "cause_tag", err: errors.New(`ent: missing required field "Mistake.cause_tag"`)}
	}
	if _, ok := _c.mutation.MentorAnalysis(); !ok {
		return &ValidationError{Name: "mentor_analysis", err: errors.New(`ent: missing required field "Mistake.mentor_analysis"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Mistake.created_at"`)}
	}
	return nil
}

func (_c *MistakeCreate) sqlSave(ctx context.Context) (*Mistake, error) {
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

func (_c *MistakeCreate) createSpec() (*Mistake, *sqlgraph.CreateSpec) {
	var (
		_node = &Mistake{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mistake.Table, sqlgraph.NewFieldSpec(mistake.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.MistakeID(); ok {
		_spec.SetField(mistake.FieldMistakeID, field.TypeString, value)
		_node.MistakeID = value
	}
	if value, ok := _c.mutation.QuestionHash(); ok {
		_spec.SetField(mistake.FieldQuestionHash, field.TypeString, value)
		_node.QuestionHash = value
	}
	if value, ok := _c.mutation.SkillTag(); ok {
		_spec.SetField(mistake.FieldSkillTag, field.TypeString, value)
		_node.SkillTag = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(mistake.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(mistake.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.LearnerAnswer(); ok {
		_spec.SetField(mistake.FieldLearnerAnswer, field.TypeString, value)
		_node.LearnerAnswer = value
	}
	if value, ok := _c.mutation.CauseTag(); ok {
		_spec.SetField(mistake.FieldCauseTag, field.TypeString, value)
		_node.CauseTag = value
	}
	if value, ok := _c.mutation.MentorAnalysis(); ok {
		_spec.SetField(mistake.FieldMentorAnalysis, field.TypeString, value)
		_node.MentorAnalysis = value
	}
	if value, ok := _c.mutation.RevengeQuestion(); ok {
		_spec.SetField(mistake.FieldRevengeQuestion, field.TypeJSON, value)
		_node.RevengeQuestion = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mistake.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// MistakeCreateBulk is the builder for creating many Mistake entities in bulk.
type MistakeCreateBulk struct {
	config
	err      error
	builders []*MistakeCreate
}

// Save creates the Mistake entities in the database.
func (_c *MistakeCreateBulk) Save(ctx context.Context) ([]*Mistake, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Mistake, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MistakeMutation)
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
func (_c *MistakeCreateBulk) SaveX(ctx context.Context) []*Mistake {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MistakeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MistakeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
