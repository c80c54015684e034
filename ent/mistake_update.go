// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tmaru/lexiquest/ent/mistake"
	"github.com/tmaru/lexiquest/ent/predicate"
)

// MistakeUpdate is the builder for updating Mistake entities.
type MistakeUpdate struct {
	config
	hooks    []Hook
	mutation *MistakeMutation
}

// Where appends a list predicates to the MistakeUpdate builder.
func (_u *MistakeUpdate) Where(ps ...predicate.Mistake) *MistakeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMistakeID sets the "mistake_id" field.
func (_u *MistakeUpdate) SetMistakeID(v string) *MistakeUpdate {
	_u.mutation.SetMistakeID(v)
	return _u
}

// SetNillableMistakeID sets the "mistake_id" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableMistakeID(v *string) *MistakeUpdate {
	if v != nil {
		_u.SetMistakeID(*v)
	}
	return _u
}

// SetQuestionHash sets the "question_hash" field.
func (_u *MistakeUpdate) SetQuestionHash(v string) *MistakeUpdate {
	_u.mutation.SetQuestionHash(v)
	return _u
}

// SetNillableQuestionHash sets the "question_hash" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableQuestionHash(v *string) *MistakeUpdate {
	if v != nil {
		_u.SetQuestionHash(*v)
	}
	return _u
}

// SetSkillTag sets the "skill_tag" field.
func (_u *MistakeUpdate) SetSkillTag(v string) *MistakeUpdate {
	_u.mutation.SetSkillTag(v)
	return _u
}

// SetNillableSkillTag sets the "skill_tag" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableSkillTag(v *string) *MistakeUpdate {
	if v != nil {
		_u.SetSkillTag(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *MistakeUpdate) SetQuestionText(v string) *MistakeUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableQuestionText(v *string) *MistakeUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *MistakeUpdate) SetCorrectAnswer(v string) *MistakeUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableCorrectAnswer(v *string) *MistakeUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_u *MistakeUpdate) SetLearnerAnswer(v string) *MistakeUpdate {
	_u.mutation.SetLearnerAnswer(v)
	return _u
}

// SetNillableLearnerAnswer sets the "learner_answer" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableLearnerAnswer(v *string) *MistakeUpdate {
	if v != nil {
		_u.SetLearnerAnswer(*v)
	}
	return _u
}

// SetCauseTag sets the "cause_tag" field.
func (_u *MistakeUpdate) SetCauseTag(v string) *MistakeUpdate {
	_u.mutation.SetCauseTag(v)
	return _u
}

// SetNillableCauseTag sets the "cause_tag" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableCauseTag(v *string) *MistakeUpdate {
	if v != nil {
		_u.SetCauseTag(*v)
	}
	return _u
}

// SetMentorAnalysis sets the "mentor_analysis" field.
func (_u *MistakeUpdate) SetMentorAnalysis(v string) *MistakeUpdate {
	_u.mutation.SetMentorAnalysis(v)
	return _u
}

// SetNillableMentorAnalysis sets the "mentor_analysis" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableMentorAnalysis(v *string) *MistakeUpdate {
	if v != nil {
		_u.SetMentorAnalysis(*v)
	}
	return _u
}

// SetRevengeQuestion sets the "revenge_question" field.
func (_u *MistakeUpdate) SetRevengeQuestion(v map[string]interface{}) *MistakeUpdate {
	_u.mutation.SetRevengeQuestion(v)
	return _u
}

// ClearRevengeQuestion clears the value of the "revenge_question" field.
func (_u *MistakeUpdate) ClearRevengeQuestion() *MistakeUpdate {
	_u.mutation.ClearRevengeQuestion()
	return _u
}

// Mutation returns the MistakeMutation object of the builder.
func (_u *MistakeUpdate) Mutation() *MistakeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MistakeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MistakeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MistakeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MistakeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MistakeUpdate) check() error {
	if v, ok := _u.mutation.MistakeID(); ok {
		if err := mistake.MistakeIDValidator(v); err != nil {
			return &ValidationError{Name: "mistake_id", err: fmt.Errorf(`ent: validator failed for field "Mistake.mistake_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := mistake.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "Mistake.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := mistake.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "Mistake.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerAnswer(); ok {
		if err := mistake.LearnerAnswerValidator(v); err != nil {
			return &ValidationError{Name: "learner_answer", err: fmt.Errorf(`ent: validator failed for field "Mistake.learner_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *MistakeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mistake.Table, mistake.Columns, sqlgraph.NewFieldSpec(mistake.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MistakeID(); ok {
		_spec.SetField(mistake.FieldMistakeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionHash(); ok {
		_spec.SetField(mistake.FieldQuestionHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillTag(); ok {
		_spec.SetField(mistake.FieldSkillTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(mistake.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(mistake.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerAnswer(); ok {
		_spec.SetField(mistake.FieldLearnerAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.CauseTag(); ok {
		_spec.SetField(mistake.FieldCauseTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.MentorAnalysis(); ok {
		_spec.SetField(mistake.FieldMentorAnalysis, field.TypeString, value)
	}
	if value, ok := _u.mutation.RevengeQuestion(); ok {
		_spec.SetField(mistake.FieldRevengeQuestion, field.TypeJSON, value)
	}
	if _u.mutation.RevengeQuestionCleared() {
		_spec.ClearField(mistake.FieldRevengeQuestion, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mistake.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MistakeUpdateOne is the builder for updating a single Mistake entity.
type MistakeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MistakeMutation
}

// SetMistakeID sets the "mistake_id" field.
func (_u *MistakeUpdateOne) SetMistakeID(v string) *MistakeUpdateOne {
	_u.mutation.SetMistakeID(v)
	return _u
}

// SetNillableMistakeID sets the "mistake_id" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableMistakeID(v *string) *MistakeUpdateOne {
	if v != nil {
		_u.SetMistakeID(*v)
	}
	return _u
}

// SetQuestionHash sets the "question_hash" field.
func (_u *MistakeUpdateOne) SetQuestionHash(v string) *MistakeUpdateOne {
	_u.mutation.SetQuestionHash(v)
	return _u
}

// SetNillableQuestionHash sets the "question_hash" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableQuestionHash(v *string) *MistakeUpdateOne {
	if v != nil {
		_u.SetQuestionHash(*v)
	}
	return _u
}

// SetSkillTag sets the "skill_tag" field.
func (_u *MistakeUpdateOne) SetSkillTag(v string) *MistakeUpdateOne {
	_u.mutation.SetSkillTag(v)
	return _u
}

// SetNillableSkillTag sets the "skill_tag" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableSkillTag(v *string) *MistakeUpdateOne {
	if v != nil {
		_u.SetSkillTag(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *MistakeUpdateOne) SetQuestionText(v string) *MistakeUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableQuestionText(v *string) *MistakeUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *MistakeUpdateOne) SetCorrectAnswer(v string) *MistakeUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableCorrectAnswer(v *string) *MistakeUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_u *MistakeUpdateOne) SetLearnerAnswer(v string) *MistakeUpdateOne {
	_u.mutation.SetLearnerAnswer(v)
	return _u
}

// SetNillableLearnerAnswer sets the "learner_answer" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableLearnerAnswer(v *string) *MistakeUpdateOne {
	if v != nil {
		_u.SetLearnerAnswer(*v)
	}
	return _u
}

// SetCauseTag sets the "cause_tag" field.
func (_u *MistakeUpdateOne) SetCauseTag(v string) *MistakeUpdateOne {
	_u.mutation.SetCauseTag(v)
	return _u
}

// SetNillableCauseTag sets the "cause_tag" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableCauseTag(v *string) *MistakeUpdateOne {
	if v != nil {
		_u.SetCauseTag(*v)
	}
	return _u
}

// SetMentorAnalysis sets the "mentor_analysis" field.
func (_u *MistakeUpdateOne) SetMentorAnalysis(v string) *MistakeUpdateOne {
	_u.mutation.SetMentorAnalysis(v)
	return _u
}

// SetNillableMentorAnalysis sets the "mentor_analysis" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableMentorAnalysis(v *string) *MistakeUpdateOne {
	if v != nil {
		_u.SetMentorAnalysis(*v)
	}
	return _u
}

// SetRevengeQuestion sets the "revenge_question" field.
func (_u *MistakeUpdateOne) SetRevengeQuestion(v map[string]interface{}) *MistakeUpdateOne {
	_u.mutation.SetRevengeQuestion(v)
	return _u
}

// ClearRevengeQuestion clears the value of the "revenge_question" field.
func (_u *MistakeUpdateOne) ClearRevengeQuestion() *MistakeUpdateOne {
	_u.mutation.ClearRevengeQuestion()
	return _u
}

// Mutation returns the MistakeMutation object of the builder.
func (_u *MistakeUpdateOne) Mutation() *MistakeMutation {
	return _u.mutation
}

// Where appends a list predicates to the MistakeUpdate builder.
func (_u *MistakeUpdateOne) Where(ps ...predicate.Mistake) *MistakeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MistakeUpdateOne) Select(field string, fields ...string) *MistakeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Mistake entity.
func (_u *MistakeUpdateOne) Save(ctx context.Context) (*Mistake, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MistakeUpdateOne) SaveX(ctx context.Context) *Mistake {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MistakeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MistakeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MistakeUpdateOne) check() error {
	if v, ok := _u.mutation.MistakeID(); ok {
		if err := mistake.MistakeIDValidator(v); err != nil {
			return &ValidationError{Name: "mistake_id", err: fmt.Errorf(`ent: validator failed for field "Mistake.mistake_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := mistake.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "Mistake.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := mistake.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "Mistake.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerAnswer(); ok {
		if err := mistake.LearnerAnswerValidator(v); err != nil {
			return &ValidationError{Name: "learner_answer", err: fmt.Errorf(`ent: validator failed for field "Mistake.learner_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *MistakeUpdateOne) sqlSave(ctx context.Context) (_node *Mistake, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mistake.Table, mistake.Columns, sqlgraph.NewFieldSpec(mistake.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Mistake.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mistake.FieldID)
		for _, f := range fields {
			if !mistake.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mistake.FieldID {
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
	if value, ok := _u.mutation.MistakeID(); ok {
		_spec.SetField(mistake.FieldMistakeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionHash(); ok {
		_spec.SetField(mistake.FieldQuestionHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillTag(); ok {
		_spec.SetField(mistake.FieldSkillTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(mistake.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(mistake.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerAnswer(); ok {
		_spec.SetField(mistake.FieldLearnerAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.CauseTag(); ok {
		_spec.SetField(mistake.FieldCauseTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.MentorAnalysis(); ok {
		_spec.SetField(mistake.FieldMentorAnalysis, field.TypeString, value)
	}
	if value, ok := _u.mutation.RevengeQuestion(); ok {
		_spec.SetField(mistake.FieldRevengeQuestion, field.TypeJSON, value)
	}
	if _u.mutation.RevengeQuestionCleared() {
		_spec.ClearField(mistake.FieldRevengeQuestion, field.TypeJSON)
	}
	_node = &Mistake{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mistake.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
