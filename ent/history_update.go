// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/tmaru/lexiquest/ent/history"
	"github.com/tmaru/lexiquest/ent/predicate"
	"github.com/tmaru/lexiquest/ent/schema"
)

// HistoryUpdate is the builder for updating History entities.
type HistoryUpdate struct {
	config
	hooks    []Hook
	mutation *HistoryMutation
}

// Where appends a list predicates to the HistoryUpdate builder.
func (_u *HistoryUpdate) Where(ps ...predicate.History) *HistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScore sets the "score" field.
func (_u *HistoryUpdate) SetScore(v int) *HistoryUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *HistoryUpdate) SetNillableScore(v *int) *HistoryUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *HistoryUpdate) AddScore(v int) *HistoryUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *HistoryUpdate) SetTotalQuestions(v int) *HistoryUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *HistoryUpdate) SetNillableTotalQuestions(v *int) *HistoryUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *HistoryUpdate) AddTotalQuestions(v int) *HistoryUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetTotalCorrect sets the "total_correct" field.
func (_u *HistoryUpdate) SetTotalCorrect(v int) *HistoryUpdate {
	_u.mutation.ResetTotalCorrect()
	_u.mutation.SetTotalCorrect(v)
	return _u
}

// SetNillableTotalCorrect sets the "total_correct" field if the given value is not nil.
func (_u *HistoryUpdate) SetNillableTotalCorrect(v *int) *HistoryUpdate {
	if v != nil {
		_u.SetTotalCorrect(*v)
	}
	return _u
}

// AddTotalCorrect adds value to the "total_correct" field.
func (_u *HistoryUpdate) AddTotalCorrect(v int) *HistoryUpdate {
	_u.mutation.AddTotalCorrect(v)
	return _u
}

// SetSkillStats sets the "skill_stats" field.
func (_u *HistoryUpdate) SetSkillStats(v []schema.SkillStat) *HistoryUpdate {
	_u.mutation.SetSkillStats(v)
	return _u
}

// AppendSkillStats appends value to the "skill_stats" field.
func (_u *HistoryUpdate) AppendSkillStats(v []schema.SkillStat) *HistoryUpdate {
	_u.mutation.AppendSkillStats(v)
	return _u
}

// ClearSkillStats clears the value of the "skill_stats" field.
func (_u *HistoryUpdate) ClearSkillStats() *HistoryUpdate {
	_u.mutation.ClearSkillStats()
	return _u
}

// SetLevelTitle sets the "level_title" field.
func (_u *HistoryUpdate) SetLevelTitle(v string) *HistoryUpdate {
	_u.mutation.SetLevelTitle(v)
	return _u
}

// SetNillableLevelTitle sets the "level_title" field if the given value is not nil.
func (_u *HistoryUpdate) SetNillableLevelTitle(v *string) *HistoryUpdate {
	if v != nil {
		_u.SetLevelTitle(*v)
	}
	return _u
}

// Mutation returns the HistoryMutation object of the builder.
func (_u *HistoryUpdate) Mutation() *HistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *HistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(history.Table, history.Columns, sqlgraph.NewFieldSpec(history.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(history.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(history.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(history.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(history.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCorrect(); ok {
		_spec.SetField(history.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCorrect(); ok {
		_spec.AddField(history.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkillStats(); ok {
		_spec.SetField(history.FieldSkillStats, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkillStats(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, history.FieldSkillStats, value)
		})
	}
	if _u.mutation.SkillStatsCleared() {
		_spec.ClearField(history.FieldSkillStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.LevelTitle(); ok {
		_spec.SetField(history.FieldLevelTitle, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{history.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HistoryUpdateOne is the builder for updating a single History entity.
type HistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HistoryMutation
}

// SetScore sets the "score" field.
func (_u *HistoryUpdateOne) SetScore(v int) *HistoryUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *HistoryUpdateOne) SetNillableScore(v *int) *HistoryUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *HistoryUpdateOne) AddScore(v int) *HistoryUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *HistoryUpdateOne) SetTotalQuestions(v int) *HistoryUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *HistoryUpdateOne) SetNillableTotalQuestions(v *int) *HistoryUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *HistoryUpdateOne) AddTotalQuestions(v int) *HistoryUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetTotalCorrect sets the "total_correct" field.
func (_u *HistoryUpdateOne) SetTotalCorrect(v int) *HistoryUpdateOne {
	_u.mutation.ResetTotalCorrect()
	_u.mutation.SetTotalCorrect(v)
	return _u
}

// SetNillableTotalCorrect sets the "total_correct" field if the given value is not nil.
func (_u *HistoryUpdateOne) SetNillableTotalCorrect(v *int) *HistoryUpdateOne {
	if v != nil {
		_u.SetTotalCorrect(*v)
	}
	return _u
}

// AddTotalCorrect adds value to the "total_correct" field.
func (_u *HistoryUpdateOne) AddTotalCorrect(v int) *HistoryUpdateOne {
	_u.mutation.AddTotalCorrect(v)
	return _u
}

// SetSkillStats sets the "skill_stats" field.
func (_u *HistoryUpdateOne) SetSkillStats(v []schema.SkillStat) *HistoryUpdateOne {
	_u.mutation.SetSkillStats(v)
	return _u
}

// AppendSkillStats appends value to the "skill_stats" field.
func (_u *HistoryUpdateOne) AppendSkillStats(v []schema.SkillStat) *HistoryUpdateOne {
	_u.mutation.AppendSkillStats(v)
	return _u
}

// ClearSkillStats clears the value of the "skill_stats" field.
func (_u *HistoryUpdateOne) ClearSkillStats() *HistoryUpdateOne {
	_u.mutation.ClearSkillStats()
	return _u
}

// SetLevelTitle sets the "level_title" field.
func (_u *HistoryUpdateOne) SetLevelTitle(v string) *HistoryUpdateOne {
	_u.mutation.SetLevelTitle(v)
	return _u
}

// SetNillableLevelTitle sets the "level_title" field if the given value is not nil.
func (_u *HistoryUpdateOne) SetNillableLevelTitle(v *string) *HistoryUpdateOne {
	if v != nil {
		_u.SetLevelTitle(*v)
	}
	return _u
}

// Mutation returns the HistoryMutation object of the builder.
func (_u *HistoryUpdateOne) Mutation() *HistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the HistoryUpdate builder.
func (_u *HistoryUpdateOne) Where(ps ...predicate.History) *HistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HistoryUpdateOne) Select(field string, fields ...string) *HistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated History entity.
func (_u *HistoryUpdateOne) Save(ctx context.Context) (*History, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HistoryUpdateOne) SaveX(ctx context.Context) *History {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *HistoryUpdateOne) sqlSave(ctx context.Context) (_node *History, err error) {
	_spec := sqlgraph.NewUpdateSpec(history.Table, history.Columns, sqlgraph.NewFieldSpec(history.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "History.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, history.FieldID)
		for _, f := range fields {
			if !history.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != history.FieldID {
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
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(history.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(history.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(history.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(history.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCorrect(); ok {
		_spec.SetField(history.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCorrect(); ok {
		_spec.AddField(history.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkillStats(); ok {
		_spec.SetField(history.FieldSkillStats, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkillStats(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, history.FieldSkillStats, value)
		})
	}
	if _u.mutation.SkillStatsCleared() {
		_spec.ClearField(history.FieldSkillStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.LevelTitle(); ok {
		_spec.SetField(history.FieldLevelTitle, field.TypeString, value)
	}
	_node = &History{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{history.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
