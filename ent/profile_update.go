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
	"github.com/tmaru/lexiquest/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWordsLearned sets the "words_learned" field.
func (_u *ProfileUpdate) SetWordsLearned(v int) *ProfileUpdate {
	_u.mutation.ResetWordsLearned()
	_u.mutation.SetWordsLearned(v)
	return _u
}

// SetNillableWordsLearned sets the "words_learned" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableWordsLearned(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetWordsLearned(*v)
	}
	return _u
}

// AddWordsLearned adds value to the "words_learned" field.
func (_u *ProfileUpdate) AddWordsLearned(v int) *ProfileUpdate {
	_u.mutation.AddWordsLearned(v)
	return _u
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (_u *ProfileUpdate) SetLessonsCompleted(v int) *ProfileUpdate {
	_u.mutation.ResetLessonsCompleted()
	_u.mutation.SetLessonsCompleted(v)
	return _u
}

// SetNillableLessonsCompleted sets the "lessons_completed" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLessonsCompleted(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetLessonsCompleted(*v)
	}
	return _u
}

// AddLessonsCompleted adds value to the "lessons_completed" field.
func (_u *ProfileUpdate) AddLessonsCompleted(v int) *ProfileUpdate {
	_u.mutation.AddLessonsCompleted(v)
	return _u
}

// SetTotalXp sets the "total_xp" field.
func (_u *ProfileUpdate) SetTotalXp(v int) *ProfileUpdate {
	_u.mutation.ResetTotalXp()
	_u.mutation.SetTotalXp(v)
	return _u
}

// SetNillableTotalXp sets the "total_xp" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableTotalXp(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetTotalXp(*v)
	}
	return _u
}

// AddTotalXp adds value to the "total_xp" field.
func (_u *ProfileUpdate) AddTotalXp(v int) *ProfileUpdate {
	_u.mutation.AddTotalXp(v)
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *ProfileUpdate) SetCurrentStreak(v int) *ProfileUpdate {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableCurrentStreak(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *ProfileUpdate) AddCurrentStreak(v int) *ProfileUpdate {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetBestStreak sets the "best_streak" field.
func (_u *ProfileUpdate) SetBestStreak(v int) *ProfileUpdate {
	_u.mutation.ResetBestStreak()
	_u.mutation.SetBestStreak(v)
	return _u
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableBestStreak(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetBestStreak(*v)
	}
	return _u
}

// AddBestStreak adds value to the "best_streak" field.
func (_u *ProfileUpdate) AddBestStreak(v int) *ProfileUpdate {
	_u.mutation.AddBestStreak(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdate) SetUpdatedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WordsLearned(); ok {
		_spec.SetField(profile.FieldWordsLearned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordsLearned(); ok {
		_spec.AddField(profile.FieldWordsLearned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LessonsCompleted(); ok {
		_spec.SetField(profile.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonsCompleted(); ok {
		_spec.AddField(profile.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalXp(); ok {
		_spec.SetField(profile.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXp(); ok {
		_spec.AddField(profile.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(profile.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(profile.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestStreak(); ok {
		_spec.SetField(profile.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestStreak(); ok {
		_spec.AddField(profile.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetWordsLearned sets the "words_learned" field.
func (_u *ProfileUpdateOne) SetWordsLearned(v int) *ProfileUpdateOne {
	_u.mutation.ResetWordsLearned()
	_u.mutation.SetWordsLearned(v)
	return _u
}

// SetNillableWordsLearned sets the "words_learned" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableWordsLearned(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetWordsLearned(*v)
	}
	return _u
}

// AddWordsLearned adds value to the "words_learned" field.
func (_u *ProfileUpdateOne) AddWordsLearned(v int) *ProfileUpdateOne {
	_u.mutation.AddWordsLearned(v)
	return _u
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (_u *ProfileUpdateOne) SetLessonsCompleted(v int) *ProfileUpdateOne {
	_u.mutation.ResetLessonsCompleted()
	_u.mutation.SetLessonsCompleted(v)
	return _u
}

// SetNillableLessonsCompleted sets the "lessons_completed" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLessonsCompleted(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetLessonsCompleted(*v)
	}
	return _u
}

// AddLessonsCompleted adds value to the "lessons_completed" field.
func (_u *ProfileUpdateOne) AddLessonsCompleted(v int) *ProfileUpdateOne {
	_u.mutation.AddLessonsCompleted(v)
	return _u
}

// SetTotalXp sets the "total_xp" field.
func (_u *ProfileUpdateOne) SetTotalXp(v int) *ProfileUpdateOne {
	_u.mutation.ResetTotalXp()
	_u.mutation.SetTotalXp(v)
	return _u
}

// SetNillableTotalXp sets the "total_xp" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableTotalXp(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetTotalXp(*v)
	}
	return _u
}

// AddTotalXp adds value to the "total_xp" field.
func (_u *ProfileUpdateOne) AddTotalXp(v int) *ProfileUpdateOne {
	_u.mutation.AddTotalXp(v)
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *ProfileUpdateOne) SetCurrentStreak(v int) *ProfileUpdateOne {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableCurrentStreak(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *ProfileUpdateOne) AddCurrentStreak(v int) *ProfileUpdateOne {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetBestStreak sets the "best_streak" field.
func (_u *ProfileUpdateOne) SetBestStreak(v int) *ProfileUpdateOne {
	_u.mutation.ResetBestStreak()
	_u.mutation.SetBestStreak(v)
	return _u
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableBestStreak(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetBestStreak(*v)
	}
	return _u
}

// AddBestStreak adds value to the "best_streak" field.
func (_u *ProfileUpdateOne) AddBestStreak(v int) *ProfileUpdateOne {
	_u.mutation.AddBestStreak(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdateOne) SetUpdatedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
	if value, ok := _u.mutation.WordsLearned(); ok {
		_spec.SetField(profile.FieldWordsLearned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordsLearned(); ok {
		_spec.AddField(profile.FieldWordsLearned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LessonsCompleted(); ok {
		_spec.SetField(profile.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonsCompleted(); ok {
		_spec.AddField(profile.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalXp(); ok {
		_spec.SetField(profile.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXp(); ok {
		_spec.AddField(profile.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(profile.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(profile.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestStreak(); ok {
		_spec.SetField(profile.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestStreak(); ok {
		_spec.AddField(profile.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
