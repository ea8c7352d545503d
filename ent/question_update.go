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
	"github.com/abhisek/recall/ent/predicate"
	"github.com/abhisek/recall/ent/question"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *QuestionUpdate) SetUserAnswer(v string) *QuestionUpdate {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableUserAnswer(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// ClearUserAnswer clears the value of the "user_answer" field.
func (_u *QuestionUpdate) ClearUserAnswer() *QuestionUpdate {
	_u.mutation.ClearUserAnswer()
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *QuestionUpdate) SetAnsweredAt(v time.Time) *QuestionUpdate {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableAnsweredAt(v *time.Time) *QuestionUpdate {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (_u *QuestionUpdate) ClearAnsweredAt() *QuestionUpdate {
	_u.mutation.ClearAnsweredAt()
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *QuestionUpdate) SetIsCorrect(v bool) *QuestionUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableIsCorrect(v *bool) *QuestionUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// ClearIsCorrect clears the value of the "is_correct" field.
func (_u *QuestionUpdate) ClearIsCorrect() *QuestionUpdate {
	_u.mutation.ClearIsCorrect()
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QuestionUpdate) SetExplanation(v string) *QuestionUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableExplanation(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuestionUpdate) SetCorrectAnswer(v string) *QuestionUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableCorrectAnswer(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetAssessedAt sets the "assessed_at" field.
func (_u *QuestionUpdate) SetAssessedAt(v time.Time) *QuestionUpdate {
	_u.mutation.SetAssessedAt(v)
	return _u
}

// SetNillableAssessedAt sets the "assessed_at" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableAssessedAt(v *time.Time) *QuestionUpdate {
	if v != nil {
		_u.SetAssessedAt(*v)
	}
	return _u
}

// ClearAssessedAt clears the value of the "assessed_at" field.
func (_u *QuestionUpdate) ClearAssessedAt() *QuestionUpdate {
	_u.mutation.ClearAssessedAt()
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(question.FieldUserAnswer, field.TypeString, value)
	}
	if _u.mutation.UserAnswerCleared() {
		_spec.ClearField(question.FieldUserAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(question.FieldAnsweredAt, field.TypeTime, value)
	}
	if _u.mutation.AnsweredAtCleared() {
		_spec.ClearField(question.FieldAnsweredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(question.FieldIsCorrect, field.TypeBool, value)
	}
	if _u.mutation.IsCorrectCleared() {
		_spec.ClearField(question.FieldIsCorrect, field.TypeBool)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(question.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessedAt(); ok {
		_spec.SetField(question.FieldAssessedAt, field.TypeTime, value)
	}
	if _u.mutation.AssessedAtCleared() {
		_spec.ClearField(question.FieldAssessedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetUserAnswer sets the "user_answer" field.
func (_u *QuestionUpdateOne) SetUserAnswer(v string) *QuestionUpdateOne {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableUserAnswer(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// ClearUserAnswer clears the value of the "user_answer" field.
func (_u *QuestionUpdateOne) ClearUserAnswer() *QuestionUpdateOne {
	_u.mutation.ClearUserAnswer()
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *QuestionUpdateOne) SetAnsweredAt(v time.Time) *QuestionUpdateOne {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableAnsweredAt(v *time.Time) *QuestionUpdateOne {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (_u *QuestionUpdateOne) ClearAnsweredAt() *QuestionUpdateOne {
	_u.mutation.ClearAnsweredAt()
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *QuestionUpdateOne) SetIsCorrect(v bool) *QuestionUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableIsCorrect(v *bool) *QuestionUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// ClearIsCorrect clears the value of the "is_correct" field.
func (_u *QuestionUpdateOne) ClearIsCorrect() *QuestionUpdateOne {
	_u.mutation.ClearIsCorrect()
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QuestionUpdateOne) SetExplanation(v string) *QuestionUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableExplanation(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuestionUpdateOne) SetCorrectAnswer(v string) *QuestionUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableCorrectAnswer(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetAssessedAt sets the "assessed_at" field.
func (_u *QuestionUpdateOne) SetAssessedAt(v time.Time) *QuestionUpdateOne {
	_u.mutation.SetAssessedAt(v)
	return _u
}

// SetNillableAssessedAt sets the "assessed_at" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableAssessedAt(v *time.Time) *QuestionUpdateOne {
	if v != nil {
		_u.SetAssessedAt(*v)
	}
	return _u
}

// ClearAssessedAt clears the value of the "assessed_at" field.
func (_u *QuestionUpdateOne) ClearAssessedAt() *QuestionUpdateOne {
	_u.mutation.ClearAssessedAt()
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
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
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(question.FieldUserAnswer, field.TypeString, value)
	}
	if _u.mutation.UserAnswerCleared() {
		_spec.ClearField(question.FieldUserAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(question.FieldAnsweredAt, field.TypeTime, value)
	}
	if _u.mutation.AnsweredAtCleared() {
		_spec.ClearField(question.FieldAnsweredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(question.FieldIsCorrect, field.TypeBool, value)
	}
	if _u.mutation.IsCorrectCleared() {
		_spec.ClearField(question.FieldIsCorrect, field.TypeBool)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(question.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessedAt(); ok {
		_spec.SetField(question.FieldAssessedAt, field.TypeTime, value)
	}
	if _u.mutation.AssessedAtCleared() {
		_spec.ClearField(question.FieldAssessedAt, field.TypeTime)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
