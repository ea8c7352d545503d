// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/recall/ent/question"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *QuestionCreate) SetSessionID(v string) *QuestionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUnitID sets the "unit_id" field.
func (_c *QuestionCreate) SetUnitID(v string) *QuestionCreate {
	_c.mutation.SetUnitID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *QuestionCreate) SetPosition(v int) *QuestionCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetText sets the "text" field.
func (_c *QuestionCreate) SetText(v string) *QuestionCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuestionCreate) SetDifficulty(v int) *QuestionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetCanonicalAnswer sets the "canonical_answer" field.
func (_c *QuestionCreate) SetCanonicalAnswer(v string) *QuestionCreate {
	_c.mutation.SetCanonicalAnswer(v)
	return _c
}

// SetNillableCanonicalAnswer sets the "canonical_answer" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCanonicalAnswer(v *string) *QuestionCreate {
	if v != nil {
		_c.SetCanonicalAnswer(*v)
	}
	return _c
}

// SetUserAnswer sets the "user_answer" field.
func (_c *QuestionCreate) SetUserAnswer(v string) *QuestionCreate {
	_c.mutation.SetUserAnswer(v)
	return _c
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableUserAnswer(v *string) *QuestionCreate {
	if v != nil {
		_c.SetUserAnswer(*v)
	}
	return _c
}

// SetAnsweredAt sets the "answered_at" field.
func (_c *QuestionCreate) SetAnsweredAt(v time.Time) *QuestionCreate {
	_c.mutation.SetAnsweredAt(v)
	return _c
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableAnsweredAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetAnsweredAt(*v)
	}
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *QuestionCreate) SetIsCorrect(v bool) *QuestionCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableIsCorrect(v *bool) *QuestionCreate {
	if v != nil {
		_c.SetIsCorrect(*v)
	}
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *QuestionCreate) SetExplanation(v string) *QuestionCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableExplanation(v *string) *QuestionCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *QuestionCreate) SetCorrectAnswer(v string) *QuestionCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCorrectAnswer(v *string) *QuestionCreate {
	if v != nil {
		_c.SetCorrectAnswer(*v)
	}
	return _c
}

// SetAssessedAt sets the "assessed_at" field.
func (_c *QuestionCreate) SetAssessedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetAssessedAt(v)
	return _c
}

// SetNillableAssessedAt sets the "assessed_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableAssessedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetAssessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionCreate) SetID(v string) *QuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.CanonicalAnswer(); !ok {
		v := question.DefaultCanonicalAnswer
		_c.mutation.SetCanonicalAnswer(v)
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		v := question.DefaultExplanation
		_c.mutation.SetExplanation(v)
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		v := question.DefaultCorrectAnswer
		_c.mutation.SetCorrectAnswer(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Question.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := question.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Question.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitID(); !ok {
		return &ValidationError{Name: "unit_id", err: errors.New(`ent: missing required field "Question.unit_id"`)}
	}
	if v, ok := _c.mutation.UnitID(); ok {
		if err := question.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "Question.unit_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Question.position"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Question.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := question.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Question.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Question.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CanonicalAnswer(); !ok {
		return &ValidationError{Name: "canonical_answer", err: errors.New(`ent: missing required field "Question.canonical_answer"`)}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "Question.explanation"`)}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "Question.correct_answer"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := question.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Question.id": %w`, err)}
		}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Question.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(question.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UnitID(); ok {
		_spec.SetField(question.FieldUnitID, field.TypeString, value)
		_node.UnitID = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(question.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.CanonicalAnswer(); ok {
		_spec.SetField(question.FieldCanonicalAnswer, field.TypeString, value)
		_node.CanonicalAnswer = value
	}
	if value, ok := _c.mutation.UserAnswer(); ok {
		_spec.SetField(question.FieldUserAnswer, field.TypeString, value)
		_node.UserAnswer = &value
	}
	if value, ok := _c.mutation.AnsweredAt(); ok {
		_spec.SetField(question.FieldAnsweredAt, field.TypeTime, value)
		_node.AnsweredAt = &value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(question.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = &value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(question.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.AssessedAt(); ok {
		_spec.SetField(question.FieldAssessedAt, field.TypeTime, value)
		_node.AssessedAt = &value
	}
	return _node, _spec
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
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
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
