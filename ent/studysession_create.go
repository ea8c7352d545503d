// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/recall/ent/studysession"
)

// StudySessionCreate is the builder for creating a StudySession entity.
type StudySessionCreate struct {
	config
	mutation *StudySessionMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (_c *StudySessionCreate) SetPlanID(v string) *StudySessionCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetMaxQuestions sets the "max_questions" field.
func (_c *StudySessionCreate) SetMaxQuestions(v int) *StudySessionCreate {
	_c.mutation.SetMaxQuestions(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudySessionCreate) SetCreatedAt(v time.Time) *StudySessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableCreatedAt(v *time.Time) *StudySessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StudySessionCreate) SetID(v string) *StudySessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StudySessionMutation object of the builder.
func (_c *StudySessionCreate) Mutation() *StudySessionMutation {
	return _c.mutation
}

// Save creates the StudySession in the database.
func (_c *StudySessionCreate) Save(ctx context.Context) (*StudySession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudySessionCreate) SaveX(ctx context.Context) *StudySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudySessionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := studysession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudySessionCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "StudySession.plan_id"`)}
	}
	if v, ok := _c.mutation.PlanID(); ok {
		if err := studysession.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "StudySession.plan_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxQuestions(); !ok {
		return &ValidationError{Name: "max_questions", err: errors.New(`ent: missing required field "StudySession.max_questions"`)}
	}
	if v, ok := _c.mutation.MaxQuestions(); ok {
		if err := studysession.MaxQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "max_questions", err: fmt.Errorf(`ent: validator failed for field "StudySession.max_questions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StudySession.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := studysession.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "StudySession.id": %w`, err)}
		}
	}
	return nil
}

func (_c *StudySessionCreate) sqlSave(ctx context.Context) (*StudySession, error) {
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
			return nil, fmt.Errorf("unexpected StudySession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudySessionCreate) createSpec() (*StudySession, *sqlgraph.CreateSpec) {
	var (
		_node = &StudySession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studysession.Table, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(studysession.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.MaxQuestions(); ok {
		_spec.SetField(studysession.FieldMaxQuestions, field.TypeInt, value)
		_node.MaxQuestions = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(studysession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// StudySessionCreateBulk is the builder for creating many StudySession entities in bulk.
type StudySessionCreateBulk struct {
	config
	err      error
	builders []*StudySessionCreate
}

// Save creates the StudySession entities in the database.
func (_c *StudySessionCreateBulk) Save(ctx context.Context) ([]*StudySession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudySession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudySessionMutation)
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
func (_c *StudySessionCreateBulk) SaveX(ctx context.Context) []*StudySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
