// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/recall/ent/learningplan"
)

// LearningPlanCreate is the builder for creating a LearningPlan entity.
type LearningPlanCreate struct {
	config
	mutation *LearningPlanMutation
	hooks    []Hook
}

// SetDocumentIds sets the "document_ids" field.
func (_c *LearningPlanCreate) SetDocumentIds(v []string) *LearningPlanCreate {
	_c.mutation.SetDocumentIds(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearningPlanCreate) SetCreatedAt(v time.Time) *LearningPlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearningPlanCreate) SetNillableCreatedAt(v *time.Time) *LearningPlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *LearningPlanCreate) SetCompletedAt(v time.Time) *LearningPlanCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *LearningPlanCreate) SetNillableCompletedAt(v *time.Time) *LearningPlanCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LearningPlanCreate) SetID(v string) *LearningPlanCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LearningPlanMutation object of the builder.
func (_c *LearningPlanCreate) Mutation() *LearningPlanMutation {
	return _c.mutation
}

// Save creates the LearningPlan in the database.
func (_c *LearningPlanCreate) Save(ctx context.Context) (*LearningPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningPlanCreate) SaveX(ctx context.Context) *LearningPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningPlanCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learningplan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningPlanCreate) check() error {
	if _, ok := _c.mutation.DocumentIds(); !ok {
		return &ValidationError{Name: "document_ids", err: errors.New(`ent: missing required field "LearningPlan.document_ids"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearningPlan.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := learningplan.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "LearningPlan.id": %w`, err)}
		}
	}
	return nil
}

func (_c *LearningPlanCreate) sqlSave(ctx context.Context) (*LearningPlan, error) {
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
			return nil, fmt.Errorf("unexpected LearningPlan.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearningPlanCreate) createSpec() (*LearningPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningplan.Table, sqlgraph.NewFieldSpec(learningplan.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DocumentIds(); ok {
		_spec.SetField(learningplan.FieldDocumentIds, field.TypeJSON, value)
		_node.DocumentIds = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learningplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(learningplan.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// LearningPlanCreateBulk is the builder for creating many LearningPlan entities in bulk.
type LearningPlanCreateBulk struct {
	config
	err      error
	builders []*LearningPlanCreate
}

// Save creates the LearningPlan entities in the database.
func (_c *LearningPlanCreateBulk) Save(ctx context.Context) ([]*LearningPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningPlanMutation)
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
func (_c *LearningPlanCreateBulk) SaveX(ctx context.Context) []*LearningPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
