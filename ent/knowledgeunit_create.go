// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/recall/ent/knowledgeunit"
)

// KnowledgeUnitCreate is the builder for creating a KnowledgeUnit entity.
type KnowledgeUnitCreate struct {
	config
	mutation *KnowledgeUnitMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (_c *KnowledgeUnitCreate) SetPlanID(v string) *KnowledgeUnitCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *KnowledgeUnitCreate) SetDocumentID(v string) *KnowledgeUnitCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *KnowledgeUnitCreate) SetKind(v knowledgeunit.Kind) *KnowledgeUnitCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetText sets the "text" field.
func (_c *KnowledgeUnitCreate) SetText(v string) *KnowledgeUnitCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetSourceClaim sets the "source_claim" field.
func (_c *KnowledgeUnitCreate) SetSourceClaim(v string) *KnowledgeUnitCreate {
	_c.mutation.SetSourceClaim(v)
	return _c
}

// SetNillableSourceClaim sets the "source_claim" field if the given value is not nil.
func (_c *KnowledgeUnitCreate) SetNillableSourceClaim(v *string) *KnowledgeUnitCreate {
	if v != nil {
		_c.SetSourceClaim(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *KnowledgeUnitCreate) SetPosition(v int) *KnowledgeUnitCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetRetired sets the "retired" field.
func (_c *KnowledgeUnitCreate) SetRetired(v bool) *KnowledgeUnitCreate {
	_c.mutation.SetRetired(v)
	return _c
}

// SetNillableRetired sets the "retired" field if the given value is not nil.
func (_c *KnowledgeUnitCreate) SetNillableRetired(v *bool) *KnowledgeUnitCreate {
	if v != nil {
		_c.SetRetired(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *KnowledgeUnitCreate) SetCreatedAt(v time.Time) *KnowledgeUnitCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *KnowledgeUnitCreate) SetNillableCreatedAt(v *time.Time) *KnowledgeUnitCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *KnowledgeUnitCreate) SetID(v string) *KnowledgeUnitCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the KnowledgeUnitMutation object of the builder.
func (_c *KnowledgeUnitCreate) Mutation() *KnowledgeUnitMutation {
	return _c.mutation
}

// Save creates the KnowledgeUnit in the database.
func (_c *KnowledgeUnitCreate) Save(ctx context.Context) (*KnowledgeUnit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnowledgeUnitCreate) SaveX(ctx context.Context) *KnowledgeUnit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeUnitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeUnitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KnowledgeUnitCreate) defaults() {
	if _, ok := _c.mutation.SourceClaim(); !ok {
		v := knowledgeunit.DefaultSourceClaim
		_c.mutation.SetSourceClaim(v)
	}
	if _, ok := _c.mutation.Retired(); !ok {
		v := knowledgeunit.DefaultRetired
		_c.mutation.SetRetired(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := knowledgeunit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnowledgeUnitCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "KnowledgeUnit.plan_id"`)}
	}
	if v, ok := _c.mutation.PlanID(); ok {
		if err := knowledgeunit.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeUnit.plan_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "KnowledgeUnit.document_id"`)}
	}
	if v, ok := _c.mutation.DocumentID(); ok {
		if err := knowledgeunit.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeUnit.document_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "KnowledgeUnit.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := knowledgeunit.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "KnowledgeUnit.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "KnowledgeUnit.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := knowledgeunit.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "KnowledgeUnit.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceClaim(); !ok {
		return &ValidationError{Name: "source_claim", err: errors.New(`ent: missing required field "KnowledgeUnit.source_claim"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "KnowledgeUnit.position"`)}
	}
	if _, ok := _c.mutation.Retired(); !ok {
		return &ValidationError{Name: "retired", err: errors.New(`ent: missing required field "KnowledgeUnit.retired"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "KnowledgeUnit.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := knowledgeunit.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeUnit.id": %w`, err)}
		}
	}
	return nil
}

func (_c *KnowledgeUnitCreate) sqlSave(ctx context.Context) (*KnowledgeUnit, error) {
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
			return nil, fmt.Errorf("unexpected KnowledgeUnit.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *KnowledgeUnitCreate) createSpec() (*KnowledgeUnit, *sqlgraph.CreateSpec) {
	var (
		_node = &KnowledgeUnit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knowledgeunit.Table, sqlgraph.NewFieldSpec(knowledgeunit.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(knowledgeunit.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(knowledgeunit.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(knowledgeunit.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(knowledgeunit.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.SourceClaim(); ok {
		_spec.SetField(knowledgeunit.FieldSourceClaim, field.TypeString, value)
		_node.SourceClaim = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(knowledgeunit.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Retired(); ok {
		_spec.SetField(knowledgeunit.FieldRetired, field.TypeBool, value)
		_node.Retired = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(knowledgeunit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// KnowledgeUnitCreateBulk is the builder for creating many KnowledgeUnit entities in bulk.
type KnowledgeUnitCreateBulk struct {
	config
	err      error
	builders []*KnowledgeUnitCreate
}

// Save creates the KnowledgeUnit entities in the database.
func (_c *KnowledgeUnitCreateBulk) Save(ctx context.Context) ([]*KnowledgeUnit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KnowledgeUnit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnowledgeUnitMutation)
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
func (_c *KnowledgeUnitCreateBulk) SaveX(ctx context.Context) []*KnowledgeUnit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeUnitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeUnitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
