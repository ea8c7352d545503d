// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/recall/ent/knowledgeunit"
	"github.com/abhisek/recall/ent/predicate"
)

// KnowledgeUnitUpdate is the builder for updating KnowledgeUnit entities.
type KnowledgeUnitUpdate struct {
	config
	hooks    []Hook
	mutation *KnowledgeUnitMutation
}

// Where appends a list predicates to the KnowledgeUnitUpdate builder.
func (_u *KnowledgeUnitUpdate) Where(ps ...predicate.KnowledgeUnit) *KnowledgeUnitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRetired sets the "retired" field.
func (_u *KnowledgeUnitUpdate) SetRetired(v bool) *KnowledgeUnitUpdate {
	_u.mutation.SetRetired(v)
	return _u
}

// SetNillableRetired sets the "retired" field if the given value is not nil.
func (_u *KnowledgeUnitUpdate) SetNillableRetired(v *bool) *KnowledgeUnitUpdate {
	if v != nil {
		_u.SetRetired(*v)
	}
	return _u
}

// Mutation returns the KnowledgeUnitMutation object of the builder.
func (_u *KnowledgeUnitUpdate) Mutation() *KnowledgeUnitMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnowledgeUnitUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeUnitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnowledgeUnitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeUnitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *KnowledgeUnitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(knowledgeunit.Table, knowledgeunit.Columns, sqlgraph.NewFieldSpec(knowledgeunit.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Retired(); ok {
		_spec.SetField(knowledgeunit.FieldRetired, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgeunit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnowledgeUnitUpdateOne is the builder for updating a single KnowledgeUnit entity.
type KnowledgeUnitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnowledgeUnitMutation
}

// SetRetired sets the "retired" field.
func (_u *KnowledgeUnitUpdateOne) SetRetired(v bool) *KnowledgeUnitUpdateOne {
	_u.mutation.SetRetired(v)
	return _u
}

// SetNillableRetired sets the "retired" field if the given value is not nil.
func (_u *KnowledgeUnitUpdateOne) SetNillableRetired(v *bool) *KnowledgeUnitUpdateOne {
	if v != nil {
		_u.SetRetired(*v)
	}
	return _u
}

// Mutation returns the KnowledgeUnitMutation object of the builder.
func (_u *KnowledgeUnitUpdateOne) Mutation() *KnowledgeUnitMutation {
	return _u.mutation
}

// Where appends a list predicates to the KnowledgeUnitUpdate builder.
func (_u *KnowledgeUnitUpdateOne) Where(ps ...predicate.KnowledgeUnit) *KnowledgeUnitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnowledgeUnitUpdateOne) Select(field string, fields ...string) *KnowledgeUnitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnowledgeUnit entity.
func (_u *KnowledgeUnitUpdateOne) Save(ctx context.Context) (*KnowledgeUnit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeUnitUpdateOne) SaveX(ctx context.Context) *KnowledgeUnit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnowledgeUnitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeUnitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *KnowledgeUnitUpdateOne) sqlSave(ctx context.Context) (_node *KnowledgeUnit, err error) {
	_spec := sqlgraph.NewUpdateSpec(knowledgeunit.Table, knowledgeunit.Columns, sqlgraph.NewFieldSpec(knowledgeunit.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KnowledgeUnit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgeunit.FieldID)
		for _, f := range fields {
			if !knowledgeunit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knowledgeunit.FieldID {
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
	if value, ok := _u.mutation.Retired(); ok {
		_spec.SetField(knowledgeunit.FieldRetired, field.TypeBool, value)
	}
	_node = &KnowledgeUnit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgeunit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
