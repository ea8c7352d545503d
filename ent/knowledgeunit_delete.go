// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/recall/ent/knowledgeunit"
	"github.com/abhisek/recall/ent/predicate"
)

// KnowledgeUnitDelete is the builder for deleting a KnowledgeUnit entity.
type KnowledgeUnitDelete struct {
	config
	hooks    []Hook
	mutation *KnowledgeUnitMutation
}

// Where appends a list predicates to the KnowledgeUnitDelete builder.
func (_d *KnowledgeUnitDelete) Where(ps ...predicate.KnowledgeUnit) *KnowledgeUnitDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *KnowledgeUnitDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *KnowledgeUnitDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *KnowledgeUnitDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(knowledgeunit.Table, sqlgraph.NewFieldSpec(knowledgeunit.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// KnowledgeUnitDeleteOne is the builder for deleting a single KnowledgeUnit entity.
type KnowledgeUnitDeleteOne struct {
	_d *KnowledgeUnitDelete
}

// Where appends a list predicates to the KnowledgeUnitDelete builder.
func (_d *KnowledgeUnitDeleteOne) Where(ps ...predicate.KnowledgeUnit) *KnowledgeUnitDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *KnowledgeUnitDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{knowledgeunit.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *KnowledgeUnitDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
