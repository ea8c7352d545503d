// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/recall/ent/learningplan"
	"github.com/abhisek/recall/ent/predicate"
)

// LearningPlanUpdate is the builder for updating LearningPlan entities.
type LearningPlanUpdate struct {
	config
	hooks    []Hook
	mutation *LearningPlanMutation
}

// Where appends a list predicates to the LearningPlanUpdate builder.
func (_u *LearningPlanUpdate) Where(ps ...predicate.LearningPlan) *LearningPlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentIds sets the "document_ids" field.
func (_u *LearningPlanUpdate) SetDocumentIds(v []string) *LearningPlanUpdate {
	_u.mutation.SetDocumentIds(v)
	return _u
}

// AppendDocumentIds appends value to the "document_ids" field.
func (_u *LearningPlanUpdate) AppendDocumentIds(v []string) *LearningPlanUpdate {
	_u.mutation.AppendDocumentIds(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LearningPlanUpdate) SetCompletedAt(v time.Time) *LearningPlanUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LearningPlanUpdate) SetNillableCompletedAt(v *time.Time) *LearningPlanUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LearningPlanUpdate) ClearCompletedAt() *LearningPlanUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the LearningPlanMutation object of the builder.
func (_u *LearningPlanUpdate) Mutation() *LearningPlanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningPlanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningPlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LearningPlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(learningplan.Table, learningplan.Columns, sqlgraph.NewFieldSpec(learningplan.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentIds(); ok {
		_spec.SetField(learningplan.FieldDocumentIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDocumentIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningplan.FieldDocumentIds, value)
		})
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(learningplan.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(learningplan.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningPlanUpdateOne is the builder for updating a single LearningPlan entity.
type LearningPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningPlanMutation
}

// SetDocumentIds sets the "document_ids" field.
func (_u *LearningPlanUpdateOne) SetDocumentIds(v []string) *LearningPlanUpdateOne {
	_u.mutation.SetDocumentIds(v)
	return _u
}

// AppendDocumentIds appends value to the "document_ids" field.
func (_u *LearningPlanUpdateOne) AppendDocumentIds(v []string) *LearningPlanUpdateOne {
	_u.mutation.AppendDocumentIds(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LearningPlanUpdateOne) SetCompletedAt(v time.Time) *LearningPlanUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LearningPlanUpdateOne) SetNillableCompletedAt(v *time.Time) *LearningPlanUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LearningPlanUpdateOne) ClearCompletedAt() *LearningPlanUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the LearningPlanMutation object of the builder.
func (_u *LearningPlanUpdateOne) Mutation() *LearningPlanMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningPlanUpdate builder.
func (_u *LearningPlanUpdateOne) Where(ps ...predicate.LearningPlan) *LearningPlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningPlanUpdateOne) Select(field string, fields ...string) *LearningPlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningPlan entity.
func (_u *LearningPlanUpdateOne) Save(ctx context.Context) (*LearningPlan, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPlanUpdateOne) SaveX(ctx context.Context) *LearningPlan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LearningPlanUpdateOne) sqlSave(ctx context.Context) (_node *LearningPlan, err error) {
	_spec := sqlgraph.NewUpdateSpec(learningplan.Table, learningplan.Columns, sqlgraph.NewFieldSpec(learningplan.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningplan.FieldID)
		for _, f := range fields {
			if !learningplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningplan.FieldID {
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
	if value, ok := _u.mutation.DocumentIds(); ok {
		_spec.SetField(learningplan.FieldDocumentIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDocumentIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learningplan.FieldDocumentIds, value)
		})
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(learningplan.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(learningplan.FieldCompletedAt, field.TypeTime)
	}
	_node = &LearningPlan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
