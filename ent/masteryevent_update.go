// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/recall/ent/masteryevent"
	"github.com/abhisek/recall/ent/predicate"
)

// MasteryEventUpdate is the builder for updating MasteryEvent entities.
type MasteryEventUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryEventMutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdate) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *MasteryEventUpdate) SetPlanID(v string) *MasteryEventUpdate {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillablePlanID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *MasteryEventUpdate) SetUnitID(v string) *MasteryEventUpdate {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableUnitID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetFromLevel sets the "from_level" field.
func (_u *MasteryEventUpdate) SetFromLevel(v float64) *MasteryEventUpdate {
	_u.mutation.ResetFromLevel()
	_u.mutation.SetFromLevel(v)
	return _u
}

// SetNillableFromLevel sets the "from_level" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableFromLevel(v *float64) *MasteryEventUpdate {
	if v != nil {
		_u.SetFromLevel(*v)
	}
	return _u
}

// AddFromLevel adds value to the "from_level" field.
func (_u *MasteryEventUpdate) AddFromLevel(v float64) *MasteryEventUpdate {
	_u.mutation.AddFromLevel(v)
	return _u
}

// SetToLevel sets the "to_level" field.
func (_u *MasteryEventUpdate) SetToLevel(v float64) *MasteryEventUpdate {
	_u.mutation.ResetToLevel()
	_u.mutation.SetToLevel(v)
	return _u
}

// SetNillableToLevel sets the "to_level" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableToLevel(v *float64) *MasteryEventUpdate {
	if v != nil {
		_u.SetToLevel(*v)
	}
	return _u
}

// AddToLevel adds value to the "to_level" field.
func (_u *MasteryEventUpdate) AddToLevel(v float64) *MasteryEventUpdate {
	_u.mutation.AddToLevel(v)
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *MasteryEventUpdate) SetTrigger(v string) *MasteryEventUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableTrigger(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MasteryEventUpdate) SetSessionID(v string) *MasteryEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableSessionID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *MasteryEventUpdate) ClearSessionID() *MasteryEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *MasteryEventUpdate) SetQuestionID(v string) *MasteryEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableQuestionID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// ClearQuestionID clears the value of the "question_id" field.
func (_u *MasteryEventUpdate) ClearQuestionID() *MasteryEventUpdate {
	_u.mutation.ClearQuestionID()
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdate) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdate) check() error {
	if v, ok := _u.mutation.PlanID(); ok {
		if err := masteryevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.plan_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := masteryevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := masteryevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(masteryevent.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(masteryevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromLevel(); ok {
		_spec.SetField(masteryevent.FieldFromLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFromLevel(); ok {
		_spec.AddField(masteryevent.FieldFromLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ToLevel(); ok {
		_spec.SetField(masteryevent.FieldToLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedToLevel(); ok {
		_spec.AddField(masteryevent.FieldToLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(masteryevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(masteryevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(masteryevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(masteryevent.FieldQuestionID, field.TypeString, value)
	}
	if _u.mutation.QuestionIDCleared() {
		_spec.ClearField(masteryevent.FieldQuestionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryEventUpdateOne is the builder for updating a single MasteryEvent entity.
type MasteryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryEventMutation
}

// SetPlanID sets the "plan_id" field.
func (_u *MasteryEventUpdateOne) SetPlanID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillablePlanID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *MasteryEventUpdateOne) SetUnitID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableUnitID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetFromLevel sets the "from_level" field.
func (_u *MasteryEventUpdateOne) SetFromLevel(v float64) *MasteryEventUpdateOne {
	_u.mutation.ResetFromLevel()
	_u.mutation.SetFromLevel(v)
	return _u
}

// SetNillableFromLevel sets the "from_level" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableFromLevel(v *float64) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetFromLevel(*v)
	}
	return _u
}

// AddFromLevel adds value to the "from_level" field.
func (_u *MasteryEventUpdateOne) AddFromLevel(v float64) *MasteryEventUpdateOne {
	_u.mutation.AddFromLevel(v)
	return _u
}

// SetToLevel sets the "to_level" field.
func (_u *MasteryEventUpdateOne) SetToLevel(v float64) *MasteryEventUpdateOne {
	_u.mutation.ResetToLevel()
	_u.mutation.SetToLevel(v)
	return _u
}

// SetNillableToLevel sets the "to_level" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableToLevel(v *float64) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetToLevel(*v)
	}
	return _u
}

// AddToLevel adds value to the "to_level" field.
func (_u *MasteryEventUpdateOne) AddToLevel(v float64) *MasteryEventUpdateOne {
	_u.mutation.AddToLevel(v)
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *MasteryEventUpdateOne) SetTrigger(v string) *MasteryEventUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableTrigger(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MasteryEventUpdateOne) SetSessionID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableSessionID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *MasteryEventUpdateOne) ClearSessionID() *MasteryEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *MasteryEventUpdateOne) SetQuestionID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableQuestionID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// ClearQuestionID clears the value of the "question_id" field.
func (_u *MasteryEventUpdateOne) ClearQuestionID() *MasteryEventUpdateOne {
	_u.mutation.ClearQuestionID()
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdateOne) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdateOne) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryEventUpdateOne) Select(field string, fields ...string) *MasteryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryEvent entity.
func (_u *MasteryEventUpdateOne) Save(ctx context.Context) (*MasteryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) SaveX(ctx context.Context) *MasteryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdateOne) check() error {
	if v, ok := _u.mutation.PlanID(); ok {
		if err := masteryevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.plan_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := masteryevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := masteryevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdateOne) sqlSave(ctx context.Context) (_node *MasteryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryevent.FieldID)
		for _, f := range fields {
			if !masteryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryevent.FieldID {
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
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(masteryevent.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(masteryevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromLevel(); ok {
		_spec.SetField(masteryevent.FieldFromLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFromLevel(); ok {
		_spec.AddField(masteryevent.FieldFromLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ToLevel(); ok {
		_spec.SetField(masteryevent.FieldToLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedToLevel(); ok {
		_spec.AddField(masteryevent.FieldToLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(masteryevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(masteryevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(masteryevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(masteryevent.FieldQuestionID, field.TypeString, value)
	}
	if _u.mutation.QuestionIDCleared() {
		_spec.ClearField(masteryevent.FieldQuestionID, field.TypeString)
	}
	_node = &MasteryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
