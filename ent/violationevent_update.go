// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nvasanth/candex/ent/predicate"
	"github.com/nvasanth/candex/ent/violationevent"
)

// ViolationEventUpdate is the builder for updating ViolationEvent entities.
type ViolationEventUpdate struct {
	config
	hooks    []Hook
	mutation *ViolationEventMutation
}

// Where appends a list predicates to the ViolationEventUpdate builder.
func (_u *ViolationEventUpdate) Where(ps ...predicate.ViolationEvent) *ViolationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *ViolationEventUpdate) SetAttemptID(v string) *ViolationEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *ViolationEventUpdate) SetNillableAttemptID(v *string) *ViolationEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetProctorSessionID sets the "proctor_session_id" field.
func (_u *ViolationEventUpdate) SetProctorSessionID(v string) *ViolationEventUpdate {
	_u.mutation.SetProctorSessionID(v)
	return _u
}

// SetNillableProctorSessionID sets the "proctor_session_id" field if the given value is not nil.
func (_u *ViolationEventUpdate) SetNillableProctorSessionID(v *string) *ViolationEventUpdate {
	if v != nil {
		_u.SetProctorSessionID(*v)
	}
	return _u
}

// SetViolationType sets the "violation_type" field.
func (_u *ViolationEventUpdate) SetViolationType(v string) *ViolationEventUpdate {
	_u.mutation.SetViolationType(v)
	return _u
}

// SetNillableViolationType sets the "violation_type" field if the given value is not nil.
func (_u *ViolationEventUpdate) SetNillableViolationType(v *string) *ViolationEventUpdate {
	if v != nil {
		_u.SetViolationType(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *ViolationEventUpdate) SetDetails(v string) *ViolationEventUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_u *ViolationEventUpdate) SetNillableDetails(v *string) *ViolationEventUpdate {
	if v != nil {
		_u.SetDetails(*v)
	}
	return _u
}

// SetReported sets the "reported" field.
func (_u *ViolationEventUpdate) SetReported(v bool) *ViolationEventUpdate {
	_u.mutation.SetReported(v)
	return _u
}

// SetNillableReported sets the "reported" field if the given value is not nil.
func (_u *ViolationEventUpdate) SetNillableReported(v *bool) *ViolationEventUpdate {
	if v != nil {
		_u.SetReported(*v)
	}
	return _u
}

// Mutation returns the ViolationEventMutation object of the builder.
func (_u *ViolationEventUpdate) Mutation() *ViolationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ViolationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ViolationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ViolationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ViolationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ViolationEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := violationevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ViolationEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ViolationType(); ok {
		if err := violationevent.ViolationTypeValidator(v); err != nil {
			return &ValidationError{Name: "violation_type", err: fmt.Errorf(`ent: validator failed for field "ViolationEvent.violation_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ViolationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(violationevent.Table, violationevent.Columns, sqlgraph.NewFieldSpec(violationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(violationevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProctorSessionID(); ok {
		_spec.SetField(violationevent.FieldProctorSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ViolationType(); ok {
		_spec.SetField(violationevent.FieldViolationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(violationevent.FieldDetails, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reported(); ok {
		_spec.SetField(violationevent.FieldReported, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{violationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ViolationEventUpdateOne is the builder for updating a single ViolationEvent entity.
type ViolationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ViolationEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *ViolationEventUpdateOne) SetAttemptID(v string) *ViolationEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *ViolationEventUpdateOne) SetNillableAttemptID(v *string) *ViolationEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetProctorSessionID sets the "proctor_session_id" field.
func (_u *ViolationEventUpdateOne) SetProctorSessionID(v string) *ViolationEventUpdateOne {
	_u.mutation.SetProctorSessionID(v)
	return _u
}

// SetNillableProctorSessionID sets the "proctor_session_id" field if the given value is not nil.
func (_u *ViolationEventUpdateOne) SetNillableProctorSessionID(v *string) *ViolationEventUpdateOne {
	if v != nil {
		_u.SetProctorSessionID(*v)
	}
	return _u
}

// SetViolationType sets the "violation_type" field.
func (_u *ViolationEventUpdateOne) SetViolationType(v string) *ViolationEventUpdateOne {
	_u.mutation.SetViolationType(v)
	return _u
}

// SetNillableViolationType sets the "violation_type" field if the given value is not nil.
func (_u *ViolationEventUpdateOne) SetNillableViolationType(v *string) *ViolationEventUpdateOne {
	if v != nil {
		_u.SetViolationType(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *ViolationEventUpdateOne) SetDetails(v string) *ViolationEventUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_u *ViolationEventUpdateOne) SetNillableDetails(v *string) *ViolationEventUpdateOne {
	if v != nil {
		_u.SetDetails(*v)
	}
	return _u
}

// SetReported sets the "reported" field.
func (_u *ViolationEventUpdateOne) SetReported(v bool) *ViolationEventUpdateOne {
	_u.mutation.SetReported(v)
	return _u
}

// SetNillableReported sets the "reported" field if the given value is not nil.
func (_u *ViolationEventUpdateOne) SetNillableReported(v *bool) *ViolationEventUpdateOne {
	if v != nil {
		_u.SetReported(*v)
	}
	return _u
}

// Mutation returns the ViolationEventMutation object of the builder.
func (_u *ViolationEventUpdateOne) Mutation() *ViolationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ViolationEventUpdate builder.
func (_u *ViolationEventUpdateOne) Where(ps ...predicate.ViolationEvent) *ViolationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ViolationEventUpdateOne) Select(field string, fields ...string) *ViolationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ViolationEvent entity.
func (_u *ViolationEventUpdateOne) Save(ctx context.Context) (*ViolationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ViolationEventUpdateOne) SaveX(ctx context.Context) *ViolationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ViolationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ViolationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ViolationEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := violationevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ViolationEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ViolationType(); ok {
		if err := violationevent.ViolationTypeValidator(v); err != nil {
			return &ValidationError{Name: "violation_type", err: fmt.Errorf(`ent: validator failed for field "ViolationEvent.violation_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ViolationEventUpdateOne) sqlSave(ctx context.Context) (_node *ViolationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(violationevent.Table, violationevent.Columns, sqlgraph.NewFieldSpec(violationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ViolationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, violationevent.FieldID)
		for _, f := range fields {
			if !violationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != violationevent.FieldID {
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
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(violationevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProctorSessionID(); ok {
		_spec.SetField(violationevent.FieldProctorSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ViolationType(); ok {
		_spec.SetField(violationevent.FieldViolationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(violationevent.FieldDetails, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reported(); ok {
		_spec.SetField(violationevent.FieldReported, field.TypeBool, value)
	}
	_node = &ViolationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{violationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
