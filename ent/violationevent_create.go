// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nvasanth/candex/ent/violationevent"
)

// ViolationEventCreate is the builder for creating a ViolationEvent entity.
type ViolationEventCreate struct {
	config
	mutation *ViolationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ViolationEventCreate) SetSequence(v int64) *ViolationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ViolationEventCreate) SetTimestamp(v time.Time) *ViolationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ViolationEventCreate) SetNillableTimestamp(v *time.Time) *ViolationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *ViolationEventCreate) SetAttemptID(v string) *ViolationEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetProctorSessionID sets the "proctor_session_id" field.
func (_c *ViolationEventCreate) SetProctorSessionID(v string) *ViolationEventCreate {
	_c.mutation.SetProctorSessionID(v)
	return _c
}

// SetNillableProctorSessionID sets the "proctor_session_id" field if the given value is not nil.
func (_c *ViolationEventCreate) SetNillableProctorSessionID(v *string) *ViolationEventCreate {
	if v != nil {
		_c.SetProctorSessionID(*v)
	}
	return _c
}

// SetViolationType sets the "violation_type" field.
func (_c *ViolationEventCreate) SetViolationType(v string) *ViolationEventCreate {
	_c.mutation.SetViolationType(v)
	return _c
}

// SetDetails sets the "details" field.
func (_c *ViolationEventCreate) SetDetails(v string) *ViolationEventCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_c *ViolationEventCreate) SetNillableDetails(v *string) *ViolationEventCreate {
	if v != nil {
		_c.SetDetails(*v)
	}
	return _c
}

// SetReported sets the "reported" field.
func (_c *ViolationEventCreate) SetReported(v bool) *ViolationEventCreate {
	_c.mutation.SetReported(v)
	return _c
}

// Mutation returns the ViolationEventMutation object of the builder.
func (_c *ViolationEventCreate) Mutation() *ViolationEventMutation {
	return _c.mutation
}

// Save creates the ViolationEvent in the database.
func (_c *ViolationEventCreate) Save(ctx context.Context) (*ViolationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ViolationEventCreate) SaveX(ctx context.Context) *ViolationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ViolationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ViolationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ViolationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := violationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ProctorSessionID(); !ok {
		v := violationevent.DefaultProctorSessionID
		_c.mutation.SetProctorSessionID(v)
	}
	if _, ok := _c.mutation.Details(); !ok {
		v := violationevent.DefaultDetails
		_c.mutation.SetDetails(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ViolationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ViolationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ViolationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "ViolationEvent.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := violationevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ViolationEvent.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProctorSessionID(); !ok {
		return &ValidationError{Name: "proctor_session_id", err: errors.New(`ent: missing required field "ViolationEvent.proctor_session_id"`)}
	}
	if _, ok := _c.mutation.ViolationType(); !ok {
		return &ValidationError{Name: "violation_type", err: errors.New(`ent: missing required field "ViolationEvent.violation_type"`)}
	}
	if v, ok := _c.mutation.ViolationType(); ok {
		if err := violationevent.ViolationTypeValidator(v); err != nil {
			return &ValidationError{Name: "violation_type", err: fmt.Errorf(`ent: validator failed for field "ViolationEvent.violation_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Details(); !ok {
		return &ValidationError{Name: "details", err: errors.New(`ent: missing required field "ViolationEvent.details"`)}
	}
	if _, ok := _c.mutation.Reported(); !ok {
		return &ValidationError{Name: "reported", err: errors.New(`ent: missing required field "ViolationEvent.reported"`)}
	}
	return nil
}

func (_c *ViolationEventCreate) sqlSave(ctx context.Context) (*ViolationEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ViolationEventCreate) createSpec() (*ViolationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ViolationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(violationevent.Table, sqlgraph.NewFieldSpec(violationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(violationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(violationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(violationevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.ProctorSessionID(); ok {
		_spec.SetField(violationevent.FieldProctorSessionID, field.TypeString, value)
		_node.ProctorSessionID = value
	}
	if value, ok := _c.mutation.ViolationType(); ok {
		_spec.SetField(violationevent.FieldViolationType, field.TypeString, value)
		_node.ViolationType = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(violationevent.FieldDetails, field.TypeString, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.Reported(); ok {
		_spec.SetField(violationevent.FieldReported, field.TypeBool, value)
		_node.Reported = value
	}
	return _node, _spec
}

// ViolationEventCreateBulk is the builder for creating many ViolationEvent entities in bulk.
type ViolationEventCreateBulk struct {
	config
	err      error
	builders []*ViolationEventCreate
}

// Save creates the ViolationEvent entities in the database.
func (_c *ViolationEventCreateBulk) Save(ctx context.Context) ([]*ViolationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ViolationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ViolationEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ViolationEventCreateBulk) SaveX(ctx context.Context) []*ViolationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ViolationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ViolationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
