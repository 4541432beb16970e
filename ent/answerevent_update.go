// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nvasanth/candex/ent/answerevent"
	"github.com/nvasanth/candex/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AnswerEventUpdate) SetAttemptID(v string) *AnswerEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableAttemptID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetRound sets the "round" field.
func (_u *AnswerEventUpdate) SetRound(v string) *AnswerEventUpdate {
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableRound(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdate) SetQuestionID(v int) *AnswerEventUpdate {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionID(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *AnswerEventUpdate) AddQuestionID(v int) *AnswerEventUpdate {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetAnswerKind sets the "answer_kind" field.
func (_u *AnswerEventUpdate) SetAnswerKind(v string) *AnswerEventUpdate {
	_u.mutation.SetAnswerKind(v)
	return _u
}

// SetNillableAnswerKind sets the "answer_kind" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableAnswerKind(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetAnswerKind(*v)
	}
	return _u
}

// SetAnswerValue sets the "answer_value" field.
func (_u *AnswerEventUpdate) SetAnswerValue(v string) *AnswerEventUpdate {
	_u.mutation.SetAnswerValue(v)
	return _u
}

// SetNillableAnswerValue sets the "answer_value" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableAnswerValue(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetAnswerValue(*v)
	}
	return _u
}

// SetSubmitted sets the "submitted" field.
func (_u *AnswerEventUpdate) SetSubmitted(v bool) *AnswerEventUpdate {
	_u.mutation.SetSubmitted(v)
	return _u
}

// SetNillableSubmitted sets the "submitted" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSubmitted(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetSubmitted(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := answerevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Round(); ok {
		if err := answerevent.RoundValidator(v); err != nil {
			return &ValidationError{Name: "round", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.round": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnswerKind(); ok {
		if err := answerevent.AnswerKindValidator(v); err != nil {
			return &ValidationError{Name: "answer_kind", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.answer_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(answerevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(answerevent.FieldRound, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(answerevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnswerKind(); ok {
		_spec.SetField(answerevent.FieldAnswerKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerValue(); ok {
		_spec.SetField(answerevent.FieldAnswerValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Submitted(); ok {
		_spec.SetField(answerevent.FieldSubmitted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AnswerEventUpdateOne) SetAttemptID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableAttemptID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetRound sets the "round" field.
func (_u *AnswerEventUpdateOne) SetRound(v string) *AnswerEventUpdateOne {
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableRound(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdateOne) SetQuestionID(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionID(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *AnswerEventUpdateOne) AddQuestionID(v int) *AnswerEventUpdateOne {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetAnswerKind sets the "answer_kind" field.
func (_u *AnswerEventUpdateOne) SetAnswerKind(v string) *AnswerEventUpdateOne {
	_u.mutation.SetAnswerKind(v)
	return _u
}

// SetNillableAnswerKind sets the "answer_kind" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableAnswerKind(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetAnswerKind(*v)
	}
	return _u
}

// SetAnswerValue sets the "answer_value" field.
func (_u *AnswerEventUpdateOne) SetAnswerValue(v string) *AnswerEventUpdateOne {
	_u.mutation.SetAnswerValue(v)
	return _u
}

// SetNillableAnswerValue sets the "answer_value" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableAnswerValue(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetAnswerValue(*v)
	}
	return _u
}

// SetSubmitted sets the "submitted" field.
func (_u *AnswerEventUpdateOne) SetSubmitted(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetSubmitted(v)
	return _u
}

// SetNillableSubmitted sets the "submitted" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSubmitted(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSubmitted(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := answerevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Round(); ok {
		if err := answerevent.RoundValidator(v); err != nil {
			return &ValidationError{Name: "round", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.round": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnswerKind(); ok {
		if err := answerevent.AnswerKindValidator(v); err != nil {
			return &ValidationError{Name: "answer_kind", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.answer_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
		_spec.SetField(answerevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(answerevent.FieldRound, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(answerevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnswerKind(); ok {
		_spec.SetField(answerevent.FieldAnswerKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerValue(); ok {
		_spec.SetField(answerevent.FieldAnswerValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Submitted(); ok {
		_spec.SetField(answerevent.FieldSubmitted, field.TypeBool, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
