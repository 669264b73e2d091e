// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathtravel/ent/predicate"
	"github.com/abhisek/mathtravel/ent/ticketevent"
)

// TicketEventUpdate is the builder for updating TicketEvent entities.
type TicketEventUpdate struct {
	config
	hooks    []Hook
	mutation *TicketEventMutation
}

// Where appends a list predicates to the TicketEventUpdate builder.
func (_u *TicketEventUpdate) Where(ps ...predicate.TicketEvent) *TicketEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TicketEventUpdate) SetAmount(v int) *TicketEventUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TicketEventUpdate) SetNillableAmount(v *int) *TicketEventUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *TicketEventUpdate) AddAmount(v int) *TicketEventUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *TicketEventUpdate) SetReason(v string) *TicketEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *TicketEventUpdate) SetNillableReason(v *string) *TicketEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *TicketEventUpdate) SetQuestionID(v string) *TicketEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *TicketEventUpdate) SetNillableQuestionID(v *string) *TicketEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// ClearQuestionID clears the value of the "question_id" field.
func (_u *TicketEventUpdate) ClearQuestionID() *TicketEventUpdate {
	_u.mutation.ClearQuestionID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TicketEventUpdate) SetSessionID(v string) *TicketEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TicketEventUpdate) SetNillableSessionID(v *string) *TicketEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the TicketEventMutation object of the builder.
func (_u *TicketEventUpdate) Mutation() *TicketEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TicketEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TicketEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketEventUpdate) check() error {
	if v, ok := _u.mutation.Amount(); ok {
		if err := ticketevent.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "TicketEvent.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := ticketevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "TicketEvent.reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := ticketevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TicketEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *TicketEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticketevent.Table, ticketevent.Columns, sqlgraph.NewFieldSpec(ticketevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(ticketevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(ticketevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(ticketevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(ticketevent.FieldQuestionID, field.TypeString, value)
	}
	if _u.mutation.QuestionIDCleared() {
		_spec.ClearField(ticketevent.FieldQuestionID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(ticketevent.FieldSessionID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticketevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TicketEventUpdateOne is the builder for updating a single TicketEvent entity.
type TicketEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TicketEventMutation
}

// SetAmount sets the "amount" field.
func (_u *TicketEventUpdateOne) SetAmount(v int) *TicketEventUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TicketEventUpdateOne) SetNillableAmount(v *int) *TicketEventUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *TicketEventUpdateOne) AddAmount(v int) *TicketEventUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *TicketEventUpdateOne) SetReason(v string) *TicketEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *TicketEventUpdateOne) SetNillableReason(v *string) *TicketEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *TicketEventUpdateOne) SetQuestionID(v string) *TicketEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *TicketEventUpdateOne) SetNillableQuestionID(v *string) *TicketEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// ClearQuestionID clears the value of the "question_id" field.
func (_u *TicketEventUpdateOne) ClearQuestionID() *TicketEventUpdateOne {
	_u.mutation.ClearQuestionID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TicketEventUpdateOne) SetSessionID(v string) *TicketEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TicketEventUpdateOne) SetNillableSessionID(v *string) *TicketEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the TicketEventMutation object of the builder.
func (_u *TicketEventUpdateOne) Mutation() *TicketEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TicketEventUpdate builder.
func (_u *TicketEventUpdateOne) Where(ps ...predicate.TicketEvent) *TicketEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TicketEventUpdateOne) Select(field string, fields ...string) *TicketEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TicketEvent entity.
func (_u *TicketEventUpdateOne) Save(ctx context.Context) (*TicketEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TicketEventUpdateOne) SaveX(ctx context.Context) *TicketEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TicketEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TicketEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TicketEventUpdateOne) check() error {
	if v, ok := _u.mutation.Amount(); ok {
		if err := ticketevent.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "TicketEvent.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := ticketevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "TicketEvent.reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := ticketevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TicketEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *TicketEventUpdateOne) sqlSave(ctx context.Context) (_node *TicketEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ticketevent.Table, ticketevent.Columns, sqlgraph.NewFieldSpec(ticketevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TicketEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ticketevent.FieldID)
		for _, f := range fields {
			if !ticketevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ticketevent.FieldID {
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
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(ticketevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(ticketevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(ticketevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(ticketevent.FieldQuestionID, field.TypeString, value)
	}
	if _u.mutation.QuestionIDCleared() {
		_spec.ClearField(ticketevent.FieldQuestionID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(ticketevent.FieldSessionID, field.TypeString, value)
	}
	_node = &TicketEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ticketevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
