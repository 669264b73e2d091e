// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathtravel/ent/journeyevent"
	"github.com/abhisek/mathtravel/ent/predicate"
)

// JourneyEventUpdate is the builder for updating JourneyEvent entities.
type JourneyEventUpdate struct {
	config
	hooks    []Hook
	mutation *JourneyEventMutation
}

// Where appends a list predicates to the JourneyEventUpdate builder.
func (_u *JourneyEventUpdate) Where(ps ...predicate.JourneyEvent) *JourneyEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAction sets the "action" field.
func (_u *JourneyEventUpdate) SetAction(v string) *JourneyEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableAction(v *string) *JourneyEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCountryID sets the "country_id" field.
func (_u *JourneyEventUpdate) SetCountryID(v string) *JourneyEventUpdate {
	_u.mutation.SetCountryID(v)
	return _u
}

// SetNillableCountryID sets the "country_id" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableCountryID(v *string) *JourneyEventUpdate {
	if v != nil {
		_u.SetCountryID(*v)
	}
	return _u
}

// SetLandmarkID sets the "landmark_id" field.
func (_u *JourneyEventUpdate) SetLandmarkID(v string) *JourneyEventUpdate {
	_u.mutation.SetLandmarkID(v)
	return _u
}

// SetNillableLandmarkID sets the "landmark_id" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableLandmarkID(v *string) *JourneyEventUpdate {
	if v != nil {
		_u.SetLandmarkID(*v)
	}
	return _u
}

// ClearLandmarkID clears the value of the "landmark_id" field.
func (_u *JourneyEventUpdate) ClearLandmarkID() *JourneyEventUpdate {
	_u.mutation.ClearLandmarkID()
	return _u
}

// SetScore sets the "score" field.
func (_u *JourneyEventUpdate) SetScore(v int) *JourneyEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableScore(v *int) *JourneyEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *JourneyEventUpdate) AddScore(v int) *JourneyEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *JourneyEventUpdate) SetSessionID(v string) *JourneyEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *JourneyEventUpdate) SetNillableSessionID(v *string) *JourneyEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the JourneyEventMutation object of the builder.
func (_u *JourneyEventUpdate) Mutation() *JourneyEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JourneyEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JourneyEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JourneyEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JourneyEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JourneyEventUpdate) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := journeyevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CountryID(); ok {
		if err := journeyevent.CountryIDValidator(v); err != nil {
			return &ValidationError{Name: "country_id", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.country_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := journeyevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *JourneyEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(journeyevent.Table, journeyevent.Columns, sqlgraph.NewFieldSpec(journeyevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(journeyevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.CountryID(); ok {
		_spec.SetField(journeyevent.FieldCountryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LandmarkID(); ok {
		_spec.SetField(journeyevent.FieldLandmarkID, field.TypeString, value)
	}
	if _u.mutation.LandmarkIDCleared() {
		_spec.ClearField(journeyevent.FieldLandmarkID, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(journeyevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(journeyevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(journeyevent.FieldSessionID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{journeyevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JourneyEventUpdateOne is the builder for updating a single JourneyEvent entity.
type JourneyEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JourneyEventMutation
}

// SetAction sets the "action" field.
func (_u *JourneyEventUpdateOne) SetAction(v string) *JourneyEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableAction(v *string) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCountryID sets the "country_id" field.
func (_u *JourneyEventUpdateOne) SetCountryID(v string) *JourneyEventUpdateOne {
	_u.mutation.SetCountryID(v)
	return _u
}

// SetNillableCountryID sets the "country_id" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableCountryID(v *string) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetCountryID(*v)
	}
	return _u
}

// SetLandmarkID sets the "landmark_id" field.
func (_u *JourneyEventUpdateOne) SetLandmarkID(v string) *JourneyEventUpdateOne {
	_u.mutation.SetLandmarkID(v)
	return _u
}

// SetNillableLandmarkID sets the "landmark_id" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableLandmarkID(v *string) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetLandmarkID(*v)
	}
	return _u
}

// ClearLandmarkID clears the value of the "landmark_id" field.
func (_u *JourneyEventUpdateOne) ClearLandmarkID() *JourneyEventUpdateOne {
	_u.mutation.ClearLandmarkID()
	return _u
}

// SetScore sets the "score" field.
func (_u *JourneyEventUpdateOne) SetScore(v int) *JourneyEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableScore(v *int) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *JourneyEventUpdateOne) AddScore(v int) *JourneyEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *JourneyEventUpdateOne) SetSessionID(v string) *JourneyEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *JourneyEventUpdateOne) SetNillableSessionID(v *string) *JourneyEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the JourneyEventMutation object of the builder.
func (_u *JourneyEventUpdateOne) Mutation() *JourneyEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the JourneyEventUpdate builder.
func (_u *JourneyEventUpdateOne) Where(ps ...predicate.JourneyEvent) *JourneyEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JourneyEventUpdateOne) Select(field string, fields ...string) *JourneyEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JourneyEvent entity.
func (_u *JourneyEventUpdateOne) Save(ctx context.Context) (*JourneyEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JourneyEventUpdateOne) SaveX(ctx context.Context) *JourneyEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JourneyEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JourneyEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JourneyEventUpdateOne) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := journeyevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CountryID(); ok {
		if err := journeyevent.CountryIDValidator(v); err != nil {
			return &ValidationError{Name: "country_id", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.country_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := journeyevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *JourneyEventUpdateOne) sqlSave(ctx context.Context) (_node *JourneyEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(journeyevent.Table, journeyevent.Columns, sqlgraph.NewFieldSpec(journeyevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JourneyEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, journeyevent.FieldID)
		for _, f := range fields {
			if !journeyevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != journeyevent.FieldID {
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
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(journeyevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.CountryID(); ok {
		_spec.SetField(journeyevent.FieldCountryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LandmarkID(); ok {
		_spec.SetField(journeyevent.FieldLandmarkID, field.TypeString, value)
	}
	if _u.mutation.LandmarkIDCleared() {
		_spec.ClearField(journeyevent.FieldLandmarkID, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(journeyevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(journeyevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(journeyevent.FieldSessionID, field.TypeString, value)
	}
	_node = &JourneyEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{journeyevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
