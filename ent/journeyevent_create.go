// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathtravel/ent/journeyevent"
)

// JourneyEventCreate is the builder for creating a JourneyEvent entity.
type JourneyEventCreate struct {
	config
	mutation *JourneyEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *JourneyEventCreate) SetSequence(v int64) *JourneyEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *JourneyEventCreate) SetTimestamp(v time.Time) *JourneyEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *JourneyEventCreate) SetNillableTimestamp(v *time.Time) *JourneyEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *JourneyEventCreate) SetAction(v string) *JourneyEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetCountryID sets the "country_id" field.
func (_c *JourneyEventCreate) SetCountryID(v string) *JourneyEventCreate {
	_c.mutation.SetCountryID(v)
	return _c
}

// SetLandmarkID sets the "landmark_id" field.
func (_c *JourneyEventCreate) SetLandmarkID(v string) *JourneyEventCreate {
	_c.mutation.SetLandmarkID(v)
	return _c
}

// SetNillableLandmarkID sets the "landmark_id" field if the given value is not nil.
func (_c *JourneyEventCreate) SetNillableLandmarkID(v *string) *JourneyEventCreate {
	if v != nil {
		_c.SetLandmarkID(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *JourneyEventCreate) SetScore(v int) *JourneyEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *JourneyEventCreate) SetNillableScore(v *int) *JourneyEventCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *JourneyEventCreate) SetSessionID(v string) *JourneyEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// Mutation returns the JourneyEventMutation object of the builder.
func (_c *JourneyEventCreate) Mutation() *JourneyEventMutation {
	return _c.mutation
}

// Save creates the JourneyEvent in the database.
func (_c *JourneyEventCreate) Save(ctx context.Context) (*JourneyEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JourneyEventCreate) SaveX(ctx context.Context) *JourneyEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JourneyEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JourneyEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JourneyEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := journeyevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := journeyevent.DefaultScore
		_c.mutation.SetScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JourneyEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "JourneyEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "JourneyEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "JourneyEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := journeyevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CountryID(); !ok {
		return &ValidationError{Name: "country_id", err: errors.New(`ent: missing required field "JourneyEvent.country_id"`)}
	}
	if v, ok := _c.mutation.CountryID(); ok {
		if err := journeyevent.CountryIDValidator(v); err != nil {
			return &ValidationError{Name: "country_id", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.country_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "JourneyEvent.score"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "JourneyEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := journeyevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "JourneyEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_c *JourneyEventCreate) sqlSave(ctx context.Context) (*JourneyEvent, error) {
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

func (_c *JourneyEventCreate) createSpec() (*JourneyEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &JourneyEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(journeyevent.Table, sqlgraph.NewFieldSpec(journeyevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(journeyevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(journeyevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(journeyevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.CountryID(); ok {
		_spec.SetField(journeyevent.FieldCountryID, field.TypeString, value)
		_node.CountryID = value
	}
	if value, ok := _c.mutation.LandmarkID(); ok {
		_spec.SetField(journeyevent.FieldLandmarkID, field.TypeString, value)
		_node.LandmarkID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(journeyevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(journeyevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// JourneyEventCreateBulk is the builder for creating many JourneyEvent entities in bulk.
type JourneyEventCreateBulk struct {
	config
	err      error
	builders []*JourneyEventCreate
}

// Save creates the JourneyEvent entities in the database.
func (_c *JourneyEventCreateBulk) Save(ctx context.Context) ([]*JourneyEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JourneyEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JourneyEventMutation)
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
func (_c *JourneyEventCreateBulk) SaveX(ctx context.Context) []*JourneyEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JourneyEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JourneyEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
