// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathtravel/ent/journeyevent"
)

// JourneyEvent is the model entity for the JourneyEvent schema.
type JourneyEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// landmark-complete, country-enter, or journey-complete
	Action string `json:"action,omitempty"`
	// CountryID holds the value of the "country_id" field.
	CountryID string `json:"country_id,omitempty"`
	// Empty for country-enter
	LandmarkID string `json:"landmark_id,omitempty"`
	// Landmark score at the time of the event
	Score int `json:"score,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID    string `json:"session_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JourneyEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case journeyevent.FieldID, journeyevent.FieldSequence, journeyevent.FieldScore:
			values[i] = new(sql.NullInt64)
		case journeyevent.FieldAction, journeyevent.FieldCountryID, journeyevent.FieldLandmarkID, journeyevent.FieldSessionID:
			values[i] = new(sql.NullString)
		case journeyevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JourneyEvent fields.
func (_m *JourneyEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case journeyevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case journeyevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case journeyevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case journeyevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case journeyevent.FieldCountryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country_id", values[i])
			} else if value.Valid {
				_m.CountryID = value.String
			}
		case journeyevent.FieldLandmarkID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field landmark_id", values[i])
			} else if value.Valid {
				_m.LandmarkID = value.String
			}
		case journeyevent.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case journeyevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JourneyEvent.
// This includes values selected through modifiers, order, etc.
func (_m *JourneyEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this JourneyEvent.
// Note that you need to call JourneyEvent.Unwrap() before calling this method if this JourneyEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JourneyEvent) Update() *JourneyEventUpdateOne {
	return NewJourneyEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JourneyEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JourneyEvent) Unwrap() *JourneyEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JourneyEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JourneyEvent) String() string {
	var builder strings.Builder
	builder.WriteString("JourneyEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("country_id=")
	builder.WriteString(_m.CountryID)
	builder.WriteString(", ")
	builder.WriteString("landmark_id=")
	builder.WriteString(_m.LandmarkID)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteByte(')')
	return builder.String()
}

// JourneyEvents is a parsable slice of JourneyEvent.
type JourneyEvents []*JourneyEvent
