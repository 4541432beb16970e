// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nvasanth/candex/ent/violationevent"
)

// ViolationEvent is the model entity for the ViolationEvent schema.
type ViolationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to AttemptEvent
	AttemptID string `json:"attempt_id,omitempty"`
	// Backend proctoring session, empty for tab switches raised before start
	ProctorSessionID string `json:"proctor_session_id,omitempty"`
	// no_face, multiple_faces, looking_away, phone_detected, tab_switch
	ViolationType string `json:"violation_type,omitempty"`
	// Human-readable description shown to the candidate
	Details string `json:"details,omitempty"`
	// Whether the backend accepted the event log call
	Reported     bool `json:"reported,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ViolationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case violationevent.FieldReported:
			values[i] = new(sql.NullBool)
		case violationevent.FieldID, violationevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case violationevent.FieldAttemptID, violationevent.FieldProctorSessionID, violationevent.FieldViolationType, violationevent.FieldDetails:
			values[i] = new(sql.NullString)
		case violationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ViolationEvent fields.
func (_m *ViolationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case violationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case violationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case violationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case violationevent.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = value.String
			}
		case violationevent.FieldProctorSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proctor_session_id", values[i])
			} else if value.Valid {
				_m.ProctorSessionID = value.String
			}
		case violationevent.FieldViolationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field violation_type", values[i])
			} else if value.Valid {
				_m.ViolationType = value.String
			}
		case violationevent.FieldDetails:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field details", values[i])
			} else if value.Valid {
				_m.Details = value.String
			}
		case violationevent.FieldReported:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field reported", values[i])
			} else if value.Valid {
				_m.Reported = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ViolationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ViolationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ViolationEvent.
// Note that you need to call ViolationEvent.Unwrap() before calling this method if this ViolationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ViolationEvent) Update() *ViolationEventUpdateOne {
	return NewViolationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ViolationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ViolationEvent) Unwrap() *ViolationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ViolationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ViolationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ViolationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("attempt_id=")
	builder.WriteString(_m.AttemptID)
	builder.WriteString(", ")
	builder.WriteString("proctor_session_id=")
	builder.WriteString(_m.ProctorSessionID)
	builder.WriteString(", ")
	builder.WriteString("violation_type=")
	builder.WriteString(_m.ViolationType)
	builder.WriteString(", ")
	builder.WriteString("details=")
	builder.WriteString(_m.Details)
	builder.WriteString(", ")
	builder.WriteString("reported=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reported))
	builder.WriteByte(')')
	return builder.String()
}

// ViolationEvents is a parsable slice of ViolationEvent.
type ViolationEvents []*ViolationEvent
