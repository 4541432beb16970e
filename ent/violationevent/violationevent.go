// Code generated by ent, DO NOT EDIT.

package violationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the violationevent type in the database.
	Label = "violation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// FieldProctorSessionID holds the string denoting the proctor_session_id field in the database.
	FieldProctorSessionID = "proctor_session_id"
	// FieldViolationType holds the string denoting the violation_type field in the database.
	FieldViolationType = "violation_type"
	// FieldDetails holds the string denoting the details field in the database.
	FieldDetails = "details"
	// FieldReported holds the string denoting the reported field in the database.
	FieldReported = "reported"
	// Table holds the table name of the violationevent in the database.
	Table = "violation_events"
)

// Columns holds all SQL columns for violationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAttemptID,
	FieldProctorSessionID,
	FieldViolationType,
	FieldDetails,
	FieldReported,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	AttemptIDValidator func(string) error
	// DefaultProctorSessionID holds the default value on creation for the "proctor_session_id" field.
	DefaultProctorSessionID string
	// ViolationTypeValidator is a validator for the "violation_type" field. It is called by the builders before save.
	ViolationTypeValidator func(string) error
	// DefaultDetails holds the default value on creation for the "details" field.
	DefaultDetails string
)

// OrderOption defines the ordering options for the ViolationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByAttemptID orders the results by the attempt_id field.
func ByAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptID, opts...).ToFunc()
}

// ByProctorSessionID orders the results by the proctor_session_id field.
func ByProctorSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProctorSessionID, opts...).ToFunc()
}

// ByViolationType orders the results by the violation_type field.
func ByViolationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldViolationType, opts...).ToFunc()
}

// ByDetails orders the results by the details field.
func ByDetails(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetails, opts...).ToFunc()
}

// ByReported orders the results by the reported field.
func ByReported(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReported, opts...).ToFunc()
}
