// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the answerevent type in the database.
	Label = "answer_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// FieldRound holds the string denoting the round field in the database.
	FieldRound = "round"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldAnswerKind holds the string denoting the answer_kind field in the database.
	FieldAnswerKind = "answer_kind"
	// FieldAnswerValue holds the string denoting the answer_value field in the database.
	FieldAnswerValue = "answer_value"
	// FieldSubmitted holds the string denoting the submitted field in the database.
	FieldSubmitted = "submitted"
	// Table holds the table name of the answerevent in the database.
	Table = "answer_events"
)

// Columns holds all SQL columns for answerevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAttemptID,
	FieldRound,
	FieldQuestionID,
	FieldAnswerKind,
	FieldAnswerValue,
	FieldSubmitted,
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
	// RoundValidator is a validator for the "round" field. It is called by the builders before save.
	RoundValidator func(string) error
	// AnswerKindValidator is a validator for the "answer_kind" field. It is called by the builders before save.
	AnswerKindValidator func(string) error
	// DefaultAnswerValue holds the default value on creation for the "answer_value" field.
	DefaultAnswerValue string
)

// OrderOption defines the ordering options for the AnswerEvent queries.
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

// ByRound orders the results by the round field.
func ByRound(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRound, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByAnswerKind orders the results by the answer_kind field.
func ByAnswerKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerKind, opts...).ToFunc()
}

// ByAnswerValue orders the results by the answer_value field.
func ByAnswerValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerValue, opts...).ToFunc()
}

// BySubmitted orders the results by the submitted field.
func BySubmitted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmitted, opts...).ToFunc()
}
