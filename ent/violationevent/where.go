// Code generated by ent, DO NOT EDIT.

package violationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/nvasanth/candex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldAttemptID, v))
}

// ProctorSessionID applies equality check predicate on the "proctor_session_id" field. It's identical to ProctorSessionIDEQ.
func ProctorSessionID(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldProctorSessionID, v))
}

// ViolationType applies equality check predicate on the "violation_type" field. It's identical to ViolationTypeEQ.
func ViolationType(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldViolationType, v))
}

// Details applies equality check predicate on the "details" field. It's identical to DetailsEQ.
func Details(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldDetails, v))
}

// Reported applies equality check predicate on the "reported" field. It's identical to ReportedEQ.
func Reported(v bool) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldReported, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContainsFold(FieldAttemptID, v))
}

// ProctorSessionIDEQ applies the EQ predicate on the "proctor_session_id" field.
func ProctorSessionIDEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldProctorSessionID, v))
}

// ProctorSessionIDNEQ applies the NEQ predicate on the "proctor_session_id" field.
func ProctorSessionIDNEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldProctorSessionID, v))
}

// ProctorSessionIDIn applies the In predicate on the "proctor_session_id" field.
func ProctorSessionIDIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldProctorSessionID, vs...))
}

// ProctorSessionIDNotIn applies the NotIn predicate on the "proctor_session_id" field.
func ProctorSessionIDNotIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldProctorSessionID, vs...))
}

// ProctorSessionIDGT applies the GT predicate on the "proctor_session_id" field.
func ProctorSessionIDGT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldProctorSessionID, v))
}

// ProctorSessionIDGTE applies the GTE predicate on the "proctor_session_id" field.
func ProctorSessionIDGTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldProctorSessionID, v))
}

// ProctorSessionIDLT applies the LT predicate on the "proctor_session_id" field.
func ProctorSessionIDLT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldProctorSessionID, v))
}

// ProctorSessionIDLTE applies the LTE predicate on the "proctor_session_id" field.
func ProctorSessionIDLTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldProctorSessionID, v))
}

// ProctorSessionIDContains applies the Contains predicate on the "proctor_session_id" field.
func ProctorSessionIDContains(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContains(FieldProctorSessionID, v))
}

// ProctorSessionIDHasPrefix applies the HasPrefix predicate on the "proctor_session_id" field.
func ProctorSessionIDHasPrefix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasPrefix(FieldProctorSessionID, v))
}

// ProctorSessionIDHasSuffix applies the HasSuffix predicate on the "proctor_session_id" field.
func ProctorSessionIDHasSuffix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasSuffix(FieldProctorSessionID, v))
}

// ProctorSessionIDEqualFold applies the EqualFold predicate on the "proctor_session_id" field.
func ProctorSessionIDEqualFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEqualFold(FieldProctorSessionID, v))
}

// ProctorSessionIDContainsFold applies the ContainsFold predicate on the "proctor_session_id" field.
func ProctorSessionIDContainsFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContainsFold(FieldProctorSessionID, v))
}

// ViolationTypeEQ applies the EQ predicate on the "violation_type" field.
func ViolationTypeEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldViolationType, v))
}

// ViolationTypeNEQ applies the NEQ predicate on the "violation_type" field.
func ViolationTypeNEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldViolationType, v))
}

// ViolationTypeIn applies the In predicate on the "violation_type" field.
func ViolationTypeIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldViolationType, vs...))
}

// ViolationTypeNotIn applies the NotIn predicate on the "violation_type" field.
func ViolationTypeNotIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldViolationType, vs...))
}

// ViolationTypeGT applies the GT predicate on the "violation_type" field.
func ViolationTypeGT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldViolationType, v))
}

// ViolationTypeGTE applies the GTE predicate on the "violation_type" field.
func ViolationTypeGTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldViolationType, v))
}

// ViolationTypeLT applies the LT predicate on the "violation_type" field.
func ViolationTypeLT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldViolationType, v))
}

// ViolationTypeLTE applies the LTE predicate on the "violation_type" field.
func ViolationTypeLTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldViolationType, v))
}

// ViolationTypeContains applies the Contains predicate on the "violation_type" field.
func ViolationTypeContains(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContains(FieldViolationType, v))
}

// ViolationTypeHasPrefix applies the HasPrefix predicate on the "violation_type" field.
func ViolationTypeHasPrefix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasPrefix(FieldViolationType, v))
}

// ViolationTypeHasSuffix applies the HasSuffix predicate on the "violation_type" field.
func ViolationTypeHasSuffix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasSuffix(FieldViolationType, v))
}

// ViolationTypeEqualFold applies the EqualFold predicate on the "violation_type" field.
func ViolationTypeEqualFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEqualFold(FieldViolationType, v))
}

// ViolationTypeContainsFold applies the ContainsFold predicate on the "violation_type" field.
func ViolationTypeContainsFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContainsFold(FieldViolationType, v))
}

// DetailsEQ applies the EQ predicate on the "details" field.
func DetailsEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldDetails, v))
}

// DetailsNEQ applies the NEQ predicate on the "details" field.
func DetailsNEQ(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldDetails, v))
}

// DetailsIn applies the In predicate on the "details" field.
func DetailsIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldIn(FieldDetails, vs...))
}

// DetailsNotIn applies the NotIn predicate on the "details" field.
func DetailsNotIn(vs ...string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNotIn(FieldDetails, vs...))
}

// DetailsGT applies the GT predicate on the "details" field.
func DetailsGT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGT(FieldDetails, v))
}

// DetailsGTE applies the GTE predicate on the "details" field.
func DetailsGTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldGTE(FieldDetails, v))
}

// DetailsLT applies the LT predicate on the "details" field.
func DetailsLT(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLT(FieldDetails, v))
}

// DetailsLTE applies the LTE predicate on the "details" field.
func DetailsLTE(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldLTE(FieldDetails, v))
}

// DetailsContains applies the Contains predicate on the "details" field.
func DetailsContains(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContains(FieldDetails, v))
}

// DetailsHasPrefix applies the HasPrefix predicate on the "details" field.
func DetailsHasPrefix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasPrefix(FieldDetails, v))
}

// DetailsHasSuffix applies the HasSuffix predicate on the "details" field.
func DetailsHasSuffix(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldHasSuffix(FieldDetails, v))
}

// DetailsEqualFold applies the EqualFold predicate on the "details" field.
func DetailsEqualFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEqualFold(FieldDetails, v))
}

// DetailsContainsFold applies the ContainsFold predicate on the "details" field.
func DetailsContainsFold(v string) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldContainsFold(FieldDetails, v))
}

// ReportedEQ applies the EQ predicate on the "reported" field.
func ReportedEQ(v bool) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldEQ(FieldReported, v))
}

// ReportedNEQ applies the NEQ predicate on the "reported" field.
func ReportedNEQ(v bool) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.FieldNEQ(FieldReported, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ViolationEvent) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ViolationEvent) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ViolationEvent) predicate.ViolationEvent {
	return predicate.ViolationEvent(sql.NotPredicates(p))
}
