// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/nvasanth/candex/ent/answerevent"
	"github.com/nvasanth/candex/ent/apirequestevent"
	"github.com/nvasanth/candex/ent/attemptevent"
	"github.com/nvasanth/candex/ent/schema"
	"github.com/nvasanth/candex/ent/violationevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apirequesteventMixin := schema.APIRequestEvent{}.Mixin()
	apirequesteventMixinFields0 := apirequesteventMixin[0].Fields()
	_ = apirequesteventMixinFields0
	apirequesteventFields := schema.APIRequestEvent{}.Fields()
	_ = apirequesteventFields
	// apirequesteventDescTimestamp is the schema descriptor for timestamp field.
	apirequesteventDescTimestamp := apirequesteventMixinFields0[1].Descriptor()
	// apirequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	apirequestevent.DefaultTimestamp = apirequesteventDescTimestamp.Default.(func() time.Time)
	// apirequesteventDescMethod is the schema descriptor for method field.
	apirequesteventDescMethod := apirequesteventFields[0].Descriptor()
	// apirequestevent.MethodValidator is a validator for the "method" field. It is called by the builders before save.
	apirequestevent.MethodValidator = apirequesteventDescMethod.Validators[0].(func(string) error)
	// apirequesteventDescPath is the schema descriptor for path field.
	apirequesteventDescPath := apirequesteventFields[1].Descriptor()
	// apirequestevent.PathValidator is a validator for the "path" field. It is called by the builders before save.
	apirequestevent.PathValidator = apirequesteventDescPath.Validators[0].(func(string) error)
	// apirequesteventDescStatusCode is the schema descriptor for status_code field.
	apirequesteventDescStatusCode := apirequesteventFields[2].Descriptor()
	// apirequestevent.DefaultStatusCode holds the default value on creation for the status_code field.
	apirequestevent.DefaultStatusCode = apirequesteventDescStatusCode.Default.(int)
	// apirequesteventDescAttempts is the schema descriptor for attempts field.
	apirequesteventDescAttempts := apirequesteventFields[3].Descriptor()
	// apirequestevent.DefaultAttempts holds the default value on creation for the attempts field.
	apirequestevent.DefaultAttempts = apirequesteventDescAttempts.Default.(int)
	// apirequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	apirequesteventDescLatencyMs := apirequesteventFields[4].Descriptor()
	// apirequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	apirequestevent.DefaultLatencyMs = apirequesteventDescLatencyMs.Default.(int64)
	// apirequesteventDescErrorMessage is the schema descriptor for error_message field.
	apirequesteventDescErrorMessage := apirequesteventFields[6].Descriptor()
	// apirequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	apirequestevent.DefaultErrorMessage = apirequesteventDescErrorMessage.Default.(string)
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescAttemptID is the schema descriptor for attempt_id field.
	answereventDescAttemptID := answereventFields[0].Descriptor()
	// answerevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	answerevent.AttemptIDValidator = answereventDescAttemptID.Validators[0].(func(string) error)
	// answereventDescRound is the schema descriptor for round field.
	answereventDescRound := answereventFields[1].Descriptor()
	// answerevent.RoundValidator is a validator for the "round" field. It is called by the builders before save.
	answerevent.RoundValidator = answereventDescRound.Validators[0].(func(string) error)
	// answereventDescAnswerKind is the schema descriptor for answer_kind field.
	answereventDescAnswerKind := answereventFields[3].Descriptor()
	// answerevent.AnswerKindValidator is a validator for the "answer_kind" field. It is called by the builders before save.
	answerevent.AnswerKindValidator = answereventDescAnswerKind.Validators[0].(func(string) error)
	// answereventDescAnswerValue is the schema descriptor for answer_value field.
	answereventDescAnswerValue := answereventFields[4].Descriptor()
	// answerevent.DefaultAnswerValue holds the default value on creation for the answer_value field.
	answerevent.DefaultAnswerValue = answereventDescAnswerValue.Default.(string)
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[0].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescAction is the schema descriptor for action field.
	attempteventDescAction := attempteventFields[1].Descriptor()
	// attemptevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	attemptevent.ActionValidator = attempteventDescAction.Validators[0].(func(string) error)
	// attempteventDescRound is the schema descriptor for round field.
	attempteventDescRound := attempteventFields[2].Descriptor()
	// attemptevent.DefaultRound holds the default value on creation for the round field.
	attemptevent.DefaultRound = attempteventDescRound.Default.(string)
	// attempteventDescQuestionsAnswered is the schema descriptor for questions_answered field.
	attempteventDescQuestionsAnswered := attempteventFields[3].Descriptor()
	// attemptevent.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	attemptevent.DefaultQuestionsAnswered = attempteventDescQuestionsAnswered.Default.(int)
	// attempteventDescDurationSecs is the schema descriptor for duration_secs field.
	attempteventDescDurationSecs := attempteventFields[4].Descriptor()
	// attemptevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	attemptevent.DefaultDurationSecs = attempteventDescDurationSecs.Default.(int)
	violationeventMixin := schema.ViolationEvent{}.Mixin()
	violationeventMixinFields0 := violationeventMixin[0].Fields()
	_ = violationeventMixinFields0
	violationeventFields := schema.ViolationEvent{}.Fields()
	_ = violationeventFields
	// violationeventDescTimestamp is the schema descriptor for timestamp field.
	violationeventDescTimestamp := violationeventMixinFields0[1].Descriptor()
	// violationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	violationevent.DefaultTimestamp = violationeventDescTimestamp.Default.(func() time.Time)
	// violationeventDescAttemptID is the schema descriptor for attempt_id field.
	violationeventDescAttemptID := violationeventFields[0].Descriptor()
	// violationevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	violationevent.AttemptIDValidator = violationeventDescAttemptID.Validators[0].(func(string) error)
	// violationeventDescProctorSessionID is the schema descriptor for proctor_session_id field.
	violationeventDescProctorSessionID := violationeventFields[1].Descriptor()
	// violationevent.DefaultProctorSessionID holds the default value on creation for the proctor_session_id field.
	violationevent.DefaultProctorSessionID = violationeventDescProctorSessionID.Default.(string)
	// violationeventDescViolationType is the schema descriptor for violation_type field.
	violationeventDescViolationType := violationeventFields[2].Descriptor()
	// violationevent.ViolationTypeValidator is a validator for the "violation_type" field. It is called by the builders before save.
	violationevent.ViolationTypeValidator = violationeventDescViolationType.Validators[0].(func(string) error)
	// violationeventDescDetails is the schema descriptor for details field.
	violationeventDescDetails := violationeventFields[3].Descriptor()
	// violationevent.DefaultDetails holds the default value on creation for the details field.
	violationevent.DefaultDetails = violationeventDescDetails.Default.(string)
}
