// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APIRequestEventsColumns holds the columns for the "api_request_events" table.
	APIRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "method", Type: field.TypeString},
		{Name: "path", Type: field.TypeString},
		{Name: "status_code", Type: field.TypeInt, Default: 0},
		{Name: "attempts", Type: field.TypeInt, Default: 1},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// APIRequestEventsTable holds the schema information for the "api_request_events" table.
	APIRequestEventsTable = &schema.Table{
		Name:       "api_request_events",
		Columns:    APIRequestEventsColumns,
		PrimaryKey: []*schema.Column{APIRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "apirequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{APIRequestEventsColumns[1]},
			},
			{
				Name:    "apirequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{APIRequestEventsColumns[2]},
			},
			{
				Name:    "apirequestevent_path",
				Unique:  false,
				Columns: []*schema.Column{APIRequestEventsColumns[4]},
			},
			{
				Name:    "apirequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{APIRequestEventsColumns[8]},
			},
		},
	}
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "round", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeInt},
		{Name: "answer_kind", Type: field.TypeString},
		{Name: "answer_value", Type: field.TypeString, Default: ""},
		{Name: "submitted", Type: field.TypeBool},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_round",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
		},
	}
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "round", Type: field.TypeString, Default: ""},
		{Name: "questions_answered", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_action",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
		},
	}
	// ViolationEventsColumns holds the columns for the "violation_events" table.
	ViolationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "proctor_session_id", Type: field.TypeString, Default: ""},
		{Name: "violation_type", Type: field.TypeString},
		{Name: "details", Type: field.TypeString, Default: ""},
		{Name: "reported", Type: field.TypeBool},
	}
	// ViolationEventsTable holds the schema information for the "violation_events" table.
	ViolationEventsTable = &schema.Table{
		Name:       "violation_events",
		Columns:    ViolationEventsColumns,
		PrimaryKey: []*schema.Column{ViolationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "violationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ViolationEventsColumns[1]},
			},
			{
				Name:    "violationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ViolationEventsColumns[2]},
			},
			{
				Name:    "violationevent_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{ViolationEventsColumns[3]},
			},
			{
				Name:    "violationevent_violation_type",
				Unique:  false,
				Columns: []*schema.Column{ViolationEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APIRequestEventsTable,
		AnswerEventsTable,
		AttemptEventsTable,
		ViolationEventsTable,
	}
)

func init() {
}
