// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// APIRequestEvent is the predicate function for apirequestevent builders.
type APIRequestEvent func(*sql.Selector)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// ViolationEvent is the predicate function for violationevent builders.
type ViolationEvent func(*sql.Selector)
