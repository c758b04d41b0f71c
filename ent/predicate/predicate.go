// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequest is the predicate function for llmrequest builders.
type LLMRequest func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Submission is the predicate function for submission builders.
type Submission func(*sql.Selector)
