// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestsColumns holds the columns for the "llm_requests" table.
	LlmRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestsTable holds the schema information for the "llm_requests" table.
	LlmRequestsTable = &schema.Table{
		Name:       "llm_requests",
		Columns:    LlmRequestsColumns,
		PrimaryKey: []*schema.Column{LlmRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequest_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestsColumns[1]},
			},
			{
				Name:    "llmrequest_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestsColumns[4]},
			},
			{
				Name:    "llmrequest_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestsColumns[8]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "level", Type: field.TypeString, Default: ""},
		{Name: "topic", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "question_type", Type: field.TypeString, Default: ""},
		{Name: "statement", Type: field.TypeString, Size: 2147483647},
		{Name: "answer", Type: field.TypeString},
		{Name: "working", Type: field.TypeJSON},
		{Name: "choices", Type: field.TypeJSON, Nullable: true},
		{Name: "hint", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
			{
				Name:    "session_difficulty",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[4]},
			},
		},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "answer_text", Type: field.TypeString, Size: 2147483647},
		{Name: "parsed_value", Type: field.TypeFloat64, Nullable: true},
		{Name: "correct", Type: field.TypeBool, Nullable: true},
		{Name: "feedback", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "session_submissions", Type: field.TypeString},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "submissions_sessions_submissions",
				Columns:    []*schema.Column{SubmissionsColumns[6]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "submission_created_at",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestsTable,
		SessionsTable,
		SubmissionsTable,
	}
)

func init() {
	SubmissionsTable.ForeignKeys[0].RefTable = SessionsTable
}
