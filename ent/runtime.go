// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/mathcoach/ent/llmrequest"
	"github.com/abhisek/mathcoach/ent/schema"
	"github.com/abhisek/mathcoach/ent/session"
	"github.com/abhisek/mathcoach/ent/submission"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequestFields := schema.LLMRequest{}.Fields()
	_ = llmrequestFields
	// llmrequestDescCreatedAt is the schema descriptor for created_at field.
	llmrequestDescCreatedAt := llmrequestFields[0].Descriptor()
	// llmrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmrequest.DefaultCreatedAt = llmrequestDescCreatedAt.Default.(func() time.Time)
	// llmrequestDescInputTokens is the schema descriptor for input_tokens field.
	llmrequestDescInputTokens := llmrequestFields[4].Descriptor()
	// llmrequest.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequest.DefaultInputTokens = llmrequestDescInputTokens.Default.(int)
	// llmrequestDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequestDescOutputTokens := llmrequestFields[5].Descriptor()
	// llmrequest.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequest.DefaultOutputTokens = llmrequestDescOutputTokens.Default.(int)
	// llmrequestDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequestDescLatencyMs := llmrequestFields[6].Descriptor()
	// llmrequest.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequest.DefaultLatencyMs = llmrequestDescLatencyMs.Default.(int64)
	// llmrequestDescErrorMessage is the schema descriptor for error_message field.
	llmrequestDescErrorMessage := llmrequestFields[8].Descriptor()
	// llmrequest.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequest.DefaultErrorMessage = llmrequestDescErrorMessage.Default.(string)
	// llmrequestDescRequestBody is the schema descriptor for request_body field.
	llmrequestDescRequestBody := llmrequestFields[9].Descriptor()
	// llmrequest.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequest.DefaultRequestBody = llmrequestDescRequestBody.Default.(string)
	// llmrequestDescResponseBody is the schema descriptor for response_body field.
	llmrequestDescResponseBody := llmrequestFields[10].Descriptor()
	// llmrequest.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequest.DefaultResponseBody = llmrequestDescResponseBody.Default.(string)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[1].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescLevel is the schema descriptor for level field.
	sessionDescLevel := sessionFields[2].Descriptor()
	// session.DefaultLevel holds the default value on creation for the level field.
	session.DefaultLevel = sessionDescLevel.Default.(string)
	// sessionDescTopic is the schema descriptor for topic field.
	sessionDescTopic := sessionFields[3].Descriptor()
	// session.DefaultTopic holds the default value on creation for the topic field.
	session.DefaultTopic = sessionDescTopic.Default.(string)
	// sessionDescDifficulty is the schema descriptor for difficulty field.
	sessionDescDifficulty := sessionFields[4].Descriptor()
	// session.DefaultDifficulty holds the default value on creation for the difficulty field.
	session.DefaultDifficulty = sessionDescDifficulty.Default.(string)
	// sessionDescQuestionType is the schema descriptor for question_type field.
	sessionDescQuestionType := sessionFields[5].Descriptor()
	// session.DefaultQuestionType holds the default value on creation for the question_type field.
	session.DefaultQuestionType = sessionDescQuestionType.Default.(string)
	// sessionDescStatement is the schema descriptor for statement field.
	sessionDescStatement := sessionFields[6].Descriptor()
	// session.StatementValidator is a validator for the "statement" field. It is called by the builders before save.
	session.StatementValidator = sessionDescStatement.Validators[0].(func(string) error)
	// sessionDescAnswer is the schema descriptor for answer field.
	sessionDescAnswer := sessionFields[7].Descriptor()
	// session.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	session.AnswerValidator = sessionDescAnswer.Validators[0].(func(string) error)
	// sessionDescHint is the schema descriptor for hint field.
	sessionDescHint := sessionFields[10].Descriptor()
	// session.DefaultHint holds the default value on creation for the hint field.
	session.DefaultHint = sessionDescHint.Default.(string)
	// sessionDescID is the schema descriptor for id field.
	sessionDescID := sessionFields[0].Descriptor()
	// session.IDValidator is a validator for the "id" field. It is called by the builders before save.
	session.IDValidator = sessionDescID.Validators[0].(func(string) error)
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionFields[1].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
	// submissionDescAnswerText is the schema descriptor for answer_text field.
	submissionDescAnswerText := submissionFields[2].Descriptor()
	// submission.AnswerTextValidator is a validator for the "answer_text" field. It is called by the builders before save.
	submission.AnswerTextValidator = submissionDescAnswerText.Validators[0].(func(string) error)
	// submissionDescFeedback is the schema descriptor for feedback field.
	submissionDescFeedback := submissionFields[5].Descriptor()
	// submission.DefaultFeedback holds the default value on creation for the feedback field.
	submission.DefaultFeedback = submissionDescFeedback.Default.(string)
	// submissionDescID is the schema descriptor for id field.
	submissionDescID := submissionFields[0].Descriptor()
	// submission.IDValidator is a validator for the "id" field. It is called by the builders before save.
	submission.IDValidator = submissionDescID.Validators[0].(func(string) error)
}
