package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/mathcoach/ent/schema"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Type aliases for the JSON value types shared with the ent schema, so
// callers don't import ent/schema directly.
type (
	WorkingStep = schema.WorkingStep
	Choice      = schema.Choice
)

// Session status values, computed from the most recent submission.
const (
	StatusPending   = "pending"
	StatusCorrect   = "correct"
	StatusIncorrect = "incorrect"
)

// Session is a tutoring session: one generated problem plus the
// learner's submission history against it.
type Session struct {
	ID           string
	CreatedAt    time.Time
	Level        string
	Topic        string
	Difficulty   string
	QuestionType string
	Statement    string
	Answer       string
	Working      []WorkingStep
	Choices      []Choice
	Hint         string
	Submissions  []*Submission
}

// Latest returns the most recent submission by timestamp, or nil when
// there are none. Timestamps decide recency, not insertion order;
// equal timestamps fall back to the larger id.
func (s *Session) Latest() *Submission {
	var latest *Submission
	for _, sub := range s.Submissions {
		if latest == nil ||
			sub.CreatedAt.After(latest.CreatedAt) ||
			(sub.CreatedAt.Equal(latest.CreatedAt) && sub.ID > latest.ID) {
			latest = sub
		}
	}
	return latest
}

// Status derives the session state from the latest submission.
func (s *Session) Status() string {
	latest := s.Latest()
	if latest == nil || latest.Correct == nil {
		return StatusPending
	}
	if *latest.Correct {
		return StatusCorrect
	}
	return StatusIncorrect
}

// Submission is one answer attempt against a session's problem.
type Submission struct {
	ID          string
	CreatedAt   time.Time
	AnswerText  string
	ParsedValue *float64
	Correct     *bool
	Feedback    string
}

// Filter narrows a session listing.
type Filter struct {
	// Status filters by derived session status. Empty or "all" keeps
	// every session.
	Status string

	// Difficulty filters by the stored difficulty label. Empty keeps all.
	Difficulty string

	// Limit caps the result count. Zero means DefaultListLimit; values
	// above MaxListLimit are clamped.
	Limit int
}

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// SessionRepo manages tutoring sessions and their submissions.
type SessionRepo interface {
	// Create persists a new session. A missing id or created_at is
	// filled in.
	Create(ctx context.Context, s *Session) error

	// Get returns a session with its submissions, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// List returns sessions matching the filter, newest first, with
	// submissions loaded.
	List(ctx context.Context, f Filter) ([]*Session, error)

	// AttachHint stores a hint on the session. Returns false with a
	// nil error when the session does not exist; hint attachment is
	// best-effort and must not fail the calling flow.
	AttachHint(ctx context.Context, id, hint string) (bool, error)

	// AppendSubmission records an answer attempt. Submissions are
	// append-only: there is no update or delete. Returns ErrNotFound
	// when the session does not exist.
	AppendSubmission(ctx context.Context, sessionID string, sub *Submission) error
}

// LLMRequestData captures one backend call for the audit log.
type LLMRequestData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequest is a persisted audit row.
type LLMRequest struct {
	ID        int
	CreatedAt time.Time
	LLMRequestData
}

// UsageStat aggregates audit rows by one dimension (purpose or model).
type UsageStat struct {
	Key          string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to the LLM audit log.
type EventRepo interface {
	// AppendLLMRequest records a backend API call.
	AppendLLMRequest(ctx context.Context, data LLMRequestData) error

	// RecentLLMRequests returns the newest audit rows, most recent first.
	RecentLLMRequests(ctx context.Context, limit int) ([]*LLMRequest, error)

	// GetLLMRequest returns one audit row by id, or ErrNotFound.
	GetLLMRequest(ctx context.Context, id int) (*LLMRequest, error)

	// UsageByPurpose aggregates request counts and token usage per purpose.
	UsageByPurpose(ctx context.Context) ([]UsageStat, error)

	// UsageByModel aggregates request counts and token usage per model.
	UsageByModel(ctx context.Context) ([]UsageStat, error)
}
