// Package tutor orchestrates the tutoring pipeline: problem generation,
// session creation, answer evaluation and hinting. Each method performs
// at most one write and nothing runs in the background after return.
package tutor

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/mathcoach/internal/answer"
	"github.com/abhisek/mathcoach/internal/feedback"
	"github.com/abhisek/mathcoach/internal/metrics"
	"github.com/abhisek/mathcoach/internal/problemgen"
	"github.com/abhisek/mathcoach/internal/store"
)

// FeedbackProvider generates feedback and hints.
type FeedbackProvider interface {
	Feedback(ctx context.Context, input feedback.FeedbackInput) string
	Hint(ctx context.Context, input feedback.HintInput) (string, error)
}

// AnswerResolver turns free-text answers into numeric values.
type AnswerResolver interface {
	Resolve(ctx context.Context, raw string) (float64, string, error)
}

// Service wires the tutoring pipeline together.
type Service struct {
	problems problemgen.Generator
	feedback FeedbackProvider
	resolver AnswerResolver
	sessions store.SessionRepo
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// New creates a tutoring Service. m may be nil; logger must not be.
func New(
	problems problemgen.Generator,
	fb FeedbackProvider,
	resolver AnswerResolver,
	sessions store.SessionRepo,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Service {
	return &Service{
		problems: problems,
		feedback: fb,
		resolver: resolver,
		sessions: sessions,
		metrics:  m,
		logger:   logger,
	}
}

// GenerateProblem produces a validated problem without persisting it.
func (s *Service) GenerateProblem(ctx context.Context, input problemgen.GenerateInput) (*problemgen.Problem, error) {
	return s.problems.Generate(ctx, input)
}

// CreateSessionInput is a problem the client picked for practice,
// normally one returned by GenerateProblem, together with the config it
// was generated under.
type CreateSessionInput struct {
	Level        string
	Topic        string
	Difficulty   string
	QuestionType string
	Statement    string
	Answer       string
	Working      []store.WorkingStep
	Choices      []store.Choice
}

// CreateSession persists a problem as a new session. A session whose
// canonical answer yields no number could never be graded, so the input
// is rejected with ErrAnswerNotNumeric before anything is written.
func (s *Service) CreateSession(ctx context.Context, input CreateSessionInput) (*store.Session, error) {
	if _, ok := answer.Normalize(input.Answer); !ok {
		return nil, fmt.Errorf("canonical answer %q: %w", input.Answer, ErrAnswerNotNumeric)
	}

	sess := &store.Session{
		Level:        input.Level,
		Topic:        input.Topic,
		Difficulty:   input.Difficulty,
		QuestionType: input.QuestionType,
		Statement:    input.Statement,
		Answer:       input.Answer,
		Working:      input.Working,
		Choices:      input.Choices,
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}

	s.logger.Info("session created",
		zap.String("session_id", sess.ID),
		zap.String("topic", sess.Topic),
		zap.String("difficulty", sess.Difficulty),
	)
	return sess, nil
}

// SubmitAnswer evaluates one answer attempt against a session and
// appends it to the submission history. An answer that yields no number
// fails with ErrAnswerNotNumeric and persists nothing.
func (s *Service) SubmitAnswer(ctx context.Context, sessionID, answerText string) (*store.Submission, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	value, path, err := s.resolver.Resolve(ctx, answerText)
	if err != nil {
		if errors.Is(err, answer.ErrNoNumber) {
			return nil, ErrAnswerNotNumeric
		}
		return nil, err
	}

	canonical, ok := answer.Normalize(sess.Answer)
	if !ok {
		return nil, fmt.Errorf("session %s has non-numeric canonical answer %q", sess.ID, sess.Answer)
	}
	correct := answer.WithinTolerance(canonical, value)

	// Feedback never fails; a backend outage degrades to canned text.
	fb := s.feedback.Feedback(ctx, feedback.FeedbackInput{
		Statement:     sess.Statement,
		CorrectAnswer: sess.Answer,
		StudentAnswer: answerText,
		Correct:       correct,
	})

	sub := &store.Submission{
		AnswerText:  answerText,
		ParsedValue: &value,
		Correct:     &correct,
		Feedback:    fb,
	}
	if err := s.sessions.AppendSubmission(ctx, sessionID, sub); err != nil {
		return nil, err
	}

	s.metrics.ObserveSubmission(correct)
	s.logger.Info("submission recorded",
		zap.String("session_id", sessionID),
		zap.Bool("correct", correct),
		zap.String("parse_path", path),
	)
	return sub, nil
}

// ListSessions returns sessions matching the filter, newest first.
func (s *Service) ListSessions(ctx context.Context, f store.Filter) ([]*store.Session, error) {
	return s.sessions.List(ctx, f)
}

// GetSession returns one session with its full submission history.
func (s *Service) GetSession(ctx context.Context, id string) (*store.Session, error) {
	return s.sessions.Get(ctx, id)
}

// AttachHint stores hint text on a session. A missing session reports
// updated=false rather than an error; hints are advisory.
func (s *Service) AttachHint(ctx context.Context, id, hint string) (bool, error) {
	return s.sessions.AttachHint(ctx, id, hint)
}

// RequestHint generates a guiding question for a problem. Failures
// surface; there is no canned hint.
func (s *Service) RequestHint(ctx context.Context, input feedback.HintInput) (string, error) {
	return s.feedback.Hint(ctx, input)
}
