package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathcoach/ent"
	entsession "github.com/abhisek/mathcoach/ent/session"
)

// sessionRepo implements SessionRepo backed by ent.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, s *Session) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	create := r.client.Session.Create().
		SetID(s.ID).
		SetCreatedAt(s.CreatedAt).
		SetLevel(s.Level).
		SetTopic(s.Topic).
		SetDifficulty(s.Difficulty).
		SetQuestionType(s.QuestionType).
		SetStatement(s.Statement).
		SetAnswer(s.Answer).
		SetWorking(s.Working).
		SetHint(s.Hint)

	if len(s.Choices) > 0 {
		create.SetChoices(s.Choices)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*Session, error) {
	row, err := r.client.Session.Query().
		Where(entsession.ID(id)).
		WithSubmissions().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	return mapSession(row), nil
}

func (r *sessionRepo) List(ctx context.Context, f Filter) ([]*Session, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	q := r.client.Session.Query().
		WithSubmissions().
		Order(ent.Desc(entsession.FieldCreatedAt))

	if f.Difficulty != "" {
		q = q.Where(entsession.DifficultyEQ(f.Difficulty))
	}

	// Status is derived from submissions, so it cannot be pushed into
	// the query. Fetch newest-first and filter until the limit fills.
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	statusFilter := f.Status
	if statusFilter == "all" {
		statusFilter = ""
	}

	out := make([]*Session, 0, limit)
	for _, row := range rows {
		s := mapSession(row)
		if statusFilter != "" && s.Status() != statusFilter {
			continue
		}
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *sessionRepo) AttachHint(ctx context.Context, id, hint string) (bool, error) {
	err := r.client.Session.UpdateOneID(id).
		SetHint(hint).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("attach hint: %w", err)
	}
	return true, nil
}

func (r *sessionRepo) AppendSubmission(ctx context.Context, sessionID string, sub *Submission) error {
	exists, err := r.client.Session.Query().
		Where(entsession.ID(sessionID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check session: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}

	create := r.client.Submission.Create().
		SetID(sub.ID).
		SetCreatedAt(sub.CreatedAt).
		SetAnswerText(sub.AnswerText).
		SetFeedback(sub.Feedback).
		SetSessionID(sessionID)

	if sub.ParsedValue != nil {
		create.SetParsedValue(*sub.ParsedValue)
	}
	if sub.Correct != nil {
		create.SetCorrect(*sub.Correct)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save submission: %w", err)
	}
	return nil
}

func mapSession(row *ent.Session) *Session {
	s := &Session{
		ID:           row.ID,
		CreatedAt:    row.CreatedAt,
		Level:        row.Level,
		Topic:        row.Topic,
		Difficulty:   row.Difficulty,
		QuestionType: row.QuestionType,
		Statement:    row.Statement,
		Answer:       row.Answer,
		Working:      row.Working,
		Choices:      row.Choices,
		Hint:         row.Hint,
	}
	for _, sub := range row.Edges.Submissions {
		s.Submissions = append(s.Submissions, mapSubmission(sub))
	}
	return s
}

func mapSubmission(row *ent.Submission) *Submission {
	return &Submission{
		ID:          row.ID,
		CreatedAt:   row.CreatedAt,
		AnswerText:  row.AnswerText,
		ParsedValue: row.ParsedValue,
		Correct:     row.Correct,
		Feedback:    row.Feedback,
	}
}
