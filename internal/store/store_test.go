package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	// A unique DSN per test keeps in-memory databases isolated.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testSession(id string) *Session {
	return &Session{
		ID:           id,
		Level:        "P5",
		Topic:        "Fractions",
		Difficulty:   "medium",
		QuestionType: "subjective",
		Statement:    "Ali has 3/4 of a cake and eats 1/4. How much is left?",
		Answer:       "1/2",
		Working: []WorkingStep{
			{Step: 1, Explanation: "Subtract the eaten fraction", Formula: "3/4 - 1/4 = 1/2"},
		},
	}
}

func boolPtr(b bool) *bool       { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	in := testSession("")
	if err := repo.Create(ctx, in); err != nil {
		t.Fatalf("create: %v", err)
	}
	if in.ID == "" {
		t.Fatal("expected generated session id")
	}

	got, err := repo.Get(ctx, in.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Statement != in.Statement {
		t.Errorf("statement = %q, want %q", got.Statement, in.Statement)
	}
	if got.Answer != "1/2" {
		t.Errorf("answer = %q, want %q", got.Answer, "1/2")
	}
	if len(got.Working) != 1 || got.Working[0].Formula != "3/4 - 1/4 = 1/2" {
		t.Errorf("working = %+v", got.Working)
	}
	if got.Status() != StatusPending {
		t.Errorf("status = %q, want %q", got.Status(), StatusPending)
	}
}

func TestSessionGetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Sessions().Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("get missing session: error = %v, want ErrNotFound", err)
	}
}

func TestLatestByTimestampNotInsertionOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	sess := testSession("sess-latest")
	if err := repo.Create(ctx, sess); err != nil {
		t.Fatalf("create: %v", err)
	}

	base := time.Now().UTC().Truncate(time.Second)

	// Insert the newer submission first: recency must come from the
	// timestamp, never from insertion order.
	newer := &Submission{
		CreatedAt:   base.Add(time.Minute),
		AnswerText:  "0.5",
		ParsedValue: floatPtr(0.5),
		Correct:     boolPtr(true),
	}
	older := &Submission{
		CreatedAt:   base,
		AnswerText:  "0.7",
		ParsedValue: floatPtr(0.7),
		Correct:     boolPtr(false),
	}
	if err := repo.AppendSubmission(ctx, sess.ID, newer); err != nil {
		t.Fatalf("append newer: %v", err)
	}
	if err := repo.AppendSubmission(ctx, sess.ID, older); err != nil {
		t.Fatalf("append older: %v", err)
	}

	got, err := repo.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	latest := got.Latest()
	if latest == nil || latest.AnswerText != "0.5" {
		t.Fatalf("latest = %+v, want the submission with the newest timestamp", latest)
	}
	if got.Status() != StatusCorrect {
		t.Errorf("status = %q, want %q", got.Status(), StatusCorrect)
	}
}

func TestAppendSubmissionMissingSession(t *testing.T) {
	s := openTestStore(t)
	err := s.Sessions().AppendSubmission(context.Background(), "nope", &Submission{AnswerText: "1"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("append to missing session: error = %v, want ErrNotFound", err)
	}
}

func TestAttachHint(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	sess := testSession("sess-hint")
	if err := repo.Create(ctx, sess); err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := repo.AttachHint(ctx, sess.ID, "Think about common denominators.")
	if err != nil {
		t.Fatalf("attach hint: %v", err)
	}
	if !ok {
		t.Fatal("attach hint: ok = false, want true")
	}

	got, err := repo.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Hint != "Think about common denominators." {
		t.Errorf("hint = %q", got.Hint)
	}

	// Attaching to a missing session is best-effort, not an error.
	ok, err = repo.AttachHint(ctx, "nope", "lost hint")
	if err != nil {
		t.Fatalf("attach hint to missing session: %v", err)
	}
	if ok {
		t.Error("attach hint to missing session: ok = true, want false")
	}
}

func TestListFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)

	mk := func(id, difficulty string, correct *bool, offset time.Duration) {
		t.Helper()
		sess := testSession(id)
		sess.Difficulty = difficulty
		sess.CreatedAt = base.Add(offset)
		if err := repo.Create(ctx, sess); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
		if correct != nil {
			sub := &Submission{AnswerText: "x", Correct: correct}
			if err := repo.AppendSubmission(ctx, id, sub); err != nil {
				t.Fatalf("append %s: %v", id, err)
			}
		}
	}

	mk("a", "easy", boolPtr(true), 0)
	mk("b", "medium", boolPtr(false), time.Second)
	mk("c", "medium", nil, 2*time.Second)

	all, err := repo.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("list all: got %d sessions, want 3", len(all))
	}
	// Newest first.
	if all[0].ID != "c" || all[2].ID != "a" {
		t.Errorf("list order = [%s %s %s], want newest first", all[0].ID, all[1].ID, all[2].ID)
	}

	correct, err := repo.List(ctx, Filter{Status: StatusCorrect})
	if err != nil {
		t.Fatalf("list correct: %v", err)
	}
	if len(correct) != 1 || correct[0].ID != "a" {
		t.Errorf("list correct = %+v, want session a only", ids(correct))
	}

	pending, err := repo.List(ctx, Filter{Status: StatusPending})
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != "c" {
		t.Errorf("list pending = %v, want session c only", ids(pending))
	}

	medium, err := repo.List(ctx, Filter{Difficulty: "medium"})
	if err != nil {
		t.Fatalf("list medium: %v", err)
	}
	if len(medium) != 2 {
		t.Errorf("list medium = %v, want 2 sessions", ids(medium))
	}

	limited, err := repo.List(ctx, Filter{Limit: 1})
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != "c" {
		t.Errorf("list limit=1 = %v, want newest session only", ids(limited))
	}
}

func ids(sessions []*Session) []string {
	out := make([]string, len(sessions))
	for i, s := range sessions {
		out[i] = s.ID
	}
	return out
}

func TestLLMRequestAuditLog(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	reqs := []LLMRequestData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "problem-gen", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "problem-gen", InputTokens: 120, OutputTokens: 60, Success: false, ErrorMessage: "rate limited"},
		{Provider: "anthropic", Model: "claude-sonnet", Purpose: "hint", InputTokens: 80, OutputTokens: 40, Success: true},
	}
	for _, r := range reqs {
		if err := repo.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recent, err := repo.RecentLLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent: got %d rows, want 2", len(recent))
	}
	if recent[0].Purpose != "hint" {
		t.Errorf("recent[0].Purpose = %q, want the newest row first", recent[0].Purpose)
	}

	got, err := repo.GetLLMRequest(ctx, recent[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Model != "claude-sonnet" {
		t.Errorf("get model = %q", got.Model)
	}

	if _, err := repo.GetLLMRequest(ctx, 999999); !errors.Is(err, ErrNotFound) {
		t.Errorf("get missing row: error = %v, want ErrNotFound", err)
	}

	byPurpose, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("usage by purpose: got %d keys, want 2", len(byPurpose))
	}
	// Sorted by key: hint, problem-gen.
	gen := byPurpose[1]
	if gen.Key != "problem-gen" || gen.Requests != 2 || gen.Failures != 1 {
		t.Errorf("problem-gen stats = %+v", gen)
	}
	if gen.InputTokens != 220 || gen.OutputTokens != 110 {
		t.Errorf("problem-gen tokens = %d/%d, want 220/110", gen.InputTokens, gen.OutputTokens)
	}

	byModel, err := repo.UsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Errorf("usage by model: got %d keys, want 2", len(byModel))
	}
}
