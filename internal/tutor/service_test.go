package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/abhisek/mathcoach/internal/answer"
	"github.com/abhisek/mathcoach/internal/feedback"
	"github.com/abhisek/mathcoach/internal/llm"
	"github.com/abhisek/mathcoach/internal/problemgen"
	"github.com/abhisek/mathcoach/internal/store"
)

// newTestService wires the full pipeline over an in-memory store and a
// mock backend. The mock serves responses FIFO across all operations.
func newTestService(t *testing.T, mock *llm.MockProvider) (*Service, *store.Store) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	st, err := store.Open(dsn)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	cfg := llm.DefaultConfig()
	cfg.Provider = "mock"
	reg := llm.NewRegistry(cfg, nil, nil)
	reg.RegisterProvider("", mock)

	svc := New(
		problemgen.New(reg, problemgen.DefaultConfig()),
		feedback.New(reg),
		answer.NewResolver(reg, nil),
		st.Sessions(),
		nil,
		zap.NewNop(),
	)
	return svc, st
}

func problemResponse() llm.MockResponse {
	p := problemgen.Problem{
		Statement: "Siti pours 1/2 litre of juice from a full 1 litre bottle. How much juice is left?",
		Answer:    "1/2",
		Working: []problemgen.WorkingStep{
			{Step: 1, Explanation: "Subtract the poured amount", Formula: "1 - 1/2 = 1/2"},
		},
	}
	raw, _ := json.Marshal(p)
	return llm.MockResponse{Content: raw}
}

func feedbackResponse(text string) llm.MockResponse {
	raw, _ := json.Marshal(map[string]string{"text": text})
	return llm.MockResponse{Content: raw}
}

func sessionInput() CreateSessionInput {
	return CreateSessionInput{
		Level:        "P5",
		Topic:        "Fractions",
		Difficulty:   "easy",
		QuestionType: "subjective",
		Statement:    "Siti pours 1/2 litre of juice from a full 1 litre bottle. How much juice is left?",
		Answer:       "1/2",
		Working: []store.WorkingStep{
			{Step: 1, Explanation: "Subtract the poured amount", Formula: "1 - 1/2 = 1/2"},
		},
	}
}

func TestCreateSessionAndSubmitCorrect(t *testing.T) {
	mock := llm.NewMockProvider(
		feedbackResponse("Great work, you subtracted correctly."),
	)
	svc, _ := newTestService(t, mock)
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx, sessionInput())
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	if sess.ID == "" {
		t.Fatal("CreateSession() returned session without id")
	}
	if sess.Answer != "1/2" {
		t.Errorf("session answer = %q, want %q", sess.Answer, "1/2")
	}

	// "0.5" equals the canonical "1/2" under tolerance.
	sub, err := svc.SubmitAnswer(ctx, sess.ID, "0.5")
	if err != nil {
		t.Fatalf("SubmitAnswer() error = %v", err)
	}
	if sub.Correct == nil || !*sub.Correct {
		t.Errorf("submission correct = %v, want true", sub.Correct)
	}
	if sub.ParsedValue == nil || *sub.ParsedValue != 0.5 {
		t.Errorf("parsed value = %v, want 0.5", sub.ParsedValue)
	}
	if sub.Feedback != "Great work, you subtracted correctly." {
		t.Errorf("feedback = %q", sub.Feedback)
	}

	got, err := svc.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if got.Status() != store.StatusCorrect {
		t.Errorf("session status = %q, want %q", got.Status(), store.StatusCorrect)
	}
}

func TestGenerateThenCreateSession(t *testing.T) {
	mock := llm.NewMockProvider(problemResponse())
	svc, _ := newTestService(t, mock)
	ctx := context.Background()

	p, err := svc.GenerateProblem(ctx, problemgen.GenerateInput{
		Level:        "P5",
		Topic:        "Fractions",
		Difficulty:   problemgen.DifficultyEasy,
		QuestionType: problemgen.TypeSubjective,
	})
	if err != nil {
		t.Fatalf("GenerateProblem() error = %v", err)
	}

	in := CreateSessionInput{
		Level:        "P5",
		Topic:        "Fractions",
		Difficulty:   "easy",
		QuestionType: "subjective",
		Statement:    p.Statement,
		Answer:       p.Answer,
	}
	for _, w := range p.Working {
		in.Working = append(in.Working, store.WorkingStep{Step: w.Step, Explanation: w.Explanation, Formula: w.Formula})
	}

	sess, err := svc.CreateSession(ctx, in)
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	if sess.Statement != p.Statement {
		t.Errorf("session statement = %q, want the generated statement", sess.Statement)
	}
	if len(sess.Working) != len(p.Working) {
		t.Errorf("session has %d working steps, want %d", len(sess.Working), len(p.Working))
	}
}

func TestCreateSessionNonNumericAnswer(t *testing.T) {
	svc, _ := newTestService(t, llm.NewMockProvider())
	ctx := context.Background()

	in := sessionInput()
	in.Answer = "about half"
	if _, err := svc.CreateSession(ctx, in); !errors.Is(err, ErrAnswerNotNumeric) {
		t.Fatalf("CreateSession() error = %v, want ErrAnswerNotNumeric", err)
	}

	sessions, err := svc.ListSessions(ctx, store.Filter{})
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("got %d sessions, want 0 (ungradable sessions never persist)", len(sessions))
	}
}

func TestSubmitIncorrectWithCannedFeedback(t *testing.T) {
	// Feedback generation fails; the flow must still complete with the
	// canned incorrect message.
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc, _ := newTestService(t, mock)
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx, sessionInput())
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	sub, err := svc.SubmitAnswer(ctx, sess.ID, "0.75")
	if err != nil {
		t.Fatalf("SubmitAnswer() error = %v", err)
	}
	if sub.Correct == nil || *sub.Correct {
		t.Errorf("submission correct = %v, want false", sub.Correct)
	}
	if sub.Feedback == "" {
		t.Error("feedback is empty, want the canned incorrect message")
	}
	if strings.Contains(sub.Feedback, "1/2") {
		t.Errorf("canned feedback reveals the answer: %q", sub.Feedback)
	}
}

func TestSubmitNonNumericPersistsNothing(t *testing.T) {
	// The extraction fallback fails too.
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc, _ := newTestService(t, mock)
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx, sessionInput())
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	_, err = svc.SubmitAnswer(ctx, sess.ID, "banana")
	if !errors.Is(err, ErrAnswerNotNumeric) {
		t.Fatalf("SubmitAnswer() error = %v, want ErrAnswerNotNumeric", err)
	}

	got, err := svc.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if len(got.Submissions) != 0 {
		t.Errorf("got %d submissions, want 0 (unparseable attempts never persist)", len(got.Submissions))
	}
	if got.Status() != store.StatusPending {
		t.Errorf("session status = %q, want %q", got.Status(), store.StatusPending)
	}
}

func TestSubmitAnswerMissingSession(t *testing.T) {
	svc, _ := newTestService(t, llm.NewMockProvider())

	_, err := svc.SubmitAnswer(context.Background(), "nope", "42")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("SubmitAnswer() error = %v, want store.ErrNotFound", err)
	}
}

func TestAttachHint(t *testing.T) {
	svc, _ := newTestService(t, llm.NewMockProvider())
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx, sessionInput())
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	updated, err := svc.AttachHint(ctx, sess.ID, "How much juice was there to start with?")
	if err != nil {
		t.Fatalf("AttachHint() error = %v", err)
	}
	if !updated {
		t.Error("AttachHint() updated = false, want true")
	}

	updated, err = svc.AttachHint(ctx, "missing", "lost")
	if err != nil {
		t.Fatalf("AttachHint() on missing session error = %v", err)
	}
	if updated {
		t.Error("AttachHint() on missing session updated = true, want false")
	}
}

func TestRequestHint(t *testing.T) {
	mock := llm.NewMockProvider(feedbackResponse("What do you get when you take 1/2 away from 1?"))
	svc, _ := newTestService(t, mock)

	hint, err := svc.RequestHint(context.Background(), feedback.HintInput{
		Statement: "Siti pours 1/2 litre of juice from a full 1 litre bottle. How much juice is left?",
		Working:   []string{"1 - 1/2 = 1/2"},
	})
	if err != nil {
		t.Fatalf("RequestHint() error = %v", err)
	}
	if hint == "" {
		t.Error("RequestHint() returned empty hint")
	}
}
