package feedback

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/mathcoach/internal/llm"
)

func mockService(responses ...llm.MockResponse) (*Service, *llm.MockProvider) {
	cfg := llm.DefaultConfig()
	cfg.Provider = "mock"
	reg := llm.NewRegistry(cfg, nil, nil)
	mock := llm.NewMockProvider(responses...)
	reg.RegisterProvider("", mock)
	return New(reg), mock
}

func feedbackInput(correct bool) FeedbackInput {
	return FeedbackInput{
		Statement:     "Ben cycles 12 km in 45 minutes. What is his speed in km/h?",
		CorrectAnswer: "16",
		StudentAnswer: "9",
		Correct:       correct,
	}
}

func TestFeedbackGenerated(t *testing.T) {
	svc, mock := mockService(llm.MockResponse{
		Content: json.RawMessage(`{"text": "Check how many minutes are in an hour before dividing."}`),
	})

	got := svc.Feedback(context.Background(), feedbackInput(false))
	if got != "Check how many minutes are in an hour before dividing." {
		t.Errorf("Feedback() = %q", got)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, "The attempt is WRONG.") {
		t.Errorf("user message missing correctness marker:\n%s", userMsg)
	}
}

func TestFeedbackNeverFails(t *testing.T) {
	tests := []struct {
		name    string
		resp    llm.MockResponse
		correct bool
		want    string
	}{
		{"backend error, correct", llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}, true, cannedCorrect},
		{"backend error, incorrect", llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}, false, cannedIncorrect},
		{"empty text, incorrect", llm.MockResponse{Content: json.RawMessage(`{"text": ""}`)}, false, cannedIncorrect},
		{"malformed json, correct", llm.MockResponse{Content: json.RawMessage(`"just a string"`)}, true, cannedCorrect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := mockService(tt.resp)
			got := svc.Feedback(context.Background(), feedbackInput(tt.correct))
			if got != tt.want {
				t.Errorf("Feedback() = %q, want canned %q", got, tt.want)
			}
		})
	}
}

func TestHintGenerated(t *testing.T) {
	svc, mock := mockService(llm.MockResponse{
		Content: json.RawMessage(`{"text": "What fraction of an hour is 45 minutes?"}`),
	})

	got, err := svc.Hint(context.Background(), HintInput{
		Statement: "Ben cycles 12 km in 45 minutes. What is his speed in km/h?",
		Working:   []string{"45/60 = 0.75", "12 / 0.75 = 16"},
	})
	if err != nil {
		t.Fatalf("Hint() error = %v", err)
	}
	if got != "What fraction of an hour is 45 minutes?" {
		t.Errorf("Hint() = %q", got)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, "12 / 0.75 = 16") {
		t.Errorf("user message missing working context:\n%s", userMsg)
	}
}

func TestHintPromptForbidsEchoingWorking(t *testing.T) {
	svc, mock := mockService(llm.MockResponse{
		Content: json.RawMessage(`{"text": "What fraction of an hour is 45 minutes?"}`),
	})

	_, err := svc.Hint(context.Background(), HintInput{
		Statement: "Ben cycles 12 km in 45 minutes. What is his speed in km/h?",
		Working:   []string{"45/60 = 0.75", "12 / 0.75 = 16"},
	})
	if err != nil {
		t.Fatalf("Hint() error = %v", err)
	}

	// The working steps go to the backend only under instructions that
	// keep them out of the hint text itself.
	call := mock.Calls[0]
	if !strings.Contains(call.System, "Do not repeat formulas from the worked solution verbatim.") {
		t.Errorf("system prompt missing the no-echo rule:\n%s", call.System)
	}
	if !strings.Contains(call.System, "do not reveal any intermediate or final result") {
		t.Errorf("system prompt missing the no-result rule:\n%s", call.System)
	}
	userMsg := call.Messages[0].Content
	if !strings.Contains(userMsg, "for your reference only, never reveal it") {
		t.Errorf("working steps not framed as reference-only:\n%s", userMsg)
	}
}

func TestHintFailureSurfaces(t *testing.T) {
	svc, _ := mockService(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	if _, err := svc.Hint(context.Background(), HintInput{Statement: "x"}); err == nil {
		t.Error("Hint() error = nil, want failure to surface")
	}
}
