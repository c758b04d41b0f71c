package problemgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/mathcoach/internal/llm"
)

func mockGenerator(t *testing.T, responses ...llm.MockResponse) (*LLMGenerator, *llm.MockProvider) {
	t.Helper()
	cfg := llm.DefaultConfig()
	cfg.Provider = "mock"
	reg := llm.NewRegistry(cfg, nil, nil)
	mock := llm.NewMockProvider(responses...)
	reg.RegisterProvider("", mock)
	return New(reg, DefaultConfig()), mock
}

func validProblemJSON() json.RawMessage {
	raw, _ := json.Marshal(validProblem())
	return raw
}

func TestGenerateHappyPath(t *testing.T) {
	gen, mock := mockGenerator(t, llm.MockResponse{Content: validProblemJSON()})

	p, err := gen.Generate(context.Background(), GenerateInput{
		Level:        "P5",
		Topic:        "Fractions",
		Difficulty:   DifficultyMedium,
		QuestionType: TypeSubjective,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if p.Answer != "1/2" {
		t.Errorf("Answer = %q, want %q", p.Answer, "1/2")
	}
	if len(p.Working) != 2 {
		t.Errorf("len(Working) = %d, want 2", len(p.Working))
	}

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount() = %d, want 1", mock.CallCount())
	}
	userMsg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Level: P5", "Topic: Fractions", "Difficulty: medium", "Question type: subjective"} {
		if !strings.Contains(userMsg, want) {
			t.Errorf("user message missing %q:\n%s", want, userMsg)
		}
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	gen, mock := mockGenerator(t)

	tests := []GenerateInput{
		{Difficulty: "impossible", QuestionType: TypeSubjective},
		{Difficulty: DifficultyEasy, QuestionType: "essay"},
	}
	for _, input := range tests {
		if _, err := gen.Generate(context.Background(), input); err == nil {
			t.Errorf("Generate(%+v) error = nil, want input validation failure", input)
		}
	}
	if mock.CallCount() != 0 {
		t.Errorf("CallCount() = %d, want 0 (bad input never hits the backend)", mock.CallCount())
	}
}

func TestGenerateValidationFailureFailsRequest(t *testing.T) {
	bad := validProblem()
	bad.Answer = "about twelve"
	raw, _ := json.Marshal(bad)

	gen, _ := mockGenerator(t, llm.MockResponse{Content: raw})

	_, err := gen.Generate(context.Background(), GenerateInput{
		Difficulty:   DifficultyEasy,
		QuestionType: TypeSubjective,
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Generate() error = %v, want ValidationError", err)
	}
	if verr.Validator != "numeric-answer" {
		t.Errorf("failing validator = %q, want %q", verr.Validator, "numeric-answer")
	}
}

func TestGenerateBackendFailure(t *testing.T) {
	gen, _ := mockGenerator(t, llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	_, err := gen.Generate(context.Background(), GenerateInput{
		Difficulty:   DifficultyEasy,
		QuestionType: TypeSubjective,
	})
	if err == nil {
		t.Fatal("Generate() error = nil, want backend failure")
	}
}

func TestGenerateMultipleChoice(t *testing.T) {
	p := validProblem()
	p.Choices = mcChoices()
	raw, _ := json.Marshal(p)

	gen, _ := mockGenerator(t, llm.MockResponse{Content: raw})

	got, err := gen.Generate(context.Background(), GenerateInput{
		Difficulty:   DifficultyHard,
		QuestionType: TypeMultipleChoice,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(got.Choices) != 4 {
		t.Errorf("len(Choices) = %d, want 4", len(got.Choices))
	}
}
