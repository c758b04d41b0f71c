package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func mockRegistry(responses ...MockResponse) (*Registry, *MockProvider) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	reg := NewRegistry(cfg, nil, nil)
	mock := NewMockProvider(responses...)
	reg.RegisterProvider("", mock)
	return reg, mock
}

func TestCompileCachesPrompt(t *testing.T) {
	reg, _ := mockRegistry()
	spec := PromptSpec{Operation: "problem-gen", MaxTokens: 1024}

	first, err := reg.Compile(context.Background(), spec, "")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	second, err := reg.Compile(context.Background(), spec, "")
	if err != nil {
		t.Fatalf("Compile() second call error = %v", err)
	}

	if first != second {
		t.Errorf("Compile() returned distinct prompts for the same (operation, model) pair")
	}
}

func TestCompileDistinctOperations(t *testing.T) {
	reg, _ := mockRegistry()

	genPrompt, err := reg.Compile(context.Background(), PromptSpec{Operation: "problem-gen"}, "")
	if err != nil {
		t.Fatalf("Compile(problem-gen) error = %v", err)
	}
	hintPrompt, err := reg.Compile(context.Background(), PromptSpec{Operation: "hint"}, "")
	if err != nil {
		t.Fatalf("Compile(hint) error = %v", err)
	}

	if genPrompt == hintPrompt {
		t.Errorf("Compile() shared a prompt across different operations")
	}
}

func TestProviderCached(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	reg := NewRegistry(cfg, nil, nil)

	first, err := reg.Provider(context.Background(), "")
	if err != nil {
		t.Fatalf("Provider() error = %v", err)
	}
	second, err := reg.Provider(context.Background(), "")
	if err != nil {
		t.Fatalf("Provider() second call error = %v", err)
	}

	if first != second {
		t.Errorf("Provider() constructed a second provider for the same model")
	}
}

func TestInvokeReturnsContent(t *testing.T) {
	want := json.RawMessage(`{"value": 42}`)
	reg, mock := mockRegistry(MockResponse{Content: want})

	prompt, err := reg.Compile(context.Background(), PromptSpec{
		Operation: "answer-extract",
		System:    "Extract the numeric value.",
		MaxTokens: 256,
	}, "")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	got, err := prompt.Invoke(context.Background(), "the answer is 42")
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Invoke() = %s, want %s", got, want)
	}

	if mock.CallCount() != 1 {
		t.Errorf("CallCount() = %d, want 1", mock.CallCount())
	}
	call := mock.Calls[0]
	if call.System != "Extract the numeric value." {
		t.Errorf("request system = %q", call.System)
	}
	if len(call.Messages) != 1 || call.Messages[0].Content != "the answer is 42" {
		t.Errorf("request messages = %+v", call.Messages)
	}
}

func TestInvokeEmptyContent(t *testing.T) {
	reg, _ := mockRegistry(MockResponse{Content: json.RawMessage("  ")})

	prompt, err := reg.Compile(context.Background(), PromptSpec{Operation: "feedback"}, "")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	_, err = prompt.Invoke(context.Background(), "hello")
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Errorf("Invoke() error = %v, want ErrInvalidResponse", err)
	}
}

func TestInvokeProviderError(t *testing.T) {
	reg, _ := mockRegistry(MockResponse{Err: &ErrProviderUnavailable{}})

	prompt, err := reg.Compile(context.Background(), PromptSpec{Operation: "feedback"}, "")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	_, err = prompt.Invoke(context.Background(), "hello")
	if !IsGenerationFailure(err) {
		t.Errorf("Invoke() error = %v, want a generation failure", err)
	}
}

func TestRegistryUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "carrier-pigeon"
	reg := NewRegistry(cfg, nil, nil)

	if _, err := reg.Provider(context.Background(), ""); err == nil {
		t.Errorf("Provider() with unknown backend: expected error")
	}
}
