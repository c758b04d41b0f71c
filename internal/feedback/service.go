// Package feedback generates tutoring feedback and hints for answer
// attempts. Feedback degrades to canned text when the backend fails;
// hints surface their errors because they are supplementary.
package feedback

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/mathcoach/internal/llm"
)

// Canned feedback used when generation fails. Correctness is already
// decided by the evaluator at this point, so a backend outage must
// never block the submission.
const (
	cannedCorrect   = "Well done, that's correct! Review the worked solution to make sure you understand each step."
	cannedIncorrect = "Not quite right. Take another look at the problem and try working through it step by step."
)

// FeedbackInput carries everything needed to explain one attempt.
type FeedbackInput struct {
	Statement     string
	CorrectAnswer string
	StudentAnswer string
	Correct       bool
}

// HintInput carries the problem context for a hint request.
type HintInput struct {
	Statement string
	Working   []string // formulas of the worked solution, in order
}

// Service generates feedback and hints through compiled prompts.
type Service struct {
	registry *llm.Registry
}

// New creates a feedback Service.
func New(registry *llm.Registry) *Service {
	return &Service{registry: registry}
}

// Feedback explains why an attempt was right or wrong. It never fails:
// on any generation error it returns a canned message chosen by the
// already-computed correctness.
func (s *Service) Feedback(ctx context.Context, input FeedbackInput) string {
	text, err := s.generate(ctx, llm.PromptSpec{
		Operation:   "feedback",
		System:      feedbackSystemPrompt,
		Schema:      textSchema("feedback-text", "Short feedback on the student's attempt"),
		MaxTokens:   256,
		Temperature: 0.4,
	}, buildFeedbackMessage(input))
	if err != nil || text == "" {
		if input.Correct {
			return cannedCorrect
		}
		return cannedIncorrect
	}
	return text
}

// Hint produces a single guiding question toward the next step without
// performing any calculation. Unlike Feedback, failures surface: a hint
// is supplementary and the caller decides what a missing one means.
func (s *Service) Hint(ctx context.Context, input HintInput) (string, error) {
	text, err := s.generate(ctx, llm.PromptSpec{
		Operation:   "hint",
		System:      hintSystemPrompt,
		Schema:      textSchema("hint-text", "A single guiding question"),
		MaxTokens:   128,
		Temperature: 0.4,
	}, buildHintMessage(input))
	if err != nil {
		return "", fmt.Errorf("hint generation failed: %w", err)
	}
	return text, nil
}

func (s *Service) generate(ctx context.Context, spec llm.PromptSpec, userMsg string) (string, error) {
	prompt, err := s.registry.Compile(ctx, spec, "")
	if err != nil {
		return "", err
	}

	raw, err := prompt.Invoke(ctx, userMsg)
	if err != nil {
		return "", err
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	return out.Text, nil
}

// textSchema builds the single-field output schema shared by feedback
// and hints.
func textSchema(name, description string) *llm.Schema {
	return &llm.Schema{
		Name:        name,
		Description: description,
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{
					"type":        "string",
					"description": description,
				},
			},
			"required":             []any{"text"},
			"additionalProperties": false,
		},
	}
}
