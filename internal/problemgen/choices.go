package problemgen

import (
	"fmt"

	"github.com/abhisek/mathcoach/internal/answer"
)

// ChoicesValidator enforces the multiple-choice contract: exactly 4
// options with unique ids, exactly one of which matches the canonical
// answer. Subjective problems must carry no choices.
type ChoicesValidator struct{}

func (v *ChoicesValidator) Name() string { return "choices" }

func (v *ChoicesValidator) Validate(p *Problem, input GenerateInput) *ValidationError {
	if input.QuestionType == TypeSubjective {
		if len(p.Choices) != 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "subjective problem has choices",
				Retryable: true,
			}
		}
		return nil
	}

	if len(p.Choices) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("got %d choices, want exactly 4", len(p.Choices)),
			Retryable: true,
		}
	}

	seen := make(map[string]bool, 4)
	for _, c := range p.Choices {
		if c.ID == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "choice has empty id",
				Retryable: true,
			}
		}
		if seen[c.ID] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate choice id %q", c.ID),
				Retryable: true,
			}
		}
		seen[c.ID] = true
	}

	matches := 0
	for _, c := range p.Choices {
		if answer.Evaluate(p.Answer, c.Value) {
			matches++
		}
	}
	if matches != 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("%d choices match the answer, want exactly 1", matches),
			Retryable: true,
		}
	}

	return nil
}
