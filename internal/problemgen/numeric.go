package problemgen

import (
	"fmt"

	"github.com/abhisek/mathcoach/internal/answer"
)

// NumericAnswerValidator checks that the canonical answer parses to a
// bare number. Answers with units or prose cannot be graded.
type NumericAnswerValidator struct{}

func (v *NumericAnswerValidator) Name() string { return "numeric-answer" }

func (v *NumericAnswerValidator) Validate(p *Problem, _ GenerateInput) *ValidationError {
	if _, ok := answer.Normalize(p.Answer); !ok {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer %q does not parse to a number", p.Answer),
			Retryable: true,
		}
	}
	return nil
}
