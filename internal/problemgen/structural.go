package problemgen

import "fmt"

// StructuralValidator checks that required fields are present and the
// worked solution is well-formed.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Problem, _ GenerateInput) *ValidationError {
	if p.Statement == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "statement is empty",
			Retryable: true,
		}
	}
	if len(p.Statement) > 1000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "statement exceeds 1000 characters",
			Retryable: true,
		}
	}
	if p.Answer == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer is empty",
			Retryable: true,
		}
	}
	if len(p.Working) == 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "working is empty",
			Retryable: true,
		}
	}
	for i, step := range p.Working {
		if step.Step != i+1 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("working step %d is numbered %d, want consecutive from 1", i, step.Step),
				Retryable: true,
			}
		}
		if step.Explanation == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("working step %d has no explanation", step.Step),
				Retryable: true,
			}
		}
	}
	return nil
}
