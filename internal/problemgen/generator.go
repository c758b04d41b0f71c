package problemgen

import "context"

// Generator produces math word problems.
type Generator interface {
	// Generate produces a single problem for the given input.
	// All configured validators run before returning; a validation
	// failure fails the whole request, never a silently repaired
	// problem.
	Generate(ctx context.Context, input GenerateInput) (*Problem, error)
}
