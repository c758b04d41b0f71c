package answer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/abhisek/mathcoach/internal/llm"
	"github.com/abhisek/mathcoach/internal/metrics"
)

// ErrNoNumber is returned when neither the deterministic parser nor the
// generative fallback extracts a numeric value from the answer text.
var ErrNoNumber = errors.New("answer does not contain a number")

// extractSchema constrains the fallback to a single nullable number.
var extractSchema = &llm.Schema{
	Name:        "answer-value",
	Description: "The numeric value of a student answer, or null when there is none",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"value": map[string]any{
				"type":        []any{"number", "null"},
				"description": "The numeric value expressed by the answer, or null if the answer contains no number",
			},
		},
		"required":             []any{"value"},
		"additionalProperties": false,
	},
}

const extractSystemPrompt = `You extract the numeric value from a student's answer to a math problem.

Rules:
- Return only the number the student means, converting fractions and percentages to decimals.
- Ignore units and surrounding words: "12 cm" means 12, "half" means 0.5.
- If the answer contains no numeric value at all, return null.
- Never guess: an answer like "I don't know" is null.`

// Resolver turns free-text answers into numeric values. The
// deterministic Normalize parser is always tried first; the generative
// extraction is a fallback only, never primary.
type Resolver struct {
	registry *llm.Registry
	metrics  *metrics.Metrics
}

// NewResolver creates a Resolver. m may be nil.
func NewResolver(registry *llm.Registry, m *metrics.Metrics) *Resolver {
	return &Resolver{registry: registry, metrics: m}
}

// Resolve extracts a numeric value from raw answer text and reports
// which path produced it. Returns ErrNoNumber when both the fast parse
// and the fallback come up empty; backend failures on the fallback path
// fold into the same error since the fast path already said no.
func (r *Resolver) Resolve(ctx context.Context, raw string) (float64, string, error) {
	if v, ok := Normalize(raw); ok {
		r.metrics.ObserveParse(metrics.PathFast, true)
		return v, metrics.PathFast, nil
	}
	r.metrics.ObserveParse(metrics.PathFast, false)

	v, err := r.fallback(ctx, raw)
	if err != nil {
		r.metrics.ObserveParse(metrics.PathFallback, false)
		return 0, metrics.PathFallback, err
	}
	r.metrics.ObserveParse(metrics.PathFallback, true)
	return v, metrics.PathFallback, nil
}

func (r *Resolver) fallback(ctx context.Context, raw string) (float64, error) {
	prompt, err := r.registry.Compile(ctx, llm.PromptSpec{
		Operation: "answer-extract",
		System:    extractSystemPrompt,
		Schema:    extractSchema,
		MaxTokens: 128,
	}, "")
	if err != nil {
		// A backend that cannot be constructed folds with the rest of
		// the fallback failures: the fast path already said no.
		return 0, ErrNoNumber
	}

	out, err := prompt.Invoke(ctx, raw)
	if err != nil {
		return 0, ErrNoNumber
	}

	var parsed struct {
		Value *float64 `json:"value"`
	}
	if err := json.Unmarshal(out, &parsed); err != nil || parsed.Value == nil {
		return 0, ErrNoNumber
	}
	return *parsed.Value, nil
}
