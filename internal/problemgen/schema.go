package problemgen

import "github.com/abhisek/mathcoach/internal/llm"

// ProblemSchema defines the JSON schema for generated word problems.
var ProblemSchema = &llm.Schema{
	Name:        "math-problem",
	Description: "A single math word problem with answer and worked solution",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"statement": map[string]any{
				"type":        "string",
				"description": "The word problem shown to the learner, in plain ASCII text",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct answer as a bare number string, e.g. \"12\", \"0.75\", \"3/4\". No units, no words.",
			},
			"working": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"step": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"description": "1-based step number",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "What this step does, in plain language",
						},
						"formula": map[string]any{
							"type":        "string",
							"description": "The calculation for this step in plain ASCII",
						},
					},
					"required":             []any{"step", "explanation", "formula"},
					"additionalProperties": false,
				},
				"description": "Ordered worked solution with steps numbered from 1",
			},
			"choices": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":    map[string]any{"type": "string"},
						"label": map[string]any{"type": "string"},
						"value": map[string]any{"type": "string"},
					},
					"required":             []any{"id", "label", "value"},
					"additionalProperties": false,
				},
				"description": "Exactly 4 options for multiple_choice problems. Empty array for subjective.",
			},
		},
		"required":             []any{"statement", "answer", "working", "choices"},
		"additionalProperties": false,
	},
}
