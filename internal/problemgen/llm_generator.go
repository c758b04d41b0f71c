package problemgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/mathcoach/internal/llm"
)

// LLMGenerator implements Generator using a compiled prompt from the
// registry.
type LLMGenerator struct {
	registry *llm.Registry
	config   Config
}

// New creates a new LLMGenerator.
func New(registry *llm.Registry, cfg Config) *LLMGenerator {
	return &LLMGenerator{registry: registry, config: cfg}
}

// Generate produces a single validated problem for the given input.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Problem, error) {
	if !input.Difficulty.Valid() {
		return nil, fmt.Errorf("unknown difficulty %q", input.Difficulty)
	}
	if !input.QuestionType.Valid() {
		return nil, fmt.Errorf("unknown question type %q", input.QuestionType)
	}

	prompt, err := g.registry.Compile(ctx, llm.PromptSpec{
		Operation:   "problem-gen",
		System:      systemPrompt,
		Schema:      ProblemSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}, input.Model)
	if err != nil {
		return nil, fmt.Errorf("compile problem prompt: %w", err)
	}

	raw, err := prompt.Invoke(ctx, buildUserMessage(input))
	if err != nil {
		return nil, fmt.Errorf("problem generation failed: %w", err)
	}

	var p Problem
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse generated problem: %w", err)
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(&p, input); verr != nil {
			return nil, verr
		}
	}

	return &p, nil
}
