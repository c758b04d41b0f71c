package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/abhisek/mathcoach/internal/metrics"
	"github.com/abhisek/mathcoach/internal/store"
)

// PromptSpec describes one reusable structured-generation operation:
// a system prompt, the output schema, and sampling limits. Specs are
// declared once per operation and compiled against a model through the
// Registry.
type PromptSpec struct {
	// Operation names the prompt, e.g. "problem-gen", "feedback",
	// "hint", "answer-extract". Together with the model id it forms
	// the compiled-prompt cache key and the audit purpose label.
	Operation string

	System      string
	Schema      *Schema
	MaxTokens   int
	Temperature float64
}

// CompiledPrompt is a reusable callable bound to a provider. Repeated
// requests for the same (operation, model) pair get the same compiled
// object back instead of rebuilding it per call.
type CompiledPrompt struct {
	provider Provider
	spec     PromptSpec
}

// Invoke sends a single user message through the compiled prompt and
// returns the schema-validated JSON output. An empty or invalid output
// fails with ErrInvalidResponse; there is no partial result.
func (p *CompiledPrompt) Invoke(ctx context.Context, userMsg string) (json.RawMessage, error) {
	ctx = WithPurpose(ctx, p.spec.Operation)

	resp, err := p.provider.Generate(ctx, Request{
		System:      p.spec.System,
		Messages:    []Message{{Role: RoleUser, Content: userMsg}},
		Schema:      p.spec.Schema,
		MaxTokens:   p.spec.MaxTokens,
		Temperature: p.spec.Temperature,
	})
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(resp.Content)) == 0 {
		return nil, &ErrInvalidResponse{Err: errors.New("empty response content")}
	}
	return resp.Content, nil
}

// ModelID returns the model this prompt is bound to.
func (p *CompiledPrompt) ModelID() string {
	return p.provider.ModelID()
}

type promptKey struct {
	operation string
	model     string
}

// Registry owns the per-model provider instances and the compiled
// prompt cache. It is constructed once and injected into the services,
// so tests can swap in a fake backend and lifecycle is explicit.
//
// Both caches are unbounded and never evicted: the key space is the
// small finite set of supported model identifiers crossed with the
// fixed set of operations, not user input. Access is mutex-guarded
// because request handlers run on separate goroutines.
type Registry struct {
	cfg     Config
	events  store.EventRepo
	metrics *metrics.Metrics

	mu        sync.Mutex
	providers map[string]Provider
	prompts   map[promptKey]*CompiledPrompt
}

// NewRegistry creates a Registry. events and m may be nil (no audit
// rows / no instrumentation), which tests use.
func NewRegistry(cfg Config, events store.EventRepo, m *metrics.Metrics) *Registry {
	return &Registry{
		cfg:       cfg,
		events:    events,
		metrics:   m,
		providers: make(map[string]Provider),
		prompts:   make(map[promptKey]*CompiledPrompt),
	}
}

// RegisterProvider installs a pre-built provider under the given model
// id, bypassing construction. Tests use this to inject MockProvider.
func (r *Registry) RegisterProvider(model string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[r.resolveModel(model)] = p
}

// Provider returns the provider for the given model id, constructing
// and caching it on first use. An empty model selects the configured
// default for the active backend.
func (r *Registry) Provider(ctx context.Context, model string) (Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.providerLocked(ctx, r.resolveModel(model))
}

// Compile returns the compiled prompt for (spec.Operation, model),
// building and caching it on first use.
func (r *Registry) Compile(ctx context.Context, spec PromptSpec, model string) (*CompiledPrompt, error) {
	resolved := r.resolveModel(model)
	key := promptKey{operation: spec.Operation, model: resolved}

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.prompts[key]; ok {
		return cached, nil
	}

	provider, err := r.providerLocked(ctx, resolved)
	if err != nil {
		return nil, err
	}

	compiled := &CompiledPrompt{provider: provider, spec: spec}
	r.prompts[key] = compiled
	return compiled, nil
}

// providerLocked returns or builds the provider for a resolved model id.
// Callers must hold r.mu.
func (r *Registry) providerLocked(ctx context.Context, model string) (Provider, error) {
	if p, ok := r.providers[model]; ok {
		return p, nil
	}

	base, err := newBaseProvider(ctx, r.cfg.withModel(model))
	if err != nil {
		return nil, err
	}

	// Wrap with middleware: caller → retry → metrics → logging → base
	wrapped := base
	if r.events != nil {
		wrapped = WithLogging(wrapped, r.events)
	}
	if r.metrics != nil {
		wrapped = WithMetrics(wrapped, r.metrics)
	}
	wrapped = WithRetry(wrapped, r.cfg.Retry)

	r.providers[model] = wrapped
	return wrapped, nil
}

func (r *Registry) resolveModel(model string) string {
	if model == "" {
		return r.cfg.defaultModel()
	}
	return model
}
