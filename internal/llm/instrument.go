package llm

import (
	"context"

	"github.com/abhisek/mathcoach/internal/metrics"
)

// InstrumentedProvider is a decorator that counts backend calls by
// purpose and outcome.
type InstrumentedProvider struct {
	inner Provider
	m     *metrics.Metrics
}

// WithMetrics wraps a Provider with Prometheus instrumentation.
func WithMetrics(p Provider, m *metrics.Metrics) Provider {
	return &InstrumentedProvider{inner: p, m: m}
}

func (i *InstrumentedProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := i.inner.Generate(ctx, req)
	i.m.ObserveLLMRequest(PurposeFrom(ctx), err == nil)
	return resp, err
}

func (i *InstrumentedProvider) ModelID() string {
	return i.inner.ModelID()
}
