package answer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/mathcoach/internal/llm"
	"github.com/abhisek/mathcoach/internal/metrics"
)

func mockResolver(responses ...llm.MockResponse) (*Resolver, *llm.MockProvider) {
	cfg := llm.DefaultConfig()
	cfg.Provider = "mock"
	reg := llm.NewRegistry(cfg, nil, nil)
	mock := llm.NewMockProvider(responses...)
	reg.RegisterProvider("", mock)
	return NewResolver(reg, nil), mock
}

func TestResolveFastPath(t *testing.T) {
	r, mock := mockResolver()

	v, path, err := r.Resolve(context.Background(), "3/4")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if v != 0.75 {
		t.Errorf("Resolve() = %v, want 0.75", v)
	}
	if path != metrics.PathFast {
		t.Errorf("path = %q, want %q", path, metrics.PathFast)
	}
	if mock.CallCount() != 0 {
		t.Errorf("CallCount() = %d, want 0 (fast path never hits the backend)", mock.CallCount())
	}
}

func TestResolveFallbackPath(t *testing.T) {
	r, mock := mockResolver(llm.MockResponse{Content: json.RawMessage(`{"value": 0.5}`)})

	v, path, err := r.Resolve(context.Background(), "half of the cake")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if v != 0.5 {
		t.Errorf("Resolve() = %v, want 0.5", v)
	}
	if path != metrics.PathFallback {
		t.Errorf("path = %q, want %q", path, metrics.PathFallback)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount() = %d, want 1", mock.CallCount())
	}
}

func TestResolveFallbackNull(t *testing.T) {
	r, _ := mockResolver(llm.MockResponse{Content: json.RawMessage(`{"value": null}`)})

	_, _, err := r.Resolve(context.Background(), "banana")
	if !errors.Is(err, ErrNoNumber) {
		t.Errorf("Resolve() error = %v, want ErrNoNumber", err)
	}
}

func TestResolveFallbackBackendFailure(t *testing.T) {
	r, _ := mockResolver(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	_, _, err := r.Resolve(context.Background(), "no idea")
	if !errors.Is(err, ErrNoNumber) {
		t.Errorf("Resolve() error = %v, want ErrNoNumber when the fallback fails", err)
	}
}

func TestResolveFallbackUnconfiguredBackend(t *testing.T) {
	cfg := llm.DefaultConfig()
	cfg.Provider = "nonesuch"
	r := NewResolver(llm.NewRegistry(cfg, nil, nil), nil)

	_, _, err := r.Resolve(context.Background(), "no idea")
	if !errors.Is(err, ErrNoNumber) {
		t.Errorf("Resolve() error = %v, want ErrNoNumber when no backend can be built", err)
	}
}
