package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetrySingleAttemptPassThrough(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	p := WithRetry(mock, fastRetryConfig(1))

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("Generate() error = nil, want failure")
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount() = %d, want 1 (no retry with MaxAttempts=1)", mock.CallCount())
	}
}

func TestRetryRecoversTransientError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Content: json.RawMessage(`{"ok": true}`)},
	)
	p := WithRetry(mock, fastRetryConfig(3))

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if string(resp.Content) != `{"ok": true}` {
		t.Errorf("Content = %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Errorf("CallCount() = %d, want 2", mock.CallCount())
	}
}

func TestRetryInvalidResponseOnlyOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json")}},
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json again")}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetryConfig(5))

	_, err := p.Generate(context.Background(), Request{})
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("Generate() error = %v, want ErrInvalidResponse", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("CallCount() = %d, want 2 (invalid response retried once)", mock.CallCount())
	}
}

func TestRetryMaxTokensNotRetried(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrMaxTokensExceeded{}})
	p := WithRetry(mock, fastRetryConfig(3))

	_, err := p.Generate(context.Background(), Request{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("Generate() error = %v, want ErrMaxTokensExceeded", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount() = %d, want 1", mock.CallCount())
	}
}

func TestRetryContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := NewMockProvider(MockResponse{Err: context.Canceled})
	p := WithRetry(mock, fastRetryConfig(3))

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Generate() error = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount() = %d, want 1 (canceled context never retried)", mock.CallCount())
	}
}
