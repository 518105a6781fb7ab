package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	calls := 0
	err := retry(context.Background(), retryConfig(), func(ctx context.Context) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	var attempts []int
	err := retry(context.Background(), retryConfig(), func(ctx context.Context) error {
		attempts = append(attempts, AttemptFrom(ctx))
		if len(attempts) == 1 {
			return &Error{Status: http.StatusServiceUnavailable}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(attempts) != 2 || attempts[0] != 1 || attempts[1] != 2 {
		t.Fatalf("attempts = %v, want [1 2]", attempts)
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	calls := 0
	err := retry(context.Background(), retryConfig(), func(ctx context.Context) error {
		calls++
		return errors.New("connection reset")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestRetry_PermanentErrorsNotRetried(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"client error", &Error{Status: http.StatusBadRequest}},
		{"not found", &Error{Status: http.StatusNotFound}},
		{"version", &VersionError{Server: "v2.0.0", Client: "v1.0.0"}},
		{"invalid response", &InvalidResponseError{Endpoint: "/x", Err: errors.New("bad")}},
		{"canceled", context.Canceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := retry(context.Background(), retryConfig(), func(ctx context.Context) error {
				calls++
				return tt.err
			})
			if !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
			if calls != 1 {
				t.Fatalf("expected 1 call, got %d", calls)
			}
		})
	}
}

func TestRetry_ContextCancelledDuringWait(t *testing.T) {
	cfg := retryConfig()
	cfg.InitialWait = time.Hour
	cfg.MaxWait = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := retry(ctx, cfg, func(ctx context.Context) error {
		calls++
		cancel()
		return &Error{Status: http.StatusBadGateway}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestBackoff(t *testing.T) {
	cfg := RetryConfig{InitialWait: 100 * time.Millisecond, MaxWait: time.Second, Multiplier: 2}

	for attempt, base := range []time.Duration{100, 200, 400, 800, 1000, 1000} {
		base *= time.Millisecond
		got := backoff(cfg, attempt, errors.New("x"))
		lo, hi := base*8/10, base*12/10
		if got < lo || got > hi {
			t.Errorf("attempt %d: wait %v outside [%v, %v]", attempt, got, lo, hi)
		}
	}

	if got := backoff(cfg, 0, &Error{Status: 429, RetryAfter: 3 * time.Second}); got != 3*time.Second {
		t.Errorf("Retry-After wait = %v, want 3s", got)
	}
}
