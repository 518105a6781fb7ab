package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/hrcore/competency/internal/store"
)

// LoggingTransport is an http.RoundTripper that records every request as an
// API request event.
type LoggingTransport struct {
	inner     http.RoundTripper
	eventRepo store.EventRepo
	logger    *slog.Logger
}

// WithLogging wraps inner (http.DefaultTransport when nil) with event
// logging.
func WithLogging(inner http.RoundTripper, repo store.EventRepo, logger *slog.Logger) *LoggingTransport {
	if inner == nil {
		inner = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LoggingTransport{inner: inner, eventRepo: repo, logger: logger}
}

func (l *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := l.inner.RoundTrip(req)

	data := store.APIRequestEventData{
		RequestID: req.Header.Get(RequestIDHeader),
		Method:    req.Method,
		Endpoint:  req.URL.Path,
		LatencyMs: time.Since(start).Milliseconds(),
		Attempt:   AttemptFrom(req.Context()),
		Success:   err == nil && resp.StatusCode < 400,
	}
	if resp != nil {
		data.Status = resp.StatusCode
		data.APIVersion = resp.Header.Get(VersionHeader)
		if !data.Success {
			data.ErrorMessage = resp.Status
		}
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	ctx := context.WithoutCancel(req.Context())
	if logErr := l.eventRepo.AppendAPIRequest(ctx, data); logErr != nil {
		l.logger.Warn("failed to log API request event", "endpoint", data.Endpoint, "error", logErr)
	}

	return resp, err
}
