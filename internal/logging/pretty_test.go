package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyHandlerHandle(t *testing.T) {
	ctx := context.Background()

	levels := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelDebug, "DEBUG:"},
		{slog.LevelInfo, "INFO:"},
		{slog.LevelWarn, "WARN:"},
		{slog.LevelError, "ERROR:"},
	}
	for _, tt := range levels {
		t.Run(tt.want, func(t *testing.T) {
			var buf bytes.Buffer
			h := NewPrettyHandler(&buf, PrettyHandlerOptions{SlogOpts: slog.HandlerOptions{Level: slog.LevelDebug}})

			r := slog.NewRecord(time.Now(), tt.level, "fetch finished", 0)
			r.AddAttrs(slog.String("key", "questions"), slog.Int("count", 42))
			require.NoError(t, h.Handle(ctx, r))

			out := buf.String()
			assert.Contains(t, out, tt.want)
			assert.Contains(t, out, "fetch finished")
			assert.Contains(t, out, `"key":"questions"`)
			assert.Contains(t, out, `"count":42`)
			assert.Regexp(t, `\[\d{2}:\d{2}:\d{2}\.\d{3}\]`, out)
		})
	}
}

func TestPrettyHandlerNoAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, PrettyHandlerOptions{})

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "simple message", 0)
	require.NoError(t, h.Handle(context.Background(), r))
	assert.Contains(t, buf.String(), "{}")
}

func TestPrettyHandlerWithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewPrettyHandler(&buf, PrettyHandlerOptions{}))

	logger.With("component", "collection").WithGroup("fetch").Info("done", "generation", 3)

	out := buf.String()
	assert.Contains(t, out, `"component":"collection"`)
	assert.Contains(t, out, `"fetch":{"generation":3}`)
}

func TestPrettyHandlerErrorsAsText(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewPrettyHandler(&buf, PrettyHandlerOptions{}))

	logger.Warn("fetch failed", "error", errors.New("gateway timeout"))
	assert.Contains(t, buf.String(), `"error":"gateway timeout"`)
}

func TestPrettyHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewPrettyHandler(&buf, PrettyHandlerOptions{SlogOpts: slog.HandlerOptions{Level: slog.LevelWarn}}))

	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{" INFO ", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
