package store

import (
	"context"
	"testing"
	"time"
)

func seedRequests(t *testing.T, repo EventRepo) {
	t.Helper()
	ctx := context.Background()
	events := []APIRequestEventData{
		{RequestID: "r1", Method: "GET", Endpoint: "/questions", Status: 200, LatencyMs: 40, Success: true},
		{RequestID: "r2", Method: "GET", Endpoint: "/questions", Status: 503, LatencyMs: 10, Attempt: 1, ErrorMessage: "unavailable"},
		{RequestID: "r2", Method: "GET", Endpoint: "/questions", Status: 200, LatencyMs: 60, Attempt: 2, Success: true},
		{RequestID: "r3", Method: "POST", Endpoint: "/paths/p1/interventions", Status: 201, LatencyMs: 80, Success: true, APIVersion: "v1.2.0"},
	}
	for _, e := range events {
		if err := repo.AppendAPIRequest(ctx, e); err != nil {
			t.Fatalf("append %s: %v", e.RequestID, err)
		}
	}
}

func TestQueryAPIRequests(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	seedRequests(t, repo)
	ctx := context.Background()

	all, err := repo.QueryAPIRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("events = %d, want 4", len(all))
	}
	if all[0].RequestID != "r3" || all[0].Sequence != 4 {
		t.Errorf("newest = %s seq %d, want r3 seq 4", all[0].RequestID, all[0].Sequence)
	}
	if all[3].Attempt != 1 {
		t.Errorf("default attempt = %d, want 1", all[3].Attempt)
	}
	if all[0].Timestamp.IsZero() {
		t.Error("timestamp not set")
	}

	tests := []struct {
		name string
		opts QueryOpts
		want int
	}{
		{"limit", QueryOpts{Limit: 2}, 2},
		{"after", QueryOpts{After: 2}, 2},
		{"before", QueryOpts{Before: 2}, 1},
		{"endpoint prefix", QueryOpts{Endpoint: "/paths"}, 1},
		{"failed only", QueryOpts{FailedOnly: true}, 1},
		{"from future", QueryOpts{From: time.Now().Add(time.Hour)}, 0},
		{"to future", QueryOpts{To: time.Now().Add(time.Hour)}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.QueryAPIRequests(ctx, tt.opts)
			if err != nil {
				t.Fatalf("query: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("events = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestGetAPIRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	seedRequests(t, repo)
	ctx := context.Background()

	events, err := repo.QueryAPIRequests(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	e, err := repo.GetAPIRequest(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.APIVersion != "v1.2.0" || e.Method != "POST" {
		t.Errorf("event = %+v", e)
	}

	missing, err := repo.GetAPIRequest(ctx, 999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown ID")
	}
}

func TestUsageByEndpoint(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	seedRequests(t, repo)

	usage, err := repo.UsageByEndpoint(context.Background())
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("rows = %d, want 2", len(usage))
	}

	q := usage[0]
	if q.Endpoint != "/questions" || q.Calls != 3 || q.Failures != 1 {
		t.Errorf("questions usage = %+v", q)
	}
	if q.AvgLatencyMs != 36 || q.MaxLatencyMs != 60 {
		t.Errorf("latency avg=%d max=%d, want 36 and 60", q.AvgLatencyMs, q.MaxLatencyMs)
	}
}
