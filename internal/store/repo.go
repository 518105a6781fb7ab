package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To

	Endpoint   string // endpoint prefix
	FailedOnly bool
}

// CollectionSnapshot is the stored copy of one cached collection.
type CollectionSnapshot struct {
	ID        int
	Key       string
	Items     []byte // JSON array
	ItemCount int
	FetchedAt time.Time
	SavedAt   time.Time
}

// SnapshotRepo manages persisted collection snapshots.
type SnapshotRepo interface {
	// Save replaces the snapshot for snap.Key.
	Save(ctx context.Context, snap *CollectionSnapshot) error

	// Get returns the snapshot for key, or nil if there is none.
	Get(ctx context.Context, key string) (*CollectionSnapshot, error)

	// List returns every snapshot without its items, ordered by key.
	List(ctx context.Context) ([]CollectionSnapshot, error)

	// Prune deletes snapshots fetched before olderThan and returns how many
	// were removed.
	Prune(ctx context.Context, olderThan time.Time) (int, error)

	// Delete removes the snapshots for key and every key below it and returns
	// how many were removed.
	Delete(ctx context.Context, key string) (int, error)
}

// APIRequestEventData captures the data for a single API call event.
type APIRequestEventData struct {
	RequestID    string
	Method       string
	Endpoint     string
	Status       int
	LatencyMs    int64
	Attempt      int
	Success      bool
	ErrorMessage string
	APIVersion   string
}

// APIRequestEvent is a stored API call event.
type APIRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	APIRequestEventData
}

// EndpointUsage aggregates calls to one endpoint.
type EndpointUsage struct {
	Method       string
	Endpoint     string
	Calls        int
	Failures     int
	AvgLatencyMs int64
	MaxLatencyMs int64
}

// EventRepo provides append and query access to events.
type EventRepo interface {
	// AppendAPIRequest records an API call event.
	AppendAPIRequest(ctx context.Context, data APIRequestEventData) error

	// QueryAPIRequests returns events newest first.
	QueryAPIRequests(ctx context.Context, opts QueryOpts) ([]APIRequestEvent, error)

	// GetAPIRequest returns one event by ID, or nil if it does not exist.
	GetAPIRequest(ctx context.Context, id int) (*APIRequestEvent, error)

	// UsageByEndpoint aggregates events per method and endpoint, busiest
	// first.
	UsageByEndpoint(ctx context.Context) ([]EndpointUsage, error)
}
