package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/hrcore/competency/ent"
	"github.com/hrcore/competency/ent/apirequestevent"
	"github.com/hrcore/competency/ent/predicate"
)

// eventRepo implements EventRepo using ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAPIRequest(ctx context.Context, data APIRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	if data.Attempt == 0 {
		data.Attempt = 1
	}

	_, err = r.client.APIRequestEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(nowUTC()).
		SetRequestID(data.RequestID).
		SetMethod(data.Method).
		SetEndpoint(data.Endpoint).
		SetStatus(data.Status).
		SetLatencyMs(data.LatencyMs).
		SetAttempt(data.Attempt).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetAPIVersion(data.APIVersion).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save API request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAPIRequests(ctx context.Context, opts QueryOpts) ([]APIRequestEvent, error) {
	var preds []predicate.APIRequestEvent
	if opts.After > 0 {
		preds = append(preds, apirequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, apirequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, apirequestevent.TimestampGTE(opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, apirequestevent.TimestampLTE(opts.To.UTC()))
	}
	if opts.Endpoint != "" {
		preds = append(preds, apirequestevent.EndpointHasPrefix(opts.Endpoint))
	}
	if opts.FailedOnly {
		preds = append(preds, apirequestevent.SuccessEQ(false))
	}

	q := r.client.APIRequestEvent.Query().
		Where(preds...).
		Order(apirequestevent.BySequence(entsql.OrderDesc()))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query API request events: %w", err)
	}

	out := make([]APIRequestEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, toAPIRequestEvent(row))
	}
	return out, nil
}

func (r *eventRepo) GetAPIRequest(ctx context.Context, id int) (*APIRequestEvent, error) {
	row, err := r.client.APIRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get API request event %d: %w", id, err)
	}
	e := toAPIRequestEvent(row)
	return &e, nil
}

// failures counts the unsuccessful calls in each group.
func failures(s *entsql.Selector) string {
	expr := fmt.Sprintf("SUM(CASE WHEN %s THEN 0 ELSE 1 END)", s.C(apirequestevent.FieldSuccess))
	return entsql.As(expr, "failures")
}

func (r *eventRepo) UsageByEndpoint(ctx context.Context) ([]EndpointUsage, error) {
	var rows []struct {
		Method     string  `json:"method"`
		Endpoint   string  `json:"endpoint"`
		Calls      int     `json:"calls"`
		Failures   int     `json:"failures"`
		AvgLatency float64 `json:"avg_latency"`
		MaxLatency int64   `json:"max_latency"`
	}
	err := r.client.APIRequestEvent.Query().
		GroupBy(apirequestevent.FieldMethod, apirequestevent.FieldEndpoint).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			failures,
			ent.As(ent.Mean(apirequestevent.FieldLatencyMs), "avg_latency"),
			ent.As(ent.Max(apirequestevent.FieldLatencyMs), "max_latency"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("query endpoint usage: %w", err)
	}

	out := make([]EndpointUsage, 0, len(rows))
	for _, row := range rows {
		out = append(out, EndpointUsage{
			Method:       row.Method,
			Endpoint:     row.Endpoint,
			Calls:        row.Calls,
			Failures:     row.Failures,
			AvgLatencyMs: int64(row.AvgLatency),
			MaxLatencyMs: row.MaxLatency,
		})
	}
	slices.SortFunc(out, func(a, b EndpointUsage) int {
		if c := cmp.Compare(b.Calls, a.Calls); c != 0 {
			return c
		}
		return cmp.Compare(a.Endpoint, b.Endpoint)
	})
	return out, nil
}

func toAPIRequestEvent(row *ent.APIRequestEvent) APIRequestEvent {
	return APIRequestEvent{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		APIRequestEventData: APIRequestEventData{
			RequestID:    row.RequestID,
			Method:       row.Method,
			Endpoint:     row.Endpoint,
			Status:       row.Status,
			LatencyMs:    row.LatencyMs,
			Attempt:      row.Attempt,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
			APIVersion:   row.APIVersion,
		},
	}
}
