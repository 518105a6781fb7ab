package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrcore/competency/internal/domain"
	"github.com/hrcore/competency/internal/schedule"
	"github.com/hrcore/competency/internal/store"
)

func newTestClient(t *testing.T, h http.Handler, opts Options) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	opts.BaseURL = srv.URL + "/api"
	if opts.Retry.MaxAttempts == 0 {
		opts.Retry = retryConfig()
	}
	c, err := New(opts)
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(VersionHeader, "1.3.0")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestNewRejectsBadOptions(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)

	_, err = New(Options{BaseURL: "ftp://example.com"})
	assert.Error(t, err)

	_, err = New(Options{BaseURL: "http://example.com", Version: "banana"})
	assert.Error(t, err)

	c, err := New(Options{BaseURL: "http://example.com/api/", Version: "1.2"})
	require.NoError(t, err)
	assert.Equal(t, "v1.2.0", c.Version())
	assert.Equal(t, "http://example.com/api/questions", c.endpoint("/questions", nil))
}

func TestListDecodesBareArrayAndEnvelope(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/competencies", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"id":"c1","name":"Go","category":"Engineering"}]`)
	})
	mux.HandleFunc("GET /api/employees", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"data":[{"id":"e1","name":"Ann"},{"id":"e2","name":"Bo"}],"total":2}`)
	})
	mux.HandleFunc("GET /api/jobs", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `null`)
	})
	c := newTestClient(t, mux, Options{})
	ctx := context.Background()

	comps, err := c.Competencies(ctx)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Equal(t, "Engineering", comps[0].Category)

	emps, err := c.Employees(ctx)
	require.NoError(t, err)
	assert.Len(t, emps, 2)

	jobs, err := c.Jobs(ctx)
	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestQuestionsFilterAndKinds(t *testing.T) {
	var gotQuery string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/questions", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("competency_id")
		writeJSON(w, http.StatusOK, `[
			{"id":"q1","competency_id":"c1","level":"BASIC","kind":"essay","text":"Why?","rubric":"clarity"},
			{"id":"q2","competency_id":"c1","level":"EXPERT","kind":"true_false","text":"Go has generics","answer":true}
		]`)
	})
	c := newTestClient(t, mux, Options{})

	qs, err := c.Questions(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", gotQuery)
	require.Len(t, qs, 2)
	assert.Equal(t, domain.KindEssay, qs[0].Kind())
	assert.Equal(t, domain.KindTrueFalse, qs[1].Kind())
}

func TestRequestHeaders(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]http.Header{}
	record := func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen[r.Method] = r.Header.Clone()
		mu.Unlock()
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/reviews", func(w http.ResponseWriter, r *http.Request) {
		record(w, r)
		writeJSON(w, http.StatusOK, `[]`)
	})
	mux.HandleFunc("POST /api/reviews", func(w http.ResponseWriter, r *http.Request) {
		record(w, r)
		var req domain.ReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, `{"message":"bad body"}`)
			return
		}
		writeJSON(w, http.StatusCreated, `{"id":"r9","employee_id":"`+req.EmployeeID+`","status":"requested","due_date":"2024-06-30"}`)
	})
	c := newTestClient(t, mux, Options{Token: "secret"})
	ctx := context.Background()

	_, err := c.Reviews(ctx)
	require.NoError(t, err)
	rev, err := c.RequestReview(ctx, domain.ReviewRequest{EmployeeID: "e1", ReviewerID: "e2", Period: "2024-H1"})
	require.NoError(t, err)
	assert.Equal(t, "r9", rev.ID)
	assert.Equal(t, "2024-06-30", rev.DueDate.String())

	get, post := seen[http.MethodGet], seen[http.MethodPost]
	require.NotNil(t, get)
	require.NotNil(t, post)

	for _, h := range []http.Header{get, post} {
		_, err := uuid.Parse(h.Get(RequestIDHeader))
		assert.NoError(t, err, "request id must be a uuid")
		assert.Equal(t, "Bearer secret", h.Get("Authorization"))
		assert.Equal(t, "application/json", h.Get("Accept"))
	}
	assert.Empty(t, get.Get(IdempotencyHeader), "reads carry no idempotency key")
	_, err = uuid.Parse(post.Get(IdempotencyHeader))
	assert.NoError(t, err)
	assert.Equal(t, "application/json", post.Get("Content-Type"))
	assert.NotEqual(t, get.Get(RequestIDHeader), post.Get(RequestIDHeader))
}

func TestReadsAreRetriedMutationsAreNot(t *testing.T) {
	var gets, posts atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/assessors", func(w http.ResponseWriter, r *http.Request) {
		if gets.Add(1) == 1 {
			writeJSON(w, http.StatusServiceUnavailable, `{"message":"warming up"}`)
			return
		}
		writeJSON(w, http.StatusOK, `[{"id":"a1","name":"Kim","competency_ids":["c1"]}]`)
	})
	mux.HandleFunc("POST /api/assessors/a1/competencies", func(w http.ResponseWriter, r *http.Request) {
		posts.Add(1)
		writeJSON(w, http.StatusServiceUnavailable, `{"message":"warming up"}`)
	})
	c := newTestClient(t, mux, Options{})
	ctx := context.Background()

	as, err := c.Assessors(ctx)
	require.NoError(t, err)
	require.Len(t, as, 1)
	assert.True(t, as[0].Covers("c1"))
	assert.EqualValues(t, 2, gets.Load())

	err = c.AssignAssessor(ctx, domain.AssessorAssignment{AssessorID: "a1", CompetencyID: "c2"})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.Equal(t, "warming up", apiErr.Message)
	assert.EqualValues(t, 1, posts.Load())
}

func TestErrorBodyDecoded(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/development-paths/p1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, `{"error":"end date before start date"}`)
	})
	mux.HandleFunc("GET /api/development-paths/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	c := newTestClient(t, mux, Options{})
	ctx := context.Background()

	_, err := c.UpdatePath(ctx, "p1", domain.PathUpdate{Title: "x", Status: domain.PathDraft})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "end date before start date", apiErr.Message)
	assert.NotEmpty(t, apiErr.RequestID)
	assert.Contains(t, err.Error(), "422")

	_, err = c.Path(ctx, "missing")
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.NotFound())
}

func TestIncompatibleServerVersion(t *testing.T) {
	var calls atomic.Int32
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set(VersionHeader, "2.1.0")
		_, _ = io.WriteString(w, `[]`)
	})
	c := newTestClient(t, h, Options{})

	_, err := c.Competencies(context.Background())
	var verErr *VersionError
	require.ErrorAs(t, err, &verErr)
	assert.Equal(t, "v2.1.0", verErr.Server)
	assert.EqualValues(t, 1, calls.Load(), "version errors are not retried")
}

func TestInvalidListPayload(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"id":"q1","text":"no kind"}]`)
	})
	c := newTestClient(t, h, Options{})

	_, err := c.Questions(context.Background(), "")
	var invErr *InvalidResponseError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, "/questions", invErr.Endpoint)
}

func TestBulkDeleteQuestions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/questions/bulk-delete", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			IDs []string `json:"ids"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, []string{"q1", "q2"}, body.IDs)
		writeJSON(w, http.StatusOK, `{"deleted":["q1"],"failed":[{"id":"q2","message":"used by an assessment"}]}`)
	})
	c := newTestClient(t, mux, Options{})

	res, err := c.DeleteQuestions(context.Background(), []string{"q1", "q2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"q1"}, res.Deleted)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, "q2", res.Failed[0].ID)
}

func TestInterventionRoundTrip(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/interventions", func(w http.ResponseWriter, r *http.Request) {
		var d domain.InterventionDraft
		if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
			writeJSON(w, http.StatusBadRequest, `{"message":"bad body"}`)
			return
		}
		out, _ := json.Marshal(domain.Intervention{
			ID: "i1", PathID: d.PathID, Title: d.Title, Type: d.Type,
			Status: domain.InterventionPlanned, StartDate: d.StartDate, EndDate: d.EndDate,
		})
		writeJSON(w, http.StatusCreated, string(out))
	})
	mux.HandleFunc("DELETE /api/interventions/i1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	c := newTestClient(t, mux, Options{})
	ctx := context.Background()

	start, err := schedule.ParseDate("2024-03-01", nil)
	require.NoError(t, err)
	got, err := c.CreateIntervention(ctx, domain.InterventionDraft{
		PathID:    "p1",
		Title:     "Mentoring",
		Type:      domain.InterventionMentoring,
		StartDate: schedule.NewDay(start),
	})
	require.NoError(t, err)
	assert.Equal(t, "i1", got.ID)
	assert.Equal(t, start, got.StartDate.Date)
	assert.True(t, got.EndDate.IsZero())

	require.NoError(t, c.DeleteIntervention(ctx, "i1"))
}

type memEvents struct {
	mu     sync.Mutex
	events []store.APIRequestEventData
	fail   error
}

func (m *memEvents) AppendAPIRequest(_ context.Context, data store.APIRequestEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.events = append(m.events, data)
	return nil
}

func (m *memEvents) QueryAPIRequests(context.Context, store.QueryOpts) ([]store.APIRequestEvent, error) {
	return nil, nil
}

func (m *memEvents) GetAPIRequest(context.Context, int) (*store.APIRequestEvent, error) {
	return nil, nil
}

func (m *memEvents) UsageByEndpoint(context.Context) ([]store.EndpointUsage, error) {
	return nil, nil
}

func TestLoggingTransportRecordsAttempts(t *testing.T) {
	var calls atomic.Int32
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			writeJSON(w, http.StatusBadGateway, `{}`)
			return
		}
		writeJSON(w, http.StatusOK, `[]`)
	})
	events := &memEvents{}
	c := newTestClient(t, h, Options{Transport: WithLogging(nil, events, nil)})

	_, err := c.Jobs(context.Background())
	require.NoError(t, err)

	require.Len(t, events.events, 2)
	first, second := events.events[0], events.events[1]
	assert.Equal(t, 1, first.Attempt)
	assert.False(t, first.Success)
	assert.Equal(t, http.StatusBadGateway, first.Status)
	assert.NotEmpty(t, first.ErrorMessage)
	assert.Equal(t, 2, second.Attempt)
	assert.True(t, second.Success)
	assert.Equal(t, "/api/jobs", second.Endpoint)
	assert.Equal(t, http.MethodGet, second.Method)
	assert.Equal(t, "1.3.0", second.APIVersion)
	assert.NotEqual(t, first.RequestID, second.RequestID)
}

func TestLoggingFailureDoesNotFailRequest(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})
	events := &memEvents{fail: errors.New("disk full")}
	c := newTestClient(t, h, Options{Transport: WithLogging(nil, events, nil)})

	_, err := c.Employees(context.Background())
	assert.NoError(t, err)
}
