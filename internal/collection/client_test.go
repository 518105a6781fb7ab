package collection

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type result struct {
	items []item
	err   error
}

// gatedFetcher blocks call i until gates[i] receives a result.
type gatedFetcher struct {
	mu      sync.Mutex
	calls   int
	gates   []chan result
	started chan int
}

func newGated(n int) *gatedFetcher {
	g := &gatedFetcher{started: make(chan int, n)}
	for range n {
		g.gates = append(g.gates, make(chan result, 1))
	}
	return g
}

func (g *gatedFetcher) fetch(ctx context.Context) ([]item, error) {
	g.mu.Lock()
	i := g.calls
	g.calls++
	g.mu.Unlock()

	if i >= len(g.gates) {
		return nil, errors.New("unexpected fetch")
	}
	g.started <- i
	select {
	case r := <-g.gates[i]:
		return r.items, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (g *gatedFetcher) release(i int, items []item, err error) {
	g.gates[i] <- result{items: items, err: err}
}

func (g *gatedFetcher) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func (g *gatedFetcher) waitStarted(t *testing.T, want int) {
	t.Helper()
	select {
	case i := <-g.started:
		require.Equal(t, want, i, "unexpected fetch started")
	case <-time.After(2 * time.Second):
		t.Fatalf("fetch %d never started", want)
	}
}

func awaitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func newTestClient(t *testing.T, opts Options) *Client {
	t.Helper()
	c := NewClient(opts)
	t.Cleanup(c.Close)
	return c
}

var questionsKey = KeyOf("questions")

func TestFirstSubscribeIsLoadingWithoutData(t *testing.T) {
	c := newTestClient(t, Options{})
	g := newGated(1)

	snap, sub := Subscribe(c, questionsKey, g.fetch, nil)
	defer sub.Close()

	assert.True(t, snap.IsLoading)
	assert.False(t, snap.HasData())
	assert.Empty(t, snap.Items)

	g.waitStarted(t, 0)
	g.release(0, []item{{ID: "q1"}}, nil)

	snap, err := Await[item](awaitCtx(t), c, questionsKey)
	require.NoError(t, err)
	assert.False(t, snap.IsLoading)
	assert.True(t, snap.HasData())
	assert.Equal(t, []item{{ID: "q1"}}, snap.Items)
	assert.Equal(t, uint64(1), snap.Version)
}

func TestConcurrentSubscribesShareOneFetch(t *testing.T) {
	c := newTestClient(t, Options{})
	g := newGated(1)

	var wg sync.WaitGroup
	subs := make(chan *Subscription, 10)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snap, sub := Subscribe(c, questionsKey, g.fetch, nil)
			assert.True(t, snap.IsLoading)
			subs <- sub
		}()
	}
	wg.Wait()
	close(subs)
	defer func() {
		for s := range subs {
			s.Close()
		}
	}()

	g.waitStarted(t, 0)
	g.release(0, []item{{ID: "q1"}}, nil)
	_, err := Await[item](awaitCtx(t), c, questionsKey)
	require.NoError(t, err)

	assert.Equal(t, 1, g.callCount())
}

func TestNewerFetchWinsOverSlowerOlderOne(t *testing.T) {
	discarded := make(chan Event, 1)
	c := newTestClient(t, Options{Observer: func(ev Event) {
		if ev.Kind == EventStaleDiscarded {
			discarded <- ev
		}
	}})
	g := newGated(2)

	_, sub := Subscribe(c, questionsKey, g.fetch, nil)
	defer sub.Close()
	g.waitStarted(t, 0)

	c.Invalidate(questionsKey)
	g.waitStarted(t, 1)

	// B resolves first.
	g.release(1, []item{{ID: "b"}}, nil)
	snap, err := Await[item](awaitCtx(t), c, questionsKey)
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "b"}}, snap.Items)

	// A resolves late and must be dropped.
	g.release(0, []item{{ID: "a"}}, nil)
	select {
	case ev := <-discarded:
		assert.Equal(t, uint64(1), ev.Generation)
		assert.ErrorIs(t, ev.Err, ErrStaleWriteDiscarded)
	case <-time.After(2 * time.Second):
		t.Fatal("stale response was not reported")
	}

	snap, _ = Peek[item](c, questionsKey)
	assert.Equal(t, []item{{ID: "b"}}, snap.Items)
	assert.Equal(t, uint64(1), snap.Version, "discarded response must not bump the version")
}

func TestLoadingUntilNewestFetchSettles(t *testing.T) {
	c := newTestClient(t, Options{})
	g := newGated(2)

	_, sub := Subscribe(c, questionsKey, g.fetch, nil)
	defer sub.Close()
	g.waitStarted(t, 0)
	c.Invalidate(questionsKey)
	g.waitStarted(t, 1)

	// The superseded fetch finishing does not end loading.
	g.release(0, []item{{ID: "old"}}, nil)
	time.Sleep(20 * time.Millisecond)
	snap, _ := Peek[item](c, questionsKey)
	assert.True(t, snap.IsLoading)

	g.release(1, []item{{ID: "new"}}, nil)
	snap, err := Await[item](awaitCtx(t), c, questionsKey)
	require.NoError(t, err)
	assert.False(t, snap.IsLoading)
	assert.Equal(t, "new", snap.Items[0].ID)
}

func TestFetchErrorKeepsPreviousItems(t *testing.T) {
	c := newTestClient(t, Options{})
	g := newGated(2)
	boom := errors.New("gateway timeout")

	_, sub := Subscribe(c, questionsKey, g.fetch, nil)
	defer sub.Close()
	g.waitStarted(t, 0)
	g.release(0, []item{{ID: "q1"}, {ID: "q2"}}, nil)
	_, err := Await[item](awaitCtx(t), c, questionsKey)
	require.NoError(t, err)

	c.Invalidate(questionsKey)
	g.waitStarted(t, 1)
	g.release(1, nil, boom)

	snap, err := Await[item](awaitCtx(t), c, questionsKey)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	var fe *FetchError
	require.ErrorAs(t, snap.Err, &fe)
	assert.Equal(t, questionsKey, fe.Key)

	assert.False(t, snap.IsLoading)
	assert.True(t, snap.IsStale)
	assert.Len(t, snap.Items, 2, "last good items are preserved")
}

func TestInvalidateWithoutSubscribersDefersFetch(t *testing.T) {
	c := newTestClient(t, Options{})
	g := newGated(2)

	g.release(0, []item{{ID: "q1"}}, nil)
	_, err := Fetch(awaitCtx(t), c, questionsKey, g.fetch)
	require.NoError(t, err)
	g.waitStarted(t, 0)

	c.Invalidate(questionsKey)
	snap, _ := Peek[item](c, questionsKey)
	assert.True(t, snap.IsStale)
	assert.False(t, snap.IsLoading)
	assert.Equal(t, 1, g.callCount())

	snap, sub := Subscribe(c, questionsKey, g.fetch, nil)
	defer sub.Close()
	assert.True(t, snap.IsLoading)
	assert.Equal(t, []item{{ID: "q1"}}, snap.Items, "stale data stays visible while refetching")
	g.waitStarted(t, 1)
	g.release(1, []item{{ID: "q1"}, {ID: "q2"}}, nil)

	snap, err = Await[item](awaitCtx(t), c, questionsKey)
	require.NoError(t, err)
	assert.False(t, snap.IsStale)
	assert.Len(t, snap.Items, 2)
}

func TestInvalidateSupersedesInflightFetchWithoutSubscribers(t *testing.T) {
	c := newTestClient(t, Options{})
	g := newGated(2)

	_, sub := Subscribe(c, questionsKey, g.fetch, nil)
	g.waitStarted(t, 0)
	sub.Close()

	// The mutation lands while the first fetch is still in flight.
	c.Invalidate(questionsKey)
	g.waitStarted(t, 1)

	g.release(0, []item{{ID: "before"}}, nil)
	g.release(1, []item{{ID: "after"}}, nil)

	snap, err := Await[item](awaitCtx(t), c, questionsKey)
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "after"}}, snap.Items)
}

func TestResultStoredWithNoSubscribers(t *testing.T) {
	c := newTestClient(t, Options{})
	g := newGated(1)

	notified := 0
	_, sub := Subscribe(c, questionsKey, g.fetch, func(Snapshot[item]) { notified++ })
	g.waitStarted(t, 0)
	sub.Close()

	g.release(0, []item{{ID: "q1"}}, nil)
	snap, err := Await[item](awaitCtx(t), c, questionsKey)
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "q1"}}, snap.Items)
	assert.Zero(t, notified)
}

func TestSubscribersAreNotified(t *testing.T) {
	c := newTestClient(t, Options{})
	g := newGated(1)

	updates := make(chan Snapshot[item], 4)
	_, sub := Subscribe(c, questionsKey, g.fetch, func(s Snapshot[item]) { updates <- s })
	defer sub.Close()

	g.waitStarted(t, 0)
	g.release(0, []item{{ID: "q1"}}, nil)

	select {
	case s := <-updates:
		assert.False(t, s.IsLoading)
		assert.Equal(t, []item{{ID: "q1"}}, s.Items)
	case <-time.After(2 * time.Second):
		t.Fatal("no notification")
	}
}

func TestMutate(t *testing.T) {
	c := newTestClient(t, Options{})
	g := newGated(2)

	_, sub := Subscribe(c, questionsKey, g.fetch, nil)
	defer sub.Close()
	g.waitStarted(t, 0)
	g.release(0, []item{{ID: "q1"}}, nil)
	_, err := Await[item](awaitCtx(t), c, questionsKey)
	require.NoError(t, err)

	t.Run("failure invalidates nothing", func(t *testing.T) {
		denied := errors.New("forbidden")
		_, err := Mutate(context.Background(), c, func(context.Context) (string, error) {
			return "", denied
		}, questionsKey)

		var me *MutationError
		require.ErrorAs(t, err, &me)
		assert.ErrorIs(t, err, denied)

		snap, _ := Peek[item](c, questionsKey)
		assert.False(t, snap.IsStale)
		assert.False(t, snap.IsLoading)
		assert.Equal(t, 1, g.callCount())
	})

	t.Run("success invalidates listed keys", func(t *testing.T) {
		id, err := Mutate(context.Background(), c, func(context.Context) (string, error) {
			return "q2", nil
		}, questionsKey)
		require.NoError(t, err)
		assert.Equal(t, "q2", id)

		snap, _ := Peek[item](c, questionsKey)
		assert.True(t, snap.IsLoading, "refetch starts before Mutate returns")

		g.waitStarted(t, 1)
		g.release(1, []item{{ID: "q1"}, {ID: "q2"}}, nil)
		snap, err = Await[item](awaitCtx(t), c, questionsKey)
		require.NoError(t, err)
		assert.Len(t, snap.Items, 2)
	})
}

func TestInvalidateCoversKeysBelow(t *testing.T) {
	c := newTestClient(t, Options{})
	ok := func(context.Context) ([]item, error) { return []item{}, nil }

	keys := []Key{KeyOf("interventions", "p1"), KeyOf("interventions", "p2"), KeyOf("paths")}
	for _, k := range keys {
		_, err := Fetch(awaitCtx(t), c, k, ok)
		require.NoError(t, err)
	}

	c.Invalidate(KeyOf("interventions"))

	for _, k := range keys {
		snap, _ := Peek[item](c, k)
		assert.Equal(t, k.Within(KeyOf("interventions")), snap.IsStale, "key %s", k)
	}
}

func TestKeyOfEscapesParts(t *testing.T) {
	assert.Equal(t, Key("interventions/a%2Fb"), KeyOf("interventions", "a/b"))
	assert.False(t, KeyOf("interventions", "a/b").Within(KeyOf("interventions", "a")))
	assert.True(t, KeyOf("interventions", "a").Within(KeyOf("interventions")))
	assert.False(t, KeyOf("interventionsX").Within(KeyOf("interventions")))
}

func TestCollectDropsIdleEntries(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	advance := func(d time.Duration) {
		mu.Lock()
		now = now.Add(d)
		mu.Unlock()
	}

	c := newTestClient(t, Options{Retention: time.Hour, Now: clock})
	ok := func(context.Context) ([]item, error) { return []item{{ID: "x"}}, nil }

	_, err := Fetch(awaitCtx(t), c, KeyOf("idle"), ok)
	require.NoError(t, err)
	_, held := Subscribe(c, KeyOf("held"), ok, nil)
	defer held.Close()
	_, err = Await[item](awaitCtx(t), c, KeyOf("held"))
	require.NoError(t, err)

	advance(30 * time.Minute)
	assert.Zero(t, c.Collect())

	advance(31 * time.Minute)
	assert.Equal(t, 1, c.Collect())
	_, found := Peek[item](c, KeyOf("idle"))
	assert.False(t, found, "collected entry is gone")
	_, found = Peek[item](c, KeyOf("held"))
	assert.True(t, found)
}

type memPersister struct {
	mu    sync.Mutex
	data  map[Key]*Persisted
	saved chan Key
}

func (m *memPersister) Load(_ context.Context, key Key) (*Persisted, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memPersister) Save(_ context.Context, key Key, p *Persisted) error {
	m.mu.Lock()
	m.data[key] = p
	m.mu.Unlock()
	m.saved <- key
	return nil
}

func TestHydratesFromPersister(t *testing.T) {
	fetchedAt := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	raw, err := json.Marshal([]item{{ID: "cached"}})
	require.NoError(t, err)

	p := &memPersister{
		data:  map[Key]*Persisted{questionsKey: {Items: raw, FetchedAt: fetchedAt}},
		saved: make(chan Key, 1),
	}
	c := newTestClient(t, Options{Persister: p})
	g := newGated(1)

	snap, sub := Subscribe(c, questionsKey, g.fetch, nil)
	defer sub.Close()
	assert.True(t, snap.HasData())
	assert.True(t, snap.IsStale)
	assert.True(t, snap.IsLoading)
	assert.Equal(t, []item{{ID: "cached"}}, snap.Items)
	assert.Equal(t, fetchedAt, snap.FetchedAt)

	g.waitStarted(t, 0)
	g.release(0, []item{{ID: "fresh"}}, nil)
	snap, err = Await[item](awaitCtx(t), c, questionsKey)
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "fresh"}}, snap.Items)

	select {
	case k := <-p.saved:
		assert.Equal(t, questionsKey, k)
	case <-time.After(2 * time.Second):
		t.Fatal("fresh snapshot was not persisted")
	}
	assert.JSONEq(t, `[{"id":"fresh","name":""}]`, string(p.data[questionsKey].Items))
}

func TestCloseCancelsInflightFetches(t *testing.T) {
	c := NewClient(Options{})
	g := newGated(1)

	_, sub := Subscribe(c, questionsKey, g.fetch, nil)
	defer sub.Close()
	g.waitStarted(t, 0)

	done := make(chan struct{})
	go func() {
		c.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return")
	}

	snap, _ := Peek[item](c, questionsKey)
	assert.ErrorIs(t, snap.Err, context.Canceled)
}

func TestMetricsCountFetchesAndDiscards(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	c := newTestClient(t, Options{Metrics: m})
	g := newGated(2)

	_, sub := Subscribe(c, questionsKey, g.fetch, nil)
	defer sub.Close()
	g.waitStarted(t, 0)
	c.Invalidate(questionsKey)
	g.waitStarted(t, 1)
	g.release(1, []item{}, nil)
	_, err := Await[item](awaitCtx(t), c, questionsKey)
	require.NoError(t, err)
	g.release(0, []item{}, nil)

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(m.StaleDiscarded) == 1
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, float64(2), testutil.ToFloat64(m.Fetches))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Entries))
}
