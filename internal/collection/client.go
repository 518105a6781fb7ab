// Package collection caches remote collections by key.
//
// A Client holds one snapshot per key, starts at most one logical fetch per
// key at a time, and re-fetches after invalidation. A fetch started later
// always wins: when a newer fetch begins while an older one is in flight,
// the older response is dropped on arrival. Failed fetches keep the last
// good items and record the error on the snapshot.
//
// The client itself does no I/O beyond the injected fetchers, mutations and
// optional Persister.
package collection

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// Options configures a Client.
type Options struct {
	Logger *slog.Logger

	// Retention is how long an entry with no subscribers is kept before
	// Collect removes it. Zero keeps entries until Close.
	Retention time.Duration

	// FetchTimeout bounds a single fetch. Zero means no timeout.
	FetchTimeout time.Duration

	// Persister, when set, seeds empty entries from a stored copy and
	// receives every successful fetch.
	Persister Persister

	// Observer receives every client event synchronously, outside the
	// client's lock.
	Observer func(Event)

	Metrics *Metrics

	// Now defaults to time.Now.
	Now func() time.Time
}

type fetchFunc func(ctx context.Context) (any, error)

type state struct {
	key       Key
	items     any
	fetchedAt time.Time
	version   uint64
	stale     bool
	loading   bool
	err       error
}

type entry struct {
	state

	// gen is the generation of the newest started fetch.
	gen   uint64
	fetch fetchFunc
	// done is closed when loading goes back to false.
	done chan struct{}

	subs     map[uint64]func(state)
	nextSub  uint64
	lastUsed time.Time
}

// Client is the process-wide collection cache. Build one per application and
// pass it to the components that need it.
type Client struct {
	opts   Options
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	entries map[Key]*entry
	closed  bool
}

// NewClient creates a Client.
func NewClient(opts Options) *Client {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ctx, cancel := context.WithCancel(context.Background())
	c := &Client{
		opts:    opts,
		logger:  logger.With("component", "collection"),
		ctx:     ctx,
		cancel:  cancel,
		entries: make(map[Key]*entry),
	}
	if opts.Retention > 0 {
		c.wg.Add(1)
		go c.collectLoop()
	}
	return c
}

func (c *Client) collectLoop() {
	defer c.wg.Done()
	ticker := time.NewTicker(c.opts.Retention)
	defer ticker.Stop()
	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			if n := c.Collect(); n > 0 {
				c.logger.Debug("collected idle entries", "count", n)
			}
		}
	}
}

// Close stops accepting work, cancels in-flight fetches and waits for their
// goroutines to return.
func (c *Client) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}

// Subscription is a registered interest in one key.
type Subscription struct {
	c    *Client
	key  Key
	id   uint64
	once sync.Once
}

// Close removes the subscription. Fetches already in flight still complete
// and store their result.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.c.mu.Lock()
		defer s.c.mu.Unlock()
		if e, ok := s.c.entries[s.key]; ok {
			delete(e.subs, s.id)
			e.lastUsed = s.c.opts.Now()
		}
	})
}

// Subscribe registers interest in key and returns its current snapshot.
// If the key has no data or is stale and nothing is in flight, one fetch is
// started; concurrent subscribers share it. notify, when non-nil, is called
// on every later change to the snapshot.
//
// All subscribers of a key must use the same T.
func Subscribe[T any](c *Client, key Key, fetch Fetcher[T], notify func(Snapshot[T])) (Snapshot[T], *Subscription) {
	c.hydrate(key, decodeItems[T])

	c.mu.Lock()
	e := c.entryLocked(key)
	e.fetch = erase(fetch)
	id := e.nextSub
	e.nextSub++
	e.subs[id] = func(st state) {
		if notify != nil {
			notify(snapshotOf[T](st))
		}
	}
	e.lastUsed = c.opts.Now()

	var started uint64
	if (e.version == 0 || e.stale) && !e.loading && !c.closed {
		started = c.startLocked(e)
	}
	st := e.state
	c.mu.Unlock()

	if started > 0 {
		c.emit(Event{Kind: EventFetchStarted, Key: key, Generation: started})
	}
	return snapshotOf[T](st), &Subscription{c: c, key: key, id: id}
}

// Peek returns the current snapshot for key without subscribing or
// fetching.
func Peek[T any](c *Client, key Key) (Snapshot[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return Snapshot[T]{Key: key}, false
	}
	return snapshotOf[T](e.state), true
}

// Await blocks until key has no fetch in flight and returns its snapshot.
// The returned error is the snapshot's fetch error, ctx's error, or
// ErrClosed.
func Await[T any](ctx context.Context, c *Client, key Key) (Snapshot[T], error) {
	for {
		c.mu.Lock()
		e, ok := c.entries[key]
		if !ok {
			c.mu.Unlock()
			return Snapshot[T]{Key: key}, nil
		}
		st := e.state
		done := e.done
		closed := c.closed
		c.mu.Unlock()

		if !st.loading {
			return snapshotOf[T](st), st.err
		}
		if closed {
			return snapshotOf[T](st), ErrClosed
		}
		select {
		case <-done:
		case <-ctx.Done():
			return snapshotOf[T](st), ctx.Err()
		}
	}
}

// Fetch subscribes to key, waits for any fetch to settle, and unsubscribes.
// It is the blocking form used by one-shot callers.
func Fetch[T any](ctx context.Context, c *Client, key Key, fetch Fetcher[T]) (Snapshot[T], error) {
	snap, sub := Subscribe(c, key, fetch, nil)
	defer sub.Close()
	if !snap.IsLoading {
		return snap, snap.Err
	}
	return Await[T](ctx, c, key)
}

// Invalidate marks key and every key below it stale. Entries with
// subscribers, or with a fetch in flight, re-fetch immediately; the newer
// fetch supersedes any older one. Other entries re-fetch on their next
// Subscribe.
func (c *Client) Invalidate(key Key) {
	type change struct {
		st  state
		cbs []func(state)
		gen uint64
	}
	var changes []change

	c.mu.Lock()
	for k, e := range c.entries {
		if !k.Within(key) {
			continue
		}
		e.stale = true
		ch := change{st: e.state}
		if (len(e.subs) > 0 || e.loading) && e.fetch != nil && !c.closed {
			ch.gen = c.startLocked(e)
			ch.st = e.state
			ch.cbs = e.callbacks()
		}
		changes = append(changes, ch)
	}
	c.mu.Unlock()

	for _, ch := range changes {
		c.emit(Event{Kind: EventInvalidated, Key: ch.st.key})
		if ch.gen > 0 {
			c.emit(Event{Kind: EventFetchStarted, Key: ch.st.key, Generation: ch.gen})
		}
		for _, cb := range ch.cbs {
			cb(ch.st)
		}
	}
}

// Mutate runs fn and, when it succeeds, invalidates every key in
// invalidates. A failed mutation invalidates nothing and is not retried; its
// error is returned as *MutationError.
func Mutate[R any](ctx context.Context, c *Client, fn func(context.Context) (R, error), invalidates ...Key) (R, error) {
	r, err := fn(ctx)
	if err != nil {
		c.opts.Metrics.mutation(false)
		c.logger.Debug("mutation failed", "error", err)
		return r, &MutationError{Err: err}
	}
	c.opts.Metrics.mutation(true)
	for _, k := range invalidates {
		c.Invalidate(k)
	}
	return r, nil
}

// Collect drops entries that have had no subscribers for longer than the
// retention period and have nothing in flight. It returns how many were
// removed.
func (c *Client) Collect() int {
	if c.opts.Retention <= 0 {
		return 0
	}
	now := c.opts.Now()

	var removed []Key
	c.mu.Lock()
	for k, e := range c.entries {
		if len(e.subs) > 0 || e.loading {
			continue
		}
		if now.Sub(e.lastUsed) < c.opts.Retention {
			continue
		}
		delete(c.entries, k)
		removed = append(removed, k)
	}
	n := len(c.entries)
	c.mu.Unlock()

	c.opts.Metrics.entries(n)
	for _, k := range removed {
		c.emit(Event{Kind: EventCollected, Key: k})
	}
	return len(removed)
}

func (c *Client) entryLocked(key Key) *entry {
	e, ok := c.entries[key]
	if !ok {
		e = &entry{
			state: state{key: key},
			subs:  make(map[uint64]func(state)),
		}
		c.entries[key] = e
		c.opts.Metrics.entries(len(c.entries))
	}
	return e
}

// startLocked begins a new fetch generation for e and returns it. Any fetch
// already in flight is superseded; loading stays true until the newest
// generation settles.
func (c *Client) startLocked(e *entry) uint64 {
	e.gen++
	gen := e.gen
	e.loading = true
	if e.done == nil {
		e.done = make(chan struct{})
	}
	fetch := e.fetch
	key := e.key

	c.wg.Add(1)
	go c.run(key, gen, fetch)
	c.opts.Metrics.fetchStarted()
	return gen
}

func (c *Client) run(key Key, gen uint64, fetch fetchFunc) {
	defer c.wg.Done()

	ctx := c.ctx
	if c.opts.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.FetchTimeout)
		defer cancel()
	}

	c.logger.Debug("fetch started", "key", key, "generation", gen)
	items, err := fetch(ctx)
	c.complete(key, gen, items, err)
}

func (c *Client) complete(key Key, gen uint64, items any, err error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		return
	}
	if gen != e.gen {
		c.mu.Unlock()
		c.logger.Debug("fetch response discarded", "key", key, "generation", gen)
		c.opts.Metrics.staleDiscarded()
		c.emit(Event{Kind: EventStaleDiscarded, Key: key, Generation: gen, Err: ErrStaleWriteDiscarded})
		return
	}

	e.loading = false
	if err != nil {
		e.err = &FetchError{Key: key, Err: err}
	} else {
		e.items = items
		e.fetchedAt = c.opts.Now()
		e.version++
		e.stale = false
		e.err = nil
	}
	if e.done != nil {
		close(e.done)
		e.done = nil
	}
	st := e.state
	cbs := e.callbacks()
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn("fetch failed", "key", key, "error", err)
		c.opts.Metrics.fetchFailed()
		c.emit(Event{Kind: EventFetchFailed, Key: key, Generation: gen, Err: st.err})
	} else {
		c.persist(key, st)
		c.emit(Event{Kind: EventFetchSucceeded, Key: key, Generation: gen})
	}
	for _, cb := range cbs {
		cb(st)
	}
}

// hydrate seeds an entry that has never held data from the Persister. The
// seeded snapshot is stale, so the first Subscribe still fetches.
func (c *Client) hydrate(key Key, decode func([]byte) (any, error)) {
	if c.opts.Persister == nil {
		return
	}
	c.mu.Lock()
	e, ok := c.entries[key]
	needed := !ok || (e.version == 0 && !e.loading)
	c.mu.Unlock()
	if !needed {
		return
	}

	p, err := c.opts.Persister.Load(c.ctx, key)
	if err != nil {
		c.logger.Warn("load persisted snapshot", "key", key, "error", err)
		return
	}
	if p == nil {
		return
	}
	items, err := decode(p.Items)
	if err != nil {
		c.logger.Warn("decode persisted snapshot", "key", key, "error", err)
		return
	}

	c.mu.Lock()
	e = c.entryLocked(key)
	if e.version > 0 || e.loading {
		c.mu.Unlock()
		return
	}
	e.items = items
	e.fetchedAt = p.FetchedAt
	e.version++
	e.stale = true
	c.mu.Unlock()

	c.emit(Event{Kind: EventHydrated, Key: key})
}

func (c *Client) persist(key Key, st state) {
	if c.opts.Persister == nil {
		return
	}
	raw, err := json.Marshal(st.items)
	if err != nil {
		c.logger.Warn("encode snapshot", "key", key, "error", err)
		return
	}
	if err := c.opts.Persister.Save(c.ctx, key, &Persisted{Items: raw, FetchedAt: st.fetchedAt}); err != nil {
		c.logger.Warn("persist snapshot", "key", key, "error", err)
	}
}

func (c *Client) emit(ev Event) {
	if c.opts.Observer != nil {
		c.opts.Observer(ev)
	}
}

func (e *entry) callbacks() []func(state) {
	if len(e.subs) == 0 {
		return nil
	}
	cbs := make([]func(state), 0, len(e.subs))
	for _, cb := range e.subs {
		cbs = append(cbs, cb)
	}
	return cbs
}

func erase[T any](f Fetcher[T]) fetchFunc {
	return func(ctx context.Context) (any, error) {
		items, err := f(ctx)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []T{}
		}
		return items, nil
	}
}

func decodeItems[T any](raw []byte) (any, error) {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func snapshotOf[T any](st state) Snapshot[T] {
	items, _ := st.items.([]T)
	return Snapshot[T]{
		Key:       st.key,
		Items:     items,
		FetchedAt: st.fetchedAt,
		Version:   st.version,
		IsStale:   st.stale,
		IsLoading: st.loading,
		Err:       st.err,
	}
}
