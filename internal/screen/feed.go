package screen

import (
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/hrcore/competency/internal/collection"
)

// ChangedMsg reports that the snapshot behind a Feed changed. Source is the
// Feed that produced it.
type ChangedMsg struct {
	Source any
}

// Feed turns collection notifications into Bubble Tea messages. Bursts of
// notifications collapse into one ChangedMsg; the screen reads the latest
// snapshot when it handles the message.
type Feed[T any] struct {
	cache  *collection.Client
	key    collection.Key
	sub    *collection.Subscription
	signal chan struct{}
	done   chan struct{}
	once   sync.Once
}

// Watch subscribes to key and returns the feed with the current snapshot.
func Watch[T any](c *collection.Client, key collection.Key, fetch collection.Fetcher[T]) (*Feed[T], collection.Snapshot[T]) {
	f := &Feed[T]{
		cache:  c,
		key:    key,
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	snap, sub := collection.Subscribe(c, key, fetch, func(collection.Snapshot[T]) {
		select {
		case f.signal <- struct{}{}:
		default:
		}
	})
	f.sub = sub
	return f, snap
}

// Key returns the watched key.
func (f *Feed[T]) Key() collection.Key { return f.key }

// Wait returns a command that blocks until the next change. It yields nil
// once the feed is closed.
func (f *Feed[T]) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-f.signal:
			return ChangedMsg{Source: f}
		case <-f.done:
			return nil
		}
	}
}

// Snapshot returns the latest snapshot.
func (f *Feed[T]) Snapshot() collection.Snapshot[T] {
	snap, _ := collection.Peek[T](f.cache, f.key)
	return snap
}

// Refresh marks the key stale, refetching it.
func (f *Feed[T]) Refresh() {
	f.cache.Invalidate(f.key)
}

// Close ends the subscription and releases any pending Wait.
func (f *Feed[T]) Close() {
	f.once.Do(func() {
		f.sub.Close()
		close(f.done)
	})
}
