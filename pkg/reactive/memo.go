package reactive

import (
	"sync"
	"sync/atomic"
)

// Memo is a cached computation that tracks its own dependencies.
//
// Memos are lazy: compute runs on the first Get and again only after one of
// the signals or memos it read has changed. Several writes between two reads
// cost a single recomputation. A memo is itself a source, so memos chain.
type Memo[T any] struct {
	base node

	compute func() T

	value   T
	valueMu sync.RWMutex

	// valid is false until the first computation and after every
	// invalidation.
	valid atomic.Bool

	// sources are the nodes read during the last computation.
	sources   []*node
	sourcesMu sync.Mutex

	// computing guards against a memo reading itself.
	computing atomic.Bool
}

// NewMemo creates a memo. compute does not run until the first read.
func NewMemo[T any](compute func() T) *Memo[T] {
	return &Memo[T]{
		base:    node{id: nextID()},
		compute: compute,
	}
}

// Get returns the memo's value, recomputing if necessary, and subscribes the
// current listener.
func (m *Memo[T]) Get() T {
	track(&m.base)
	return m.Peek()
}

// Peek returns the memo's value without subscribing.
// It still recomputes when the cached value is stale.
func (m *Memo[T]) Peek() T {
	if !m.valid.Load() {
		m.recompute()
	}
	m.valueMu.RLock()
	defer m.valueMu.RUnlock()
	return m.value
}

// MarkDirty invalidates the memo and propagates to its subscribers.
// Marking an already dirty memo is a no-op.
func (m *Memo[T]) MarkDirty() {
	if m.valid.CompareAndSwap(true, false) {
		m.base.notify()
	}
}

// Dirty reports whether the next read will recompute.
func (m *Memo[T]) Dirty() bool {
	return !m.valid.Load()
}

// ID returns the unique identifier for this memo.
func (m *Memo[T]) ID() uint64 {
	return m.base.id
}

// Version returns how many times the memo has been computed.
func (m *Memo[T]) Version() uint64 {
	return m.base.version.Load()
}

// Subscribers returns the number of listeners currently subscribed.
func (m *Memo[T]) Subscribers() int {
	return m.base.subscribers()
}

func (m *Memo[T]) addSource(n *node) {
	m.sourcesMu.Lock()
	defer m.sourcesMu.Unlock()

	for _, s := range m.sources {
		if s == n {
			return
		}
	}
	m.sources = append(m.sources, n)
}

// recompute drops the previous subscriptions, runs compute with the memo as
// the tracking listener, and caches the result.
func (m *Memo[T]) recompute() {
	if m.computing.Swap(true) {
		return
	}
	defer m.computing.Store(false)

	m.sourcesMu.Lock()
	for _, s := range m.sources {
		s.unsubscribe(m)
	}
	m.sources = m.sources[:0]
	m.sourcesMu.Unlock()

	var next T
	WithListener(m, func() {
		next = m.compute()
	})

	m.valueMu.Lock()
	m.value = next
	m.valueMu.Unlock()

	m.base.version.Add(1)
	m.valid.Store(true)
}

var _ source = (*Memo[int])(nil)
