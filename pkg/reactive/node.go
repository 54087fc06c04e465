package reactive

import (
	"sync"
	"sync/atomic"
)

// node provides type-erased subscriber management and versioning.
// It is embedded in Signal[T] and Memo[T].
type node struct {
	id      uint64
	version atomic.Uint64

	subs  []Listener
	subMu sync.RWMutex
}

// subscribe adds l to the subscribers, deduplicating by listener ID.
func (n *node) subscribe(l Listener) {
	if l == nil {
		return
	}

	n.subMu.Lock()
	defer n.subMu.Unlock()

	lid := l.ID()
	for _, existing := range n.subs {
		if existing.ID() == lid {
			return
		}
	}
	n.subs = append(n.subs, l)
}

// unsubscribe removes l from the subscribers. Order is not preserved.
func (n *node) unsubscribe(l Listener) {
	if l == nil {
		return
	}

	n.subMu.Lock()
	defer n.subMu.Unlock()

	lid := l.ID()
	for i, existing := range n.subs {
		if existing.ID() == lid {
			n.subs[i] = n.subs[len(n.subs)-1]
			n.subs = n.subs[:len(n.subs)-1]
			return
		}
	}
}

// subscribers returns the current subscriber count.
func (n *node) subscribers() int {
	n.subMu.RLock()
	defer n.subMu.RUnlock()
	return len(n.subs)
}

// notify marks every subscriber dirty. While a batch is open, memos are still
// invalidated immediately so reads inside the batch stay consistent; other
// listeners are queued and notified once when the batch closes.
// The subscriber list is copied first so no lock is held while notifying.
func (n *node) notify() {
	n.subMu.RLock()
	subs := make([]Listener, len(n.subs))
	copy(subs, n.subs)
	n.subMu.RUnlock()

	ctx := current()
	for _, sub := range subs {
		if _, derived := sub.(source); ctx.batchDepth > 0 && !derived {
			ctx.pending = append(ctx.pending, sub)
			continue
		}
		sub.MarkDirty()
	}
}
