package reactive

import (
	"runtime"
	"sync"
)

// trackingContext holds the reactive state for a goroutine.
type trackingContext struct {
	// listener is what's currently collecting dependencies.
	// nil means reads don't create subscriptions.
	listener Listener

	// batchDepth tracks nested Batch calls. While > 0, writes queue
	// notifications in pending instead of delivering them.
	batchDepth int
	pending    []Listener
}

// contexts stores per-goroutine tracking contexts keyed by goroutine ID.
var contexts sync.Map

// goroutineID parses the current goroutine's ID from its stack header,
// which starts with "goroutine <id> ".
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := len("goroutine "); i < n; i++ {
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// current returns the tracking context for the calling goroutine, creating
// it on first use.
func current() *trackingContext {
	gid := goroutineID()
	if ctx, ok := contexts.Load(gid); ok {
		return ctx.(*trackingContext)
	}
	ctx := &trackingContext{}
	contexts.Store(gid, ctx)
	return ctx
}

// currentListener returns the listener collecting dependencies, if any.
func currentListener() Listener {
	return current().listener
}

// setListener installs l as the tracking listener and returns the previous
// one so it can be restored.
func setListener(l Listener) Listener {
	ctx := current()
	old := ctx.listener
	ctx.listener = l
	return old
}

// WithListener runs fn with l collecting every signal and memo read.
func WithListener(l Listener, fn func()) {
	old := setListener(l)
	defer setListener(old)
	fn()
}

// Untracked runs fn without recording reads as dependencies.
func Untracked(fn func()) {
	WithListener(nil, fn)
}

// track subscribes the current listener, if there is one, to n.
func track(n *node) {
	l := currentListener()
	if l == nil {
		return
	}
	n.subscribe(l)
	if s, ok := l.(source); ok {
		s.addSource(n)
	}
}

// Release drops the calling goroutine's tracking context. Long-lived worker
// goroutines that touched signals can call it before exiting.
func Release() {
	contexts.Delete(goroutineID())
}
