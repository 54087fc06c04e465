package reactive

import (
	"sync"
	"testing"
)

// testListener counts MarkDirty calls.
type testListener struct {
	id         uint64
	dirtyCount int
	mu         sync.Mutex
}

func newTestListener() *testListener {
	return &testListener{id: nextID()}
}

func (l *testListener) MarkDirty() {
	l.mu.Lock()
	l.dirtyCount++
	l.mu.Unlock()
}

func (l *testListener) ID() uint64 {
	return l.id
}

func (l *testListener) getDirtyCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dirtyCount
}

func TestTrackingContextPerGoroutine(t *testing.T) {
	if current() != current() {
		t.Error("expected the same context within a goroutine")
	}

	mine := current()
	var theirs *trackingContext
	done := make(chan struct{})
	go func() {
		defer close(done)
		theirs = current()
		Release()
	}()
	<-done

	if mine == theirs {
		t.Error("expected separate contexts per goroutine")
	}
}

func TestWithListenerRestores(t *testing.T) {
	outer := newTestListener()
	inner := newTestListener()

	WithListener(outer, func() {
		WithListener(inner, func() {
			if currentListener() != Listener(inner) {
				t.Error("expected inner listener")
			}
		})
		if currentListener() != Listener(outer) {
			t.Error("expected outer listener restored")
		}
	})

	if currentListener() != nil {
		t.Error("expected no listener outside WithListener")
	}
}

func TestUntracked(t *testing.T) {
	count := NewSignal(1)
	listener := newTestListener()

	WithListener(listener, func() {
		Untracked(func() {
			_ = count.Get()
		})
	})

	count.Set(2)
	if listener.getDirtyCount() != 0 {
		t.Errorf("untracked read should not subscribe, got %d notifications", listener.getDirtyCount())
	}
}
