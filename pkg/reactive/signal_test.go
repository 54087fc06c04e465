package reactive

import "testing"

func TestSignalGetSet(t *testing.T) {
	s := NewSignal(5)
	if s.Get() != 5 {
		t.Errorf("expected 5, got %d", s.Get())
	}

	s.Set(10)
	if s.Get() != 10 {
		t.Errorf("expected 10, got %d", s.Get())
	}
}

func TestSignalNotifiesOnChange(t *testing.T) {
	s := NewSignal(1)
	listener := newTestListener()

	WithListener(listener, func() {
		_ = s.Get()
	})

	s.Set(2)
	if listener.getDirtyCount() != 1 {
		t.Errorf("expected 1 notification, got %d", listener.getDirtyCount())
	}

	// Same value: no notification.
	s.Set(2)
	if listener.getDirtyCount() != 1 {
		t.Errorf("expected still 1 notification, got %d", listener.getDirtyCount())
	}
}

func TestSignalPeekDoesNotSubscribe(t *testing.T) {
	s := NewSignal("a")
	listener := newTestListener()

	WithListener(listener, func() {
		_ = s.Peek()
	})

	s.Set("b")
	if listener.getDirtyCount() != 0 {
		t.Errorf("Peek should not subscribe, got %d notifications", listener.getDirtyCount())
	}
	if s.Subscribers() != 0 {
		t.Errorf("expected 0 subscribers, got %d", s.Subscribers())
	}
}

func TestSignalVersion(t *testing.T) {
	s := NewSignal(0)
	if s.Version() != 0 {
		t.Fatalf("expected version 0, got %d", s.Version())
	}

	s.Set(1)
	s.Set(1)
	s.Update(func(n int) int { return n + 1 })

	if s.Version() != 2 {
		t.Errorf("expected version 2, got %d", s.Version())
	}
}

func TestSignalWithEquals(t *testing.T) {
	type box struct{ n int }
	a, b := &box{1}, &box{1}

	s := NewSignal(a).WithEquals(func(x, y *box) bool { return x == y })
	listener := newTestListener()
	WithListener(listener, func() {
		_ = s.Get()
	})

	// Distinct pointers with equal contents still count as a change.
	s.Set(b)
	if listener.getDirtyCount() != 1 {
		t.Errorf("expected identity comparison to notify, got %d", listener.getDirtyCount())
	}
}

func TestIntSignal(t *testing.T) {
	s := NewIntSignal(3)
	s.Inc()
	s.Inc()
	s.Dec()
	s.Add(10)

	if s.Get() != 14 {
		t.Errorf("expected 14, got %d", s.Get())
	}
}
