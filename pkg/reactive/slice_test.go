package reactive

import (
	"reflect"
	"testing"
)

func TestSliceSignalMutations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *SliceSignal[int])
		want   []int
	}{
		{"append", func(s *SliceSignal[int]) { s.Append(4, 5) }, []int{1, 2, 3, 4, 5}},
		{"prepend", func(s *SliceSignal[int]) { s.Prepend(0) }, []int{0, 1, 2, 3}},
		{"insert middle", func(s *SliceSignal[int]) { s.InsertAt(1, 9) }, []int{1, 9, 2, 3}},
		{"insert past end", func(s *SliceSignal[int]) { s.InsertAt(10, 9) }, []int{1, 2, 3, 9}},
		{"remove", func(s *SliceSignal[int]) { s.RemoveAt(1) }, []int{1, 3}},
		{"remove out of range", func(s *SliceSignal[int]) { s.RemoveAt(7) }, []int{1, 2, 3}},
		{"set", func(s *SliceSignal[int]) { s.SetAt(2, 30) }, []int{1, 2, 30}},
		{"remove where", func(s *SliceSignal[int]) { s.RemoveWhere(func(n int) bool { return n%2 == 1 }) }, []int{2}},
		{"clear", func(s *SliceSignal[int]) { s.Clear() }, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSliceSignal([]int{1, 2, 3})
			tt.mutate(s)
			if got := s.Get(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSliceSignalNilInitial(t *testing.T) {
	s := NewSliceSignal[string](nil)
	if s.Get() == nil || s.Len() != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", s.Get())
	}
}

func TestSliceSignalInvalidatesMemo(t *testing.T) {
	s := NewSliceSignal([]int{1, 2})
	count := NewMemo(func() int { return s.Len() })

	if count.Get() != 2 {
		t.Fatalf("expected 2, got %d", count.Get())
	}

	s.Append(3)
	if count.Get() != 3 {
		t.Errorf("expected 3 after append, got %d", count.Get())
	}

	// A mutation that changes nothing does not invalidate.
	s.RemoveAt(99)
	if count.Dirty() {
		t.Error("no-op mutation should not invalidate")
	}
}

func TestSliceSignalAppendDoesNotAlias(t *testing.T) {
	backing := make([]int, 2, 10)
	backing[0], backing[1] = 1, 2
	s := NewSliceSignal(backing)

	before := s.Get()
	s.Append(3)

	if len(before) != 2 {
		t.Errorf("previous snapshot changed length: %v", before)
	}
	if backing[:3][2] == 3 {
		t.Error("append wrote into the caller's backing array")
	}
}
