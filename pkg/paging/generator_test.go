package paging

import (
	"errors"
	"reflect"
	"testing"
)

// fixedState is a State with constant values.
type fixedState struct {
	pageNumber, pageSize, pageCount, itemCount int
}

func (s fixedState) PageNumber() int { return s.pageNumber }
func (s fixedState) PageSize() int { return s.pageSize }
func (s fixedState) PageCount() int { return s.pageCount }
func (s fixedState) ItemCount() int { return s.itemCount }

func TestFullRange(t *testing.T) {
	if got := FullRange.Generate(fixedState{pageNumber: 1, pageCount: 1}); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("expected [1] for one page, got %v", got)
	}
	if got := FullRange.Generate(fixedState{pageNumber: 4, pageCount: 10}); !reflect.DeepEqual(got, Range(1, 10)) {
		t.Errorf("expected 1..10, got %v", got)
	}
	if FullRange.Kind() != KindFullRange {
		t.Errorf("expected KindFullRange, got %v", FullRange.Kind())
	}
}

func TestSlidingGenerate(t *testing.T) {
	tests := []struct {
		name       string
		window     int
		pageNumber int
		pageCount  int
		want       []int
	}{
		{"centered", 5, 5, 10, []int{3, 4, 5, 6, 7}},
		{"clamped to start", 5, 1, 10, []int{1, 2, 3, 4, 5}},
		{"near start", 5, 2, 10, []int{1, 2, 3, 4, 5}},
		{"clamped to end", 5, 10, 10, []int{6, 7, 8, 9, 10}},
		{"near end", 5, 9, 10, []int{6, 7, 8, 9, 10}},
		{"fewer pages than window", 5, 2, 3, []int{1, 2, 3}},
		{"single page", 5, 1, 1, []int{1}},
		{"even window extra page before", 4, 5, 10, []int{3, 4, 5, 6}},
		{"window of one", 1, 7, 10, []int{7}},
		{"page past the end", 5, 20, 10, []int{6, 7, 8, 9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSliding(tt.window)
			if err != nil {
				t.Fatalf("NewSliding: %v", err)
			}
			got := s.Generate(fixedState{pageNumber: tt.pageNumber, pageCount: tt.pageCount})
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSlidingProperties(t *testing.T) {
	for window := 1; window <= 8; window++ {
		s, err := NewSliding(window)
		if err != nil {
			t.Fatalf("NewSliding(%d): %v", window, err)
		}
		for pageCount := 1; pageCount <= 20; pageCount++ {
			for page := 1; page <= pageCount; page++ {
				got := s.Generate(fixedState{pageNumber: page, pageCount: pageCount})

				if len(got) != min(window, pageCount) {
					t.Fatalf("window=%d count=%d page=%d: length %d, want %d", window, pageCount, page, len(got), min(window, pageCount))
				}
				if got[0] < 1 || got[len(got)-1] > pageCount {
					t.Fatalf("window=%d count=%d page=%d: %v out of bounds", window, pageCount, page, got)
				}
				if pageCount >= window && (page < got[0] || page > got[len(got)-1]) {
					t.Fatalf("window=%d count=%d page=%d: %v does not contain the page", window, pageCount, page, got)
				}
			}
		}
	}
}

func TestSlidingWindowSize(t *testing.T) {
	s, err := NewSliding(3)
	if err != nil {
		t.Fatalf("NewSliding: %v", err)
	}
	if s.WindowSize() != 3 {
		t.Errorf("expected window 3, got %d", s.WindowSize())
	}

	if err := s.SetWindowSize(0); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption, got %v", err)
	}
	if s.WindowSize() != 3 {
		t.Errorf("rejected write changed the window to %d", s.WindowSize())
	}

	if _, err := NewSliding(-1); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption, got %v", err)
	}
}

func TestCustomGenerator(t *testing.T) {
	zeroBased := Custom(func(s State) []int {
		return Range(0, s.PageCount()-1)
	})

	if zeroBased.Kind() != KindCustom {
		t.Errorf("expected KindCustom, got %v", zeroBased.Kind())
	}
	if got := zeroBased.Generate(fixedState{pageCount: 3}); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("expected [0 1 2], got %v", got)
	}

	other := Custom(func(State) []int { return nil })
	if zeroBased == other {
		t.Error("expected distinct custom generators to compare unequal")
	}
}

func TestKindString(t *testing.T) {
	for kind, want := range map[Kind]string{
		KindFullRange: "full-range",
		KindSliding:   "sliding",
		KindCustom:    "custom",
		Kind(0):       "unknown",
	} {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
