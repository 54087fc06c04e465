package paging

import "github.com/vango-dev/paged/pkg/reactive"

// DefaultWindowSize is the number of pages a new Sliding generator shows.
const DefaultWindowSize = 5

// Kind identifies a generator strategy.
type Kind uint8

const (
	KindFullRange Kind = iota + 1
	KindSliding
	KindCustom
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindFullRange:
		return "full-range"
	case KindSliding:
		return "sliding"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// State is the read-only view of a paged collection that a generator sees.
// Every method is a tracked read: when a generator runs inside the pages
// memo, whatever it reads becomes a dependency of that memo.
type State interface {
	PageNumber() int
	PageSize() int
	PageCount() int
	ItemCount() int
}

// Generator produces the ordered page numbers a pager control should show.
// Implementations must not mutate the state they are given.
//
// Generators are compared by identity, so implementations should be pointer
// types or comparable values.
type Generator interface {
	Kind() Kind
	Generate(state State) []int
}

// FullRange returns every page number from 1 to the page count.
// For large page counts prefer a Sliding generator.
var FullRange Generator = fullRange{}

type fullRange struct{}

func (fullRange) Kind() Kind { return KindFullRange }

func (fullRange) Generate(state State) []int {
	return Range(1, state.PageCount())
}

// Sliding shows a window of pages around the current page.
//
// The window is centered on the current page when there is room on both
// sides, pinned to the first pages near the start and to the last pages near
// the end. With an even window size the window holds one more page before
// the current page than after it. The window size is itself reactive:
// changing it invalidates the page list of every collection using this
// generator.
type Sliding struct {
	windowSize *reactive.IntSignal
}

// NewSliding creates a sliding generator with the given window size.
func NewSliding(windowSize int) (*Sliding, error) {
	if err := checkPositive("windowSize", windowSize); err != nil {
		return nil, err
	}
	return &Sliding{windowSize: reactive.NewIntSignal(windowSize)}, nil
}

// newDefaultSliding creates a sliding generator with DefaultWindowSize.
func newDefaultSliding() *Sliding {
	return &Sliding{windowSize: reactive.NewIntSignal(DefaultWindowSize)}
}

// Kind returns KindSliding.
func (s *Sliding) Kind() Kind { return KindSliding }

// WindowSize returns the number of pages in the window. It is a tracked read.
func (s *Sliding) WindowSize() int {
	return s.windowSize.Get()
}

// SetWindowSize changes the number of pages in the window.
func (s *Sliding) SetWindowSize(n int) error {
	if err := checkPositive("windowSize", n); err != nil {
		return err
	}
	s.windowSize.Set(n)
	return nil
}

// Generate returns the page numbers inside the window.
func (s *Sliding) Generate(state State) []int {
	window := s.WindowSize()
	pageCount := state.PageCount()

	leftAnchored := state.PageNumber() - window/2
	rightAnchored := pageCount - window + 1
	start := max(1, min(leftAnchored, rightAnchored))
	stop := min(pageCount, start+window-1)

	return Range(start, stop)
}

// Custom wraps fn as a generator. Each call returns a distinct generator.
func Custom(fn func(State) []int) Generator {
	return &custom{fn: fn}
}

type custom struct {
	fn func(State) []int
}

func (c *custom) Kind() Kind { return KindCustom }

func (c *custom) Generate(state State) []int {
	return c.fn(state)
}
