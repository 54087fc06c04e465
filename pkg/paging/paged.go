package paging

import (
	"log/slog"

	"github.com/vango-dev/paged/pkg/reactive"
)

// Collection is an observable, mutable, ordered sequence. Get must be a
// tracked read so that derived page values follow changes to the items.
// *reactive.SliceSignal[T] satisfies it.
type Collection[T any] interface {
	Get() []T
	Peek() []T
	Append(items ...T)
}

// Paged adds pagination to a Collection. It observes the collection, holds
// the current page number, page size and generator, and derives everything
// else lazily: each derived value is cached until one of its inputs changes.
type Paged[T any] struct {
	items Collection[T]

	pageNumber *reactive.IntSignal
	pageSize   *reactive.IntSignal
	generator  *reactive.Signal[Generator]

	itemCount       *reactive.Memo[int]
	pageCount       *reactive.Memo[int]
	firstItemOnPage *reactive.Memo[int]
	lastItemOnPage  *reactive.Memo[int]
	isFirstPage     *reactive.Memo[bool]
	isLastPage      *reactive.Memo[bool]
	hasPreviousPage *reactive.Memo[bool]
	hasNextPage     *reactive.Memo[bool]
	pageItems       *reactive.Memo[[]T]
	pages           *reactive.Memo[[]int]

	registry *Registry
	logger   *slog.Logger
	metrics  *Metrics
}

// Extend adds pagination to target. Options are validated before anything
// is created, so on error target is left exactly as it was.
func Extend[T any](target Collection[T], opts ...Option) (*Paged[T], error) {
	if target == nil {
		return nil, ErrInvalidTarget
	}
	s, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	return newPaged(target, s), nil
}

// ExtendValue is Extend for values whose type is only known at run time.
// It fails with ErrInvalidTarget unless target is a Collection[T]; reactive
// scalars such as *reactive.Signal[int] are rejected.
func ExtendValue[T any](target any, opts ...Option) (*Paged[T], error) {
	c, ok := target.(Collection[T])
	if !ok || c == nil {
		return nil, ErrInvalidTarget
	}
	return Extend(c, opts...)
}

// NewPagedSlice creates a fresh observable collection seeded with initial
// and extends it.
func NewPagedSlice[T any](initial []T, opts ...Option) (*Paged[T], error) {
	s, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	return newPaged[T](reactive.NewSliceSignal(initial), s), nil
}

func newPaged[T any](target Collection[T], s settings) *Paged[T] {
	p := &Paged[T]{
		items:      target,
		pageNumber: reactive.NewIntSignal(s.pageNumber),
		pageSize:   reactive.NewIntSignal(s.pageSize),
		generator: reactive.NewSignal(s.generator).WithEquals(func(a, b Generator) bool {
			return a == b
		}),
		registry: s.registry,
		logger:   s.logger,
		metrics:  s.metrics,
	}

	p.itemCount = derive(p.metrics, "item_count", func() int {
		return len(p.items.Get())
	})

	p.pageCount = derive(p.metrics, "page_count", func() int {
		n := p.itemCount.Get()
		if n <= 0 {
			return 1
		}
		size := p.pageSize.Get()
		return (n + size - 1) / size
	})

	p.firstItemOnPage = derive(p.metrics, "first_item_on_page", func() int {
		return (p.pageNumber.Get()-1)*p.pageSize.Get() + 1
	})

	p.lastItemOnPage = derive(p.metrics, "last_item_on_page", func() int {
		n := p.itemCount.Get()
		if n == 0 {
			return 1
		}
		return min(p.pageNumber.Get()*p.pageSize.Get(), n)
	})

	p.isFirstPage = derive(p.metrics, "is_first_page", func() bool {
		return p.pageNumber.Get() == 1
	})

	p.isLastPage = derive(p.metrics, "is_last_page", func() bool {
		return p.pageNumber.Get() == p.pageCount.Get()
	})

	p.hasPreviousPage = derive(p.metrics, "has_previous_page", func() bool {
		return !p.isFirstPage.Get()
	})

	p.hasNextPage = derive(p.metrics, "has_next_page", func() bool {
		return !p.isLastPage.Get()
	})

	p.pageItems = derive(p.metrics, "page_items", func() []T {
		items := p.items.Get()
		start := p.firstItemOnPage.Get() - 1
		end := min(p.lastItemOnPage.Get(), len(items))
		if start >= end {
			return []T{}
		}
		page := make([]T, end-start)
		copy(page, items[start:end])
		return page
	})

	p.pages = derive(p.metrics, "pages", func() []int {
		return p.generator.Get().Generate(p)
	})

	return p
}

// derive creates a memo that reports each recomputation to m.
func derive[V any](m *Metrics, name string, compute func() V) *reactive.Memo[V] {
	return reactive.NewMemo(func() V {
		m.recomputed(name)
		return compute()
	})
}

// Items returns the wrapped collection. It is the same value passed to
// Extend, not a copy.
func (p *Paged[T]) Items() Collection[T] {
	return p.items
}

// Registry returns the registry used for generator names.
func (p *Paged[T]) Registry() *Registry {
	return p.registry
}

// PageNumber returns the current page number.
func (p *Paged[T]) PageNumber() int {
	return p.pageNumber.Get()
}

// SetPageNumber moves to page n. Any n >= 1 is accepted, including pages
// past the last one, which have no items.
func (p *Paged[T]) SetPageNumber(n int) error {
	if err := checkPositive("pageNumber", n); err != nil {
		return err
	}
	p.pageNumber.Set(n)
	return nil
}

// PageSize returns the number of items per page.
func (p *Paged[T]) PageSize() int {
	return p.pageSize.Get()
}

// SetPageSize changes the number of items per page. The page number is
// left as it is.
func (p *Paged[T]) SetPageSize(n int) error {
	if err := checkPositive("pageSize", n); err != nil {
		return err
	}
	p.pageSize.Set(n)
	return nil
}

// Generator returns the current page generator.
func (p *Paged[T]) Generator() Generator {
	return p.generator.Get()
}

// SetGenerator replaces the page generator. A nil generator is ignored.
func (p *Paged[T]) SetGenerator(g Generator) {
	if g == nil {
		return
	}
	if p.generator.Peek() == g {
		return
	}
	p.generator.Set(g)
	p.metrics.generatorChanged()
	p.logger.Debug("paging generator changed", "kind", g.Kind().String())
}

// UseGenerator replaces the page generator with the one registered under
// name. An unknown name returns an error wrapping ErrUnknownGenerator and
// leaves the generator unchanged.
func (p *Paged[T]) UseGenerator(name string) error {
	g, err := p.registry.resolve(name)
	if err != nil {
		return err
	}
	p.SetGenerator(g)
	return nil
}

// ItemCount returns the number of items in the collection.
func (p *Paged[T]) ItemCount() int {
	return p.itemCount.Get()
}

// PageCount returns the number of pages. It is 1 for an empty collection.
func (p *Paged[T]) PageCount() int {
	return p.pageCount.Get()
}

// FirstItemOnPage returns the 1-based index of the first item on the page.
func (p *Paged[T]) FirstItemOnPage() int {
	return p.firstItemOnPage.Get()
}

// LastItemOnPage returns the 1-based index of the last item on the page.
// It is 1 for an empty collection.
func (p *Paged[T]) LastItemOnPage() int {
	return p.lastItemOnPage.Get()
}

// PageItems returns the items on the current page. The slice is a copy and
// is empty when the page number is past the last page.
func (p *Paged[T]) PageItems() []T {
	return p.pageItems.Get()
}

// IsFirstPage reports whether the current page is page 1.
func (p *Paged[T]) IsFirstPage() bool {
	return p.isFirstPage.Get()
}

// IsLastPage reports whether the current page equals the page count.
func (p *Paged[T]) IsLastPage() bool {
	return p.isLastPage.Get()
}

// HasPreviousPage reports whether the current page is not the first.
func (p *Paged[T]) HasPreviousPage() bool {
	return p.hasPreviousPage.Get()
}

// HasNextPage reports whether the current page is not the last.
func (p *Paged[T]) HasNextPage() bool {
	return p.hasNextPage.Get()
}

// Pages returns the page numbers produced by the current generator.
func (p *Paged[T]) Pages() []int {
	return p.pages.Get()
}
