// Package paging adds pagination to an observable collection.
//
// Extend wraps a Collection and derives the page count, the bounds and items
// of the current page, the boundary flags, and a list of page numbers for a
// pager control. Derived values are memoized and recomputed lazily after the
// collection, the page number or the page size changes:
//
//	items := reactive.NewSliceSignal([]int{2, 3, 5, 7, 11})
//	p, err := paging.Extend[int](items, paging.WithPageSize(2), paging.WithPageNumber(2))
//	if err != nil {
//	    return err
//	}
//	p.PageItems()  // [5 7]
//	p.ToNextPage()
//	p.PageItems()  // [11]
//
// # Generators
//
// The page numbers returned by Pages come from a Generator. FullRange lists
// every page. Sliding lists a window around the current page. Custom wraps
// any function. Generators are looked up by name in a Registry, which also
// holds the default page number and page size:
//
//	r := paging.NewRegistry()
//	r.Register("zeroBased", paging.Custom(func(s paging.State) []int {
//	    return paging.Range(0, s.PageCount()-1)
//	}))
//	p, err := paging.NewPagedSlice(data, paging.WithRegistry(r), paging.WithGenerator("zeroBased"))
//
// The "sliding" generator in a registry is a single shared instance; its
// window size applies to every collection that selected it by name.
package paging
