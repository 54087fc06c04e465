package paging

// Snapshot is every paging value read at one point in time, in a form a UI
// layer can bind to or serialize.
type Snapshot[T any] struct {
	PageNumber      int    `json:"pageNumber"`
	PageSize        int    `json:"pageSize"`
	Generator       string `json:"generator"`
	ItemCount       int    `json:"itemCount"`
	PageCount       int    `json:"pageCount"`
	FirstItemOnPage int    `json:"firstItemOnPage"`
	LastItemOnPage  int    `json:"lastItemOnPage"`
	IsFirstPage     bool   `json:"isFirstPage"`
	IsLastPage      bool   `json:"isLastPage"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
	HasNextPage     bool   `json:"hasNextPage"`
	PageItems       []T    `json:"pageItems"`
	Pages           []int  `json:"pages"`
}

// Snapshot reads every value. Reads are tracked like the individual getters.
func (p *Paged[T]) Snapshot() Snapshot[T] {
	return Snapshot[T]{
		PageNumber:      p.PageNumber(),
		PageSize:        p.PageSize(),
		Generator:       p.Generator().Kind().String(),
		ItemCount:       p.ItemCount(),
		PageCount:       p.PageCount(),
		FirstItemOnPage: p.FirstItemOnPage(),
		LastItemOnPage:  p.LastItemOnPage(),
		IsFirstPage:     p.IsFirstPage(),
		IsLastPage:      p.IsLastPage(),
		HasPreviousPage: p.HasPreviousPage(),
		HasNextPage:     p.HasNextPage(),
		PageItems:       p.PageItems(),
		Pages:           p.Pages(),
	}
}
