package paging

// Navigation only ever writes the page number, and only when its guard holds.
// Guards are read with Peek so that calling a navigation method from inside
// a computation does not subscribe it to the boundary flags.

// ToNextPage moves forward one page unless the current page is the last.
// It reports whether the page changed.
func (p *Paged[T]) ToNextPage() bool {
	moved := false
	if p.hasNextPage.Peek() {
		p.pageNumber.Inc()
		moved = true
	}
	return p.navigated("next", moved)
}

// ToPreviousPage moves back one page unless the current page is the first.
func (p *Paged[T]) ToPreviousPage() bool {
	moved := false
	if p.hasPreviousPage.Peek() {
		p.pageNumber.Dec()
		moved = true
	}
	return p.navigated("previous", moved)
}

// ToFirstPage moves to page 1 unless already there.
func (p *Paged[T]) ToFirstPage() bool {
	moved := false
	if !p.isFirstPage.Peek() {
		p.pageNumber.Set(1)
		moved = true
	}
	return p.navigated("first", moved)
}

// ToLastPage moves to the last page unless already there. From a page past
// the end this moves back to the last page.
func (p *Paged[T]) ToLastPage() bool {
	moved := false
	if !p.isLastPage.Peek() {
		p.pageNumber.Set(p.pageCount.Peek())
		moved = true
	}
	return p.navigated("last", moved)
}

// ToPage moves to page n when 1 <= n <= PageCount and n is not the current
// page. Unlike SetPageNumber it never leaves the valid range.
func (p *Paged[T]) ToPage(n int) bool {
	moved := false
	if n >= 1 && n <= p.pageCount.Peek() && n != p.pageNumber.Peek() {
		p.pageNumber.Set(n)
		moved = true
	}
	return p.navigated("page", moved)
}

func (p *Paged[T]) navigated(op string, moved bool) bool {
	p.metrics.navigated(op, moved)
	if moved {
		p.logger.Debug("paging navigated", "op", op, "page", p.pageNumber.Peek())
	}
	return moved
}
