package main

import (
	"strconv"
	"strings"

	"github.com/vango-dev/paged/pkg/paging"
)

// renderSummary describes the current page in one line.
func renderSummary(s paging.Snapshot[int]) string {
	var b strings.Builder
	switch {
	case s.ItemCount == 0:
		b.WriteString("No items")
	case len(s.PageItems) == 0:
		b.WriteString("No items on this page")
	default:
		b.WriteString("Items ")
		b.WriteString(strconv.Itoa(s.FirstItemOnPage))
		b.WriteString("-")
		b.WriteString(strconv.Itoa(s.LastItemOnPage))
		b.WriteString(" of ")
		b.WriteString(strconv.Itoa(s.ItemCount))
	}
	b.WriteString(" (page ")
	b.WriteString(strconv.Itoa(s.PageNumber))
	b.WriteString(" of ")
	b.WriteString(strconv.Itoa(s.PageCount))
	b.WriteString(")")
	return b.String()
}

// renderPager draws a pager control: first/previous arrows when there is a
// previous page, the generated page numbers with the current one bracketed,
// and next/last arrows when there is a next page.
func renderPager(s paging.Snapshot[int]) string {
	parts := make([]string, 0, len(s.Pages)+4)
	if s.HasPreviousPage {
		parts = append(parts, "«", "‹")
	}
	for _, n := range s.Pages {
		if n == s.PageNumber {
			parts = append(parts, "["+strconv.Itoa(n)+"]")
			continue
		}
		parts = append(parts, strconv.Itoa(n))
	}
	if s.HasNextPage {
		parts = append(parts, "›", "»")
	}
	return strings.Join(parts, " ")
}
