// Package paginate slices an ordered result set into fixed-size pages.
package paginate

// DefaultPageSize is the number of cards per page.
const DefaultPageSize = 6

// Page describes one clamped page of a result set. Start and End are the
// half-open index range of the page within the full set.
type Page struct {
	Number     int
	Size       int
	TotalPages int
	Start      int
	End        int
	Total      int
}

// New computes the page for a requested 1-indexed page number. Out of range
// requests clamp to the first or last page. An empty set still has one
// (empty) page. A non-positive pageSize uses DefaultPageSize.
func New(total, pageSize, requested int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if total < 0 {
		total = 0
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	n := min(max(requested, 1), totalPages)
	start := (n - 1) * pageSize
	end := min(start+pageSize, total)

	return Page{
		Number:     n,
		Size:       pageSize,
		TotalPages: totalPages,
		Start:      start,
		End:        end,
		Total:      total,
	}
}

// HasPrev reports whether a page exists before this one.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a page exists after this one.
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// Len is the number of items on the page.
func (p Page) Len() int { return p.End - p.Start }

// Slice returns the items of p. The bounds are clamped to items so a page
// computed for a stale total never panics.
func Slice[T any](items []T, p Page) []T {
	start := min(max(p.Start, 0), len(items))
	end := min(max(p.End, start), len(items))
	return items[start:end:end]
}
