package search

// DefaultPageSize is the number of games shown per page
const DefaultPageSize = 11

// DefaultMaxPages bounds how far a caller may page
const DefaultMaxPages = 10

// Page is one slice of a locally paginated list
type Page[T any] struct {
	Items       []T
	TotalPages  int
	CurrentPage int
}

// Paginate slices items for the requested page. The page is clamped into
// [1, max(TotalPages, 1)] and itemsPerPage <= 0 uses DefaultPageSize.
func Paginate[T any](items []T, requestedPage, itemsPerPage int) Page[T] {
	if itemsPerPage <= 0 {
		itemsPerPage = DefaultPageSize
	}

	n := len(items)
	totalPages := (n + itemsPerPage - 1) / itemsPerPage
	current := clamp(requestedPage, 1, max(totalPages, 1))

	start := min((current-1)*itemsPerPage, n)
	end := min(start+itemsPerPage, n)

	page := make([]T, end-start)
	copy(page, items[start:end])

	return Page[T]{
		Items:       page,
		TotalPages:  totalPages,
		CurrentPage: current,
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// PageMarker is one entry of a pager: a page number or an ellipsis
type PageMarker struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Current  bool `json:"current,omitempty"`
}

const windowThreshold = 7

// PageWindow lays out the page links for a pager. Up to seven pages are listed
// in full; beyond that the first and last pages stay visible around the current one.
func PageWindow(current, total int) []PageMarker {
	if total <= 1 {
		return []PageMarker{}
	}
	current = clamp(current, 1, total)

	var pages []int
	switch {
	case total <= windowThreshold:
		pages = seq(1, total)
	case current <= 4:
		pages = append(seq(1, 5), 0, total)
	case current >= total-3:
		pages = append([]int{1, 0}, seq(total-4, total)...)
	default:
		pages = append([]int{1, 0}, seq(current-1, current+1)...)
		pages = append(pages, 0, total)
	}

	markers := make([]PageMarker, 0, len(pages))
	for _, p := range pages {
		if p == 0 {
			markers = append(markers, PageMarker{Ellipsis: true})
			continue
		}
		markers = append(markers, PageMarker{Page: p, Current: p == current})
	}
	return markers
}

func seq(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
