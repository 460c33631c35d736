package pagination

// DefaultPageSize is applied when a caller supplies a non-positive size.
const DefaultPageSize = 10

// Pagination describes the slice of a result set returned to a client.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	Total       int  `json:"total"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

// Paginate slices items into the 1-based page of the given size and returns
// the slice together with its metadata. Non-positive page numbers clamp to
// the first page; non-positive sizes clamp to DefaultPageSize. A page past
// the end yields an empty slice with metadata still describing the full set.
func Paginate[T any](items []T, page, size int) ([]T, Pagination) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}

	total := len(items)
	totalPages := (total + size - 1) / size

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return items[start:end], Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
		HasNext:     end < total,
		HasPrev:     start > 0,
	}
}
