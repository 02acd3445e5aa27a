package utils

// Pagination describes one page of a larger result set. Page numbers are
// 1-based; out-of-range pages yield an empty page, never an error.
type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// NewPagination clamps page to >= 1 and computes the navigation flags for a
// result set of total rows.
func NewPagination(total int64, perPage, page int) Pagination {
	if page < 1 {
		page = 1
	}
	return Pagination{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		HasNext: int64(page)*int64(perPage) < total,
		HasPrev: page > 1,
	}
}

// Offset is the row offset for SQL-level pagination.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Paginate slices an in-memory collection into the requested page.
func Paginate[T any](items []T, perPage, page int) ([]T, Pagination) {
	p := NewPagination(int64(len(items)), perPage, page)
	start := p.Offset()
	if start >= len(items) {
		return []T{}, p
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], p
}
