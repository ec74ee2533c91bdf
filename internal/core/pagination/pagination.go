// Package pagination implements the windowed, filtered, sorted read contract
// shared by every listable collection. One generic pipeline guarantees the
// same window math everywhere instead of each content type re-deriving it.
package pagination

import "sort"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Query is the uniform request shape for a windowed read.
type Query struct {
	Page      int
	PageSize  int
	Year      string
	Month     int // 1-12; 0 means no month filter
	Search    string
	Symbol    string
	OrderBy   string
	Ascending bool
}

// Result is the uniform response shape. Data holds at most PageSize items;
// Total counts all matches ignoring the window.
type Result[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// Normalize clamps the window parameters: page below 1 becomes 1, a
// non-positive page size becomes DefaultPageSize, and page size is capped
// at MaxPageSize.
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// TotalPages returns ceil(total / pageSize).
func TotalPages(total, pageSize int) int {
	if total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Apply runs the full pipeline over items: keep those matching match, stable
// sort with less, count, then slice the window [(page-1)*size, page*size).
// A nil match keeps everything; a nil less keeps the input order. A page past
// the last one yields empty Data with Total unchanged.
func Apply[T any](items []T, q Query, match func(T) bool, less func(a, b T) bool) Result[T] {
	q = q.Normalize()

	filtered := make([]T, 0, len(items))
	for _, it := range items {
		if match == nil || match(it) {
			filtered = append(filtered, it)
		}
	}

	if less != nil {
		sort.SliceStable(filtered, func(i, j int) bool {
			return less(filtered[i], filtered[j])
		})
	}

	total := len(filtered)
	start := (q.Page - 1) * q.PageSize
	if start > total {
		start = total
	}
	end := start + q.PageSize
	if end > total {
		end = total
	}

	return Result[T]{
		Data:       filtered[start:end],
		Total:      total,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: TotalPages(total, q.PageSize),
	}
}
