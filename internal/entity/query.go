package entity

import "strings"

type PhotoSort string

const (
	SortNewest  PhotoSort = "newest"
	SortOldest  PhotoSort = "oldest"
	SortPopular PhotoSort = "popular"
	SortRating  PhotoSort = "rating"
)

func ParseSort(s string) PhotoSort {
	switch PhotoSort(s) {
	case SortOldest, SortPopular, SortRating:
		return PhotoSort(s)
	default:
		return SortNewest
	}
}

const (
	DefaultPage  = 1
	DefaultLimit = 12
	FilterAll    = "all"
)

// PhotoQuery is the typed listing query. Repositories compile it into a
// backend query; handlers never build predicates from strings.
type PhotoQuery struct {
	Page      int
	Limit     int
	Filter    string
	Sort      PhotoSort
	Search    string
	CreatorID string

	// SearchLocation widens the search predicate to the location column.
	// Used by the dedicated search endpoint.
	SearchLocation bool

	// IncludeUnmoderated lifts the approved-only predicate. Set only when
	// the caller is listing their own photos.
	IncludeUnmoderated bool
}

// Normalize applies defaults. Malformed values are replaced, never rejected.
func (q *PhotoQuery) Normalize() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Filter == "" {
		q.Filter = FilterAll
	}
	q.Sort = ParseSort(string(q.Sort))
	q.Search = strings.TrimSpace(q.Search)
}

func (q PhotoQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

func (q PhotoQuery) HasMore(total int64) bool {
	return int64(q.Page)*int64(q.Limit) < total
}

func (q PhotoQuery) TotalPages(total int64) int64 {
	if q.Limit == 0 {
		return 0
	}
	return (total + int64(q.Limit) - 1) / int64(q.Limit)
}
