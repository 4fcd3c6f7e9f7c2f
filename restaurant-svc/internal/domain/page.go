package domain

import "strings"

// PageSize is fixed across every paginated list.
const PageSize = 8

type ListQuery struct {
	Page   int
	Search string
}

func (q ListQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * PageSize
}

// Pattern returns an ILIKE pattern for a case-insensitive substring match.
func (q ListQuery) Pattern() string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(q.Search)) + "%"
}

type Page[T any] struct {
	Items      []T
	TotalPages int
}

func TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}
