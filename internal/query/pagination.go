package query

import "strings"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Options are the raw pagination inputs taken from the request.
type Options struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Pagination is the calculated query shape: clamped page/limit, the row
// offset, and a safe ORDER BY built only from allow-listed columns.
type Pagination struct {
	Page    int
	Limit   int
	Skip    int
	OrderBy string
}

// Meta is the pagination block every listing response carries.
type Meta struct {
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	Total     int `json:"total"`
	TotalPage int `json:"totalPage"`
}

// Calculate clamps page and limit to at least 1 (skip can never go
// negative) and resolves the sort column through the allow-list, falling
// back to defaultSort (e.g. "created_at DESC") for unknown columns.
func Calculate(opts Options, sortable map[string]string, defaultSort string) Pagination {
	page := opts.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := opts.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	orderBy := defaultSort
	if column, ok := sortable[opts.SortBy]; ok {
		direction := "ASC"
		if strings.EqualFold(opts.SortOrder, "desc") {
			direction = "DESC"
		}
		orderBy = column + " " + direction
	}

	return Pagination{
		Page:    page,
		Limit:   limit,
		Skip:    (page - 1) * limit,
		OrderBy: orderBy,
	}
}

// NewMeta derives the response meta from a result count. Limit is already
// clamped to >=1 by Calculate, so the ceiling division is safe.
func (p Pagination) NewMeta(total int) Meta {
	return Meta{
		Page:      p.Page,
		Limit:     p.Limit,
		Total:     total,
		TotalPage: (total + p.Limit - 1) / p.Limit,
	}
}
