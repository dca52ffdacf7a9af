package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/md-ali-0/skillsync-server/internal/query"
)

var userSortable = map[string]string{
	"name":      "name",
	"email":     "email",
	"createdAt": "created_at",
}

const defaultSort = "created_at DESC"

func TestCalculate(t *testing.T) {
	tests := []struct {
		name string
		opts query.Options
		want query.Pagination
	}{
		{
			name: "defaults when unspecified",
			opts: query.Options{},
			want: query.Pagination{Page: 1, Limit: 10, Skip: 0, OrderBy: defaultSort},
		},
		{
			name: "computes skip from page and limit",
			opts: query.Options{Page: 3, Limit: 20},
			want: query.Pagination{Page: 3, Limit: 20, Skip: 40, OrderBy: defaultSort},
		},
		{
			name: "negative page and limit clamp to one",
			opts: query.Options{Page: -5, Limit: -2},
			want: query.Pagination{Page: 1, Limit: 10, Skip: 0, OrderBy: defaultSort},
		},
		{
			name: "zero page never yields negative skip",
			opts: query.Options{Page: 0, Limit: 0},
			want: query.Pagination{Page: 1, Limit: 10, Skip: 0, OrderBy: defaultSort},
		},
		{
			name: "allow-listed sort column ascending",
			opts: query.Options{SortBy: "name", SortOrder: "asc"},
			want: query.Pagination{Page: 1, Limit: 10, Skip: 0, OrderBy: "name ASC"},
		},
		{
			name: "allow-listed sort column descending",
			opts: query.Options{SortBy: "email", SortOrder: "DESC"},
			want: query.Pagination{Page: 1, Limit: 10, Skip: 0, OrderBy: "email DESC"},
		},
		{
			name: "unknown sort column falls back to default",
			opts: query.Options{SortBy: "password_hash; DROP TABLE users", SortOrder: "asc"},
			want: query.Pagination{Page: 1, Limit: 10, Skip: 0, OrderBy: defaultSort},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.Calculate(tt.opts, userSortable, defaultSort)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		total     int
		totalPage int
	}{
		{"exact multiple", 10, 30, 3},
		{"partial last page", 10, 25, 3},
		{"empty result", 10, 0, 0},
		{"single record", 10, 1, 1},
		{"limit one", 1, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := query.Calculate(query.Options{Limit: tt.limit}, nil, defaultSort)
			meta := p.NewMeta(tt.total)

			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.totalPage, meta.TotalPage)
			assert.Equal(t, tt.limit, meta.Limit)
		})
	}
}
