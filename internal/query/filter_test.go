package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/md-ali-0/skillsync-server/internal/query"
)

var skillFilter = query.EntityFilter{
	Filterable: map[string]string{
		"teacherId": "teacher_id",
		"level":     "level",
	},
	Searchable: []string{"name", "description"},
}

func TestBuild_SearchTermAndExactMatch(t *testing.T) {
	params := map[string]string{
		"searchTerm": "guitar",
		"level":      "beginner",
	}

	pred := query.Build(params, skillFilter, nil)
	where, args := query.Where(pred)

	assert.Equal(t,
		" WHERE ((name ILIKE $1 OR description ILIKE $2) AND level = $3)",
		where)
	assert.Equal(t, []any{"%guitar%", "%guitar%", "beginner"}, args)
}

func TestBuild_NoParamsMatchesEverything(t *testing.T) {
	pred := query.Build(map[string]string{}, skillFilter, nil)
	where, args := query.Where(pred)

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuild_OwnershipScope(t *testing.T) {
	t.Run("non-privileged caller always pinned to own records", func(t *testing.T) {
		scope := query.Eq("teacher_id", "teacher-1")
		pred := query.Build(map[string]string{"level": "expert"}, skillFilter, scope)
		where, args := query.Where(pred)

		assert.Equal(t, " WHERE (teacher_id = $1 AND level = $2)", where)
		assert.Equal(t, []any{"teacher-1", "expert"}, args)
	})

	t.Run("privileged caller sees all records", func(t *testing.T) {
		pred := query.Build(map[string]string{}, skillFilter, nil)
		where, _ := query.Where(pred)

		assert.NotContains(t, where, "teacher_id")
	})

	t.Run("scope alone still filters", func(t *testing.T) {
		pred := query.Build(map[string]string{}, skillFilter, query.Eq("teacher_id", "t-9"))
		where, args := query.Where(pred)

		assert.Equal(t, " WHERE teacher_id = $1", where)
		assert.Equal(t, []any{"t-9"}, args)
	})
}

func TestBuild_DropsUnknownAndReservedKeys(t *testing.T) {
	params := map[string]string{
		"page":             "3",
		"limit":            "50",
		"sortBy":           "name",
		"sortOrder":        "asc",
		"unknown":          "value",
		"drop table users": "x",
		"level":            "advanced",
	}

	pred := query.Build(params, skillFilter, nil)
	where, args := query.Where(pred)

	assert.Equal(t, " WHERE level = $1", where)
	assert.Equal(t, []any{"advanced"}, args)
}

func TestBuild_SearchTermNeverExactMatched(t *testing.T) {
	pred := query.Build(map[string]string{"searchTerm": "abc"}, skillFilter, nil)
	where, _ := query.Where(pred)

	assert.NotContains(t, where, "=")
	assert.Contains(t, where, "ILIKE")
}

func TestPredicateCombinators(t *testing.T) {
	t.Run("and drops nil children", func(t *testing.T) {
		pred := query.And(nil, query.Eq("status", "ACTIVE"), nil)
		where, args := query.Where(pred)

		assert.Equal(t, " WHERE status = $1", where)
		assert.Equal(t, []any{"ACTIVE"}, args)
	})

	t.Run("all-nil group collapses to nil", func(t *testing.T) {
		assert.Nil(t, query.And(nil, nil))
		assert.Nil(t, query.Or())
	})

	t.Run("nested groups number placeholders sequentially", func(t *testing.T) {
		pred := query.And(
			query.Or(query.ContainsCI("name", "go"), query.ContainsCI("email", "go")),
			query.Eq("role", "TEACHER"),
			query.Eq("is_deleted", false),
		)
		where, args := query.Where(pred)

		assert.Equal(t,
			" WHERE ((name ILIKE $1 OR email ILIKE $2) AND role = $3 AND is_deleted = $4)",
			where)
		assert.Equal(t, []any{"%go%", "%go%", "TEACHER", false}, args)
	})
}
