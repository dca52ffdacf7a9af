// Package query builds the filtered, paginated SQL every listing endpoint
// shares: a predicate tree assembled from allow-listed request parameters,
// plus offset/limit/order calculation.
package query

import (
	"fmt"
	"sort"
	"strings"
)

// SearchTermKey is the reserved query parameter for case-insensitive
// substring search; it is never treated as an exact-match filter.
const SearchTermKey = "searchTerm"

// reservedKeys are request parameters consumed by pagination and search,
// never interpreted as entity filters.
var reservedKeys = map[string]struct{}{
	SearchTermKey: {},
	"page":        {},
	"limit":       {},
	"sortBy":      {},
	"sortOrder":   {},
}

// Predicate is a node of the filter tree. Implementations render themselves
// into a SQL fragment with positional placeholders.
type Predicate interface {
	appendSQL(sb *strings.Builder, args *[]any)
}

type eq struct {
	column string
	value  any
}

func (p eq) appendSQL(sb *strings.Builder, args *[]any) {
	*args = append(*args, p.value)
	fmt.Fprintf(sb, "%s = $%d", p.column, len(*args))
}

type containsCI struct {
	column string
	term   string
}

func (p containsCI) appendSQL(sb *strings.Builder, args *[]any) {
	*args = append(*args, "%"+p.term+"%")
	fmt.Fprintf(sb, "%s ILIKE $%d", p.column, len(*args))
}

type group struct {
	op       string // "AND" or "OR"
	children []Predicate
}

func (p group) appendSQL(sb *strings.Builder, args *[]any) {
	sb.WriteString("(")
	for i, child := range p.children {
		if i > 0 {
			sb.WriteString(" " + p.op + " ")
		}
		child.appendSQL(sb, args)
	}
	sb.WriteString(")")
}

// Eq matches a column exactly.
func Eq(column string, value any) Predicate {
	return eq{column: column, value: value}
}

// ContainsCI matches a case-insensitive substring.
func ContainsCI(column, term string) Predicate {
	return containsCI{column: column, term: term}
}

// And conjoins predicates, dropping nils. Returns nil when nothing remains,
// which callers treat as an unconditional match.
func And(preds ...Predicate) Predicate {
	return newGroup("AND", preds)
}

// Or disjoins predicates, dropping nils.
func Or(preds ...Predicate) Predicate {
	return newGroup("OR", preds)
}

func newGroup(op string, preds []Predicate) Predicate {
	kept := make([]Predicate, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			kept = append(kept, p)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	default:
		return group{op: op, children: kept}
	}
}

// Where renders a predicate into a " WHERE ..." clause and its arguments.
// A nil predicate renders to the empty string (match everything).
func Where(p Predicate) (string, []any) {
	if p == nil {
		return "", nil
	}
	var sb strings.Builder
	args := make([]any, 0, 4)
	sb.WriteString(" WHERE ")
	p.appendSQL(&sb, &args)
	return sb.String(), args
}

// EntityFilter declares which request parameters an entity accepts.
// Filterable maps a parameter name to its column; anything not declared is
// dropped rather than interpolated, so arbitrary keys can never reach SQL.
type EntityFilter struct {
	Filterable map[string]string
	Searchable []string
}

// Build turns raw query parameters into a predicate: searchTerm becomes an
// OR of substring matches over the searchable columns, every other declared
// parameter becomes an exact match, and scope (the ownership predicate for
// non-privileged callers, nil for privileged ones) is AND-ed on top.
func Build(params map[string]string, f EntityFilter, scope Predicate) Predicate {
	preds := make([]Predicate, 0, len(params)+2)

	if scope != nil {
		preds = append(preds, scope)
	}

	if term := params[SearchTermKey]; term != "" {
		search := make([]Predicate, 0, len(f.Searchable))
		for _, column := range f.Searchable {
			search = append(search, ContainsCI(column, term))
		}
		preds = append(preds, Or(search...))
	}

	// Stable ordering keeps generated SQL deterministic.
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := params[key]
		if _, reserved := reservedKeys[key]; reserved || value == "" {
			continue
		}
		column, ok := f.Filterable[key]
		if !ok {
			continue
		}
		preds = append(preds, Eq(column, value))
	}

	return And(preds...)
}
