package repository

import (
	"strings"

	"github.com/google/uuid"
)

// Predicate is a composable SQL filter fragment. An empty predicate matches
// everything. Predicates are built with the combinators below and applied by
// the repositories via gorm's Where — keeping each search branch independently
// testable without a database.
type Predicate struct {
	expr string
	args []interface{}
}

// MatchAll returns the unfiltered predicate.
func MatchAll() Predicate { return Predicate{} }

// IsEmpty reports whether the predicate matches everything.
func (p Predicate) IsEmpty() bool { return p.expr == "" }

func (p Predicate) Expr() string        { return p.expr }
func (p Predicate) Args() []interface{} { return p.args }

// Contains matches rows whose column contains term as a case-insensitive
// substring. LIKE metacharacters in the term are escaped so a search for
// "100%" matches literally.
func Contains(column, term string) Predicate {
	return Predicate{
		expr: column + " ILIKE ?",
		args: []interface{}{"%" + escapeLike(term) + "%"},
	}
}

// IDIn matches rows whose column is one of the given ids. An empty id set
// matches nothing — never everything.
func IDIn(column string, ids []uuid.UUID) Predicate {
	if len(ids) == 0 {
		return Predicate{expr: "1 = 0"}
	}
	return Predicate{expr: column + " IN ?", args: []interface{}{ids}}
}

// AnyOf combines predicates with OR. A match-all operand dominates the
// disjunction, so the result collapses back to MatchAll.
func AnyOf(preds ...Predicate) Predicate {
	if len(preds) == 0 {
		return MatchAll()
	}
	exprs := make([]string, 0, len(preds))
	var args []interface{}
	for _, p := range preds {
		if p.IsEmpty() {
			return MatchAll()
		}
		exprs = append(exprs, "("+p.expr+")")
		args = append(args, p.args...)
	}
	return Predicate{expr: strings.Join(exprs, " OR "), args: args}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }

// ── Sort resolution ──────────────────────────────────────────────────────────

// Sort mode tags accepted by the catalog query endpoint.
const (
	SortRecentlyAddedFirst    = "recentlyAddedFirst"
	SortRecentlyAddedLast     = "recentlyAddedLast"
	SortRecentlyModifiedFirst = "recentlyModifiedFirst"
	SortRecentlyModifiedLast  = "recentlyModifiedLast"
)

// ResolveSort maps a sort mode tag to its ORDER BY clause. Absent or
// unrecognized tags silently fall back to newest-created-first.
func ResolveSort(mode string) string {
	switch mode {
	case SortRecentlyAddedFirst:
		return "created_at DESC"
	case SortRecentlyAddedLast:
		return "created_at ASC"
	case SortRecentlyModifiedFirst:
		return "updated_at DESC"
	case SortRecentlyModifiedLast:
		return "updated_at ASC"
	default:
		return "created_at DESC"
	}
}
