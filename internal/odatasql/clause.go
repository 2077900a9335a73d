package odatasql

import (
	"fmt"
	"strings"
)

// Clause is a set of output clauses a translation should emit.
//
// Clauses are selected independently of what the query specifies: a query
// with a $filter translated with ClauseSelect emits no WHERE clause, and a
// query without $select translated with ClauseSelect emits SELECT *.
type Clause uint8

const (
	ClauseSelect Clause = 1 << iota
	ClauseWhere
	ClauseOrderBy
	ClauseTop

	// ClauseAll selects every clause.
	ClauseAll = ClauseSelect | ClauseWhere | ClauseOrderBy | ClauseTop
)

// Has reports whether every clause in other is also in c.
func (c Clause) Has(other Clause) bool {
	return c&other == other
}

var clauseNames = []struct {
	clause Clause
	name   string
}{
	{ClauseSelect, "select"},
	{ClauseWhere, "where"},
	{ClauseOrderBy, "orderby"},
	{ClauseTop, "top"},
}

// String returns the clause names joined by "|" ("select|top"), "none" for
// the empty set and "all" for ClauseAll.
func (c Clause) String() string {
	if c == 0 {
		return "none"
	}
	if c == ClauseAll {
		return "all"
	}
	var parts []string
	for _, cn := range clauseNames {
		if c.Has(cn.clause) {
			parts = append(parts, cn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseClauses converts clause names into a Clause set.
//
// Accepted names (case-insensitive): select, where, orderby, top, all.
// A name prefixed with "-" removes that clause, so ["all", "-top"] selects
// everything except TOP.
func ParseClauses(names []string) (Clause, error) {
	var c Clause
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		remove := strings.HasPrefix(name, "-")
		name = strings.TrimPrefix(name, "-")

		var bit Clause
		if name == "all" {
			bit = ClauseAll
		} else {
			for _, cn := range clauseNames {
				if cn.name == name {
					bit = cn.clause
					break
				}
			}
		}
		if bit == 0 {
			return 0, fmt.Errorf("unknown clause %q: must be one of select, where, orderby, top, all", raw)
		}

		if remove {
			c &^= bit
		} else {
			c |= bit
		}
	}
	return c, nil
}
