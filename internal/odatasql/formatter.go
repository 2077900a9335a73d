package odatasql

import "github.com/anumalla/azure-documentdb-odata-sql/internal/odata"

// Formatter renders every SQL construct for one dialect.
//
// The Translator owns control flow (which clauses, in which order, how
// expressions nest) and a Formatter owns all literal syntax. Swapping the
// Formatter swaps the dialect; the Translator never hardcodes SQL text.
//
// All methods are total and pure. Inputs have already been checked by the
// Translator: operators are valid and function arities match.
//
// Clause methods return their fragment with a single trailing space
// ("WHERE c.a = 1 ") so fragments can be concatenated directly.
type Formatter interface {
	// SelectClause renders the projection. An empty fields slice means all
	// fields. top is the TopClause fragment, or "" when no limit applies.
	SelectClause(fields []odata.PropertyPath, top string) string

	// WhereClause wraps a fully rendered predicate.
	WhereClause(predicate string) string

	// OrderByClause renders a non-empty sort list.
	OrderByClause(items []odata.OrderByItem) string

	// TopClause renders the limit fragment interleaved into SelectClause.
	TopClause(n int) string

	ComparisonOperator(op odata.ComparisonOperator) string
	LogicalOperator(op odata.LogicalOperator) string
	NotOperator() string

	// FunctionCall renders a canonical function over already rendered arguments.
	FunctionCall(fn odata.Function, args []string) string

	PropertyPath(path odata.PropertyPath) string
	Literal(lit odata.Literal) string
}

// LimitFormatter is implemented by dialects that express the row limit as a
// trailing clause (LIMIT n) instead of a SELECT TOP prefix.
//
// For such dialects the Translator emits LimitClause after ORDER BY whenever
// ClauseTop is requested and the query has a top count, independently of
// ClauseSelect. TopClause is not consulted.
type LimitFormatter interface {
	LimitClause(n int) string
}

// NullFormatter is implemented by dialects where "= NULL" and "<> NULL" are
// never true.
//
// When a comparison is eq or ne and one operand is the null literal, the
// Translator passes the other, already rendered operand to NullComparison
// instead of rendering the null literal. Other operators are unaffected.
type NullFormatter interface {
	NullComparison(op odata.ComparisonOperator, operand string) string
}
