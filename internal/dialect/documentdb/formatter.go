// Package documentdb renders queries in the DocumentDB (Cosmos DB) SQL
// dialect.
//
// Documents are addressed through the collection alias "c":
//
//	SELECT TOP 15 c.id, c.englishName FROM c WHERE c.parent.child = 'x' ORDER BY c.id ASC
package documentdb

import (
	"strconv"
	"strings"

	"github.com/anumalla/azure-documentdb-odata-sql/internal/odata"
)

// Alias is the collection alias used in FROM and in every property path.
const Alias = "c"

// Formatter implements odatasql.Formatter for DocumentDB SQL.
type Formatter struct{}

// New returns a DocumentDB formatter.
func New() Formatter {
	return Formatter{}
}

var comparisonOperators = map[odata.ComparisonOperator]string{
	odata.OpEq: "=",
	odata.OpNe: "!=",
	odata.OpLt: "<",
	odata.OpLe: "<=",
	odata.OpGt: ">",
	odata.OpGe: ">=",
}

var logicalOperators = map[odata.LogicalOperator]string{
	odata.OpAnd: "AND",
	odata.OpOr:  "OR",
}

// functionNames maps canonical functions to DocumentDB built-ins. trim has
// no single built-in and is handled in FunctionCall.
var functionNames = map[odata.Function]string{
	odata.FuncContains:   "CONTAINS",
	odata.FuncStartsWith: "STARTSWITH",
	odata.FuncEndsWith:   "ENDSWITH",
	odata.FuncToUpper:    "UPPER",
	odata.FuncToLower:    "LOWER",
	odata.FuncLength:     "LENGTH",
	odata.FuncIndexOf:    "INDEX_OF",
	odata.FuncSubstring:  "SUBSTRING",
	odata.FuncConcat:     "CONCAT",
}

func (Formatter) SelectClause(fields []odata.PropertyPath, top string) string {
	projection := "*"
	if len(fields) > 0 {
		parts := make([]string, len(fields))
		for i, f := range fields {
			parts[i] = propertyPath(f)
		}
		projection = strings.Join(parts, ", ")
	}
	return "SELECT " + top + projection + " FROM " + Alias + " "
}

func (Formatter) WhereClause(predicate string) string {
	return "WHERE " + predicate + " "
}

func (Formatter) OrderByClause(items []odata.OrderByItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		dir := "ASC"
		if item.Direction == odata.Desc {
			dir = "DESC"
		}
		parts[i] = propertyPath(item.Property) + " " + dir
	}
	return "ORDER BY " + strings.Join(parts, ", ") + " "
}

func (Formatter) TopClause(n int) string {
	return "TOP " + strconv.Itoa(n) + " "
}

func (Formatter) ComparisonOperator(op odata.ComparisonOperator) string {
	return comparisonOperators[op]
}

func (Formatter) LogicalOperator(op odata.LogicalOperator) string {
	return logicalOperators[op]
}

func (Formatter) NotOperator() string {
	return "NOT"
}

// FunctionCall renders NAME(a,b) with no spaces after commas. trim becomes
// LTRIM(RTRIM(a)).
func (Formatter) FunctionCall(fn odata.Function, args []string) string {
	joined := strings.Join(args, ",")
	if fn == odata.FuncTrim {
		return "LTRIM(RTRIM(" + joined + "))"
	}
	return functionNames[fn] + "(" + joined + ")"
}

func (Formatter) PropertyPath(path odata.PropertyPath) string {
	return propertyPath(path)
}

// Literal renders strings single-quoted as given, enums as their quoted
// member name, and numbers and booleans verbatim.
func (Formatter) Literal(lit odata.Literal) string {
	switch lit.Kind {
	case odata.KindString, odata.KindEnum:
		return "'" + lit.Value + "'"
	case odata.KindNull:
		return "null"
	default:
		return lit.Value
	}
}

func propertyPath(path odata.PropertyPath) string {
	return Alias + "." + strings.Join(path.Segments, ".")
}
