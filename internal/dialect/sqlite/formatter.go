// Package sqlite renders queries for JSON documents stored in SQLite.
//
// Documents live as JSON text in a single column:
//
//	CREATE TABLE documents (doc TEXT NOT NULL)
//
// Properties are read with json_extract and the row limit is a trailing
// LIMIT clause, so the formatter implements odatasql.LimitFormatter:
//
//	SELECT c.doc FROM documents AS c WHERE json_extract(c.doc, '$.a') = 'x' ORDER BY json_extract(c.doc, '$.id') ASC LIMIT 10
package sqlite

import (
	"strconv"
	"strings"

	"github.com/anumalla/azure-documentdb-odata-sql/internal/odata"
)

// DefaultTable is the document table used by New.
const DefaultTable = "documents"

// DocColumn is the JSON text column holding each document.
const DocColumn = "doc"

const alias = "c"

// Formatter implements odatasql.Formatter and odatasql.LimitFormatter for
// SQLite's JSON functions.
type Formatter struct {
	Table string
}

// New returns a formatter reading from DefaultTable.
func New() Formatter {
	return Formatter{Table: DefaultTable}
}

var comparisonOperators = map[odata.ComparisonOperator]string{
	odata.OpEq: "=",
	odata.OpNe: "<>",
	odata.OpLt: "<",
	odata.OpLe: "<=",
	odata.OpGt: ">",
	odata.OpGe: ">=",
}

func (f Formatter) from() string {
	table := f.Table
	if table == "" {
		table = DefaultTable
	}
	return " FROM " + table + " AS " + alias + " "
}

// SelectClause projects the whole document for select-all, otherwise one
// json_extract column per field, named after the dotted path.
func (f Formatter) SelectClause(fields []odata.PropertyPath, _ string) string {
	if len(fields) == 0 {
		return "SELECT " + alias + "." + DocColumn + f.from()
	}
	parts := make([]string, len(fields))
	for i, field := range fields {
		name := strings.ReplaceAll(strings.Join(field.Segments, "."), `"`, `""`)
		parts[i] = extract(field) + ` AS "` + name + `"`
	}
	return "SELECT " + strings.Join(parts, ", ") + f.from()
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
		parts[i] = extract(item.Property) + " " + dir
	}
	return "ORDER BY " + strings.Join(parts, ", ") + " "
}

// TopClause returns "": the limit is rendered by LimitClause.
func (Formatter) TopClause(int) string {
	return ""
}

func (Formatter) LimitClause(n int) string {
	return "LIMIT " + strconv.Itoa(n) + " "
}

func (Formatter) ComparisonOperator(op odata.ComparisonOperator) string {
	return comparisonOperators[op]
}

func (Formatter) LogicalOperator(op odata.LogicalOperator) string {
	return strings.ToUpper(string(op))
}

// NullComparison renders eq null as IS NULL and ne null as IS NOT NULL.
// json_extract yields SQL NULL both for JSON null and for a missing path.
func (Formatter) NullComparison(op odata.ComparisonOperator, operand string) string {
	if op == odata.OpNe {
		return operand + " IS NOT NULL"
	}
	return operand + " IS NULL"
}

func (Formatter) NotOperator() string {
	return "NOT"
}

// FunctionCall maps canonical functions onto SQLite core functions.
// OData string positions are zero-based, SQLite's are one-based.
func (Formatter) FunctionCall(fn odata.Function, args []string) string {
	switch fn {
	case odata.FuncContains:
		return "(instr(" + args[0] + ", " + args[1] + ") > 0)"
	case odata.FuncStartsWith:
		return "(substr(" + args[0] + ", 1, length(" + args[1] + ")) = " + args[1] + ")"
	case odata.FuncEndsWith:
		return "(substr(" + args[0] + ", -length(" + args[1] + ")) = " + args[1] + ")"
	case odata.FuncToUpper:
		return "upper(" + args[0] + ")"
	case odata.FuncToLower:
		return "lower(" + args[0] + ")"
	case odata.FuncLength:
		return "length(" + args[0] + ")"
	case odata.FuncIndexOf:
		return "(instr(" + args[0] + ", " + args[1] + ") - 1)"
	case odata.FuncSubstring:
		if len(args) == 3 {
			return "substr(" + args[0] + ", " + args[1] + " + 1, " + args[2] + ")"
		}
		return "substr(" + args[0] + ", " + args[1] + " + 1)"
	case odata.FuncTrim:
		return "trim(" + args[0] + ")"
	case odata.FuncConcat:
		return "(" + args[0] + " || " + args[1] + ")"
	}
	return string(fn) + "(" + strings.Join(args, ", ") + ")"
}

func (Formatter) PropertyPath(path odata.PropertyPath) string {
	return extract(path)
}

// Literal doubles embedded quotes in strings and renders booleans as 1/0,
// which is what json_extract returns for JSON true/false.
func (Formatter) Literal(lit odata.Literal) string {
	switch lit.Kind {
	case odata.KindString, odata.KindEnum:
		return quote(lit.Value)
	case odata.KindBoolean:
		if lit.Value == "true" {
			return "1"
		}
		return "0"
	case odata.KindNull:
		return "NULL"
	default:
		return lit.Value
	}
}

func extract(path odata.PropertyPath) string {
	return "json_extract(" + alias + "." + DocColumn + ", " + quote("$."+strings.Join(path.Segments, ".")) + ")"
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
