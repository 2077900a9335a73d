package documentdb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anumalla/azure-documentdb-odata-sql/internal/dialect/documentdb"
	"github.com/anumalla/azure-documentdb-odata-sql/internal/odata"
	"github.com/anumalla/azure-documentdb-odata-sql/internal/odatasql"
)

var _ odatasql.Formatter = documentdb.Formatter{}

func TestFormatter_NotLimitStyle(t *testing.T) {
	var f odatasql.Formatter = documentdb.New()
	_, ok := f.(odatasql.LimitFormatter)
	assert.False(t, ok)
}

func TestFormatter_Clauses(t *testing.T) {
	f := documentdb.New()

	assert.Equal(t, "SELECT * FROM c ", f.SelectClause(nil, ""))
	assert.Equal(t, "SELECT TOP 3 * FROM c ", f.SelectClause(nil, f.TopClause(3)))
	assert.Equal(t, "SELECT c.a, c.b.c FROM c ", f.SelectClause(odata.Select("a", "b/c"), ""))
	assert.Equal(t, "WHERE c.a = 1 ", f.WhereClause("c.a = 1"))
	assert.Equal(t, "ORDER BY c.a DESC, c.b.c ASC ",
		f.OrderByClause([]odata.OrderByItem{odata.DescBy("a"), odata.AscBy("b/c")}))
}

func TestFormatter_Operators(t *testing.T) {
	f := documentdb.New()

	want := map[odata.ComparisonOperator]string{
		odata.OpEq: "=", odata.OpNe: "!=", odata.OpLt: "<",
		odata.OpLe: "<=", odata.OpGt: ">", odata.OpGe: ">=",
	}
	for op, sql := range want {
		assert.Equal(t, sql, f.ComparisonOperator(op), string(op))
	}
	assert.Equal(t, "AND", f.LogicalOperator(odata.OpAnd))
	assert.Equal(t, "OR", f.LogicalOperator(odata.OpOr))
	assert.Equal(t, "NOT", f.NotOperator())
}

func TestFormatter_Functions(t *testing.T) {
	f := documentdb.New()

	assert.Equal(t, "INDEX_OF(c.a,'x')", f.FunctionCall(odata.FuncIndexOf, []string{"c.a", "'x'"}))
	assert.Equal(t, "LTRIM(RTRIM(c.a))", f.FunctionCall(odata.FuncTrim, []string{"c.a"}))
	assert.Equal(t, "SUBSTRING(c.a,1,2)", f.FunctionCall(odata.FuncSubstring, []string{"c.a", "1", "2"}))

	for _, fn := range odata.Functions {
		got := f.FunctionCall(fn, []string{"x", "y"})
		assert.NotEmpty(t, got, string(fn))
		assert.NotContains(t, got, ", ", string(fn))
	}
}

func TestFormatter_Literals(t *testing.T) {
	f := documentdb.New()

	assert.Equal(t, "'Microsoft'", f.Literal(odata.String("Microsoft")))
	assert.Equal(t, "'O'Brien'", f.Literal(odata.String("O'Brien")), "strings are not escaped")
	assert.Equal(t, "'TWO'", f.Literal(odata.Enum("Ns.MockEnum", "TWO")))
	assert.Equal(t, "5", f.Literal(odata.Int(5)))
	assert.Equal(t, "1.5e3", f.Literal(odata.Number("1.5e3")))
	assert.Equal(t, "true", f.Literal(odata.Bool(true)))
	assert.Equal(t, "null", f.Literal(odata.Null()))
}

func TestFormatter_PropertyPath(t *testing.T) {
	f := documentdb.New()

	assert.Equal(t, "c.englishName", f.PropertyPath(odata.Property("englishName")))
	assert.Equal(t, "c.parent.child.leaf", f.PropertyPath(odata.Property("parent/child/leaf")))
}
