package odata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	testCases := []struct {
		name string
		expr Expression
		want string
	}{
		{
			name: "comparison chain",
			expr: And(Eq(Property("englishName"), String("Microsoft")), Le(Property("intField"), Int(5))),
			want: "englishName eq 'Microsoft' and intField le 5",
		},
		{
			name: "nested property and escaped quote",
			expr: Eq(Property("parent/child"), String("O'Brien")),
			want: "parent/child eq 'O''Brien'",
		},
		{
			name: "enum literal keeps qualifier",
			expr: Eq(Property("enumNumber"), Enum("Ns.MockEnum", "ONE")),
			want: "enumNumber eq Ns.MockEnum'ONE'",
		},
		{
			name: "or under and is grouped",
			expr: And(Gt(Property("a"), Int(1)), Or(Eq(Property("b"), Null()), Eq(Property("c"), Bool(false)))),
			want: "a gt 1 and (b eq null or c eq false)",
		},
		{
			name: "and under or is not grouped",
			expr: Or(And(Property("a"), Property("b")), Property("c")),
			want: "a and b or c",
		},
		{
			name: "negated disjunction",
			expr: Not(Or(Property("a"), Property("b"))),
			want: "not (a or b)",
		},
		{
			name: "nested function call",
			expr: Eq(Call("substring", Property("englishName"), Int(1), Call("length", Property("englishName"))), String("icrosoft")),
			want: "substring(englishName,1,length(englishName)) eq 'icrosoft'",
		},
		{
			name: "nil",
			expr: nil,
			want: "<nil>",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(tc.expr))
		})
	}
}

func TestFormatOrderByAndSelect(t *testing.T) {
	assert.Equal(t, "companyId desc,id asc", FormatOrderBy([]OrderByItem{DescBy("companyId"), AscBy("id")}))
	assert.Equal(t, "p1,parent/child", FormatSelect(Select("p1", "parent/child")))
	assert.Equal(t, "", FormatSelect(nil))
}

func TestConstructors(t *testing.T) {
	t.Run("and folds left-deep", func(t *testing.T) {
		a, b, c := Property("a"), Property("b"), Property("c")
		got := And(a, b, c)
		want := Logical{Operator: OpAnd, Left: Logical{Operator: OpAnd, Left: a, Right: b}, Right: c}
		assert.Equal(t, want, got)
	})

	t.Run("single operand is returned as is", func(t *testing.T) {
		a := Property("a")
		assert.Equal(t, Expression(a), Or(a))
	})

	t.Run("property splits on slash", func(t *testing.T) {
		assert.Equal(t, []string{"parent", "child"}, Property("parent/child").Segments)
	})

	t.Run("call copies arguments", func(t *testing.T) {
		args := []Expression{Property("a"), String("b")}
		call := Call("contains", args...)
		args[0] = Property("z")
		assert.Equal(t, Property("a"), call.Args[0])
	})

	t.Run("literal values", func(t *testing.T) {
		assert.Equal(t, Literal{Kind: KindNumber, Value: "-42"}, Int(-42))
		assert.Equal(t, Literal{Kind: KindBoolean, Value: "true"}, Bool(true))
		assert.Equal(t, Literal{Kind: KindEnum, Value: "TWO", EnumType: "Ns.E"}, Enum("Ns.E", "TWO"))
	})

	t.Run("select all", func(t *testing.T) {
		var nilQuery *Query
		assert.True(t, nilQuery.SelectsAll())
		assert.True(t, (&Query{}).SelectsAll())
		assert.False(t, (&Query{Select: Select("id")}).SelectsAll())
	})
}

func TestPrecedence(t *testing.T) {
	assert.Greater(t, OpAnd.Precedence(), OpOr.Precedence())
	assert.Equal(t, 0, LogicalOperator("xor").Precedence())
}
