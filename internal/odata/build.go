package odata

import (
	"strconv"
	"strings"
)

// Property creates a PropertyPath from an OData path ("parent/child").
func Property(path string) PropertyPath {
	return PropertyPath{Segments: strings.Split(path, "/")}
}

// Path creates a PropertyPath from explicit segments.
func Path(segments ...string) PropertyPath {
	return PropertyPath{Segments: append([]string(nil), segments...)}
}

// String creates a string Literal.
func String(s string) Literal {
	return Literal{Kind: KindString, Value: s}
}

// Number creates a number Literal from its textual form.
func Number(text string) Literal {
	return Literal{Kind: KindNumber, Value: text}
}

// Int creates a number Literal from an integer.
func Int(n int64) Literal {
	return Number(strconv.FormatInt(n, 10))
}

// Bool creates a boolean Literal.
func Bool(b bool) Literal {
	return Literal{Kind: KindBoolean, Value: strconv.FormatBool(b)}
}

// Enum creates an enum Literal such as Ns.MockEnum'ONE'.
func Enum(typeName, member string) Literal {
	return Literal{Kind: KindEnum, Value: member, EnumType: typeName}
}

// Null creates the null Literal.
func Null() Literal {
	return Literal{Kind: KindNull}
}

func Eq(left, right Expression) Comparison { return Comparison{OpEq, left, right} }
func Ne(left, right Expression) Comparison { return Comparison{OpNe, left, right} }
func Lt(left, right Expression) Comparison { return Comparison{OpLt, left, right} }
func Le(left, right Expression) Comparison { return Comparison{OpLe, left, right} }
func Gt(left, right Expression) Comparison { return Comparison{OpGt, left, right} }
func Ge(left, right Expression) Comparison { return Comparison{OpGe, left, right} }

// And folds operands into a left-deep conjunction.
// And(a, b, c) == Logical{And, Logical{And, a, b}, c}. Requires at least one operand.
func And(first Expression, rest ...Expression) Expression {
	return fold(OpAnd, first, rest)
}

// Or folds operands into a left-deep disjunction.
func Or(first Expression, rest ...Expression) Expression {
	return fold(OpOr, first, rest)
}

func fold(op LogicalOperator, first Expression, rest []Expression) Expression {
	acc := first
	for _, next := range rest {
		acc = Logical{Operator: op, Left: acc, Right: next}
	}
	return acc
}

// Not negates an expression.
func Not(operand Expression) Negation {
	return Negation{Operand: operand}
}

// Call creates a FunctionCall.
func Call(name string, args ...Expression) FunctionCall {
	return FunctionCall{Name: name, Args: append([]Expression(nil), args...)}
}

// AscBy creates an ascending OrderByItem.
func AscBy(path string) OrderByItem {
	return OrderByItem{Property: Property(path), Direction: Asc}
}

// DescBy creates a descending OrderByItem.
func DescBy(path string) OrderByItem {
	return OrderByItem{Property: Property(path), Direction: Desc}
}

// Select creates a select list from OData paths.
func Select(paths ...string) []PropertyPath {
	out := make([]PropertyPath, len(paths))
	for i, p := range paths {
		out[i] = Property(p)
	}
	return out
}

// TopN returns a pointer suitable for Query.Top.
func TopN(n int) *int {
	return &n
}
