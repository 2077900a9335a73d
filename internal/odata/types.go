package odata

import "strings"

// Expression is a node of a bound $filter tree.
//
// This is a sealed interface - only types in this package implement it.
//
// Expression types:
//   - Comparison: left eq|ne|lt|le|gt|ge right
//   - Logical: left and|or right
//   - Negation: not operand
//   - FunctionCall: canonical function invocation, e.g. contains(a,'b')
//   - PropertyPath: property access, possibly nested (parent/child)
//   - Literal: string, number, boolean, enum or null constant
type Expression interface {
	expressionNode() // Marker method - seals interface to this package
}

// ComparisonOperator is a binary comparison operator of the $filter grammar.
type ComparisonOperator string

const (
	OpEq ComparisonOperator = "eq"
	OpNe ComparisonOperator = "ne"
	OpLt ComparisonOperator = "lt"
	OpLe ComparisonOperator = "le"
	OpGt ComparisonOperator = "gt"
	OpGe ComparisonOperator = "ge"
)

// Valid reports whether op is one of the six comparison operators.
func (op ComparisonOperator) Valid() bool {
	switch op {
	case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe:
		return true
	}
	return false
}

// LogicalOperator is a binary boolean connective.
type LogicalOperator string

const (
	OpAnd LogicalOperator = "and"
	OpOr  LogicalOperator = "or"
)

// Valid reports whether op is and/or.
func (op LogicalOperator) Valid() bool {
	return op == OpAnd || op == OpOr
}

// Precedence returns the binding strength of op. Higher binds tighter.
// Unknown operators return 0.
func (op LogicalOperator) Precedence() int {
	switch op {
	case OpAnd:
		return 2
	case OpOr:
		return 1
	}
	return 0
}

// Comparison represents a comparison of two operands.
//
// Semantics:
//
//	<left> <operator> <right>
//
// Operands are usually a PropertyPath, a Literal or a FunctionCall
// (length(name) ge 10).
type Comparison struct {
	Operator ComparisonOperator
	Left     Expression
	Right    Expression
}

func (Comparison) expressionNode() {}

// Logical represents a conjunction or disjunction of two predicates.
//
// Chains such as "a and b and c" are left-deep:
//
//	Logical{And, Logical{And, a, b}, c}
type Logical struct {
	Operator LogicalOperator
	Left     Expression
	Right    Expression
}

func (Logical) expressionNode() {}

// Negation represents "not <operand>".
type Negation struct {
	Operand Expression
}

func (Negation) expressionNode() {}

// FunctionCall represents a canonical function invocation.
//
// Name is the function name as written in the request. It is matched
// case-insensitively by consumers; see Function for the canonical set.
type FunctionCall struct {
	Name string
	Args []Expression
}

func (FunctionCall) expressionNode() {}

// PropertyPath represents access to a (possibly nested) property.
//
// The OData path "parent/child" has Segments ["parent", "child"].
type PropertyPath struct {
	Segments []string
}

func (PropertyPath) expressionNode() {}

// String returns the path in OData form (segments joined by "/").
func (p PropertyPath) String() string {
	return strings.Join(p.Segments, "/")
}

// IsZero reports whether the path has no segments.
func (p PropertyPath) IsZero() bool {
	return len(p.Segments) == 0
}

// Valid reports whether the path has at least one segment and no empty
// segment ("a//b" is invalid).
func (p PropertyPath) Valid() bool {
	if p.IsZero() {
		return false
	}
	for _, seg := range p.Segments {
		if seg == "" {
			return false
		}
	}
	return true
}

// LiteralKind classifies a Literal.
type LiteralKind int

const (
	KindString LiteralKind = iota + 1
	KindNumber
	KindBoolean
	KindEnum
	KindNull
)

// Valid reports whether k is one of the five literal kinds.
func (k LiteralKind) Valid() bool {
	return k >= KindString && k <= KindNull
}

// String returns the lowercase kind name.
func (k LiteralKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindEnum:
		return "enum"
	case KindNull:
		return "null"
	}
	return "unknown"
}

// Literal represents a constant.
//
// Value holds the literal text:
//   - KindString: the unquoted string value
//   - KindNumber: the number exactly as written ("5", "1.25", "-3e2")
//   - KindBoolean: "true" or "false"
//   - KindEnum: the member name ("ONE"); EnumType holds the qualified
//     type name ("Ns.MockEnum")
//   - KindNull: empty
type Literal struct {
	Kind     LiteralKind
	Value    string
	EnumType string
}

func (Literal) expressionNode() {}

// Direction is a sort direction of an $orderby item.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// OrderByItem is one sort key. The first item of a list is the primary key.
type OrderByItem struct {
	Property  PropertyPath
	Direction Direction
}

// Query is the bound form of a request's query options.
//
//   - Select: projected properties; nil or empty means all fields
//   - Filter: $filter root; nil means no filter
//   - OrderBy: sort keys in significance order
//   - Top: row limit; nil means unlimited
type Query struct {
	Select  []PropertyPath
	Filter  Expression
	OrderBy []OrderByItem
	Top     *int
}

// SelectsAll reports whether the query projects every field.
func (q *Query) SelectsAll() bool {
	return q == nil || len(q.Select) == 0
}
