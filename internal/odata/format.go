package odata

import (
	"fmt"
	"strings"
)

// Format prints an expression in $filter syntax.
//
// The output is meant for logs and diagnostics. Parentheses are added only
// where tree shape requires them, so Format(parse(s)) may differ from s in
// redundant grouping and whitespace.
func Format(e Expression) string {
	var b strings.Builder
	formatExpr(&b, e)
	return b.String()
}

// FormatOrderBy prints an $orderby list ("a desc,b asc").
func FormatOrderBy(items []OrderByItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.Property.String() + " " + item.Direction.String()
	}
	return strings.Join(parts, ",")
}

// FormatSelect prints a $select list ("a,b/c").
func FormatSelect(paths []PropertyPath) string {
	parts := make([]string, len(paths))
	for i, p := range paths {
		parts[i] = p.String()
	}
	return strings.Join(parts, ",")
}

func formatExpr(b *strings.Builder, e Expression) {
	switch expr := deref(e).(type) {
	case nil:
		b.WriteString("<nil>")
	case Comparison:
		formatOperand(b, expr.Left)
		b.WriteString(" " + string(expr.Operator) + " ")
		formatOperand(b, expr.Right)
	case Logical:
		formatChild(b, expr.Operator, expr.Left)
		b.WriteString(" " + string(expr.Operator) + " ")
		formatChild(b, expr.Operator, expr.Right)
	case Negation:
		b.WriteString("not ")
		if _, ok := deref(expr.Operand).(Logical); ok {
			b.WriteString("(")
			formatExpr(b, expr.Operand)
			b.WriteString(")")
		} else {
			formatExpr(b, expr.Operand)
		}
	case FunctionCall:
		b.WriteString(expr.Name + "(")
		for i, arg := range expr.Args {
			if i > 0 {
				b.WriteString(",")
			}
			formatExpr(b, arg)
		}
		b.WriteString(")")
	case PropertyPath:
		b.WriteString(expr.String())
	case Literal:
		b.WriteString(formatLiteral(expr))
	default:
		fmt.Fprintf(b, "<%T>", e)
	}
}

func formatOperand(b *strings.Builder, e Expression) {
	switch deref(e).(type) {
	case Logical, Comparison:
		b.WriteString("(")
		formatExpr(b, e)
		b.WriteString(")")
	default:
		formatExpr(b, e)
	}
}

func formatChild(b *strings.Builder, parent LogicalOperator, child Expression) {
	if l, ok := deref(child).(Logical); ok && l.Operator.Precedence() < parent.Precedence() {
		b.WriteString("(")
		formatExpr(b, child)
		b.WriteString(")")
		return
	}
	formatExpr(b, child)
}

func formatLiteral(l Literal) string {
	switch l.Kind {
	case KindString:
		return "'" + strings.ReplaceAll(l.Value, "'", "''") + "'"
	case KindEnum:
		return l.EnumType + "'" + l.Value + "'"
	case KindNull:
		return "null"
	default:
		return l.Value
	}
}

// deref converts pointer nodes to their value form. A nil pointer maps to nil.
func deref(e Expression) Expression {
	switch expr := e.(type) {
	case *Comparison:
		if expr == nil {
			return nil
		}
		return *expr
	case *Logical:
		if expr == nil {
			return nil
		}
		return *expr
	case *Negation:
		if expr == nil {
			return nil
		}
		return *expr
	case *FunctionCall:
		if expr == nil {
			return nil
		}
		return *expr
	case *PropertyPath:
		if expr == nil {
			return nil
		}
		return *expr
	case *Literal:
		if expr == nil {
			return nil
		}
		return *expr
	}
	return e
}

// Deref returns the value form of e, mapping typed nil pointers to nil.
// Consumers use it to switch over value types only.
func Deref(e Expression) Expression {
	return deref(e)
}
