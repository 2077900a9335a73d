package odata

import (
	"fmt"
	"strings"
)

// ValidationResult contains the structural problems found in a query.
type ValidationResult struct {
	// Valid is true when Problems is empty.
	Valid bool

	// Problems lists every structural defect, in tree order.
	Problems []string
}

// Err returns nil for a valid result, otherwise an error joining all problems.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return fmt.Errorf("invalid query: %s", strings.Join(r.Problems, "; "))
}

// Validate checks that a query is structurally well formed.
//
// Structural rules:
//  1. Every operand and argument is non-nil
//  2. Operators belong to the fixed comparison/logical sets
//  3. Property paths have at least one segment and no empty segment
//  4. Enum literals name a member; literal kinds are known
//  5. Top is non-negative
//
// Validate never consults an entity model. Function names are not checked
// here; the translator owns the supported function table.
//
// Validate is a pure function with no side effects.
func Validate(q *Query) ValidationResult {
	v := &validator{problems: []string{}}
	if q != nil {
		for i, p := range q.Select {
			v.validatePath(fmt.Sprintf("select[%d]", i), p)
		}
		if q.Filter != nil {
			v.validateExpr("filter", q.Filter)
		}
		for i, item := range q.OrderBy {
			v.validatePath(fmt.Sprintf("orderby[%d]", i), item.Property)
			if item.Direction != Asc && item.Direction != Desc {
				v.addProblem("orderby[%d]: unknown direction %d", i, item.Direction)
			}
		}
		if q.Top != nil && *q.Top < 0 {
			v.addProblem("top: must be non-negative, got %d", *q.Top)
		}
	}

	return ValidationResult{
		Valid:    len(v.problems) == 0,
		Problems: v.problems,
	}
}

// validator accumulates problems during traversal.
type validator struct {
	problems []string
}

func (v *validator) addProblem(format string, args ...any) {
	v.problems = append(v.problems, fmt.Sprintf(format, args...))
}

func (v *validator) validateExpr(at string, e Expression) {
	switch expr := deref(e).(type) {
	case nil:
		v.addProblem("%s: nil expression", at)
	case Comparison:
		v.validateComparison(at, expr)
	case Logical:
		v.validateLogical(at, expr)
	case Negation:
		v.validateExpr(at+".not", expr.Operand)
	case FunctionCall:
		v.validateCall(at, expr)
	case PropertyPath:
		v.validatePath(at, expr)
	case Literal:
		v.validateLiteral(at, expr)
	default:
		v.addProblem("%s: unknown expression type %T", at, e)
	}
}

func (v *validator) validateComparison(at string, c Comparison) {
	if !c.Operator.Valid() {
		v.addProblem("%s: unknown comparison operator %q", at, c.Operator)
	}
	v.validateExpr(at+".left", c.Left)
	v.validateExpr(at+".right", c.Right)
}

func (v *validator) validateLogical(at string, l Logical) {
	if !l.Operator.Valid() {
		v.addProblem("%s: unknown logical operator %q", at, l.Operator)
	}
	v.validateExpr(at+".left", l.Left)
	v.validateExpr(at+".right", l.Right)
}

func (v *validator) validateCall(at string, f FunctionCall) {
	if strings.TrimSpace(f.Name) == "" {
		v.addProblem("%s: function name is empty", at)
	}
	for i, arg := range f.Args {
		v.validateExpr(fmt.Sprintf("%s.%s[%d]", at, f.Name, i), arg)
	}
}

func (v *validator) validatePath(at string, p PropertyPath) {
	if p.IsZero() {
		v.addProblem("%s: property path is empty", at)
		return
	}
	for i, seg := range p.Segments {
		if seg == "" {
			v.addProblem("%s: property path %q has empty segment %d", at, p.String(), i)
		}
	}
}

func (v *validator) validateLiteral(at string, l Literal) {
	switch l.Kind {
	case KindString, KindNull:
	case KindNumber:
		if l.Value == "" {
			v.addProblem("%s: number literal is empty", at)
		}
	case KindBoolean:
		if l.Value != "true" && l.Value != "false" {
			v.addProblem("%s: boolean literal must be true or false, got %q", at, l.Value)
		}
	case KindEnum:
		if l.Value == "" {
			v.addProblem("%s: enum literal %q has no member", at, l.EnumType)
		}
	default:
		v.addProblem("%s: unknown literal kind %d", at, l.Kind)
	}
}
