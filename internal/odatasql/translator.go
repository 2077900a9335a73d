package odatasql

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/anumalla/azure-documentdb-odata-sql/internal/odata"
)

// Translator converts bound OData queries to SQL text using a Formatter.
//
// A Translator holds no mutable state after construction and is safe for
// concurrent use. Rendering recurses once per filter nesting level; the
// call stack bounds the supported filter depth.
type Translator struct {
	formatter Formatter
	logger    *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithLogger sets the logger used for debug tracing of emitted clauses.
// Default: a logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New creates a Translator for the dialect implemented by f.
func New(f Formatter, opts ...Option) *Translator {
	t := &Translator{
		formatter: f,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Formatter returns the dialect formatter.
func (t *Translator) Formatter() Formatter {
	return t.formatter
}

// Translate renders q as a query string containing the requested clauses.
//
// Clauses are emitted in fixed order: SELECT, WHERE, ORDER BY (then LIMIT
// for LimitFormatter dialects). Each fragment carries its own trailing
// space and the result is not trimmed. A nil q is the empty query.
//
// additionalPredicate is a pre-rendered boolean expression. When non-blank
// and ClauseWhere is requested it becomes the leftmost conjunct of WHERE:
//
//	WHERE <additionalPredicate> AND <filter>
//
// The filter is appended without added parentheses.
//
// Translate either returns the complete string or an error; there is no
// partial output.
func (t *Translator) Translate(q *odata.Query, clauses Clause, additionalPredicate string) (string, error) {
	if q == nil {
		q = &odata.Query{}
	}
	if q.Top != nil && *q.Top < 0 {
		return "", &TranslateError{
			Code:    ErrCodeInvalidTop,
			Message: fmt.Sprintf("top must be non-negative, got %d", *q.Top),
		}
	}

	for i, field := range q.Select {
		if !field.Valid() {
			return "", fmt.Errorf("translate select[%d]: %w", i, newInvalidPath(field))
		}
	}

	limitFmt, limitStyle := t.formatter.(LimitFormatter)

	var sb strings.Builder

	if clauses.Has(ClauseSelect) {
		top := ""
		if clauses.Has(ClauseTop) && q.Top != nil && !limitStyle {
			top = t.formatter.TopClause(*q.Top)
		}
		fragment := t.formatter.SelectClause(q.Select, top)
		t.logger.Debug("clause rendered", "clause", "select", "sql", fragment)
		sb.WriteString(fragment)
	}

	if clauses.Has(ClauseWhere) {
		fragment, err := t.whereClause(q.Filter, additionalPredicate)
		if err != nil {
			return "", fmt.Errorf("translate filter: %w", err)
		}
		if fragment != "" {
			t.logger.Debug("clause rendered", "clause", "where", "sql", fragment)
			sb.WriteString(fragment)
		}
	}

	if clauses.Has(ClauseOrderBy) && len(q.OrderBy) > 0 {
		for i, item := range q.OrderBy {
			if !item.Property.Valid() {
				return "", fmt.Errorf("translate orderby[%d]: %w", i, newInvalidPath(item.Property))
			}
		}
		fragment := t.formatter.OrderByClause(q.OrderBy)
		t.logger.Debug("clause rendered", "clause", "orderby", "sql", fragment)
		sb.WriteString(fragment)
	}

	if limitStyle && clauses.Has(ClauseTop) && q.Top != nil {
		fragment := limitFmt.LimitClause(*q.Top)
		t.logger.Debug("clause rendered", "clause", "limit", "sql", fragment)
		sb.WriteString(fragment)
	}

	return sb.String(), nil
}

// TranslateFilter renders a filter expression alone, without WHERE.
func (t *Translator) TranslateFilter(filter odata.Expression) (string, error) {
	return t.render(filter)
}

// whereClause assembles the WHERE fragment, or "" when there is nothing to
// filter on.
func (t *Translator) whereClause(filter odata.Expression, additionalPredicate string) (string, error) {
	var conjuncts []string
	if p := strings.TrimSpace(additionalPredicate); p != "" {
		conjuncts = append(conjuncts, additionalPredicate)
	}
	if filter != nil {
		rendered, err := t.render(filter)
		if err != nil {
			return "", err
		}
		conjuncts = append(conjuncts, rendered)
	}
	if len(conjuncts) == 0 {
		return "", nil
	}
	and := t.formatter.LogicalOperator(odata.OpAnd)
	return t.formatter.WhereClause(strings.Join(conjuncts, " "+and+" ")), nil
}

// render recursively renders an expression node.
func (t *Translator) render(e odata.Expression) (string, error) {
	switch expr := odata.Deref(e).(type) {
	case odata.Comparison:
		return t.renderComparison(expr)
	case odata.Logical:
		return t.renderLogical(expr)
	case odata.Negation:
		return t.renderNegation(expr)
	case odata.FunctionCall:
		return t.renderCall(expr)
	case odata.PropertyPath:
		if !expr.Valid() {
			return "", newInvalidPath(expr)
		}
		return t.formatter.PropertyPath(expr), nil
	case odata.Literal:
		if !expr.Kind.Valid() {
			return "", newUnsupportedLiteral(expr.Kind)
		}
		return t.formatter.Literal(expr), nil
	case nil:
		return "", newUnsupportedNode(nil)
	default:
		return "", newUnsupportedNode(e)
	}
}

func (t *Translator) renderComparison(c odata.Comparison) (string, error) {
	if !c.Operator.Valid() {
		return "", newUnsupportedOperator("comparison", string(c.Operator))
	}
	if nf, ok := t.formatter.(NullFormatter); ok && (c.Operator == odata.OpEq || c.Operator == odata.OpNe) {
		if operand, isNull := nullOperand(c); isNull {
			s, err := t.renderOperand(operand)
			if err != nil {
				return "", err
			}
			return nf.NullComparison(c.Operator, s), nil
		}
	}
	left, err := t.renderOperand(c.Left)
	if err != nil {
		return "", err
	}
	right, err := t.renderOperand(c.Right)
	if err != nil {
		return "", err
	}
	return left + " " + t.formatter.ComparisonOperator(c.Operator) + " " + right, nil
}

// nullOperand returns the operand compared with the null literal, if either
// side of c is null. null eq null yields the left null literal.
func nullOperand(c odata.Comparison) (odata.Expression, bool) {
	if isNullLiteral(c.Right) {
		return c.Left, true
	}
	if isNullLiteral(c.Left) {
		return c.Right, true
	}
	return nil, false
}

func isNullLiteral(e odata.Expression) bool {
	lit, ok := odata.Deref(e).(odata.Literal)
	return ok && lit.Kind == odata.KindNull
}

// renderOperand renders a comparison operand, grouping boolean operands.
func (t *Translator) renderOperand(e odata.Expression) (string, error) {
	s, err := t.render(e)
	if err != nil {
		return "", err
	}
	switch odata.Deref(e).(type) {
	case odata.Logical, odata.Comparison:
		return "(" + s + ")", nil
	}
	return s, nil
}

func (t *Translator) renderLogical(l odata.Logical) (string, error) {
	if !l.Operator.Valid() {
		return "", newUnsupportedOperator("logical", string(l.Operator))
	}
	left, err := t.renderChild(l.Operator, l.Left)
	if err != nil {
		return "", err
	}
	right, err := t.renderChild(l.Operator, l.Right)
	if err != nil {
		return "", err
	}
	return left + " " + t.formatter.LogicalOperator(l.Operator) + " " + right, nil
}

// renderChild renders an operand of a logical operator. A logical child
// binding looser than its parent (or under and) is parenthesized; nothing
// else is, so the output reproduces the tree shape exactly.
func (t *Translator) renderChild(parent odata.LogicalOperator, child odata.Expression) (string, error) {
	s, err := t.render(child)
	if err != nil {
		return "", err
	}
	if l, ok := odata.Deref(child).(odata.Logical); ok && l.Operator.Precedence() < parent.Precedence() {
		return "(" + s + ")", nil
	}
	return s, nil
}

func (t *Translator) renderNegation(n odata.Negation) (string, error) {
	operand, err := t.render(n.Operand)
	if err != nil {
		return "", err
	}
	if _, ok := odata.Deref(n.Operand).(odata.Logical); ok {
		operand = "(" + operand + ")"
	}
	return t.formatter.NotOperator() + " " + operand, nil
}

func (t *Translator) renderCall(f odata.FunctionCall) (string, error) {
	spec, ok := LookupFunction(f.Name)
	if !ok {
		return "", newUnsupportedFunction(f.Name)
	}
	if len(f.Args) < spec.MinArgs || len(f.Args) > spec.MaxArgs {
		return "", newArgumentCountError(f.Name, len(f.Args), spec.MinArgs, spec.MaxArgs)
	}

	args := make([]string, len(f.Args))
	for i, arg := range f.Args {
		s, err := t.render(arg)
		if err != nil {
			return "", fmt.Errorf("%s argument %d: %w", f.Name, i+1, err)
		}
		args[i] = s
	}
	return t.formatter.FunctionCall(spec.Function, args), nil
}
