package odatasql

import (
	"errors"
	"fmt"

	"github.com/anumalla/azure-documentdb-odata-sql/internal/odata"
)

// TranslateError represents a query that cannot be translated.
//
// Translation errors include:
//   - Unsupported function: name outside the function table
//   - Unsupported operator: comparison/logical operator outside the fixed sets
//   - Malformed argument count: arity mismatch for a known function
//   - Unsupported node: nil or foreign expression node
//   - Invalid top: negative row limit
//
// All of them are fatal for the call. Translation is deterministic, so
// retrying with the same input fails the same way.
type TranslateError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Function is the function name as written in the query (function errors).
	Function string

	// Operator is the offending operator (operator errors).
	Operator string
}

// ErrorCode categorizes translation errors.
type ErrorCode string

const (
	// ErrCodeUnsupportedFunction indicates a function outside the function table.
	ErrCodeUnsupportedFunction ErrorCode = "UNSUPPORTED_FUNCTION"

	// ErrCodeUnsupportedOperator indicates an operator outside the fixed sets.
	ErrCodeUnsupportedOperator ErrorCode = "UNSUPPORTED_OPERATOR"

	// ErrCodeArgumentCount indicates a function called with the wrong number of arguments.
	ErrCodeArgumentCount ErrorCode = "MALFORMED_ARGUMENT_COUNT"

	// ErrCodeUnsupportedNode indicates a nil or unknown expression node, a
	// malformed property path or a literal of unknown kind.
	ErrCodeUnsupportedNode ErrorCode = "UNSUPPORTED_NODE"

	// ErrCodeInvalidTop indicates a negative top count.
	ErrCodeInvalidTop ErrorCode = "INVALID_TOP"
)

// Error implements the error interface.
func (e *TranslateError) Error() string {
	if e.Function != "" {
		return fmt.Sprintf("%s: %s (function=%s)", e.Code, e.Message, e.Function)
	}
	if e.Operator != "" {
		return fmt.Sprintf("%s: %s (operator=%s)", e.Code, e.Message, e.Operator)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CodeOf returns the ErrorCode of a (possibly wrapped) TranslateError,
// or "" when err is not one.
func CodeOf(err error) ErrorCode {
	var te *TranslateError
	if errors.As(err, &te) {
		return te.Code
	}
	return ""
}

// IsUnsupportedFunction returns true if err is an unsupported function error.
// Uses errors.As to handle wrapped errors.
func IsUnsupportedFunction(err error) bool {
	return CodeOf(err) == ErrCodeUnsupportedFunction
}

// IsUnsupportedOperator returns true if err is an unsupported operator error.
func IsUnsupportedOperator(err error) bool {
	return CodeOf(err) == ErrCodeUnsupportedOperator
}

// IsArgumentCountError returns true if err is a malformed argument count error.
func IsArgumentCountError(err error) bool {
	return CodeOf(err) == ErrCodeArgumentCount
}

func newUnsupportedFunction(name string) *TranslateError {
	return &TranslateError{
		Code:     ErrCodeUnsupportedFunction,
		Message:  "function is not supported",
		Function: name,
	}
}

func newArgumentCountError(name string, got, minArgs, maxArgs int) *TranslateError {
	want := fmt.Sprintf("%d", minArgs)
	if maxArgs != minArgs {
		want = fmt.Sprintf("%d to %d", minArgs, maxArgs)
	}
	return &TranslateError{
		Code:     ErrCodeArgumentCount,
		Message:  fmt.Sprintf("expected %s argument(s), got %d", want, got),
		Function: name,
	}
}

func newUnsupportedOperator(kind, op string) *TranslateError {
	return &TranslateError{
		Code:     ErrCodeUnsupportedOperator,
		Message:  fmt.Sprintf("%s operator is not supported", kind),
		Operator: op,
	}
}

func newUnsupportedNode(node any) *TranslateError {
	if node == nil {
		return &TranslateError{Code: ErrCodeUnsupportedNode, Message: "nil expression"}
	}
	return &TranslateError{
		Code:    ErrCodeUnsupportedNode,
		Message: fmt.Sprintf("unsupported expression type %T", node),
	}
}

func newInvalidPath(p odata.PropertyPath) *TranslateError {
	if p.IsZero() {
		return &TranslateError{Code: ErrCodeUnsupportedNode, Message: "property path is empty"}
	}
	return &TranslateError{
		Code:    ErrCodeUnsupportedNode,
		Message: fmt.Sprintf("property path %q has an empty segment", p.String()),
	}
}

func newUnsupportedLiteral(kind odata.LiteralKind) *TranslateError {
	return &TranslateError{
		Code:    ErrCodeUnsupportedNode,
		Message: fmt.Sprintf("unsupported literal kind %d", int(kind)),
	}
}
