package querydoc

import (
	"errors"
	"fmt"

	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

// DocumentError describes a malformed query document.
type DocumentError struct {
	// Path is the document file, when loaded from disk.
	Path string

	// Line and Column locate the offending node (1-based), or are zero when
	// the problem has no single position.
	Line   int
	Column int

	Message string
}

func (e *DocumentError) Error() string {
	loc := e.Path
	if e.Line > 0 {
		loc = fmt.Sprintf("%d:%d", e.Line, e.Column)
		if e.Path != "" {
			loc = e.Path + ":" + loc
		}
	}
	if loc == "" {
		return e.Message
	}
	return loc + ": " + e.Message
}

// IsDocumentError returns true if err is (or wraps) a DocumentError.
func IsDocumentError(err error) bool {
	var de *DocumentError
	return errors.As(err, &de)
}

func nodeError(n *yaml.Node, format string, args ...any) *DocumentError {
	return &DocumentError{
		Line:    n.Line,
		Column:  n.Column,
		Message: fmt.Sprintf(format, args...),
	}
}

// withPath stamps path on a DocumentError, or wraps any other error in one.
func withPath(err error, path string) error {
	var de *DocumentError
	if errors.As(err, &de) {
		de.Path = path
		return de
	}
	return &DocumentError{Path: path, Message: err.Error()}
}

// cueError extracts the first positioned error from a CUE evaluation error.
func cueError(path string, err error) *DocumentError {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &DocumentError{Path: path, Message: err.Error()}
	}

	first := errs[0]
	de := &DocumentError{Path: path, Message: first.Error()}
	if positions := cueerrors.Positions(first); len(positions) > 0 && positions[0].IsValid() {
		de.Line = positions[0].Line()
		de.Column = positions[0].Column()
	}
	return de
}
