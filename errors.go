package filterexpr

import "fmt"

// Messages for the two end-of-input failure modes. Callers string-match these.
const (
	errMsgEmptyExpr      = "empty filter expression or invalid syntax"
	errMsgIncompleteExpr = "invalid or incomplete filter expression"
)

// ParseError describes why a filter expression was rejected. Position is the
// 0-based offset into the outermost input at which the offending token began
// (or the input length for errors raised at end of input).
type ParseError struct {
	Message  string
	Position int
}

// Error renders the message with its " at position N" suffix. The suffix is
// part of the public contract; callers string-match it in tests.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at position %d", e.Message, e.Position)
}

func newParseError(pos int, format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Position: pos}
}

// offsetBy returns a copy of the error with its position shifted into the
// coordinate space of an enclosing input string.
func (e *ParseError) offsetBy(offset int) *ParseError {
	return &ParseError{Message: e.Message, Position: e.Position + offset}
}
