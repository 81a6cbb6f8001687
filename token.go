package filterexpr

// TokenKind classifies a single lexical unit of a filter expression.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenWhitespace
	TokenJoin
	TokenSign
	TokenIdentifier
	TokenNumber
	TokenText
	TokenGroup
	TokenComment
	TokenUnexpected
)

// String returns a human readable name for the token kind, as used in parse
// error messages.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenWhitespace:
		return "whitespace"
	case TokenJoin:
		return "join"
	case TokenSign:
		return "sign"
	case TokenIdentifier:
		return "identifier"
	case TokenNumber:
		return "number"
	case TokenText:
		return "text"
	case TokenGroup:
		return "group"
	case TokenComment:
		return "comment"
	case TokenUnexpected:
		return "unexpected"
	}
	return "unknown"
}

// Token is one lexical unit produced by the Scanner.
//
// For TokenText the literal is unquoted and unescaped unless the scanner was
// asked to preserve quotes; for TokenGroup it is the raw contents between the
// outer brackets. Err is set alongside the attempted kind when the token is
// malformed, so the parser can report a precise message while still knowing
// what was being scanned.
type Token struct {
	Kind    TokenKind
	Literal string
	Err     error
}

// isOperand reports whether the token may appear on either side of a sign operator.
func (t Token) isOperand() bool {
	return t.Kind == TokenIdentifier || t.Kind == TokenNumber || t.Kind == TokenText
}
