package filterexpr

import (
	"regexp"
	"strings"
)

var (
	identifierRegex = regexp.MustCompile(`^[@#_]?[\w.:]*\w$`)

	// The exponent segment is deliberately unsigned ("1e-5" is rejected);
	// downstream consumers depend on the exact accepted set.
	numberRegex = regexp.MustCompile(`^[\-]?[0-9]+(e[0-9]+)?(\.[0-9]+)?$`)
)

// Scanner splits a filter expression into classified tokens, one per Scan call.
type Scanner struct {
	input     []rune
	pos       int
	lastStart int
}

// NewScanner creates a Scanner over input with the cursor at offset 0.
func NewScanner(input string) *Scanner {
	return &Scanner{input: []rune(input)}
}

// Pos returns the current cursor offset.
func (s *Scanner) Pos() int {
	return s.pos
}

// LastStart returns the offset at which the most recently scanned token began.
func (s *Scanner) LastStart() int {
	return s.lastStart
}

// read returns the rune at the cursor and advances past it.
func (s *Scanner) read() (rune, bool) {
	if s.pos >= len(s.input) {
		return 0, false
	}
	ch := s.input[s.pos]
	s.pos++
	return ch, true
}

// unread steps the cursor back by exactly one rune.
func (s *Scanner) unread() {
	if s.pos > 0 {
		s.pos--
	}
}

// errorf builds a ParseError anchored at the start of the current token.
func (s *Scanner) errorf(format string, args ...any) *ParseError {
	return newParseError(s.lastStart, format, args...)
}

// Scan returns the next token, advancing the cursor past it. The end of the
// input is reported as a TokenEOF token, not an error. Malformed tokens are
// returned with both their attempted kind and Err set.
//
// Classification is by first rune, checked in this order because the classes
// overlap (a '-' starts a number but is not a letter).
func (s *Scanner) Scan() Token {
	s.lastStart = s.pos

	ch, ok := s.read()
	if !ok {
		return Token{Kind: TokenEOF}
	}
	s.unread()

	switch {
	case isWhitespaceRune(ch):
		return s.scanWhitespace()
	case isGroupStartRune(ch):
		return s.scanGroup()
	case isIdentifierStartRune(ch):
		return s.scanIdentifier()
	case isNumberStartRune(ch):
		return s.scanNumber()
	case isTextStartRune(ch):
		return s.scanText(false)
	case isSignStartRune(ch):
		return s.scanSign()
	case isJoinStartRune(ch):
		return s.scanJoin()
	case isCommentStartRune(ch):
		return s.scanComment()
	}

	s.read()
	return Token{
		Kind:    TokenUnexpected,
		Literal: string(ch),
		Err:     s.errorf("unexpected character %q", string(ch)),
	}
}

// scanWhitespace consumes a contiguous run of whitespace runes.
func (s *Scanner) scanWhitespace() Token {
	var buf strings.Builder

	for {
		ch, ok := s.read()
		if !ok {
			break
		}
		if !isWhitespaceRune(ch) {
			s.unread()
			break
		}
		buf.WriteRune(ch)
	}

	return Token{Kind: TokenWhitespace, Literal: buf.String()}
}

// scanIdentifier consumes an identifier and post-validates it against the
// identifier pattern (optional single @/#/_ prefix, word characters plus '.'
// and ':', ending in a word character).
func (s *Scanner) scanIdentifier() Token {
	var buf strings.Builder

	for {
		ch, ok := s.read()
		if !ok {
			break
		}
		if !isIdentifierStartRune(ch) && !isDigitRune(ch) && ch != '.' && ch != ':' {
			s.unread()
			break
		}
		buf.WriteRune(ch)
	}

	t := Token{Kind: TokenIdentifier, Literal: buf.String()}
	if !identifierRegex.MatchString(t.Literal) {
		t.Err = s.errorf("invalid identifier %q", t.Literal)
	}
	return t
}

// scanNumber consumes a number literal and post-validates it against the
// number pattern.
func (s *Scanner) scanNumber() Token {
	var buf strings.Builder

	// A '-' is only valid as the very first rune, so consume it up front.
	ch, _ := s.read()
	buf.WriteRune(ch)

	for {
		ch, ok := s.read()
		if !ok {
			break
		}
		if !isDigitRune(ch) && ch != '.' && ch != 'e' {
			s.unread()
			break
		}
		buf.WriteRune(ch)
	}

	t := Token{Kind: TokenNumber, Literal: buf.String()}
	if !numberRegex.MatchString(t.Literal) {
		t.Err = s.errorf("invalid number %q", t.Literal)
	}
	return t
}

// scanText consumes a quoted text literal. The opening quote rune determines
// the terminator; a quote preceded by a backslash does not terminate. With
// preserveQuotes the literal is returned verbatim including its quotes,
// otherwise the quotes are stripped and escaped quotes unescaped.
func (s *Scanner) scanText(preserveQuotes bool) Token {
	var buf strings.Builder

	quote, _ := s.read()
	buf.WriteRune(quote)

	var prev rune
	terminated := false
	for {
		ch, ok := s.read()
		if !ok {
			break
		}
		buf.WriteRune(ch)
		if ch == quote && prev != '\\' {
			terminated = true
			break
		}
		prev = ch
	}

	t := Token{Kind: TokenText, Literal: buf.String()}
	if !terminated {
		t.Err = s.errorf("unterminated quoted text %s", t.Literal)
		return t
	}

	if !preserveQuotes {
		literal := t.Literal[1 : len(t.Literal)-1]
		t.Literal = strings.ReplaceAll(literal, `\`+string(quote), string(quote))
	}
	return t
}

// scanSign consumes a maximal run of sign runes and validates it against the
// closed operator set.
func (s *Scanner) scanSign() Token {
	var buf strings.Builder

	for {
		ch, ok := s.read()
		if !ok {
			break
		}
		if !isSignStartRune(ch) {
			s.unread()
			break
		}
		buf.WriteRune(ch)
	}

	t := Token{Kind: TokenSign, Literal: buf.String()}
	if !isSignOp(t.Literal) {
		t.Err = s.errorf("invalid sign operator %q", t.Literal)
	}
	return t
}

// scanJoin consumes a maximal run of join runes and validates it against &&/||.
func (s *Scanner) scanJoin() Token {
	var buf strings.Builder

	for {
		ch, ok := s.read()
		if !ok {
			break
		}
		if !isJoinStartRune(ch) {
			s.unread()
			break
		}
		buf.WriteRune(ch)
	}

	t := Token{Kind: TokenJoin, Literal: buf.String()}
	if !isJoinOp(t.Literal) {
		t.Err = s.errorf("invalid join operator %q", t.Literal)
	}
	return t
}

// scanComment consumes a // comment up to the end of the line. The literal is
// the comment body with surrounding whitespace trimmed.
func (s *Scanner) scanComment() Token {
	// Comments require two consecutive forward slashes.
	first, _ := s.read()
	second, ok := s.read()
	if !ok || first != '/' || second != '/' {
		if ok {
			s.unread()
		}
		return Token{Kind: TokenComment, Err: s.errorf("invalid comment")}
	}

	var buf strings.Builder
	for {
		ch, ok := s.read()
		if !ok || ch == '\n' {
			break
		}
		buf.WriteRune(ch)
	}

	return Token{Kind: TokenComment, Literal: strings.TrimSpace(buf.String())}
}

// scanGroup consumes a parenthesized group up to its matching closing bracket
// and returns the raw contents between the outer brackets. Quoted text inside
// the group is scanned with quotes preserved so that brackets within string
// literals do not affect the depth tracking.
func (s *Scanner) scanGroup() Token {
	// Skip the opening bracket.
	s.read()

	var buf strings.Builder
	depth := 1
	for depth > 0 {
		ch, ok := s.read()
		if !ok {
			break
		}
		switch {
		case isGroupStartRune(ch):
			depth++
			buf.WriteRune(ch)
		case isTextStartRune(ch):
			s.unread()
			inner := s.scanText(true)
			buf.WriteString(inner.Literal)
			if inner.Err != nil {
				return Token{Kind: TokenGroup, Literal: buf.String(), Err: inner.Err}
			}
		case ch == ')':
			depth--
			if depth > 0 {
				buf.WriteRune(ch)
			}
		default:
			buf.WriteRune(ch)
		}
	}

	t := Token{Kind: TokenGroup, Literal: buf.String()}
	if depth > 0 {
		t.Err = s.errorf("invalid formatted group, missing %d closing bracket(s)", depth)
	}
	return t
}

func isWhitespaceRune(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n'
}

func isLetterRune(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigitRune(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentifierStartRune(ch rune) bool {
	return isLetterRune(ch) || ch == '_' || ch == '@' || ch == '#'
}

func isNumberStartRune(ch rune) bool {
	return ch == '-' || isDigitRune(ch)
}

func isTextStartRune(ch rune) bool {
	return ch == '\'' || ch == '"'
}

func isSignStartRune(ch rune) bool {
	return ch == '=' || ch == '?' || ch == '!' || ch == '>' || ch == '<' || ch == '~'
}

func isJoinStartRune(ch rune) bool {
	return ch == '&' || ch == '|'
}

func isGroupStartRune(ch rune) bool {
	return ch == '('
}

func isCommentStartRune(ch rune) bool {
	return ch == '/'
}
