package filterexpr

import (
	"context"
	"errors"

	"github.com/querykit/go-filterexpr/internal/observability"
)

// parserState tracks which token the drive loop expects next. The machine is
// deliberately a single flat loop rather than mutually recursive parse
// functions: consecutive comparisons never acquire implicit precedence
// grouping, and a parenthesized group may appear in any state.
type parserState int

const (
	stateBeforeLeftOperand parserState = iota
	stateSign
	stateAfterSign
	stateJoin
)

// Parse compiles a filter expression into an ordered list of expression
// groups. Empty or blank input yields an empty list and no error. Malformed
// input fails with a *ParseError whose position is an absolute 0-based offset
// into text, including for errors raised inside parenthesized sub-expressions.
func Parse(text string) (ExprGroups, error) {
	return parse(text, true)
}

// ParseContext is Parse wrapped in an OpenTelemetry span and parse counter.
// The parse itself is unaffected; with no providers installed both are no-ops.
func ParseContext(ctx context.Context, text string) (ExprGroups, error) {
	ctx, span := observability.StartParse(ctx, len(text))
	groups, err := Parse(text)
	observability.RecordParse(ctx, err)
	observability.EndParse(span, err)
	return groups, err
}

// parse runs the token state machine over text. allowEmpty is true only for
// the top-level call: input with no expressions at all is fine there, while an
// empty parenthesized group is a hard error.
func parse(text string, allowEmpty bool) (ExprGroups, error) {
	result := ExprGroups{}
	scanner := NewScanner(text)

	state := stateBeforeLeftOperand
	join := JoinAnd
	var levelJoin JoinOp
	var expr Expr

	for {
		t := scanner.Scan()
		if t.Kind == TokenEOF {
			break
		}
		if t.Err != nil {
			return nil, t.Err
		}
		if t.Kind == TokenUnexpected {
			return nil, newParseError(scanner.LastStart(), "unexpected token %q (%s)", t.Literal, t.Kind)
		}
		if t.Kind == TokenWhitespace || t.Kind == TokenComment {
			continue
		}

		// A parenthesized group is a complete sub-expression and may stand
		// wherever an operand is expected, regardless of the current state.
		if t.Kind == TokenGroup {
			nested, err := parse(t.Literal, false)
			if err != nil {
				var parseErr *ParseError
				if errors.As(err, &parseErr) {
					// Re-anchor the nested offset to the outer input, just
					// past the opening bracket.
					return nil, parseErr.offsetBy(scanner.LastStart() + 1)
				}
				return nil, err
			}
			if len(nested) > 0 {
				result = append(result, ExprGroup{Join: join, Item: nested})
			}
			state = stateJoin
			continue
		}

		switch state {
		case stateBeforeLeftOperand:
			if !t.isOperand() {
				return nil, newParseError(scanner.LastStart(),
					"expected left operand (identifier, number or quoted text), got %q (%s)", t.Literal, t.Kind)
			}
			expr = Expr{Left: t}
			state = stateSign
		case stateSign:
			if t.Kind != TokenSign {
				return nil, newParseError(scanner.LastStart(),
					"expected a sign operator, got %q (%s)", t.Literal, t.Kind)
			}
			expr.Op = SignOp(t.Literal)
			state = stateAfterSign
		case stateAfterSign:
			if !t.isOperand() {
				return nil, newParseError(scanner.LastStart(),
					"expected right operand (identifier, number or quoted text), got %q (%s)", t.Literal, t.Kind)
			}
			expr.Right = t
			result = append(result, ExprGroup{Join: join, Item: expr})
			expr = Expr{}
			state = stateJoin
		case stateJoin:
			if t.Kind != TokenJoin {
				return nil, newParseError(scanner.LastStart(),
					"expected && or ||, got %q (%s)", t.Literal, t.Kind)
			}
			join = JoinOp(t.Literal)
			// Mixing && and || at one nesting level is ambiguous without
			// explicit parentheses and is rejected outright.
			if levelJoin == "" {
				levelJoin = join
			} else if join != levelJoin {
				return nil, newParseError(scanner.LastStart(),
					"mixed %q and %q joins at the same level require explicit parentheses", JoinAnd, JoinOr)
			}
			state = stateBeforeLeftOperand
		}
	}

	if state == stateJoin && len(result) > 0 {
		return result, nil
	}

	if len(result) == 0 && expr.IsZero() {
		// Nothing was ever parsed. At the top level that is a valid empty
		// filter; inside a group it is an empty sub-expression.
		if allowEmpty && state == stateBeforeLeftOperand {
			return result, nil
		}
		return nil, newParseError(scanner.Pos(), errMsgEmptyExpr)
	}

	return nil, newParseError(scanner.Pos(), errMsgIncompleteExpr)
}
