package filterexpr

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ValueKind classifies a decoded operand value.
type ValueKind int

const (
	ValueText ValueKind = iota
	ValueIdent
	ValueBool
	ValueInt
	ValueNumber
	ValueUUID
)

// Value is a typed rendering of an operand token, decoded by content the same
// way the listing backend decodes filter values. Only the field matching Kind
// is meaningful.
type Value struct {
	Kind   ValueKind
	Text   string
	Bool   bool
	Int    int64
	Number decimal.Decimal
	UUID   uuid.UUID
}

// String renders the value the way it would appear as a query parameter.
func (v Value) String() string {
	switch v.Kind {
	case ValueBool:
		return strconv.FormatBool(v.Bool)
	case ValueInt:
		return strconv.FormatInt(v.Int, 10)
	case ValueNumber:
		return v.Number.String()
	case ValueUUID:
		return v.UUID.String()
	}
	return v.Text
}

// TokenValue decodes an operand token into a typed Value.
//
// Bare identifiers true/TRUE/false/FALSE decode to booleans; quoted text never
// does, so "true" the string stays a string. Numbers decode to int64 when
// integral and to an arbitrary-precision decimal otherwise. Text literals in
// canonical UUID form decode to UUIDs, since record ids travel as UUID strings
// and are recognized by content. Everything else stays textual.
func TokenValue(t Token) (Value, error) {
	switch t.Kind {
	case TokenIdentifier:
		switch t.Literal {
		case "true", "TRUE":
			return Value{Kind: ValueBool, Bool: true}, nil
		case "false", "FALSE":
			return Value{Kind: ValueBool, Bool: false}, nil
		}
		return Value{Kind: ValueIdent, Text: t.Literal}, nil
	case TokenNumber:
		if i, err := strconv.ParseInt(t.Literal, 10, 64); err == nil {
			return Value{Kind: ValueInt, Int: i}, nil
		}
		d, err := decimal.NewFromString(t.Literal)
		if err != nil {
			return Value{}, fmt.Errorf("invalid number literal %q: %w", t.Literal, err)
		}
		return Value{Kind: ValueNumber, Number: d}, nil
	case TokenText:
		if len(t.Literal) == 36 {
			if id, err := uuid.Parse(t.Literal); err == nil {
				return Value{Kind: ValueUUID, UUID: id}, nil
			}
		}
		return Value{Kind: ValueText, Text: t.Literal}, nil
	}
	return Value{}, fmt.Errorf("token %q (%s) is not an operand", t.Literal, t.Kind)
}
