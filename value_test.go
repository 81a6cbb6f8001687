package filterexpr

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValue(t *testing.T) {
	tests := []struct {
		name     string
		token    Token
		expected Value
	}{
		{
			name:     "Bare true",
			token:    Token{Kind: TokenIdentifier, Literal: "true"},
			expected: Value{Kind: ValueBool, Bool: true},
		},
		{
			name:     "Bare TRUE",
			token:    Token{Kind: TokenIdentifier, Literal: "TRUE"},
			expected: Value{Kind: ValueBool, Bool: true},
		},
		{
			name:     "Bare false",
			token:    Token{Kind: TokenIdentifier, Literal: "false"},
			expected: Value{Kind: ValueBool, Bool: false},
		},
		{
			name:     "Mixed case stays an identifier",
			token:    Token{Kind: TokenIdentifier, Literal: "True"},
			expected: Value{Kind: ValueIdent, Text: "True"},
		},
		{
			name:     "Column reference",
			token:    Token{Kind: TokenIdentifier, Literal: "@request.auth.id"},
			expected: Value{Kind: ValueIdent, Text: "@request.auth.id"},
		},
		{
			name:     "Integer",
			token:    Token{Kind: TokenNumber, Literal: "42"},
			expected: Value{Kind: ValueInt, Int: 42},
		},
		{
			name:     "Negative integer",
			token:    Token{Kind: TokenNumber, Literal: "-12"},
			expected: Value{Kind: ValueInt, Int: -12},
		},
		{
			name:     "Quoted true stays text",
			token:    Token{Kind: TokenText, Literal: "true"},
			expected: Value{Kind: ValueText, Text: "true"},
		},
		{
			name:     "Plain text",
			token:    Token{Kind: TokenText, Literal: "hello"},
			expected: Value{Kind: ValueText, Text: "hello"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := TokenValue(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestTokenValueDecimals(t *testing.T) {
	value, err := TokenValue(Token{Kind: TokenNumber, Literal: "1.5"})
	require.NoError(t, err)
	require.Equal(t, ValueNumber, value.Kind)
	assert.True(t, value.Number.Equal(decimal.RequireFromString("1.5")))

	value, err = TokenValue(Token{Kind: TokenNumber, Literal: "1e3"})
	require.NoError(t, err)
	require.Equal(t, ValueNumber, value.Kind)
	assert.True(t, value.Number.Equal(decimal.NewFromInt(1000)))
}

func TestTokenValueUUID(t *testing.T) {
	const id = "123e4567-e89b-12d3-a456-426614174000"

	value, err := TokenValue(Token{Kind: TokenText, Literal: id})
	require.NoError(t, err)
	require.Equal(t, ValueUUID, value.Kind)
	assert.Equal(t, uuid.MustParse(id), value.UUID)

	// Close but not a UUID: stays text.
	value, err = TokenValue(Token{Kind: TokenText, Literal: "123e4567-e89b-12d3-a456-42661417400z"})
	require.NoError(t, err)
	assert.Equal(t, ValueText, value.Kind)
}

func TestTokenValueRejectsNonOperands(t *testing.T) {
	for _, token := range []Token{
		{Kind: TokenSign, Literal: "="},
		{Kind: TokenJoin, Literal: "&&"},
		{Kind: TokenGroup, Literal: "a=1"},
		{Kind: TokenEOF},
	} {
		_, err := TokenValue(token)
		require.Error(t, err, "kind %s", token.Kind)
		assert.Contains(t, err.Error(), "not an operand")
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
	}{
		{Value{Kind: ValueBool, Bool: true}, "true"},
		{Value{Kind: ValueInt, Int: -7}, "-7"},
		{Value{Kind: ValueNumber, Number: decimal.RequireFromString("2.5")}, "2.5"},
		{Value{Kind: ValueUUID, UUID: uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")}, "123e4567-e89b-12d3-a456-426614174000"},
		{Value{Kind: ValueText, Text: "abc"}, "abc"},
		{Value{Kind: ValueIdent, Text: "col"}, "col"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.value.String())
	}
}
