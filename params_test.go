package filterexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseParams(t *testing.T, input string) []Param {
	t.Helper()

	groups, err := Parse(input)
	require.NoError(t, err)

	params, err := QueryParams(groups)
	require.NoError(t, err)
	return params
}

func TestQueryParams(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Param
	}{
		{
			name:  "Single comparison",
			input: "x = 3",
			expected: []Param{
				{Key: "filter[$and][0][x][$eq]", Value: "3"},
			},
		},
		{
			name:  "Two OR-ed comparisons",
			input: "x = 3 || x = 4",
			expected: []Param{
				{Key: "filter[$or][0][x][$eq]", Value: "3"},
				{Key: "filter[$or][1][x][$eq]", Value: "4"},
			},
		},
		{
			name:  "Three OR-ed comparisons with a not-equal",
			input: "x = 3 || x = 4 || x != 5",
			expected: []Param{
				{Key: "filter[$or][0][x][$eq]", Value: "3"},
				{Key: "filter[$or][1][x][$eq]", Value: "4"},
				{Key: "filter[$or][2][x][$ne]", Value: "5"},
			},
		},
		{
			name:  "Nested group propagates join types into the path",
			input: "(x = 3 || x = 4) && y != foo",
			expected: []Param{
				{Key: "filter[$and][0][$or][0][x][$eq]", Value: "3"},
				{Key: "filter[$and][0][$or][1][x][$eq]", Value: "4"},
				{Key: "filter[$and][1][y][$ne]", Value: "foo"},
			},
		},
		{
			name:  "AND chain",
			input: "a = 1 && b = 2",
			expected: []Param{
				{Key: "filter[$and][0][a][$eq]", Value: "1"},
				{Key: "filter[$and][1][b][$eq]", Value: "2"},
			},
		},
		{
			name:  "Quoted text value is emitted unquoted",
			input: `status = "active"`,
			expected: []Param{
				{Key: "filter[$and][0][status][$eq]", Value: "active"},
			},
		},
		{
			name:  "Any operator token",
			input: "tags ?~ 'go'",
			expected: []Param{
				{Key: "filter[$and][0][tags][$anyLike]", Value: "go"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mustParseParams(t, tt.input))
		})
	}
}

func TestQueryParamsEmpty(t *testing.T) {
	params, err := QueryParams(nil)
	require.NoError(t, err)
	assert.Nil(t, params)

	groups, err := Parse("")
	require.NoError(t, err)
	params, err = QueryParams(groups)
	require.NoError(t, err)
	assert.Nil(t, params)
}

func TestQueryParamsRejectsUnknownOperator(t *testing.T) {
	groups := ExprGroups{
		{Join: JoinAnd, Item: Expr{
			Left:  Token{Kind: TokenIdentifier, Literal: "x"},
			Op:    SignOp("=="),
			Right: Token{Kind: TokenNumber, Literal: "1"},
		}},
	}

	_, err := QueryParams(groups)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported sign operator")
}

func TestQueryString(t *testing.T) {
	groups, err := Parse(`name = "John Doe" && age > 21`)
	require.NoError(t, err)

	fragment, err := QueryString(groups)
	require.NoError(t, err)
	assert.Equal(t, "filter[$and][0][name][$eq]=John+Doe&filter[$and][1][age][$gt]=21", fragment)
}

func TestQueryStringEmpty(t *testing.T) {
	fragment, err := QueryString(ExprGroups{})
	require.NoError(t, err)
	assert.Equal(t, "", fragment)
}

func TestSignOpQueryTokens(t *testing.T) {
	expected := map[SignOp]string{
		SignEq:       "$eq",
		SignNeq:      "$ne",
		SignLike:     "$like",
		SignNlike:    "$nlike",
		SignLt:       "$lt",
		SignLte:      "$lte",
		SignGt:       "$gt",
		SignGte:      "$gte",
		SignAnyEq:    "$anyEq",
		SignAnyNeq:   "$anyNe",
		SignAnyLike:  "$anyLike",
		SignAnyNlike: "$anyNlike",
		SignAnyLt:    "$anyLt",
		SignAnyLte:   "$anyLte",
		SignAnyGt:    "$anyGt",
		SignAnyGte:   "$anyGte",
	}
	require.Len(t, expected, 16)

	for op, token := range expected {
		got, ok := op.QueryToken()
		require.True(t, ok, "operator %q", op)
		assert.Equal(t, token, got, "operator %q", op)
	}

	_, ok := SignOp("==").QueryToken()
	assert.False(t, ok)
}
