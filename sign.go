package filterexpr

// SignOp is a comparison operator literal.
type SignOp string

// The 16 recognized comparison operators. The "Any" forms are prefixed with
// '?' and apply the comparison to each element of an array value.
const (
	SignEq    SignOp = "="
	SignNeq   SignOp = "!="
	SignLike  SignOp = "~"
	SignNlike SignOp = "!~"
	SignLt    SignOp = "<"
	SignLte   SignOp = "<="
	SignGt    SignOp = ">"
	SignGte   SignOp = ">="

	SignAnyEq    SignOp = "?="
	SignAnyNeq   SignOp = "?!="
	SignAnyLike  SignOp = "?~"
	SignAnyNlike SignOp = "?!~"
	SignAnyLt    SignOp = "?<"
	SignAnyLte   SignOp = "?<="
	SignAnyGt    SignOp = "?>"
	SignAnyGte   SignOp = "?>="
)

// signQueryTokens maps every valid operator to its backend query parameter
// token. The map doubles as the closed set of valid sign literals.
var signQueryTokens = map[SignOp]string{
	SignEq:    "$eq",
	SignNeq:   "$ne",
	SignLike:  "$like",
	SignNlike: "$nlike",
	SignLt:    "$lt",
	SignLte:   "$lte",
	SignGt:    "$gt",
	SignGte:   "$gte",

	SignAnyEq:    "$anyEq",
	SignAnyNeq:   "$anyNe",
	SignAnyLike:  "$anyLike",
	SignAnyNlike: "$anyNlike",
	SignAnyLt:    "$anyLt",
	SignAnyLte:   "$anyLte",
	SignAnyGt:    "$anyGt",
	SignAnyGte:   "$anyGte",
}

// QueryToken returns the backend query parameter token for the operator
// ("$eq" for "=", "$ne" for "!=", ...). ok is false for unknown operators.
func (op SignOp) QueryToken() (string, bool) {
	token, ok := signQueryTokens[op]
	return token, ok
}

func isSignOp(literal string) bool {
	_, ok := signQueryTokens[SignOp(literal)]
	return ok
}

// JoinOp combines consecutive comparisons or groups. The first entry of any
// group list carries the implicit default JoinAnd.
type JoinOp string

const (
	JoinAnd JoinOp = "&&"
	JoinOr  JoinOp = "||"
)

func isJoinOp(literal string) bool {
	return literal == string(JoinAnd) || literal == string(JoinOr)
}
