package filterexpr

// Expr is a single left-operator-right comparison. Operand tokens are always
// of kind TokenIdentifier, TokenText or TokenNumber.
type Expr struct {
	Left  Token
	Op    SignOp
	Right Token
}

// IsZero reports whether the expression has no operands and no operator set.
// Zero expressions exist only while a parse is in flight; Parse never returns
// one in its result.
func (e Expr) IsZero() bool {
	return e.Op == "" && e.Left == (Token{}) && e.Right == (Token{})
}

func (Expr) exprGroupItem() {}

// ExprGroupItem is the payload of an ExprGroup: either a single Expr or a
// nested ExprGroups produced by a parenthesized sub-expression. The interface
// is sealed; no other implementations exist.
type ExprGroupItem interface {
	exprGroupItem()
}

// ExprGroups is an ordered list of joined expression groups, as returned by Parse.
type ExprGroups []ExprGroup

func (ExprGroups) exprGroupItem() {}

// ExprGroup pairs a join operator with a single comparison or a nested group
// list. Grouping has no AST node of its own; a parenthesized sub-expression is
// simply a group whose item is itself a list of groups.
type ExprGroup struct {
	Join JoinOp
	Item ExprGroupItem
}
