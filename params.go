package filterexpr

import (
	"fmt"
	"net/url"
	"strings"
)

// Param is one backend query parameter produced from a parsed filter.
type Param struct {
	Key   string
	Value string
}

const paramPrefix = "filter"

// Combinator path segments. One per JoinOp; a whole nesting level shares a
// single combinator because the parser rejects mixed joins.
const (
	combAnd = "$and"
	combOr  = "$or"
)

// QueryParams flattens a parsed filter into the backend's query parameters.
// Each comparison becomes one key of the form
//
//	filter[$and][0][column][$eq]
//
// with the combinator and index segments repeated per nesting level and the
// comparison's right-hand literal as the value. The key shape is shared with
// the server and the client SDKs and must not change.
func QueryParams(groups ExprGroups) ([]Param, error) {
	if len(groups) == 0 {
		return nil, nil
	}
	return appendGroupParams(nil, paramPrefix, groups)
}

func appendGroupParams(params []Param, prefix string, groups ExprGroups) ([]Param, error) {
	// The first entry always carries the implicit AND default, so the level's
	// combinator is decided by the joins of the remaining entries.
	comb := combAnd
	if len(groups) > 1 && groups[1].Join == JoinOr {
		comb = combOr
	}

	for i, group := range groups {
		groupPrefix := fmt.Sprintf("%s[%s][%d]", prefix, comb, i)

		switch item := group.Item.(type) {
		case Expr:
			opToken, ok := item.Op.QueryToken()
			if !ok {
				return nil, fmt.Errorf("unsupported sign operator %q", item.Op)
			}
			params = append(params, Param{
				Key:   fmt.Sprintf("%s[%s][%s]", groupPrefix, item.Left.Literal, opToken),
				Value: item.Right.Literal,
			})
		case ExprGroups:
			var err error
			params, err = appendGroupParams(params, groupPrefix, item)
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unsupported expression group item %T", group.Item)
		}
	}

	return params, nil
}

// QueryString renders the filter as a query-string fragment without a leading
// "&", with values URL-escaped.
func QueryString(groups ExprGroups) (string, error) {
	params, err := QueryParams(groups)
	if err != nil {
		return "", err
	}

	pairs := make([]string, 0, len(params))
	for _, p := range params {
		pairs = append(pairs, p.Key+"="+url.QueryEscape(p.Value))
	}
	return strings.Join(pairs, "&"), nil
}
