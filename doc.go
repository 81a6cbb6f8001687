// Package filterexpr implements the filter expression language used to build
// record list and search queries.
//
// A filter is a sequence of comparisons joined with && or ||, with optional
// parenthesized sub-expressions and // line comments:
//
//	(status = "active" || status = "pending") && age > 21
//
// Parse compiles such an expression into an ordered ExprGroups tree and
// QueryParams flattens that tree into the filter[...]=value query parameters
// understood by the record listing backend.
package filterexpr
