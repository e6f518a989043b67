// Package rule defines branch rules: the pair of pure functions that derive a
// node's left and right child values from the node's own value.
//
// What
//
//   - BranchRule holds Left and Right functions (int64 → int64).
//   - VariantFour is the default rule: left(v) = v·4, right(v) = v+1.
//   - Step is the symmetric walk rule: left(v) = v+1, right(v) = v−1.
//   - Linear(lm, la, rm, ra) builds left(v) = lm·v+la, right(v) = rm·v+ra.
//   - New wraps any caller-supplied pair; no domain validation is performed.
//
// Overflow
//
//	Values are int64. The built-in rules saturate at math.MaxInt64 and
//	math.MinInt64 instead of wrapping around, so deep trees built with the
//	multiplicative rule plateau at the bound rather than turning negative.
//	Rules built with New are the caller's responsibility.
//
// Naming
//
//	Lookup resolves registered names ("variant4", "step"); Parse additionally
//	accepts the linear form "lin:lm,la,rm,ra", e.g. "lin:4,0,1,1".
//
// Errors
//
//   - ErrUnknownRule  if a name is not registered.
//   - ErrBadSyntax    if a linear rule text cannot be parsed.
package rule
