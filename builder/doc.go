// Package builder generates full binary trees from a root value and a branch
// rule.
//
// A tree of height h has 2^h − 1 nodes: every node above level h has exactly
// two children, and every node on level h is a leaf. Child values derive
// from the parent value alone:
//
//	left  = rule.Left(parent)
//	right = rule.Right(parent)
//
// The default rule is rule.VariantFour (left = v·4, right = v+1).
//
// Strategies (all share the Func signature and produce Equal trees):
//
//   - Recursive: plain depth-first recursion; the reference implementation.
//     Call depth grows with h.
//   - Iterative: breadth-first with a FIFO queue of (node, level); auxiliary
//     memory bounded by the widest level.
//   - Stack: depth-first over a pre-sized arena of 2^h − 1 heap-indexed slots
//     with an explicit stack; Record nodes share one contiguous allocation.
//     DefaultStrategy.
//
// Options:
//
//   - WithRule(r) / WithBranches(left, right): branch rule, default VariantFour.
//   - WithRepresentation(r): core.RepresentationRecord (default) or
//     core.RepresentationMapping.
//   - WithMaxHeight(n): height cap, default DefaultMaxHeight (24), at most
//     AbsoluteMaxHeight (32).
//
// Errors (checked in this order, nil node on failure):
//
//   - ErrOptionViolation        invalid option value
//   - ErrInvalidHeight          height < 1
//   - ErrHeightLimit            height above the cap (also ErrInvalidHeight)
//   - ErrInvalidRepresentation  unknown representation tag
//   - ErrRuleFailure            the rule panicked
//   - ErrSubtreeConstruction    Recursive only: a child subtree failed
//   - ErrUnknownStrategy        Build with an unknown Strategy
//
// Builders hold no shared state and are safe for concurrent use as long as
// the supplied rule is.
//
// Example:
//
//	root, err := builder.Build(builder.StrategyIterative, 3, 4,
//		builder.WithRepresentation(core.RepresentationMapping))
//	if err != nil { /* handle */ }
//	fmt.Println(bfs.Levels(root)) // [[4] [16 5] [64 17 20 6]]
package builder
