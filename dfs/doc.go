// Package dfs implements depth-first traversal of binary trees made of
// core.Node values, plus shape verification.
//
// Key features:
//   - DFS(root, opts...): pre-order and post-order value lists, height, leaf
//     counts per level and unary-node diagnostics
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth
//   - Cancellation via context.Context
//   - VerifyShape(root, height): depth law (exactly height levels) and leaf
//     law (last level childless, every other level fully binary)
//
// Complexity:
//
//   - Time:   O(n) where n is the number of nodes.
//   - Memory: O(h) recursion stack (h = height) plus the recorded orders.
//
// Errors:
//
//   - ErrNilRoot         if the tree is absent.
//   - ErrShapeViolation  if VerifyShape finds a malformed level.
//   - context.Canceled   if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
