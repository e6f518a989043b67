// Package bfs provides breadth-first inspection of binary trees made of
// core.Node values, in either storage form.
//
// What
//
//   - Visit nodes level by level, left child before right child.
//   - Returns a BFSResult containing:
//   - Order: node values in visit sequence
//   - Levels: node values grouped by level (root level first)
//   - Supports an OnVisit hook that may abort the walk with an error.
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Level listings are the natural way to state expected trees
//     ([[4], [16 5], [64 17 20 6], ...]) in tests and reports.
//   - Width per level is the auxiliary memory bound of the iterative builder.
//
// Complexity (n = number of nodes, w = widest level)
//
//   - Time:   O(n)
//   - Memory: O(w) for the queue plus O(n) for the result
//
// Usage
//
//	res, err := bfs.BFS(tree, bfs.WithMaxDepth(3))
//	if err != nil {
//	    // ErrNilRoot, ErrOptionViolation, context error or hook error
//	}
//	fmt.Println(res.Levels)
//
// Errors
//
//   - ErrNilRoot          if the tree is absent.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
