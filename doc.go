// Package bintree is a small toolkit for generating full binary trees from a
// root value and a branch rule, and for measuring how the construction
// strategies compare.
//
// Packages:
//
//	rule/    - branch rules: VariantFour (v·4, v+1), Step (v+1, v−1), Linear, custom
//	core/    - the Node capability interface, Record and Mapping storage forms,
//	           and the Canonical form used for comparison and JSON output
//	builder/ - Recursive, Iterative and Stack (arena) builders, Build/Tree dispatch
//	bfs/     - level-order inspection (Levels, OnVisit hooks, depth limits)
//	dfs/     - pre/post-order inspection and VerifyShape (depth and leaf laws)
//	bench/   - median-of-N harness with an injectable clock and HDR percentiles
//	report/  - tables, single-call summaries and ASCII charts
//
// Commands:
//
//	cmd/treegen - `treegen tree`, `treegen bench`, `treegen rules`
//	examples/   - narrated scenarios
//
// Quick start:
//
//	root, err := builder.Build(builder.StrategyIterative, 4, 4)
//	if err != nil { /* errors.Is(err, builder.ErrInvalidHeight) ... */ }
//	fmt.Println(bfs.Levels(root)) // [[4] [16 5] [64 17 20 6] [256 65 68 18 80 21 24 7]]
package bintree
