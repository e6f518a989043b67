package rule

import (
	"fmt"
)

// Func derives one child value from its parent's value.
// It must be pure: the same input always yields the same output.
type Func func(v int64) int64

// BranchRule is the pair of child-derivation functions applied independently at
// every node of a tree. The zero value is invalid; see Valid.
type BranchRule struct {
	// Left derives the left child value.
	Left Func
	// Right derives the right child value.
	Right Func

	name string
}

// New builds a rule from caller functions. Nil functions are accepted here and
// reported by Valid, so that consumers decide how to surface the problem.
func New(left, right Func) BranchRule {
	return BranchRule{Left: left, Right: right, name: "custom"}
}

// VariantFour returns the default rule: left(v) = v·4, right(v) = v+1.
func VariantFour() BranchRule {
	return BranchRule{
		Left:  func(v int64) int64 { return satMul(v, 4) },
		Right: func(v int64) int64 { return satAdd(v, 1) },
		name:  NameVariantFour,
	}
}

// Step returns the rule left(v) = v+1, right(v) = v−1.
func Step() BranchRule {
	return BranchRule{
		Left:  func(v int64) int64 { return satAdd(v, 1) },
		Right: func(v int64) int64 { return satAdd(v, -1) },
		name:  NameStep,
	}
}

// Linear returns the rule left(v) = lm·v + la, right(v) = rm·v + ra with
// saturating arithmetic.
func Linear(lm, la, rm, ra int64) BranchRule {
	return BranchRule{
		Left:  func(v int64) int64 { return satAdd(satMul(lm, v), la) },
		Right: func(v int64) int64 { return satAdd(satMul(rm, v), ra) },
		name:  fmt.Sprintf("lin:%d,%d,%d,%d", lm, la, rm, ra),
	}
}

// Valid reports whether both functions are set.
func (r BranchRule) Valid() bool {
	return r.Left != nil && r.Right != nil
}

// Apply returns both child values of v.
func (r BranchRule) Apply(v int64) (left, right int64) {
	return r.Left(v), r.Right(v)
}

// String returns the rule's registered name, its linear form, or "custom".
func (r BranchRule) String() string {
	if r.name == "" {
		return "custom"
	}

	return r.name
}
