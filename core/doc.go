// Package core defines the tree node capability set shared by every builder
// and inspector, its two concrete storage forms, and the canonical form used
// for equality and presentation.
//
// What
//
//   - Node: {Value, Left, Right, SetLeft, SetRight}. A child is either absent
//     (nil) or a node owned exclusively by its parent; trees are acyclic by
//     construction.
//   - Record: fixed-shape node with three named slots (Val, L, R).
//   - Mapping: dynamic key-value node with keys "value", "left", "right".
//     A missing child key and a nil child value both mean "absent".
//   - Canonical: the normalised (value, left, right) triple. *Canonical also
//     implements Node, so canonicalising a canonical tree yields an equal tree.
//
// Representation tags
//
//	RepresentationRecord ("record") and RepresentationMapping ("mapping").
//	ParseRepresentation also accepts "dataclass" and "dict" as aliases.
//
// Canonicalisation
//
//	Canonicalize walks any Node through the interface only, so both storage
//	forms (and mixes of them) produce the same Canonical value. An absent tree
//	canonicalises to nil, the empty form; its JSON encoding is {}.
//
// Complexity (n = number of nodes, h = height)
//
//   - Canonicalize, Equal, Size: O(n) time, O(h) stack.
//   - Depth: O(n) time, O(h) stack.
package core
