package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Canonical is the normalised form of a tree: a value plus two optional
// canonical subtrees. A nil *Canonical is the empty form.
type Canonical struct {
	Val  int64
	L, R *Canonical
}

// Canonicalize converts any Node into its canonical form. Absent input yields
// nil. The walk uses only the Node interface.
func Canonicalize(n Node) *Canonical {
	if IsAbsent(n) {
		return nil
	}

	return &Canonical{
		Val: n.Value(),
		L:   Canonicalize(n.Left()),
		R:   Canonicalize(n.Right()),
	}
}

// Value implements Node.
func (c *Canonical) Value() int64 { return c.Val }

// Left implements Node.
func (c *Canonical) Left() Node {
	if c.L == nil {
		return nil
	}

	return c.L
}

// Right implements Node.
func (c *Canonical) Right() Node {
	if c.R == nil {
		return nil
	}

	return c.R
}

// SetLeft implements Node; the child is canonicalised on the way in.
func (c *Canonical) SetLeft(child Node) { c.L = Canonicalize(child) }

// SetRight implements Node; the child is canonicalised on the way in.
func (c *Canonical) SetRight(child Node) { c.R = Canonicalize(child) }

// Equal reports structural and value equality. Two empty forms are equal.
func (c *Canonical) Equal(o *Canonical) bool {
	if c == nil || o == nil {
		return c == nil && o == nil
	}

	return c.Val == o.Val && c.L.Equal(o.L) && c.R.Equal(o.R)
}

// Depth returns the number of levels; the empty form has depth 0.
func (c *Canonical) Depth() int {
	if c == nil {
		return 0
	}

	return 1 + max(c.L.Depth(), c.R.Depth())
}

// Size returns the number of nodes.
func (c *Canonical) Size() int {
	if c == nil {
		return 0
	}

	return 1 + c.L.Size() + c.R.Size()
}

// Map returns the nested map form {"value": v, "left": {...}, "right": {...}},
// with an empty map standing for an absent child.
func (c *Canonical) Map() map[string]any {
	if c == nil {
		return map[string]any{}
	}

	return map[string]any{
		KeyValue: c.Val,
		KeyLeft:  c.L.Map(),
		KeyRight: c.R.Map(),
	}
}

// MarshalJSON encodes the nested map form.
func (c *Canonical) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Map())
}

// String renders the tree as (v L R) with "()" for the empty form.
func (c *Canonical) String() string {
	var b strings.Builder
	c.format(&b)

	return b.String()
}

func (c *Canonical) format(b *strings.Builder) {
	if c == nil {
		b.WriteString("()")

		return
	}
	if c.L == nil && c.R == nil {
		fmt.Fprintf(b, "(%d)", c.Val)

		return
	}
	fmt.Fprintf(b, "(%d ", c.Val)
	c.L.format(b)
	b.WriteByte(' ')
	c.R.format(b)
	b.WriteByte(')')
}

// Equal canonicalises both trees and compares them.
func Equal(a, b Node) bool {
	return Canonicalize(a).Equal(Canonicalize(b))
}

// DecodeMapping parses the JSON form written by MarshalJSON back into a
// Mapping tree. Numbers are kept as json.Number, so every int64 survives.
func DecodeMapping(data []byte) (Mapping, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, errors.Wrap(err, "core: decode mapping")
	}

	return Mapping(m), nil
}
