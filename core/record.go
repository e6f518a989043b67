package core

// Record is the fixed-shape node form.
//
// The zero Record is a leaf with value 0. Builders may allocate Records in a
// contiguous slice and link them by pointer.
type Record struct {
	// Val is the node's value.
	Val int64
	// L and R are the children; nil means absent.
	L, R Node
}

// NewRecord returns a leaf Record holding v.
func NewRecord(v int64) *Record {
	return &Record{Val: v}
}

// Value implements Node.
func (r *Record) Value() int64 { return r.Val }

// Left implements Node.
func (r *Record) Left() Node { return present(r.L) }

// Right implements Node.
func (r *Record) Right() Node { return present(r.R) }

// SetLeft implements Node.
func (r *Record) SetLeft(child Node) { r.L = present(child) }

// SetRight implements Node.
func (r *Record) SetRight(child Node) { r.R = present(child) }

// present normalises typed-nil children to an untyped nil.
func present(n Node) Node {
	if IsAbsent(n) {
		return nil
	}

	return n
}
