package core

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnknownRepresentation is returned by ParseRepresentation for an
// unrecognised tag.
var ErrUnknownRepresentation = errors.New("core: unknown representation")

// Keys used by the Mapping representation.
const (
	KeyValue = "value"
	KeyLeft  = "left"
	KeyRight = "right"
)

// Representation tags a node storage form.
type Representation string

const (
	// RepresentationRecord selects Record nodes.
	RepresentationRecord Representation = "record"
	// RepresentationMapping selects Mapping nodes.
	RepresentationMapping Representation = "mapping"
)

// Valid reports whether r is one of the two supported forms.
func (r Representation) Valid() bool {
	return r == RepresentationRecord || r == RepresentationMapping
}

// String implements fmt.Stringer.
func (r Representation) String() string {
	return string(r)
}

// ParseRepresentation resolves a tag, accepting "dataclass" for record and
// "dict" for mapping.
func ParseRepresentation(s string) (Representation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "record", "dataclass":
		return RepresentationRecord, nil
	case "mapping", "dict", "map":
		return RepresentationMapping, nil
	}

	return "", errors.Wrapf(ErrUnknownRepresentation, "%q", s)
}

// Node is the capability set every tree node exposes, regardless of storage.
//
// Left and Right return nil for an absent child. SetLeft and SetRight replace
// a child; passing nil detaches it.
type Node interface {
	Value() int64
	Left() Node
	Right() Node
	SetLeft(child Node)
	SetRight(child Node)
}

// NewNode returns a childless node of the given representation, or nil if the
// representation is not supported.
func NewNode(r Representation, v int64) Node {
	switch r {
	case RepresentationRecord:
		return NewRecord(v)
	case RepresentationMapping:
		return NewMapping(v)
	}

	return nil
}

// IsAbsent reports whether n denotes "no node": a nil interface, or a nil
// pointer or map of one of the package's concrete types.
func IsAbsent(n Node) bool {
	switch t := n.(type) {
	case nil:
		return true
	case *Record:
		return t == nil
	case Mapping:
		return t == nil
	case *Canonical:
		return t == nil
	}

	return false
}
