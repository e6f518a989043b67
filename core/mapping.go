package core

import (
	"encoding/json"
	"math"
)

// Mapping is the dynamic key-value node form with keys KeyValue, KeyLeft and
// KeyRight. Children are stored as Node values; a missing key and a nil value
// are equivalent.
type Mapping map[string]any

// NewMapping returns a leaf Mapping holding v, with explicit nil children.
func NewMapping(v int64) Mapping {
	return Mapping{KeyValue: v, KeyLeft: nil, KeyRight: nil}
}

// Value implements Node. Integer values of other widths are widened and
// json.Number is parsed exactly. A float64 (plain json.Unmarshal) is exact
// only up to 2^53 and saturates outside the int64 range. A missing or
// non-numeric value reads as 0.
func (m Mapping) Value() int64 {
	switch v := m[KeyValue].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		f, err := v.Float64()
		if err != nil {
			return 0
		}

		return floatToInt64(f)
	case float64:
		return floatToInt64(v)
	}

	return 0
}

// floatToInt64 truncates f, saturating at the int64 bounds. float64(MaxInt64)
// rounds up to 2^63, which int64() would turn into MinInt64.
func floatToInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}

	return int64(f)
}

// Left implements Node.
func (m Mapping) Left() Node { return m.child(KeyLeft) }

// Right implements Node.
func (m Mapping) Right() Node { return m.child(KeyRight) }

// SetLeft implements Node.
func (m Mapping) SetLeft(child Node) { m[KeyLeft] = present(child) }

// SetRight implements Node.
func (m Mapping) SetRight(child Node) { m[KeyRight] = present(child) }

func (m Mapping) child(key string) Node {
	switch c := m[key].(type) {
	case Node:
		return present(c)
	case map[string]any:
		// plain maps (e.g. decoded JSON) are read as Mappings; the empty map
		// is the absent marker used by the canonical JSON form
		if len(c) == 0 {
			return nil
		}

		return Mapping(c)
	}

	return nil
}
