package schema

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Fields is the value form of a decoded record: a mapping from field
// name to value whose insertion order is significant. Field order is the
// wire order, so iterating a decoded Fields replays the byte layout.
type Fields = orderedmap.OrderedMap[string, any]

// NewFields returns an empty ordered field mapping.
func NewFields() *Fields {
	return orderedmap.New[string, any]()
}

// FieldsFromPairs builds a Fields from alternating key/value arguments,
// preserving the given order. It panics on a non-string key; it is a
// construction helper for tests and example schemas.
func FieldsFromPairs(pairs ...any) *Fields {
	if len(pairs)%2 != 0 {
		panic("schema: FieldsFromPairs requires an even number of arguments")
	}
	f := NewFields()
	for i := 0; i < len(pairs); i += 2 {
		f.Set(pairs[i].(string), pairs[i+1])
	}
	return f
}

// MergeFields appends every pair of src to dst in order and returns dst.
func MergeFields(dst, src *Fields) *Fields {
	for pair := src.Oldest(); pair != nil; pair = pair.Next() {
		dst.Set(pair.Key, pair.Value)
	}
	return dst
}

// fieldLookup reads a record input that may be ordered or a plain map.
// Records accept unordered input: the schema's child order, not the
// input's, dictates the wire order.
func fieldLookup(value any) (func(name string) (any, bool), error) {
	switch m := value.(type) {
	case *Fields:
		return func(name string) (any, bool) { return m.Get(name) }, nil
	case map[string]any:
		return func(name string) (any, bool) {
			v, ok := m[name]
			return v, ok
		}, nil
	default:
		return nil, fmt.Errorf("record input must be *Fields or map[string]any, got %T", value)
	}
}

// equalScalar compares two scalar values for enum matching, treating
// all integer representations of the same number as equal.
func equalScalar(a, b any) bool {
	if a == b {
		return true
	}
	ai, aInt := normalizeInt(a)
	bi, bInt := normalizeInt(b)
	if aInt && bInt {
		return ai == bi
	}
	return false
}

// normalizeInt widens any integer value to int64 where it fits.
func normalizeInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint:
		if uint64(n) > 1<<63-1 {
			return 0, false
		}
		return int64(n), true
	case uint64:
		if n > 1<<63-1 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}
