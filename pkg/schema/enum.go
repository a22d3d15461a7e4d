package schema

import (
	"bytes"
	"fmt"
)

// EnumEntry pairs a scalar value with a fixed byte literal. Matching is
// bidirectional: by value when encoding, by byte prefix when decoding.
type EnumEntry struct {
	base
	value   any
	literal []byte
}

// NewEnumEntry builds an entry mapping the scalar value to the literal
// bytes.
func NewEnumEntry(value any, literal []byte) *EnumEntry {
	return &EnumEntry{
		base: base{
			kind:     KindEnumEntry,
			typeName: KindEnumEntry,
		},
		value:   value,
		literal: append([]byte(nil), literal...),
	}
}

// EntryValue returns the entry's scalar value.
func (e *EnumEntry) EntryValue() any { return e.value }

// Literal returns the entry's byte signature.
func (e *EnumEntry) Literal() []byte { return e.literal }

// MatchBytes reports whether the literal is a prefix of buf[offset:].
func (e *EnumEntry) MatchBytes(buf []byte, offset int) bool {
	if offset < 0 || offset+len(e.literal) > len(buf) {
		return false
	}
	return bytes.Equal(buf[offset:offset+len(e.literal)], e.literal)
}

// MatchValue reports whether v equals the entry's scalar.
func (e *EnumEntry) MatchValue(v any) bool {
	if b, ok := v.([]byte); ok {
		eb, eok := e.value.([]byte)
		return eok && bytes.Equal(b, eb)
	}
	return equalScalar(v, e.value)
}

// Encode emits the literal bytes regardless of the supplied value.
func (e *EnumEntry) Encode(value any, args ...int) ([]byte, error) {
	return append([]byte(nil), e.literal...), nil
}

// Decode returns the entry's scalar and the literal's length. It does
// not re-check the prefix; Enum has already matched it.
func (e *EnumEntry) Decode(buf []byte, offset int, args ...int) (any, int, error) {
	return e.value, len(e.literal), nil
}

// Enum is a closed sum over byte-literal tags: an ordered entry list
// with an optional default node for values and bytes no entry covers.
//
// Entry order is significant in both directions: the first match wins.
// When literals share prefixes, the schema author must order the
// longer literal before any entry whose literal is a byte-prefix of it.
type Enum struct {
	base
	entries  []*EnumEntry
	fallback Node
}

// NewEnum builds an enum from its ordered entries and an optional
// default node (nil for none). The default receives no extra arguments:
// (value) on encode and (buf, offset) on decode.
func NewEnum(name string, entries []*EnumEntry, fallback Node) *Enum {
	children := make([]Node, len(entries))
	for i, e := range entries {
		children[i] = e
	}
	return &Enum{
		base: base{
			kind:     KindEnum,
			typeName: KindEnum,
			name:     name,
			children: children,
		},
		entries:  entries,
		fallback: fallback,
	}
}

// Entries returns the ordered entry list.
func (e *Enum) Entries() []*EnumEntry { return e.entries }

// Fallback returns the default node, or nil.
func (e *Enum) Fallback() Node { return e.fallback }

// Encode scans entries in order and emits the first value match's
// literal; with no match the default node encodes the value.
func (e *Enum) Encode(value any, args ...int) ([]byte, error) {
	value = e.resolveValue(value)
	for _, entry := range e.entries {
		if entry.MatchValue(value) {
			e.cache = value
			return entry.Encode(value)
		}
	}
	if e.fallback == nil {
		return nil, fmt.Errorf("%w: value %v", ErrEnumFallthrough, value)
	}
	b, err := e.fallback.Encode(value)
	if err != nil {
		return nil, err
	}
	e.cache = value
	return b, nil
}

// Decode scans entries in order and returns the first byte-prefix
// match's scalar; with no match the default node decodes at offset.
func (e *Enum) Decode(buf []byte, offset int, args ...int) (any, int, error) {
	for _, entry := range e.entries {
		if entry.MatchBytes(buf, offset) {
			v, n, err := entry.Decode(buf, offset)
			if err == nil {
				e.cache = v
			}
			return v, n, err
		}
	}
	if e.fallback == nil {
		return nil, 0, fmt.Errorf("%w: no literal at offset %d", ErrEnumFallthrough, offset)
	}
	v, n, err := e.fallback.Decode(buf, offset)
	if err != nil {
		return nil, 0, err
	}
	e.cache = v
	return v, n, nil
}
