package schema

import (
	"fmt"
	"reflect"

	"github.com/aretw0/wicker/pkg/codec"
)

// headCount narrows a decoded head integer to a non-negative int.
func headCount(v any) (int, error) {
	switch n := v.(type) {
	case uint64:
		if n > 1<<31-1 {
			return 0, fmt.Errorf("%w: head length %d", codec.ErrUnrepresentable, n)
		}
		return int(n), nil
	case int64:
		if n < 0 || n > 1<<31-1 {
			return 0, fmt.Errorf("%w: head length %d", codec.ErrUnrepresentable, n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: head type decoded to %T, want an integer", codec.ErrUnrepresentable, v)
	}
}

// validateHeadType rejects head types that cannot carry a length: the
// head must be a scalar numeric.
func validateHeadType(headType string) error {
	spec, err := codec.ParseType(headType)
	if err != nil {
		return err
	}
	if spec.Kind != codec.KindNumeric || spec.Array || spec.Format == 'f' {
		return fmt.Errorf("%w: %q is not an integer head type", codec.ErrUnknownType, headType)
	}
	return nil
}

// HeadArray is an array prefixed by an integer head that carries the
// element count. The head may be any integer wire type, including the
// variable-length forms.
type HeadArray struct {
	base
	headType string
	elem     Node
}

// NewHeadArray builds a head-array with the given head wire type and
// element schema.
func NewHeadArray(name, headType string, elem Node) (*HeadArray, error) {
	if err := validateHeadType(headType); err != nil {
		return nil, err
	}
	return &HeadArray{
		base: base{
			kind:     KindHeadArray,
			typeName: KindHeadArray,
			name:     name,
			children: []Node{elem},
		},
		headType: headType,
		elem:     elem,
	}, nil
}

// MustHeadArray is NewHeadArray that panics on an invalid head type.
func MustHeadArray(name, headType string, elem Node) *HeadArray {
	h, err := NewHeadArray(name, headType, elem)
	if err != nil {
		panic("schema: " + err.Error())
	}
	return h
}

// HeadType returns the wire type of the length prefix.
func (h *HeadArray) HeadType() string { return h.headType }

// Elem returns the element schema.
func (h *HeadArray) Elem() Node { return h.elem }

// Encode writes the element count in the head type, then each element.
func (h *HeadArray) Encode(value any, args ...int) ([]byte, error) {
	value = h.resolveValue(value)
	seq, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("head-array input must be []any, got %T", value)
	}

	out, err := codec.Encode(h.headType, len(seq))
	if err != nil {
		return nil, err
	}
	for i, elem := range seq {
		b, err := h.elem.Encode(elem)
		if err != nil {
			return nil, wrapPath(fmt.Sprintf("[%d]", i), err)
		}
		out = append(out, b...)
	}
	h.cache = value
	return out, nil
}

// Decode reads the head, then exactly that many elements.
func (h *HeadArray) Decode(buf []byte, offset int, args ...int) (any, int, error) {
	head, size, err := codec.Decode(h.headType, buf, offset)
	if err != nil {
		return nil, 0, err
	}
	count, err := headCount(head)
	if err != nil {
		return nil, 0, err
	}

	out := make([]any, 0, count)
	for i := 0; i < count; i++ {
		v, n, err := h.elem.Decode(buf, offset+size)
		if err != nil {
			return nil, 0, wrapPath(fmt.Sprintf("[%d]", i), err)
		}
		out = append(out, v)
		size += n
	}
	h.cache = []any(out)
	return []any(out), size, nil
}

// HeadPrimitive prefixes a single length-bearing primitive with an
// integer head, so a variable-length field's length is recovered at
// decode time without a delimiter. The head carries a byte count for
// "str" and "bytes" content, and an element count for numeric array
// content.
type HeadPrimitive struct {
	base
	headType string
	content  *Primitive
}

// NewHeadPrimitive builds a head-primitive over the given content wire
// type, which must be length-bearing: "str", "bytes" or a numeric
// array form.
func NewHeadPrimitive(name, headType, contentType string) (*HeadPrimitive, error) {
	if err := validateHeadType(headType); err != nil {
		return nil, err
	}
	spec, err := codec.ParseType(contentType)
	if err != nil {
		return nil, err
	}
	if spec.Kind != codec.KindStr && spec.Kind != codec.KindBytes && !spec.Array {
		return nil, fmt.Errorf("%w: %q is not a length-bearing content type", codec.ErrUnknownType, contentType)
	}
	content, err := NewPrimitive(name, contentType)
	if err != nil {
		return nil, err
	}
	return &HeadPrimitive{
		base: base{
			kind:     KindHeadPrimitive,
			typeName: KindHeadPrimitive,
			name:     name,
			children: []Node{content},
		},
		headType: headType,
		content:  content,
	}, nil
}

// MustHeadPrimitive is NewHeadPrimitive that panics on invalid types.
func MustHeadPrimitive(name, headType, contentType string) *HeadPrimitive {
	h, err := NewHeadPrimitive(name, headType, contentType)
	if err != nil {
		panic("schema: " + err.Error())
	}
	return h
}

// HeadType returns the wire type of the length prefix.
func (h *HeadPrimitive) HeadType() string { return h.headType }

// ContentType returns the wire type of the content.
func (h *HeadPrimitive) ContentType() string { return h.content.TypeName() }

// contentLength computes the head value for the given content value.
func (h *HeadPrimitive) contentLength(value any) (int, error) {
	switch v := value.(type) {
	case string:
		return len(v), nil
	case []byte:
		return len(v), nil
	case []any:
		return len(v), nil
	}
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Slice {
		return rv.Len(), nil
	}
	return 0, fmt.Errorf("%w: %T for head-primitive content", codec.ErrUnrepresentable, value)
}

// Encode writes the content's length in the head type, then the content
// itself.
func (h *HeadPrimitive) Encode(value any, args ...int) ([]byte, error) {
	value = h.resolveValue(value)
	length, err := h.contentLength(value)
	if err != nil {
		return nil, err
	}
	out, err := codec.Encode(h.headType, length)
	if err != nil {
		return nil, err
	}
	b, err := h.content.Encode(value)
	if err != nil {
		return nil, err
	}
	h.cache = value
	return append(out, b...), nil
}

// Decode reads the head, then the content with the recovered length.
func (h *HeadPrimitive) Decode(buf []byte, offset int, args ...int) (any, int, error) {
	head, size, err := codec.Decode(h.headType, buf, offset)
	if err != nil {
		return nil, 0, err
	}
	length, err := headCount(head)
	if err != nil {
		return nil, 0, err
	}
	v, n, err := h.content.Decode(buf, offset+size, length)
	if err != nil {
		return nil, 0, err
	}
	h.cache = v
	return v, size + n, nil
}
