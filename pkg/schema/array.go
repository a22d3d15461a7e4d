package schema

import (
	"fmt"

	"github.com/aretw0/wicker/pkg/codec"
)

// Array is a homogeneous sequence of one element schema. args supply
// the element count on decode, either as [count] or as an index window
// [start, end). Parents whose termination condition is not a count use
// DecodeOne to step through elements themselves, or install PostElem.
type Array struct {
	base
	elem Node

	// PreElem, when set, runs before each element decode with the
	// partial sequence so far; it may reconfigure the element schema.
	PreElem func(a *Array, index int, partial []any)

	// PostElem, when set, runs after each element decode. Returning
	// false terminates the sequence. With PostElem installed the count
	// argument becomes optional: decoding proceeds until the hook stops
	// it or the buffer runs out.
	PostElem func(a *Array, index int, partial []any) bool
}

// NewArray builds an array node over one element schema.
func NewArray(name string, elem Node, args ...int) *Array {
	return &Array{
		base: base{
			kind:     KindArray,
			typeName: KindArray,
			name:     name,
			children: []Node{elem},
			args:     args,
		},
		elem: elem,
	}
}

// Elem returns the element schema.
func (a *Array) Elem() Node { return a.elem }

// count resolves the decode element count from args: [count] or
// [start, end). Returns -1 for open-ended decoding.
func (a *Array) count(args []int) (int, error) {
	args = a.resolveArgs(args)
	switch len(args) {
	case 0:
		if a.PostElem == nil {
			return 0, fmt.Errorf("%w: array requires an element count", codec.ErrLengthMismatch)
		}
		return -1, nil
	case 1:
		return args[0], nil
	default:
		if args[1] < args[0] {
			return 0, &WindowError{Start: args[0], End: args[1], Len: args[1]}
		}
		return args[1] - args[0], nil
	}
}

// Encode invokes the element encoder per element over the index window
// (default: the full sequence).
func (a *Array) Encode(value any, args ...int) ([]byte, error) {
	value = a.resolveValue(value)
	seq, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("array input must be []any, got %T", value)
	}

	start, end := 0, len(seq)
	resolved := a.resolveArgs(args)
	if len(resolved) > 0 {
		var err error
		start, end, err = window(resolved, len(seq))
		if err != nil {
			return nil, err
		}
	}

	var out []byte
	for i := start; i < end; i++ {
		b, err := a.elem.Encode(seq[i])
		if err != nil {
			return nil, wrapPath(fmt.Sprintf("[%d]", i), err)
		}
		out = append(out, b...)
	}
	a.cache = value
	return out, nil
}

// Decode decodes count elements left to right. With PostElem installed
// and no count, elements are decoded until the hook terminates the
// sequence or the buffer is exhausted.
func (a *Array) Decode(buf []byte, offset int, args ...int) (any, int, error) {
	count, err := a.count(args)
	if err != nil {
		return nil, 0, err
	}

	out := []any{}
	size := 0
	for i := 0; count < 0 || i < count; i++ {
		if count < 0 && offset+size >= len(buf) {
			break
		}
		if a.PreElem != nil {
			a.PreElem(a, i, out)
		}
		v, n, err := a.elem.Decode(buf, offset+size)
		if err != nil {
			return nil, 0, wrapPath(fmt.Sprintf("[%d]", i), err)
		}
		out = append(out, v)
		size += n
		if a.PostElem != nil && !a.PostElem(a, i, out) {
			break
		}
	}
	a.cache = out
	return out, size, nil
}

// DecodeOne decodes exactly one element at offset. Parents iterating
// with a termination condition that is not a count drive the array one
// step at a time through this.
func (a *Array) DecodeOne(buf []byte, offset int) (any, int, error) {
	return a.elem.Decode(buf, offset)
}
