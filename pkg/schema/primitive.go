package schema

import (
	"github.com/aretw0/wicker/pkg/codec"
)

// Primitive wraps a single wire type from pkg/codec as a schema node.
// Its default args supply lengths the wire type cannot recover on its
// own (str and bytes byte counts, fixed-width array element counts);
// parents overwrite them at decode time for dependent fields.
type Primitive struct {
	base
}

// NewPrimitive builds a primitive node for the given wire type. name is
// the field key when the node is a record child; it may be empty
// elsewhere. args become the node's default arguments.
func NewPrimitive(name, typeName string, args ...int) (*Primitive, error) {
	if _, err := codec.ParseType(typeName); err != nil {
		return nil, err
	}
	return &Primitive{base{
		kind:     KindPrimitive,
		typeName: typeName,
		name:     name,
		args:     args,
	}}, nil
}

// MustPrimitive is NewPrimitive that panics on an invalid type name.
// Schema trees are normally assembled at program start, where a bad
// type name is a programming error.
func MustPrimitive(name, typeName string, args ...int) *Primitive {
	p, err := NewPrimitive(name, typeName, args...)
	if err != nil {
		panic("schema: " + err.Error())
	}
	return p
}

// Encode encodes value under the wrapped wire type.
func (p *Primitive) Encode(value any, args ...int) ([]byte, error) {
	value = p.resolveValue(value)
	if value == nil {
		return nil, ErrMissingField
	}
	b, err := codec.Encode(p.typeName, value, p.resolveArgs(args)...)
	if err != nil {
		return nil, err
	}
	p.cache = value
	return b, nil
}

// Decode decodes one value of the wrapped wire type at offset.
func (p *Primitive) Decode(buf []byte, offset int, args ...int) (any, int, error) {
	v, n, err := codec.Decode(p.typeName, buf, offset, p.resolveArgs(args)...)
	if err != nil {
		return nil, 0, err
	}
	p.cache = v
	return v, n, nil
}
