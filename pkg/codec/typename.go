package codec

import (
	"fmt"
	"strings"
)

// Kind constants classify what a parsed type name describes.
const (
	KindNumeric = "numeric"
	KindBool    = "bool"
	KindCstr    = "cstr"
	KindStr     = "str"
	KindBytes   = "bytes"
)

// TypeSpec is the parsed form of a primitive type name.
// For numeric types Format, Width and Endian describe the wire layout;
// for the non-numeric kinds only Kind is meaningful.
type TypeSpec struct {
	Kind   string
	Format byte // 'u', 'i' or 'f'
	Width  int  // 1, 2, 4 or 8; 0 means variable-length
	Endian byte // 'l', 'b' or 'c'; 0 when the width carries no endianness
	Array  bool // "[]" suffix: a dense sequence of the scalar form
}

// Name reconstructs the canonical type name.
func (s TypeSpec) Name() string {
	switch s.Kind {
	case KindNumeric:
		var b strings.Builder
		b.WriteByte(s.Format)
		if s.Width == 0 {
			b.WriteByte('v')
		} else {
			fmt.Fprintf(&b, "%d", s.Width)
		}
		if s.Endian != 0 {
			b.WriteByte(s.Endian)
		}
		if s.Array {
			b.WriteString("[]")
		}
		return b.String()
	default:
		return s.Kind
	}
}

// ParseType parses a primitive type name into a TypeSpec.
//
// The grammar is:
//
//	type    := numeric | numeric "[]" | "bool" | "cstr" | "str" | "bytes"
//	numeric := ("u"|"i"|"f") ("1"|"2"|"4"|"8"|"v") ("l"|"b"|"c")?
//
// Widths 2, 4 and 8 require an endian suffix; width 1 and width "v" take
// none, except that "u1" admits the "c" suffix (clamp-on-encode). "fv" is
// not a valid type: there are no variable-length floats.
func ParseType(name string) (TypeSpec, error) {
	switch name {
	case "bool":
		return TypeSpec{Kind: KindBool}, nil
	case "cstr":
		return TypeSpec{Kind: KindCstr}, nil
	case "str":
		return TypeSpec{Kind: KindStr}, nil
	case "bytes":
		return TypeSpec{Kind: KindBytes}, nil
	}

	spec := TypeSpec{Kind: KindNumeric}
	rest := name
	if strings.HasSuffix(rest, "[]") {
		spec.Array = true
		rest = rest[:len(rest)-2]
	}
	if len(rest) < 2 || len(rest) > 3 {
		return TypeSpec{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}

	switch rest[0] {
	case 'u', 'i', 'f':
		spec.Format = rest[0]
	default:
		return TypeSpec{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}

	switch rest[1] {
	case '1':
		spec.Width = 1
	case '2':
		spec.Width = 2
	case '4':
		spec.Width = 4
	case '8':
		spec.Width = 8
	case 'v':
		spec.Width = 0
	default:
		return TypeSpec{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}

	if spec.Width == 0 {
		// Variable-length integers only; no endianness, no floats.
		if spec.Format == 'f' || len(rest) == 3 {
			return TypeSpec{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
		}
		return spec, nil
	}

	if len(rest) == 3 {
		spec.Endian = rest[2]
	}

	switch {
	case spec.Width == 1 && spec.Endian == 0:
	case spec.Width == 1 && spec.Endian == 'c' && spec.Format == 'u':
		// u1c: unsigned byte, clamped to 0..255 on encode.
	case spec.Width == 1:
		return TypeSpec{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
	case spec.Endian == 'l' || spec.Endian == 'b':
	default:
		return TypeSpec{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}

	if spec.Format == 'f' && spec.Width != 4 && spec.Width != 8 {
		return TypeSpec{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}

	return spec, nil
}

// ValidType reports whether name parses under the type-name grammar.
func ValidType(name string) bool {
	_, err := ParseType(name)
	return err == nil
}
