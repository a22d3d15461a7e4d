package codec

import (
	"fmt"
)

// Encode encodes a single value under the named primitive type and
// returns its wire bytes. Fixed-width numerics produce exactly their
// declared width; str and bytes write exactly len(value) bytes; array
// forms write a dense sequence with no separators. args is accepted for
// symmetry with Decode but no primitive consumes it on encode.
func Encode(typeName string, value any, args ...int) ([]byte, error) {
	spec, err := ParseType(typeName)
	if err != nil {
		return nil, err
	}
	return appendValue(spec, nil, value)
}

// Decode decodes a single value of the named primitive type starting at
// offset, returning the value and the number of bytes consumed.
//
// Length-dependent types take their length from args: str and bytes
// require args[0] as a byte count, fixed-width array forms require
// args[0] as an element count. VLQ array forms may omit the count, in
// which case decoding proceeds until the buffer is exhausted.
func Decode(typeName string, buf []byte, offset int, args ...int) (any, int, error) {
	spec, err := ParseType(typeName)
	if err != nil {
		return nil, 0, err
	}

	switch spec.Kind {
	case KindBool:
		return decodeBool(buf, offset)
	case KindCstr:
		return decodeCstr(buf, offset)
	case KindStr:
		if len(args) == 0 {
			return nil, 0, fmt.Errorf("%w: str requires a length argument", ErrLengthMismatch)
		}
		return decodeStr(buf, offset, args[0])
	case KindBytes:
		if len(args) == 0 {
			return nil, 0, fmt.Errorf("%w: bytes requires a length argument", ErrLengthMismatch)
		}
		return decodeBytes(buf, offset, args[0])
	}

	if spec.Array {
		return decodeArray(spec, buf, offset, args)
	}
	return decodeScalar(spec, buf, offset)
}

// appendValue appends the encoding of value under spec to dst.
func appendValue(spec TypeSpec, dst []byte, value any) ([]byte, error) {
	switch spec.Kind {
	case KindBool:
		return encodeBool(dst, value)
	case KindCstr:
		return encodeCstr(dst, value)
	case KindStr:
		return encodeStr(dst, value)
	case KindBytes:
		return encodeBytes(dst, value)
	}

	if spec.Array {
		elems, err := toSlice(value)
		if err != nil {
			return nil, err
		}
		scalar := spec
		scalar.Array = false
		for i, elem := range elems {
			dst, err = appendValue(scalar, dst, elem)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
		}
		return dst, nil
	}
	return appendScalar(spec, dst, value)
}

// appendScalar appends one numeric scalar.
func appendScalar(spec TypeSpec, dst []byte, value any) ([]byte, error) {
	if spec.Width == 0 {
		if spec.Format == 'u' {
			u, err := toUint64(value)
			if err != nil {
				return nil, err
			}
			return AppendUVLQ(dst, u), nil
		}
		i, err := toInt64(value)
		if err != nil {
			return nil, err
		}
		return AppendSVLQ(dst, i), nil
	}
	return encodeFixed(spec, dst, value)
}

// decodeScalar decodes one numeric scalar.
func decodeScalar(spec TypeSpec, buf []byte, offset int) (any, int, error) {
	if spec.Width == 0 {
		if spec.Format == 'u' {
			v, n, err := DecodeUVLQ(buf, offset)
			return v, n, err
		}
		v, n, err := DecodeSVLQ(buf, offset)
		return v, n, err
	}
	return decodeFixed(spec, buf, offset)
}

// decodeArray decodes a dense numeric sequence. Fixed-width elements
// require an element count; VLQ elements fall back to consuming the rest
// of the buffer when no count is supplied.
func decodeArray(spec TypeSpec, buf []byte, offset int, args []int) (any, int, error) {
	scalar := spec
	scalar.Array = false

	count := -1
	if len(args) > 0 {
		count = args[0]
		if count < 0 {
			return nil, 0, fmt.Errorf("%w: negative element count %d", ErrLengthMismatch, count)
		}
	} else if spec.Width != 0 {
		return nil, 0, fmt.Errorf("%w: %s requires an element count", ErrLengthMismatch, spec.Name())
	}

	var out []any
	size := 0
	for count < 0 || len(out) < count {
		if count < 0 && offset+size >= len(buf) {
			break
		}
		v, n, err := decodeScalar(scalar, buf, offset+size)
		if err != nil {
			return nil, 0, fmt.Errorf("element %d: %w", len(out), err)
		}
		out = append(out, v)
		size += n
	}
	if out == nil {
		out = []any{}
	}
	return out, size, nil
}
