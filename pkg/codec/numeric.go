package codec

import (
	"encoding/binary"
	"fmt"
	"math"
)

// byteOrder maps an endian suffix to its binary.ByteOrder.
// Width-1 types never reach this lookup.
func byteOrder(endian byte) binary.ByteOrder {
	if endian == 'b' {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// appendUint appends the low width bytes of u in the given byte order.
func appendUint(dst []byte, u uint64, width int, endian byte) []byte {
	var scratch [8]byte
	byteOrder(endian).PutUint64(scratch[:], u)
	if endian == 'b' {
		return append(dst, scratch[8-width:]...)
	}
	return append(dst, scratch[:width]...)
}

// readUint reads width bytes at offset in the given byte order.
func readUint(buf []byte, offset, width int, endian byte) (uint64, error) {
	if offset < 0 || offset+width > len(buf) {
		return 0, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrUnderflow, width, offset, len(buf)-offset)
	}
	var scratch [8]byte
	if endian == 'b' {
		copy(scratch[8-width:], buf[offset:offset+width])
	} else {
		copy(scratch[:width], buf[offset:offset+width])
	}
	return byteOrder(endian).Uint64(scratch[:]), nil
}

// encodeFixed encodes one fixed-width numeric scalar.
func encodeFixed(spec TypeSpec, dst []byte, value any) ([]byte, error) {
	switch spec.Format {
	case 'u':
		if spec.Endian == 'c' {
			// u1c clamps out-of-range signed input instead of rejecting it.
			i, err := toInt64(value)
			if err != nil {
				return nil, err
			}
			if i < 0 {
				i = 0
			} else if i > 255 {
				i = 255
			}
			return append(dst, byte(i)), nil
		}
		u, err := toUint64(value)
		if err != nil {
			return nil, err
		}
		if spec.Width < 8 && u >= 1<<(8*spec.Width) {
			return nil, fmt.Errorf("%w: %d exceeds %d-byte unsigned width", ErrUnrepresentable, u, spec.Width)
		}
		if spec.Width == 1 {
			return append(dst, byte(u)), nil
		}
		return appendUint(dst, u, spec.Width, spec.Endian), nil

	case 'i':
		i, err := toInt64(value)
		if err != nil {
			return nil, err
		}
		if spec.Width < 8 {
			limit := int64(1) << (8*spec.Width - 1)
			if i < -limit || i >= limit {
				return nil, fmt.Errorf("%w: %d exceeds %d-byte signed width", ErrUnrepresentable, i, spec.Width)
			}
		}
		if spec.Width == 1 {
			return append(dst, byte(i)), nil
		}
		return appendUint(dst, uint64(i), spec.Width, spec.Endian), nil

	case 'f':
		f, err := toFloat64(value)
		if err != nil {
			return nil, err
		}
		if spec.Width == 4 {
			return appendUint(dst, uint64(math.Float32bits(float32(f))), 4, spec.Endian), nil
		}
		return appendUint(dst, math.Float64bits(f), 8, spec.Endian), nil
	}
	return nil, fmt.Errorf("%w: format %q", ErrUnknownType, spec.Format)
}

// decodeFixed decodes one fixed-width numeric scalar, returning the value
// and the number of bytes consumed.
func decodeFixed(spec TypeSpec, buf []byte, offset int) (any, int, error) {
	u, err := readUint(buf, offset, spec.Width, spec.Endian)
	if err != nil {
		return nil, 0, err
	}
	switch spec.Format {
	case 'u':
		return u, spec.Width, nil
	case 'i':
		// Sign-extend from the declared width.
		shift := 64 - 8*spec.Width
		return int64(u<<shift) >> shift, spec.Width, nil
	case 'f':
		if spec.Width == 4 {
			return float64(math.Float32frombits(uint32(u))), 4, nil
		}
		return math.Float64frombits(u), 8, nil
	}
	return nil, 0, fmt.Errorf("%w: format %q", ErrUnknownType, spec.Format)
}
