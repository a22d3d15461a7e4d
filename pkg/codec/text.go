package codec

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// encodeBool writes a single byte: 0x00 for false, 0x01 for true.
func encodeBool(dst []byte, value any) ([]byte, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, fmt.Errorf("%w: %T for bool type", ErrUnrepresentable, value)
	}
	if b {
		return append(dst, 0x01), nil
	}
	return append(dst, 0x00), nil
}

// decodeBool reads a single byte; any nonzero value decodes to true.
func decodeBool(buf []byte, offset int) (any, int, error) {
	if offset >= len(buf) {
		return nil, 0, fmt.Errorf("%w: need 1 byte at offset %d", ErrUnderflow, offset)
	}
	return buf[offset] != 0, 1, nil
}

// encodeCstr writes the UTF-8 bytes of the string followed by a single
// 0x00 terminator. The input must not contain an interior NUL.
func encodeCstr(dst []byte, value any) ([]byte, error) {
	s, err := toString(value)
	if err != nil {
		return nil, err
	}
	if bytes.IndexByte([]byte(s), 0x00) >= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInteriorNUL, s)
	}
	dst = append(dst, s...)
	return append(dst, 0x00), nil
}

// decodeCstr reads UTF-8 bytes up to the first 0x00. The terminator is
// counted in the consumed byte size but excluded from the value.
func decodeCstr(buf []byte, offset int) (any, int, error) {
	if offset > len(buf) {
		return nil, 0, fmt.Errorf("%w: offset %d past end of buffer", ErrUnderflow, offset)
	}
	end := bytes.IndexByte(buf[offset:], 0x00)
	if end < 0 {
		return nil, 0, fmt.Errorf("%w: unterminated cstr at offset %d", ErrUnderflow, offset)
	}
	raw := buf[offset : offset+end]
	if !utf8.Valid(raw) {
		return nil, 0, fmt.Errorf("%w: cstr at offset %d", ErrMalformedUTF8, offset)
	}
	return string(raw), end + 1, nil
}

// encodeStr writes exactly the UTF-8 bytes of the string, no framing.
func encodeStr(dst []byte, value any) ([]byte, error) {
	s, err := toString(value)
	if err != nil {
		return nil, err
	}
	return append(dst, s...), nil
}

// decodeStr reads a string of exactly length bytes.
func decodeStr(buf []byte, offset, length int) (any, int, error) {
	if length < 0 {
		return nil, 0, fmt.Errorf("%w: negative str length %d", ErrLengthMismatch, length)
	}
	if offset+length > len(buf) {
		return nil, 0, fmt.Errorf("%w: str of %d bytes at offset %d, have %d", ErrLengthMismatch, length, offset, len(buf)-offset)
	}
	raw := buf[offset : offset+length]
	if !utf8.Valid(raw) {
		return nil, 0, fmt.Errorf("%w: str at offset %d", ErrMalformedUTF8, offset)
	}
	return string(raw), length, nil
}

// encodeBytes writes the blob verbatim.
func encodeBytes(dst []byte, value any) ([]byte, error) {
	b, err := toBytes(value)
	if err != nil {
		return nil, err
	}
	return append(dst, b...), nil
}

// decodeBytes reads an opaque blob of exactly length bytes. The returned
// slice is a copy, never an alias of the input buffer.
func decodeBytes(buf []byte, offset, length int) (any, int, error) {
	if length < 0 {
		return nil, 0, fmt.Errorf("%w: negative bytes length %d", ErrLengthMismatch, length)
	}
	if offset+length > len(buf) {
		return nil, 0, fmt.Errorf("%w: blob of %d bytes at offset %d, have %d", ErrLengthMismatch, length, offset, len(buf)-offset)
	}
	out := make([]byte, length)
	copy(out, buf[offset:offset+length])
	return out, length, nil
}
