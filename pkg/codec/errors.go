package codec

import "errors"

// ErrUnknownType is returned when a type name does not parse under the
// type-name grammar or is not registered.
var ErrUnknownType = errors.New("unknown type name")

// ErrUnderflow is returned when a decode would read past the end of the
// input buffer.
var ErrUnderflow = errors.New("buffer underflow")

// ErrLengthMismatch is returned when a supplied length exceeds the
// remaining buffer, or a required length argument is absent.
var ErrLengthMismatch = errors.New("length mismatch")

// ErrUnrepresentable is returned when a value does not fit the declared
// wire type: a negative value for an unsigned type, an integer exceeding
// the width, or a value of the wrong Go kind entirely.
var ErrUnrepresentable = errors.New("unrepresentable value")

// ErrInteriorNUL is returned when a cstr is encoded from a string that
// contains a 0x00 byte.
var ErrInteriorNUL = errors.New("interior NUL in cstr")

// ErrMalformedUTF8 is returned when str or cstr decoding encounters bytes
// that are not valid UTF-8.
var ErrMalformedUTF8 = errors.New("malformed UTF-8")
