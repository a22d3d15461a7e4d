// Package codec implements the primitive wire codec: bit-exact encoders
// and decoders for fixed-width integers and floats, variable-length
// quantities, strings and raw byte blobs.
//
// Every primitive is addressed by a short type name that spells out its
// wire format: a format letter ("u" unsigned, "i" signed, "f" float), a
// width ("1", "2", "4", "8" or "v" for variable-length) and an endian
// suffix ("l" little, "b" big; "c" marks the clamped unsigned byte).
// Appending "[]" to a numeric type denotes a dense sequence with no
// separators. The non-numeric primitives are "bool", "cstr"
// (NUL-terminated UTF-8), "str" (UTF-8 of an externally-known byte
// length) and "bytes" (opaque, externally-known byte length).
//
//	b, err := codec.Encode("i2b", -2822)        // [0xF4 0xFA]
//	v, n, err := codec.Decode("i2b", b, 0)      // int64(-2822), 2
//
// Decoded values use the widest Go representation of their class:
// uint64, int64, float64, bool, string or []byte. Encoding accepts any
// Go numeric type and rejects values the declared width cannot carry.
//
// Pack and Unpack run a positional list of (type, value, args) items
// through the codec as one contiguous sequence.
package codec
