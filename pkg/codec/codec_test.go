package codec

import (
	"bytes"
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestEncodeFixedWidth(t *testing.T) {
	tests := []struct {
		typ   string
		value any
		want  []byte
	}{
		{"u1", 0xAB, []byte{0xAB}},
		{"u1c", -5, []byte{0x00}},
		{"u1c", 300, []byte{0xFF}},
		{"u1c", 200, []byte{0xC8}},
		{"u2l", 0x1234, []byte{0x34, 0x12}},
		{"u2b", 0x1234, []byte{0x12, 0x34}},
		{"u4l", 0xDEADBEEF, []byte{0xEF, 0xBE, 0xAD, 0xDE}},
		{"u4b", 0xDEADBEEF, []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		{"u8b", uint64(1), []byte{0, 0, 0, 0, 0, 0, 0, 1}},
		{"i1", -1, []byte{0xFF}},
		{"i2b", -2822, []byte{0xF4, 0xFA}},
		{"i2l", -2822, []byte{0xFA, 0xF4}},
		{"i4b", -1, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"i8l", int64(-2), []byte{0xFE, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{"f4b", float64(1.0), []byte{0x3F, 0x80, 0x00, 0x00}},
		{"f8b", float64(1.0), []byte{0x3F, 0xF0, 0, 0, 0, 0, 0, 0}},
		{"bool", true, []byte{0x01}},
		{"bool", false, []byte{0x00}},
	}

	for _, tt := range tests {
		got, err := Encode(tt.typ, tt.value)
		if err != nil {
			t.Errorf("Encode(%s, %v) failed: %v", tt.typ, tt.value, err)
			continue
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("Encode(%s, %v) = % X, want % X", tt.typ, tt.value, got, tt.want)
		}
	}
}

func TestRoundTripScalars(t *testing.T) {
	tests := []struct {
		typ    string
		values []any
	}{
		{"u1", []any{uint64(0), uint64(1), uint64(255)}},
		{"u2l", []any{uint64(0), uint64(65535)}},
		{"u4b", []any{uint64(0), uint64(math.MaxUint32)}},
		{"u8l", []any{uint64(0), uint64(math.MaxUint64)}},
		{"i1", []any{int64(-128), int64(0), int64(127)}},
		{"i2b", []any{int64(-32768), int64(32767)}},
		{"i4l", []any{int64(math.MinInt32), int64(math.MaxInt32)}},
		{"i8b", []any{int64(math.MinInt64), int64(math.MaxInt64)}},
		{"uv", []any{uint64(0), uint64(127), uint64(128), uint64(16384)}},
		{"iv", []any{int64(-8192), int64(0), int64(8192)}},
		{"f4l", []any{float64(0), float64(0.5), float64(-2)}},
		{"f8b", []any{float64(0), math.Pi, float64(-1e300)}},
		{"bool", []any{true, false}},
	}

	for _, tt := range tests {
		for _, v := range tt.values {
			b, err := Encode(tt.typ, v)
			if err != nil {
				t.Errorf("Encode(%s, %v) failed: %v", tt.typ, v, err)
				continue
			}
			back, n, err := Decode(tt.typ, b, 0)
			if err != nil {
				t.Errorf("Decode(%s, % X) failed: %v", tt.typ, b, err)
				continue
			}
			if n != len(b) {
				t.Errorf("Decode(%s) consumed %d of %d bytes", tt.typ, n, len(b))
			}
			if back != v {
				t.Errorf("round trip %s: %v -> % X -> %v", tt.typ, v, b, back)
			}
		}
	}
}

func TestFloat32Widening(t *testing.T) {
	// f4 decodes through float32 and widens; the payload must survive
	// a second encode bit-exactly.
	b, err := Encode("f4l", 1.1)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	v, _, err := Decode("f4l", b, 0)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	again, err := Encode("f4l", v)
	if err != nil {
		t.Fatalf("re-encode failed: %v", err)
	}
	if !bytes.Equal(b, again) {
		t.Errorf("f4 payload not stable: % X vs % X", b, again)
	}
}

func TestCstr(t *testing.T) {
	b, err := Encode("cstr", "creeper")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := []byte{0x63, 0x72, 0x65, 0x65, 0x70, 0x65, 0x72, 0x00}
	if !bytes.Equal(b, want) {
		t.Errorf("Encode(cstr, creeper) = % X, want % X", b, want)
	}

	v, n, err := Decode("cstr", b, 0)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if v != "creeper" || n != 8 {
		t.Errorf("Decode = (%v, %d), want (creeper, 8)", v, n)
	}

	// Empty string is a lone terminator with bytesize 1.
	b, err = Encode("cstr", "")
	if err != nil {
		t.Fatalf("Encode empty failed: %v", err)
	}
	if !bytes.Equal(b, []byte{0x00}) {
		t.Errorf("Encode(cstr, \"\") = % X, want 00", b)
	}
	v, n, err = Decode("cstr", b, 0)
	if err != nil || v != "" || n != 1 {
		t.Errorf("Decode(00) = (%v, %d, %v), want (\"\", 1, nil)", v, n, err)
	}

	if _, err := Encode("cstr", "a\x00b"); !errors.Is(err, ErrInteriorNUL) {
		t.Errorf("interior NUL error = %v, want ErrInteriorNUL", err)
	}
	if _, _, err := Decode("cstr", []byte{0x61, 0x62}, 0); !errors.Is(err, ErrUnderflow) {
		t.Errorf("unterminated cstr error = %v, want ErrUnderflow", err)
	}
	if _, _, err := Decode("cstr", []byte{0xFF, 0xFE, 0x00}, 0); !errors.Is(err, ErrMalformedUTF8) {
		t.Errorf("invalid UTF-8 error = %v, want ErrMalformedUTF8", err)
	}
}

func TestStrAndBytes(t *testing.T) {
	b, err := Encode("str", "héllo")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	v, n, err := Decode("str", b, 0, len(b))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if v != "héllo" || n != len(b) {
		t.Errorf("Decode = (%v, %d), want (héllo, %d)", v, n, len(b))
	}

	if _, _, err := Decode("str", b, 0); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("missing length error = %v, want ErrLengthMismatch", err)
	}
	if _, _, err := Decode("str", b, 0, 100); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("oversized length error = %v, want ErrLengthMismatch", err)
	}

	blob := []byte{0x00, 0xFF, 0x10}
	eb, err := Encode("bytes", blob)
	if err != nil {
		t.Fatalf("Encode bytes failed: %v", err)
	}
	if !bytes.Equal(eb, blob) {
		t.Errorf("Encode(bytes) = % X, want % X", eb, blob)
	}
	bv, n, err := Decode("bytes", eb, 0, 3)
	if err != nil || n != 3 {
		t.Fatalf("Decode bytes = (%v, %d, %v)", bv, n, err)
	}
	if !bytes.Equal(bv.([]byte), blob) {
		t.Errorf("Decode(bytes) = % X, want % X", bv, blob)
	}
}

func TestNumericArrays(t *testing.T) {
	b, err := Encode("i2b[]", []int{-2822, 992, 3})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := []byte{0xF4, 0xFA, 0x03, 0xE0, 0x00, 0x03}
	if !bytes.Equal(b, want) {
		t.Errorf("Encode(i2b[]) = % X, want % X", b, want)
	}

	v, n, err := Decode("i2b[]", b, 0, 3)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	got := v.([]any)
	if n != 6 || !reflect.DeepEqual(got, []any{int64(-2822), int64(992), int64(3)}) {
		t.Errorf("Decode(i2b[]) = (%v, %d)", got, n)
	}

	// Fixed-width arrays require a count.
	if _, _, err := Decode("i2b[]", b, 0); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("missing count error = %v, want ErrLengthMismatch", err)
	}

	// VLQ arrays fall back to consuming the remaining buffer.
	vb, err := Encode("uv[]", []uint64{0, 127, 128, 16384})
	if err != nil {
		t.Fatalf("Encode uv[] failed: %v", err)
	}
	uv, n, err := Decode("uv[]", vb, 0)
	if err != nil {
		t.Fatalf("Decode uv[] failed: %v", err)
	}
	if n != len(vb) || !reflect.DeepEqual(uv.([]any), []any{uint64(0), uint64(127), uint64(128), uint64(16384)}) {
		t.Errorf("Decode(uv[]) = (%v, %d)", uv, n)
	}
}

func TestUnrepresentable(t *testing.T) {
	tests := []struct {
		typ   string
		value any
	}{
		{"u2l", -1},
		{"u2l", 65536},
		{"u1", 256},
		{"i1", 128},
		{"i2b", 40000},
		{"uv", -1},
		{"bool", 1},
		{"str", 42},
	}
	for _, tt := range tests {
		if _, err := Encode(tt.typ, tt.value); !errors.Is(err, ErrUnrepresentable) {
			t.Errorf("Encode(%s, %v) error = %v, want ErrUnrepresentable", tt.typ, tt.value, err)
		}
	}
}

func TestDecodeUnderflow(t *testing.T) {
	for _, typ := range []string{"u4l", "i8b", "f8l", "bool"} {
		if _, _, err := Decode(typ, []byte{0x01}, 1); !errors.Is(err, ErrUnderflow) {
			t.Errorf("Decode(%s) past end error = %v, want ErrUnderflow", typ, err)
		}
	}
}

func TestUnknownType(t *testing.T) {
	if _, err := Encode("nope", 1); !errors.Is(err, ErrUnknownType) {
		t.Errorf("Encode unknown type error = %v, want ErrUnknownType", err)
	}
	if _, _, err := Decode("fv", nil, 0); !errors.Is(err, ErrUnknownType) {
		t.Errorf("Decode fv error = %v, want ErrUnknownType", err)
	}
}
