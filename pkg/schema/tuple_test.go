package schema

import (
	"bytes"
	"reflect"
	"testing"
)

func TestTupleRoundTrip(t *testing.T) {
	tup := NewTuple("pair",
		MustPrimitive("", "u2b"),
		MustPrimitive("", "cstr"),
	)

	b, err := tup.Encode([]any{513, "ok"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := []byte{0x02, 0x01, 'o', 'k', 0x00}
	if !bytes.Equal(b, want) {
		t.Fatalf("Encode = % X, want % X", b, want)
	}

	v, n, err := tup.Decode(b, 0)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if n != len(b) {
		t.Errorf("Decode consumed %d of %d bytes", n, len(b))
	}
	if !reflect.DeepEqual(v, []any{uint64(513), "ok"}) {
		t.Errorf("Decode = %v", v)
	}
}

func TestTupleWindow(t *testing.T) {
	tup := NewTuple("t",
		MustPrimitive("", "u1"),
		MustPrimitive("", "u1"),
		MustPrimitive("", "u1"),
	)
	buf := []byte{0x0A, 0x0B, 0x0C}

	v, n, err := tup.Decode(buf, 1, 1, 3)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if n != 2 || !reflect.DeepEqual(v, []any{uint64(0x0B), uint64(0x0C)}) {
		t.Errorf("Decode window = (%v, %d)", v, n)
	}

	b, err := tup.Encode([]any{1, 2, 3}, 0, 2)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(b, []byte{0x01, 0x02}) {
		t.Errorf("Encode window = % X", b)
	}

	if _, _, err := tup.Decode(buf, 0, 2, 5); err == nil {
		t.Error("expected error for out-of-range window")
	}
}

func TestTupleInputMismatch(t *testing.T) {
	tup := NewTuple("t", MustPrimitive("", "u1"), MustPrimitive("", "u1"))
	if _, err := tup.Encode([]any{1}); err == nil {
		t.Error("expected error for short input")
	}
	if _, err := tup.Encode("nope"); err == nil {
		t.Error("expected error for non-sequence input")
	}
}
