package schema

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/aretw0/wicker/pkg/codec"
)

func TestArrayRoundTrip(t *testing.T) {
	arr := NewArray("values", MustPrimitive("", "u2l"))

	b, err := arr.Encode([]any{1, 2, 515})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := []byte{0x01, 0x00, 0x02, 0x00, 0x03, 0x02}
	if !bytes.Equal(b, want) {
		t.Fatalf("Encode = % X, want % X", b, want)
	}

	v, n, err := arr.Decode(b, 0, 3)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if n != 6 || !reflect.DeepEqual(v, []any{uint64(1), uint64(2), uint64(515)}) {
		t.Errorf("Decode = (%v, %d)", v, n)
	}
}

func TestArrayRequiresCount(t *testing.T) {
	arr := NewArray("a", MustPrimitive("", "u1"))
	if _, _, err := arr.Decode([]byte{0x01}, 0); !errors.Is(err, codec.ErrLengthMismatch) {
		t.Errorf("error = %v, want ErrLengthMismatch", err)
	}
}

func TestArrayDefaultArgs(t *testing.T) {
	arr := NewArray("a", MustPrimitive("", "u1"), 2)
	v, n, err := arr.Decode([]byte{0x05, 0x06, 0x07}, 0)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if n != 2 || !reflect.DeepEqual(v, []any{uint64(5), uint64(6)}) {
		t.Errorf("Decode = (%v, %d)", v, n)
	}
}

func TestArrayDecodeOne(t *testing.T) {
	arr := NewArray("a", MustPrimitive("", "u2b"))
	v, n, err := arr.DecodeOne([]byte{0x12, 0x34, 0x56, 0x78}, 2)
	if err != nil {
		t.Fatalf("DecodeOne failed: %v", err)
	}
	if v != uint64(0x5678) || n != 2 {
		t.Errorf("DecodeOne = (%v, %d)", v, n)
	}
}

func TestArrayPostElemTermination(t *testing.T) {
	// Decode u1 elements until a zero shows up: a termination
	// condition that is not a count.
	arr := NewArray("a", MustPrimitive("", "u1"))
	arr.PostElem = func(a *Array, index int, partial []any) bool {
		return partial[len(partial)-1] != uint64(0)
	}

	v, n, err := arr.Decode([]byte{0x01, 0x02, 0x00, 0x09}, 0)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if n != 3 || !reflect.DeepEqual(v, []any{uint64(1), uint64(2), uint64(0)}) {
		t.Errorf("Decode = (%v, %d)", v, n)
	}
}

func TestArrayEncodeWindow(t *testing.T) {
	arr := NewArray("a", MustPrimitive("", "u1"))
	b, err := arr.Encode([]any{1, 2, 3, 4}, 1, 3)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(b, []byte{0x02, 0x03}) {
		t.Errorf("Encode window = % X", b)
	}
}
