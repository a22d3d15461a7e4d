package schema

import (
	"bytes"
	"errors"
	"testing"

	"github.com/aretw0/wicker/pkg/codec"
)

func TestRecordEncodeDecode(t *testing.T) {
	rec := MustRecord("header",
		MustPrimitive("magic", "u2b"),
		MustPrimitive("version", "u1"),
		MustPrimitive("title", "cstr"),
	)

	in := map[string]any{
		"version": 3,
		"magic":   0xCAFE,
		"title":   "demo",
	}
	b, err := rec.Encode(in)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := []byte{0xCA, 0xFE, 0x03, 'd', 'e', 'm', 'o', 0x00}
	if !bytes.Equal(b, want) {
		t.Fatalf("Encode = % X, want % X", b, want)
	}

	v, n, err := rec.Decode(b, 0)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if n != len(b) {
		t.Errorf("Decode consumed %d of %d bytes", n, len(b))
	}
	fields := v.(*Fields)

	// Field order is the wire order, not the input map's order.
	var keys []string
	for pair := fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	if len(keys) != 3 || keys[0] != "magic" || keys[1] != "version" || keys[2] != "title" {
		t.Errorf("field order = %v, want [magic version title]", keys)
	}

	if magic, _ := fields.Get("magic"); magic != uint64(0xCAFE) {
		t.Errorf("magic = %v", magic)
	}
	if title, _ := fields.Get("title"); title != "demo" {
		t.Errorf("title = %v", title)
	}
}

func TestRecordInvariants(t *testing.T) {
	if _, err := NewRecord("r", MustPrimitive("", "u1")); !errors.Is(err, ErrUnnamedField) {
		t.Errorf("unnamed child error = %v, want ErrUnnamedField", err)
	}
	if _, err := NewRecord("r",
		MustPrimitive("x", "u1"),
		MustPrimitive("x", "u2l"),
	); !errors.Is(err, ErrDuplicateField) {
		t.Errorf("duplicate child error = %v, want ErrDuplicateField", err)
	}
}

func TestRecordMissingField(t *testing.T) {
	rec := MustRecord("r",
		MustPrimitive("a", "u1"),
		MustPrimitive("b", "u1"),
	)
	_, err := rec.Encode(map[string]any{"a": 1})
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("error = %v, want ErrMissingField", err)
	}
	var pe *PathError
	if !errors.As(err, &pe) || len(pe.Path) != 1 || pe.Path[0] != "b" {
		t.Errorf("path = %v, want [b]", err)
	}

	// A default fills the gap.
	rec.Child("b").SetDefault(7)
	b, err := rec.Encode(map[string]any{"a": 1})
	if err != nil {
		t.Fatalf("Encode with default failed: %v", err)
	}
	if !bytes.Equal(b, []byte{0x01, 0x07}) {
		t.Errorf("Encode = % X, want 01 07", b)
	}
}

func TestRecordDependentFieldViaWindow(t *testing.T) {
	// {u4b length, bytes(length) data}: decode the prefix, configure
	// the data child from the decoded length, decode the remainder.
	rec := MustRecord("framed",
		MustPrimitive("length", "u4b"),
		MustPrimitive("data", "bytes"),
	)

	buf := []byte{0x00, 0x00, 0x00, 0x03, 0xAA, 0xBB, 0xCC, 0xFF}

	head, n1, err := rec.Decode(buf, 0, 0, 1)
	if err != nil {
		t.Fatalf("prefix decode failed: %v", err)
	}
	length, _ := head.(*Fields).Get("length")
	rec.Child("data").SetArgs(int(length.(uint64)))

	rest, n2, err := rec.Decode(buf, n1, 1, 2)
	if err != nil {
		t.Fatalf("remainder decode failed: %v", err)
	}
	if n1+n2 != 7 {
		t.Errorf("consumed %d bytes, want 7", n1+n2)
	}
	data, _ := rest.(*Fields).Get("data")
	if !bytes.Equal(data.([]byte), []byte{0xAA, 0xBB, 0xCC}) {
		t.Errorf("data = % X", data)
	}
}

func TestRecordDependentFieldViaHook(t *testing.T) {
	rec := MustRecord("framed",
		MustPrimitive("length", "u4b"),
		MustPrimitive("data", "bytes"),
	)
	rec.PreChild = func(r *Record, index int, partial *Fields) {
		if index == 1 {
			length, _ := partial.Get("length")
			r.Child("data").SetArgs(int(length.(uint64)))
		}
	}

	buf := []byte{0x00, 0x00, 0x00, 0x02, 0x10, 0x20}
	v, n, err := rec.Decode(buf, 0)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if n != 6 {
		t.Errorf("consumed %d bytes, want 6", n)
	}
	data, _ := v.(*Fields).Get("data")
	if !bytes.Equal(data.([]byte), []byte{0x10, 0x20}) {
		t.Errorf("data = % X", data)
	}
}

func TestRecordErrorPath(t *testing.T) {
	outer := MustRecord("outer",
		MustPrimitive("ok", "u1"),
		MustRecord("nested", MustPrimitive("deep", "u4b")),
	)

	_, _, err := outer.Decode([]byte{0x01, 0x02}, 0)
	if !errors.Is(err, codec.ErrUnderflow) {
		t.Fatalf("error = %v, want ErrUnderflow", err)
	}
	var pe *PathError
	if !errors.As(err, &pe) {
		t.Fatalf("error %v is not a PathError", err)
	}
	if len(pe.Path) != 2 || pe.Path[0] != "nested" || pe.Path[1] != "deep" {
		t.Errorf("path = %v, want [nested deep]", pe.Path)
	}
}
