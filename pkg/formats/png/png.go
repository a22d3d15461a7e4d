// Package png composes the schema algebra into a codec for PNG chunk
// streams. It is a client of the engine, not part of it: everything
// here is built from the public node kinds, their hooks, and a thin
// chunk wrapper that overrides the chunk record's Encode and Decode.
package png

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/aretw0/wicker/pkg/registry"
	"github.com/aretw0/wicker/pkg/schema"
)

// Signature is the eight-byte PNG file signature.
var Signature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func init() {
	registry.Register("png", func(desc registry.Description) (schema.Node, error) {
		return New(), nil
	})
}

// New builds the schema for a PNG file: the signature followed by a
// chunk sequence that ends at the IEND chunk.
func New() *schema.Record {
	chunks := schema.NewArray("chunks", newChunk())
	chunks.PostElem = func(a *schema.Array, index int, partial []any) bool {
		last := partial[len(partial)-1].(*schema.Fields)
		typ, _ := last.Get("type")
		return typ != "IEND"
	}

	return schema.MustRecord("png",
		schema.NewEnum("signature", []*schema.EnumEntry{
			schema.NewEnumEntry("PNG", Signature),
		}, nil),
		chunks,
	)
}

// headerSchema lays out the IHDR chunk's data.
func headerSchema() *schema.Record {
	return schema.MustRecord("ihdr",
		schema.MustPrimitive("width", "i4b"),
		schema.MustPrimitive("height", "i4b"),
		schema.MustPrimitive("bitdepth", "u1"),
		schema.MustPrimitive("colortype", "u1"),
		schema.MustPrimitive("compression", "u1"),
		schema.MustPrimitive("filter", "u1"),
		schema.MustPrimitive("interlace", "u1"),
	)
}

// chunk is a format-specific extension over the plain chunk record: it
// sizes the data field from the decoded length (dependent field) and
// further decodes IHDR data as a sub-record. Encode reverses both.
type chunk struct {
	schema.Node
	rec    *schema.Record
	header *schema.Record
}

func newChunk() *chunk {
	rec := schema.MustRecord("chunk",
		schema.MustPrimitive("length", "u4b"),
		schema.MustPrimitive("type", "str", 4),
		schema.MustPrimitive("data", "bytes"),
		schema.MustPrimitive("crc", "u4b"),
	)
	rec.PreChild = func(r *schema.Record, index int, partial *schema.Fields) {
		if index == 2 {
			length, _ := partial.Get("length")
			r.Child("data").SetArgs(int(length.(uint64)))
		}
	}
	return &chunk{Node: rec, rec: rec, header: headerSchema()}
}

// Decode reads one framed chunk, then lifts IHDR data into its
// sub-record form.
func (c *chunk) Decode(buf []byte, offset int, args ...int) (any, int, error) {
	v, n, err := c.rec.Decode(buf, offset, args...)
	if err != nil {
		return nil, 0, err
	}
	fields := v.(*schema.Fields)
	if typ, _ := fields.Get("type"); typ == "IHDR" {
		raw, _ := fields.Get("data")
		hv, hn, err := c.header.Decode(raw.([]byte), 0)
		if err != nil {
			return nil, 0, fmt.Errorf("IHDR data: %w", err)
		}
		if hn != len(raw.([]byte)) {
			return nil, 0, fmt.Errorf("IHDR data: decoded %d of %d bytes", hn, len(raw.([]byte)))
		}
		fields.Set("data", hv)
	}
	return fields, n, nil
}

// Encode lowers IHDR sub-records back to raw data, recomputes the
// length frame and emits the chunk.
func (c *chunk) Encode(value any, args ...int) ([]byte, error) {
	fields, ok := value.(*schema.Fields)
	if !ok {
		return nil, fmt.Errorf("chunk input must be *schema.Fields, got %T", value)
	}

	data, _ := fields.Get("data")
	raw, isRaw := data.([]byte)
	if !isRaw {
		// IHDR decoded as a sub-record; lower it first.
		b, err := c.header.Encode(data)
		if err != nil {
			return nil, fmt.Errorf("IHDR data: %w", err)
		}
		raw = b
	}

	typ, _ := fields.Get("type")
	crc, _ := fields.Get("crc")
	lowered := schema.FieldsFromPairs(
		"length", len(raw),
		"type", typ,
		"data", raw,
		"crc", crc,
	)
	return c.rec.Encode(lowered, args...)
}

// InflateImageData concatenates the data of every IDAT chunk of a
// decoded stream and inflates the zlib payload: the raw scanline bytes.
func InflateImageData(decoded *schema.Fields) ([]byte, error) {
	chunksVal, ok := decoded.Get("chunks")
	if !ok {
		return nil, fmt.Errorf("decoded value has no chunks field")
	}

	var compressed bytes.Buffer
	for _, c := range chunksVal.([]any) {
		fields := c.(*schema.Fields)
		if typ, _ := fields.Get("type"); typ != "IDAT" {
			continue
		}
		data, _ := fields.Get("data")
		compressed.Write(data.([]byte))
	}
	if compressed.Len() == 0 {
		return nil, fmt.Errorf("no IDAT chunks present")
	}

	zr, err := zlib.NewReader(&compressed)
	if err != nil {
		return nil, fmt.Errorf("image data: %w", err)
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
