// Package jpeg implements a codec for JPEG segment streams as a
// format-specific extension of the schema algebra. The entropy-coded
// span after an SOS segment has no length field and ends at a
// data-dependent boundary, so the stream cannot be a fixed composition
// of the builtin kinds: Stream is a custom node whose decode loop
// fabricates a synthetic "ECS" segment that encode re-emits verbatim.
package jpeg

import (
	"fmt"

	"github.com/aretw0/wicker/pkg/codec"
	"github.com/aretw0/wicker/pkg/registry"
	"github.com/aretw0/wicker/pkg/schema"
)

// ECSMarker tags the synthetic segment holding an entropy-coded span.
const ECSMarker = "ECS"

// markerEnum maps the defined segment markers to their two-byte
// signatures. Unknown markers fall through to a plain u2b, so they
// decode as their numeric value and still round-trip.
func markerEnum() *schema.Enum {
	return schema.NewEnum("marker", []*schema.EnumEntry{
		schema.NewEnumEntry("SOI", []byte{0xFF, 0xD8}),
		schema.NewEnumEntry("EOI", []byte{0xFF, 0xD9}),
		schema.NewEnumEntry("SOS", []byte{0xFF, 0xDA}),
		schema.NewEnumEntry("DQT", []byte{0xFF, 0xDB}),
		schema.NewEnumEntry("DHT", []byte{0xFF, 0xC4}),
		schema.NewEnumEntry("SOF0", []byte{0xFF, 0xC0}),
		schema.NewEnumEntry("SOF1", []byte{0xFF, 0xC1}),
		schema.NewEnumEntry("SOF2", []byte{0xFF, 0xC2}),
		schema.NewEnumEntry("DRI", []byte{0xFF, 0xDD}),
		schema.NewEnumEntry("APP0", []byte{0xFF, 0xE0}),
		schema.NewEnumEntry("APP1", []byte{0xFF, 0xE1}),
		schema.NewEnumEntry("COM", []byte{0xFF, 0xFE}),
	}, schema.MustPrimitive("", "u2b"))
}

func init() {
	registry.Register("jpeg", func(desc registry.Description) (schema.Node, error) {
		return New(), nil
	})
}

// Stream is the root schema node for a JPEG file: a sequence of
// segments terminated by EOI. Its value form is a []any of segment
// field mappings, each carrying at least a "marker" and, for framed
// segments and entropy-coded spans, a "data" blob.
type Stream struct {
	name    string
	markers *schema.Enum
	args    []int
	def     any
	cache   any
}

// New builds a JPEG stream node.
func New() *Stream {
	return &Stream{name: "jpeg", markers: markerEnum()}
}

func (s *Stream) Kind() string     { return "jpeg" }
func (s *Stream) TypeName() string { return "jpeg" }
func (s *Stream) Name() string     { return s.name }

func (s *Stream) Children() []schema.Node { return []schema.Node{s.markers} }

func (s *Stream) Args() []int         { return s.args }
func (s *Stream) SetArgs(args ...int) { s.args = args }
func (s *Stream) Default() any        { return s.def }
func (s *Stream) SetDefault(v any)    { s.def = v }
func (s *Stream) Value() any          { return s.cache }

// Decode reads segments until EOI. SOI and EOI are bare markers; every
// other segment carries a big-endian u2b length L (inclusive of the
// length field itself) and L-2 payload bytes. After an SOS segment the
// entropy-coded span runs to the byte before the first 0xFF that is
// not followed by 0x00, and surfaces as a synthetic ECS segment.
func (s *Stream) Decode(buf []byte, offset int, args ...int) (any, int, error) {
	segments := []any{}
	size := 0

	for offset+size < len(buf) {
		marker, mn, err := s.markers.Decode(buf, offset+size)
		if err != nil {
			return nil, 0, fmt.Errorf("segment %d: %w", len(segments), err)
		}
		size += mn

		seg := schema.NewFields()
		seg.Set("marker", marker)

		switch marker {
		case "SOI":
			segments = append(segments, seg)
			continue
		case "EOI":
			segments = append(segments, seg)
			s.cache = segments
			return segments, size, nil
		}

		length, ln, err := codec.Decode("u2b", buf, offset+size)
		if err != nil {
			return nil, 0, fmt.Errorf("segment %d (%v) length: %w", len(segments), marker, err)
		}
		l := int(length.(uint64))
		if l < 2 {
			return nil, 0, fmt.Errorf("%w: segment length %d is below the inclusive minimum", codec.ErrLengthMismatch, l)
		}
		size += ln

		data, dn, err := codec.Decode("bytes", buf, offset+size, l-2)
		if err != nil {
			return nil, 0, fmt.Errorf("segment %d (%v) data: %w", len(segments), marker, err)
		}
		size += dn
		seg.Set("data", data)
		segments = append(segments, seg)

		if marker == "SOS" {
			span := scanEntropyCoded(buf, offset+size)
			ecs := schema.NewFields()
			ecs.Set("marker", ECSMarker)
			ecs.Set("data", span)
			segments = append(segments, ecs)
			size += len(span)
		}
	}

	s.cache = segments
	return segments, size, nil
}

// scanEntropyCoded returns a copy of the span starting at offset and
// ending immediately before the first 0xFF whose next byte is not
// 0x00. With no such boundary the span runs to the end of the buffer.
func scanEntropyCoded(buf []byte, offset int) []byte {
	i := offset
	for i+1 < len(buf) {
		if buf[i] == 0xFF && buf[i+1] != 0x00 {
			break
		}
		i++
	}
	if i+1 >= len(buf) {
		i = len(buf)
	}
	return append([]byte(nil), buf[offset:i]...)
}

// Encode emits each segment: bare markers for SOI and EOI, the marker
// plus the recomputed inclusive length and payload for framed
// segments, and the raw bytes alone for a synthetic ECS segment.
func (s *Stream) Encode(value any, args ...int) ([]byte, error) {
	if value == nil {
		if s.def != nil {
			value = s.def
		} else {
			value = s.cache
		}
	}
	segments, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("jpeg input must be []any, got %T", value)
	}

	var out []byte
	for i, raw := range segments {
		seg, ok := raw.(*schema.Fields)
		if !ok {
			return nil, fmt.Errorf("segment %d must be *schema.Fields, got %T", i, raw)
		}
		marker, _ := seg.Get("marker")

		if marker == ECSMarker {
			data, _ := seg.Get("data")
			b, err := codec.Encode("bytes", data)
			if err != nil {
				return nil, fmt.Errorf("segment %d (ECS): %w", i, err)
			}
			out = append(out, b...)
			continue
		}

		mb, err := s.markers.Encode(marker)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		out = append(out, mb...)

		if marker == "SOI" || marker == "EOI" {
			continue
		}

		data, _ := seg.Get("data")
		payload, err := codec.Encode("bytes", data)
		if err != nil {
			return nil, fmt.Errorf("segment %d (%v) data: %w", i, marker, err)
		}
		head, err := codec.Encode("u2b", len(payload)+2)
		if err != nil {
			return nil, fmt.Errorf("segment %d (%v) length: %w", i, marker, err)
		}
		out = append(out, head...)
		out = append(out, payload...)
	}
	s.cache = segments
	return out, nil
}
