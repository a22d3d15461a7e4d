package codec

import "fmt"

// Item is one positional entry of a packed sequence: a primitive type
// name, the value to encode (ignored by Unpack), and any auxiliary
// arguments the type needs.
type Item struct {
	Type  string
	Value any
	Args  []int
}

// Pack encodes a positional list of items into one contiguous byte
// sequence, in order, with no separators.
func Pack(items []Item) ([]byte, error) {
	var out []byte
	for i, item := range items {
		b, err := Encode(item.Type, item.Value, item.Args...)
		if err != nil {
			return nil, fmt.Errorf("item %d (%s): %w", i, item.Type, err)
		}
		out = append(out, b...)
	}
	return out, nil
}

// Unpack decodes a contiguous byte sequence back into the values of a
// positional item list, starting at offset. Each item's Value field is
// ignored; its Type and Args drive the decode. Returns the decoded
// values and the total number of bytes consumed.
func Unpack(buf []byte, offset int, items []Item) ([]any, int, error) {
	values := make([]any, 0, len(items))
	size := 0
	for i, item := range items {
		v, n, err := Decode(item.Type, buf, offset+size, item.Args...)
		if err != nil {
			return nil, 0, fmt.Errorf("item %d (%s): %w", i, item.Type, err)
		}
		values = append(values, v)
		size += n
	}
	return values, size, nil
}
