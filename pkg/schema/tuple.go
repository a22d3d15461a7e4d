package schema

import "fmt"

// Tuple is a composite of ordered, anonymous children. The value form
// is a positional []any whose length matches the child count. Like
// Record it accepts a child index window in args.
type Tuple struct {
	base
}

// NewTuple builds a tuple from its positional children.
func NewTuple(name string, children ...Node) *Tuple {
	return &Tuple{base{
		kind:     KindTuple,
		typeName: KindTuple,
		name:     name,
		children: children,
	}}
}

// Encode concatenates the windowed children's bytes, reading each
// child's value from the matching position of the input sequence.
func (t *Tuple) Encode(value any, args ...int) ([]byte, error) {
	value = t.resolveValue(value)
	seq, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("tuple input must be []any, got %T", value)
	}
	start, end, err := window(t.resolveArgs(args), len(t.children))
	if err != nil {
		return nil, err
	}
	if len(seq) < end {
		return nil, fmt.Errorf("tuple input has %d values, window needs %d", len(seq), end)
	}

	var out []byte
	for i := start; i < end; i++ {
		b, err := t.children[i].Encode(seq[i])
		if err != nil {
			return nil, wrapPath(fmt.Sprintf("[%d]", i), err)
		}
		out = append(out, b...)
	}
	t.cache = value
	return out, nil
}

// Decode decodes the windowed children left to right into a positional
// []any.
func (t *Tuple) Decode(buf []byte, offset int, args ...int) (any, int, error) {
	start, end, err := window(t.resolveArgs(args), len(t.children))
	if err != nil {
		return nil, 0, err
	}

	out := make([]any, 0, end-start)
	size := 0
	for i := start; i < end; i++ {
		v, n, err := t.children[i].Decode(buf, offset+size)
		if err != nil {
			return nil, 0, wrapPath(fmt.Sprintf("[%d]", i), err)
		}
		out = append(out, v)
		size += n
	}
	t.cache = out
	return out, size, nil
}
