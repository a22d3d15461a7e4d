package schema

import "fmt"

// Record is a composite of named children encoded in child order. Input
// to Encode may be unordered (*Fields or map[string]any); the schema's
// child order, not the input's, dictates the wire layout. Decode yields
// a *Fields keyed by child names in wire order.
//
// Both operations accept a child index window in args ([start, end)),
// which is how a client decodes a prefix of the record, inspects the
// partial result to reconfigure a later child's args, and then decodes
// the remainder.
type Record struct {
	base

	// PreChild, when set, runs before each child decode with the index
	// about to be visited and the partial result so far. It is the
	// interposition point for dependent fields: the hook may mutate the
	// args of any not-yet-visited child.
	PreChild func(r *Record, index int, partial *Fields)

	// PostChild, when set, runs after each child decode. Returning
	// false stops the record before the remaining children; the decode
	// result then holds only the visited fields.
	PostChild func(r *Record, index int, partial *Fields) bool

	byName map[string]int
}

// NewRecord builds a record from its named children. Every child must
// carry a unique, non-empty name.
func NewRecord(name string, children ...Node) (*Record, error) {
	byName := make(map[string]int, len(children))
	for i, child := range children {
		if child.Name() == "" {
			return nil, fmt.Errorf("child %d: %w", i, ErrUnnamedField)
		}
		if _, dup := byName[child.Name()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, child.Name())
		}
		byName[child.Name()] = i
	}
	return &Record{
		base: base{
			kind:     KindRecord,
			typeName: KindRecord,
			name:     name,
			children: children,
		},
		byName: byName,
	}, nil
}

// MustRecord is NewRecord that panics on an invalid child list.
func MustRecord(name string, children ...Node) *Record {
	r, err := NewRecord(name, children...)
	if err != nil {
		panic("schema: " + err.Error())
	}
	return r
}

// Child returns the child with the given field name, or nil.
func (r *Record) Child(name string) Node {
	i, ok := r.byName[name]
	if !ok {
		return nil
	}
	return r.children[i]
}

// Encode looks each windowed child's name up in the input mapping and
// concatenates the children's bytes in child order.
func (r *Record) Encode(value any, args ...int) ([]byte, error) {
	value = r.resolveValue(value)
	start, end, err := window(r.resolveArgs(args), len(r.children))
	if err != nil {
		return nil, err
	}
	lookup, err := fieldLookup(value)
	if err != nil {
		return nil, err
	}

	var out []byte
	for i := start; i < end; i++ {
		child := r.children[i]
		v, ok := lookup(child.Name())
		if !ok && child.Default() == nil && child.Value() == nil {
			return nil, wrapPath(child.Name(), ErrMissingField)
		}
		b, err := child.Encode(v)
		if err != nil {
			return nil, wrapPath(child.Name(), err)
		}
		out = append(out, b...)
	}
	r.cache = value
	return out, nil
}

// Decode decodes the windowed children left to right, yielding a
// *Fields keyed by child names and the total bytes consumed.
func (r *Record) Decode(buf []byte, offset int, args ...int) (any, int, error) {
	start, end, err := window(r.resolveArgs(args), len(r.children))
	if err != nil {
		return nil, 0, err
	}

	out := NewFields()
	size := 0
	for i := start; i < end; i++ {
		if r.PreChild != nil {
			r.PreChild(r, i, out)
		}
		child := r.children[i]
		v, n, err := child.Decode(buf, offset+size)
		if err != nil {
			return nil, 0, wrapPath(child.Name(), err)
		}
		out.Set(child.Name(), v)
		size += n
		if r.PostChild != nil && !r.PostChild(r, i, out) {
			break
		}
	}
	r.cache = out
	return out, size, nil
}
