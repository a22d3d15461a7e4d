package schema

// Node kind constants. A node's kind determines how its children and
// arguments are interpreted during encode and decode.
const (
	KindPrimitive     = "primitive"
	KindRecord        = "record"
	KindTuple         = "tuple"
	KindArray         = "array"
	KindHeadArray     = "headarray"
	KindHeadPrimitive = "headprimitive"
	KindEnum          = "enum"
	KindEnumEntry     = "enumentry"
)

// Node is the contract every schema node implements. A schema tree is
// built once and then drives both directions of the codec:
//
//	bytes, err := node.Encode(value)
//	value, bytesize, err := node.Decode(buf, offset)
//
// Decode consumes exactly bytesize bytes starting at offset. Caller
// args override the node's default args; with no value, Encode falls
// back to the node's default value and then to its value cache.
type Node interface {
	// Kind identifies the node's interpretation (record, tuple, ...).
	Kind() string
	// TypeName is the registry key: the wire type for primitives, the
	// kind name for composites.
	TypeName() string
	// Name is the field key inside a record; elsewhere it is a label
	// and may be empty.
	Name() string
	// Children returns the node's ordered children. The slice is the
	// node's own; callers must not reorder it.
	Children() []Node
	// Args returns the node's default arguments.
	Args() []int
	// SetArgs replaces the node's default arguments. Parents use this
	// between child decodes to configure dependent fields.
	SetArgs(args ...int)
	// Default returns the node's default value, if any.
	Default() any
	// SetDefault sets the value used when encoding with a nil value.
	SetDefault(v any)
	// Value returns the value cache: the last value decoded or encoded
	// through this node.
	Value() any

	Encode(value any, args ...int) ([]byte, error)
	Decode(buf []byte, offset int, args ...int) (any, int, error)
}

// base carries the state shared by every node kind.
type base struct {
	kind     string
	typeName string
	name     string
	children []Node
	args     []int
	def      any
	cache    any
}

func (b *base) Kind() string     { return b.kind }
func (b *base) TypeName() string { return b.typeName }
func (b *base) Name() string     { return b.name }
func (b *base) Children() []Node { return b.children }
func (b *base) Args() []int      { return b.args }
func (b *base) Default() any     { return b.def }
func (b *base) SetDefault(v any) { b.def = v }
func (b *base) Value() any       { return b.cache }

func (b *base) SetArgs(args ...int) { b.args = args }

// resolveArgs applies the caller-supplied args over the defaults.
func (b *base) resolveArgs(args []int) []int {
	if len(args) > 0 {
		return args
	}
	return b.args
}

// resolveValue substitutes the default value, then the value cache,
// when Encode is called without a value.
func (b *base) resolveValue(value any) any {
	if value != nil {
		return value
	}
	if b.def != nil {
		return b.def
	}
	return b.cache
}

// window resolves a half-open [start, end) child index range from args.
// No args means the full range; a single arg means [0, args[0]).
func window(args []int, n int) (int, int, error) {
	start, end := 0, n
	switch len(args) {
	case 0:
	case 1:
		end = args[0]
	default:
		start, end = args[0], args[1]
	}
	if start < 0 || end > n || start > end {
		return 0, 0, &WindowError{Start: start, End: end, Len: n}
	}
	return start, end, nil
}
