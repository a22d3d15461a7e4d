package dsl

import (
	"fmt"

	"github.com/aretw0/wicker/pkg/schema"
)

// Builder manages the construction of one composite node.
type Builder struct {
	kind     string
	name     string
	headType string
	children []schema.Node
	errs     []error
}

// Record starts a record builder.
func Record(name string) *Builder {
	return &Builder{kind: schema.KindRecord, name: name}
}

// Tuple starts a tuple builder.
func Tuple(name string) *Builder {
	return &Builder{kind: schema.KindTuple, name: name}
}

// Field appends a primitive child with the given wire type.
func (b *Builder) Field(name, typeName string, args ...int) *Builder {
	p, err := schema.NewPrimitive(name, typeName, args...)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("field %s: %w", name, err))
		return b
	}
	b.children = append(b.children, p)
	return b
}

// FieldDefault appends a primitive child carrying a default value.
func (b *Builder) FieldDefault(name, typeName string, def any, args ...int) *Builder {
	p, err := schema.NewPrimitive(name, typeName, args...)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("field %s: %w", name, err))
		return b
	}
	p.SetDefault(def)
	b.children = append(b.children, p)
	return b
}

// Child appends an already-built node.
func (b *Builder) Child(node schema.Node) *Builder {
	b.children = append(b.children, node)
	return b
}

// Nested appends another builder's result as a child.
func (b *Builder) Nested(nested *Builder) *Builder {
	node, err := nested.Build()
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.children = append(b.children, node)
	return b
}

// HeadArray appends a length-prefixed array child whose element schema
// comes from the nested builder.
func (b *Builder) HeadArray(name, headType string, elem *Builder) *Builder {
	node, err := elem.Build()
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	ha, err := schema.NewHeadArray(name, headType, node)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("head-array %s: %w", name, err))
		return b
	}
	b.children = append(b.children, ha)
	return b
}

// HeadField appends a length-prefixed primitive child.
func (b *Builder) HeadField(name, headType, contentType string) *Builder {
	hp, err := schema.NewHeadPrimitive(name, headType, contentType)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("head-field %s: %w", name, err))
		return b
	}
	b.children = append(b.children, hp)
	return b
}

// Build compiles the accumulated children into the composite node.
// Construction errors are deferred to here so call chains stay fluent.
func (b *Builder) Build() (schema.Node, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	switch b.kind {
	case schema.KindRecord:
		return schema.NewRecord(b.name, b.children...)
	case schema.KindTuple:
		return schema.NewTuple(b.name, b.children...), nil
	}
	return nil, fmt.Errorf("dsl: unknown builder kind %q", b.kind)
}

// MustBuild is Build that panics on error; schema construction runs at
// program start where failures are programming errors.
func (b *Builder) MustBuild() schema.Node {
	node, err := b.Build()
	if err != nil {
		panic("dsl: " + err.Error())
	}
	return node
}
