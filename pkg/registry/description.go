package registry

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/wicker/pkg/schema"
)

// Description is the plain, transportable form of a schema tree: what a
// schema looks like when it travels as data instead of as live nodes.
// Make turns a description into a tree; Describe is its inverse for the
// builtin kinds.
type Description struct {
	// Type is the registry key: a wire type for primitives, a kind
	// name for composites.
	Type string `json:"type" yaml:"type" cbor:"type" mapstructure:"type"`
	// Name is the field key inside a record.
	Name string `json:"name,omitempty" yaml:"name,omitempty" cbor:"name,omitempty" mapstructure:"name"`
	// HeadType is the length prefix's wire type for the head kinds.
	HeadType string `json:"head_type,omitempty" yaml:"head_type,omitempty" cbor:"head_type,omitempty" mapstructure:"head_type"`
	// Args are the node's default arguments.
	Args []int `json:"args,omitempty" yaml:"args,omitempty" cbor:"args,omitempty" mapstructure:"args"`
	// Value is the default value, or the scalar of an enum entry.
	Value any `json:"value,omitempty" yaml:"value,omitempty" cbor:"value,omitempty" mapstructure:"value"`
	// Literal is an enum entry's byte signature.
	Literal []byte `json:"literal,omitempty" yaml:"literal,omitempty" cbor:"literal,omitempty" mapstructure:"literal"`
	// Children are the node's ordered children.
	Children []Description `json:"children,omitempty" yaml:"children,omitempty" cbor:"children,omitempty" mapstructure:"children"`
}

// FromMap decodes a generic map (as produced by a YAML or JSON
// unmarshal into map[string]any) into a Description.
func FromMap(m map[string]any) (Description, error) {
	var desc Description
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &desc,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Description{}, err
	}
	if err := dec.Decode(m); err != nil {
		return Description{}, fmt.Errorf("description: %w", err)
	}
	return desc, nil
}

// Describe flattens a live schema tree built from the builtin kinds
// back into its plain description.
func Describe(node schema.Node) (Description, error) {
	desc := Description{
		Name:  node.Name(),
		Args:  node.Args(),
		Value: node.Default(),
	}

	switch n := node.(type) {
	case *schema.Primitive:
		desc.Type = n.TypeName()
		return desc, nil

	case *schema.Record, *schema.Tuple:
		desc.Type = node.Kind()
		for i, child := range node.Children() {
			c, err := Describe(child)
			if err != nil {
				return Description{}, fmt.Errorf("child %d: %w", i, err)
			}
			desc.Children = append(desc.Children, c)
		}
		return desc, nil

	case *schema.Array:
		desc.Type = schema.KindArray
		elem, err := Describe(n.Elem())
		if err != nil {
			return Description{}, fmt.Errorf("element: %w", err)
		}
		desc.Children = []Description{elem}
		return desc, nil

	case *schema.HeadArray:
		desc.Type = schema.KindHeadArray
		desc.HeadType = n.HeadType()
		elem, err := Describe(n.Elem())
		if err != nil {
			return Description{}, fmt.Errorf("element: %w", err)
		}
		desc.Children = []Description{elem}
		return desc, nil

	case *schema.HeadPrimitive:
		desc.Type = schema.KindHeadPrimitive
		desc.HeadType = n.HeadType()
		desc.Children = []Description{{Type: n.ContentType()}}
		return desc, nil

	case *schema.Enum:
		desc.Type = schema.KindEnum
		for _, entry := range n.Entries() {
			desc.Children = append(desc.Children, Description{
				Type:    schema.KindEnumEntry,
				Value:   entry.EntryValue(),
				Literal: entry.Literal(),
			})
		}
		if fb := n.Fallback(); fb != nil {
			c, err := Describe(fb)
			if err != nil {
				return Description{}, fmt.Errorf("default: %w", err)
			}
			desc.Children = append(desc.Children, c)
		}
		return desc, nil

	case *schema.EnumEntry:
		desc.Type = schema.KindEnumEntry
		desc.Value = n.EntryValue()
		desc.Literal = n.Literal()
		return desc, nil
	}

	return Description{}, fmt.Errorf("cannot describe node kind %q (%T)", node.Kind(), node)
}
