package registry

import (
	"fmt"
	"sync"

	"github.com/aretw0/wicker/pkg/codec"
	"github.com/aretw0/wicker/pkg/schema"
)

// Constructor rebuilds a live schema node from its plain description.
// Every constructor receives the raw description; the builtin ones
// reify their children by calling Make on them, and custom
// constructors may do the same.
type Constructor func(desc Description) (schema.Node, error)

var (
	mu           sync.RWMutex
	constructors = make(map[string]Constructor)
)

// Register adds a constructor under a type name. Format extensions
// register their custom kinds at init time; registering an existing
// name overwrites it, which lets a client shadow a builtin.
func Register(typeName string, ctor Constructor) {
	mu.Lock()
	defer mu.Unlock()
	constructors[typeName] = ctor
}

// Lookup returns the constructor registered under typeName.
func Lookup(typeName string) (Constructor, bool) {
	mu.RLock()
	defer mu.RUnlock()
	ctor, ok := constructors[typeName]
	return ctor, ok
}

// Make rebuilds a live schema tree from a plain description, children
// first. Type names that are not registered but parse as primitive wire
// types reify as primitive nodes, so a description never has to spell
// out "primitive" separately from the wire type.
func Make(desc Description) (schema.Node, error) {
	if ctor, ok := Lookup(desc.Type); ok {
		return ctor(desc)
	}
	if codec.ValidType(desc.Type) {
		return makePrimitive(desc)
	}
	return nil, fmt.Errorf("%w: %q", codec.ErrUnknownType, desc.Type)
}

func init() {
	// The builtin kinds form an explicit function table, populated
	// before any reification can run.
	Register(schema.KindRecord, makeRecord)
	Register(schema.KindTuple, makeTuple)
	Register(schema.KindArray, makeArray)
	Register(schema.KindHeadArray, makeHeadArray)
	Register(schema.KindHeadPrimitive, makeHeadPrimitive)
	Register(schema.KindEnum, makeEnum)
	Register(schema.KindEnumEntry, makeEnumEntry)
}

func makeChildren(desc Description) ([]schema.Node, error) {
	children := make([]schema.Node, len(desc.Children))
	for i, child := range desc.Children {
		node, err := Make(child)
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		children[i] = node
	}
	return children, nil
}

// finish applies the description fields shared by every kind.
func finish(node schema.Node, desc Description) schema.Node {
	if len(desc.Args) > 0 {
		node.SetArgs(desc.Args...)
	}
	if desc.Value != nil {
		node.SetDefault(desc.Value)
	}
	return node
}

func makePrimitive(desc Description) (schema.Node, error) {
	p, err := schema.NewPrimitive(desc.Name, desc.Type, desc.Args...)
	if err != nil {
		return nil, err
	}
	if desc.Value != nil {
		p.SetDefault(desc.Value)
	}
	return p, nil
}

func makeRecord(desc Description) (schema.Node, error) {
	children, err := makeChildren(desc)
	if err != nil {
		return nil, err
	}
	rec, err := schema.NewRecord(desc.Name, children...)
	if err != nil {
		return nil, err
	}
	return finish(rec, desc), nil
}

func makeTuple(desc Description) (schema.Node, error) {
	children, err := makeChildren(desc)
	if err != nil {
		return nil, err
	}
	return finish(schema.NewTuple(desc.Name, children...), desc), nil
}

func makeArray(desc Description) (schema.Node, error) {
	if len(desc.Children) != 1 {
		return nil, fmt.Errorf("array needs exactly one child, got %d", len(desc.Children))
	}
	elem, err := Make(desc.Children[0])
	if err != nil {
		return nil, fmt.Errorf("element: %w", err)
	}
	return finish(schema.NewArray(desc.Name, elem), desc), nil
}

func makeHeadArray(desc Description) (schema.Node, error) {
	if len(desc.Children) != 1 {
		return nil, fmt.Errorf("head-array needs exactly one child, got %d", len(desc.Children))
	}
	elem, err := Make(desc.Children[0])
	if err != nil {
		return nil, fmt.Errorf("element: %w", err)
	}
	ha, err := schema.NewHeadArray(desc.Name, desc.HeadType, elem)
	if err != nil {
		return nil, err
	}
	return finish(ha, desc), nil
}

func makeHeadPrimitive(desc Description) (schema.Node, error) {
	if len(desc.Children) != 1 {
		return nil, fmt.Errorf("head-primitive needs exactly one child, got %d", len(desc.Children))
	}
	hp, err := schema.NewHeadPrimitive(desc.Name, desc.HeadType, desc.Children[0].Type)
	if err != nil {
		return nil, err
	}
	return finish(hp, desc), nil
}

func makeEnum(desc Description) (schema.Node, error) {
	var entries []*schema.EnumEntry
	var fallback schema.Node
	for i, child := range desc.Children {
		if child.Type == schema.KindEnumEntry {
			entries = append(entries, schema.NewEnumEntry(child.Value, child.Literal))
			continue
		}
		if fallback != nil {
			return nil, fmt.Errorf("enum has more than one default child (child %d)", i)
		}
		node, err := Make(child)
		if err != nil {
			return nil, fmt.Errorf("default child %d: %w", i, err)
		}
		fallback = node
	}
	return finish(schema.NewEnum(desc.Name, entries, fallback), desc), nil
}

func makeEnumEntry(desc Description) (schema.Node, error) {
	return schema.NewEnumEntry(desc.Value, desc.Literal), nil
}
