package wicker

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/wicker/internal/logging"
	"github.com/aretw0/wicker/pkg/registry"
	"github.com/aretw0/wicker/pkg/schema"
)

// Version is the release version of the wicker library.
const Version = "0.1.0"

// Engine is the high-level entry point for the wicker library. It wraps
// a root schema node and provides buffer-level parse and encode, which
// is all the adapters need.
type Engine struct {
	root   schema.Node
	logger *slog.Logger
	Name   string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine. The codec
// core itself never logs; the engine logs only at the call boundary.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithName labels the engine for log output; useful when one process
// hosts several formats.
func WithName(name string) Option {
	return func(e *Engine) {
		e.Name = name
	}
}

// New initializes an Engine over the given root schema node.
func New(root schema.Node, opts ...Option) (*Engine, error) {
	if root == nil {
		return nil, fmt.Errorf("root schema node is required")
	}
	eng := &Engine{root: root}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.Name == "" {
		eng.Name = root.TypeName()
	}
	return eng, nil
}

// NewFromDescription reifies a plain schema description through the
// type registry and wraps the resulting tree.
func NewFromDescription(desc registry.Description, opts ...Option) (*Engine, error) {
	root, err := registry.Make(desc)
	if err != nil {
		return nil, fmt.Errorf("failed to reify schema: %w", err)
	}
	return New(root, opts...)
}

// Root exposes the engine's schema tree.
func (e *Engine) Root() schema.Node {
	return e.root
}

// ParseBuffer decodes the buffer from offset zero under the root schema
// and returns the decoded value.
func (e *Engine) ParseBuffer(data []byte) (any, error) {
	value, n, err := e.root.Decode(data, 0)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("parsed buffer", "engine", e.Name, "bytes", n, "of", len(data))
	return value, nil
}

// EncodeObject encodes the value under the root schema and returns its
// wire bytes.
func (e *Engine) EncodeObject(value any) ([]byte, error) {
	wire, err := e.root.Encode(value)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("encoded object", "engine", e.Name, "bytes", len(wire))
	return wire, nil
}
