// Package file adapts the engine to host files: load a file and decode
// it, encode a value and write it back. The adapter is deliberately
// thin; nothing here is load-bearing for codec correctness.
package file

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/wicker"
	"github.com/aretw0/wicker/internal/logging"
)

// Adapter binds an engine to the filesystem.
type Adapter struct {
	engine *wicker.Engine
	logger *slog.Logger
}

// Option configures the adapter.
type Option func(*Adapter)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

// New creates a file adapter over the given engine.
func New(engine *wicker.Engine, opts ...Option) *Adapter {
	a := &Adapter{engine: engine}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = logging.NewNop()
	}
	return a
}

// Load reads the file and decodes it under the engine's root schema.
func (a *Adapter) Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	a.logger.Debug("loaded file", "path", path, "bytes", len(data))

	value, err := a.engine.ParseBuffer(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return value, nil
}

// Save encodes the value under the engine's root schema and writes the
// bytes to path.
func (a *Adapter) Save(path string, value any) error {
	wire, err := a.engine.EncodeObject(value)
	if err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}
	if err := os.WriteFile(path, wire, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	a.logger.Debug("saved file", "path", path, "bytes", len(wire))
	return nil
}
