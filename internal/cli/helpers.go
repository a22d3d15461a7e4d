package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/wicker"
	"github.com/aretw0/wicker/internal/logging"
	"github.com/aretw0/wicker/pkg/registry"

	// Format extensions register their custom kinds with the type
	// registry; importing them makes "jpeg" and "png" valid schema
	// description types for the CLI.
	_ "github.com/aretw0/wicker/pkg/formats/jpeg"
	_ "github.com/aretw0/wicker/pkg/formats/png"
)

// CreateLogger configures the application logger.
// In debug mode it writes to Stderr (decoded output goes to Stdout).
func CreateLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// LoadDescription reads a schema description file, choosing the codec
// by file extension: .yaml/.yml, .json or .cbor.
func LoadDescription(path string) (registry.Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return registry.Description{}, fmt.Errorf("failed to read schema: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return registry.ParseYAML(data)
	case ".json":
		return registry.ParseJSON(data)
	case ".cbor":
		return registry.ParseCBOR(data)
	default:
		return registry.Description{}, fmt.Errorf("unsupported schema format %q (want .yaml, .json or .cbor)", filepath.Ext(path))
	}
}

// BuildEngine loads a schema description and wraps it in an engine.
func BuildEngine(schemaPath string, logger *slog.Logger) (*wicker.Engine, error) {
	desc, err := LoadDescription(schemaPath)
	if err != nil {
		return nil, err
	}
	eng, err := wicker.NewFromDescription(desc, wicker.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return eng, nil
}
