package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/wicker"
	"github.com/aretw0/wicker/pkg/schema"
)

func testEngine(t *testing.T) *wicker.Engine {
	t.Helper()
	root := schema.MustRecord("entry",
		schema.MustPrimitive("id", "u4b"),
		schema.MustPrimitive("label", "cstr"),
	)
	eng, err := wicker.New(root)
	require.NoError(t, err)
	return eng
}

func TestLoadSaveRoundTrip(t *testing.T) {
	adapter := New(testEngine(t))
	dir := t.TempDir()
	path := filepath.Join(dir, "entry.bin")

	value := map[string]any{"id": 42, "label": "vine"}
	require.NoError(t, adapter.Save(path, value))

	loaded, err := adapter.Load(path)
	require.NoError(t, err)
	fields := loaded.(*schema.Fields)
	id, _ := fields.Get("id")
	require.Equal(t, uint64(42), id)
	label, _ := fields.Get("label")
	require.Equal(t, "vine", label)

	// The written bytes match a direct encode.
	wire, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x2A, 'v', 'i', 'n', 'e', 0x00}, wire)
}

func TestLoadMissingFile(t *testing.T) {
	adapter := New(testEngine(t))
	_, err := adapter.Load(filepath.Join(t.TempDir(), "absent.bin"))
	require.Error(t, err)
}

func TestLoadCorruptInput(t *testing.T) {
	adapter := New(testEngine(t))
	dir := t.TempDir()
	path := filepath.Join(dir, "short.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x01}, 0o644))

	_, err := adapter.Load(path)
	require.Error(t, err)
}
