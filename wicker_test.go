package wicker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/wicker/pkg/registry"
	"github.com/aretw0/wicker/pkg/schema"
)

func TestEngineRoundTrip(t *testing.T) {
	root := schema.MustRecord("frame",
		schema.MustPrimitive("tag", "u2b"),
		schema.MustHeadPrimitive("body", "uv", "bytes"),
	)
	eng, err := New(root)
	require.NoError(t, err)

	wire, err := eng.EncodeObject(map[string]any{
		"tag":  7,
		"body": []byte{0xDE, 0xAD},
	})
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x07, 0x02, 0xDE, 0xAD}, wire)

	value, err := eng.ParseBuffer(wire)
	require.NoError(t, err)
	fields := value.(*schema.Fields)
	tag, _ := fields.Get("tag")
	require.Equal(t, uint64(7), tag)

	again, err := eng.EncodeObject(value)
	require.NoError(t, err)
	require.Equal(t, wire, again)
}

func TestEngineRequiresRoot(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestNewFromDescription(t *testing.T) {
	eng, err := NewFromDescription(registry.Description{
		Type: schema.KindRecord,
		Name: "point",
		Children: []registry.Description{
			{Type: "i4l", Name: "x"},
			{Type: "i4l", Name: "y"},
		},
	})
	require.NoError(t, err)

	wire, err := eng.EncodeObject(map[string]any{"x": -1, "y": 2})
	require.NoError(t, err)
	require.Len(t, wire, 8)

	_, err = NewFromDescription(registry.Description{Type: "mystery"})
	require.Error(t, err)
}
