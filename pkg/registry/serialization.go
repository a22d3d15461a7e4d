package registry

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding: the same description always produces identical bytes, so a
// serialized schema can itself be compared byte-for-byte.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("registry: CBOR encoder initialization failed: " + err.Error())
	}
}

// ParseYAML reads a description from a YAML document.
func ParseYAML(data []byte) (Description, error) {
	var desc Description
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return Description{}, fmt.Errorf("description: %w", err)
	}
	return desc, nil
}

// MarshalYAML serializes a description as a YAML document.
func MarshalYAML(desc Description) ([]byte, error) {
	return yaml.Marshal(desc)
}

// ParseJSON reads a description from a JSON document.
func ParseJSON(data []byte) (Description, error) {
	var desc Description
	if err := json.Unmarshal(data, &desc); err != nil {
		return Description{}, fmt.Errorf("description: %w", err)
	}
	return desc, nil
}

// MarshalJSON serializes a description as a JSON document.
func MarshalJSON(desc Description) ([]byte, error) {
	return json.Marshal(desc)
}

// ParseCBOR reads a description from CBOR bytes.
func ParseCBOR(data []byte) (Description, error) {
	var desc Description
	if err := cbor.Unmarshal(data, &desc); err != nil {
		return Description{}, fmt.Errorf("description: %w", err)
	}
	return desc, nil
}

// MarshalCBOR serializes a description as deterministic CBOR.
func MarshalCBOR(desc Description) ([]byte, error) {
	return encMode.Marshal(desc)
}
