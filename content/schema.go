package content

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema of the record produced for kind.
func Schema(kind Kind) ([]byte, error) {
	h, err := Lookup(kind)
	if err != nil {
		return nil, err
	}

	r := &jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}
	s := r.Reflect(h.Prototype())
	s.Title = string(normalizeKind(kind))

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s schema: %w", kind, err)
	}
	return data, nil
}
