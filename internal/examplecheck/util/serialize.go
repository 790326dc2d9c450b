package util

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

func SerializeToJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// SerializeToYAML writes v as YAML with two-space indentation. Types
// implementing yaml.Marshaler control their own representation.
func SerializeToYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
