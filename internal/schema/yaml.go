package schema

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// readYAML reads and unmarshals a YAML file into out. An unmarshal failure
// is reported as a *ValidationError so callers can distinguish malformed
// content from I/O failures.
func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return &ValidationError{Path: path, Reason: err.Error()}
	}

	return nil
}

// marshalYAML serializes doc with 2-space indentation. Key order follows
// the struct field declaration order; yaml.v3 never resorts keys.
func marshalYAML(doc interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish document: %w", err)
	}
	return buf.Bytes(), nil
}

// writeYAML marshals doc and writes it to path.
func writeYAML(path string, doc interface{}) error {
	data, err := marshalYAML(doc)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
