// ABOUTME: Exports a manifest as a YAML document using gopkg.in/yaml.v3.
// ABOUTME: Field order follows the Asset struct; empty optional fields are omitted.
package manifest

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ExportYAML serializes the manifest as YAML with two-space indentation.
func ExportYAML(m *Manifest) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("manifest must not be nil")
	}
	out := Manifest{Assets: m.Assets}
	if out.Assets == nil {
		out.Assets = []Asset{}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("marshal manifest yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("flush manifest yaml: %w", err)
	}
	return buf.Bytes(), nil
}
