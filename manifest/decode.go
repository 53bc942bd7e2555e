// ABOUTME: Decodes manifest documents from JSON or YAML bytes into the Manifest model.
// ABOUTME: Format is picked from the content type or file extension; JSON is the default.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the serialization of a manifest document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// DetectFormat picks a Format from a Content-Type header value and a file or
// URL path. A YAML content type or a .yaml/.yml extension selects YAML.
func DetectFormat(contentType, name string) Format {
	if strings.Contains(strings.ToLower(contentType), "yaml") {
		return FormatYAML
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Decode parses a manifest document without validating its assets. The
// document must be exactly one object; trailing data and top-level null,
// arrays, or scalars are rejected with ErrNotObject or a syntax error. A
// missing or null assets field yields an empty, non-nil list.
func Decode(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatYAML:
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
			return nil, fmt.Errorf("decode yaml: %w", ErrNotObject)
		}
		if err := doc.Content[0].Decode(&m); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		body := bytes.TrimSpace(data)
		if len(body) == 0 || body[0] != '{' {
			return nil, fmt.Errorf("decode json: %w", ErrNotObject)
		}
		// Unmarshal rejects anything after the first value.
		if err := json.Unmarshal(body, &m); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	}
	if m.Assets == nil {
		m.Assets = []Asset{}
	}
	return &m, nil
}

// checkPresence returns ErrMissingPath, annotated with the asset position, for
// the first asset without a path.
func checkPresence(assets []Asset) error {
	for i, a := range assets {
		if a.Path == "" {
			return fmt.Errorf("asset %d: %w", i, ErrMissingPath)
		}
	}
	return nil
}
