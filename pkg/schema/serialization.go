package schema

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML parses a YAML machine document. Syntax errors are reported as
// malformed definitions so callers can treat unparseable and incomplete
// files the same way.
func DecodeYAML(data []byte) (*Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, &MalformedError{Errors: []error{fmt.Errorf("invalid yaml: %w", err)}}
	}
	return &d, nil
}

// EncodeYAML renders the document as YAML.
func EncodeYAML(d *Document) ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode machine document: %w", err)
	}
	return data, nil
}

// DecodeJSON parses a JSON machine document, for inline definitions on the
// HTTP surface.
func DecodeJSON(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, &MalformedError{Errors: []error{fmt.Errorf("invalid json: %w", err)}}
	}
	return &d, nil
}

// EncodeJSON renders the document as JSON.
func EncodeJSON(d *Document) ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode machine document: %w", err)
	}
	return data, nil
}
