package file

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/tendril/pkg/schema"
)

// ParseYAML reads a YAML machine document.
func ParseYAML(r io.Reader) (*schema.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	return schema.DecodeYAML(data)
}

// LoadYAMLFile parses the YAML definition at path.
func LoadYAMLFile(path string) (*schema.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open definition: %w", err)
	}
	d, err := schema.DecodeYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return d, nil
}
