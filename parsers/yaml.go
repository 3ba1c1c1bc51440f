package parsers

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML parses .yaml and .yml files.
type YAML struct{}

// Parse decodes data as a YAML document whose top level is a mapping.
// An empty document yields an empty mapping.
func (YAML) Parse(data []byte) (map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	if doc == nil {
		return map[string]any{}, nil
	}

	cfg, ok := doc.(map[string]any)
	if !ok {
		return nil, errors.New("top-level content is not a mapping with string keys")
	}

	return cfg, nil
}
