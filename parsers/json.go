package parsers

import (
	"encoding/json"
	"errors"
	"fmt"
)

// JSON parses .json files.
type JSON struct{}

// Parse decodes data as a JSON document whose top level is an object.
func (JSON) Parse(data []byte) (map[string]any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	if doc == nil {
		return map[string]any{}, nil
	}

	cfg, ok := doc.(map[string]any)
	if !ok {
		return nil, errors.New("top-level content is not a json object")
	}

	return cfg, nil
}
