package parsers

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// INI parses .ini files.
//
// Keys of the unnamed default section become top-level keys; each named
// section becomes a top-level key mapping to its key/value pairs.
type INI struct{}

func (INI) Parse(data []byte) (map[string]any, error) {
	f, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding ini configs: %w", err)
	}

	cfg := map[string]any{}
	for _, section := range f.Sections() {
		values := make(map[string]any, len(section.Keys()))
		for _, key := range section.Keys() {
			values[key.Name()] = key.Value()
		}

		if section.Name() == ini.DefaultSection {
			for k, v := range values {
				cfg[k] = v
			}
			continue
		}

		if len(values) > 0 {
			cfg[section.Name()] = values
		}
	}

	return cfg, nil
}
