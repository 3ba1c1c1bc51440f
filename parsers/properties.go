package parsers

import (
	"fmt"

	"github.com/magiconair/properties"
)

// Properties parses Java-style .properties files into a flat mapping of
// dotted keys to string values.
type Properties struct{}

func (Properties) Parse(data []byte) (map[string]any, error) {
	p, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("error decoding properties configs: %w", err)
	}

	keys := p.Keys()
	cfg := make(map[string]any, len(keys))
	for _, k := range keys {
		v, _ := p.Get(k)
		cfg[k] = v
	}

	return cfg, nil
}
