package parsers

import (
	"fmt"

	"github.com/clbanning/mxj/v2"
)

// XML parses .xml files. The document root element becomes the single
// top-level key of the returned mapping.
type XML struct{}

func (XML) Parse(data []byte) (map[string]any, error) {
	m, err := mxj.NewMapXml(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding xml configs: %w", err)
	}

	return map[string]any(m), nil
}
