package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXML_Parse_RootElementBecomesTopLevelKey(t *testing.T) {
	data := []byte(`<catalog><db><type>sql</type></db></catalog>`)

	cfg, err := XML{}.Parse(data)

	require.NoError(t, err)
	require.Contains(t, cfg, "catalog")

	catalog, ok := cfg["catalog"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"db": map[string]any{"type": "sql"}}, catalog)
}

func TestXML_Parse_InvalidSyntax(t *testing.T) {
	cfg, err := XML{}.Parse([]byte(`<catalog><unclosed>`))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding xml configs")
}
