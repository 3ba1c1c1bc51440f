package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperties_Parse_FlatDottedKeys(t *testing.T) {
	data := []byte("db.host=localhost\ndb.port=5432\nname=catalog\n")

	cfg, err := Properties{}.Parse(data)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"db.host": "localhost",
		"db.port": "5432",
		"name":    "catalog",
	}, cfg)
}

func TestProperties_Parse_EmptyInput(t *testing.T) {
	cfg, err := Properties{}.Parse([]byte(""))

	require.NoError(t, err)
	assert.Empty(t, cfg)
}
