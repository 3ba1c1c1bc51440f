package parsers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry_SupportedExtensions(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, []string{
		".ini", ".json", ".pickle", ".pkl", ".properties",
		".xml", ".yaml", ".yml",
	}, r.Extensions())
}

func TestRegistry_LookupIsCaseInsensitive(t *testing.T) {
	r := DefaultRegistry()

	p, ok := r.Lookup("catalog.YAML")
	require.True(t, ok)
	assert.IsType(t, YAML{}, p)
}

func TestRegistry_RegisterNewVariant(t *testing.T) {
	// Arrange
	r := NewRegistry()
	r.Register(JSON{}, "json5")

	// Assert
	assert.True(t, r.Supports("catalog.json5"))
	assert.False(t, r.Supports("catalog.yaml"))
}

func TestParseFile_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "catalog.yml")
	require.NoError(t, os.WriteFile(p, []byte("a: 1\n"), 0o600))

	// Act
	cfg, err := ParseFile(DefaultRegistry(), p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1}, cfg)
}

func TestParseFile_UnknownExtension(t *testing.T) {
	// Act
	cfg, err := ParseFile(DefaultRegistry(), "catalog.toml")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "catalog.toml", parseErr.Path)
	assert.Contains(t, err.Error(), "no parser registered")
}

func TestParseFile_FileNotFound(t *testing.T) {
	// Act
	cfg, err := ParseFile(DefaultRegistry(), "definitely-does-not-exist.yml")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "definitely-does-not-exist.yml", parseErr.Path)
}

func TestParseFile_WrapsDecodeFailureWithPath(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := ParseFile(DefaultRegistry(), p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), p)
}
