package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "text", cfg.Defaults.Format)
	assert.False(t, cfg.Defaults.NoColor)
	assert.Equal(t, 250, cfg.Watch.DebounceMS)
	assert.Equal(t, 50, cfg.Document.MaxPDFPages)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glossa.yaml")
	content := `
defaults:
  format: json
  no_color: true
watch:
  debounce_ms: 500
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Defaults.Format)
	assert.True(t, cfg.Defaults.NoColor)
	assert.Equal(t, 500, cfg.Watch.DebounceMS)
	// Unset fields keep defaults.
	assert.Equal(t, 50, cfg.Document.MaxPDFPages)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "bad-format.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  format: xml\n"), 0o644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown format")

	path = filepath.Join(dir, "bad-debounce.yaml")
	require.NoError(t, os.WriteFile(path, []byte("watch:\n  debounce_ms: -1\n"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "debounce_ms")

	path = filepath.Join(dir, "not-yaml.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults: ["), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	// No explicit path and no config file in an empty directory.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Defaults.Format)

	// A glossa.yaml in the working directory is picked up.
	require.NoError(t, os.WriteFile("glossa.yaml", []byte("defaults:\n  verbose: true\n"), 0o644))
	cfg, err = LoadOrDefault("")
	require.NoError(t, err)
	assert.True(t, cfg.Defaults.Verbose)
}
