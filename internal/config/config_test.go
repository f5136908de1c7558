package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "pdflatex", cfg.LatexCommand)
	assert.Equal(t, dir, cfg.DataDir)
	assert.True(t, cfg.UseBrowser)
	assert.False(t, cfg.Verbose)
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := `{"api_key": "test-key", "latex_command": "xelatex", "verbose": true}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "xelatex", cfg.LatexCommand)
	assert.True(t, cfg.Verbose)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := `{"api_key": "file-key"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvLatexCommand, "lualatex")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "lualatex", cfg.LatexCommand)
}

func TestLoadRejectsUnknownCompiler(t *testing.T) {
	dir := t.TempDir()
	content := `{"latex_command": "not-a-compiler"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{nope"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.DataDir = dir
	cfg.APIKey = "saved-key"
	require.NoError(t, cfg.Save())

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "saved-key", loaded.APIKey)
}

func TestRequireAPIKey(t *testing.T) {
	cfg := Default()
	_, err := cfg.RequireAPIKey()
	require.Error(t, err)

	cfg.APIKey = "key"
	key, err := cfg.RequireAPIKey()
	require.NoError(t, err)
	assert.Equal(t, "key", key)
}
