package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	assert.Contains(t, DefaultPath(), filepath.Join(".config", "substance", "config.toml"))
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	assert.Equal(t, "/custom/config/substance/config.toml", DefaultPath())
}

func TestDiscover_EnvVar(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[project]"), 0644))
	t.Setenv("SUBSTANCE_CONFIG", cfgPath)

	path, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, cfgPath, path)
}

func TestDiscover_EnvVarNotFound(t *testing.T) {
	t.Setenv("SUBSTANCE_CONFIG", "/nonexistent/config.toml")

	_, err := Discover()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUBSTANCE_CONFIG")
}

func TestDiscover_CurrentDir(t *testing.T) {
	t.Setenv("SUBSTANCE_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.WriteFile("substance.toml", []byte("[project]"), 0644))

	path, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, "./substance.toml", path)
}
