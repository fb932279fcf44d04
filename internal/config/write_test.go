package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault_Loads(t *testing.T) {
	root := t.TempDir()
	t.Setenv("SUBSTANCE_PROJECT", root)

	path := filepath.Join(t.TempDir(), "nested", "substance.toml")
	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, root, cfg.Project.Root)
	assert.Equal(t, "Models", cfg.Project.ModelsDir)
	assert.Equal(t, []float64{1, 0, 0, 1}, cfg.Shading.EmissiveColor)
}

func TestConfig_Write(t *testing.T) {
	cfg := validConfig(t)
	cfg.Shading.NormalScale = 2

	path := filepath.Join(t.TempDir(), "out.toml")
	require.NoError(t, cfg.Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "normal_scale = 2.0")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, loaded.Shading.NormalScale, 1e-9)
}

func TestConfigError(t *testing.T) {
	e := &ConfigError{}
	assert.False(t, e.HasErrors())
	assert.Empty(t, e.Error())

	e = &ConfigError{Missing: []string{"A"}, Errors: []string{"x: bad"}}
	assert.True(t, e.HasErrors())
	assert.Contains(t, e.Error(), "missing environment variables: A")
	assert.Contains(t, e.Error(), "  - x: bad")
}

func TestForProject(t *testing.T) {
	cfg := ForProject("/work/game")
	assert.Equal(t, "/work/game", cfg.Project.Root)
	assert.Equal(t, filepath.Join("/work/game", "Library", "assets.db"), cfg.Database.Path)
	assert.Equal(t, "Assets/Models", cfg.ModelsPath())
}
