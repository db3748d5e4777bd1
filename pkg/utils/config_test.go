package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "OpenGL Tutorial", cfg.Window.Title)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Equal(t, 60, cfg.Window.TPS)
	assert.Equal(t, "blank", cfg.Window.Stage)
	assert.Equal(t, 1e-5, cfg.Quiz.Tolerance)
	require.NoError(t, validateConfig(cfg))
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, "blank", cfg.Window.Stage)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	home := t.TempDir()

	cfg := DefaultConfig()
	cfg.Window.Width = 800
	cfg.Window.Height = 600
	cfg.Window.Stage = "lighting"
	cfg.Quiz.Tolerance = 1e-4

	require.NoError(t, SaveConfig(home, cfg))
	require.FileExists(t, filepath.Join(home, "config.yaml"))

	loaded, err := LoadConfig(home, "")
	require.NoError(t, err)
	assert.Equal(t, 800, loaded.Window.Width)
	assert.Equal(t, 600, loaded.Window.Height)
	assert.Equal(t, "lighting", loaded.Window.Stage)
	assert.Equal(t, 1e-4, loaded.Quiz.Tolerance)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	home := t.TempDir()
	bad := []byte("window:\n  width: -10\n  height: 480\n  tps: 60\n")
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), bad, 0o644))

	_, err := LoadConfig(home, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadConfigExplicitFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "labkit.yaml")
	data := []byte("window:\n  width: 800\n  height: 600\n  stage: box\n")
	require.NoError(t, os.WriteFile(cfgFile, data, 0o644))

	// The explicit file wins even when home holds a config.
	home := t.TempDir()
	other := DefaultConfig()
	other.Window.Width = 320
	require.NoError(t, SaveConfig(home, other))

	cfg, err := LoadConfig(home, cfgFile)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, "box", cfg.Window.Stage)
}

func TestLoadConfigExplicitFileMissing(t *testing.T) {
	_, err := LoadConfig(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("LABKIT_WINDOW_STAGE", "lighting")
	t.Setenv("LABKIT_SOLVE_MATRIX_FILE", "a.csv")
	t.Setenv("LABKIT_SOLVE_RHS_FILE", "b.csv")
	t.Setenv("LABKIT_WINDOW_MESH", "teapot.obj")

	cfg, err := LoadConfig(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, "lighting", cfg.Window.Stage)
	assert.Equal(t, "a.csv", cfg.Solve.MatrixFile)
	assert.Equal(t, "b.csv", cfg.Solve.RHSFile)
	assert.Equal(t, "teapot.obj", cfg.Window.Mesh)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative height", func(c *Config) { c.Window.Height = -1 }},
		{"zero tps", func(c *Config) { c.Window.TPS = 0 }},
		{"zero tolerance", func(c *Config) { c.Quiz.Tolerance = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, validateConfig(cfg))
		})
	}
}
