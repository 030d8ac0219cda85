package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesViewerConstants(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1600, cfg.Window.Width)
	assert.Equal(t, 900, cfg.Window.Height)
	assert.Equal(t, 60, cfg.FrameRate)
	assert.Equal(t, float32(50), cfg.Camera.FOV)
	assert.Equal(t, float32(0.1), cfg.Camera.Near)
	assert.Equal(t, float32(100), cfg.Camera.Far)
	assert.Equal(t, float32(0.01), cfg.Camera.Speed)
	assert.Equal(t, float32(0.05), cfg.Camera.Sensitivity)
	assert.Equal(t, 30, cfg.Grid.N)
	assert.Equal(t, 3, cfg.Grid.S)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.toml")
	data := []byte(`
frame_rate = 30

[window]
width = 800
height = 600

[keys]
forward = "W"
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.FrameRate)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "Scene3D", cfg.Window.Title)
	assert.Equal(t, "W", cfg.Keys.Forward)
	assert.Equal(t, "S", cfg.Keys.Back)
	assert.Equal(t, float32(50), cfg.Camera.FOV)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.toml")
	require.NoError(t, os.WriteFile(path, []byte("fps = 30\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero height", func(c *Config) { c.Window.Height = 0 }},
		{"negative width", func(c *Config) { c.Window.Width = -1 }},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }},
		{"far before near", func(c *Config) { c.Camera.Far = 0.05 }},
		{"zero grid step", func(c *Config) { c.Grid.S = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestEncodeRoundTripsThroughDecode(t *testing.T) {
	data, err := Encode(Default())
	require.NoError(t, err)

	var cfg Config
	require.NoError(t, Decode(data, &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestAspectRatio(t *testing.T) {
	assert.InDelta(t, 16.0/9.0, Default().Window.AspectRatio(), 1e-6)
}
