package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meshsplat.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Window.Width, cfg.Window.Width)
	assert.Equal(t, def.Splats.Count, cfg.Splats.Count)
	assert.Equal(t, def.Mesh.Primitive, cfg.Mesh.Primitive)
	require.NotNil(t, cfg.Window.VSync)
	assert.True(t, *cfg.Window.VSync)
}

func TestLoad_OverlaysFileOnDefaults(t *testing.T) {
	path := writeConfig(t, `
[window]
width = 1920
vsync = false

[mesh]
primitive = "torus"
preview = true

[splats]
count = 50000
color_mode = "fixed"
color = [0.8, 0.2, 0.2]
depth_sort = true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1920, cfg.Window.Width)
	// Unset height keeps the default.
	assert.Equal(t, 720, cfg.Window.Height)
	require.NotNil(t, cfg.Window.VSync)
	assert.False(t, *cfg.Window.VSync)

	assert.Equal(t, "torus", cfg.Mesh.Primitive)
	assert.True(t, cfg.Mesh.Preview)

	assert.Equal(t, 50000, cfg.Splats.Count)
	assert.Equal(t, "fixed", cfg.Splats.ColorMode)
	assert.Equal(t, [3]float32{0.8, 0.2, 0.2}, cfg.Splats.Color)
	assert.True(t, cfg.Splats.DepthSort)
	// Unset opacity keeps the default.
	assert.InDelta(t, 0.8, float64(cfg.Splats.Opacity), 1e-6)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want string
	}{
		{"bad msaa", "[window]\nmsaa = 3\n", "msaa"},
		{"bad primitive", "[mesh]\nprimitive = \"teapot\"\n", "primitive"},
		{"bad color mode", "[splats]\ncolor_mode = \"rainbow\"\n", "color_mode"},
		{"bad opacity", "[splats]\nopacity = 1.5\n", "opacity"},
		{"bad radius", "[camera]\nradius = -1\n", "radius"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.toml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_ParseError(t *testing.T) {
	_, err := Load(writeConfig(t, "not toml ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestValidate_MeshPathSkipsPrimitiveCheck(t *testing.T) {
	cfg := Default()
	cfg.Mesh.Path = "model.obj"
	cfg.Mesh.Primitive = ""
	assert.NoError(t, cfg.Validate())
}
