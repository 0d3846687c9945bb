package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/meshsplat/meshsplat/common"
)

// Config is the TOML-backed viewer configuration. Every field has a default,
// so an empty file (or no file at all) yields a usable configuration.
type Config struct {
	Window   WindowConfig   `toml:"window"`
	Mesh     MeshConfig     `toml:"mesh"`
	Splats   SplatConfig    `toml:"splats"`
	Camera   CameraConfig   `toml:"camera"`
	Profiler ProfilerConfig `toml:"profiler"`
}

// WindowConfig controls the viewer window and presentation.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`

	// VSync selects the surface present mode. Defaults to true.
	VSync *bool `toml:"vsync"`

	// MSAA is the multisample count for the render target (1, 4, 8, or 16).
	MSAA int `toml:"msaa"`
}

// MeshConfig selects the source mesh the splats are sampled from. Path wins
// when both a path and a primitive are given.
type MeshConfig struct {
	// Path is an OBJ file to load. Empty means use Primitive.
	Path string `toml:"path"`

	// Primitive is one of "cube", "plane", "icosphere", "torus".
	Primitive string `toml:"primitive"`

	// Size scales cube and plane primitives; for icosphere and torus it is
	// the (major) radius.
	Size float32 `toml:"size"`

	// Subdivisions applies to the icosphere primitive.
	Subdivisions int `toml:"subdivisions"`

	// Preview draws the source mesh as a flat-shaded overlay.
	Preview bool `toml:"preview"`
}

// SplatConfig controls the surface sampler.
type SplatConfig struct {
	Count int   `toml:"count"`
	Seed  int64 `toml:"seed"`

	// Scale is the tangent-plane standard deviation in world units.
	// 0 means auto from surface area.
	Scale float32 `toml:"scale"`

	// NormalScale is the out-of-plane scale as a fraction of Scale.
	NormalScale float32 `toml:"normal_scale"`

	Opacity float32 `toml:"opacity"`

	// ColorMode is "fixed" or "normal".
	ColorMode string     `toml:"color_mode"`
	Color     [3]float32 `toml:"color"`

	// PerFace switches the sampler from area-weighted global sampling to
	// per-face proportional rounding.
	PerFace bool `toml:"per_face"`

	// DepthSort enables per-frame back-to-front sorting.
	DepthSort bool `toml:"depth_sort"`

	// FrustumCulling enables per-splat CPU frustum culling.
	FrustumCulling bool `toml:"frustum_culling"`
}

// CameraConfig controls the orbit camera. The vertical field of view is
// fixed at 60 degrees by the splat projection and is not configurable.
type CameraConfig struct {
	// Radius is the initial orbit distance from the target.
	Radius float32 `toml:"radius"`
}

// ProfilerConfig controls the frame-time and memory profiler.
type ProfilerConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the configuration used when no file overrides are present.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	vsync := true
	return Config{
		Window: WindowConfig{
			Title:  "meshsplat",
			Width:  1280,
			Height: 720,
			VSync:  &vsync,
			MSAA:   4,
		},
		Mesh: MeshConfig{
			Primitive:    "icosphere",
			Size:         1,
			Subdivisions: 2,
		},
		Splats: SplatConfig{
			Count:       20000,
			Seed:        1,
			NormalScale: 0.25,
			Opacity:     0.8,
			ColorMode:   "normal",
			Color:       [3]float32{1, 1, 1},
		},
		Camera: CameraConfig{
			Radius: 4,
		},
	}
}

// Load reads a TOML configuration file and fills unset fields with defaults.
// A missing file is not an error; it returns the defaults unchanged.
//
// Parameters:
//   - path: the configuration file path
//
// Returns:
//   - Config: the merged configuration
//   - error: if the file exists but cannot be read or parsed
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg = merge(cfg, file)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// merge overlays file values onto the defaults. Zero values in the file keep
// the default; booleans default to false so they overlay directly, except
// vsync which uses a pointer to distinguish "unset" from "off".
func merge(def, file Config) Config {
	out := def

	out.Window.Title = common.Coalesce(file.Window.Title, def.Window.Title)
	out.Window.Width = common.Coalesce(file.Window.Width, def.Window.Width)
	out.Window.Height = common.Coalesce(file.Window.Height, def.Window.Height)
	out.Window.MSAA = common.Coalesce(file.Window.MSAA, def.Window.MSAA)
	if file.Window.VSync != nil {
		out.Window.VSync = file.Window.VSync
	}

	out.Mesh.Path = common.Coalesce(file.Mesh.Path, def.Mesh.Path)
	out.Mesh.Primitive = common.Coalesce(file.Mesh.Primitive, def.Mesh.Primitive)
	out.Mesh.Size = common.Coalesce(file.Mesh.Size, def.Mesh.Size)
	out.Mesh.Subdivisions = common.Coalesce(file.Mesh.Subdivisions, def.Mesh.Subdivisions)
	out.Mesh.Preview = file.Mesh.Preview

	out.Splats.Count = common.Coalesce(file.Splats.Count, def.Splats.Count)
	out.Splats.Seed = common.Coalesce(file.Splats.Seed, def.Splats.Seed)
	out.Splats.Scale = common.Coalesce(file.Splats.Scale, def.Splats.Scale)
	out.Splats.NormalScale = common.Coalesce(file.Splats.NormalScale, def.Splats.NormalScale)
	out.Splats.Opacity = common.Coalesce(file.Splats.Opacity, def.Splats.Opacity)
	out.Splats.ColorMode = common.Coalesce(file.Splats.ColorMode, def.Splats.ColorMode)
	if file.Splats.Color != [3]float32{} {
		out.Splats.Color = file.Splats.Color
	}
	out.Splats.PerFace = file.Splats.PerFace
	out.Splats.DepthSort = file.Splats.DepthSort
	out.Splats.FrustumCulling = file.Splats.FrustumCulling

	out.Camera.Radius = common.Coalesce(file.Camera.Radius, def.Camera.Radius)
	out.Profiler.Enabled = file.Profiler.Enabled

	return out
}

// Validate checks the merged configuration for values the viewer cannot use.
//
// Returns:
//   - error: the first constraint violation found, or nil
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	switch c.Window.MSAA {
	case 1, 4, 8, 16:
	default:
		return fmt.Errorf("msaa must be 1, 4, 8, or 16, got %d", c.Window.MSAA)
	}
	if c.Mesh.Path == "" {
		switch c.Mesh.Primitive {
		case "cube", "plane", "icosphere", "torus":
		default:
			return fmt.Errorf("unknown mesh primitive %q", c.Mesh.Primitive)
		}
	}
	if c.Splats.Count <= 0 {
		return fmt.Errorf("splat count must be positive, got %d", c.Splats.Count)
	}
	switch c.Splats.ColorMode {
	case "fixed", "normal":
	default:
		return fmt.Errorf("color_mode must be \"fixed\" or \"normal\", got %q", c.Splats.ColorMode)
	}
	if c.Splats.Opacity < 0 || c.Splats.Opacity > 1 {
		return fmt.Errorf("opacity must be in [0, 1], got %v", c.Splats.Opacity)
	}
	if c.Camera.Radius <= 0 {
		return fmt.Errorf("camera radius must be positive, got %v", c.Camera.Radius)
	}
	return nil
}
