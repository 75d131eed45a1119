// Package config holds every tunable constant of the orbital scene.
//
// [Default] reproduces the reference look: a 110-unit hub, spokes out to 460
// units, 7..22 unit planets and a 42° camera. [Load] overlays a TOML or YAML
// file on top of the defaults, so a file only needs the keys it changes:
//
//	[geometry]
//	max_radius = 520
//
//	[[palette]]
//	name = "Western"
//	color = "#e0a060"
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/boxorbit/pkg/errors"
)

// FallbackGenre is the palette entry used for genres without a color.
const FallbackGenre = "Other"

// Config is the complete configuration.
type Config struct {
	Geometry Geometry      `toml:"geometry" yaml:"geometry" json:"geometry"`
	Camera   Camera        `toml:"camera" yaml:"camera" json:"camera"`
	Palette  []GenreColor  `toml:"palette" yaml:"palette" json:"palette"`
	Backdrop Backdrop      `toml:"backdrop" yaml:"backdrop" json:"backdrop"`
	Cache    CacheSettings `toml:"cache" yaml:"cache" json:"cache"`
	Viewer   Viewer        `toml:"viewer" yaml:"viewer" json:"viewer"`
}

// Geometry sizes the hub, spokes, ticks and planets in world units.
type Geometry struct {
	HubRadius      float64 `toml:"hub_radius" yaml:"hub_radius" json:"hub_radius"`
	HubTube        float64 `toml:"hub_tube" yaml:"hub_tube" json:"hub_tube"`
	MaxRadius      float64 `toml:"max_radius" yaml:"max_radius" json:"max_radius"`
	RadiusMargin   float64 `toml:"radius_margin" yaml:"radius_margin" json:"radius_margin"`
	MinSize        float64 `toml:"min_size" yaml:"min_size" json:"min_size"`
	MaxSize        float64 `toml:"max_size" yaml:"max_size" json:"max_size"`
	SpokeRadius    float64 `toml:"spoke_radius" yaml:"spoke_radius" json:"spoke_radius"`
	SpokeOvershoot float64 `toml:"spoke_overshoot" yaml:"spoke_overshoot" json:"spoke_overshoot"`
	TickStep       float64 `toml:"tick_step" yaml:"tick_step" json:"tick_step"`
	TickDotRadius  float64 `toml:"tick_dot_radius" yaml:"tick_dot_radius" json:"tick_dot_radius"`
	PlanetLift     float64 `toml:"planet_lift" yaml:"planet_lift" json:"planet_lift"`
	TitleLift      float64 `toml:"title_lift" yaml:"title_lift" json:"title_lift"`
	RingGap        float64 `toml:"ring_gap" yaml:"ring_gap" json:"ring_gap"` // fraction of the planet size
	RingTube       float64 `toml:"ring_tube" yaml:"ring_tube" json:"ring_tube"`
}

// Camera configures the initial viewpoint, fitting and orbit limits.
// Angles are in degrees.
type Camera struct {
	FOV         float64 `toml:"fov" yaml:"fov" json:"fov"`
	OrbitRadius float64 `toml:"orbit_radius" yaml:"orbit_radius" json:"orbit_radius"`
	Tilt        float64 `toml:"tilt" yaml:"tilt" json:"tilt"`
	Yaw         float64 `toml:"yaw" yaml:"yaw" json:"yaw"`
	Near        float64 `toml:"near" yaml:"near" json:"near"`
	Far         float64 `toml:"far" yaml:"far" json:"far"`
	FitPadding  float64 `toml:"fit_padding" yaml:"fit_padding" json:"fit_padding"`
	FitOffset   float64 `toml:"fit_offset" yaml:"fit_offset" json:"fit_offset"`
	MinDistance float64 `toml:"min_distance" yaml:"min_distance" json:"min_distance"`
	MaxDistance float64 `toml:"max_distance" yaml:"max_distance" json:"max_distance"`
	MinPolar    float64 `toml:"min_polar" yaml:"min_polar" json:"min_polar"`
	MaxPolar    float64 `toml:"max_polar" yaml:"max_polar" json:"max_polar"`
	Damping     float64 `toml:"damping" yaml:"damping" json:"damping"`
}

// GenreColor pairs a genre with its display color.
type GenreColor struct {
	Name  string `toml:"name" yaml:"name" json:"name"`
	Color string `toml:"color" yaml:"color" json:"color"`
}

// Backdrop controls the decorative star field and nebula.
type Backdrop struct {
	Enabled bool   `toml:"enabled" yaml:"enabled" json:"enabled"`
	Seed    uint64 `toml:"seed" yaml:"seed" json:"seed"`
}

// CacheSettings selects the artifact cache backend.
type CacheSettings struct {
	Dir      string        `toml:"dir" yaml:"dir" json:"dir,omitempty"`
	RedisURL string        `toml:"redis_url" yaml:"redis_url" json:"redis_url,omitempty"`
	TTL      time.Duration `toml:"ttl" yaml:"ttl" json:"ttl"`
}

// Viewer configures the interactive window.
type Viewer struct {
	Width  int    `toml:"width" yaml:"width" json:"width"`
	Height int    `toml:"height" yaml:"height" json:"height"`
	Title  string `toml:"title" yaml:"title" json:"title"`
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		Geometry: Geometry{
			HubRadius:      110,
			HubTube:        9,
			MaxRadius:      460,
			RadiusMargin:   12,
			MinSize:        7,
			MaxSize:        22,
			SpokeRadius:    2.4,
			SpokeOvershoot: 8,
			TickStep:       0.5,
			TickDotRadius:  1.4,
			PlanetLift:     6,
			TitleLift:      30,
			RingGap:        0.35,
			RingTube:       1.6,
		},
		Camera: Camera{
			FOV:         42,
			OrbitRadius: 950,
			Tilt:        28,
			Yaw:         30,
			Near:        0.1,
			Far:         6000,
			FitPadding:  1.12,
			FitOffset:   200,
			MinDistance: 420,
			MaxDistance: 2000,
			MinPolar:    10,
			MaxPolar:    80,
			Damping:     0.07,
		},
		Palette: []GenreColor{
			{"Action", "#ff5e5e"},
			{"Adventure", "#7ddcff"},
			{"Animation", "#ffd966"},
			{"Drama", "#88aaff"},
			{"Comedy", "#a8fca0"},
			{"Sci-Fi", "#c2a0ff"},
			{"Horror", "#ff99e8"},
			{"Crime", "#90f0ff"},
			{"Fantasy", "#deb6ff"},
			{"Family", "#fff59a"},
			{FallbackGenre, "#d1dae5"},
		},
		Backdrop: Backdrop{Enabled: true, Seed: 42},
		Cache:    CacheSettings{TTL: 24 * time.Hour},
		Viewer:   Viewer{Width: 1280, Height: 800, Title: "boxorbit"},
	}
}

// Load reads path on top of [Default] and validates the result.
// The decoder is chosen by extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	default:
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unsupported config extension %q (use .toml, .yaml or .yml)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a drawable scene.
func (c Config) Validate() error {
	g := c.Geometry
	switch {
	case g.HubRadius <= 0:
		return invalid("geometry.hub_radius must be positive")
	case g.MaxRadius <= g.HubRadius+g.RadiusMargin:
		return invalid("geometry.max_radius (%g) must exceed hub_radius + radius_margin (%g)", g.MaxRadius, g.HubRadius+g.RadiusMargin)
	case g.MinSize <= 0 || g.MaxSize < g.MinSize:
		return invalid("geometry sizes must satisfy 0 < min_size <= max_size")
	case g.TickStep <= 0:
		return invalid("geometry.tick_step must be positive")
	case g.RingGap < 0 || g.RingTube <= 0:
		return invalid("geometry ring_gap must be >= 0 and ring_tube > 0")
	}

	cam := c.Camera
	switch {
	case cam.FOV <= 0 || cam.FOV >= 180:
		return invalid("camera.fov must be in (0, 180)")
	case cam.FitPadding <= 0:
		return invalid("camera.fit_padding must be positive")
	case cam.Near <= 0 || cam.Far <= cam.Near:
		return invalid("camera clip planes must satisfy 0 < near < far")
	case cam.MinDistance > cam.MaxDistance:
		return invalid("camera.min_distance must not exceed max_distance")
	case cam.MinPolar < 0 || cam.MaxPolar > 180 || cam.MinPolar > cam.MaxPolar:
		return invalid("camera polar limits must satisfy 0 <= min_polar <= max_polar <= 180")
	}

	fallback := false
	seen := make(map[string]bool, len(c.Palette))
	for _, gc := range c.Palette {
		if gc.Name == "" {
			return invalid("palette entries need a name")
		}
		if seen[gc.Name] {
			return invalid("palette lists %q twice", gc.Name)
		}
		seen[gc.Name] = true
		if _, err := ParseColor(gc.Color); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "palette color for %q", gc.Name)
		}
		if gc.Name == FallbackGenre {
			fallback = true
		}
	}
	if !fallback {
		return invalid("palette must contain a %q entry", FallbackGenre)
	}

	if c.Viewer.Width <= 0 || c.Viewer.Height <= 0 {
		return invalid("viewer size must be positive")
	}
	return nil
}

// WriteTOML encodes the configuration as TOML.
func (c Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidConfig, format, args...)
}

// String summarizes the geometry for log lines.
func (g Geometry) String() string {
	return fmt.Sprintf("hub=%g max=%g size=%g..%g", g.HubRadius, g.MaxRadius, g.MinSize, g.MaxSize)
}
