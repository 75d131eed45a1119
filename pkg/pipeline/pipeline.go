// Package pipeline drives one build of the orbital film scene through its
// fixed sequence of stages and renders the result.
//
// # Stages
//
// A [Build] moves strictly forward, one stage at a time:
//
//	Idle → Loading → Normalizing → Placing → Fitted → Rendering
//
// Loading fetches and parses the CSV. Normalizing freezes the rating and
// gross domains and the year-to-angle table. Placing emits every primitive
// and label into a [scene.Scene]. Fitted positions the camera. Rendering is
// terminal: the viewer, the HTTP server and the file sinks all draw from a
// Build in this stage. Any other transition fails with INVALID_TRANSITION,
// and a failed stage leaves the Build unusable.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	b, err := runner.Build(ctx, pipeline.Options{Source: "films.csv"})
//	if err != nil {
//	    return err
//	}
//	if err := b.StartRendering(); err != nil {
//	    return err
//	}
//	artifacts, err := runner.Render(ctx, b, opts)
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/boxorbit/pkg/cache"
	"github.com/matzehuels/boxorbit/pkg/config"
	"github.com/matzehuels/boxorbit/pkg/errors"
)

const (
	// DefaultWidth is the preview width in pixels.
	DefaultWidth = 1280

	// DefaultHeight is the preview height in pixels.
	DefaultHeight = 800

	// DefaultSupersample is the raster oversampling factor.
	DefaultSupersample = 2

	// MaxDimension bounds preview width and height.
	MaxDimension = 8192
)

// Output formats.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatWebP = "webp"
)

// Formats lists every supported output format in render order.
var Formats = []string{FormatJSON, FormatSVG, FormatPNG, FormatWebP}

// Options configures a build and its rendered outputs.
type Options struct {
	// Build options
	Source  string         `json:"source"`
	Config  *config.Config `json:"-"` // nil means config.Default()
	Refresh bool           `json:"refresh,omitempty"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Width       int      `json:"width,omitempty"`
	Height      int      `json:"height,omitempty"`
	Supersample int      `json:"supersample,omitempty"`
	Legend      bool     `json:"legend,omitempty"`
	NoImages    bool     `json:"no_images,omitempty"` // omit label PNGs from JSON
	Indent      bool     `json:"indent,omitempty"`

	Logger *log.Logger `json:"-"`
}

// ValidateFormat reports whether format is supported.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (must be one of: json, svg, png, webp)", format)
	}
	return nil
}

// ValidateFormats checks every entry of formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// SetDefaults fills unset fields. It is idempotent.
func (o *Options) SetDefaults() {
	if o.Config == nil {
		cfg := config.Default()
		o.Config = &cfg
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Supersample == 0 {
		o.Supersample = DefaultSupersample
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForBuild applies defaults and checks the build inputs.
func (o *Options) ValidateForBuild() error {
	o.SetDefaults()
	if err := errors.ValidateSource(o.Source); err != nil {
		return err
	}
	return o.Config.Validate()
}

// ValidateForRender applies defaults and checks the render inputs.
func (o *Options) ValidateForRender() error {
	o.SetDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Width < 1 || o.Width > MaxDimension || o.Height < 1 || o.Height > MaxDimension {
		return errors.New(errors.ErrCodeInvalidInput, "preview size %dx%d out of range (1..%d)", o.Width, o.Height, MaxDimension)
	}
	if o.Supersample < 1 || o.Supersample > 4 {
		return errors.New(errors.ErrCodeInvalidInput, "supersample %d out of range (1..4)", o.Supersample)
	}
	return nil
}

// Aspect returns Width/Height.
func (o *Options) Aspect() float64 {
	if o.Height == 0 {
		return float64(DefaultWidth) / DefaultHeight
	}
	return float64(o.Width) / float64(o.Height)
}

// ArtifactKeyOpts returns the cache key inputs for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format, Width: o.Width, Height: o.Height}
	switch format {
	case FormatJSON:
		k.Width, k.Height = 0, 0
		k.LabelImages = !o.NoImages
		k.Indent = o.Indent
	case FormatSVG:
		k.Legend = o.Legend
	case FormatPNG, FormatWebP:
		k.Supersample = o.Supersample
	}
	return k
}

// TTL returns the configured artifact lifetime.
func (o *Options) TTL() time.Duration {
	if o.Config == nil {
		return 0
	}
	return o.Config.Cache.TTL
}

// Stats records how long each stage took.
type Stats struct {
	Films      int
	Years      int
	Labels     int
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks which steps were served from cache.
type CacheInfo struct {
	SourceHit bool
	RenderHit bool // every requested artifact came from cache
}

// Result is the outcome of Runner.Execute.
type Result struct {
	Build     *Build
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}
