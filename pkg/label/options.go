package label

import (
	"image/color"

	"github.com/matzehuels/boxorbit/pkg/config"
)

// Panel padding in logical pixels. Labels without a panel are unpadded.
const (
	panelPadX   = 10
	panelPadY   = 4
	panelRadius = 6
)

// Options controls how a label is painted.
type Options struct {
	FontSize    float64
	Color       color.NRGBA
	Panel       bool
	MaxWidth    float64
	Stroke      color.NRGBA
	StrokeWidth float64
	Glow        color.NRGBA
	GlowBlur    float64
	PanelFill   color.NRGBA
	PanelStroke color.NRGBA
}

// DefaultOptions returns the base label style: 10px white text on a dark
// rounded panel, capped at 260px.
func DefaultOptions() Options {
	return Options{
		FontSize:    10,
		Color:       config.MustColor("#ffffff"),
		Panel:       true,
		MaxWidth:    260,
		Stroke:      config.MustColor("#0a0e1a"),
		StrokeWidth: 1,
		Glow:        config.MustColor("rgba(255,255,255,0.35)"),
		GlowBlur:    2,
		PanelFill:   config.MustColor("rgba(10,15,28,0.96)"),
		PanelStroke: config.MustColor("rgba(120,150,220,0.85)"),
	}
}

// Option configures a label.
type Option func(*Options)

// WithFontSize sets the font size in logical pixels.
func WithFontSize(px float64) Option { return func(o *Options) { o.FontSize = px } }

func WithColor(c color.NRGBA) Option { return func(o *Options) { o.Color = c } }
func WithPanel(on bool) Option       { return func(o *Options) { o.Panel = on } }

// WithMaxWidth caps the text width in logical pixels before truncation.
func WithMaxWidth(px float64) Option { return func(o *Options) { o.MaxWidth = px } }

func WithOutline(c color.NRGBA, width float64) Option {
	return func(o *Options) { o.Stroke = c; o.StrokeWidth = width }
}

// WithGlow sets the glow color and blur radius in logical pixels.
func WithGlow(c color.NRGBA, blur float64) Option {
	return func(o *Options) { o.Glow = c; o.GlowBlur = blur }
}

// WithPanelColors sets the panel fill and border colors.
func WithPanelColors(fill, stroke color.NRGBA) Option {
	return func(o *Options) { o.PanelFill = fill; o.PanelStroke = stroke }
}

func (o Options) padding() (x, y int) {
	if o.Panel {
		return panelPadX, panelPadY
	}
	return 0, 0
}
