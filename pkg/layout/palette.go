package layout

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/boxorbit/pkg/config"
	"github.com/matzehuels/boxorbit/pkg/errors"
)

// FranchiseRingColor is the color of the ring drawn around franchise films.
var FranchiseRingColor = config.MustColor("#ffe96f")

// FranchiseLegend is the legend text for the ring indicator.
const FranchiseLegend = "Franchise (yellow ring)"

// Swatch is one named color.
type Swatch struct {
	Name  string
	Color color.NRGBA
}

// Palette maps genres to colors. Unknown genres use the fallback entry.
type Palette struct {
	swatches []Swatch
	index    map[string]int
	fallback color.NRGBA
}

// NewPalette parses entries in order. The entry named config.FallbackGenre
// colors unknown genres; without one, unknown genres are light gray.
func NewPalette(entries []config.GenreColor) (*Palette, error) {
	p := &Palette{
		index:    make(map[string]int, len(entries)),
		fallback: config.MustColor("#d1dae5"),
	}
	for _, e := range entries {
		c, err := config.ParseColor(e.Color)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "palette entry %q", e.Name)
		}
		if _, dup := p.index[e.Name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "duplicate palette entry %q", e.Name)
		}
		p.index[e.Name] = len(p.swatches)
		p.swatches = append(p.swatches, Swatch{Name: e.Name, Color: c})
		if e.Name == config.FallbackGenre {
			p.fallback = c
		}
	}
	return p, nil
}

// Color returns the color for genre.
func (p *Palette) Color(genre string) color.NRGBA {
	if i, ok := p.index[genre]; ok {
		return p.swatches[i].Color
	}
	return p.fallback
}

// Known reports whether genre has its own entry.
func (p *Palette) Known(genre string) bool {
	_, ok := p.index[genre]
	return ok
}

// Swatches returns the entries in configuration order.
func (p *Palette) Swatches() []Swatch {
	return append([]Swatch(nil), p.swatches...)
}

// LegendEntry is one row of the legend.
type LegendEntry struct {
	Label string      `json:"label"`
	Color color.NRGBA `json:"-"`
	Hex   string      `json:"color"`
	Ring  bool        `json:"ring,omitempty"`
}

// Legend lists the franchise ring indicator followed by every genre.
func Legend(p *Palette) []LegendEntry {
	out := make([]LegendEntry, 0, len(p.swatches)+1)
	out = append(out, LegendEntry{
		Label: FranchiseLegend,
		Color: FranchiseRingColor,
		Hex:   config.Hex(FranchiseRingColor),
		Ring:  true,
	})
	for _, s := range p.swatches {
		out = append(out, LegendEntry{Label: s.Name, Color: s.Color, Hex: config.Hex(s.Color)})
	}
	return out
}

// tint scales the RGB channels of c by f.
func tint(c color.NRGBA, f float64) color.NRGBA {
	cf, _ := colorful.MakeColor(c)
	cf = colorful.Color{R: cf.R * f, G: cf.G * f, B: cf.B * f}
	r, g, b := cf.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
