package sink

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"image/color"

	"github.com/matzehuels/boxorbit/pkg/config"
	"github.com/matzehuels/boxorbit/pkg/layout"
	"github.com/matzehuels/boxorbit/pkg/render"
)

// Background is the default canvas color.
var Background = config.MustColor("#03050b")

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	legend     []layout.LegendEntry
	background color.NRGBA
	backdrop   bool
}

// WithSVGLegend draws the legend in the top-left corner.
func WithSVGLegend(entries []layout.LegendEntry) SVGOption {
	return func(r *svgRenderer) { r.legend = entries }
}

// WithSVGBackground sets the canvas color.
func WithSVGBackground(c color.NRGBA) SVGOption { return func(r *svgRenderer) { r.background = c } }

// WithoutSVGBackdrop skips stars and the nebula.
func WithoutSVGBackdrop() SVGOption { return func(r *svgRenderer) { r.backdrop = false } }

// RenderSVG draws fr as a standalone SVG document. Labels are embedded as
// PNG images at their on-screen size.
func RenderSVG(fr render.Frame, opts ...SVGOption) []byte {
	r := svgRenderer{background: Background, backdrop: true}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		fr.Width, fr.Height, fr.Width, fr.Height)
	r.renderDefs(&buf)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", config.Hex(r.background))

	nebula := 0
	for i, it := range fr.Items {
		switch it.Kind {
		case render.KindPoint:
			if r.backdrop {
				fmt.Fprintf(&buf, `  <circle cx="%.1f" cy="%.1f" r="%.2f" fill="%s" fill-opacity="%.2f"/>`+"\n",
					it.X, it.Y, it.R, config.Hex(it.Color), it.Opacity)
			}
		case render.KindNebula:
			if r.backdrop {
				id := fmt.Sprintf("nebula-%d", nebula)
				nebula++
				fmt.Fprintf(&buf, `  <radialGradient id="%s"><stop offset="0.16" stop-color="%s" stop-opacity="%.2f"/><stop offset="1" stop-color="%s" stop-opacity="%.2f"/></radialGradient>`+"\n",
					id, config.Hex(it.Color), alpha(it.Color), config.Hex(it.Outer), alpha(it.Outer))
				fmt.Fprintf(&buf, `  <circle cx="%.1f" cy="%.1f" r="%.1f" fill="url(#%s)"/>`+"\n", it.X, it.Y, it.R, id)
			}
		case render.KindLine, render.KindTube:
			fmt.Fprintf(&buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.2f" stroke-opacity="%.2f" stroke-linecap="round"/>`+"\n",
				it.X, it.Y, it.X2, it.Y2, config.Hex(render.Shade(it, fr, 0)), it.Width, it.Opacity)
		case render.KindRing:
			fmt.Fprintf(&buf, `  <polygon class="%s" points="%s" fill="none" stroke="%s" stroke-width="%.2f" stroke-opacity="%.2f"/>`+"\n",
				it.Role, points(it.Path), config.Hex(render.Shade(it, fr, 0)), it.Width, it.Opacity)
		case render.KindSphere:
			r.renderSphere(&buf, i, it, fr)
		case render.KindLabel:
			renderLabel(&buf, it)
		}
	}

	if len(r.legend) > 0 {
		renderLegend(&buf, r.legend)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <style>text { font-family: 'Go', sans-serif; font-weight: 800; }</style>\n")
}

func (r *svgRenderer) renderSphere(buf *bytes.Buffer, i int, it render.Item, fr render.Frame) {
	if !it.Shaded {
		fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="%.2f" fill="%s"/>`+"\n", it.X, it.Y, it.R, config.Hex(it.Color))
		return
	}
	// Highlight toward the key light.
	hx := 0.5 + fr.KeyLight.X*0.35
	hy := 0.5 - fr.KeyLight.Y*0.35
	id := fmt.Sprintf("sphere-%d", i)
	fmt.Fprintf(buf, `  <radialGradient id="%s" cx="%.2f" cy="%.2f" r="0.75"><stop offset="0" stop-color="%s"/><stop offset="1" stop-color="%s"/></radialGradient>`+"\n",
		id, hx, hy, config.Hex(render.Shade(it, fr, 1)), config.Hex(render.Shade(it, fr, -0.4)))
	buf.WriteString("  <g>")
	if it.Name != "" {
		fmt.Fprintf(buf, "<title>%s</title>", escape(it.Name))
	}
	fmt.Fprintf(buf, `<circle cx="%.1f" cy="%.1f" r="%.2f" fill="url(#%s)"/></g>`+"\n", it.X, it.Y, it.R, id)
}

func renderLabel(buf *bytes.Buffer, it render.Item) {
	s := it.Sprite
	if s == nil || s.Image == nil || it.W <= 0 || it.H <= 0 {
		return
	}
	data, err := s.PNG()
	if err != nil {
		return
	}
	fmt.Fprintf(buf, `  <image x="%.1f" y="%.1f" width="%.1f" height="%.1f" href="data:image/png;base64,%s"/>`+"\n",
		it.X-it.W/2, it.Y-it.H/2, it.W, it.H, base64.StdEncoding.EncodeToString(data))
}

func renderLegend(buf *bytes.Buffer, entries []layout.LegendEntry) {
	const (
		x, y = 16.0, 16.0
		row  = 18.0
		pad  = 10.0
	)
	h := pad*2 + row*float64(len(entries))
	fmt.Fprintf(buf, `  <rect x="%.0f" y="%.0f" width="190" height="%.0f" rx="6" fill="#0a0f1c" fill-opacity="0.9" stroke="#7896dc" stroke-opacity="0.85"/>`+"\n", x, y, h)
	for i, e := range entries {
		cy := y + pad + row*float64(i) + row/2
		if e.Ring {
			fmt.Fprintf(buf, `  <circle cx="%.0f" cy="%.1f" r="5" fill="none" stroke="%s" stroke-width="2"/>`+"\n", x+pad+6, cy, e.Hex)
		} else {
			fmt.Fprintf(buf, `  <rect x="%.0f" y="%.1f" width="12" height="12" rx="2" fill="%s"/>`+"\n", x+pad, cy-6, e.Hex)
		}
		fmt.Fprintf(buf, `  <text x="%.0f" y="%.1f" font-size="11" fill="#e6eeff" dominant-baseline="middle">%s</text>`+"\n", x+pad+20, cy, escape(e.Label))
	}
}

func points(path []render.Point) string {
	var b bytes.Buffer
	for i, p := range path {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.1f,%.1f", p.X, p.Y)
	}
	return b.String()
}

func alpha(c color.NRGBA) float64 { return float64(c.A) / 255 }

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
