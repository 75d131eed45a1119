package viewer

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/matzehuels/boxorbit/pkg/label"
	"github.com/matzehuels/boxorbit/pkg/layout"
	"github.com/matzehuels/boxorbit/pkg/render"
)

// nebulaRings is the number of concentric discs used to fake the nebula's
// radial gradient.
const nebulaRings = 12

func (v *Viewer) drawFrame(screen *ebiten.Image, fr render.Frame) {
	for _, it := range fr.Items {
		switch it.Kind {
		case render.KindPoint:
			drawPoint(screen, it)
		case render.KindNebula:
			drawNebula(screen, it)
		case render.KindLine, render.KindTube:
			c := withOpacity(render.Shade(it, fr, 0), it.Opacity)
			vector.StrokeLine(screen, f32(it.X), f32(it.Y), f32(it.X2), f32(it.Y2), f32(max(it.Width, 1)), c, true)
		case render.KindRing:
			c := withOpacity(render.Shade(it, fr, 0), it.Opacity)
			for i, p := range it.Path {
				q := it.Path[(i+1)%len(it.Path)]
				vector.StrokeLine(screen, f32(p.X), f32(p.Y), f32(q.X), f32(q.Y), f32(max(it.Width, 1)), c, true)
			}
		case render.KindSphere:
			drawSphere(screen, it, fr)
		case render.KindLabel:
			v.drawLabel(screen, it)
		}
	}
}

func drawPoint(screen *ebiten.Image, it render.Item) {
	s := max(it.R*2, 1)
	vector.DrawFilledRect(screen, f32(it.X-s/2), f32(it.Y-s/2), f32(s), f32(s), withOpacity(it.Color, it.Opacity), false)
}

func drawNebula(screen *ebiten.Image, it render.Item) {
	for i := range nebulaRings {
		t := float64(i) / nebulaRings
		c := lerp(it.Outer, it.Color, t)
		c.A = uint8(float64(c.A) / nebulaRings)
		vector.DrawFilledCircle(screen, f32(it.X), f32(it.Y), f32(it.R*(1-t)), c, true)
	}
}

// drawSphere paints a lit disc with an offset highlight toward the key light.
func drawSphere(screen *ebiten.Image, it render.Item, fr render.Frame) {
	if it.R <= 0 {
		return
	}
	vector.DrawFilledCircle(screen, f32(it.X), f32(it.Y), f32(it.R), withOpacity(render.Shade(it, fr, -0.2), it.Opacity), true)
	if !it.Shaded {
		return
	}
	l := fr.KeyLight
	hx, hy := it.X+l.X*it.R*0.35, it.Y-l.Y*it.R*0.35
	vector.DrawFilledCircle(screen, f32(hx), f32(hy), f32(it.R*0.6), withOpacity(render.Shade(it, fr, 1), it.Opacity), true)
}

func (v *Viewer) drawLabel(screen *ebiten.Image, it render.Item) {
	s := it.Sprite
	if s == nil || s.Image == nil || it.W <= 0 || it.H <= 0 {
		return
	}
	img := v.spriteImage(s)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(it.W/float64(s.PixelWidth), it.H/float64(s.PixelHeight))
	op.GeoM.Translate(it.X-it.W/2, it.Y-it.H/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// spriteImage uploads a sprite's bitmap once and reuses it for every frame.
func (v *Viewer) spriteImage(s *label.Sprite) *ebiten.Image {
	if img, ok := v.sprites[s]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(s.Image)
	v.sprites[s] = img
	return img
}

func (v *Viewer) drawLegend(screen *ebiten.Image, entries []layout.LegendEntry) {
	const (
		x0     = 16.0
		y0     = 16.0
		row    = 20.0
		swatch = 12.0
	)
	h := float64(len(entries))*row + 12
	vector.DrawFilledRect(screen, f32(x0-8), f32(y0-8), 220, f32(h), color.NRGBA{R: 10, G: 15, B: 28, A: 200}, false)
	for i, e := range entries {
		y := y0 + float64(i)*row
		if e.Ring {
			vector.StrokeCircle(screen, f32(x0+swatch/2), f32(y+swatch/2), f32(swatch/2-1), 2, e.Color, true)
		} else {
			vector.DrawFilledRect(screen, f32(x0), f32(y), swatch, swatch, e.Color, false)
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(x0+swatch+8, y-1)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, e.Label, v.face, op)
	}
}

func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * min(max(opacity, 0), 1)))
	return c
}

func lerp(a, b color.NRGBA, t float64) color.NRGBA {
	ch := func(x, y uint8) uint8 { return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t)) }
	return color.NRGBA{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: ch(a.A, b.A)}
}

func f32(v float64) float32 { return float32(v) }
