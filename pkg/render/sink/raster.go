package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"

	"github.com/matzehuels/boxorbit/pkg/render"
)

// RasterOption configures raster rendering via [Rasterize].
type RasterOption func(*rasterRenderer)

type rasterRenderer struct {
	scale      int
	background color.NRGBA
	backdrop   bool
}

// WithSupersample sets the paint resolution multiplier (default 2).
func WithSupersample(n int) RasterOption {
	return func(r *rasterRenderer) { r.scale = max(n, 1) }
}

// WithRasterBackground sets the canvas color.
func WithRasterBackground(c color.NRGBA) RasterOption {
	return func(r *rasterRenderer) { r.background = c }
}

// WithoutRasterBackdrop skips stars and the nebula.
func WithoutRasterBackdrop() RasterOption { return func(r *rasterRenderer) { r.backdrop = false } }

// Rasterize paints fr at the supersampled resolution and filters it down to
// fr.Width x fr.Height.
func Rasterize(fr render.Frame, opts ...RasterOption) *image.RGBA {
	r := rasterRenderer{scale: 2, background: Background, backdrop: true}
	for _, opt := range opts {
		opt(&r)
	}

	k := float64(r.scale)
	big := image.NewRGBA(image.Rect(0, 0, fr.Width*r.scale, fr.Height*r.scale))
	draw.Draw(big, big.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)

	for _, it := range fr.Items {
		switch it.Kind {
		case render.KindPoint:
			if r.backdrop {
				fillCircle(big, it.X*k, it.Y*k, it.R*k, it.Color, it.Opacity)
			}
		case render.KindNebula:
			if r.backdrop {
				fillNebula(big, it.X*k, it.Y*k, it.R*k, it.Color, it.Outer)
			}
		case render.KindLine, render.KindTube:
			strokeSegment(big, it.X*k, it.Y*k, it.X2*k, it.Y2*k, it.Width*k, render.Shade(it, fr, 0), it.Opacity)
		case render.KindRing:
			c := render.Shade(it, fr, 0)
			for i, p := range it.Path {
				q := it.Path[(i+1)%len(it.Path)]
				strokeSegment(big, p.X*k, p.Y*k, q.X*k, q.Y*k, it.Width*k, c, it.Opacity)
			}
		case render.KindSphere:
			fillSphere(big, it, fr, k)
		case render.KindLabel:
			drawLabel(big, it, k)
		}
	}

	if r.scale == 1 {
		return big
	}
	out := image.NewRGBA(image.Rect(0, 0, fr.Width, fr.Height))
	draw.CatmullRom.Scale(out, out.Bounds(), big, big.Bounds(), draw.Src, nil)
	return out
}

// RenderPNG rasterizes fr and encodes it as PNG.
func RenderPNG(fr render.Frame, opts ...RasterOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Rasterize(fr, opts...)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderWebP rasterizes fr and encodes it as lossless WebP.
func RenderWebP(fr render.Frame, opts ...RasterOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := nativewebp.Encode(&buf, Rasterize(fr, opts...), nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// blend composites c at opacity a over the pixel at (x, y).
func blend(img *image.RGBA, x, y int, c color.NRGBA, a float64) {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return
	}
	a *= float64(c.A) / 255
	if a <= 0 {
		return
	}
	a = math.Min(a, 1)
	i := img.PixOffset(x, y)
	px := img.Pix[i : i+4 : i+4]
	mix := func(dst, src uint8) uint8 {
		return uint8(math.Round(float64(src)*a + float64(dst)*(1-a)))
	}
	px[0] = mix(px[0], c.R)
	px[1] = mix(px[1], c.G)
	px[2] = mix(px[2], c.B)
	px[3] = uint8(math.Round(255*a + float64(px[3])*(1-a)))
}

func span(lo, hi float64, limit int) (int, int) {
	return max(int(math.Floor(lo)), 0), min(int(math.Ceil(hi)), limit)
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.NRGBA, opacity float64) {
	x0, x1 := span(cx-r-1, cx+r+1, img.Rect.Dx())
	y0, y1 := span(cy-r-1, cy+r+1, img.Rect.Dy())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			if cov := coverage(r - d); cov > 0 {
				blend(img, x, y, c, cov*opacity)
			}
		}
	}
}

func fillNebula(img *image.RGBA, cx, cy, r float64, inner, outer color.NRGBA) {
	if r <= 0 {
		return
	}
	x0, x1 := span(cx-r, cx+r, img.Rect.Dx())
	y0, y1 := span(cy-r, cy+r, img.Rect.Dy())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			t := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) / r
			if t >= 1 {
				continue
			}
			t = math.Max(0, (t-0.16)/0.84)
			c := lerpColor(inner, outer, t)
			blend(img, x, y, c, 1)
		}
	}
}

func strokeSegment(img *image.RGBA, x1, y1, x2, y2, w float64, c color.NRGBA, opacity float64) {
	hw := w / 2
	bx0, bx1 := span(math.Min(x1, x2)-hw-1, math.Max(x1, x2)+hw+1, img.Rect.Dx())
	by0, by1 := span(math.Min(y1, y2)-hw-1, math.Max(y1, y2)+hw+1, img.Rect.Dy())
	dx, dy := x2-x1, y2-y1
	l2 := dx*dx + dy*dy
	for y := by0; y < by1; y++ {
		for x := bx0; x < bx1; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			t := 0.0
			if l2 > 0 {
				t = math.Max(0, math.Min(1, ((px-x1)*dx+(py-y1)*dy)/l2))
			}
			d := math.Hypot(px-(x1+t*dx), py-(y1+t*dy))
			if cov := coverage(hw - d); cov > 0 {
				blend(img, x, y, c, cov*opacity)
			}
		}
	}
}

// fillSphere shades a disc as a lit sphere: ambient plus lambert diffuse
// from the key light, a soft specular highlight and the emissive term.
func fillSphere(img *image.RGBA, it render.Item, fr render.Frame, k float64) {
	cx, cy, r := it.X*k, it.Y*k, it.R*k
	if r <= 0 {
		return
	}
	if !it.Shaded {
		fillCircle(img, cx, cy, r, it.Color, it.Opacity)
		return
	}

	l := fr.KeyLight
	hx, hy, hz := l.X, l.Y, l.Z+1
	hn := math.Sqrt(hx*hx + hy*hy + hz*hz)
	if hn > 0 {
		hx, hy, hz = hx/hn, hy/hn, hz/hn
	}

	x0, x1 := span(cx-r-1, cx+r+1, img.Rect.Dx())
	y0, y1 := span(cy-r-1, cy+r+1, img.Rect.Dy())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			nx := (float64(x) + 0.5 - cx) / r
			ny := -(float64(y) + 0.5 - cy) / r
			d := math.Hypot(nx, ny) * r
			cov := coverage(r - d)
			if cov <= 0 {
				continue
			}
			nz := math.Sqrt(math.Max(0, 1-nx*nx-ny*ny))
			lambert := math.Max(0, nx*l.X+ny*l.Y+nz*l.Z)
			spec := math.Pow(math.Max(0, nx*hx+ny*hy+nz*hz), 40) * 0.35
			c := render.Lit(it.Color, it.Outer, fr.Ambient+fr.Diffuse*lambert)
			c = lerpColor(c, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, spec)
			blend(img, x, y, c, cov*it.Opacity)
		}
	}
}

func drawLabel(img *image.RGBA, it render.Item, k float64) {
	s := it.Sprite
	if s == nil || s.Image == nil || it.W <= 0 || it.H <= 0 {
		return
	}
	w, h := it.W*k, it.H*k
	x0, y0 := it.X*k-w/2, it.Y*k-h/2
	rect := image.Rect(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x0+w)), int(math.Round(y0+h)))
	if rect.Empty() || !rect.Overlaps(img.Rect) {
		return
	}
	draw.CatmullRom.Scale(img, rect, s.Image, s.Image.Bounds(), draw.Over, nil)
}

// coverage converts a signed distance to the edge into antialiased coverage.
func coverage(inside float64) float64 {
	return math.Max(0, math.Min(1, inside+0.5))
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	ch := func(x, y uint8) uint8 { return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t)) }
	return color.NRGBA{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: ch(a.A, b.A)}
}
