package label

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// rasterize paints s into a (w, h) logical box at Supersample resolution.
func rasterize(face font.Face, s string, w, h int, o Options) *image.RGBA {
	const k = Supersample
	bounds := image.Rect(0, 0, w*k, h*k)
	img := image.NewRGBA(bounds)

	if o.Panel {
		fill := roundedRect(bounds, 0, panelRadius*k)
		inner := roundedRect(bounds, k, (panelRadius-1)*k)
		fillMask(img, fill, o.PanelFill)
		fillMask(img, subtract(fill, inner), o.PanelStroke)
	}

	padX, padY := o.padding()
	text := image.NewAlpha(bounds)
	d := font.Drawer{
		Dst:  text,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(padX*k, padY*k+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)

	outline := dilate(text, int(math.Round(o.StrokeWidth)))
	if r := int(math.Round(o.GlowBlur)); r > 0 && o.Glow.A > 0 {
		fillMask(img, boxBlur(outline, r), o.Glow)
	}
	if o.StrokeWidth > 0 {
		fillMask(img, outline, o.Stroke)
	}
	fillMask(img, text, o.Color)
	return img
}

func fillMask(dst *image.RGBA, mask *image.Alpha, c color.NRGBA) {
	draw.DrawMask(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}

// roundedRect rasterizes a rounded rectangle inset by inset pixels.
func roundedRect(b image.Rectangle, inset, radius int) *image.Alpha {
	x0, y0 := float32(b.Min.X+inset), float32(b.Min.Y+inset)
	x1, y1 := float32(b.Max.X-inset), float32(b.Max.Y-inset)
	m := image.NewAlpha(b)
	if x1 <= x0 || y1 <= y0 {
		return m
	}
	r := min(float32(max(radius, 0)), (x1-x0)/2, (y1-y0)/2)

	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(x0+r, y0)
	z.LineTo(x1-r, y0)
	z.QuadTo(x1, y0, x1, y0+r)
	z.LineTo(x1, y1-r)
	z.QuadTo(x1, y1, x1-r, y1)
	z.LineTo(x0+r, y1)
	z.QuadTo(x0, y1, x0, y1-r)
	z.LineTo(x0, y0+r)
	z.QuadTo(x0, y0, x0+r, y0)
	z.ClosePath()
	z.Draw(m, b, image.Opaque, image.Point{})
	return m
}

func subtract(a, b *image.Alpha) *image.Alpha {
	out := image.NewAlpha(a.Rect)
	for i, v := range a.Pix {
		if v > b.Pix[i] {
			out.Pix[i] = v - b.Pix[i]
		}
	}
	return out
}

// dilate grows mask by a disk of radius r.
func dilate(mask *image.Alpha, r int) *image.Alpha {
	if r <= 0 {
		return mask
	}
	type off struct{ dx, dy int }
	var disk []off
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				disk = append(disk, off{dx, dy})
			}
		}
	}

	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	out := image.NewAlpha(mask.Rect)
	for y := range h {
		for x := range w {
			var m uint8
			for _, o := range disk {
				sx, sy := x+o.dx, y+o.dy
				if sx < 0 || sy < 0 || sx >= w || sy >= h {
					continue
				}
				m = max(m, mask.Pix[sy*mask.Stride+sx])
			}
			out.Pix[y*out.Stride+x] = m
		}
	}
	return out
}

// boxBlur approximates a gaussian with three box passes of radius r.
func boxBlur(mask *image.Alpha, r int) *image.Alpha {
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	cur := make([]float64, w*h)
	for y := range h {
		for x := range w {
			cur[y*w+x] = float64(mask.Pix[y*mask.Stride+x])
		}
	}
	tmp := make([]float64, w*h)
	for range 3 {
		blurLine(cur, tmp, w, h, r, 1, w)
		blurLine(tmp, cur, h, w, r, w, 1)
	}

	out := image.NewAlpha(mask.Rect)
	for y := range h {
		for x := range w {
			out.Pix[y*out.Stride+x] = uint8(min(math.Round(cur[y*w+x]), 255))
		}
	}
	return out
}

// blurLine box-filters n lines of length l. step walks along a line and
// stride jumps between lines.
func blurLine(src, dst []float64, l, n, r, step, stride int) {
	norm := 1 / float64(2*r+1)
	for line := range n {
		base := line * stride
		for i := range l {
			var sum float64
			for j := i - r; j <= i+r; j++ {
				if j >= 0 && j < l {
					sum += src[base+j*step]
				}
			}
			dst[base+i*step] = sum * norm
		}
	}
}
