package label

import (
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/boxorbit/pkg/errors"
)

// Supersample is the raster resolution multiplier.
const Supersample = 2

const ellipsis = "…"

// Compositor turns text into sprites and keeps every sprite it created so
// the render loop can rescale them together.
type Compositor struct {
	font *opentype.Font

	mu      sync.Mutex
	faces   map[float64]font.Face
	sprites []*Sprite
}

// NewCompositor parses the bundled Go Bold face.
func NewCompositor() (*Compositor, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse label font")
	}
	return &Compositor{font: f, faces: make(map[float64]font.Face)}, nil
}

// Composite rasterizes text and returns a sprite anchored at anchor.
// Text wider than MaxWidth is truncated with an ellipsis; a zero or negative
// budget yields a sprite holding only the ellipsis.
func (c *Compositor) Composite(text string, anchor r3.Vec, opts ...Option) (*Sprite, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.FontSize <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "label font size must be positive, got %g", o.FontSize)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	measure, err := c.face(o.FontSize)
	if err != nil {
		return nil, err
	}
	paint, err := c.face(o.FontSize * Supersample)
	if err != nil {
		return nil, err
	}

	s := Truncate(measure, text, o.MaxWidth)
	padX, padY := o.padding()
	w := int(math.Ceil(width(measure, s))) + 2*padX
	h := int(math.Ceil(o.FontSize)) + 2*padY

	spr := &Sprite{
		Text:        s,
		Anchor:      anchor,
		PixelWidth:  max(w, 1),
		PixelHeight: max(h, 1),
		RenderOrder: RenderOrder,
	}
	spr.Image = rasterize(paint, s, spr.PixelWidth, spr.PixelHeight, o)
	c.sprites = append(c.sprites, spr)
	return spr, nil
}

// Sprites returns every sprite created so far, in creation order.
func (c *Compositor) Sprites() []*Sprite {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Sprite, len(c.sprites))
	copy(out, c.sprites)
	return out
}

// Close releases cached font faces.
func (c *Compositor) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for size, f := range c.faces {
		_ = f.Close()
		delete(c.faces, size)
	}
	return nil
}

func (c *Compositor) face(size float64) (font.Face, error) {
	if f, ok := c.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create %gpx face", size)
	}
	c.faces[size] = f
	return f, nil
}

// Truncate drops trailing runes from s until s plus an ellipsis fits within
// maxWidth. Strings that already fit are returned unchanged.
func Truncate(face font.Face, s string, maxWidth float64) string {
	if width(face, s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && width(face, string(runes)+ellipsis) > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}

func width(face font.Face, s string) float64 {
	adv := font.MeasureString(face, s)
	return float64(adv) / 64
}
