package label

import (
	"bytes"
	"image"
	"image/png"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// RenderOrder places labels after all scene geometry.
const RenderOrder = 999

// Viewpoint is the camera state needed to size a sprite on screen.
type Viewpoint interface {
	Eye() r3.Vec
	// VerticalFOV returns the vertical field of view in radians.
	VerticalFOV() float64
}

// Sprite is a camera-facing text billboard. Depth testing is always off.
type Sprite struct {
	Text   string
	Anchor r3.Vec

	// PixelWidth and PixelHeight are the logical on-screen size.
	PixelWidth  int
	PixelHeight int

	// Image holds the raster at Supersample times the logical size.
	Image *image.RGBA

	// ScaleX and ScaleY are the current world-space extents.
	ScaleX float64
	ScaleY float64

	RenderOrder int
}

// WorldPerPixel returns the world-space height of one screen pixel at
// distance from a camera with the given vertical fov (radians).
func WorldPerPixel(distance, fov, viewportHeight float64) float64 {
	return 2 * math.Tan(fov/2) * distance / viewportHeight
}

// SetPixelSize scales s so it covers PixelWidth x PixelHeight screen pixels
// for the given camera and viewport height. Non-positive heights are ignored.
func (s *Sprite) SetPixelSize(v Viewpoint, viewportHeight float64) {
	if viewportHeight <= 0 {
		return
	}
	d := r3.Norm(r3.Sub(s.Anchor, v.Eye()))
	wpp := WorldPerPixel(d, v.VerticalFOV(), viewportHeight)
	s.ScaleX = float64(s.PixelWidth) * wpp
	s.ScaleY = float64(s.PixelHeight) * wpp
}

// PNG encodes the sprite raster.
func (s *Sprite) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, s.Image); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RescaleAll applies SetPixelSize to every sprite.
func RescaleAll(sprites []*Sprite, v Viewpoint, viewportHeight float64) {
	for _, s := range sprites {
		s.SetPixelSize(v, viewportHeight)
	}
}
