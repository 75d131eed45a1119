package render

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/boxorbit/pkg/label"
	"github.com/matzehuels/boxorbit/pkg/scene"
)

// Kind identifies how an item is drawn.
type Kind int

const (
	KindPoint Kind = iota
	KindNebula
	KindLine
	KindTube
	KindRing
	KindSphere
	KindLabel
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindNebula:
		return "nebula"
	case KindLine:
		return "line"
	case KindTube:
		return "tube"
	case KindRing:
		return "ring"
	case KindSphere:
		return "sphere"
	case KindLabel:
		return "label"
	}
	return "unknown"
}

// Layer orders groups of items.
type Layer int

const (
	LayerBackground Layer = iota
	LayerScene
	LayerOverlay
)

// Point is a screen position in pixels.
type Point struct{ X, Y float64 }

// Item is one drawable in screen space.
type Item struct {
	Kind  Kind
	Role  scene.Role
	Name  string
	Layer Layer
	Depth float64
	Order int

	// Center for points, spheres, nebulae and labels; start for segments.
	X, Y float64
	// End of line and tube segments.
	X2, Y2 float64
	// Radius for points, spheres and nebulae.
	R float64
	// Stroke width for lines, tubes and rings.
	Width float64
	// Closed outline of rings.
	Path []Point

	Color   color.NRGBA
	Outer   color.NRGBA // nebula edge color
	Opacity float64
	Shaded  bool // lit spheres and tubes

	Sprite *label.Sprite
	// On-screen label size in pixels.
	W, H float64
}

// Frame is a projected scene ready to draw.
type Frame struct {
	Width  int
	Height int
	Items  []Item

	// KeyLight is the unit direction toward the key light in camera space
	// (X right, Y up, Z toward the viewer).
	KeyLight r3.Vec
	// Ambient and Diffuse weight the sphere shading.
	Ambient float64
	Diffuse float64
}

// Count returns the number of items of kind k.
func (f Frame) Count(k Kind) int {
	n := 0
	for _, it := range f.Items {
		if it.Kind == k {
			n++
		}
	}
	return n
}
