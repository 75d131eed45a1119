package scene

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/boxorbit/pkg/label"
)

// Assembler receives placement calls from the layout.
type Assembler interface {
	AddSphere(Sphere)
	AddTube(Tube)
	AddLine(Line)
	AddTorus(Torus)
	AddLabel(Label)
	AddPoints(Points)
	AddBillboard(Billboard)
	AddLight(Light)
}

// Scene is an append-only record of placed primitives.
type Scene struct {
	Spheres    []Sphere
	Tubes      []Tube
	Lines      []Line
	Tori       []Torus
	Labels     []Label
	Points     []Points
	Billboards []Billboard
	Lights     []Light
}

var _ Assembler = (*Scene)(nil)

// New returns an empty scene.
func New() *Scene { return &Scene{} }

func (s *Scene) AddSphere(p Sphere)       { s.Spheres = append(s.Spheres, p) }
func (s *Scene) AddTube(p Tube)           { s.Tubes = append(s.Tubes, p) }
func (s *Scene) AddLine(p Line)           { s.Lines = append(s.Lines, p) }
func (s *Scene) AddTorus(p Torus)         { s.Tori = append(s.Tori, p) }
func (s *Scene) AddLabel(p Label)         { s.Labels = append(s.Labels, p) }
func (s *Scene) AddPoints(p Points)       { s.Points = append(s.Points, p) }
func (s *Scene) AddBillboard(p Billboard) { s.Billboards = append(s.Billboards, p) }
func (s *Scene) AddLight(p Light)         { s.Lights = append(s.Lights, p) }

// Sprites returns the label sprites in insertion order.
func (s *Scene) Sprites() []*label.Sprite {
	out := make([]*label.Sprite, len(s.Labels))
	for i, l := range s.Labels {
		out[i] = l.Sprite
	}
	return out
}

// Len returns the number of foreground primitives.
func (s *Scene) Len() int {
	return len(s.Spheres) + len(s.Tubes) + len(s.Lines) + len(s.Tori) + len(s.Labels)
}

// Bounds returns the bounding box of all foreground geometry. Labels count
// as their anchor points. Backdrop points and billboards are excluded.
func (s *Scene) Bounds() Box {
	var b Box
	for _, p := range s.Spheres {
		b = b.ExtendBy(p.Center, r3.Vec{X: p.Radius, Y: p.Radius, Z: p.Radius})
	}
	for _, p := range s.Tubes {
		h := r3.Vec{X: p.Radius, Y: p.Radius, Z: p.Radius}
		b = b.ExtendBy(p.From, h).ExtendBy(p.To, h)
	}
	for _, p := range s.Lines {
		b = b.Extend(p.From).Extend(p.To)
	}
	for _, p := range s.Tori {
		outer := p.Radius + p.Tube
		b = b.ExtendBy(p.Center, r3.Vec{X: outer, Y: p.Tube, Z: outer})
	}
	for _, p := range s.Labels {
		b = b.Extend(p.Sprite.Anchor)
	}
	return b
}
