package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/boxorbit/pkg/config"
)

var worldUp = r3.Vec{Y: 1}

// Perspective is a pinhole camera looking at Target.
type Perspective struct {
	FOV    float64 // vertical, degrees
	Aspect float64
	Near   float64
	Far    float64

	Position r3.Vec
	Target   r3.Vec
}

// NewOrbit places a camera on a sphere of cfg.OrbitRadius around the origin
// at cfg.Yaw and cfg.Tilt degrees, looking at the origin.
func NewOrbit(cfg config.Camera, aspect float64) *Perspective {
	tilt := radians(cfg.Tilt)
	yaw := radians(cfg.Yaw)
	r := cfg.OrbitRadius
	return &Perspective{
		FOV:    cfg.FOV,
		Aspect: aspect,
		Near:   cfg.Near,
		Far:    cfg.Far,
		Position: r3.Vec{
			X: math.Cos(yaw) * math.Cos(tilt) * r,
			Y: math.Sin(tilt) * r,
			Z: math.Sin(yaw) * math.Cos(tilt) * r,
		},
	}
}

// Eye returns the camera position.
func (p *Perspective) Eye() r3.Vec { return p.Position }

// VerticalFOV returns the vertical field of view in radians.
func (p *Perspective) VerticalFOV() float64 { return radians(p.FOV) }

// Direction returns the unit viewing direction.
func (p *Perspective) Direction() r3.Vec {
	d := r3.Sub(p.Target, p.Position)
	if r3.Norm(d) == 0 {
		return r3.Vec{Z: -1}
	}
	return r3.Unit(d)
}

// LookAt points the camera at t.
func (p *Perspective) LookAt(t r3.Vec) { p.Target = t }

// SetViewport updates the aspect ratio for a w x h pixel viewport.
func (p *Perspective) SetViewport(w, h int) {
	if w > 0 && h > 0 {
		p.Aspect = float64(w) / float64(h)
	}
}

// Distance returns the distance from the camera to its target.
func (p *Perspective) Distance() float64 { return r3.Norm(r3.Sub(p.Target, p.Position)) }

// Basis returns the camera's right, up and forward unit vectors.
func (p *Perspective) Basis() (right, up, forward r3.Vec) {
	forward = p.Direction()
	right = r3.Cross(forward, worldUp)
	if r3.Norm(right) < 1e-9 {
		right = r3.Vec{X: 1}
	}
	right = r3.Unit(right)
	up = r3.Cross(right, forward)
	return right, up, forward
}

// Project maps a world point to pixel coordinates in a w x h viewport with
// the origin top-left. Depth is the distance along the viewing direction.
// ok is false for points behind the near plane.
func (p *Perspective) Project(v r3.Vec, w, h float64) (x, y, depth float64, ok bool) {
	right, up, forward := p.Basis()
	rel := r3.Sub(v, p.Position)
	depth = r3.Dot(rel, forward)
	if depth < p.Near {
		return 0, 0, depth, false
	}
	f := p.Focal(h)
	x = w/2 + r3.Dot(rel, right)*f/depth
	y = h/2 - r3.Dot(rel, up)*f/depth
	return x, y, depth, true
}

// Focal returns the focal length in pixels for a viewport of height h.
func (p *Perspective) Focal(h float64) float64 {
	return (h / 2) / math.Tan(p.VerticalFOV()/2)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
