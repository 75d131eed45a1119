package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/boxorbit/pkg/config"
)

const epsilon = 1e-6

// OrbitControls rotates, zooms and pans a camera around its target with
// damped motion. Inputs accumulate until the next Update.
type OrbitControls struct {
	cam *Perspective

	MinDistance float64
	MaxDistance float64
	MinPolar    float64 // radians
	MaxPolar    float64 // radians
	Damping     float64

	dTheta float64
	dPhi   float64
	scale  float64
	pan    r3.Vec
}

// NewOrbitControls attaches controls to cam using the limits in cfg.
func NewOrbitControls(cam *Perspective, cfg config.Camera) *OrbitControls {
	return &OrbitControls{
		cam:         cam,
		MinDistance: cfg.MinDistance,
		MaxDistance: cfg.MaxDistance,
		MinPolar:    radians(cfg.MinPolar),
		MaxPolar:    radians(cfg.MaxPolar),
		Damping:     cfg.Damping,
		scale:       1,
	}
}

// Rotate queues a rotation in radians around the vertical axis (theta) and
// away from it (phi).
func (c *OrbitControls) Rotate(theta, phi float64) {
	c.dTheta -= theta
	c.dPhi -= phi
}

// Zoom queues a dolly. Factors above 1 move the camera closer.
func (c *OrbitControls) Zoom(factor float64) {
	if factor > 0 {
		c.scale /= factor
	}
}

// Pan queues a screen-space translation of the target in world units.
func (c *OrbitControls) Pan(dx, dy float64) {
	right, up, _ := c.cam.Basis()
	c.pan = r3.Add(c.pan, r3.Add(r3.Scale(-dx, right), r3.Scale(dy, up)))
}

// Update applies queued motion and clamps distance and polar angle.
// It reports whether the camera moved.
func (c *OrbitControls) Update() bool {
	offset := r3.Sub(c.cam.Position, c.cam.Target)
	radius := r3.Norm(offset)
	theta := math.Atan2(offset.X, offset.Z)
	phi := 0.0
	if radius > 0 {
		phi = math.Acos(clamp(offset.Y/radius, -1, 1))
	}

	damp := c.Damping
	if damp <= 0 {
		damp = 1
	}

	theta += c.dTheta * damp
	phi += c.dPhi * damp
	if c.MaxPolar > 0 {
		phi = clamp(phi, c.MinPolar, c.MaxPolar)
	}
	phi = clamp(phi, epsilon, math.Pi-epsilon)

	radius *= c.scale
	if c.MaxDistance > 0 {
		radius = clamp(radius, c.MinDistance, c.MaxDistance)
	}

	target := r3.Add(c.cam.Target, r3.Scale(damp, c.pan))

	sin := math.Sin(phi)
	pos := r3.Add(target, r3.Vec{
		X: radius * sin * math.Sin(theta),
		Y: radius * math.Cos(phi),
		Z: radius * sin * math.Cos(theta),
	})

	moved := r3.Norm(r3.Sub(pos, c.cam.Position)) > epsilon || r3.Norm(r3.Sub(target, c.cam.Target)) > epsilon
	c.cam.Position = pos
	c.cam.LookAt(target)

	if c.Damping > 0 {
		c.dTheta *= 1 - c.Damping
		c.dPhi *= 1 - c.Damping
		c.pan = r3.Scale(1-c.Damping, c.pan)
	} else {
		c.dTheta, c.dPhi, c.pan = 0, 0, r3.Vec{}
	}
	c.scale = 1
	return moved
}

func clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return v
	}
	return min(max(v, lo), hi)
}
