package scene

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Box is an axis-aligned bounding box. The zero Box is empty.
type Box struct {
	Min, Max r3.Vec
	valid    bool
}

// Empty reports whether nothing has been added to b.
func (b Box) Empty() bool { return !b.valid }

// Extend grows b to include p.
func (b Box) Extend(p r3.Vec) Box {
	if !b.valid {
		return Box{Min: p, Max: p, valid: true}
	}
	b.Min = r3.Vec{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)}
	b.Max = r3.Vec{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)}
	return b
}

// ExtendBy grows b to include the box centered at c with half extents h.
func (b Box) ExtendBy(c, h r3.Vec) Box {
	return b.Extend(r3.Sub(c, h)).Extend(r3.Add(c, h))
}

// Center returns the midpoint of b.
func (b Box) Center() r3.Vec { return r3.Scale(0.5, r3.Add(b.Min, b.Max)) }

// Size returns the extent of b along each axis.
func (b Box) Size() r3.Vec { return r3.Sub(b.Max, b.Min) }
