package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/boxorbit/pkg/errors"
	"github.com/matzehuels/boxorbit/pkg/scene"
)

// Fit moves cam along its current viewing direction so bounds fills the
// view, then re-targets it on the bounds center.
func Fit(cam *Perspective, bounds scene.Box, padding, offset float64) error {
	if bounds.Empty() {
		return errors.New(errors.ErrCodeInvalidInput, "cannot fit camera to empty bounds")
	}

	size := bounds.Size()
	center := bounds.Center()
	radius := 0.5 * math.Max(size.X, size.Z) * padding
	dist := radius / math.Tan(cam.VerticalFOV()/2)

	back := r3.Scale(-1, cam.Direction())
	cam.Position = r3.Add(center, r3.Scale(dist+offset, back))
	cam.LookAt(center)
	return nil
}
