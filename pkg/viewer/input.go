package viewer

import (
	"math"

	"github.com/matzehuels/boxorbit/pkg/camera"
)

const (
	// keyRotateStep is the orbit angle applied per tick while an arrow key
	// is held, in radians.
	keyRotateStep = 0.02

	// zoomStep is the dolly factor per wheel notch or key press.
	zoomStep = 0.95
)

// dragRotation converts a pointer drag in pixels into orbit angles. A drag
// across the full viewport height turns the camera once around.
func dragRotation(dx, dy float64, viewportHeight int) (theta, phi float64) {
	if viewportHeight <= 0 {
		return 0, 0
	}
	h := float64(viewportHeight)
	return 2 * math.Pi * dx / h, 2 * math.Pi * dy / h
}

// wheelZoom converts wheel notches into a zoom factor. Scrolling up (positive
// dy) moves the camera closer.
func wheelZoom(dy float64) float64 {
	if dy == 0 {
		return 1
	}
	return math.Pow(zoomStep, -dy)
}

// dragPan converts a pointer drag in pixels into a world-space pan at the
// target's depth, so the point under the cursor follows it.
func dragPan(cam *camera.Perspective, dx, dy float64, viewportHeight int) (float64, float64) {
	if viewportHeight <= 0 {
		return 0, 0
	}
	perPixel := 2 * cam.Distance() * math.Tan(cam.VerticalFOV()/2) / float64(viewportHeight)
	return dx * perPixel, dy * perPixel
}
