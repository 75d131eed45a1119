package viewer

import (
	"math"
	"testing"

	"github.com/matzehuels/boxorbit/pkg/camera"
	"github.com/matzehuels/boxorbit/pkg/config"
)

func TestDragRotation(t *testing.T) {
	tests := []struct {
		name       string
		dx, dy     float64
		h          int
		theta, phi float64
	}{
		{"full height turns once", 600, 0, 600, 2 * math.Pi, 0},
		{"vertical", 0, 150, 600, 0, math.Pi / 2},
		{"empty viewport", 10, 10, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theta, phi := dragRotation(tt.dx, tt.dy, tt.h)
			if math.Abs(theta-tt.theta) > 1e-9 || math.Abs(phi-tt.phi) > 1e-9 {
				t.Errorf("dragRotation = (%v, %v), want (%v, %v)", theta, phi, tt.theta, tt.phi)
			}
		})
	}
}

func TestWheelZoom(t *testing.T) {
	if got := wheelZoom(0); got != 1 {
		t.Errorf("wheelZoom(0) = %v", got)
	}
	if got := wheelZoom(1); got <= 1 {
		t.Errorf("scrolling up should zoom in, got factor %v", got)
	}
	if got := wheelZoom(-1); got >= 1 {
		t.Errorf("scrolling down should zoom out, got factor %v", got)
	}
	if got := wheelZoom(1) * wheelZoom(-1); math.Abs(got-1) > 1e-12 {
		t.Errorf("opposite notches should cancel, got %v", got)
	}
}

func TestDragPanMatchesTargetDepth(t *testing.T) {
	cfg := config.Default().Camera
	cam := camera.NewOrbit(cfg, 1)
	const h = 800

	dx, dy := dragPan(cam, h, 0, h)
	want := 2 * cam.Distance() * math.Tan(cam.VerticalFOV()/2)
	if math.Abs(dx-want) > 1e-9 || dy != 0 {
		t.Errorf("dragPan = (%v, %v), want (%v, 0)", dx, dy, want)
	}
	if dx, dy := dragPan(cam, 5, 5, 0); dx != 0 || dy != 0 {
		t.Error("empty viewport should not pan")
	}
}
