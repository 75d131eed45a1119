package render

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/boxorbit/pkg/camera"
	"github.com/matzehuels/boxorbit/pkg/label"
	"github.com/matzehuels/boxorbit/pkg/scene"
)

func testCamera() *camera.Perspective {
	return &camera.Perspective{FOV: 42, Aspect: 1.6, Near: 0.1, Far: 6000, Position: r3.Vec{Y: 400, Z: 900}}
}

func TestLabelKeepsPixelSize(t *testing.T) {
	cam := testCamera()
	sc := scene.New()
	for _, at := range []r3.Vec{{}, {X: 300, Z: -300}, {X: -200, Y: 50, Z: 400}} {
		sc.AddLabel(scene.Label{Role: scene.RoleTitleLabel, Sprite: &label.Sprite{Text: "x", Anchor: at, PixelWidth: 120, PixelHeight: 22}})
	}

	const w, h = 1280, 800
	label.RescaleAll(sc.Sprites(), cam, h)
	fr := Project(sc, cam, w, h)

	if fr.Count(KindLabel) != 3 {
		t.Fatalf("got %d labels, want 3", fr.Count(KindLabel))
	}
	for _, it := range fr.Items {
		// Sprite distance is measured from the eye, projection depth along
		// the view axis, so off-axis labels come out slightly larger.
		if it.W < 120-1e-6 || it.W > 120*1.2 || it.H < 22-1e-6 || it.H > 22*1.2 {
			t.Errorf("label at %v drawn %vx%v, want about 120x22", it.Sprite.Anchor, it.W, it.H)
		}
	}

	for _, it := range fr.Items {
		if it.Sprite.Anchor == (r3.Vec{}) && math.Abs(it.W-120) > 1e-6 {
			t.Errorf("on-axis label width = %v, want 120", it.W)
		}
	}
}

func TestProjectLayers(t *testing.T) {
	cam := testCamera()
	sc := scene.New()
	sc.AddLabel(scene.Label{Sprite: &label.Sprite{Anchor: r3.Vec{Z: 800}, RenderOrder: label.RenderOrder}})
	sc.AddSphere(scene.Sphere{Role: scene.RolePlanet, Name: "near", Center: r3.Vec{Z: 300}, Radius: 10})
	sc.AddSphere(scene.Sphere{Role: scene.RolePlanet, Name: "far", Center: r3.Vec{Z: -300}, Radius: 10})
	sc.AddBillboard(scene.Billboard{Center: r3.Vec{Y: -60}, Size: 1800})
	sc.AddPoints(scene.Points{Positions: []r3.Vec{{Z: -2000}}, Size: 1.6})

	fr := Project(sc, cam, 800, 600)
	var kinds []Kind
	var names []string
	for _, it := range fr.Items {
		kinds = append(kinds, it.Kind)
		names = append(names, it.Name)
	}

	if kinds[len(kinds)-1] != KindLabel {
		t.Errorf("label should draw last, got order %v", kinds)
	}
	if fr.Items[0].Layer != LayerBackground || fr.Items[1].Layer != LayerBackground {
		t.Errorf("backdrop should draw first, got %v", kinds)
	}
	if names[2] != "far" || names[3] != "near" {
		t.Errorf("spheres should draw far to near, got %v", names)
	}
}

func TestProjectCullsBehindCamera(t *testing.T) {
	cam := testCamera()
	sc := scene.New()
	sc.AddSphere(scene.Sphere{Center: r3.Vec{Y: 500, Z: 2000}, Radius: 5})
	sc.AddLine(scene.Line{From: r3.Vec{}, To: r3.Vec{Y: 800, Z: 3000}})
	if n := len(Project(sc, cam, 800, 600).Items); n != 0 {
		t.Errorf("got %d items, want 0", n)
	}
}

func TestProjectRing(t *testing.T) {
	cam := testCamera()
	sc := scene.New()
	sc.AddTorus(scene.Torus{Role: scene.RoleHub, Radius: 110, Tube: 9})
	fr := Project(sc, cam, 800, 600)
	if fr.Count(KindRing) != 1 {
		t.Fatalf("got %d rings", fr.Count(KindRing))
	}
	ring := fr.Items[0]
	if len(ring.Path) != ringSegments {
		t.Errorf("ring path has %d points, want %d", len(ring.Path), ringSegments)
	}
	// A flat ring seen from above-front projects wider than tall.
	minX, maxX, minY, maxY := math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)
	for _, p := range ring.Path {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	if maxX-minX <= maxY-minY {
		t.Errorf("ring extent %vx%v, want wider than tall", maxX-minX, maxY-minY)
	}
}

func TestKeyLightInCameraSpace(t *testing.T) {
	cam := &camera.Perspective{FOV: 42, Near: 0.1, Position: r3.Vec{Z: 100}}
	sc := scene.New()
	sc.AddLight(scene.Light{Kind: scene.LightDirectional, Position: r3.Vec{Z: 50}, Intensity: 1.6, CastShadow: true})
	fr := Project(sc, cam, 100, 100)
	if math.Abs(fr.KeyLight.Z-1) > 1e-9 {
		t.Errorf("KeyLight = %v, want toward viewer", fr.KeyLight)
	}
}
