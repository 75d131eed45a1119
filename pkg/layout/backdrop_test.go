package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/boxorbit/pkg/config"
	"github.com/matzehuels/boxorbit/pkg/scene"
)

func TestBackdropDeterministic(t *testing.T) {
	a, b := scene.New(), scene.New()
	Backdrop(a, config.Backdrop{Enabled: true, Seed: 7})
	Backdrop(b, config.Backdrop{Enabled: true, Seed: 7})
	if diff := cmp.Diff(a.Points, b.Points); diff != "" {
		t.Errorf("same seed produced different stars:\n%s", diff)
	}

	c := scene.New()
	Backdrop(c, config.Backdrop{Enabled: true, Seed: 8})
	if cmp.Equal(a.Points[0].Positions[0], c.Points[0].Positions[0]) {
		t.Error("different seeds produced identical first star")
	}
}

func TestBackdropShape(t *testing.T) {
	sc := scene.New()
	Backdrop(sc, config.Backdrop{Enabled: true, Seed: 42})

	if len(sc.Points) != 2 || len(sc.Points[0].Positions) != 3000 || len(sc.Points[1].Positions) != 1500 {
		t.Fatalf("unexpected star fields: %d", len(sc.Points))
	}
	for _, p := range sc.Points[0].Positions {
		if p.Y > 2600*0.35 || p.Y < -2600*0.35 {
			t.Fatalf("star %v outside the flattened shell", p)
		}
	}
	if len(sc.Billboards) != 1 || sc.Billboards[0].Size != 1800 {
		t.Errorf("nebula = %+v", sc.Billboards)
	}
	if !sc.Bounds().Empty() {
		t.Error("backdrop must not contribute to bounds")
	}
}

func TestBackdropDisabled(t *testing.T) {
	sc := scene.New()
	Backdrop(sc, config.Backdrop{Enabled: false})
	if len(sc.Points) != 0 || len(sc.Billboards) != 0 {
		t.Error("disabled backdrop added primitives")
	}
}

func TestLights(t *testing.T) {
	sc := scene.New()
	Lights(sc)
	if len(sc.Lights) != 3 {
		t.Fatalf("got %d lights, want 3", len(sc.Lights))
	}
	if sc.Lights[0].Kind != scene.LightHemisphere || !sc.Lights[1].CastShadow || sc.Lights[2].CastShadow {
		t.Errorf("lights = %+v", sc.Lights)
	}
}
