package scene

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/boxorbit/pkg/label"
)

func TestEmptyBounds(t *testing.T) {
	if !New().Bounds().Empty() {
		t.Error("empty scene should have empty bounds")
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name    string
		build   func(*Scene)
		wantMin r3.Vec
		wantMax r3.Vec
	}{
		{
			name: "sphere",
			build: func(s *Scene) {
				s.AddSphere(Sphere{Center: r3.Vec{X: 10, Y: 6, Z: -4}, Radius: 2})
			},
			wantMin: r3.Vec{X: 8, Y: 4, Z: -6},
			wantMax: r3.Vec{X: 12, Y: 8, Z: -2},
		},
		{
			name: "flat torus",
			build: func(s *Scene) {
				s.AddTorus(Torus{Radius: 110, Tube: 9})
			},
			wantMin: r3.Vec{X: -119, Y: -9, Z: -119},
			wantMax: r3.Vec{X: 119, Y: 9, Z: 119},
		},
		{
			name: "tube and line",
			build: func(s *Scene) {
				s.AddTube(Tube{From: r3.Vec{X: 0}, To: r3.Vec{X: 100}, Radius: 1})
				s.AddLine(Line{From: r3.Vec{Z: -50}, To: r3.Vec{Z: 50}})
			},
			wantMin: r3.Vec{X: -1, Y: -1, Z: -50},
			wantMax: r3.Vec{X: 101, Y: 1, Z: 50},
		},
		{
			name: "label anchors",
			build: func(s *Scene) {
				s.AddLabel(Label{Sprite: &label.Sprite{Anchor: r3.Vec{X: 1, Y: 30, Z: 2}}})
				s.AddLabel(Label{Sprite: &label.Sprite{Anchor: r3.Vec{X: -1, Y: 20, Z: 5}}})
			},
			wantMin: r3.Vec{X: -1, Y: 20, Z: 2},
			wantMax: r3.Vec{X: 1, Y: 30, Z: 5},
		},
		{
			name: "backdrop excluded",
			build: func(s *Scene) {
				s.AddSphere(Sphere{Radius: 1})
				s.AddPoints(Points{Positions: []r3.Vec{{X: 3000}, {Z: -3000}}})
				s.AddBillboard(Billboard{Center: r3.Vec{Y: -60}, Size: 1800})
			},
			wantMin: r3.Vec{X: -1, Y: -1, Z: -1},
			wantMax: r3.Vec{X: 1, Y: 1, Z: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			tt.build(s)
			b := s.Bounds()
			if b.Empty() {
				t.Fatal("bounds unexpectedly empty")
			}
			if diff := cmp.Diff(tt.wantMin, b.Min); diff != "" {
				t.Errorf("Min mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantMax, b.Max); diff != "" {
				t.Errorf("Max mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBoxCenterSize(t *testing.T) {
	b := Box{}.Extend(r3.Vec{X: -2, Y: 0, Z: 4}).Extend(r3.Vec{X: 6, Y: 10, Z: 8})
	if got := b.Center(); got != (r3.Vec{X: 2, Y: 5, Z: 6}) {
		t.Errorf("Center() = %v", got)
	}
	if got := b.Size(); got != (r3.Vec{X: 8, Y: 10, Z: 4}) {
		t.Errorf("Size() = %v", got)
	}
}

func TestSpritesOrder(t *testing.T) {
	s := New()
	a, b := &label.Sprite{Text: "a"}, &label.Sprite{Text: "b"}
	s.AddLabel(Label{Role: RoleYearLabel, Sprite: a})
	s.AddLabel(Label{Role: RoleTitleLabel, Sprite: b})
	got := s.Sprites()
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("Sprites() = %v", got)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}
