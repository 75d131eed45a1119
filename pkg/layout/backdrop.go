package layout

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/boxorbit/pkg/config"
	"github.com/matzehuels/boxorbit/pkg/scene"
)

type starField struct {
	count  int
	spread float64
	size   float64
}

var (
	starFields = []starField{
		{count: 3000, spread: 2600, size: 1.6},
		{count: 1500, spread: 1500, size: 2.4},
	}
	starColor   = config.MustColor("#d9e8ff")
	nebulaInner = config.MustColor("rgba(120,180,255,0.5)")
	nebulaOuter = config.MustColor("rgba(20,30,60,0)")
)

const (
	nebulaSize = 1800
	nebulaLift = -60
)

// Backdrop adds the star fields and the nebula billboard. Stars are drawn
// from a PCG source seeded with cfg.Seed, so equal seeds give equal skies.
func Backdrop(asm scene.Assembler, cfg config.Backdrop) {
	if !cfg.Enabled {
		return
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0xdeadbeef))
	for _, f := range starFields {
		asm.AddPoints(scene.Points{
			Role:      scene.RoleStars,
			Positions: stars(rng, f),
			Size:      f.size,
			Color:     starColor,
			Opacity:   0.95,
		})
	}
	asm.AddBillboard(scene.Billboard{
		Role:   scene.RoleNebula,
		Center: r3.Vec{Y: nebulaLift},
		Size:   nebulaSize,
		Inner:  nebulaInner,
		Outer:  nebulaOuter,
	})
}

// stars scatters points in a flattened shell between 0.2 and 1.0 of spread.
func stars(rng *rand.Rand, f starField) []r3.Vec {
	out := make([]r3.Vec, f.count)
	for i := range out {
		r := f.spread * (0.2 + rng.Float64()*0.8)
		t := rng.Float64() * 2 * math.Pi
		p := (rng.Float64() - 0.5) * 0.9 * math.Pi
		out[i] = r3.Vec{
			X: math.Cos(t) * math.Cos(p) * r,
			Y: math.Sin(p) * r * 0.35,
			Z: math.Sin(t) * math.Cos(p) * r,
		}
	}
	return out
}

// Lights adds the hemisphere fill, the shadow-casting key light and the
// cool rim light.
func Lights(asm scene.Assembler) {
	asm.AddLight(scene.Light{
		Kind:      scene.LightHemisphere,
		Color:     config.MustColor("#cce6ff"),
		Ground:    config.MustColor("#05080f"),
		Intensity: 1.0,
	})
	asm.AddLight(scene.Light{
		Kind:       scene.LightDirectional,
		Color:      config.MustColor("#ffffff"),
		Intensity:  1.6,
		Position:   r3.Vec{X: 600, Y: 800, Z: 380},
		CastShadow: true,
	})
	asm.AddLight(scene.Light{
		Kind:      scene.LightDirectional,
		Color:     config.MustColor("#9ec8ff"),
		Intensity: 0.9,
		Position:  r3.Vec{X: -800, Y: 500, Z: -500},
	})
}
