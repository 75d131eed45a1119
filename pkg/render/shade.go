package render

import (
	"image/color"
	"math"
)

// Shade returns it.Color lit by the frame's key light for a surface whose
// normal faces the light by lambert in [-1, 1]. A lambert of exactly 0 means
// the orientation is unknown and uses the half-lit value.
func Shade(it Item, fr Frame, lambert float64) color.NRGBA {
	if !it.Shaded {
		return it.Color
	}
	k := fr.Ambient + fr.Diffuse*math.Max(0, lambert)
	if lambert == 0 {
		k = fr.Ambient + fr.Diffuse*0.5
	}
	return Lit(it.Color, it.Outer, k)
}

// Lit scales base by k and adds the emissive color, saturating at 255.
func Lit(base, emissive color.NRGBA, k float64) color.NRGBA {
	ch := func(b, e uint8) uint8 { return uint8(math.Min(255, float64(b)*k+float64(e))) }
	return color.NRGBA{R: ch(base.R, emissive.R), G: ch(base.G, emissive.G), B: ch(base.B, emissive.B), A: 255}
}
