// Package render projects a scene into a flat, depth-sorted display list.
//
// Every output surface (the SVG and raster sinks, the interactive viewer)
// draws the same [Frame], so they agree on what is visible and in which
// order. Items are grouped into three layers drawn back to front:
//
//   - background: star points and the nebula billboard
//   - scene: hub, spokes, guide lines, ticks, planets and rings, sorted
//     far to near
//   - overlay: label sprites, which ignore depth and always draw last
//
// Labels must be rescaled (see [label.RescaleAll]) for the same camera and
// viewport before projecting so their on-screen size matches their pixel
// size.
//
// Output formats live in the [sink] subpackage.
//
// [sink]: github.com/matzehuels/boxorbit/pkg/render/sink
package render
