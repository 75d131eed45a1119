// Package layout turns films into orbital scene geometry.
//
// Every distinct year owns a spoke radiating from the central hub ring.
// Films sit on their year's spoke at a distance set by rating and with a
// size set by worldwide gross (see package scale). Colors come from a
// [Palette] keyed by main genre. Franchise films get a flat ring around
// their sphere whose inner edge always clears the sphere surface.
//
// Films sharing a year and rating occupy the same point; no collision
// avoidance is attempted.
//
// [Build] is the single entry point. It pushes all primitives and labels to
// a [scene.Assembler] and returns one [Placement] per film in input order.
package layout
