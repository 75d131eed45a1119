// Package label rasterizes screen-facing text labels.
//
// A [Compositor] measures text in a bold sans face, truncates it with an
// ellipsis when it exceeds the requested width, and paints it into an image
// at twice the logical resolution:
//
//  1. optional rounded background panel with a one pixel border
//  2. a blurred glow around the outline
//  3. the outline itself
//  4. the solid text fill
//
// The result is a [Sprite]: a billboard that ignores depth testing and
// renders after all other geometry. Sprites remember their logical pixel
// size; [Sprite.SetPixelSize] rescales a sprite every frame so it covers the
// same number of screen pixels regardless of camera distance.
package label
