// Package sink writes scenes and frames to output formats.
//
//   - JSON: the full 3D scene (primitives, labels with raster data, lights,
//     camera, legend, placements) for a WebGL front end
//   - SVG: a projected preview of a [render.Frame]
//   - PNG and WebP: a raster preview painted at a supersampled resolution
//     and filtered down
//
// Renderers take functional options in the form WithX.
package sink
