// Package scale maps raw film figures onto visual quantities.
//
// Ratings become orbit radii and worldwide grosses become sphere sizes. Both
// mappings normalize against a percentile-clipped [Domain] computed once from
// the whole dataset, so a handful of outliers cannot flatten everyone else.
//
// # Domains
//
//   - Rating: 0th to 98th percentile, rounded outward to the nearest 0.5
//   - Gross: 5th to 95th percentile, unrounded
//
// Percentiles use the nearest-rank method on ascending values:
// index = floor(clamp(p, 0, 0.999) * n).
//
// # Easing
//
// Radius interpolates linearly. Size interpolates on the cube root of the
// normalized gross, so visual volume grows roughly linearly with revenue.
//
// # LayoutContext
//
// [NewLayoutContext] freezes the domains together with the year-to-angle map.
// The context is immutable and is passed explicitly to every layout call.
package scale
