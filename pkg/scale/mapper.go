package scale

import "math"

// Mapper converts ratings and grosses into radii and sphere sizes.
type Mapper struct {
	Rating Domain `json:"rating"`
	Gross  Domain `json:"gross"`
	Radius Range  `json:"radius"`
	Size   Range  `json:"size"`
}

// RatingToRadius interpolates linearly across the radius range.
// Ratings below the domain map to Radius.Min and above it to Radius.Max.
func (m Mapper) RatingToRadius(v float64) float64 {
	return m.Radius.Lerp(m.Rating.Normalize(v))
}

// GrossToSize interpolates on the cube root of the normalized gross.
func (m Mapper) GrossToSize(v float64) float64 {
	return m.Size.Lerp(math.Cbrt(m.Gross.Normalize(v)))
}
