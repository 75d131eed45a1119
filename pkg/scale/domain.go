package scale

import (
	"math"
	"slices"

	"github.com/matzehuels/boxorbit/pkg/errors"
)

// Domain is a closed interval used to normalize one numeric field.
type Domain struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// Span returns Hi-Lo, or 1 when the domain is degenerate.
func (d Domain) Span() float64 {
	if s := d.Hi - d.Lo; s != 0 {
		return s
	}
	return 1
}

// Clamp restricts v to [Lo, Hi].
func (d Domain) Clamp(v float64) float64 {
	return min(max(v, d.Lo), d.Hi)
}

// Normalize maps v into [0, 1]. Values outside the domain saturate.
func (d Domain) Normalize(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return clamp01((d.Clamp(v) - d.Lo) / d.Span())
}

// Range is an output interval for linear interpolation.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Lerp interpolates between Min and Max.
func (r Range) Lerp(t float64) float64 {
	return r.Min + (r.Max-r.Min)*t
}

// Percentile returns the nearest-rank p-th percentile of sorted values.
// It fails with EMPTY_DATASET when sorted is empty.
func Percentile(sorted []float64, p float64) (float64, error) {
	if len(sorted) == 0 {
		return 0, errors.EmptyDataset("percentile input")
	}
	p = min(max(p, 0), 0.999)
	return sorted[int(math.Floor(p*float64(len(sorted))))], nil
}

// RatingDomain clips ratings to the 0th..98th percentile and rounds the
// bounds outward to the nearest half point.
func RatingDomain(values []float64) (Domain, error) {
	sorted := finiteSorted(values)
	if len(sorted) == 0 {
		return Domain{}, errors.EmptyDataset("rating")
	}
	lo, _ := Percentile(sorted, 0)
	hi, _ := Percentile(sorted, 0.98)
	return Domain{Lo: math.Floor(lo*2) / 2, Hi: math.Ceil(hi*2) / 2}, nil
}

// GrossDomain clips grosses to the 5th..95th percentile.
func GrossDomain(values []float64) (Domain, error) {
	sorted := finiteSorted(values)
	if len(sorted) == 0 {
		return Domain{}, errors.EmptyDataset("worldwide gross")
	}
	lo, _ := Percentile(sorted, 0.05)
	hi, _ := Percentile(sorted, 0.95)
	return Domain{Lo: lo, Hi: hi}, nil
}

func finiteSorted(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
