package scale

import (
	"math"
	"testing"
)

func testMapper() Mapper {
	return Mapper{
		Rating: Domain{Lo: 6, Hi: 9},
		Gross:  Domain{Lo: 1e8, Hi: 2e9},
		Radius: Range{Min: 122, Max: 460},
		Size:   Range{Min: 7, Max: 22},
	}
}

func TestRatingToRadiusMonotonic(t *testing.T) {
	m := testMapper()
	prev := math.Inf(-1)
	for v := 5.0; v <= 10; v += 0.05 {
		r := m.RatingToRadius(v)
		if r < prev {
			t.Fatalf("RatingToRadius(%v) = %v decreased from %v", v, r, prev)
		}
		prev = r
	}
}

func TestRatingToRadiusSaturates(t *testing.T) {
	m := testMapper()
	lo, hi := m.RatingToRadius(m.Rating.Lo), m.RatingToRadius(m.Rating.Hi)
	if lo != 122 || hi != 460 {
		t.Fatalf("endpoints = %v, %v; want 122, 460", lo, hi)
	}
	for _, v := range []float64{5.9, 0, -100, math.Inf(-1)} {
		if got := m.RatingToRadius(v); got != lo {
			t.Errorf("RatingToRadius(%v) = %v, want %v", v, got, lo)
		}
	}
	for _, v := range []float64{9.1, 10, 1e9, math.Inf(1)} {
		if got := m.RatingToRadius(v); got != hi {
			t.Errorf("RatingToRadius(%v) = %v, want %v", v, got, hi)
		}
	}
}

func TestGrossToSizeBounds(t *testing.T) {
	m := testMapper()
	inputs := []float64{-1e12, 0, 1, 1e8, 5e8, 1e9, 2e9, 3e9, 1e15, math.MaxFloat64, -math.MaxFloat64}
	for _, v := range inputs {
		got := m.GrossToSize(v)
		if got < 7 || got > 22 {
			t.Errorf("GrossToSize(%v) = %v, outside [7, 22]", v, got)
		}
	}
	if got := m.GrossToSize(2e9); got != 22 {
		t.Errorf("GrossToSize(hi) = %v, want 22", got)
	}
	if got := m.GrossToSize(1e8); got != 7 {
		t.Errorf("GrossToSize(lo) = %v, want 7", got)
	}
}

func TestGrossToSizeCubeRootEasing(t *testing.T) {
	m := Mapper{Gross: Domain{Lo: 0, Hi: 1000}, Size: Range{Min: 0, Max: 10}}
	if got := m.GrossToSize(125); math.Abs(got-5) > 1e-9 {
		t.Errorf("GrossToSize(125) = %v, want 5", got)
	}
}
