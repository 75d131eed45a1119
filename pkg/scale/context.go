package scale

import (
	"fmt"
	"math"
	"slices"

	"github.com/matzehuels/boxorbit/pkg/config"
	"github.com/matzehuels/boxorbit/pkg/dataset"
)

// tickEpsilon keeps the last tick when float steps land just past Hi.
const tickEpsilon = 1e-4

// LayoutContext is the frozen normalization state for one rendering pass.
type LayoutContext struct {
	Mapper
	geometry config.Geometry
	years    []int
	angles   map[int]float64
}

// Tick is one marker along a spoke. Major ticks fall on whole ratings and
// carry a numeric label.
type Tick struct {
	Value  float64
	Radius float64
	Major  bool
}

// NewLayoutContext computes the domains and the year-to-angle map from the
// complete film list. It fails with EMPTY_DATASET when films is empty.
func NewLayoutContext(films []dataset.FilmRecord, g config.Geometry) (*LayoutContext, error) {
	ratings := make([]float64, len(films))
	grosses := make([]float64, len(films))
	for i, f := range films {
		ratings[i] = f.ImdbRating
		grosses[i] = f.WorldwideGross
	}

	rd, err := RatingDomain(ratings)
	if err != nil {
		return nil, err
	}
	gd, err := GrossDomain(grosses)
	if err != nil {
		return nil, err
	}

	years := distinctYears(films)
	angles := make(map[int]float64, len(years))
	for i, y := range years {
		angles[y] = float64(i) / float64(len(years)) * 2 * math.Pi
	}

	return &LayoutContext{
		Mapper: Mapper{
			Rating: rd,
			Gross:  gd,
			Radius: Range{Min: g.HubRadius + g.RadiusMargin, Max: g.MaxRadius},
			Size:   Range{Min: g.MinSize, Max: g.MaxSize},
		},
		geometry: g,
		years:    years,
		angles:   angles,
	}, nil
}

// Geometry returns the geometry the context was built with.
func (c *LayoutContext) Geometry() config.Geometry { return c.geometry }

// Years returns the distinct years in ascending order.
func (c *LayoutContext) Years() []int { return slices.Clone(c.years) }

// Angle returns the angle in radians assigned to year.
func (c *LayoutContext) Angle(year int) (float64, bool) {
	a, ok := c.angles[year]
	return a, ok
}

// Ticks returns one tick per step from the rating domain's Lo to Hi
// inclusive.
func (c *LayoutContext) Ticks() []Tick {
	step := c.geometry.TickStep
	if step <= 0 {
		return nil
	}
	var ticks []Tick
	for i := 0; ; i++ {
		v := c.Rating.Lo + float64(i)*step
		if v > c.Rating.Hi+tickEpsilon {
			break
		}
		ticks = append(ticks, Tick{
			Value:  v,
			Radius: c.RatingToRadius(v),
			Major:  math.Abs(v-math.Round(v)) < 1e-3,
		})
	}
	return ticks
}

// String summarizes the context for logs.
func (c *LayoutContext) String() string {
	return fmt.Sprintf("years=%d rating=[%g,%g] gross=[%g,%g]",
		len(c.years), c.Rating.Lo, c.Rating.Hi, c.Gross.Lo, c.Gross.Hi)
}

func distinctYears(films []dataset.FilmRecord) []int {
	years := make([]int, 0, len(films))
	for _, f := range films {
		years = append(years, f.Year)
	}
	slices.Sort(years)
	return slices.Compact(years)
}
