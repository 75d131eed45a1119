package scale

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/boxorbit/pkg/config"
	"github.com/matzehuels/boxorbit/pkg/dataset"
	"github.com/matzehuels/boxorbit/pkg/errors"
)

func films(years ...int) []dataset.FilmRecord {
	out := make([]dataset.FilmRecord, len(years))
	for i, y := range years {
		out[i] = dataset.FilmRecord{Title: "F", Year: y, ImdbRating: 6 + float64(i%4)*0.5, WorldwideGross: float64(i+1) * 1e8}
	}
	return out
}

func TestYearAngles(t *testing.T) {
	ctx, err := NewLayoutContext(films(2012, 1997, 2019, 2012, 2009), config.Default().Geometry)
	if err != nil {
		t.Fatal(err)
	}

	wantYears := []int{1997, 2009, 2012, 2019}
	if diff := cmp.Diff(wantYears, ctx.Years()); diff != "" {
		t.Fatalf("Years() mismatch (-want +got):\n%s", diff)
	}

	seen := make(map[float64]int)
	prev := -1.0
	for i, y := range wantYears {
		a, ok := ctx.Angle(y)
		if !ok {
			t.Fatalf("Angle(%d) missing", y)
		}
		if want := float64(i) / 4 * 2 * math.Pi; a != want {
			t.Errorf("Angle(%d) = %v, want %v", y, a, want)
		}
		if other, dup := seen[a]; dup {
			t.Errorf("years %d and %d share angle %v", other, y, a)
		}
		if a <= prev {
			t.Errorf("Angle(%d) = %v not ascending after %v", y, a, prev)
		}
		seen[a] = y
		prev = a
	}

	if first, _ := ctx.Angle(1997); first != 0 {
		t.Errorf("first year angle = %v, want 0", first)
	}
	if _, ok := ctx.Angle(1900); ok {
		t.Error("Angle(1900) should be unknown")
	}
}

func TestYearsIsACopy(t *testing.T) {
	ctx, err := NewLayoutContext(films(2001, 2002), config.Default().Geometry)
	if err != nil {
		t.Fatal(err)
	}
	ys := ctx.Years()
	ys[0] = 1800
	if ctx.Years()[0] != 2001 {
		t.Error("mutating Years() result leaked into the context")
	}
}

func TestNewLayoutContextEmpty(t *testing.T) {
	_, err := NewLayoutContext(nil, config.Default().Geometry)
	if !errors.Is(err, errors.ErrCodeEmptyDataset) {
		t.Errorf("NewLayoutContext(nil) error = %v, want EMPTY_DATASET", err)
	}
}

func TestRadiusRangeFromGeometry(t *testing.T) {
	g := config.Default().Geometry
	ctx, err := NewLayoutContext(films(2000, 2001), g)
	if err != nil {
		t.Fatal(err)
	}
	want := Range{Min: g.HubRadius + g.RadiusMargin, Max: g.MaxRadius}
	if ctx.Radius != want {
		t.Errorf("Radius = %+v, want %+v", ctx.Radius, want)
	}
}

func TestTicks(t *testing.T) {
	g := config.Default().Geometry
	ctx := &LayoutContext{
		Mapper:   Mapper{Rating: Domain{Lo: 6.5, Hi: 8}, Radius: Range{Min: 122, Max: 460}},
		geometry: g,
	}

	ticks := ctx.Ticks()
	wantValues := []float64{6.5, 7, 7.5, 8}
	wantMajor := []bool{false, true, false, true}
	if len(ticks) != len(wantValues) {
		t.Fatalf("got %d ticks, want %d: %+v", len(ticks), len(wantValues), ticks)
	}
	for i, tk := range ticks {
		if tk.Value != wantValues[i] || tk.Major != wantMajor[i] {
			t.Errorf("tick %d = %+v, want value %v major %v", i, tk, wantValues[i], wantMajor[i])
		}
	}
	if ticks[0].Radius != 122 || ticks[len(ticks)-1].Radius != 460 {
		t.Errorf("tick radii span %v..%v, want 122..460", ticks[0].Radius, ticks[len(ticks)-1].Radius)
	}
}

func TestTicksIncludeUpperBoundWithFractionalStep(t *testing.T) {
	g := config.Default().Geometry
	g.TickStep = 0.1
	ctx := &LayoutContext{Mapper: Mapper{Rating: Domain{Lo: 0, Hi: 1}}, geometry: g}
	ticks := ctx.Ticks()
	if len(ticks) != 11 {
		t.Fatalf("got %d ticks, want 11", len(ticks))
	}
	if last := ticks[len(ticks)-1].Value; math.Abs(last-1) > 1e-9 {
		t.Errorf("last tick = %v, want 1", last)
	}
}
