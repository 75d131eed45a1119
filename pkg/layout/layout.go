package layout

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/boxorbit/pkg/config"
	"github.com/matzehuels/boxorbit/pkg/dataset"
	"github.com/matzehuels/boxorbit/pkg/label"
	"github.com/matzehuels/boxorbit/pkg/scale"
	"github.com/matzehuels/boxorbit/pkg/scene"
)

var (
	hubColor   = config.MustColor("#1a2850")
	spokeColor = config.MustColor("#27436f")
	guideColor = config.MustColor("#6fa7ff")
	tickColor  = config.MustColor("#a0cfff")
)

// Placement is the visual mapping of one film.
type Placement struct {
	Film       dataset.FilmRecord `json:"film"`
	Angle      float64            `json:"angle"`
	Radius     float64            `json:"radius"`
	Size       float64            `json:"size"`
	Genre      string             `json:"genre"`
	Color      color.NRGBA        `json:"-"`
	Ring       bool               `json:"ring"`
	RingRadius float64            `json:"ring_radius,omitempty"`
	Position   r3.Vec             `json:"position"`
}

// Place computes the placement of f. Films from years unknown to ctx sit
// at angle 0.
func Place(ctx *scale.LayoutContext, pal *Palette, f dataset.FilmRecord) Placement {
	g := ctx.Geometry()
	a, _ := ctx.Angle(f.Year)
	r := ctx.RatingToRadius(f.ImdbRating)
	size := ctx.GrossToSize(f.WorldwideGross)

	genre := f.MainGenre
	if !pal.Known(genre) {
		genre = config.FallbackGenre
	}

	p := Placement{
		Film:     f,
		Angle:    a,
		Radius:   r,
		Size:     size,
		Genre:    genre,
		Color:    pal.Color(f.MainGenre),
		Ring:     f.IsFranchise,
		Position: polar(a, r, g.PlanetLift),
	}
	if p.Ring {
		p.RingRadius = RingRadius(size, g)
	}
	return p
}

// RingRadius returns the centerline radius of the franchise ring around a
// sphere of the given size. The ring's inner edge sits RingGap*size outside
// the sphere surface.
func RingRadius(size float64, g config.Geometry) float64 {
	return size*(1+g.RingGap) + g.RingTube
}

// Build places every film and all decorative geometry on asm. Labels are
// created through comp. Placements are returned in input order.
func Build(ctx *scale.LayoutContext, films []dataset.FilmRecord, pal *Palette, comp *label.Compositor, asm scene.Assembler) ([]Placement, error) {
	b := builder{ctx: ctx, g: ctx.Geometry(), comp: comp, asm: asm}

	b.hub()
	if err := b.yearLabels(); err != nil {
		return nil, err
	}
	if err := b.spokes(); err != nil {
		return nil, err
	}

	placements := make([]Placement, len(films))
	for i, f := range films {
		placements[i] = Place(ctx, pal, f)
	}
	if err := b.planets(placements); err != nil {
		return nil, err
	}
	b.rings(placements)
	return placements, nil
}

type builder struct {
	ctx  *scale.LayoutContext
	g    config.Geometry
	comp *label.Compositor
	asm  scene.Assembler
}

func (b *builder) label(role scene.Role, text string, at r3.Vec, style []label.Option) error {
	s, err := b.comp.Composite(text, at, style...)
	if err != nil {
		return fmt.Errorf("label %q: %w", text, err)
	}
	b.asm.AddLabel(scene.Label{Role: role, Sprite: s})
	return nil
}

func (b *builder) hub() {
	b.asm.AddTorus(scene.Torus{
		Role:   scene.RoleHub,
		Radius: b.g.HubRadius,
		Tube:   b.g.HubTube,
		Material: scene.Material{
			Color:     hubColor,
			Metalness: 0.45,
			Roughness: 0.28,
			Opacity:   1,
		},
	})
}

func (b *builder) yearLabels() error {
	for _, y := range b.ctx.Years() {
		a, _ := b.ctx.Angle(y)
		at := polar(a, b.g.HubRadius-yearLabelInset, yearLabelLift)
		if err := b.label(scene.RoleYearLabel, strconv.Itoa(y), at, yearLabelStyle); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) spokes() error {
	ticks := b.ctx.Ticks()
	for _, y := range b.ctx.Years() {
		a, _ := b.ctx.Angle(y)

		b.asm.AddTube(scene.Tube{
			Role:     scene.RoleSpoke,
			From:     polar(a, b.g.HubRadius+1, 0),
			To:       polar(a, b.g.MaxRadius+b.g.SpokeOvershoot, 0),
			Radius:   b.g.SpokeRadius,
			Material: scene.Material{Color: spokeColor, Metalness: 0.35, Roughness: 0.4, Opacity: 1},
		})
		b.asm.AddLine(scene.Line{
			Role: scene.RoleGuide,
			From: polar(a, b.g.HubRadius+b.g.RadiusMargin, 0),
			To:   polar(a, b.g.MaxRadius, 0),
			Material: scene.Material{
				Color:       guideColor,
				Opacity:     0.7,
				Basic:       true,
				RenderOrder: 5,
			},
		})

		for _, tk := range ticks {
			b.asm.AddSphere(scene.Sphere{
				Role:     scene.RoleTick,
				Center:   polar(a, tk.Radius, tickDotLift),
				Radius:   b.g.TickDotRadius,
				Material: scene.Material{Color: tickColor, Basic: true, Opacity: 1},
			})
			if !tk.Major {
				continue
			}
			text := strconv.FormatFloat(tk.Value, 'f', 1, 64)
			if err := b.label(scene.RoleTickLabel, text, polar(a, tk.Radius, tickLabelLift), tickLabelStyle); err != nil {
				return err
			}
		}

		if err := b.label(scene.RoleTagLabel, tagText, polar(a, b.g.HubRadius+tagOffset, tagLift), tagLabelStyle); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) planets(placements []Placement) error {
	for _, p := range placements {
		b.asm.AddSphere(scene.Sphere{
			Role:   scene.RolePlanet,
			Name:   p.Film.Title,
			Center: p.Position,
			Radius: p.Size,
			Material: scene.Material{
				Color:     p.Color,
				Emissive:  tint(p.Color, 0.12),
				Metalness: 0.55,
				Roughness: 0.25,
				Opacity:   1,
			},
			CastShadow: true,
		})
		at := r3.Add(p.Position, r3.Vec{Y: b.g.TitleLift})
		if err := b.label(scene.RoleTitleLabel, p.Film.Title, at, titleLabelStyle); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) rings(placements []Placement) {
	for _, p := range placements {
		if !p.Ring {
			continue
		}
		b.asm.AddTorus(scene.Torus{
			Role:   scene.RoleFranchise,
			Name:   p.Film.Title,
			Center: p.Position,
			Radius: p.RingRadius,
			Tube:   b.g.RingTube,
			Material: scene.Material{
				Color:       FranchiseRingColor,
				Basic:       true,
				Opacity:     1,
				RenderOrder: 2,
			},
		})
	}
}

// polar returns the point at angle a and distance r in the XZ plane, lifted
// by y.
func polar(a, r, y float64) r3.Vec {
	return r3.Vec{X: math.Cos(a) * r, Y: y, Z: math.Sin(a) * r}
}
