package sink

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/color"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/boxorbit/pkg/config"
	"github.com/matzehuels/boxorbit/pkg/layout"
	"github.com/matzehuels/boxorbit/pkg/scene"
)

// namespace seeds the deterministic object IDs.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/boxorbit"))

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	indent   bool
	images   bool
	backdrop bool
}

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

// WithoutLabelImages omits the base64 PNG raster of every label. Front ends
// then rasterize label text themselves.
func WithoutLabelImages() JSONOption { return func(r *jsonRenderer) { r.images = false } }

// WithJSONBackdrop includes the star fields and nebula.
func WithJSONBackdrop() JSONOption { return func(r *jsonRenderer) { r.backdrop = true } }

type jsonOutput struct {
	Source     string          `json:"source,omitempty"`
	Camera     jsonCamera      `json:"camera"`
	Lights     []jsonLight     `json:"lights"`
	Objects    []jsonObject    `json:"objects"`
	Labels     []jsonLabel     `json:"labels"`
	Backdrop   []jsonObject    `json:"backdrop,omitempty"`
	Legend     []jsonLegend    `json:"legend"`
	Placements []jsonPlacement `json:"placements"`
}

type jsonVec [3]float64

type jsonCamera struct {
	FOV      float64 `json:"fov"`
	Near     float64 `json:"near"`
	Far      float64 `json:"far"`
	Position jsonVec `json:"position"`
	Target   jsonVec `json:"target"`
}

type jsonLight struct {
	Kind       string  `json:"kind"`
	Color      string  `json:"color"`
	Ground     string  `json:"ground,omitempty"`
	Intensity  float64 `json:"intensity"`
	Position   jsonVec `json:"position"`
	CastShadow bool    `json:"cast_shadow,omitempty"`
}

type jsonMaterial struct {
	Color       string  `json:"color"`
	Emissive    string  `json:"emissive,omitempty"`
	Metalness   float64 `json:"metalness,omitempty"`
	Roughness   float64 `json:"roughness,omitempty"`
	Opacity     float64 `json:"opacity"`
	Basic       bool    `json:"basic,omitempty"`
	RenderOrder int     `json:"render_order,omitempty"`
}

type jsonObject struct {
	ID         string        `json:"id"`
	Type       string        `json:"type"`
	Role       string        `json:"role"`
	Name       string        `json:"name,omitempty"`
	Center     *jsonVec      `json:"center,omitempty"`
	From       *jsonVec      `json:"from,omitempty"`
	To         *jsonVec      `json:"to,omitempty"`
	Radius     float64       `json:"radius,omitempty"`
	Tube       float64       `json:"tube,omitempty"`
	Size       float64       `json:"size,omitempty"`
	Points     []jsonVec     `json:"points,omitempty"`
	Material   *jsonMaterial `json:"material,omitempty"`
	CastShadow bool          `json:"cast_shadow,omitempty"`
	Inner      string        `json:"inner,omitempty"`
	Outer      string        `json:"outer,omitempty"`
}

type jsonLabel struct {
	ID          string  `json:"id"`
	Role        string  `json:"role"`
	Text        string  `json:"text"`
	Anchor      jsonVec `json:"anchor"`
	PixelWidth  int     `json:"pixel_width"`
	PixelHeight int     `json:"pixel_height"`
	RenderOrder int     `json:"render_order"`
	DepthTest   bool    `json:"depth_test"`
	Image       string  `json:"image,omitempty"`
}

type jsonLegend struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Ring  bool   `json:"ring,omitempty"`
}

type jsonPlacement struct {
	Title      string  `json:"title"`
	Year       int     `json:"year"`
	Rating     float64 `json:"rating"`
	Gross      float64 `json:"gross"`
	Genre      string  `json:"genre"`
	Franchise  string  `json:"franchise,omitempty"`
	Angle      float64 `json:"angle"`
	Radius     float64 `json:"radius"`
	Size       float64 `json:"size"`
	Color      string  `json:"color"`
	Ring       bool    `json:"ring"`
	RingRadius float64 `json:"ring_radius,omitempty"`
	Position   jsonVec `json:"position"`
}

// RenderJSON serializes doc. Object IDs are name-based UUIDs derived from
// role and position in the scene, so identical scenes produce identical
// output.
func RenderJSON(doc Document, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{images: true}
	for _, opt := range opts {
		opt(&r)
	}

	out, err := r.build(doc)
	if err != nil {
		return nil, err
	}
	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

func (r jsonRenderer) build(doc Document) (jsonOutput, error) {
	sc := doc.Scene
	out := jsonOutput{
		Source:     doc.Source,
		Lights:     make([]jsonLight, 0, len(sc.Lights)),
		Objects:    make([]jsonObject, 0, sc.Len()),
		Labels:     make([]jsonLabel, 0, len(sc.Labels)),
		Legend:     make([]jsonLegend, 0, len(doc.Legend)),
		Placements: make([]jsonPlacement, 0, len(doc.Placements)),
	}
	if cam := doc.Camera; cam != nil {
		out.Camera = jsonCamera{FOV: cam.FOV, Near: cam.Near, Far: cam.Far, Position: vec(cam.Position), Target: vec(cam.Target)}
	}

	for _, l := range sc.Lights {
		jl := jsonLight{
			Kind: string(l.Kind), Color: config.Hex(l.Color), Intensity: l.Intensity,
			Position: vec(l.Position), CastShadow: l.CastShadow,
		}
		if l.Kind == scene.LightHemisphere {
			jl.Ground = config.Hex(l.Ground)
		}
		out.Lights = append(out.Lights, jl)
	}

	ids := idGen{}
	for _, s := range sc.Spheres {
		c := vec(s.Center)
		out.Objects = append(out.Objects, jsonObject{
			ID: ids.next(s.Role), Type: "sphere", Role: string(s.Role), Name: s.Name,
			Center: &c, Radius: s.Radius, Material: material(s.Material), CastShadow: s.CastShadow,
		})
	}
	for _, t := range sc.Tubes {
		f, to := vec(t.From), vec(t.To)
		out.Objects = append(out.Objects, jsonObject{
			ID: ids.next(t.Role), Type: "tube", Role: string(t.Role),
			From: &f, To: &to, Radius: t.Radius, Material: material(t.Material),
		})
	}
	for _, l := range sc.Lines {
		f, to := vec(l.From), vec(l.To)
		out.Objects = append(out.Objects, jsonObject{
			ID: ids.next(l.Role), Type: "line", Role: string(l.Role),
			From: &f, To: &to, Material: material(l.Material),
		})
	}
	for _, t := range sc.Tori {
		c := vec(t.Center)
		out.Objects = append(out.Objects, jsonObject{
			ID: ids.next(t.Role), Type: "torus", Role: string(t.Role), Name: t.Name,
			Center: &c, Radius: t.Radius, Tube: t.Tube, Material: material(t.Material),
		})
	}

	for _, l := range sc.Labels {
		s := l.Sprite
		jl := jsonLabel{
			ID: ids.next(l.Role), Role: string(l.Role), Text: s.Text, Anchor: vec(s.Anchor),
			PixelWidth: s.PixelWidth, PixelHeight: s.PixelHeight, RenderOrder: s.RenderOrder,
		}
		if r.images && s.Image != nil {
			data, err := s.PNG()
			if err != nil {
				return jsonOutput{}, fmt.Errorf("encode label %q: %w", s.Text, err)
			}
			jl.Image = "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
		}
		out.Labels = append(out.Labels, jl)
	}

	if r.backdrop {
		for _, p := range sc.Points {
			pts := make([]jsonVec, len(p.Positions))
			for i, v := range p.Positions {
				pts[i] = vec(v)
			}
			out.Backdrop = append(out.Backdrop, jsonObject{
				ID: ids.next(p.Role), Type: "points", Role: string(p.Role), Size: p.Size, Points: pts,
				Material: &jsonMaterial{Color: config.Hex(p.Color), Opacity: p.Opacity, Basic: true},
			})
		}
		for _, b := range sc.Billboards {
			c := vec(b.Center)
			out.Backdrop = append(out.Backdrop, jsonObject{
				ID: ids.next(b.Role), Type: "billboard", Role: string(b.Role), Center: &c, Size: b.Size,
				Inner: rgba(b.Inner), Outer: rgba(b.Outer),
			})
		}
	}

	for _, e := range doc.Legend {
		out.Legend = append(out.Legend, jsonLegend{Label: e.Label, Color: e.Hex, Ring: e.Ring})
	}
	for _, p := range doc.Placements {
		out.Placements = append(out.Placements, placement(p))
	}
	return out, nil
}

func placement(p layout.Placement) jsonPlacement {
	jp := jsonPlacement{
		Title: p.Film.Title, Year: p.Film.Year, Rating: p.Film.ImdbRating, Gross: p.Film.WorldwideGross,
		Genre: p.Genre, Angle: p.Angle, Radius: p.Radius, Size: p.Size,
		Color: config.Hex(p.Color), Ring: p.Ring, RingRadius: p.RingRadius, Position: vec(p.Position),
	}
	if p.Film.IsFranchise {
		jp.Franchise = p.Film.Franchise
	}
	return jp
}

type idGen map[scene.Role]int

func (g idGen) next(role scene.Role) string {
	n := g[role]
	g[role] = n + 1
	return uuid.NewSHA1(namespace, fmt.Appendf(nil, "%s/%d", role, n)).String()
}

func vec(v r3.Vec) jsonVec { return jsonVec{v.X, v.Y, v.Z} }

func material(m scene.Material) *jsonMaterial {
	jm := &jsonMaterial{
		Color: config.Hex(m.Color), Metalness: m.Metalness, Roughness: m.Roughness,
		Opacity: m.Opacity, Basic: m.Basic, RenderOrder: m.RenderOrder,
	}
	if m.Emissive != (color.NRGBA{}) {
		jm.Emissive = config.Hex(m.Emissive)
	}
	return jm
}

func rgba(c color.NRGBA) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", c.R, c.G, c.B, float64(c.A)/255)
}
