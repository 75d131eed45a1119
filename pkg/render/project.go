package render

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/boxorbit/pkg/camera"
	"github.com/matzehuels/boxorbit/pkg/scene"
)

const (
	ringSegments = 64
	minPointR    = 0.6
	lineWidth    = 1
)

// Project converts sc into a frame for a w x h viewport seen through cam.
// Primitives behind the camera are dropped.
func Project(sc *scene.Scene, cam *camera.Perspective, w, h int) Frame {
	p := projector{cam: cam, w: float64(w), h: float64(h), f: cam.Focal(float64(h))}
	p.right, p.up, p.forward = cam.Basis()

	fr := Frame{Width: w, Height: h, Ambient: 0.35, Diffuse: 0.65, KeyLight: r3.Vec{Z: 1}}
	if key, ok := keyLight(sc.Lights); ok {
		fr.KeyLight = p.toCamera(r3.Unit(key.Position))
		fr.Diffuse = min(0.65*key.Intensity/1.6, 1)
	}

	items := make([]Item, 0, sc.Len()+64)
	for _, pts := range sc.Points {
		items = p.points(items, pts)
	}
	for _, b := range sc.Billboards {
		items = p.billboard(items, b)
	}
	for _, t := range sc.Tubes {
		items = p.tube(items, t)
	}
	for _, l := range sc.Lines {
		items = p.line(items, l)
	}
	for _, t := range sc.Tori {
		items = p.torus(items, t)
	}
	for _, s := range sc.Spheres {
		items = p.sphere(items, s)
	}
	for _, l := range sc.Labels {
		items = p.label(items, l)
	}

	slices.SortStableFunc(items, func(a, b Item) int {
		if c := cmp.Compare(a.Layer, b.Layer); c != 0 {
			return c
		}
		if a.Layer == LayerOverlay {
			if c := cmp.Compare(a.Order, b.Order); c != 0 {
				return c
			}
		}
		if c := cmp.Compare(b.Depth, a.Depth); c != 0 {
			return c
		}
		return cmp.Compare(a.Order, b.Order)
	})
	fr.Items = items
	return fr
}

type projector struct {
	cam                *camera.Perspective
	w, h, f            float64
	right, up, forward r3.Vec
}

func (p *projector) toCamera(v r3.Vec) r3.Vec {
	return r3.Vec{X: r3.Dot(v, p.right), Y: r3.Dot(v, p.up), Z: -r3.Dot(v, p.forward)}
}

func (p *projector) project(v r3.Vec) (x, y, depth float64, ok bool) {
	return p.cam.Project(v, p.w, p.h)
}

func (p *projector) points(items []Item, pts scene.Points) []Item {
	for _, v := range pts.Positions {
		x, y, d, ok := p.project(v)
		if !ok || x < 0 || y < 0 || x > p.w || y > p.h {
			continue
		}
		items = append(items, Item{
			Kind: KindPoint, Role: pts.Role, Layer: LayerBackground, Depth: d,
			X: x, Y: y, R: max(minPointR, pts.Size*p.f/d/2),
			Color: pts.Color, Opacity: pts.Opacity,
		})
	}
	return items
}

func (p *projector) billboard(items []Item, b scene.Billboard) []Item {
	x, y, d, ok := p.project(b.Center)
	if !ok {
		return items
	}
	return append(items, Item{
		Kind: KindNebula, Role: b.Role, Layer: LayerBackground, Depth: d,
		X: x, Y: y, R: b.Size / 2 * p.f / d,
		Color: b.Inner, Outer: b.Outer, Opacity: 1,
	})
}

func (p *projector) tube(items []Item, t scene.Tube) []Item {
	x1, y1, d1, ok1 := p.project(t.From)
	x2, y2, d2, ok2 := p.project(t.To)
	if !ok1 || !ok2 {
		return items
	}
	d := (d1 + d2) / 2
	return append(items, Item{
		Kind: KindTube, Role: t.Role, Layer: LayerScene, Depth: d, Order: t.Material.RenderOrder,
		X: x1, Y: y1, X2: x2, Y2: y2, Width: max(lineWidth, 2*t.Radius*p.f/d),
		Color: t.Material.Color, Opacity: opacity(t.Material), Shaded: !t.Material.Basic,
	})
}

func (p *projector) line(items []Item, l scene.Line) []Item {
	x1, y1, d1, ok1 := p.project(l.From)
	x2, y2, d2, ok2 := p.project(l.To)
	if !ok1 || !ok2 {
		return items
	}
	return append(items, Item{
		Kind: KindLine, Role: l.Role, Layer: LayerScene, Depth: (d1 + d2) / 2, Order: l.Material.RenderOrder,
		X: x1, Y: y1, X2: x2, Y2: y2, Width: lineWidth,
		Color: l.Material.Color, Opacity: opacity(l.Material),
	})
}

func (p *projector) torus(items []Item, t scene.Torus) []Item {
	_, _, d, ok := p.project(t.Center)
	if !ok {
		return items
	}
	path := make([]Point, 0, ringSegments)
	for i := range ringSegments {
		a := float64(i) / ringSegments * 2 * math.Pi
		v := r3.Add(t.Center, r3.Vec{X: math.Cos(a) * t.Radius, Z: math.Sin(a) * t.Radius})
		x, y, _, ok := p.project(v)
		if !ok {
			return items
		}
		path = append(path, Point{X: x, Y: y})
	}
	return append(items, Item{
		Kind: KindRing, Role: t.Role, Name: t.Name, Layer: LayerScene, Depth: d, Order: t.Material.RenderOrder,
		Path: path, Width: max(lineWidth, 2*t.Tube*p.f/d),
		Color: t.Material.Color, Opacity: opacity(t.Material), Shaded: !t.Material.Basic,
	})
}

func (p *projector) sphere(items []Item, s scene.Sphere) []Item {
	x, y, d, ok := p.project(s.Center)
	if !ok {
		return items
	}
	return append(items, Item{
		Kind: KindSphere, Role: s.Role, Name: s.Name, Layer: LayerScene, Depth: d, Order: s.Material.RenderOrder,
		X: x, Y: y, R: s.Radius * p.f / d,
		Color: s.Material.Color, Outer: s.Material.Emissive, Opacity: opacity(s.Material), Shaded: !s.Material.Basic,
	})
}

func (p *projector) label(items []Item, l scene.Label) []Item {
	x, y, d, ok := p.project(l.Sprite.Anchor)
	if !ok {
		return items
	}
	return append(items, Item{
		Kind: KindLabel, Role: l.Role, Name: l.Sprite.Text, Layer: LayerOverlay, Depth: d, Order: l.Sprite.RenderOrder,
		X: x, Y: y, W: l.Sprite.ScaleX * p.f / d, H: l.Sprite.ScaleY * p.f / d,
		Sprite: l.Sprite, Opacity: 1,
	})
}

func keyLight(lights []scene.Light) (scene.Light, bool) {
	for _, l := range lights {
		if l.Kind == scene.LightDirectional && l.CastShadow {
			return l, true
		}
	}
	for _, l := range lights {
		if l.Kind == scene.LightDirectional {
			return l, true
		}
	}
	return scene.Light{}, false
}

func opacity(m scene.Material) float64 {
	if m.Opacity <= 0 {
		return 1
	}
	return m.Opacity
}
