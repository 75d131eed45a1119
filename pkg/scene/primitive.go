package scene

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/boxorbit/pkg/label"
)

// Role tags a primitive with its purpose in the visualization.
type Role string

const (
	RoleHub       Role = "hub"
	RoleSpoke     Role = "spoke"
	RoleGuide     Role = "guide"
	RoleTick      Role = "tick"
	RolePlanet    Role = "planet"
	RoleFranchise Role = "franchise_ring"
	RoleStars     Role = "stars"
	RoleNebula    Role = "nebula"

	RoleYearLabel  Role = "year_label"
	RoleTickLabel  Role = "tick_label"
	RoleTagLabel   Role = "tag_label"
	RoleTitleLabel Role = "title_label"
)

// Material describes surface appearance. Basic materials ignore lighting.
type Material struct {
	Color       color.NRGBA
	Emissive    color.NRGBA
	Metalness   float64
	Roughness   float64
	Opacity     float64
	Basic       bool
	RenderOrder int
}

// Sphere is a solid ball.
type Sphere struct {
	Role       Role
	Name       string
	Center     r3.Vec
	Radius     float64
	Material   Material
	CastShadow bool
}

// Tube is a cylinder between two points.
type Tube struct {
	Role     Role
	From, To r3.Vec
	Radius   float64
	Material Material
}

// Line is a hairline segment.
type Line struct {
	Role     Role
	From, To r3.Vec
	Material Material
}

// Torus is a ring lying flat in the XZ plane.
type Torus struct {
	Role     Role
	Name     string
	Center   r3.Vec
	Radius   float64
	Tube     float64
	Material Material
}

// Label is a billboard sprite.
type Label struct {
	Role   Role
	Sprite *label.Sprite
}

// Points is a cloud of screen-sized dots.
type Points struct {
	Role      Role
	Positions []r3.Vec
	Size      float64
	Color     color.NRGBA
	Opacity   float64
}

// Billboard is a camera-facing radial gradient disc.
type Billboard struct {
	Role   Role
	Center r3.Vec
	Size   float64
	Inner  color.NRGBA
	Outer  color.NRGBA
}

// LightKind distinguishes light sources.
type LightKind string

const (
	LightHemisphere  LightKind = "hemisphere"
	LightDirectional LightKind = "directional"
)

// Light is a scene light. Ground is used by hemisphere lights only.
type Light struct {
	Kind       LightKind
	Color      color.NRGBA
	Ground     color.NRGBA
	Intensity  float64
	Position   r3.Vec
	CastShadow bool
}
