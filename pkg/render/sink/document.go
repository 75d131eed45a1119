package sink

import (
	"github.com/matzehuels/boxorbit/pkg/camera"
	"github.com/matzehuels/boxorbit/pkg/layout"
	"github.com/matzehuels/boxorbit/pkg/scene"
)

// Document is everything a 3D front end needs to rebuild the scene.
type Document struct {
	Source     string
	Scene      *scene.Scene
	Camera     *camera.Perspective
	Legend     []layout.LegendEntry
	Placements []layout.Placement
}
