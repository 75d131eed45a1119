package pipeline

import (
	"context"
	"sync"

	"github.com/matzehuels/boxorbit/pkg/camera"
	"github.com/matzehuels/boxorbit/pkg/config"
	"github.com/matzehuels/boxorbit/pkg/dataset"
	"github.com/matzehuels/boxorbit/pkg/errors"
	"github.com/matzehuels/boxorbit/pkg/label"
	"github.com/matzehuels/boxorbit/pkg/layout"
	"github.com/matzehuels/boxorbit/pkg/render"
	"github.com/matzehuels/boxorbit/pkg/render/sink"
	"github.com/matzehuels/boxorbit/pkg/scale"
	"github.com/matzehuels/boxorbit/pkg/scene"
)

// Stage is a step of the build state machine.
type Stage int

const (
	Idle Stage = iota
	Loading
	Normalizing
	Placing
	Fitted
	Rendering
)

var stageNames = [...]string{"idle", "loading", "normalizing", "placing", "fitted", "rendering"}

func (s Stage) String() string {
	if s < Idle || s > Rendering {
		return "unknown"
	}
	return stageNames[s]
}

// LoadFunc produces the dataset for src.
type LoadFunc func(ctx context.Context, src string) (*dataset.Dataset, error)

// Build holds everything produced while moving one dataset through the stages.
// The exported fields are populated by the stage that owns them and are not
// modified afterwards, except for the camera and label scales which Frame
// updates under the Build's lock.
type Build struct {
	Config config.Config

	Dataset    *dataset.Dataset     // Loading
	Context    *scale.LayoutContext // Normalizing
	Palette    *layout.Palette      // Normalizing
	Scene      *scene.Scene         // Placing
	Placements []layout.Placement   // Placing
	Legend     []layout.LegendEntry // Placing
	Camera     *camera.Perspective  // Fitted

	mu     sync.Mutex
	stage  Stage
	failed error
	comp   *label.Compositor
}

// NewBuild returns an Idle build using cfg.
func NewBuild(cfg config.Config) *Build {
	return &Build{Config: cfg}
}

// Stage returns the current stage.
func (b *Build) Stage() Stage {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stage
}

// Err returns the error that stopped the build, if any.
func (b *Build) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failed
}

// enter moves to next if it directly follows the current stage.
// Callers hold b.mu.
func (b *Build) enter(next Stage) error {
	if b.failed != nil {
		return errors.Wrap(errors.ErrCodeInvalidTransition, b.failed, "build failed in %s", b.stage)
	}
	if next != b.stage+1 {
		return errors.New(errors.ErrCodeInvalidTransition, "cannot go from %s to %s", b.stage, next)
	}
	b.stage = next
	return nil
}

// fail records err and returns it.
func (b *Build) fail(err error) error {
	if err != nil {
		b.failed = err
	}
	return err
}

// Load enters Loading and reads src with load. Nothing else is created when
// the load fails.
func (b *Build) Load(ctx context.Context, src string, load LoadFunc) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.enter(Loading); err != nil {
		return err
	}
	ds, err := load(ctx, src)
	if err != nil {
		return b.fail(err)
	}
	b.Dataset = ds
	return nil
}

// Normalize enters Normalizing and freezes the scale domains, the year
// angles and the genre palette.
func (b *Build) Normalize() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.enter(Normalizing); err != nil {
		return err
	}
	lc, err := scale.NewLayoutContext(b.Dataset.Films, b.Config.Geometry)
	if err != nil {
		return b.fail(err)
	}
	pal, err := layout.NewPalette(b.Config.Palette)
	if err != nil {
		return b.fail(err)
	}
	b.Context, b.Palette = lc, pal
	return nil
}

// Place enters Placing and emits lights, backdrop, decorations, planets,
// rings and labels into a fresh scene.
func (b *Build) Place() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.enter(Placing); err != nil {
		return err
	}
	comp, err := label.NewCompositor()
	if err != nil {
		return b.fail(err)
	}
	sc := scene.New()
	layout.Lights(sc)
	layout.Backdrop(sc, b.Config.Backdrop)
	ps, err := layout.Build(b.Context, b.Dataset.Films, b.Palette, comp, sc)
	if err != nil {
		_ = comp.Close()
		return b.fail(err)
	}
	b.comp = comp
	b.Scene, b.Placements, b.Legend = sc, ps, layout.Legend(b.Palette)
	return nil
}

// Fit enters Fitted: the camera starts on its configured orbit and is then
// framed on the scene bounds for the given aspect ratio.
func (b *Build) Fit(aspect float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.enter(Fitted); err != nil {
		return err
	}
	cam := camera.NewOrbit(b.Config.Camera, aspect)
	if err := camera.Fit(cam, b.Scene.Bounds(), b.Config.Camera.FitPadding, b.Config.Camera.FitOffset); err != nil {
		return b.fail(err)
	}
	b.Camera = cam
	return nil
}

// StartRendering enters the terminal Rendering stage.
func (b *Build) StartRendering() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enter(Rendering)
}

// Frame rescales every label for a w×h viewport and projects the scene.
// It is the per-frame step of the Rendering stage.
func (b *Build) Frame(w, h int) (render.Frame, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stage != Rendering {
		return render.Frame{}, errors.New(errors.ErrCodeInvalidTransition, "frame requested in %s", b.stage)
	}
	b.Camera.SetViewport(w, h)
	label.RescaleAll(b.Scene.Sprites(), b.Camera, float64(h))
	return render.Project(b.Scene, b.Camera, w, h), nil
}

// Document returns the scene for export. It requires the Rendering stage.
func (b *Build) Document() (sink.Document, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stage != Rendering {
		return sink.Document{}, errors.New(errors.ErrCodeInvalidTransition, "document requested in %s", b.stage)
	}
	cam := *b.Camera
	return sink.Document{
		Source:     b.Dataset.Source,
		Scene:      b.Scene,
		Camera:     &cam,
		Legend:     b.Legend,
		Placements: b.Placements,
	}, nil
}

// Lock and Unlock serialize access to the camera and label scales for
// callers that drive them directly, such as the interactive viewer.
func (b *Build) Lock()   { b.mu.Lock() }
func (b *Build) Unlock() { b.mu.Unlock() }

// Close releases the label compositor's font faces.
func (b *Build) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.comp == nil {
		return nil
	}
	err := b.comp.Close()
	b.comp = nil
	return err
}
