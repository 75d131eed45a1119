package viewer

import (
	"bytes"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/boxorbit/pkg/camera"
	"github.com/matzehuels/boxorbit/pkg/config"
	"github.com/matzehuels/boxorbit/pkg/errors"
	"github.com/matzehuels/boxorbit/pkg/label"
	"github.com/matzehuels/boxorbit/pkg/pipeline"
	"github.com/matzehuels/boxorbit/pkg/render/sink"
)

// Viewer implements ebiten.Game for a build in the Rendering stage.
type Viewer struct {
	build    *pipeline.Build
	controls *camera.OrbitControls
	cfg      config.Viewer
	logger   *log.Logger

	width, height int
	home          camera.Perspective
	showLegend    bool
	dragging      ebiten.MouseButton
	dragX, dragY  int
	sprites       map[*label.Sprite]*ebiten.Image
	face          *text.GoTextFace
}

// New attaches a viewer to b. The build must already be rendering.
func New(b *pipeline.Build, cfg config.Viewer, logger *log.Logger) (*Viewer, error) {
	if b.Stage() != pipeline.Rendering {
		return nil, errors.New(errors.ErrCodeInvalidTransition, "viewer needs a rendering build, got %s", b.Stage())
	}
	if logger == nil {
		logger = log.Default()
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load legend font")
	}

	b.Lock()
	home := *b.Camera
	controls := camera.NewOrbitControls(b.Camera, b.Config.Camera)
	b.Unlock()

	return &Viewer{
		build:      b,
		controls:   controls,
		cfg:        cfg,
		logger:     logger,
		width:      cfg.Width,
		height:     cfg.Height,
		home:       home,
		showLegend: true,
		dragging:   -1,
		sprites:    make(map[*label.Sprite]*ebiten.Image),
		face:       &text.GoTextFace{Source: src, Size: 13},
	}, nil
}

// Run opens the window and blocks until it is closed.
func (v *Viewer) Run() error {
	ebiten.SetWindowSize(v.cfg.Width, v.cfg.Height)
	ebiten.SetWindowTitle(v.cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)
	v.logger.Info("opening viewer", "width", v.cfg.Width, "height", v.cfg.Height, "labels", len(v.build.Scene.Labels))
	err := ebiten.RunGame(v)
	for _, img := range v.sprites {
		img.Deallocate()
	}
	return err
}

// Update handles input and advances the damped orbit controls.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		v.showLegend = !v.showLegend
	}

	v.build.Lock()
	defer v.build.Unlock()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		*v.build.Camera = v.home
		v.build.Camera.SetViewport(v.width, v.height)
	}
	v.keyboard()
	v.mouse()
	v.controls.Update()
	return nil
}

func (v *Viewer) keyboard() {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		v.controls.Rotate(-keyRotateStep, 0)
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		v.controls.Rotate(keyRotateStep, 0)
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		v.controls.Rotate(0, -keyRotateStep)
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		v.controls.Rotate(0, keyRotateStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		v.controls.Zoom(1 / zoomStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		v.controls.Zoom(zoomStep)
	}
}

func (v *Viewer) mouse() {
	if _, dy := ebiten.Wheel(); dy != 0 {
		v.controls.Zoom(wheelZoom(dy))
	}

	x, y := ebiten.CursorPosition()
	for _, btn := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight} {
		if inpututil.IsMouseButtonJustPressed(btn) {
			v.dragging, v.dragX, v.dragY = btn, x, y
			return
		}
	}
	if v.dragging < 0 {
		return
	}
	if !ebiten.IsMouseButtonPressed(v.dragging) {
		v.dragging = -1
		return
	}

	dx, dy := float64(x-v.dragX), float64(y-v.dragY)
	v.dragX, v.dragY = x, y
	if v.dragging == ebiten.MouseButtonLeft {
		v.controls.Rotate(dragRotation(dx, dy, v.height))
		return
	}
	v.controls.Pan(dragPan(v.build.Camera, dx, dy, v.height))
}

// Draw rescales every label for the current viewport and paints the frame.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(sink.Background)
	fr, err := v.build.Frame(v.width, v.height)
	if err != nil {
		v.logger.Error("frame", "err", err)
		return
	}
	v.drawFrame(screen, fr)
	if v.showLegend {
		v.drawLegend(screen, v.build.Legend)
	}
}

// Layout tracks the window size so the camera aspect and label scale follow
// resizes.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != v.width || outsideHeight != v.height {
		v.logger.Debug("viewport resized", "width", outsideWidth, "height", outsideHeight)
		v.width, v.height = outsideWidth, outsideHeight
	}
	return outsideWidth, outsideHeight
}

var _ ebiten.Game = (*Viewer)(nil)
