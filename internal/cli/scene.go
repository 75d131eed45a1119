package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxorbit/pkg/config"
	"github.com/matzehuels/boxorbit/pkg/pipeline"
)

// sceneFlags are shared by commands that build a scene and keep it open.
type sceneFlags struct {
	refresh bool
	noCache bool
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "refetch remote datasets instead of using the cache")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the cache")
}

// liveScene is a build that has entered the Rendering stage, plus the runner
// that produced it.
type liveScene struct {
	Config config.Config
	Runner *pipeline.Runner
	Build  *pipeline.Build
}

// Close releases the build and the runner's cache.
func (s *liveScene) Close() error {
	_ = s.Build.Close()
	return s.Runner.Close()
}

// openScene builds source for a surface of width x height pixels and enters
// Rendering.
func (c *CLI) openScene(ctx context.Context, source string, f sceneFlags, width, height int) (*liveScene, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	runner, err := c.newRunner(ctx, cfg, f.noCache)
	if err != nil {
		return nil, err
	}

	spinner := newSpinnerWithContext(ctx, "Building scene from "+source+"...")
	spinner.Start()
	restore := trackStages(spinner)
	b, err := runner.Build(ctx, pipeline.Options{
		Source:  source,
		Config:  &cfg,
		Refresh: f.refresh,
		Width:   width,
		Height:  height,
		Logger:  loggerFromContext(ctx),
	})
	restore()
	if err != nil {
		spinner.StopWithError("Build failed")
		_ = runner.Close()
		return nil, err
	}
	spinner.Stop()
	if err := b.StartRendering(); err != nil {
		_ = b.Close()
		_ = runner.Close()
		return nil, err
	}
	return &liveScene{Config: cfg, Runner: runner, Build: b}, nil
}
