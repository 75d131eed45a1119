package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxorbit/pkg/errors"
	"github.com/matzehuels/boxorbit/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string // output file (single format) or base path (multiple)
	formats     string // comma-separated: json, svg, png, webp
	width       int
	height      int
	supersample int
	legend      bool // draw the legend into SVG previews
	noImages    bool // omit label PNGs from JSON
	indent      bool
	refresh     bool // refetch remote datasets
	noCache     bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <source>",
		Short: "Render the orbit scene to JSON, SVG, PNG or WebP",
		Long: `Render loads a film CSV from a file, an http(s) URL or "-" for stdin and
writes the orbit scene in every requested format.

  json   full scene for WebGL engines (primitives, labels, lights, camera, legend)
  svg    projected vector preview
  png    raster preview, supersampled and downscaled
  webp   same as png, WebP encoded`,
		Example: `  boxorbit render films.csv
  boxorbit render films.csv -f json,png -o out/orbit
  curl -s https://example.com/films.csv | boxorbit render - -f webp --width 1920 --height 1080`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), json, png, webp (comma-separated)")
	cmd.Flags().IntVar(&opts.width, "width", pipeline.DefaultWidth, "preview width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", pipeline.DefaultHeight, "preview height in pixels")
	cmd.Flags().IntVar(&opts.supersample, "supersample", pipeline.DefaultSupersample, "raster supersampling factor (1-4)")
	cmd.Flags().BoolVar(&opts.legend, "legend", false, "draw the legend into SVG previews")
	cmd.Flags().BoolVar(&opts.noImages, "no-images", false, "omit label images from JSON")
	cmd.Flags().BoolVar(&opts.indent, "indent", false, "indent JSON output")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "refetch remote datasets instead of using the cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, source string, ro renderOpts) error {
	formats := parseFormats(ro.formats)
	if err := pipeline.ValidateFormats(formats); err != nil {
		return err
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, cfg, ro.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinnerWithContext(ctx, "Rendering "+source+"...")
	spinner.Start()
	restore := trackStages(spinner)
	result, err := runner.Execute(ctx, pipeline.Options{
		Source:      source,
		Config:      &cfg,
		Refresh:     ro.refresh,
		Formats:     formats,
		Width:       ro.width,
		Height:      ro.height,
		Supersample: ro.supersample,
		Legend:      ro.legend,
		NoImages:    ro.noImages,
		Indent:      ro.indent,
		Logger:      loggerFromContext(ctx),
	})
	restore()
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	defer result.Build.Close()

	paths, err := writeArtifacts(result.Artifacts, formats, ro.output, source)
	if err != nil {
		return err
	}
	prog.done("wrote outputs", "files", len(paths), "cached", result.CacheInfo.RenderHit)

	printSuccess("Rendered %s", source)
	printStats(result.Stats, result.CacheInfo.RenderHit)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// writeArtifacts writes one file per format and returns the paths in format
// order.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, source string) ([]string, error) {
	paths := outputPaths(formats, output, source)
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		path := paths[f]
		if err := errors.ValidateOutputPath(path); err != nil {
			return nil, err
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "create %s", dir)
			}
		}
		if err := os.WriteFile(path, artifacts[f], 0o644); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
		}
		out = append(out, path)
	}
	return out, nil
}

// outputPaths maps each format to its file. A single format writes to output
// verbatim when given; otherwise files share a base path named after output
// or the source.
func outputPaths(formats []string, output, source string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, source)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// basePath derives the base output path. Known format extensions are
// stripped from output; without output the base is the source file name, or
// "orbit" for stdin and URLs.
func basePath(output, source string) string {
	if output != "" {
		ext := filepath.Ext(output)
		if pipeline.ValidateFormat(strings.TrimPrefix(ext, ".")) == nil {
			return strings.TrimSuffix(output, ext)
		}
		return output
	}
	if source == "-" || strings.Contains(source, "://") {
		return "orbit"
	}
	name := filepath.Base(source)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
