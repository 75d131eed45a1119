package pipeline

import (
	"fmt"

	"github.com/matzehuels/boxorbit/pkg/render/sink"
)

// Render produces every format in opts.Formats from b, which must be in the
// Rendering stage. Previews are projected once at opts.Width×opts.Height.
func Render(b *Build, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := RenderFormat(b, format, opts)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// RenderFormat produces a single artifact.
func RenderFormat(b *Build, format string, opts Options) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = renderJSON(b, opts)
	case FormatSVG, FormatPNG, FormatWebP:
		data, err = renderPreview(b, format, opts)
	default:
		err = ValidateFormat(format)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return data, nil
}

func renderJSON(b *Build, opts Options) ([]byte, error) {
	doc, err := b.Document()
	if err != nil {
		return nil, err
	}
	var jsonOpts []sink.JSONOption
	if opts.Indent {
		jsonOpts = append(jsonOpts, sink.WithJSONIndent())
	}
	if opts.NoImages {
		jsonOpts = append(jsonOpts, sink.WithoutLabelImages())
	}
	if b.Config.Backdrop.Enabled {
		jsonOpts = append(jsonOpts, sink.WithJSONBackdrop())
	}
	return sink.RenderJSON(doc, jsonOpts...)
}

func renderPreview(b *Build, format string, opts Options) ([]byte, error) {
	fr, err := b.Frame(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatSVG:
		var svgOpts []sink.SVGOption
		if opts.Legend {
			svgOpts = append(svgOpts, sink.WithSVGLegend(b.Legend))
		}
		return sink.RenderSVG(fr, svgOpts...), nil
	case FormatPNG:
		return sink.RenderPNG(fr, sink.WithSupersample(opts.Supersample))
	default:
		return sink.RenderWebP(fr, sink.WithSupersample(opts.Supersample))
	}
}
