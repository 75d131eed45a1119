// Package pkg provides the libraries behind boxorbit, an orbital 3D view of
// box-office films.
//
// # Overview
//
// Every film becomes a planet circling a central hub. Release years divide
// the full turn into spokes, the IMDb rating sets the distance from the hub,
// worldwide gross sets the planet size and the main genre its color.
// Franchise entries carry a ring. The pkg directory is organized as:
//
//  1. Data: [dataset] (CSV loading and coercion), [config] (tunables)
//  2. Mapping: [scale] (percentile domains and easing), [layout] (placement
//     and decorations), [label] (rasterized billboard text)
//  3. Scene: [scene] (primitive assembler and bounds), [camera] (perspective,
//     orbit controls and fitting)
//  4. Output: [render] (projected display list), [render/sink] (JSON, SVG,
//     PNG, WebP), [viewer] (interactive window), [server] (HTTP)
//  5. Orchestration: [pipeline] (stage machine and runner), [cache],
//     [observability], [errors]
//
// # Architecture
//
// The data flow through a build:
//
//	CSV (file, stdin or URL)
//	         ↓
//	    [dataset] FilmRecords
//	         ↓
//	    [scale] LayoutContext (domains frozen for the session)
//	         ↓
//	    [layout] placements, spokes, ticks, labels → [scene]
//	         ↓
//	    [camera] fit
//	         ↓
//	    [render] → JSON / SVG / PNG / WebP, window or HTTP
//
// [pipeline.Build] enforces the order Idle → Loading → Normalizing → Placing
// → Fitted → Rendering; any other transition is rejected.
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Source:  "films.csv",
//	    Formats: []string{pipeline.FormatJSON, pipeline.FormatPNG},
//	})
//	if err != nil {
//	    return err
//	}
//	png := res.Artifacts[pipeline.FormatPNG]
//
// # Testing
//
//	go test ./pkg/...       # All tests
//	go test -run Example    # Examples only
//
// Redis-backed cache tests run when BOXORBIT_TEST_REDIS names a server URL.
//
// [dataset]: https://pkg.go.dev/github.com/matzehuels/boxorbit/pkg/dataset
// [config]: https://pkg.go.dev/github.com/matzehuels/boxorbit/pkg/config
// [scale]: https://pkg.go.dev/github.com/matzehuels/boxorbit/pkg/scale
// [layout]: https://pkg.go.dev/github.com/matzehuels/boxorbit/pkg/layout
// [label]: https://pkg.go.dev/github.com/matzehuels/boxorbit/pkg/label
// [scene]: https://pkg.go.dev/github.com/matzehuels/boxorbit/pkg/scene
// [camera]: https://pkg.go.dev/github.com/matzehuels/boxorbit/pkg/camera
// [render]: https://pkg.go.dev/github.com/matzehuels/boxorbit/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/boxorbit/pkg/render/sink
// [viewer]: https://pkg.go.dev/github.com/matzehuels/boxorbit/pkg/viewer
// [server]: https://pkg.go.dev/github.com/matzehuels/boxorbit/pkg/server
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/boxorbit/pkg/pipeline
// [pipeline.Build]: https://pkg.go.dev/github.com/matzehuels/boxorbit/pkg/pipeline#Build
// [cache]: https://pkg.go.dev/github.com/matzehuels/boxorbit/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/boxorbit/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/boxorbit/pkg/errors
package pkg
