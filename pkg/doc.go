// Package pkg provides the core libraries for slidegraph.
//
// # Overview
//
// Slidegraph turns a directed graph into a slide: every node becomes a title
// box stacked on a content box, and every edge becomes a connector between
// the closest pair of anchor points on those boxes. The pkg directory is
// organized by stage:
//
//  1. [graph] - Graph files (JSON, YAML) and positions files
//  2. [layout] - Raw positions from the graph or a Graphviz engine
//  3. [slide], [metrics], [geom] - Normalization, text sizing and box geometry
//  4. [route] - Anchor resolution and shortest-connector routing
//  5. [engine] - Placement of a whole graph into a [engine.Scene]
//  6. [sink] - SVG, PNG and JSON output
//  7. [pipeline] - Orchestration (load → layout → place → render)
//
// Supporting packages are [config] (TOML settings), [cache] (layout cache),
// [errors] (coded errors) and [observability] (pipeline hooks).
//
// # Architecture
//
//	Graph file (JSON/YAML)
//	         ↓
//	    [layout] package (raw positions, cached)
//	         ↓
//	    [slide] package (fit to the slide, scale about the center)
//	         ↓
//	    [engine] package (size boxes, stack, route connectors)
//	         ↓
//	    SVG/PNG/JSON output
//
// # Quick Start
//
//	g, _ := graph.ReadGraphFile("graph.yaml")
//	raw, _ := layout.FromGraph(g).Layout(ctx, g)
//	scene, _ := engine.Render(ctx, g, raw, engine.DefaultConfig())
//	svg := sink.RenderSVG(scene)
//
// Most callers use [pipeline.Runner] instead, which adds caching, hooks and
// the Graphviz fallback.
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/slidegraph/pkg/graph
// [layout]: https://pkg.go.dev/github.com/matzehuels/slidegraph/pkg/layout
// [slide]: https://pkg.go.dev/github.com/matzehuels/slidegraph/pkg/slide
// [metrics]: https://pkg.go.dev/github.com/matzehuels/slidegraph/pkg/metrics
// [geom]: https://pkg.go.dev/github.com/matzehuels/slidegraph/pkg/geom
// [route]: https://pkg.go.dev/github.com/matzehuels/slidegraph/pkg/route
// [engine]: https://pkg.go.dev/github.com/matzehuels/slidegraph/pkg/engine
// [sink]: https://pkg.go.dev/github.com/matzehuels/slidegraph/pkg/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/slidegraph/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/slidegraph/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/slidegraph/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/slidegraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/slidegraph/pkg/observability
// [engine.Scene]: https://pkg.go.dev/github.com/matzehuels/slidegraph/pkg/engine#Scene
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/slidegraph/pkg/pipeline#Runner
package pkg
