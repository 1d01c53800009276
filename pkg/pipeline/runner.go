package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/slidegraph/pkg/cache"
	"github.com/matzehuels/slidegraph/pkg/engine"
	"github.com/matzehuels/slidegraph/pkg/graph"
	"github.com/matzehuels/slidegraph/pkg/layout"
	"github.com/matzehuels/slidegraph/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → place → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	g, err := LoadGraph(opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Graph = g
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	r.Logger.Info("loaded graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	raw, err := r.Layout(ctx, g, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = raw
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = raw.Cached

	r.Logger.Info("computed layout",
		"engine", raw.Engine,
		"positions", len(raw.Positions),
		"cached", raw.Cached,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Place
	placeStart := time.Now()
	scene, err := r.Place(ctx, g, raw, opts)
	if err != nil {
		return nil, fmt.Errorf("place: %w", err)
	}
	result.Scene = scene
	result.Stats.PlaceTime = time.Since(placeStart)
	result.Stats.ConnectorCount = len(scene.Connectors)
	result.Stats.FailureCount = len(scene.Failures)

	r.Logger.Info("placed scene",
		"nodes", len(scene.Nodes),
		"connectors", len(scene.Connectors),
		"duration", result.Stats.PlaceTime)

	// Stage 4: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, scene, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Layout computes raw positions for g. Graphviz layouts go through the
// runner's cache.
func (r *Runner) Layout(ctx context.Context, g graph.Graph, opts Options) (layout.Result, error) {
	r.applyLogger(&opts)
	return ComputeLayout(ctx, g, opts, r.Cache)
}

// Place builds the scene from g and raw positions.
func (r *Runner) Place(ctx context.Context, g graph.Graph, raw layout.Result, opts Options) (*engine.Scene, error) {
	r.applyLogger(&opts)
	cfg := opts.Config.Engine()
	cfg.Logger = opts.Logger

	start := time.Now()
	scene, err := engine.Render(ctx, g, raw, cfg)
	if err != nil {
		return nil, err
	}
	observability.Pipeline().OnSceneComplete(ctx, len(scene.Nodes), len(scene.Connectors), len(scene.Failures), time.Since(start))
	return scene, nil
}

// Render produces the artifacts for scene.
func (r *Runner) Render(ctx context.Context, scene *engine.Scene, opts Options) (map[string][]byte, error) {
	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, err := RenderScene(scene, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// applyLogger sets the runner's logger on opts if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
