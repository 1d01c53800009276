// Package pipeline provides the load → layout → place → render pipeline for
// slidegraph.
//
// The CLI and tests share this package so that every entry point makes the
// same choices about layout providers, caching and output formats.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: read a graph file (JSON or YAML)
//  2. Layout: get raw positions from a positions file, the graph's own
//     positions block, or a Graphviz engine (cached)
//  3. Place: normalize, size, stack and route (see the engine package)
//  4. Render: produce SVG, PNG and/or JSON artifacts
//
// A failure in any stage aborts the run before any artifact is produced.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    GraphPath: "graph.yaml",
//	    Config:    config.Default(),
//	    Formats:   []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Stages can also be run on their own:
//
//	g, err := pipeline.LoadGraph(opts)
//	raw, err := runner.Layout(ctx, g, opts)
//	scene, err := runner.Place(ctx, g, raw, opts)
//	artifacts, err := runner.Render(ctx, scene, opts)
package pipeline

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/slidegraph/pkg/config"
	"github.com/matzehuels/slidegraph/pkg/engine"
	"github.com/matzehuels/slidegraph/pkg/errors"
	"github.com/matzehuels/slidegraph/pkg/graph"
	"github.com/matzehuels/slidegraph/pkg/layout"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for one pipeline run.
type Options struct {
	// Input. Graph takes precedence over GraphPath.
	GraphPath     string
	Graph         *graph.Graph
	PositionsPath string // explicit positions, overrides the graph and engine

	Config config.Config

	// Render options
	Formats    []string
	FitContent bool
	Arrows     bool
	PNGScale   float64
	SVGScale   float64

	Logger *log.Logger
}

// ValidateAndSetDefaults checks required fields and applies defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Graph == nil && o.GraphPath == "" {
		return fmt.Errorf("graph or graph path is required")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.PNGScale == 0 {
		o.PNGScale = 1
	}
	if o.SVGScale == 0 {
		o.SVGScale = 1
	}
	if !positive(o.PNGScale) || !positive(o.SVGScale) {
		return errors.New(errors.ErrCodeInvalidConfig, "pixel scale must be a positive number, got png %g and svg %g", o.PNGScale, o.SVGScale)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return o.Config.Validate()
}

func positive(f float64) bool { return f > 0 && !math.IsInf(f, 1) }

// Result contains the outputs of a pipeline run.
type Result struct {
	Graph     graph.Graph
	Layout    layout.Result
	Scene     *engine.Scene
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount      int
	EdgeCount      int
	ConnectorCount int
	FailureCount   int
	LoadTime       time.Duration
	LayoutTime     time.Duration
	PlaceTime      time.Duration
	RenderTime     time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether positions came from the layout cache
}
