package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slidegraph/pkg/errors"
	"github.com/matzehuels/slidegraph/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string   // output file path (or base path for multiple outputs)
	formats    []string // output formats: "svg", "png", "json"
	positions  string   // explicit positions file
	noCache    bool     // skip the layout cache
	fitContent bool     // grow the frame to include everything drawn
	arrows     bool     // arrowheads at connector targets
	pngScale   float64  // PNG pixel scale
	svgScale   float64  // SVG pixel scale
	config     configFlags
}

// renderCommand creates the render command: graph file → slide artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{pngScale: 1, svgScale: 1}

	cmd := &cobra.Command{
		Use:   "render [graph]",
		Short: "Render a graph to SVG, PNG and/or JSON",
		Long: `Render a graph file (JSON or YAML) as a slide.

Node positions come from, in order of precedence:
  1. --positions (a file written by 'slidegraph layout')
  2. the graph's own "positions" block
  3. a Graphviz engine (--engine), cached locally

The raw positions are fitted to the slide, scaled by --scale about the slide
center, and every node is drawn as a title box stacked on a content box.
Edges are connected along the shortest of 36 anchor pairs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if err := opts.config.apply(cmd, &cfg); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], pipeline.Options{
				GraphPath:     args[0],
				PositionsPath: opts.positions,
				Config:        cfg,
				Formats:       opts.formats,
				FitContent:    opts.fitContent,
				Arrows:        opts.arrows,
				PNGScale:      opts.pngScale,
				SVGScale:      opts.svgScale,
			}, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.positions, "positions", "p", "", "positions file from 'slidegraph layout'")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the layout cache")
	cmd.Flags().BoolVar(&opts.fitContent, "fit", false, "grow the output frame to include boxes outside the slide")
	cmd.Flags().BoolVar(&opts.arrows, "arrows", false, "draw arrowheads at connector targets")
	cmd.Flags().Float64Var(&opts.pngScale, "png-scale", opts.pngScale, "PNG pixel scale (1 = 96 DPI)")
	cmd.Flags().Float64Var(&opts.svgScale, "svg-scale", opts.svgScale, "SVG width and height multiplier")
	opts.config.addSceneFlags(cmd)

	return cmd
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, popts pipeline.Options, opts *renderOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		return err
	}
	prog.done("Rendered slide")

	paths, err := writeArtifacts(result.Artifacts, opts.formats, opts.output, input)
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", filepath.Base(input))
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.NodeCount, result.Stats.ConnectorCount, result.CacheInfo.LayoutHit)
	if n := result.Stats.FailureCount; n > 0 {
		printWarning("%d edge(s) skipped", n)
		for _, f := range result.Scene.Failures {
			printDetail("%s", f.Message)
		}
	}
	return nil
}

// writeArtifacts writes artifacts in format order and returns the paths.
// Every path is checked before the first write, and a failed write removes
// the files already written.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, input string) ([]string, error) {
	paths := make([]string, len(formats))
	for i, format := range formats {
		path := output
		if path == "" || len(formats) > 1 {
			path = basePath(output, input) + "." + format
		}
		if err := errors.ValidateOutputPath(path); err != nil {
			return nil, err
		}
		if filepath.Clean(path) == filepath.Clean(input) {
			return nil, errors.New(errors.ErrCodeInvalidPath, "output %s would overwrite the input graph", path)
		}
		paths[i] = path
	}

	for i, path := range paths {
		if err := os.WriteFile(path, artifacts[formats[i]], 0o644); err != nil {
			for _, done := range paths[:i] {
				os.Remove(done)
			}
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
	}
	return paths, nil
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"]. Duplicates are dropped.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .png, .json), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
