package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slidegraph/pkg/errors"
	"github.com/matzehuels/slidegraph/pkg/graph"
	"github.com/matzehuels/slidegraph/pkg/pipeline"
)

// layoutCommand creates the layout command for computing raw positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		embed   bool
		flags   configFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [graph]",
		Short: "Compute raw node positions with Graphviz",
		Long: `Compute raw node positions for a graph with a Graphviz engine.

The output is a positions file (JSON) that 'render --positions' accepts, so a
layout can be computed once, hand-edited, and rendered many times. Positions
are in Graphviz points with y pointing down; render normalizes them to the
slide.

A graph that carries its own "positions" block is written out unchanged.

With --embed the graph itself is written back out with a "positions" block,
as JSON or YAML by the output extension, so plain 'render' picks it up.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, &cfg); err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), args[0], pipeline.Options{GraphPath: args[0], Config: cfg}, layoutOutput{path: output, embed: embed}, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.positions.json, or <input>.laid.<ext> with --embed)")
	cmd.Flags().BoolVar(&embed, "embed", false, "write the graph with a positions block instead of a positions file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	flags.addLayoutFlags(cmd)

	return cmd
}

// layoutOutput says where and how runLayout writes its result.
type layoutOutput struct {
	path  string
	embed bool
}

// resolve fills in the default path and checks it.
func (o layoutOutput) resolve(input string) (string, error) {
	path := o.path
	if path == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		if o.embed {
			path = base + ".laid" + filepath.Ext(input)
		} else {
			path = base + ".positions.json"
		}
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return "", err
	}
	if filepath.Clean(path) == filepath.Clean(input) {
		return "", errors.New(errors.ErrCodeInvalidPath, "output %s would overwrite the input graph", path)
	}
	if o.embed {
		if _, err := graph.FormatFromPath(path); err != nil {
			return "", err
		}
	}
	return path, nil
}

// runLayout loads the graph, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, out layoutOutput, noCache bool) error {
	output, err := out.resolve(input)
	if err != nil {
		return err
	}

	g, err := pipeline.LoadGraph(opts)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, os.Stderr, "Computing layout...")
	spinner.Start()
	raw, err := runner.Layout(ctx, g, opts)
	elapsed := spinner.Stop()
	if err != nil {
		return err
	}

	positions := graph.NewPositions(raw.Engine, raw.Positions)
	next := fmt.Sprintf("%s render %s --positions %s", appName, input, output)
	if out.embed {
		g.Positions = positions.Positions
		if err := graph.WriteGraphFile(g, output); err != nil {
			return err
		}
		next = fmt.Sprintf("%s render %s", appName, output)
	} else if err := graph.WritePositionsFile(positions, output); err != nil {
		return err
	}

	printSuccess("Computed layout with %s (%s)", raw.Engine, elapsed.Round(time.Millisecond))
	printFile(output)
	printStats(len(raw.Positions), g.EdgeCount(), raw.Cached)
	printNewline()
	printNextStep("Render it", next)
	return nil
}
