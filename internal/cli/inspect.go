package cli

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slidegraph/pkg/engine"
	"github.com/matzehuels/slidegraph/pkg/geom"
	"github.com/matzehuels/slidegraph/pkg/pipeline"
)

// inspectCommand creates the inspect command: places a graph and prints
// the resulting boxes and connectors as tables.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		positions string
		noCache   bool
		flags     configFlags
	)

	cmd := &cobra.Command{
		Use:   "inspect [graph]",
		Short: "Print the placed boxes and connectors of a graph",
		Long: `Place a graph on the slide and print the result without rendering.

Every node is listed with its center and the corner and size of its title and
content boxes. Every connector is listed with its anchor pair and length. All
values are in EMU.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, &cfg); err != nil {
				return err
			}
			return c.runInspect(cmd.Context(), pipeline.Options{
				GraphPath:     args[0],
				PositionsPath: positions,
				Config:        cfg,
			}, noCache)
		},
	}

	cmd.Flags().StringVarP(&positions, "positions", "p", "", "positions file from 'slidegraph layout'")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the layout cache")
	flags.addSceneFlags(cmd)

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, opts pipeline.Options, noCache bool) error {
	g, err := pipeline.LoadGraph(opts)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", opts.GraphPath, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, os.Stderr, "Computing layout...")
	spinner.Start()
	raw, err := runner.Layout(ctx, g, opts)
	spinner.Stop()
	if err != nil {
		return err
	}
	scene, err := runner.Place(ctx, g, raw, opts)
	if err != nil {
		return err
	}

	printKeyValue("Slide", fmt.Sprintf("%d x %d", scene.Width, scene.Height))
	printKeyValue("Layout", raw.Engine)
	printNewline()
	fmt.Println(StyleTitle.Render("Nodes"))
	fmt.Println(renderTable([]string{"Node", "Center", "Title box", "Content box"}, nodeRows(scene)))
	if len(scene.Connectors) > 0 {
		fmt.Println(StyleTitle.Render("Connectors"))
		fmt.Println(renderTable([]string{"From", "To", "Anchors", "Length"}, connectorRows(scene)))
	}
	for _, f := range scene.Failures {
		printWarning("%s", f.Message)
	}
	return nil
}

func nodeRows(s *engine.Scene) [][]string {
	rows := make([][]string, 0, len(s.Nodes))
	for _, n := range s.Nodes {
		rows = append(rows, []string{n.ID, n.Center.String(), formatBox(n.TitleBox), formatBox(n.ContentBox)})
	}
	return rows
}

func connectorRows(s *engine.Scene) [][]string {
	rows := make([][]string, 0, len(s.Connectors))
	for _, c := range s.Connectors {
		length := math.Sqrt(c.Begin.DistSq(c.End))
		rows = append(rows, []string{
			c.From,
			c.To,
			c.Source.String() + " " + iconArrow + " " + c.Target.String(),
			strconv.FormatInt(int64(math.Round(length)), 10),
		})
	}
	return rows
}

// formatBox renders a box as "corner WxH".
func formatBox(b geom.Box) string {
	size := b.Size()
	return fmt.Sprintf("%s %dx%d", b.Corner(), size.W, size.H)
}
