package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slidegraph/pkg/config"
	"github.com/matzehuels/slidegraph/pkg/engine"
	"github.com/matzehuels/slidegraph/pkg/errors"
	"github.com/matzehuels/slidegraph/pkg/route"
	"github.com/matzehuels/slidegraph/pkg/slide"
)

// configFlags are the command-line overrides for config file values.
// Only flags the user actually set are applied.
type configFlags struct {
	engine           string
	scale            string
	grouping         string
	connector        string
	bestEffort       bool
	workers          int
	centerDegenerate bool
	slideWidth       int64
	slideHeight      int64
}

// addLayoutFlags registers the flags that affect raw positions.
func (f *configFlags) addLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.engine, "engine", "e", "", "graphviz engine: dot, neato (default), fdp, sfdp, circo, twopi, osage")
}

// addSceneFlags registers the flags that affect placement and routing.
func (f *configFlags) addSceneFlags(cmd *cobra.Command) {
	f.addLayoutFlags(cmd)
	cmd.Flags().StringVarP(&f.scale, "scale", "s", "", `scale about the slide center: "1.5" or "1.5,0.6" (negative mirrors)`)
	cmd.Flags().StringVarP(&f.grouping, "grouping", "g", "", "shape grouping: node (default), role")
	cmd.Flags().StringVar(&f.connector, "connector", "", "connector style: straight (default), elbow, curve")
	cmd.Flags().BoolVar(&f.bestEffort, "best-effort", false, "skip edges to unknown nodes instead of failing")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "route edges with this many goroutines")
	cmd.Flags().BoolVar(&f.centerDegenerate, "center-degenerate", false, "center a zero-range layout axis instead of failing")
	cmd.Flags().Int64Var(&f.slideWidth, "slide-width", 0, "slide width in EMU (default 9144000)")
	cmd.Flags().Int64Var(&f.slideHeight, "slide-height", 0, "slide height in EMU (default 6858000)")
}

// apply copies every changed flag into cfg and validates the result.
func (f *configFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed

	if changed("engine") {
		cfg.Layout.Engine = f.engine
	}
	if changed("scale") {
		s, err := slide.ParseScale(f.scale)
		if err != nil {
			return fmt.Errorf("--scale: %w", err)
		}
		cfg.Layout.Scale = s
	}
	if changed("grouping") {
		g, err := engine.ParseGrouping(f.grouping)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "--grouping")
		}
		cfg.Render.Grouping = g
	}
	if changed("connector") {
		s, err := route.ParseStyle(f.connector)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "--connector")
		}
		cfg.Render.Connector = s
	}
	if changed("best-effort") {
		cfg.Render.BestEffort = f.bestEffort
	}
	if changed("workers") {
		cfg.Render.Workers = f.workers
	}
	if changed("center-degenerate") {
		cfg.Layout.CenterDegenerate = f.centerDegenerate
	}
	if changed("slide-width") {
		cfg.Slide.Width = f.slideWidth
	}
	if changed("slide-height") {
		cfg.Slide.Height = f.slideHeight
	}
	return cfg.Validate()
}
