package engine

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/slidegraph/pkg/errors"
	"github.com/matzehuels/slidegraph/pkg/graph"
	"github.com/matzehuels/slidegraph/pkg/metrics"
	"github.com/matzehuels/slidegraph/pkg/route"
	"github.com/matzehuels/slidegraph/pkg/slide"
)

// Grouping selects how shapes are collected into groups.
type Grouping string

const (
	// GroupByNode puts each node's title and content box in one group.
	GroupByNode Grouping = "node"
	// GroupByRole puts all title boxes in one group and all content boxes
	// in another.
	GroupByRole Grouping = "role"
)

// ParseGrouping parses a grouping mode name.
func ParseGrouping(s string) (Grouping, error) {
	switch g := Grouping(s); g {
	case GroupByNode, GroupByRole:
		return g, nil
	}
	return "", fmt.Errorf("unknown grouping %q (want node or role)", s)
}

// Palette holds the default colors.
type Palette struct {
	Title   graph.RGB `toml:"title" json:"title"`
	Content graph.RGB `toml:"content" json:"content"`
	Line    graph.RGB `toml:"line" json:"line"`
	Text    graph.RGB `toml:"text" json:"text"`
}

// DefaultPalette returns green titles and gray contents with black lines
// and text.
func DefaultPalette() Palette {
	return Palette{
		Title:   graph.Green,
		Content: graph.Gray,
		Line:    graph.Black,
		Text:    graph.Black,
	}
}

// Config controls a render.
type Config struct {
	Space      slide.Space
	Metrics    metrics.Metrics
	Scale      slide.Scale
	Grouping   Grouping
	Style      route.Style
	Palette    Palette
	BestEffort bool

	// Degenerate applies to provider layouts. Explicit layouts always
	// center a zero-range axis.
	Degenerate slide.DegeneratePolicy

	// Workers > 1 routes edges concurrently.
	Workers int

	// Logger receives debug traces. Nil disables logging.
	Logger *log.Logger
}

// DefaultConfig returns the standard slide, metrics and palette.
func DefaultConfig() Config {
	return Config{
		Space:    slide.DefaultSpace(),
		Metrics:  metrics.Default(),
		Scale:    slide.Identity,
		Grouping: GroupByNode,
		Style:    route.Straight,
		Palette:  DefaultPalette(),
		Workers:  1,
	}
}

func (c Config) validate() error {
	if err := c.Metrics.Validate(); err != nil {
		return err
	}
	if err := c.Space.Validate(); err != nil {
		return err
	}
	if c.Grouping != "" {
		if _, err := ParseGrouping(string(c.Grouping)); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render")
		}
	}
	if c.Style != 0 {
		if err := c.Style.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render")
		}
	}
	return c.Scale.Validate()
}

func (c Config) style() route.Style {
	if c.Style == 0 {
		return route.Straight
	}
	return c.Style
}

func (c Config) logger() *log.Logger {
	if c.Logger == nil {
		return log.New(io.Discard)
	}
	return c.Logger
}
