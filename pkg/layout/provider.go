package layout

import (
	"context"

	"github.com/matzehuels/slidegraph/pkg/geom"
	"github.com/matzehuels/slidegraph/pkg/graph"
)

// Result is a raw layout.
type Result struct {
	Positions map[string]geom.Vec
	// Explicit marks caller-supplied coordinates.
	Explicit bool
	// Engine names the provider, for logs and positions files.
	Engine string
	// Cached reports that the positions came from the layout cache.
	Cached bool
}

// Provider computes raw positions for the nodes of g.
type Provider interface {
	Layout(ctx context.Context, g graph.Graph) (Result, error)
}

// Fixed returns the same caller-supplied positions for every graph.
type Fixed map[string]geom.Vec

// Layout returns a copy of the fixed positions.
func (f Fixed) Layout(ctx context.Context, g graph.Graph) (Result, error) {
	pos := make(map[string]geom.Vec, len(f))
	for id, p := range f {
		pos[id] = p
	}
	return Result{Positions: pos, Explicit: true, Engine: "fixed"}, nil
}

// FromGraph returns a Fixed provider for the graph's positions block, or
// nil when the graph has none.
func FromGraph(g graph.Graph) Provider {
	if !g.HasPositions() {
		return nil
	}
	return Fixed(g.ExplicitPositions())
}
