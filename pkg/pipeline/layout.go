package pipeline

import (
	"context"

	"github.com/matzehuels/slidegraph/pkg/cache"
	"github.com/matzehuels/slidegraph/pkg/graph"
	"github.com/matzehuels/slidegraph/pkg/layout"
)

// Provider picks the layout source for g, in order of precedence: a
// positions file, the graph's positions block, then the configured Graphviz
// engine.
func Provider(g graph.Graph, opts Options, c cache.Cache) (layout.Provider, error) {
	if opts.PositionsPath != "" {
		p, err := graph.ReadPositionsFile(opts.PositionsPath)
		if err != nil {
			return nil, err
		}
		return layout.Fixed(p.Vecs()), nil
	}
	if p := layout.FromGraph(g); p != nil {
		return p, nil
	}
	return &layout.Graphviz{
		Engine:  opts.Config.Layout.Engine,
		Metrics: opts.Config.Metrics,
		Cache:   c,
		Logger:  opts.Logger,
	}, nil
}

// ComputeLayout runs the selected provider once.
func ComputeLayout(ctx context.Context, g graph.Graph, opts Options, c cache.Cache) (layout.Result, error) {
	p, err := Provider(g, opts, c)
	if err != nil {
		return layout.Result{}, err
	}
	return p.Layout(ctx, g)
}
