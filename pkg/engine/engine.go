package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/slidegraph/pkg/errors"
	"github.com/matzehuels/slidegraph/pkg/geom"
	"github.com/matzehuels/slidegraph/pkg/graph"
	"github.com/matzehuels/slidegraph/pkg/layout"
	"github.com/matzehuels/slidegraph/pkg/route"
	"github.com/matzehuels/slidegraph/pkg/slide"
)

// Render places g on a slide using the raw positions in raw.
//
// Positions for IDs that are not nodes of g are ignored. Node entries
// without a position are not placed; an edge touching one fails with an
// UnknownNodeError.
func Render(ctx context.Context, g graph.Graph, raw layout.Result, cfg Config) (*Scene, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	logger := cfg.logger()

	points, err := normalize(g, raw, cfg)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	scene := &Scene{
		ID:     uuid.New(),
		Width:  cfg.Space.Width,
		Height: cfg.Space.Height,
		Layout: raw.Engine,
		Line:   cfg.Palette.Line,
		Text:   cfg.Palette.Text,
	}
	scene.Nodes = place(g, points, cfg)
	if skipped := len(g.Nodes) - len(scene.Nodes); skipped > 0 {
		logger.Warn("nodes without position", "count", skipped)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	connectors, failures, err := routeEdges(ctx, g.Edges, scene, cfg)
	if err != nil {
		return nil, fmt.Errorf("route: %w", err)
	}
	scene.Connectors = connectors
	scene.Failures = failures
	for _, f := range failures {
		logger.Warn("edge skipped", "from", f.From, "to", f.To, "err", f.Message)
	}

	grouping := cfg.Grouping
	if grouping == "" {
		grouping = GroupByNode
	}
	scene.Groups = buildGroups(scene.Nodes, len(scene.Connectors), grouping)

	logger.Debug("scene placed",
		"nodes", len(scene.Nodes),
		"connectors", len(scene.Connectors),
		"failures", len(scene.Failures))
	return scene, nil
}

func normalize(g graph.Graph, raw layout.Result, cfg Config) (map[string]geom.Point, error) {
	known := make(map[string]geom.Vec, len(raw.Positions))
	for _, n := range g.Nodes {
		if p, ok := raw.Positions[n.ID]; ok {
			known[n.ID] = p
		}
	}

	policy := cfg.Degenerate
	if raw.Explicit {
		policy = slide.CenterDegenerate
	}
	n := slide.Normalizer{Space: cfg.Space, Degenerate: policy}
	return n.Normalize(known, cfg.Scale)
}

func place(g graph.Graph, points map[string]geom.Point, cfg Config) []PlacedNode {
	nodes := make([]PlacedNode, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		center, ok := points[n.ID]
		if !ok {
			continue
		}
		title, content := n.DisplayTitle(), n.DisplayContent()
		tb, cb := geom.Stack(center, cfg.Metrics.Measure(title), cfg.Metrics.Measure(content))

		pn := PlacedNode{
			ID:           n.ID,
			Title:        title,
			Content:      content,
			Center:       center,
			TitleBox:     tb,
			ContentBox:   cb,
			TitleColor:   cfg.Palette.Title,
			ContentColor: cfg.Palette.Content,
		}
		if n.TitleColor != nil {
			pn.TitleColor = *n.TitleColor
		}
		if n.ContentBackground != nil {
			pn.ContentColor = *n.ContentBackground
		}
		nodes = append(nodes, pn)
	}
	return nodes
}

// routeEdges routes every edge. Each edge writes only its own slot, so the
// result order is edge order for any worker count.
func routeEdges(ctx context.Context, edges []graph.Edge, scene *Scene, cfg Config) ([]route.Connector, []Failure, error) {
	endpoints := make(map[string]route.Endpoints, len(scene.Nodes))
	for _, n := range scene.Nodes {
		endpoints[n.ID] = n.Endpoints()
	}

	style := cfg.style()
	slots := make([]route.Connector, len(edges))
	errs := make([]*errors.UnknownNodeError, len(edges))

	routeOne := func(i int) {
		e := edges[i]
		src, ok := endpoints[e.From]
		if !ok {
			errs[i] = &errors.UnknownNodeError{NodeID: e.From, From: e.From, To: e.To}
			return
		}
		dst, ok := endpoints[e.To]
		if !ok {
			errs[i] = &errors.UnknownNodeError{NodeID: e.To, From: e.From, To: e.To}
			return
		}
		c := route.Route(src, dst, style)
		c.From, c.To = e.From, e.To
		slots[i] = c
	}

	if cfg.Workers > 1 && len(edges) > 1 {
		eg, ctx := errgroup.WithContext(ctx)
		eg.SetLimit(cfg.Workers)
		for i := range edges {
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				routeOne(i)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, nil, err
		}
	} else {
		for i := range edges {
			routeOne(i)
		}
	}

	connectors := make([]route.Connector, 0, len(edges))
	var failures []Failure
	for i, unk := range errs {
		if unk == nil {
			connectors = append(connectors, slots[i])
			continue
		}
		if !cfg.BestEffort {
			return nil, nil, unk
		}
		failures = append(failures, Failure{
			From:    unk.From,
			To:      unk.To,
			Node:    unk.NodeID,
			Message: unk.Error(),
		})
	}
	return connectors, failures, nil
}
