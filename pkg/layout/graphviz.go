package layout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/slidegraph/pkg/cache"
	"github.com/matzehuels/slidegraph/pkg/errors"
	"github.com/matzehuels/slidegraph/pkg/geom"
	"github.com/matzehuels/slidegraph/pkg/graph"
	"github.com/matzehuels/slidegraph/pkg/metrics"
	"github.com/matzehuels/slidegraph/pkg/observability"
	"github.com/matzehuels/slidegraph/pkg/slide"
)

// DefaultEngine is used when Graphviz.Engine is empty.
const DefaultEngine = "neato"

// layoutTTL bounds how long cached positions are reused.
const layoutTTL = 7 * 24 * time.Hour

// Graphviz lays graphs out with a Graphviz engine.
type Graphviz struct {
	Engine  string
	Metrics metrics.Metrics
	Cache   cache.Cache // nil disables caching
	Logger  *log.Logger // nil uses log.Default()
}

// Layout runs the engine and returns positions in points, y pointing down.
func (p *Graphviz) Layout(ctx context.Context, g graph.Graph) (Result, error) {
	engine := p.engine()
	if !ValidEngine(engine) {
		return Result{}, errors.New(errors.ErrCodeInvalidConfig, "unknown layout engine %q (want one of %s)", engine, strings.Join(Engines, ", "))
	}
	logger := p.logger()

	dot, ids := ToDOT(g, p.Metrics)
	key := cache.LayoutKey(dot, cache.LayoutKeyOpts{Engine: engine})

	if pos, ok := p.cached(ctx, key); ok {
		logger.Debug("layout cache hit", "engine", engine, "nodes", len(pos))
		return Result{Positions: pos, Engine: engine, Cached: true}, nil
	}

	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, engine, len(ids))
	pos, err := layoutDOT(ctx, dot, engine, ids)
	if err == nil {
		observability.Pipeline().OnLayoutComplete(ctx, engine, time.Since(start), nil)
		logger.Debug("graphviz layout", "engine", engine, "nodes", len(pos), "duration", time.Since(start))
		p.store(ctx, key, pos)
		return Result{Positions: pos, Engine: engine}, nil
	}
	observability.Pipeline().OnLayoutComplete(ctx, engine, time.Since(start), err)
	return Result{}, errors.Wrap(errors.ErrCodeLayoutFailed, err, "graphviz %s", engine)
}

func (p *Graphviz) engine() string {
	if p.Engine == "" {
		return DefaultEngine
	}
	return p.Engine
}

func (p *Graphviz) logger() *log.Logger {
	if p.Logger == nil {
		return log.Default()
	}
	return p.Logger
}

func (p *Graphviz) cached(ctx context.Context, key string) (map[string]geom.Vec, bool) {
	if p.Cache == nil {
		return nil, false
	}
	data, hit, err := p.Cache.Get(ctx, key)
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, cache.KeyTypeLayout)
		return nil, false
	}
	var raw graph.Positions
	if err := json.Unmarshal(data, &raw); err != nil {
		observability.Cache().OnCacheMiss(ctx, cache.KeyTypeLayout)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, cache.KeyTypeLayout)
	return raw.Vecs(), true
}

func (p *Graphviz) store(ctx context.Context, key string, pos map[string]geom.Vec) {
	if p.Cache == nil {
		return
	}
	data, err := json.Marshal(graph.NewPositions(p.engine(), pos))
	if err != nil {
		return
	}
	if err := p.Cache.Set(ctx, key, data, layoutTTL); err != nil {
		p.logger().Warn("layout cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, cache.KeyTypeLayout, len(data))
}

// ToDOT converts g to DOT source for layout. Nodes are named n0, n1, ... in
// first-appearance order so that arbitrary IDs never need quoting; the
// returned slice maps those indices back to IDs. Each node is a fixed-size
// box as large as its stacked title and content boxes, sized from the last
// entry when an ID repeats. Edges whose
// endpoints are not nodes of g are left out.
func ToDOT(g graph.Graph, m metrics.Metrics) (string, []string) {
	index := make(map[string]int, len(g.Nodes))
	var ids []string
	var buf bytes.Buffer

	buf.WriteString("digraph G {\n")
	buf.WriteString("  graph [overlap=false, splines=false, sep=\"+12\"];\n")
	buf.WriteString("  node [shape=box, fixedsize=true, label=\"\"];\n")

	for _, n := range g.Nodes {
		if _, dup := index[n.ID]; !dup {
			index[n.ID] = len(ids)
			ids = append(ids, n.ID)
		}
	}
	for i, id := range ids {
		n, _ := g.Node(id)
		title := m.Measure(n.DisplayTitle())
		content := m.Measure(n.DisplayContent())
		w := float64(max(title.W, content.W)) / slide.EMUPerInch
		h := float64(title.H+content.H) / slide.EMUPerInch
		fmt.Fprintf(&buf, "  n%d [width=%.4f, height=%.4f];\n", i, w, h)
	}

	for _, e := range g.Edges {
		from, ok1 := index[e.From]
		to, ok2 := index[e.To]
		if !ok1 || !ok2 {
			continue
		}
		fmt.Fprintf(&buf, "  n%d -> n%d;\n", from, to)
	}

	buf.WriteString("}\n")
	return buf.String(), ids
}

// layoutDOT lays out dot with engine and reads back the position Graphviz
// assigned to each node.
func layoutDOT(ctx context.Context, dot, engine string, ids []string) (map[string]geom.Vec, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.Layout(engine))

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	// Rendering to DOT attaches pos to every node of g.
	if err := gv.Render(ctx, g, graphviz.XDOT, io.Discard); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return nodePositions(g, ids)
}

// nodePositions reads the pos attribute of nodes n0, n1, ... in g. Every
// node in ids must have one.
func nodePositions(g *graphviz.Graph, ids []string) (map[string]geom.Vec, error) {
	pos := make(map[string]geom.Vec, len(ids))
	n, err := g.FirstNode()
	for ; err == nil && n != nil; n, err = g.NextNode(n) {
		name, nameErr := n.Name()
		if nameErr != nil {
			return nil, fmt.Errorf("node name: %w", nameErr)
		}
		idx, ok := nodeIndex(name, len(ids))
		if !ok {
			continue
		}
		raw := n.GetStr("pos")
		if raw == "" {
			continue
		}
		v, posErr := parsePoint(raw)
		if posErr != nil {
			return nil, fmt.Errorf("node %s: %w", ids[idx], posErr)
		}
		pos[ids[idx]] = v
	}
	if err != nil {
		return nil, fmt.Errorf("walk nodes: %w", err)
	}

	for _, id := range ids {
		if _, ok := pos[id]; !ok {
			return nil, fmt.Errorf("no position for node %s", id)
		}
	}
	return pos, nil
}

// nodeIndex maps a DOT name "n<i>" back to i.
func nodeIndex(name string, count int) (int, bool) {
	rest, ok := strings.CutPrefix(name, "n")
	if !ok {
		return 0, false
	}
	idx, err := strconv.Atoi(rest)
	if err != nil || idx < 0 || idx >= count {
		return 0, false
	}
	return idx, true
}

// parsePoint parses a Graphviz "x,y" point and flips y.
func parsePoint(s string) (geom.Vec, error) {
	xs, ys, ok := strings.Cut(strings.TrimSuffix(s, "!"), ",")
	if !ok {
		return geom.Vec{}, fmt.Errorf("malformed pos %q", s)
	}
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return geom.Vec{}, fmt.Errorf("malformed pos %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return geom.Vec{}, fmt.Errorf("malformed pos %q: %w", s, err)
	}
	return geom.Vec{X: x, Y: -y}, nil
}
