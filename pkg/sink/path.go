package sink

import (
	"github.com/matzehuels/slidegraph/pkg/engine"
	"github.com/matzehuels/slidegraph/pkg/geom"
	"github.com/matzehuels/slidegraph/pkg/route"
)

// EMUPerPixel converts slide units to 96 DPI pixels.
const EMUPerPixel = 9525

// Path returns the points that draw c. See the package doc for the shape
// of each style.
func Path(c route.Connector) []geom.Point {
	switch c.Style {
	case route.Elbow:
		return elbow(c)
	case route.Curve:
		return curve(c)
	}
	return []geom.Point{c.Begin, c.End}
}

func horizontal(s geom.Side) bool { return s == geom.SideLeft || s == geom.SideRight }

func elbow(c route.Connector) []geom.Point {
	b, e := c.Begin, c.End
	if horizontal(c.Source.Side) {
		mid := b.X + (e.X-b.X)/2
		return []geom.Point{b, {X: mid, Y: b.Y}, {X: mid, Y: e.Y}, e}
	}
	mid := b.Y + (e.Y-b.Y)/2
	return []geom.Point{b, {X: b.X, Y: mid}, {X: e.X, Y: mid}, e}
}

func curve(c route.Connector) []geom.Point {
	b, e := c.Begin, c.End
	d := max(abs(e.X-b.X), abs(e.Y-b.Y)) / 2
	return []geom.Point{b, push(b, c.Source.Side, d), push(e, c.Target.Side, d), e}
}

// push moves p by d along the outward normal of side.
func push(p geom.Point, side geom.Side, d int64) geom.Point {
	switch side {
	case geom.SideTop:
		p.Y -= d
	case geom.SideBottom:
		p.Y += d
	case geom.SideLeft:
		p.X -= d
	case geom.SideRight:
		p.X += d
	}
	return p
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// frame returns the output area in slide units.
func frame(s *engine.Scene, fit bool) geom.Box {
	f := geom.Box{Width: s.Width, Height: s.Height}
	if !fit {
		return f
	}
	left, top, right, bottom := f.Left(), f.Top(), f.Right(), f.Bottom()
	grow := func(b geom.Box) {
		left = min(left, b.Left())
		top = min(top, b.Top())
		right = max(right, b.Right())
		bottom = max(bottom, b.Bottom())
	}
	for _, n := range s.Nodes {
		grow(n.Bounds())
	}
	for _, c := range s.Connectors {
		for _, p := range Path(c) {
			grow(geom.Box{X: p.X, Y: p.Y})
		}
	}
	return geom.Box{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// shape is one drawable in group order.
type shape struct {
	group     string
	node      *engine.PlacedNode
	title     bool // title box when node is set, content box otherwise
	connector *route.Connector
}

// shapes flattens the scene's groups into draw order. Shapes not covered
// by any group are appended ungrouped.
func shapes(s *engine.Scene) []shape {
	var out []shape
	seenTitle := make([]bool, len(s.Nodes))
	seenContent := make([]bool, len(s.Nodes))
	seenConn := make([]bool, len(s.Connectors))

	for _, g := range s.Groups {
		for _, i := range g.Titles {
			out = append(out, shape{group: g.Name, node: &s.Nodes[i], title: true})
			seenTitle[i] = true
		}
		for _, i := range g.Contents {
			out = append(out, shape{group: g.Name, node: &s.Nodes[i]})
			seenContent[i] = true
		}
		for _, i := range g.Connectors {
			out = append(out, shape{group: g.Name, connector: &s.Connectors[i]})
			seenConn[i] = true
		}
	}
	for i := range s.Nodes {
		if !seenTitle[i] {
			out = append(out, shape{node: &s.Nodes[i], title: true})
		}
		if !seenContent[i] {
			out = append(out, shape{node: &s.Nodes[i]})
		}
	}
	for i := range s.Connectors {
		if !seenConn[i] {
			out = append(out, shape{connector: &s.Connectors[i]})
		}
	}
	return out
}
