package engine

import (
	"github.com/google/uuid"

	"github.com/matzehuels/slidegraph/pkg/geom"
	"github.com/matzehuels/slidegraph/pkg/graph"
	"github.com/matzehuels/slidegraph/pkg/route"
)

// Scene is a fully placed slide.
type Scene struct {
	ID     uuid.UUID `json:"id"`
	Width  int64     `json:"width"`
	Height int64     `json:"height"`
	Layout string    `json:"layout,omitempty"` // provider that produced the raw positions

	// Nodes are in graph order, one per node entry that had a position.
	Nodes []PlacedNode `json:"nodes"`

	// Connectors are in edge order.
	Connectors []route.Connector `json:"connectors"`
	Groups     []Group           `json:"groups"`
	Failures   []Failure         `json:"failures,omitempty"`

	// Line and Text are the palette colors for connectors and labels.
	Line graph.RGB `json:"line"`
	Text graph.RGB `json:"text"`
}

// PlacedNode is a node with its two boxes.
type PlacedNode struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Center       geom.Point `json:"center"`
	TitleBox     geom.Box   `json:"title_box"`
	ContentBox   geom.Box   `json:"content_box"`
	TitleColor   graph.RGB  `json:"title_color"`
	ContentColor graph.RGB  `json:"content_color"`
}

// Endpoints returns the node's boxes for routing.
func (n PlacedNode) Endpoints() route.Endpoints {
	return route.Endpoints{Title: n.TitleBox, Content: n.ContentBox}
}

// Bounds returns the box enclosing both boxes.
func (n PlacedNode) Bounds() geom.Box {
	return geom.Box{
		X:      n.TitleBox.X,
		Y:      n.TitleBox.Y,
		Width:  n.TitleBox.Width,
		Height: n.TitleBox.Height + n.ContentBox.Height,
	}
}

// Group is a named set of shapes, by index into Scene.Nodes and
// Scene.Connectors.
type Group struct {
	Name       string `json:"name"`
	Titles     []int  `json:"titles,omitempty"`
	Contents   []int  `json:"contents,omitempty"`
	Connectors []int  `json:"connectors,omitempty"`
}

// Failure is an edge dropped in best-effort mode.
type Failure struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Node    string `json:"node"`
	Message string `json:"message"`
}

// Node returns the last placed entry for id.
func (s *Scene) Node(id string) (PlacedNode, bool) {
	for i := len(s.Nodes) - 1; i >= 0; i-- {
		if s.Nodes[i].ID == id {
			return s.Nodes[i], true
		}
	}
	return PlacedNode{}, false
}

// ConnectorGroup is the name of the group holding all connectors.
const ConnectorGroup = "connectors"

func buildGroups(nodes []PlacedNode, connectors int, mode Grouping) []Group {
	var groups []Group
	switch mode {
	case GroupByRole:
		titles := Group{Name: "titles"}
		contents := Group{Name: "contents"}
		for i := range nodes {
			titles.Titles = append(titles.Titles, i)
			contents.Contents = append(contents.Contents, i)
		}
		if len(nodes) > 0 {
			groups = append(groups, titles, contents)
		}
	default:
		for i, n := range nodes {
			groups = append(groups, Group{Name: n.ID, Titles: []int{i}, Contents: []int{i}})
		}
	}

	if connectors > 0 {
		g := Group{Name: ConnectorGroup}
		for i := range connectors {
			g.Connectors = append(g.Connectors, i)
		}
		groups = append(groups, g)
	}
	return groups
}
