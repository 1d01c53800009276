package graph

import (
	"github.com/matzehuels/slidegraph/pkg/errors"
	"github.com/matzehuels/slidegraph/pkg/geom"
)

// =============================================================================
// Graph
// =============================================================================

// Graph is the serialization format for slide graphs.
type Graph struct {
	Nodes     []Node                `json:"nodes" yaml:"nodes"`
	Edges     []Edge                `json:"edges" yaml:"edges"`
	Positions map[string][2]float64 `json:"positions,omitempty" yaml:"positions,omitempty"`
}

// Node is one box pair on the slide.
type Node struct {
	ID                string `json:"id" yaml:"id"`
	Title             string `json:"title,omitempty" yaml:"title,omitempty"`
	Content           *string `json:"content,omitempty" yaml:"content,omitempty"`
	TitleColor        *RGB   `json:"title_color,omitempty" yaml:"title_color,omitempty"`
	ContentBackground *RGB   `json:"content_bg,omitempty" yaml:"content_bg,omitempty"`
}

// DisplayTitle returns the title if set, otherwise the ID.
func (n Node) DisplayTitle() string {
	if n.Title != "" {
		return n.Title
	}
	return n.ID
}

// DisplayContent returns the content, or a single space when the node has
// none. Content given as "" is kept and measures narrower than " ".
func (n Node) DisplayContent() string {
	if n.Content != nil {
		return *n.Content
	}
	return " "
}

// Text returns a pointer to s, for filling Node.Content.
func Text(s string) *string { return &s }

// Edge is a directed connection between two nodes.
type Edge struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// =============================================================================
// Accessors
// =============================================================================

// NodeCount returns the number of node entries.
func (g Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of edges.
func (g Graph) EdgeCount() int { return len(g.Edges) }

// Node returns the last node entry with the given ID.
func (g Graph) Node(id string) (Node, bool) {
	for i := len(g.Nodes) - 1; i >= 0; i-- {
		if g.Nodes[i].ID == id {
			return g.Nodes[i], true
		}
	}
	return Node{}, false
}

// HasPositions reports whether the graph carries an explicit layout.
func (g Graph) HasPositions() bool { return len(g.Positions) > 0 }

// ExplicitPositions converts the positions block to layout vectors.
func (g Graph) ExplicitPositions() map[string]geom.Vec {
	out := make(map[string]geom.Vec, len(g.Positions))
	for id, p := range g.Positions {
		out[id] = geom.Vec{X: p[0], Y: p[1]}
	}
	return out
}

// Validate checks node identifiers and edge endpoints for malformed IDs.
// It does not reject duplicates, self-loops or dangling edges.
func (g Graph) Validate() error {
	for i, n := range g.Nodes {
		if err := errors.ValidateNodeID(n.ID); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidGraph, err, "node %d", i)
		}
	}
	for i, e := range g.Edges {
		if e.From == "" || e.To == "" {
			return errors.New(errors.ErrCodeInvalidGraph, "edge %d: endpoints must not be empty", i)
		}
	}
	return nil
}
