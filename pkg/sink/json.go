package sink

import (
	"encoding/json"

	"github.com/matzehuels/slidegraph/pkg/engine"
	"github.com/matzehuels/slidegraph/pkg/geom"
	"github.com/matzehuels/slidegraph/pkg/graph"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	engine string
	source string
	paths  bool
}

// WithJSONEngine overrides the layout engine recorded from the scene.
func WithJSONEngine(name string) JSONOption { return func(r *jsonRenderer) { r.engine = name } }

// WithJSONSource records the input graph file.
func WithJSONSource(path string) JSONOption { return func(r *jsonRenderer) { r.source = path } }

// WithJSONPaths adds the drawn points of every connector (see [Path]).
func WithJSONPaths() JSONOption { return func(r *jsonRenderer) { r.paths = true } }

type jsonOutput struct {
	ID         string              `json:"id"`
	Engine     string              `json:"engine,omitempty"`
	Source     string              `json:"source,omitempty"`
	Width      int64               `json:"width"`
	Height     int64               `json:"height"`
	Nodes      []engine.PlacedNode `json:"nodes"`
	Connectors []jsonConnector     `json:"connectors"`
	Groups     []engine.Group      `json:"groups"`
	Failures   []engine.Failure    `json:"failures,omitempty"`
	Line       graph.RGB           `json:"line"`
	Text       graph.RGB           `json:"text"`
}

type jsonConnector struct {
	From   string       `json:"from"`
	To     string       `json:"to"`
	Source string       `json:"source"`
	Target string       `json:"target"`
	Begin  geom.Point   `json:"begin"`
	End    geom.Point   `json:"end"`
	Style  string       `json:"style"`
	Path   []geom.Point `json:"path,omitempty"`
}

// RenderJSON exports s as indented JSON in slide units.
func RenderJSON(s *engine.Scene, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{engine: s.Layout}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		ID:         s.ID.String(),
		Engine:     r.engine,
		Source:     r.source,
		Width:      s.Width,
		Height:     s.Height,
		Nodes:      s.Nodes,
		Connectors: make([]jsonConnector, 0, len(s.Connectors)),
		Groups:     s.Groups,
		Failures:   s.Failures,
		Line:       s.Line,
		Text:       s.Text,
	}
	if out.Nodes == nil {
		out.Nodes = []engine.PlacedNode{}
	}
	if out.Groups == nil {
		out.Groups = []engine.Group{}
	}
	for _, c := range s.Connectors {
		jc := jsonConnector{
			From:   c.From,
			To:     c.To,
			Source: c.Source.String(),
			Target: c.Target.String(),
			Begin:  c.Begin,
			End:    c.End,
			Style:  c.Style.String(),
		}
		if r.paths {
			jc.Path = Path(c)
		}
		out.Connectors = append(out.Connectors, jc)
	}
	return json.MarshalIndent(out, "", "  ")
}
