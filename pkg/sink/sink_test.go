package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/slidegraph/pkg/engine"
	"github.com/matzehuels/slidegraph/pkg/geom"
	"github.com/matzehuels/slidegraph/pkg/graph"
	"github.com/matzehuels/slidegraph/pkg/layout"
	"github.com/matzehuels/slidegraph/pkg/route"
	"github.com/matzehuels/slidegraph/pkg/slide"
)

func testScene(t *testing.T, mutate func(*engine.Config)) *engine.Scene {
	t.Helper()
	g := graph.Graph{
		Nodes: []graph.Node{
			{ID: "a", Title: "A & B", Content: graph.Text("line one\nline <two>")},
			{ID: "b"},
			{ID: "c", Content: graph.Text("c")},
		},
		Edges: []graph.Edge{{From: "a", To: "b"}, {From: "b", To: "c"}},
	}
	raw := layout.Result{Positions: map[string]geom.Vec{
		"a": {X: 0, Y: 0}, "b": {X: 4, Y: 2}, "c": {X: 1, Y: 5},
	}}
	cfg := engine.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := engine.Render(context.Background(), g, raw, cfg)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return s
}

func TestPath(t *testing.T) {
	right := route.Anchor{Role: route.RoleContent, Side: geom.SideRight}
	left := route.Anchor{Role: route.RoleContent, Side: geom.SideLeft}
	bottom := route.Anchor{Role: route.RoleContent, Side: geom.SideBottom}
	top := route.Anchor{Role: route.RoleTitle, Side: geom.SideTop}

	tests := []struct {
		name string
		c    route.Connector
		want []geom.Point
	}{
		{
			name: "straight",
			c:    route.Connector{Source: right, Target: left, Begin: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 10, Y: 4}, Style: route.Straight},
			want: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 4}},
		},
		{
			name: "elbow horizontal",
			c:    route.Connector{Source: right, Target: left, Begin: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 10, Y: 4}, Style: route.Elbow},
			want: []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 4}, {X: 10, Y: 4}},
		},
		{
			name: "elbow vertical",
			c:    route.Connector{Source: bottom, Target: top, Begin: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 6, Y: 20}, Style: route.Elbow},
			want: []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 6, Y: 10}, {X: 6, Y: 20}},
		},
		{
			name: "curve",
			c:    route.Connector{Source: bottom, Target: top, Begin: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 6, Y: 20}, Style: route.Curve},
			want: []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 6, Y: 10}, {X: 6, Y: 20}},
		},
		{
			name: "curve sideways",
			c:    route.Connector{Source: right, Target: left, Begin: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 10, Y: -4}, Style: route.Curve},
			want: []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: -4}, {X: 10, Y: -4}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Path(tt.c); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Path() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFrame(t *testing.T) {
	s := testScene(t, func(c *engine.Config) { c.Scale = slide.Uniform(1.5) })

	if f := frame(s, false); f != (geom.Box{Width: s.Width, Height: s.Height}) {
		t.Errorf("frame = %+v, want slide", f)
	}
	f := frame(s, true)
	for _, n := range s.Nodes {
		b := n.Bounds()
		if b.Left() < f.Left() || b.Right() > f.Right() || b.Top() < f.Top() || b.Bottom() > f.Bottom() {
			t.Errorf("node %s %+v outside fitted frame %+v", n.ID, b, f)
		}
	}
	if f.Width <= s.Width {
		t.Errorf("fitted width %d should exceed slide width %d at scale 1.5", f.Width, s.Width)
	}
}

func TestShapesCoverScene(t *testing.T) {
	for _, mode := range []engine.Grouping{engine.GroupByNode, engine.GroupByRole} {
		t.Run(string(mode), func(t *testing.T) {
			s := testScene(t, func(c *engine.Config) { c.Grouping = mode })
			got := shapes(s)
			if want := 2*len(s.Nodes) + len(s.Connectors); len(got) != want {
				t.Errorf("shapes = %d, want %d", len(got), want)
			}
			if last := got[len(got)-1]; last.connector == nil || last.group != engine.ConnectorGroup {
				t.Errorf("connectors should be drawn last in their own group")
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	s := testScene(t, nil)
	out := string(RenderSVG(s))

	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0.0 0.0 960.0 720.0" width="960" height="720">`) {
		t.Errorf("unexpected header: %s", strings.SplitN(out, "\n", 2)[0])
	}
	if got := strings.Count(out, `class="title"`); got != 3 {
		t.Errorf("title rects = %d, want 3", got)
	}
	if got := strings.Count(out, `class="content"`); got != 3 {
		t.Errorf("content rects = %d, want 3", got)
	}
	if got := strings.Count(out, "<line "); got != 2 {
		t.Errorf("lines = %d, want 2", got)
	}
	for _, want := range []string{`<g id="group-a">`, `<g id="group-connectors">`, "A &amp; B", "line &lt;two&gt;", `fill="#c3d69b"`} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if strings.Count(out, "<g ") != strings.Count(out, "</g>") {
		t.Error("unbalanced groups")
	}
}

func TestRenderSVGStyles(t *testing.T) {
	tests := []struct {
		style route.Style
		tag   string
	}{
		{route.Straight, "<line "},
		{route.Elbow, "<polyline "},
		{route.Curve, "<path d=\"M"},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			s := testScene(t, func(c *engine.Config) { c.Style = tt.style })
			if got := strings.Count(string(RenderSVG(s)), tt.tag); got != 2 {
				t.Errorf("%q count = %d, want 2", tt.tag, got)
			}
			arrows := string(RenderSVG(s, WithArrows()))
			if got := strings.Count(arrows, `marker-end="url(#arrow)"`); got != 2 {
				t.Errorf("arrow markers = %d, want 2", got)
			}
		})
	}
}

func TestRenderJSON(t *testing.T) {
	s := testScene(t, func(c *engine.Config) { c.Style = route.Elbow })

	data, err := RenderJSON(s, WithJSONEngine("fixed"), WithJSONSource("g.yaml"), WithJSONPaths())
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.ID != s.ID.String() || out.Engine != "fixed" || out.Source != "g.yaml" {
		t.Errorf("header = %q %q %q", out.ID, out.Engine, out.Source)
	}
	if out.Width != slide.DefaultWidth || out.Height != slide.DefaultHeight {
		t.Errorf("size = %dx%d", out.Width, out.Height)
	}
	if len(out.Nodes) != 3 || len(out.Connectors) != 2 {
		t.Fatalf("nodes=%d connectors=%d", len(out.Nodes), len(out.Connectors))
	}
	c := out.Connectors[0]
	if c.Style != "elbow" || len(c.Path) != 4 {
		t.Errorf("connector = %+v", c)
	}
	if !reflect.DeepEqual(out.Nodes, s.Nodes) {
		t.Error("nodes do not survive JSON")
	}
}

func TestRenderJSONEmpty(t *testing.T) {
	s := &engine.Scene{Width: 10, Height: 10}
	data, err := RenderJSON(s)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"nodes": []`, `"connectors": []`, `"groups": []`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("JSON missing %s:\n%s", want, data)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	s := testScene(t, func(c *engine.Config) { c.Style = route.Curve })

	data, err := RenderPNG(s, WithPNGArrows())
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 960 || b.Dy() != 720 {
		t.Errorf("size = %dx%d, want 960x720", b.Dx(), b.Dy())
	}

	half, err := RenderPNG(s, WithScale(0.5))
	if err != nil {
		t.Fatal(err)
	}
	img, _ = png.Decode(bytes.NewReader(half))
	if b := img.Bounds(); b.Dx() != 480 || b.Dy() != 360 {
		t.Errorf("scaled size = %dx%d, want 480x360", b.Dx(), b.Dy())
	}

	if _, err := RenderPNG(s, WithScale(0)); err == nil {
		t.Error("zero scale should fail")
	}
}

func TestRenderPNGTooLarge(t *testing.T) {
	s := testScene(t, func(c *engine.Config) { c.Scale = slide.Uniform(40) })

	if _, err := RenderPNG(s, WithPNGFitContent()); err == nil {
		t.Error("fitted frame of a 40x scaled scene should exceed the pixel cap")
	}
	if _, err := RenderPNG(s, WithScale(20)); err == nil {
		t.Error("20x slide should exceed the pixel cap")
	}
	if _, err := RenderPNG(s, WithScale(math.NaN())); err == nil {
		t.Error("NaN scale should fail")
	}
}

func TestRenderSVGScale(t *testing.T) {
	s := testScene(t, nil)
	out := string(RenderSVG(s, WithSVGScale(0.5)))
	if !strings.Contains(out, `viewBox="0.0 0.0 480.0 360.0" width="480" height="360"`) {
		t.Errorf("unexpected header: %s", strings.SplitN(out, "\n", 2)[0])
	}
}
