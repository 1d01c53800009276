package pipeline

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/slidegraph/pkg/cache"
	"github.com/matzehuels/slidegraph/pkg/config"
	"github.com/matzehuels/slidegraph/pkg/errors"
	"github.com/matzehuels/slidegraph/pkg/geom"
	"github.com/matzehuels/slidegraph/pkg/graph"
	"github.com/matzehuels/slidegraph/pkg/layout"
	"github.com/matzehuels/slidegraph/pkg/observability"
)

const helloYAML = `nodes:
  - id: "0"
  - id: "1"
    title: Worker
    content: |-
      poll
      ack
  - id: "4"
    title_color: "#ff8800"
edges:
  - {from: "0", to: "1"}
  - {from: "4", to: "0"}
positions:
  "0": [0, 0]
  "1": [1, 0]
  "4": [-1, 0]
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"json", false},
		{"pdf", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}
	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{GraphPath: "g.yaml", Config: config.Default()}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.PNGScale != 1 || opts.SVGScale != 1 || opts.Logger == nil {
		t.Errorf("defaults not applied: %+v", opts)
	}

	if err := (&Options{Config: config.Default()}).ValidateAndSetDefaults(); err == nil {
		t.Error("missing graph should fail")
	}
	bad := Options{GraphPath: "g.yaml", Config: config.Default()}
	bad.Config.Render.Workers = 0
	if err := bad.ValidateAndSetDefaults(); err == nil {
		t.Error("invalid config should fail")
	}

	for _, scale := range []float64{-1, math.Inf(1), math.NaN()} {
		o := Options{GraphPath: "g.yaml", Config: config.Default(), SVGScale: scale}
		if err := o.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
			t.Errorf("SVGScale %v: err = %v, want INVALID_CONFIG", scale, err)
		}
	}
}

func TestExecute(t *testing.T) {
	path := writeFile(t, "hello.yaml", helloYAML)
	cfg := config.Default()
	cfg.Layout.Scale.X, cfg.Layout.Scale.Y = 1.5, 0.6

	r := NewRunner(nil, nil)
	res, err := r.Execute(context.Background(), Options{
		GraphPath: path,
		Config:    cfg,
		Formats:   []string{FormatSVG, FormatPNG, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if res.Stats.NodeCount != 3 || res.Stats.EdgeCount != 2 || res.Stats.ConnectorCount != 2 {
		t.Errorf("stats = %+v", res.Stats)
	}
	if !res.Layout.Explicit || res.Layout.Engine != "fixed" {
		t.Errorf("layout = %+v, want explicit positions from the graph", res.Layout)
	}
	for _, f := range []string{FormatSVG, FormatPNG, FormatJSON} {
		if len(res.Artifacts[f]) == 0 {
			t.Errorf("missing %s artifact", f)
		}
	}

	n4, _ := res.Scene.Node("4")
	if n4.TitleColor != (graph.RGB{0xff, 0x88, 0x00}) {
		t.Errorf("title color = %v", n4.TitleColor)
	}

	var doc struct {
		Source string `json:"source"`
		Layout string `json:"layout"`
	}
	if err := json.Unmarshal(res.Artifacts[FormatJSON], &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Source != path || doc.Layout != "fixed" {
		t.Errorf("json header = %+v", doc)
	}
}

func TestExecuteInMemoryGraph(t *testing.T) {
	g := &graph.Graph{
		Nodes:     []graph.Node{{ID: "a"}, {ID: "b"}},
		Edges:     []graph.Edge{{From: "a", To: "b"}},
		Positions: map[string][2]float64{"a": {0, 0}, "b": {0, 1}},
	}
	res, err := NewRunner(nil, nil).Execute(context.Background(), Options{Graph: g, Config: config.Default()})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(res.Artifacts[FormatSVG]), "<svg") {
		t.Error("expected SVG artifact")
	}
}

func TestExecuteUnknownNodeAborts(t *testing.T) {
	g := &graph.Graph{
		Nodes:     []graph.Node{{ID: "a"}, {ID: "b"}},
		Edges:     []graph.Edge{{From: "a", To: "ghost"}},
		Positions: map[string][2]float64{"a": {0, 0}, "b": {1, 1}},
	}
	res, err := NewRunner(nil, nil).Execute(context.Background(), Options{Graph: g, Config: config.Default()})
	if err == nil {
		t.Fatal("expected error")
	}
	if res != nil {
		t.Error("no result may be returned on failure")
	}
	if !errors.Is(err, errors.ErrCodeUnknownNode) {
		t.Errorf("err = %v, want LAYOUT_UNKNOWN_NODE", err)
	}

	cfg := config.Default()
	cfg.Render.BestEffort = true
	res, err = NewRunner(nil, nil).Execute(context.Background(), Options{Graph: g, Config: cfg})
	if err != nil {
		t.Fatalf("best effort: %v", err)
	}
	if res.Stats.FailureCount != 1 || res.Stats.ConnectorCount != 0 {
		t.Errorf("stats = %+v", res.Stats)
	}
}

func TestExecuteMissingFile(t *testing.T) {
	_, err := NewRunner(nil, nil).Execute(context.Background(), Options{
		GraphPath: filepath.Join(t.TempDir(), "missing.yaml"),
		Config:    config.Default(),
	})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestProviderPrecedence(t *testing.T) {
	g := graph.Graph{
		Nodes:     []graph.Node{{ID: "a"}},
		Positions: map[string][2]float64{"a": {1, 1}},
	}
	posPath := filepath.Join(t.TempDir(), "pos.json")
	if err := graph.WritePositionsFile(graph.NewPositions("dot", map[string]geom.Vec{"a": {X: 7, Y: 8}}), posPath); err != nil {
		t.Fatal(err)
	}

	opts := Options{Config: config.Default(), PositionsPath: posPath}
	raw, err := ComputeLayout(context.Background(), g, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if raw.Positions["a"] != (geom.Vec{X: 7, Y: 8}) || !raw.Explicit {
		t.Errorf("positions file should win: %+v", raw)
	}

	opts.PositionsPath = ""
	raw, err = ComputeLayout(context.Background(), g, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if raw.Positions["a"] != (geom.Vec{X: 1, Y: 1}) {
		t.Errorf("graph positions should be used: %+v", raw)
	}

	g.Positions = nil
	p, err := Provider(g, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	gv, ok := p.(*layout.Graphviz)
	if !ok || gv.Engine != opts.Config.Layout.Engine {
		t.Errorf("provider = %#v, want Graphviz with configured engine", p)
	}
}

func TestExecuteGraphviz(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	g := &graph.Graph{
		Nodes: []graph.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Edges: []graph.Edge{{From: "a", To: "b"}, {From: "a", To: "c"}},
	}
	cfg := config.Default()
	cfg.Layout.Engine = "dot"

	r := NewRunner(c, nil)
	res, err := r.Execute(context.Background(), Options{Graph: g, Config: cfg, Formats: []string{FormatJSON}})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.CacheInfo.LayoutHit || res.Layout.Explicit {
		t.Errorf("first run: %+v", res.CacheInfo)
	}
	if len(res.Scene.Nodes) != 3 || len(res.Scene.Connectors) != 2 {
		t.Errorf("scene = %d nodes, %d connectors", len(res.Scene.Nodes), len(res.Scene.Connectors))
	}

	res, err = r.Execute(context.Background(), Options{Graph: g, Config: cfg, Formats: []string{FormatJSON}})
	if err != nil {
		t.Fatal(err)
	}
	if !res.CacheInfo.LayoutHit {
		t.Error("second run should hit the layout cache")
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) record(e string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHooks) OnSceneComplete(context.Context, int, int, int, time.Duration) {
	h.record("scene")
}

func (h *recordingHooks) OnRenderStart(context.Context, []string) { h.record("render-start") }

func (h *recordingHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.record("render-complete")
}

func TestExecuteHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetPipelineHooks(h)
	defer observability.Reset()

	path := writeFile(t, "hello.yaml", helloYAML)
	if _, err := NewRunner(nil, nil).Execute(context.Background(), Options{GraphPath: path, Config: config.Default()}); err != nil {
		t.Fatal(err)
	}

	want := []string{"scene", "render-start", "render-complete"}
	if strings.Join(h.events, ",") != strings.Join(want, ",") {
		t.Errorf("events = %v, want %v", h.events, want)
	}
}
