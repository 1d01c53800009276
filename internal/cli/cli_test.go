package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slidegraph/pkg/config"
	"github.com/matzehuels/slidegraph/pkg/engine"
	"github.com/matzehuels/slidegraph/pkg/errors"
	"github.com/matzehuels/slidegraph/pkg/geom"
	"github.com/matzehuels/slidegraph/pkg/graph"
	"github.com/matzehuels/slidegraph/pkg/route"
	"github.com/matzehuels/slidegraph/pkg/slide"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(os.Stderr, LogInfo).RootCommand()

	for _, name := range []string{"render", "layout", "inspect", "measure", "cache", "completion"} {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := root.Find([]string{name})
			if err != nil || cmd.Name() != name {
				t.Errorf("Find(%q) = %v, %v", name, cmd, err)
			}
		})
	}

	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("missing persistent --config flag")
	}
}

func TestConfigFlagsApply(t *testing.T) {
	newCmd := func() (*cobra.Command, *configFlags) {
		var f configFlags
		cmd := &cobra.Command{Use: "test"}
		f.addSceneFlags(cmd)
		return cmd, &f
	}

	t.Run("unset flags keep file values", func(t *testing.T) {
		cmd, f := newCmd()
		cfg := config.Default()
		cfg.Render.Workers = 3
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatal(err)
		}
		if err := f.apply(cmd, &cfg); err != nil {
			t.Fatal(err)
		}
		if cfg.Render.Workers != 3 {
			t.Errorf("Workers = %d, want 3", cfg.Render.Workers)
		}
	})

	t.Run("set flags override", func(t *testing.T) {
		cmd, f := newCmd()
		cfg := config.Default()
		err := cmd.ParseFlags([]string{
			"-e", "dot", "-s", "1.5,-1", "-g", "role", "--connector", "curve",
			"--best-effort", "--workers", "4", "--center-degenerate", "--slide-width", "12192000",
		})
		if err != nil {
			t.Fatal(err)
		}
		if err := f.apply(cmd, &cfg); err != nil {
			t.Fatal(err)
		}
		if cfg.Layout.Engine != "dot" {
			t.Errorf("Engine = %q", cfg.Layout.Engine)
		}
		if cfg.Layout.Scale != (slide.Scale{X: 1.5, Y: -1}) {
			t.Errorf("Scale = %+v", cfg.Layout.Scale)
		}
		if cfg.Render.Grouping != engine.GroupByRole || cfg.Render.Connector != route.Curve {
			t.Errorf("Render = %+v", cfg.Render)
		}
		if !cfg.Render.BestEffort || cfg.Render.Workers != 4 || !cfg.Layout.CenterDegenerate {
			t.Errorf("flags not applied: %+v", cfg)
		}
		if cfg.Slide.Width != 12192000 || cfg.Slide.Height != slide.DefaultHeight {
			t.Errorf("Slide = %+v", cfg.Slide)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, args := range [][]string{
			{"--scale", "big"},
			{"--connector", "zigzag"},
			{"--workers", "0"},
			{"--slide-height", "-1"},
		} {
			cmd, f := newCmd()
			cfg := config.Default()
			if err := cmd.ParseFlags(args); err != nil {
				t.Fatal(err)
			}
			if err := f.apply(cmd, &cfg); err == nil {
				t.Errorf("apply(%v) succeeded, want error", args)
			}
		}
	})
}

func TestConfigFileIsLoaded(t *testing.T) {
	isolate(t)
	input := writeGraph(t, helloGraph)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[render]\ngrouping = \"layer\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runCLI(t, "render", input, "-c", bad); err == nil {
		t.Error("render with invalid config succeeded")
	}

	good := filepath.Join(dir, "good.toml")
	if err := os.WriteFile(good, []byte("[render]\nconnector = \"curve\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "slide.json")
	if err := runCLI(t, "render", input, "-c", good, "-f", "json", "-o", out); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"curve"`) {
		t.Error("connector style from config file not applied")
	}
}

func TestLayoutThenRender(t *testing.T) {
	isolate(t)
	input := writeGraph(t, helloGraph)
	posPath := filepath.Join(filepath.Dir(input), "pos.json")

	if err := runCLI(t, "layout", input, "-o", posPath); err != nil {
		t.Fatalf("layout: %v", err)
	}
	p, err := graph.ReadPositionsFile(posPath)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Vecs()["db"]; got != (geom.Vec{X: 0, Y: 10}) {
		t.Errorf("db = %+v, want (0, 10)", got)
	}

	out := filepath.Join(filepath.Dir(input), "slide.svg")
	if err := runCLI(t, "render", input, "-p", posPath, "-o", out); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Error(err)
	}
}

func TestLayoutEmbed(t *testing.T) {
	isolate(t)
	input := writeGraph(t, helloGraph)
	dir := filepath.Dir(input)

	if err := runCLI(t, "layout", input, "--embed"); err != nil {
		t.Fatalf("layout --embed: %v", err)
	}
	laid := filepath.Join(dir, "hello.laid.yaml")
	g, err := graph.ReadGraphFile(laid)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Nodes) != 2 || g.Positions["db"] != [2]float64{0, 10} {
		t.Errorf("embedded graph = %+v", g)
	}

	out := filepath.Join(dir, "laid.svg")
	if err := runCLI(t, "render", laid, "-o", out); err != nil {
		t.Fatalf("render embedded graph: %v", err)
	}

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"over input", []string{"layout", input, "--embed", "-o", input}, errors.ErrCodeInvalidPath},
		{"unknown extension", []string{"layout", input, "--embed", "-o", filepath.Join(dir, "g.txt")}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := runCLI(t, tt.args...); !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestInspectAndMeasure(t *testing.T) {
	isolate(t)
	input := writeGraph(t, helloGraph)

	if err := runCLI(t, "inspect", input, "--connector", "elbow"); err != nil {
		t.Errorf("inspect: %v", err)
	}
	if err := runCLI(t, "measure", "hello", `a\nb`); err != nil {
		t.Errorf("measure: %v", err)
	}
	if err := runCLI(t, "measure"); err == nil {
		t.Error("measure without text succeeded")
	}
}

func TestTableRows(t *testing.T) {
	s := &engine.Scene{
		Nodes: []engine.PlacedNode{{
			ID:         "api",
			Center:     geom.Point{X: 10, Y: 20},
			TitleBox:   geom.Box{X: 0, Y: 0, Width: 20, Height: 5},
			ContentBox: geom.Box{X: 0, Y: 5, Width: 20, Height: 30},
		}},
		Connectors: []route.Connector{{
			From:   "api",
			To:     "db",
			Source: route.Anchor{Role: route.RoleContent, Side: geom.SideBottom},
			Target: route.Anchor{Role: route.RoleTitle, Side: geom.SideTop},
			Begin:  geom.Point{X: 0, Y: 0},
			End:    geom.Point{X: 3, Y: 4},
		}},
	}

	nodes := nodeRows(s)
	if len(nodes) != 1 || nodes[0][1] != "(10, 20)" || nodes[0][3] != "(0, 5) 20x30" {
		t.Errorf("nodeRows = %v", nodes)
	}

	conns := connectorRows(s)
	if len(conns) != 1 {
		t.Fatalf("connectorRows = %v", conns)
	}
	if !strings.Contains(conns[0][2], "content-bottom") || !strings.Contains(conns[0][2], "title-top") {
		t.Errorf("anchors = %q", conns[0][2])
	}
	if conns[0][3] != "5" {
		t.Errorf("length = %q, want 5", conns[0][3])
	}

	if got := renderTable([]string{"Node"}, [][]string{{"api"}}); !strings.Contains(got, "api") {
		t.Errorf("renderTable missing cell: %q", got)
	}
}

func TestInches(t *testing.T) {
	if got := inches(slide.EMUPerInch / 2); got != "0.50" {
		t.Errorf("inches = %q, want 0.50", got)
	}
}

func TestCompletionScripts(t *testing.T) {
	root := New(os.Stderr, LogInfo).RootCommand()

	for shell, gen := range completionShells {
		t.Run(shell, func(t *testing.T) {
			var buf strings.Builder
			if err := gen(root, &buf); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(buf.String(), appName) {
				t.Errorf("%s script does not mention %s", shell, appName)
			}
		})
	}

	if err := runCLI(t, "completion", "tcsh"); err == nil {
		t.Error("unsupported shell accepted")
	}
}

func TestPrintError(t *testing.T) {
	var buf strings.Builder
	PrintError(&buf, errors.Wrap(errors.ErrCodeInvalidConfig, errors.New(errors.ErrCodeInvalidInput, "scale must be finite"), "--scale"))

	got := buf.String()
	if !strings.Contains(got, "--scale: scale must be finite") {
		t.Errorf("PrintError = %q", got)
	}
	if strings.Contains(got, "INVALID_") {
		t.Errorf("PrintError kept the code prefix: %q", got)
	}
}
