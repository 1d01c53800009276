// Package config loads slidegraph settings from TOML files.
//
// A config file may set any subset of the keys below; everything else keeps
// its default:
//
//	[slide]
//	width = 9144000
//	height = 6858000
//
//	[metrics]
//	width_base = 184666
//	height_base = 92333
//	char_width = 126638
//	char_height = 276999
//	pad = 5
//
//	[layout]
//	engine = "neato"
//	scale = [1.5, 0.6]      # or a single number
//	center_degenerate = false
//
//	[render]
//	grouping = "node"       # or "role"
//	connector = "straight"  # "elbow", "curve"
//	best_effort = false
//	workers = 1
//
//	[palette]
//	title = [195, 214, 155] # or "#c3d69b"
//	content = [210, 210, 210]
//	line = [0, 0, 0]
//	text = [0, 0, 0]
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/slidegraph/pkg/engine"
	"github.com/matzehuels/slidegraph/pkg/errors"
	"github.com/matzehuels/slidegraph/pkg/layout"
	"github.com/matzehuels/slidegraph/pkg/metrics"
	"github.com/matzehuels/slidegraph/pkg/route"
	"github.com/matzehuels/slidegraph/pkg/slide"
)

// FileName is the config file looked up in the user config directory.
const FileName = "config.toml"

// Config is the full set of settings.
type Config struct {
	Slide   slide.Space     `toml:"slide"`
	Metrics metrics.Metrics `toml:"metrics"`
	Layout  Layout          `toml:"layout"`
	Render  Render          `toml:"render"`
	Palette engine.Palette  `toml:"palette"`
}

// Layout holds layout provider settings.
type Layout struct {
	Engine           string      `toml:"engine"`
	Scale            slide.Scale `toml:"scale"`
	CenterDegenerate bool        `toml:"center_degenerate"`
}

// Render holds scene and sink settings.
type Render struct {
	Grouping   engine.Grouping `toml:"grouping"`
	Connector  route.Style     `toml:"connector"`
	BestEffort bool            `toml:"best_effort"`
	Workers    int             `toml:"workers"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Slide:   slide.DefaultSpace(),
		Metrics: metrics.Default(),
		Layout: Layout{
			Engine: layout.DefaultEngine,
			Scale:  slide.Identity,
		},
		Render: Render{
			Grouping:  engine.GroupByNode,
			Connector: route.Straight,
			Workers:   1,
		},
		Palette: engine.DefaultPalette(),
	}
}

// DefaultPath returns the config file path under the user config directory
// ($XDG_CONFIG_HOME/slidegraph/config.toml on Linux).
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, "slidegraph", FileName), nil
}

// Load reads path over the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the file at DefaultPath if it exists, otherwise it
// returns Default.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Slide.Validate(); err != nil {
		return err
	}
	if err := c.Metrics.Validate(); err != nil {
		return err
	}
	if err := c.Layout.Scale.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "layout.scale")
	}
	if !layout.ValidEngine(c.Layout.Engine) {
		return errors.New(errors.ErrCodeInvalidConfig, "layout.engine: unknown engine %q (want one of %s)",
			c.Layout.Engine, strings.Join(layout.Engines, ", "))
	}
	if _, err := engine.ParseGrouping(string(c.Render.Grouping)); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.grouping")
	}
	if err := c.Render.Connector.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.connector")
	}
	if c.Render.Workers < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "render.workers must be at least 1, got %d", c.Render.Workers)
	}
	return nil
}

// Engine returns the engine settings.
func (c Config) Engine() engine.Config {
	degenerate := slide.FailDegenerate
	if c.Layout.CenterDegenerate {
		degenerate = slide.CenterDegenerate
	}
	return engine.Config{
		Space:      c.Slide,
		Metrics:    c.Metrics,
		Scale:      c.Layout.Scale,
		Grouping:   c.Render.Grouping,
		Style:      c.Render.Connector,
		Palette:    c.Palette,
		BestEffort: c.Render.BestEffort,
		Degenerate: degenerate,
		Workers:    c.Render.Workers,
	}
}
