// Package metrics approximates text box sizes for a fixed-width font.
//
// Widths and heights are derived from character and line counts only; there
// is no text shaping. The defaults are calibrated for Consolas at 18pt in
// slide units (EMU) and can be replaced for any other monospaced font.
package metrics

import (
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/slidegraph/pkg/errors"
	"github.com/matzehuels/slidegraph/pkg/geom"
)

// Default constants for Consolas 18pt.
const (
	DefaultWidthBase  = 184666
	DefaultHeightBase = 92333
	DefaultCharWidth  = 126638
	DefaultCharHeight = 276999
	DefaultPad        = 5
)

// Metrics maps text to box sizes.
type Metrics struct {
	WidthBase  int64 `toml:"width_base" json:"width_base"`   // box width with no characters
	HeightBase int64 `toml:"height_base" json:"height_base"` // box height with no lines
	CharWidth  int64 `toml:"char_width" json:"char_width"`   // width of one character
	CharHeight int64 `toml:"char_height" json:"char_height"` // height of one line
	Pad        int64 `toml:"pad" json:"pad"`                 // extra characters of horizontal padding
}

// Default returns the Consolas 18pt metrics.
func Default() Metrics {
	return Metrics{
		WidthBase:  DefaultWidthBase,
		HeightBase: DefaultHeightBase,
		CharWidth:  DefaultCharWidth,
		CharHeight: DefaultCharHeight,
		Pad:        DefaultPad,
	}
}

// Validate returns an *errors.InvalidMetricsConfigError for the first
// non-positive constant. Pad may be zero.
func (m Metrics) Validate() error {
	fields := []struct {
		name  string
		value int64
		min   int64
	}{
		{"width_base", m.WidthBase, 1},
		{"height_base", m.HeightBase, 1},
		{"char_width", m.CharWidth, 1},
		{"char_height", m.CharHeight, 1},
		{"pad", m.Pad, 0},
	}
	for _, f := range fields {
		if f.value < f.min {
			return &errors.InvalidMetricsConfigError{Field: f.name, Value: f.value}
		}
	}
	return nil
}

// Measure returns the box size for text. Lines are split on "\n" and counted
// in runes; empty text measures as one empty line.
func (m Metrics) Measure(text string) geom.Size {
	lines := strings.Split(text, "\n")

	var longest int
	for _, l := range lines {
		longest = max(longest, utf8.RuneCountInString(l))
	}

	return geom.Size{
		W: m.WidthBase + (int64(longest)+m.Pad)*m.CharWidth,
		H: m.HeightBase + int64(len(lines))*m.CharHeight,
	}
}
