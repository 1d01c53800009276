package slide

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/slidegraph/pkg/errors"
	"github.com/matzehuels/slidegraph/pkg/geom"
)

// Default slide size: 10in × 7.5in (4:3) in EMU.
const (
	DefaultWidth  = 9144000
	DefaultHeight = 6858000
)

// EMUPerInch is the number of slide units per inch.
const EMUPerInch = 914400

// Space is the fixed slide rectangle.
type Space struct {
	Width  int64 `toml:"width" json:"width"`
	Height int64 `toml:"height" json:"height"`
}

// DefaultSpace returns the 4:3 default slide.
func DefaultSpace() Space { return Space{Width: DefaultWidth, Height: DefaultHeight} }

// Center returns (Width/2, Height/2).
func (s Space) Center() geom.Point { return geom.Point{X: s.Width / 2, Y: s.Height / 2} }

// Validate checks that both dimensions are positive.
func (s Space) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "slide size must be positive, got %dx%d", s.Width, s.Height)
	}
	return nil
}

// Scale is the user scale factor applied about the slide center.
type Scale struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Uniform returns a scale that applies f to both axes.
func Uniform(f float64) Scale { return Scale{X: f, Y: f} }

// Identity is the unit scale.
var Identity = Uniform(1)

// String formats the scale as "x,y".
func (s Scale) String() string {
	return strconv.FormatFloat(s.X, 'g', -1, 64) + "," + strconv.FormatFloat(s.Y, 'g', -1, 64)
}

// ParseScale accepts either one number for both axes or "x,y".
func ParseScale(s string) (Scale, error) {
	parts := strings.Split(s, ",")
	if len(parts) > 2 {
		return Scale{}, errors.New(errors.ErrCodeInvalidInput, "scale %q: want one or two numbers", s)
	}
	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Scale{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "scale %q", s)
		}
		vals[i] = v
	}
	sc := Scale{X: vals[0], Y: vals[len(vals)-1]}
	if !finite(sc.X) || !finite(sc.Y) {
		return Scale{}, errors.New(errors.ErrCodeInvalidInput, "scale %q must be finite", s)
	}
	return sc, nil
}

// Validate rejects NaN and infinite factors.
func (s Scale) Validate() error {
	if !finite(s.X) || !finite(s.Y) {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be finite, got %s", s)
	}
	return nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// UnmarshalTOML lets a config file give the scale as a number or a
// two-element array.
func (s *Scale) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case int64:
		*s = Uniform(float64(v))
	case float64:
		*s = Uniform(v)
	case []any:
		if len(v) != 2 {
			return fmt.Errorf("scale: want 2 elements, got %d", len(v))
		}
		var xy [2]float64
		for i, e := range v {
			switch e := e.(type) {
			case int64:
				xy[i] = float64(e)
			case float64:
				xy[i] = e
			default:
				return fmt.Errorf("scale: element %d is %T", i, e)
			}
		}
		*s = Scale{X: xy[0], Y: xy[1]}
	default:
		return fmt.Errorf("scale: unsupported value %T", v)
	}
	return s.Validate()
}
