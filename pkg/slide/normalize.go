package slide

import (
	"math"

	"github.com/matzehuels/slidegraph/pkg/errors"
	"github.com/matzehuels/slidegraph/pkg/geom"
)

// DegeneratePolicy decides what happens to a zero-range axis.
type DegeneratePolicy int

const (
	// FailDegenerate reports a zero-range axis as a DegenerateLayoutError.
	FailDegenerate DegeneratePolicy = iota
	// CenterDegenerate skips fitting on a zero-range axis and places every
	// point on the slide center line of that axis.
	CenterDegenerate
)

// Normalizer converts raw layouts into slide points.
type Normalizer struct {
	Space      Space
	Degenerate DegeneratePolicy
}

// Normalize fits points to the slide and applies scale about its center.
// The input map is not modified. An empty input yields an empty map.
func (n Normalizer) Normalize(points map[string]geom.Vec, scale Scale) (map[string]geom.Point, error) {
	fitted, err := n.Fit(points)
	if err != nil {
		return nil, err
	}
	return n.ScaleUp(fitted, scale)
}

// Fit is step one: per-axis min-max rescaling onto [0, Width] × [0, Height].
func (n Normalizer) Fit(points map[string]geom.Vec) (map[string]geom.Point, error) {
	out := make(map[string]geom.Point, len(points))
	if len(points) == 0 {
		return out, nil
	}

	c := n.Space.Center()
	if len(points) == 1 {
		for id := range points {
			out[id] = c
		}
		return out, nil
	}

	lo, hi := bounds(points)
	fitX, err := n.axis("x", lo.X, hi.X, c.X, len(points))
	if err != nil {
		return nil, err
	}
	fitY, err := n.axis("y", lo.Y, hi.Y, c.Y, len(points))
	if err != nil {
		return nil, err
	}

	for id, p := range points {
		out[id] = geom.Point{X: fitX(p.X), Y: fitY(p.Y)}
	}
	return out, nil
}

// axis returns the fitting function for one axis.
func (n Normalizer) axis(name string, lo, hi float64, center int64, count int) (func(float64) int64, error) {
	span := hi - lo
	if span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		if n.Degenerate == CenterDegenerate && span == 0 {
			return func(float64) int64 { return center }, nil
		}
		return nil, &errors.DegenerateLayoutError{Axis: name, Points: count}
	}
	ratio := float64(center*2) / span
	return func(v float64) int64 { return round((v - lo) * ratio) }, nil
}

// ScaleUp is step two: p' = scale ⊙ (p - C) + C. A non-finite scale or a
// result outside the int64 range is an INVALID_CONFIG error.
func (n Normalizer) ScaleUp(points map[string]geom.Point, scale Scale) (map[string]geom.Point, error) {
	if err := scale.Validate(); err != nil {
		return nil, err
	}
	c := n.Space.Center()
	out := make(map[string]geom.Point, len(points))
	for id, p := range points {
		x := math.RoundToEven(scale.X*float64(p.X-c.X) + float64(c.X))
		y := math.RoundToEven(scale.Y*float64(p.Y-c.Y) + float64(c.Y))
		if !inRange(x) || !inRange(y) {
			return nil, errors.New(errors.ErrCodeInvalidConfig,
				"scale %s moves %q out of range", scale, id)
		}
		out[id] = geom.Point{X: int64(x), Y: int64(y)}
	}
	return out, nil
}

// maxCoord keeps scaled points well inside int64 so box corners and
// squared distances stay representable.
const maxCoord = 1 << 40

func inRange(v float64) bool { return v >= -maxCoord && v <= maxCoord }

func bounds(points map[string]geom.Vec) (lo, hi geom.Vec) {
	first := true
	for _, p := range points {
		if first {
			lo, hi = p, p
			first = false
			continue
		}
		lo.X, hi.X = min(lo.X, p.X), max(hi.X, p.X)
		lo.Y, hi.Y = min(lo.Y, p.Y), max(hi.Y, p.Y)
	}
	return lo, hi
}

func round(v float64) int64 { return int64(math.RoundToEven(v)) }
