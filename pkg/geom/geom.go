package geom

import "fmt"

// Point is an integer position in slide units.
type Point struct {
	X, Y int64
}

// String formats the point as "(x, y)".
func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// DistSq returns the squared Euclidean distance between p and q.
// The result is a float64 so that far off-slide points cannot overflow.
func (p Point) DistSq(q Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return dx*dx + dy*dy
}

// Vec is a real-valued 2-D point as produced by a layout provider.
type Vec struct {
	X, Y float64
}

// Size is a box width and height in slide units.
type Size struct {
	W, H int64
}

// Side names one side of a box.
type Side int

const (
	SideTop Side = iota
	SideLeft
	SideBottom
	SideRight
)

var sideNames = [...]string{"top", "left", "bottom", "right"}

func (s Side) String() string {
	if s < 0 || int(s) >= len(sideNames) {
		return fmt.Sprintf("Side(%d)", int(s))
	}
	return sideNames[s]
}

// MarshalText encodes the side by name.
func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a side name.
func (s *Side) UnmarshalText(b []byte) error {
	for i, n := range sideNames {
		if n == string(b) {
			*s = Side(i)
			return nil
		}
	}
	return fmt.Errorf("unknown side %q", b)
}
