package route

import (
	"fmt"
	"strings"
)

// Style is the connector line shape. The numeric values match the
// presentation connector types 1, 2 and 3.
type Style int

const (
	Straight Style = iota + 1
	Elbow
	Curve
)

var styleNames = map[Style]string{Straight: "straight", Elbow: "elbow", Curve: "curve"}

func (s Style) String() string {
	if n, ok := styleNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// Validate reports whether s is one of the three connector types.
func (s Style) Validate() error {
	if _, ok := styleNames[s]; !ok {
		return fmt.Errorf("invalid connector style: %d (must be 1, 2 or 3)", int(s))
	}
	return nil
}

// ParseStyle accepts a style name or its connector type number.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "straight", "1":
		return Straight, nil
	case "elbow", "2":
		return Elbow, nil
	case "curve", "curved", "3":
		return Curve, nil
	}
	return 0, fmt.Errorf("invalid connector style: %q (must be 'straight', 'elbow', or 'curve')", s)
}

// MarshalText encodes the style by name.
func (s Style) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a style name or number.
func (s *Style) UnmarshalText(b []byte) error {
	v, err := ParseStyle(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
