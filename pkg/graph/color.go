package graph

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strings"

	"gopkg.in/yaml.v3"
)

// RGB is a fill color. In files it is written either as an [r, g, b] array
// or as a "#rrggbb" string.
type RGB [3]uint8

// Default colors.
var (
	Green = RGB{195, 214, 155} // title boxes
	Gray  = RGB{210, 210, 210} // content boxes
	Black = RGB{0, 0, 0}       // lines and text
)

// Hex returns the "#rrggbb" form.
func (c RGB) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]) }

// RGBA implements image/color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}.RGBA()
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (RGB, error) {
	var c RGB
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return c, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	if _, err := fmt.Sscanf(h, "%02x%02x%02x", &c[0], &c[1], &c[2]); err != nil {
		return c, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// MarshalJSON writes the array form.
func (c RGB) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]uint8(c))
}

// UnmarshalJSON accepts the array or the hex string form.
func (c *RGB) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, err := ParseHex(s)
		if err != nil {
			return err
		}
		*c = v
		return nil
	}
	var arr [3]uint8
	if err := json.Unmarshal(b, &arr); err != nil {
		return fmt.Errorf("invalid color %s: want [r, g, b] or \"#rrggbb\"", b)
	}
	*c = RGB(arr)
	return nil
}

// UnmarshalYAML accepts the sequence or the hex string form.
func (c *RGB) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		v, err := ParseHex(n.Value)
		if err != nil {
			return err
		}
		*c = v
		return nil
	case yaml.SequenceNode:
		var arr [3]uint8
		if len(n.Content) != 3 {
			return fmt.Errorf("line %d: color needs 3 components, got %d", n.Line, len(n.Content))
		}
		if err := n.Decode(&arr); err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		*c = RGB(arr)
		return nil
	}
	return fmt.Errorf("line %d: invalid color", n.Line)
}

// MarshalYAML writes the hex string form.
func (c RGB) MarshalYAML() (any, error) { return c.Hex(), nil }

// UnmarshalTOML accepts the array or the hex string form.
func (c *RGB) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		parsed, err := ParseHex(v)
		if err != nil {
			return err
		}
		*c = parsed
	case []any:
		if len(v) != 3 {
			return fmt.Errorf("color needs 3 components, got %d", len(v))
		}
		for i, e := range v {
			n, ok := e.(int64)
			if !ok || n < 0 || n > 255 {
				return fmt.Errorf("color component %d: %v out of range", i, e)
			}
			c[i] = uint8(n)
		}
	default:
		return fmt.Errorf("invalid color %T", v)
	}
	return nil
}
