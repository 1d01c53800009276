package route

import (
	"fmt"

	"github.com/matzehuels/slidegraph/pkg/geom"
)

// Role identifies which of a node's two boxes an anchor sits on.
type Role int

const (
	RoleTitle Role = iota
	RoleContent
)

func (r Role) String() string {
	switch r {
	case RoleTitle:
		return "title"
	case RoleContent:
		return "content"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// MarshalText encodes the role by name.
func (r Role) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText decodes a role name.
func (r *Role) UnmarshalText(b []byte) error {
	switch string(b) {
	case "title":
		*r = RoleTitle
	case "content":
		*r = RoleContent
	default:
		return fmt.Errorf("unknown role %q", b)
	}
	return nil
}

// Anchor is a side midpoint of one of a node's boxes.
type Anchor struct {
	Role Role      `json:"role"`
	Side geom.Side `json:"side"`
}

func (a Anchor) String() string { return a.Role.String() + "-" + a.Side.String() }

// Candidates are the legal connector anchors of a node, in enumeration order.
var Candidates = [6]Anchor{
	{RoleTitle, geom.SideTop},
	{RoleTitle, geom.SideLeft},
	{RoleContent, geom.SideLeft},
	{RoleContent, geom.SideBottom},
	{RoleContent, geom.SideRight},
	{RoleTitle, geom.SideRight},
}

// Endpoints are the two placed boxes of one node.
type Endpoints struct {
	Title   geom.Box
	Content geom.Box
}

// Box returns the box for role.
func (e Endpoints) Box(r Role) geom.Box {
	if r == RoleTitle {
		return e.Title
	}
	return e.Content
}

// Resolve returns the slide point of anchor a.
func (e Endpoints) Resolve(a Anchor) geom.Point {
	return e.Box(a.Role).Perimeter(a.Side)
}
