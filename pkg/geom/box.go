package geom

// Box is an axis-aligned rectangle stored by its upper-left corner.
// Width and Height are positive for every box the engine produces.
type Box struct {
	X      int64 `json:"x"`
	Y      int64 `json:"y"`
	Width  int64 `json:"width"`
	Height int64 `json:"height"`
}

// PlaceBox returns the box of the given size centered on center.
// The corner is center - size/2 with truncating division; since sizes are
// positive this is the same as flooring the half size.
func PlaceBox(center Point, width, height int64) Box {
	return Box{
		X:      center.X - width/2,
		Y:      center.Y - height/2,
		Width:  width,
		Height: height,
	}
}

// Corner returns the upper-left corner.
func (b Box) Corner() Point { return Point{X: b.X, Y: b.Y} }

// Center returns the center point. For boxes built by PlaceBox it equals the
// center that was passed in.
func (b Box) Center() Point { return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2} }

func (b Box) Left() int64   { return b.X }
func (b Box) Right() int64  { return b.X + b.Width }
func (b Box) Top() int64    { return b.Y }
func (b Box) Bottom() int64 { return b.Y + b.Height }

// Size returns the box dimensions.
func (b Box) Size() Size { return Size{W: b.Width, H: b.Height} }

// Perimeter returns the midpoint of the given side.
func (b Box) Perimeter(side Side) Point {
	c := b.Center()
	switch side {
	case SideTop:
		return Point{X: c.X, Y: b.Top()}
	case SideBottom:
		return Point{X: c.X, Y: b.Bottom()}
	case SideLeft:
		return Point{X: b.Left(), Y: c.Y}
	case SideRight:
		return Point{X: b.Right(), Y: c.Y}
	}
	return c
}

// Overlaps reports whether the interiors of a and b intersect.
func (b Box) Overlaps(o Box) bool {
	return b.Left() < o.Right() && o.Left() < b.Right() &&
		b.Top() < o.Bottom() && o.Top() < b.Bottom()
}

// Stack places a title box directly above a content box, both centered
// horizontally on center, with the combined block centered vertically on it.
// Both boxes take the wider of the two widths; heights are kept.
func Stack(center Point, title, content Size) (titleBox, contentBox Box) {
	w := max(title.W, content.W)
	h := title.H + content.H
	x := center.X - w/2
	y := center.Y - h/2

	titleBox = Box{X: x, Y: y, Width: w, Height: title.H}
	contentBox = Box{X: x, Y: y + title.H, Width: w, Height: content.H}
	return titleBox, contentBox
}
