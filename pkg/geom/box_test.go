package geom

import "testing"

func TestPlaceBox(t *testing.T) {
	tests := []struct {
		name   string
		center Point
		w, h   int64
		want   Box
	}{
		{"even size", Point{100, 50}, 40, 20, Box{X: 80, Y: 40, Width: 40, Height: 20}},
		{"odd size floors half", Point{100, 50}, 41, 21, Box{X: 80, Y: 40, Width: 41, Height: 21}},
		{"negative center", Point{-10, -10}, 5, 3, Box{X: -12, Y: -11, Width: 5, Height: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlaceBox(tt.center, tt.w, tt.h)
			if got != tt.want {
				t.Errorf("PlaceBox() = %+v, want %+v", got, tt.want)
			}
			if c := got.Center(); c != tt.center {
				t.Errorf("Center() = %v, want %v", c, tt.center)
			}
		})
	}
}

func TestPerimeter(t *testing.T) {
	b := Box{X: 10, Y: 20, Width: 100, Height: 40}

	tests := []struct {
		side Side
		want Point
	}{
		{SideTop, Point{60, 20}},
		{SideLeft, Point{10, 40}},
		{SideBottom, Point{60, 60}},
		{SideRight, Point{110, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			if got := b.Perimeter(tt.side); got != tt.want {
				t.Errorf("Perimeter(%v) = %v, want %v", tt.side, got, tt.want)
			}
		})
	}
}

func TestStack(t *testing.T) {
	tests := []struct {
		name           string
		center         Point
		title, content Size
	}{
		{"content wider", Point{1000, 1000}, Size{300, 100}, Size{500, 201}},
		{"title wider", Point{0, 0}, Size{700, 99}, Size{200, 300}},
		{"odd totals", Point{-333, 777}, Size{301, 101}, Size{301, 101}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, content := Stack(tt.center, tt.title, tt.content)

			if title.Bottom() != content.Top() {
				t.Errorf("title bottom %d != content top %d", title.Bottom(), content.Top())
			}
			if title.Center().X != content.Center().X {
				t.Errorf("title center x %d != content center x %d", title.Center().X, content.Center().X)
			}
			wantW := max(tt.title.W, tt.content.W)
			if title.Width != wantW || content.Width != wantW {
				t.Errorf("widths = %d, %d, want %d", title.Width, content.Width, wantW)
			}
			if title.Height != tt.title.H || content.Height != tt.content.H {
				t.Errorf("heights = %d, %d, want %d, %d", title.Height, content.Height, tt.title.H, tt.content.H)
			}
			block := Box{X: title.X, Y: title.Y, Width: wantW, Height: title.Height + content.Height}
			if c := block.Center(); c != tt.center {
				t.Errorf("block center = %v, want %v", c, tt.center)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	a := Box{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name string
		b    Box
		want bool
	}{
		{"inside", Box{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"touching edge", Box{X: 10, Y: 0, Width: 5, Height: 5}, false},
		{"apart", Box{X: 20, Y: 20, Width: 5, Height: 5}, false},
		{"partial", Box{X: 5, Y: 5, Width: 10, Height: 10}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSideText(t *testing.T) {
	for _, s := range []Side{SideTop, SideLeft, SideBottom, SideRight} {
		b, _ := s.MarshalText()
		var got Side
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", b, err)
		}
		if got != s {
			t.Errorf("round trip %v -> %v", s, got)
		}
	}
	var s Side
	if err := s.UnmarshalText([]byte("middle")); err == nil {
		t.Error("expected error for unknown side")
	}
}

func TestDistSq(t *testing.T) {
	if got := (Point{0, 0}).DistSq(Point{3, 4}); got != 25 {
		t.Errorf("DistSq = %v, want 25", got)
	}
}
