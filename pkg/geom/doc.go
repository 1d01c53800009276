// Package geom holds the value types of the slide layout engine and the
// anchor resolver that turns node centers into boxes.
//
// All coordinates are integer slide length units (EMU, 914400 per inch) with
// the origin in the upper-left corner of the slide and y growing downward.
// Raw layout positions, whose units are chosen by the layout provider, use
// the floating point [Vec] type until they are normalized.
//
// # Boxes
//
// A [Box] is an axis-aligned rectangle stored by its upper-left corner and
// size. [PlaceBox] derives the corner from a center point with truncating
// integer division, so Center recovers the original point exactly:
//
//	b := geom.PlaceBox(geom.Point{X: 100, Y: 50}, 41, 20)
//	b.X, b.Y     // 80, 40
//	b.Center()   // {100, 50}
//
// [Box.Perimeter] returns the midpoint of one side. Points are computed from
// the corner, so the bottom edge of one box and the top edge of a box placed
// directly beneath it coincide exactly.
//
// # Stacking
//
// [Stack] places a node's title box directly above its content box. Both
// share the wider of the two widths, and the combined block is centered on
// the node's layout point.
package geom
