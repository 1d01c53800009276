// Package route picks connector endpoints between two placed nodes.
//
// Every node is drawn as a title box stacked on a content box. A connector
// may attach to six anchors on the outline of that block, in this fixed
// order:
//
//	 +-- title top --+
//	 |               |
//	title   Title   title
//	left            right
//	 +---------------+
//	 |               |
//	content Content content
//	left            right
//	 +- content bot -+
//
// The seam between the two boxes is never used. [Route] scores all 6 × 6
// anchor pairs by squared distance and returns the first minimal pair in
// source-major enumeration order, so ties always resolve the same way.
//
// The connector [Style] only tells the renderer how to draw the line; it has
// no effect on which anchors are chosen.
package route
