// Package slide maps raw layout coordinates into the fixed slide space.
//
// Layout providers produce positions in arbitrary, non-comparable units.
// [Normalizer.Normalize] turns them into integer slide points in two steps:
//
//  1. Fit: per axis, min-max rescale so the bounding box of all points spans
//     the full slide, [0, Width] × [0, Height].
//  2. Scale: multiply each point's offset from the slide center by the user
//     scale factor and translate back. Negative factors mirror the axis.
//
// Both steps round half to even, so repeated runs are bit-for-bit identical.
//
// A zero-range axis cannot be fitted. By default that is reported as an
// [errors.DegenerateLayoutError]; with [CenterDegenerate] the axis is
// collapsed onto the slide center line instead. A single point is always
// centered on the slide.
//
// [errors.DegenerateLayoutError]: github.com/matzehuels/slidegraph/pkg/errors.DegenerateLayoutError
package slide
