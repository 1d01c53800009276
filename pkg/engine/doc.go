// Package engine turns a graph and a raw layout into a placed [Scene].
//
// [Render] runs the three geometric stages in order:
//
//  1. Normalize: raw positions are fitted to the slide and scaled about its
//     center (see the slide package).
//  2. Place: every node entry gets a title box stacked on a content box,
//     sized from its text by the metrics package and centered on its point.
//  3. Route: every edge gets the shortest of the 36 anchor pairs between the
//     two nodes' boxes (see the route package).
//
// The input graph is never modified. A Scene is plain data; sinks turn it
// into SVG, PNG or JSON.
//
// # Failures
//
// By default the first failure aborts the render and no Scene is returned.
// With [Config.BestEffort], edges that reference unplaced nodes are left out
// and reported in [Scene.Failures] instead.
//
// # Concurrency
//
// Placement is sequential. Routing fans out over [Config.Workers]
// goroutines; results land in edge order either way.
package engine
