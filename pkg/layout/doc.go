// Package layout supplies raw node positions for a graph.
//
// A [Provider] returns a map from node ID to a real-valued point in whatever
// units it likes; the slide package normalizes them away. Two providers
// exist:
//
//   - [Fixed]: caller-supplied coordinates, e.g. the positions block of a
//     graph file. Results are marked Explicit, which lets the normalizer
//     center a zero-range axis instead of failing.
//   - [Graphviz]: runs one of the Graphviz engines (dot, neato, fdp, sfdp,
//     circo, twopi, osage) in-process via go-graphviz. Node sizes from the
//     metrics package are passed as fixed box sizes so that engines which
//     avoid overlaps see the real box footprint. Results are cached by DOT
//     source and engine.
//
// Graphviz uses a y-up coordinate system; [Graphviz] flips y so that larger
// values mean lower on the slide, like every other point in this module.
package layout

// Engines lists the supported Graphviz layout engines.
var Engines = []string{"dot", "neato", "fdp", "sfdp", "circo", "twopi", "osage"}

// ValidEngine reports whether name is in Engines.
func ValidEngine(name string) bool {
	for _, e := range Engines {
		if e == name {
			return true
		}
	}
	return false
}
