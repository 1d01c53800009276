// Package graph provides the input model and file formats for slide graphs.
//
// A [Graph] is a list of [Node]s (identity, title, content, optional colors)
// and a list of directed [Edge]s. It is read from JSON or YAML; the format is
// chosen by file extension:
//
//	nodes:
//	  - id: "0"
//	    content: Nothing
//	    title_color: [100, 80, 170]
//	  - id: "1"
//	    content: "-------"
//	    content_bg: "#b43264"
//	edges:
//	  - {from: "0", to: "1"}
//	positions:
//	  "0": [0, 0]
//	  "1": [1, 0]
//
// The optional positions block is an explicit layout: when present it is used
// instead of running a layout engine.
//
// Graphs are treated as already valid. Only node identifiers are checked
// ([Graph.Validate]); duplicate nodes and self-loops pass through unchanged.
//
// # Positions Files
//
// [Positions] is the on-disk form of a computed layout, written by the
// layout command and accepted wherever an explicit layout is:
//
//	{"engine": "neato", "positions": {"a": [0, 1.5], "b": [2, 0]}}
package graph
