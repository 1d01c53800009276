// Package sink writes a placed [engine.Scene] to output formats.
//
// # Formats
//
//   - JSON: the scene itself, in slide units, for external tools
//   - SVG: one <g> per scene group, boxes as <rect>, connectors as
//     <line>, <polyline> or <path> depending on their style
//   - PNG: rasterized with gg and the Go Mono font, no external tools
//
// Slide units are EMU; SVG and PNG output use 9525 EMU per pixel (96 DPI)
// unless scaled.
//
// # Frame
//
// By default the output frame is the slide. Scaled layouts may place boxes
// outside it; [WithFitContent] and [WithPNGFitContent] grow the frame to
// include every box and connector.
//
// # Connector paths
//
// [Path] turns a connector into the points that draw it: two for straight
// lines, four for elbows, and a cubic Bézier (begin, two controls, end)
// for curves. Elbows and curves leave each box along the anchor side's
// outward normal.
package sink
