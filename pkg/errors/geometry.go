package errors

import "fmt"

// DegenerateLayoutError is returned when a layout axis has zero range and
// cannot be min-max normalized. The caller must supply explicit positions or
// a non-degenerate layout.
type DegenerateLayoutError struct {
	Axis   string // "x" or "y"
	Points int    // number of points in the layout
}

// Error implements the error interface.
func (e *DegenerateLayoutError) Error() string {
	return fmt.Sprintf("degenerate layout: %d points share one %s coordinate", e.Points, e.Axis)
}

// Code returns the error code for this error type.
func (e *DegenerateLayoutError) Code() Code {
	return ErrCodeDegenerateLayout
}

// UnknownNodeError is returned when an edge references a node that has no
// resolved position or boxes.
type UnknownNodeError struct {
	NodeID string
	From   string // edge source
	To     string // edge target
}

// Error implements the error interface.
func (e *UnknownNodeError) Error() string {
	if e.From == "" && e.To == "" {
		return fmt.Sprintf("unknown node %q", e.NodeID)
	}
	return fmt.Sprintf("edge %s->%s: unknown node %q", e.From, e.To, e.NodeID)
}

// Code returns the error code for this error type.
func (e *UnknownNodeError) Code() Code {
	return ErrCodeUnknownNode
}

// InvalidMetricsConfigError is returned when a font metrics constant is out
// of range.
type InvalidMetricsConfigError struct {
	Field string
	Value int64
}

// Error implements the error interface.
func (e *InvalidMetricsConfigError) Error() string {
	return fmt.Sprintf("invalid metrics config: %s must be positive, got %d", e.Field, e.Value)
}

// Code returns the error code for this error type.
func (e *InvalidMetricsConfigError) Code() Code {
	return ErrCodeInvalidMetrics
}
