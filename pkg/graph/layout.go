package graph

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/matzehuels/slidegraph/pkg/geom"
)

// Positions is a computed raw layout, before slide normalization.
type Positions struct {
	Engine    string                `json:"engine,omitempty"`
	Positions map[string][2]float64 `json:"positions"`
}

// NewPositions builds a positions file from layout vectors.
func NewPositions(engine string, pos map[string]geom.Vec) Positions {
	out := Positions{Engine: engine, Positions: make(map[string][2]float64, len(pos))}
	for id, v := range pos {
		out.Positions[id] = [2]float64{v.X, v.Y}
	}
	return out
}

// Vecs converts back to layout vectors.
func (p Positions) Vecs() map[string]geom.Vec {
	out := make(map[string]geom.Vec, len(p.Positions))
	for id, v := range p.Positions {
		out[id] = geom.Vec{X: v[0], Y: v[1]}
	}
	return out
}

// IDs returns the node IDs in sorted order.
func (p Positions) IDs() []string {
	return slices.Sorted(maps.Keys(p.Positions))
}

// WritePositionsFile writes p as indented JSON.
func WritePositionsFile(p Positions, path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode positions: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadPositionsFile reads a file written by WritePositionsFile.
func ReadPositionsFile(path string) (Positions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Positions{}, fmt.Errorf("read %s: %w", path, err)
	}
	var p Positions
	if err := json.Unmarshal(data, &p); err != nil {
		return Positions{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return p, nil
}
