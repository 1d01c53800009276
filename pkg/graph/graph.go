package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/slidegraph/pkg/errors"
)

// Format is a graph file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported graph file %q (want .json, .yaml or .yml)", path)
}

// =============================================================================
// Reading
// =============================================================================

// ReadGraphFile reads and validates a graph file.
func ReadGraphFile(path string) (Graph, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Graph{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Graph{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph file %s", path)
		}
		return Graph{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := ReadGraph(f, format)
	if err != nil {
		return Graph{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// ReadGraph decodes and validates a graph in the given format.
func ReadGraph(r io.Reader, format Format) (Graph, error) {
	var g Graph
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&g); err != nil {
			return Graph{}, fmt.Errorf("decode: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&g); err != nil && err != io.EOF {
			return Graph{}, fmt.Errorf("decode: %w", err)
		}
	default:
		return Graph{}, errors.New(errors.ErrCodeInvalidFormat, "unknown graph format %q", format)
	}
	if err := g.Validate(); err != nil {
		return Graph{}, err
	}
	return g, nil
}

// =============================================================================
// Writing
// =============================================================================

// WriteGraph encodes g in the given format.
func WriteGraph(g Graph, w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(g); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(g); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return enc.Close()
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown graph format %q", format)
	}
	return nil
}

// WriteGraphFile writes g to path, choosing the format by extension.
func WriteGraphFile(g Graph, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(g, f, format)
}
