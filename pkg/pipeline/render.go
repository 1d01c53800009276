package pipeline

import (
	"fmt"

	"github.com/matzehuels/slidegraph/pkg/engine"
	"github.com/matzehuels/slidegraph/pkg/sink"
)

// RenderScene generates output artifacts in the requested formats.
func RenderScene(s *engine.Scene, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(s, svgOptions(opts)...)
		case FormatPNG:
			data, err = sink.RenderPNG(s, pngOptions(opts)...)
		case FormatJSON:
			data, err = sink.RenderJSON(s, jsonOptions(opts)...)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func svgOptions(opts Options) []sink.SVGOption {
	out := []sink.SVGOption{sink.WithMetrics(opts.Config.Metrics)}
	if opts.SVGScale != 0 {
		out = append(out, sink.WithSVGScale(opts.SVGScale))
	}
	if opts.FitContent {
		out = append(out, sink.WithFitContent())
	}
	if opts.Arrows {
		out = append(out, sink.WithArrows())
	}
	return out
}

func pngOptions(opts Options) []sink.PNGOption {
	out := []sink.PNGOption{sink.WithPNGMetrics(opts.Config.Metrics)}
	if opts.PNGScale != 0 {
		out = append(out, sink.WithScale(opts.PNGScale))
	}
	if opts.FitContent {
		out = append(out, sink.WithPNGFitContent())
	}
	if opts.Arrows {
		out = append(out, sink.WithPNGArrows())
	}
	return out
}

func jsonOptions(opts Options) []sink.JSONOption {
	out := []sink.JSONOption{sink.WithJSONPaths()}
	if opts.GraphPath != "" {
		out = append(out, sink.WithJSONSource(opts.GraphPath))
	}
	return out
}
