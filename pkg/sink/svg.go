package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/slidegraph/pkg/engine"
	"github.com/matzehuels/slidegraph/pkg/geom"
	"github.com/matzehuels/slidegraph/pkg/metrics"
	"github.com/matzehuels/slidegraph/pkg/route"
)

const fontFamily = `Consolas, 'Go Mono', monospace`

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	metrics metrics.Metrics
	fit     bool
	arrows  bool
	scale   float64 // pixels per EMU
}

// WithMetrics sets the metrics used to lay out text lines inside boxes.
func WithMetrics(m metrics.Metrics) SVGOption { return func(r *svgRenderer) { r.metrics = m } }

// WithFitContent grows the frame to include everything drawn.
func WithFitContent() SVGOption { return func(r *svgRenderer) { r.fit = true } }

// WithArrows draws an arrowhead at the target end of every connector.
func WithArrows() SVGOption { return func(r *svgRenderer) { r.arrows = true } }

// WithSVGScale multiplies the pixel size of the output.
func WithSVGScale(f float64) SVGOption {
	return func(r *svgRenderer) { r.scale = f / EMUPerPixel }
}

// RenderSVG renders s as a standalone SVG document.
func RenderSVG(s *engine.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{metrics: metrics.Default(), scale: 1.0 / EMUPerPixel}
	for _, opt := range opts {
		opt(&r)
	}

	f := frame(s, r.fit)
	w, h := r.px(f.Width), r.px(f.Height)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.px(f.X), r.px(f.Y), w, h, w, h)
	if r.arrows {
		fmt.Fprintf(&buf, `  <defs><marker id="arrow" viewBox="0 0 10 10" refX="10" refY="5" markerWidth="8" markerHeight="8" orient="auto-start-reverse"><path d="M0,0 L10,5 L0,10 z" fill="%s"/></marker></defs>`+"\n",
			s.Line.Hex())
	}
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="white"/>`+"\n", r.px(s.Width), r.px(s.Height))

	open := ""
	inGroup := false
	for _, sh := range shapes(s) {
		if !inGroup || sh.group != open {
			if inGroup {
				buf.WriteString("  </g>\n")
			}
			fmt.Fprintf(&buf, `  <g id="%s">`+"\n", groupID(sh.group))
			open, inGroup = sh.group, true
		}
		switch {
		case sh.connector != nil:
			r.connector(&buf, s, *sh.connector)
		case sh.title:
			r.box(&buf, s, sh.node.TitleBox, sh.node.Title, sh.node.TitleColor.Hex(), "title", sh.node.ID)
		default:
			r.box(&buf, s, sh.node.ContentBox, sh.node.Content, sh.node.ContentColor.Hex(), "content", sh.node.ID)
		}
	}
	if inGroup {
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) px(v int64) float64 { return float64(v) * r.scale }

func (r svgRenderer) box(buf *bytes.Buffer, s *engine.Scene, b geom.Box, text, fill, role, id string) {
	fmt.Fprintf(buf, `    <rect class="%s" data-node="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		role, escapeXML(id), r.px(b.X), r.px(b.Y), r.px(b.Width), r.px(b.Height), fill, s.Line.Hex())

	lineH := r.px(r.metrics.CharHeight)
	cx := r.px(b.X + b.Width/2)
	y := r.px(b.Y+r.metrics.HeightBase/2) + lineH*0.8
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-family="%s" font-size="%.1f" text-anchor="middle" fill="%s" xml:space="preserve">`,
		cx, y, fontFamily, lineH*0.82, s.Text.Hex())
	for i, line := range strings.Split(text, "\n") {
		dy := 0.0
		if i > 0 {
			dy = lineH
		}
		fmt.Fprintf(buf, `<tspan x="%.1f" dy="%.1f">%s</tspan>`, cx, dy, escapeXML(line))
	}
	buf.WriteString("</text>\n")
}

func (r svgRenderer) connector(buf *bytes.Buffer, s *engine.Scene, c route.Connector) {
	marker := ""
	if r.arrows {
		marker = ` marker-end="url(#arrow)"`
	}
	pts := Path(c)
	common := fmt.Sprintf(`class="connector" data-from="%s" data-to="%s" fill="none" stroke="%s" stroke-width="1.5"%s`,
		escapeXML(c.From), escapeXML(c.To), s.Line.Hex(), marker)

	switch c.Style {
	case route.Elbow:
		coords := make([]string, len(pts))
		for i, p := range pts {
			coords[i] = fmt.Sprintf("%.1f,%.1f", r.px(p.X), r.px(p.Y))
		}
		fmt.Fprintf(buf, `    <polyline points="%s" %s/>`+"\n", strings.Join(coords, " "), common)
	case route.Curve:
		fmt.Fprintf(buf, `    <path d="M%.1f,%.1f C%.1f,%.1f %.1f,%.1f %.1f,%.1f" %s/>`+"\n",
			r.px(pts[0].X), r.px(pts[0].Y), r.px(pts[1].X), r.px(pts[1].Y),
			r.px(pts[2].X), r.px(pts[2].Y), r.px(pts[3].X), r.px(pts[3].Y), common)
	default:
		fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" %s/>`+"\n",
			r.px(pts[0].X), r.px(pts[0].Y), r.px(pts[1].X), r.px(pts[1].Y), common)
	}
}

func groupID(name string) string {
	if name == "" {
		return "ungrouped"
	}
	return "group-" + escapeXML(name)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
