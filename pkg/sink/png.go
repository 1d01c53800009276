package sink

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/matzehuels/slidegraph/pkg/engine"
	"github.com/matzehuels/slidegraph/pkg/geom"
	"github.com/matzehuels/slidegraph/pkg/graph"
	"github.com/matzehuels/slidegraph/pkg/metrics"
	"github.com/matzehuels/slidegraph/pkg/route"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	metrics metrics.Metrics
	scale   float64
	fit     bool
	arrows  bool
}

// WithPNGMetrics sets the metrics used to lay out text lines inside boxes.
func WithPNGMetrics(m metrics.Metrics) PNGOption { return func(r *pngRenderer) { r.metrics = m } }

// WithScale sets the PNG scale factor (default 1.0, i.e. 96 DPI).
func WithScale(s float64) PNGOption { return func(r *pngRenderer) { r.scale = s } }

// WithPNGFitContent grows the frame to include everything drawn.
func WithPNGFitContent() PNGOption { return func(r *pngRenderer) { r.fit = true } }

// WithPNGArrows draws an arrowhead at the target end of every connector.
func WithPNGArrows() PNGOption { return func(r *pngRenderer) { r.arrows = true } }

// MaxPNGPixels bounds the image area RenderPNG will allocate.
const MaxPNGPixels = 64 << 20

// RenderPNG rasterizes s. Images larger than MaxPNGPixels are an error.
func RenderPNG(s *engine.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{metrics: metrics.Default(), scale: 1.0}
	for _, opt := range opts {
		opt(&r)
	}
	if !(r.scale > 0) || math.IsInf(r.scale, 1) {
		return nil, fmt.Errorf("png scale must be positive, got %v", r.scale)
	}

	f := frame(s, r.fit)
	k := r.scale / EMUPerPixel
	wf := math.Ceil(float64(f.Width) * k)
	hf := math.Ceil(float64(f.Height) * k)
	if wf <= 0 || hf <= 0 {
		return nil, fmt.Errorf("empty frame %.0fx%.0f", wf, hf)
	}
	if wf*hf > MaxPNGPixels {
		return nil, fmt.Errorf("image %.0fx%.0f exceeds %d pixels; lower --png-scale or drop --fit", wf, hf, MaxPNGPixels)
	}
	w, h := int(wf), int(hf)

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	lineH := float64(r.metrics.CharHeight) * k
	dc.SetFontFace(truetype.NewFace(ttf, &truetype.Options{
		Size:    lineH * 0.82 * 72 / 96,
		DPI:     96,
		Hinting: font.HintingFull,
	}))

	// to maps a slide point into image pixels.
	to := func(p geom.Point) (float64, float64) {
		return float64(p.X-f.X) * k, float64(p.Y-f.Y) * k
	}

	for _, sh := range shapes(s) {
		switch {
		case sh.connector != nil:
			r.connector(dc, s, *sh.connector, to)
		case sh.title:
			r.box(dc, s, sh.node.TitleBox, sh.node.Title, sh.node.TitleColor, to, k)
		default:
			r.box(dc, s, sh.node.ContentBox, sh.node.Content, sh.node.ContentColor, to, k)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (r pngRenderer) box(dc *gg.Context, s *engine.Scene, b geom.Box, text string, fill graph.RGB, to func(geom.Point) (float64, float64), k float64) {
	x, y := to(b.Corner())
	w, h := float64(b.Width)*k, float64(b.Height)*k

	dc.DrawRectangle(x, y, w, h)
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetColor(s.Line)
	dc.SetLineWidth(1)
	dc.Stroke()

	lineH := float64(r.metrics.CharHeight) * k
	top := y + float64(r.metrics.HeightBase/2)*k
	dc.SetColor(s.Text)
	for i, line := range strings.Split(text, "\n") {
		dc.DrawStringAnchored(line, x+w/2, top+lineH*(float64(i)+0.5), 0.5, 0.35)
	}
}

func (r pngRenderer) connector(dc *gg.Context, s *engine.Scene, c route.Connector, to func(geom.Point) (float64, float64)) {
	dc.SetColor(s.Line)
	dc.SetLineWidth(1.5)

	pts := Path(c)
	x0, y0 := to(pts[0])
	dc.MoveTo(x0, y0)
	if c.Style == route.Curve {
		x1, y1 := to(pts[1])
		x2, y2 := to(pts[2])
		x3, y3 := to(pts[3])
		dc.CubicTo(x1, y1, x2, y2, x3, y3)
	} else {
		for _, p := range pts[1:] {
			dc.LineTo(to(p))
		}
	}
	dc.Stroke()

	if r.arrows {
		fx, fy := to(pts[len(pts)-2])
		tx, ty := to(pts[len(pts)-1])
		drawArrow(dc, fx, fy, tx, ty)
	}
}

// drawArrow fills a small triangle pointing from (fx, fy) to (tx, ty).
func drawArrow(dc *gg.Context, fx, fy, tx, ty float64) {
	dx, dy := tx-fx, ty-fy
	length := math.Hypot(dx, dy)
	if length < 0.1 {
		return
	}
	dx /= length
	dy /= length

	const size, spread = 8.0, 0.5
	dc.MoveTo(tx, ty)
	dc.LineTo(tx-size*dx+size*dy*spread, ty-size*dy-size*dx*spread)
	dc.LineTo(tx-size*dx-size*dy*spread, ty-size*dy+size*dx*spread)
	dc.ClosePath()
	dc.Fill()
}
