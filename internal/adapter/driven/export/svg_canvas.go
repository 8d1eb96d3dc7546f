package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// svgScale multiplica as coordenadas para que a API inteira do svgo preserve
// um décimo de pixel; o viewBox desfaz a escala.
const svgScale = 10

const fontFamily = "Helvetica,Arial,sans-serif"

// SVGCanvas draws onto an SVG document.
type SVGCanvas struct {
	doc           *svg.SVG
	width, height float64
}

// NewSVGCanvas starts an SVG document of the given size on w. Call End to
// close the document.
func NewSVGCanvas(w io.Writer, width, height float64) *SVGCanvas {
	doc := svg.New(w)
	doc.Startview(int(width), int(height), 0, 0, int(width*svgScale), int(height*svgScale))
	doc.Rect(0, 0, int(width*svgScale), int(height*svgScale), "fill:#ffffff")
	return &SVGCanvas{doc: doc, width: width, height: height}
}

// Title escreve o elemento <title> do documento.
func (c *SVGCanvas) Title(title string) {
	c.doc.Title(title)
}

// End fecha o documento.
func (c *SVGCanvas) End() {
	c.doc.End()
}

func (c *SVGCanvas) Size() (float64, float64) {
	return c.width, c.height
}

func (c *SVGCanvas) Rect(x, y, w, h float64, s Style) {
	c.doc.Rect(scaled(x), scaled(y), scaled(w), scaled(h), svgStyle(s))
}

func (c *SVGCanvas) Polygon(points []Point, s Style) {
	if len(points) < 3 {
		return
	}
	xs, ys := scaledPoints(points)
	c.doc.Polygon(xs, ys, svgStyle(s))
}

func (c *SVGCanvas) Polyline(points []Point, s Style) {
	if len(points) < 2 {
		return
	}
	s.Fill = ""
	xs, ys := scaledPoints(points)
	c.doc.Polyline(xs, ys, svgStyle(s))
}

func (c *SVGCanvas) Circle(cx, cy, r float64, s Style) {
	c.doc.Circle(scaled(cx), scaled(cy), scaled(r), svgStyle(s))
}

func (c *SVGCanvas) Line(x1, y1, x2, y2 float64, s Style) {
	c.doc.Line(scaled(x1), scaled(y1), scaled(x2), scaled(y2), svgStyle(s))
}

func (c *SVGCanvas) Text(x, y float64, text string, f Font) {
	style := fmt.Sprintf("font-family:%s;font-size:%dpx;fill:%s;text-anchor:%s",
		fontFamily, scaled(f.Size), colorOr(f.Color, "#000000"), svgAnchor(f.Anchor))
	if f.Bold {
		style += ";font-weight:bold"
	}
	if f.Rotate != 0 {
		c.doc.Gtransform(fmt.Sprintf("rotate(%g %d %d)", -f.Rotate, scaled(x), scaled(y)))
		c.doc.Text(scaled(x), scaled(y), text, style)
		c.doc.Gend()
		return
	}
	c.doc.Text(scaled(x), scaled(y), text, style)
}

func scaled(v float64) int {
	return int(math.Round(v * svgScale))
}

func scaledPoints(points []Point) ([]int, []int) {
	xs := make([]int, len(points))
	ys := make([]int, len(points))
	for i, p := range points {
		xs[i], ys[i] = scaled(p.X), scaled(p.Y)
	}
	return xs, ys
}

func svgStyle(s Style) string {
	parts := []string{"fill:" + colorOr(s.Fill, "none")}
	if s.Stroke != "" {
		width := s.StrokeWidth
		if width == 0 {
			width = 1
		}
		parts = append(parts, "stroke:"+s.Stroke, fmt.Sprintf("stroke-width:%g", width*svgScale))
		if s.Dashed {
			parts = append(parts, fmt.Sprintf("stroke-dasharray:%d,%d", 4*svgScale, 3*svgScale))
		}
	}
	if s.Opacity > 0 && s.Opacity < 1 {
		parts = append(parts, fmt.Sprintf("opacity:%g", s.Opacity))
	}
	return strings.Join(parts, ";")
}

func svgAnchor(a Anchor) string {
	switch a {
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	default:
		return "start"
	}
}

func colorOr(c, fallback string) string {
	if c == "" {
		return fallback
	}
	return c
}
