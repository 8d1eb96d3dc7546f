package export

import (
	"fmt"
	"math"

	"github.com/catalystneuro/dandi-access-vis/internal/domain/entity"
)

const (
	scatterWidth  = 1600.0
	scatterHeight = 730.0
)

const (
	oceanFill   = "#e3f2fd"
	landFill    = "#dde9de"
	coastStroke = "#666666"
)

// pointRadius converte o tamanho da categoria (área em pt²) em raio.
func pointRadius(size int) float64 {
	return math.Sqrt(float64(size)) / 2 * 1.5
}

// DrawScatterMap draws the land outlines, one circle per region and the
// legend. Points are drawn in slice order.
func DrawScatterMap(c Canvas, chart entity.ScatterMap) {
	width, _ := c.Size()
	proj := NewProjection(40, 80, width-80)

	c.Text(width/2, 50, chart.Title, Font{Size: 26, Bold: true, Color: titleColor, Anchor: AnchorMiddle})
	c.Rect(proj.X, proj.Y, proj.Width, proj.Height, Style{Fill: oceanFill})

	land := Style{Fill: landFill, Stroke: coastStroke, StrokeWidth: 0.5}
	for _, f := range chart.Land {
		for _, ring := range f.Rings {
			if outsideExtent(ring) {
				continue
			}
			c.Polygon(proj.ProjectRing(ring), land)
		}
	}

	for _, p := range chart.Points {
		if !proj.Contains(p.Position) {
			continue
		}
		pt := proj.Project(p.Position)
		c.Circle(pt.X, pt.Y, pointRadius(p.Category.PointSize), Style{
			Fill:        p.Category.Fill,
			Stroke:      p.Category.Stroke,
			StrokeWidth: 1.2,
			Opacity:     0.7,
		})
	}

	c.Rect(proj.X, proj.Y, proj.Width, proj.Height, Style{Stroke: coastStroke, StrokeWidth: 0.8})
	drawScatterLegend(c, chart.Legend, proj)
}

// drawScatterLegend desenha a legenda no canto inferior esquerdo do mapa.
func drawScatterLegend(c Canvas, legend []entity.LegendEntry, proj Projection) {
	if len(legend) == 0 {
		return
	}
	const rowHeight = 30.0
	boxW, boxH := 250.0, 50+rowHeight*float64(len(legend))
	x := proj.X + 15
	y := proj.Y + proj.Height - boxH - 15

	c.Rect(x, y, boxW, boxH, Style{Fill: "#ffffff", Stroke: "#cccccc", StrokeWidth: 1, Opacity: 0.9})
	c.Text(x+boxW/2, y+28, "Download Volume", Font{Size: 16, Color: titleColor, Anchor: AnchorMiddle})

	for i, e := range legend {
		cy := y + 50 + rowHeight*float64(i) + rowHeight/2
		c.Circle(x+30, cy, pointRadius(e.Category.PointSize), Style{
			Fill:        e.Category.Fill,
			Stroke:      e.Category.Stroke,
			StrokeWidth: 1.2,
		})
		label := fmt.Sprintf("%s (%d)", e.Category.Label, e.Count)
		c.Text(x+55, cy+5, label, Font{Size: 14, Color: labelColor})
	}
}
