package export

import (
	"github.com/catalystneuro/dandi-access-vis/internal/domain/entity"
)

// Dimensões do mapa coroplético.
const (
	choroplethWidth  = 1600.0
	choroplethHeight = 780.0
)

const (
	noDataFill     = "#d3d3d3"
	countryEdge    = "#ffffff"
	featureOpacity = 0.8
	colorbarSteps  = 64
	titleColor     = "#222222"
	labelColor     = "#333333"
)

// DrawChoropleth draws the country map, its colour bar and titles.
func DrawChoropleth(c Canvas, chart entity.ChoroplethMap) {
	width, height := c.Size()
	proj := NewProjection(40, 90, width-80)
	cmap := Colormap{VMin: chart.VMin, VMax: chart.VMax}

	c.Text(width/2, 50, chart.Title, Font{Size: 26, Bold: true, Color: titleColor, Anchor: AnchorMiddle})

	for _, f := range chart.Features {
		fill := noDataFill
		if f.HasValue {
			fill = cmap.Color(f.Value).Hex()
		}
		style := Style{Fill: fill, Stroke: countryEdge, StrokeWidth: 0.5, Opacity: featureOpacity}
		for _, ring := range f.Feature.Rings {
			if outsideExtent(ring) {
				continue
			}
			c.Polygon(proj.ProjectRing(ring), style)
		}
	}

	if chart.ColoredCount > 0 {
		drawColorbar(c, chart, cmap, width*0.15, height*0.55, 16, height*0.2)
	}

	c.Text(width/2, height-30, chart.Subtitle, Font{Size: 16, Color: labelColor, Anchor: AnchorMiddle})
}

// drawColorbar desenha a barra vertical com (x, bottom) no canto inferior
// esquerdo e os rótulos à esquerda.
func drawColorbar(c Canvas, chart entity.ChoroplethMap, cmap Colormap, x, bottom, w, h float64) {
	step := h / colorbarSteps
	for i := 0; i < colorbarSteps; i++ {
		t := (float64(i) + 0.5) / colorbarSteps
		y := bottom - float64(i+1)*step
		c.Rect(x, y, w, step+0.5, Style{Fill: rampAt(t).Hex()})
	}
	c.Rect(x, bottom-h, w, h, Style{Stroke: labelColor, StrokeWidth: 0.5})

	for _, tick := range chart.Ticks {
		y := bottom - cmap.Normalize(tick.Value)*h
		c.Line(x-4, y, x, y, Style{Stroke: labelColor, StrokeWidth: 0.5})
		c.Text(x-6, y+3.5, tick.Label, Font{Size: 10, Color: labelColor, Anchor: AnchorEnd})
	}

	c.Text(x-52, bottom-h/2, chart.ScaleLabel, Font{Size: 12, Color: labelColor, Anchor: AnchorMiddle, Rotate: 90})
}
