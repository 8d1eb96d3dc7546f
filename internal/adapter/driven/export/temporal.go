package export

import (
	"math"
	"strconv"
	"time"

	"github.com/catalystneuro/dandi-access-vis/internal/domain/entity"
)

const (
	temporalWidth  = 1200.0
	temporalHeight = 750.0
)

// plotArea é a região dos eixos dentro do canvas.
type plotArea struct {
	left, top, right, bottom float64
}

func (a plotArea) width() float64 { return a.right - a.left }
func (a plotArea) height() float64 { return a.bottom - a.top }

// DrawTemporalChart draws the stacked cumulative areas with axes, a dashed
// grid and a legend listing the layers top to bottom.
func DrawTemporalChart(c Canvas, chart entity.TemporalChart) {
	width, height := c.Size()
	area := plotArea{left: 110, top: 80, right: width - 40, bottom: height - 100}

	c.Text(width/2, 45, chart.Title, Font{Size: 22, Bold: true, Color: titleColor, Anchor: AnchorMiddle})

	n := len(chart.Dates)
	if n == 0 {
		return
	}

	stacks := stackSeries(chart.Series, n)
	yMax := 0.0
	if len(stacks) > 0 {
		for _, v := range stacks[len(stacks)-1] {
			yMax = math.Max(yMax, v)
		}
	}
	ticks := niceTicks(yMax)
	yTop := ticks[len(ticks)-1]

	yAt := func(v float64) float64 {
		return area.bottom - v/yTop*area.height()
	}

	// Com um único dia a área vira uma faixa de largura total.
	cols := make([]column, n)
	for i := range cols {
		cols[i] = column{x: dateX(area, i, n), idx: i}
	}
	if n == 1 {
		cols = []column{{x: area.left, idx: 0}, {x: area.right, idx: 0}}
	}

	step := ticks[1] - ticks[0]
	grid := Style{Stroke: "#b0b0b0", StrokeWidth: 0.6, Opacity: 0.3, Dashed: true}
	for _, t := range ticks {
		y := yAt(t)
		c.Line(area.left, y, area.right, y, grid)
		c.Text(area.left-8, y+4, formatTick(t, step), Font{Size: 11, Color: labelColor, Anchor: AnchorEnd})
	}

	for k, series := range chart.Series {
		poly := make([]Point, 0, 2*len(cols))
		for _, col := range cols {
			poly = append(poly, Point{X: col.x, Y: yAt(stacks[k][col.idx])})
		}
		for j := len(cols) - 1; j >= 0; j-- {
			lower := 0.0
			if k > 0 {
				lower = stacks[k-1][cols[j].idx]
			}
			poly = append(poly, Point{X: cols[j].x, Y: yAt(lower)})
		}
		c.Polygon(poly, Style{Fill: series.Color, Opacity: 0.8})
	}

	drawDateAxis(c, chart.Dates, area)

	axis := Style{Stroke: labelColor, StrokeWidth: 1}
	c.Line(area.left, area.bottom, area.right, area.bottom, axis)
	c.Line(area.left, area.top, area.left, area.bottom, axis)

	c.Text(area.left+area.width()/2, height-30, chart.XLabel, Font{Size: 14, Color: labelColor, Anchor: AnchorMiddle})
	c.Text(35, area.top+area.height()/2, chart.YLabel, Font{Size: 14, Color: labelColor, Anchor: AnchorMiddle, Rotate: 90})

	drawTemporalLegend(c, chart.Series, area)
}

type column struct {
	x   float64
	idx int
}

// dateX posiciona o dia i de n no eixo horizontal.
func dateX(area plotArea, i, n int) float64 {
	if n == 1 {
		return area.left
	}
	return area.left + area.width()*float64(i)/float64(n-1)
}

// stackSeries devolve, para cada camada, a soma acumulada até ela.
func stackSeries(series []entity.StackedSeries, n int) [][]float64 {
	stacks := make([][]float64, len(series))
	for k, s := range series {
		stacks[k] = make([]float64, n)
		for i := 0; i < n; i++ {
			v := 0.0
			if i < len(s.Values) {
				v = s.Values[i]
			}
			if k > 0 {
				v += stacks[k-1][i]
			}
			stacks[k][i] = v
		}
	}
	return stacks
}

// niceTicks returns evenly spaced ticks from zero covering limit, with a step
// of 1, 2 or 5 times a power of ten.
func niceTicks(limit float64) []float64 {
	if limit <= 0 || math.IsNaN(limit) || math.IsInf(limit, 0) {
		return []float64{0, 1}
	}
	raw := limit / 5
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := 10 * mag
	for _, m := range []float64{1, 2, 5} {
		if raw <= m*mag {
			step = m * mag
			break
		}
	}
	ticks := []float64{0}
	for i := 1; ; i++ {
		v := float64(i) * step
		ticks = append(ticks, v)
		if v >= limit {
			break
		}
	}
	return ticks
}

// formatTick usa casas decimais suficientes para o passo entre os ticks.
func formatTick(v, step float64) string {
	decimals := 0
	if step > 0 && step < 1 {
		decimals = int(math.Ceil(-math.Log10(step) - 1e-9))
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// drawDateAxis marca anos como ticks principais e trimestres como
// secundários. Intervalos curtos recebem apenas as datas de início e fim.
func drawDateAxis(c Canvas, dates []time.Time, area plotArea) {
	n := len(dates)
	marked := 0
	for i, d := range dates {
		if d.Day() != 1 {
			continue
		}
		x := dateX(area, i, n)
		switch {
		case d.Month() == time.January:
			c.Line(x, area.bottom, x, area.bottom+7, Style{Stroke: labelColor})
			c.Text(x, area.bottom+24, strconv.Itoa(d.Year()), Font{Size: 12, Color: labelColor, Anchor: AnchorMiddle})
			marked++
		case d.Month() == time.April || d.Month() == time.July || d.Month() == time.October:
			c.Line(x, area.bottom, x, area.bottom+4, Style{Stroke: labelColor})
			c.Text(x, area.bottom+16, d.Format("Jan"), Font{Size: 8, Color: labelColor, Anchor: AnchorEnd, Rotate: 45})
			marked++
		}
	}

	if marked == 0 {
		font := Font{Size: 11, Color: labelColor, Anchor: AnchorMiddle}
		c.Text(dateX(area, 0, n), area.bottom+20, dates[0].Format("2006-01-02"), font)
		if n > 1 {
			c.Text(dateX(area, n-1, n), area.bottom+20, dates[n-1].Format("2006-01-02"), font)
		}
	}
}

// drawTemporalLegend lista as camadas de cima para baixo, no canto superior
// esquerdo da área do gráfico.
func drawTemporalLegend(c Canvas, series []entity.StackedSeries, area plotArea) {
	if len(series) == 0 {
		return
	}
	const rowHeight = 20.0
	boxW := 180.0
	boxH := 12 + rowHeight*float64(len(series))
	x, y := area.left+10, area.top+10

	c.Rect(x+3, y+3, boxW, boxH, Style{Fill: "#000000", Opacity: 0.15})
	c.Rect(x, y, boxW, boxH, Style{Fill: "#ffffff", Stroke: "#cccccc"})

	for i := range series {
		s := series[len(series)-1-i]
		ry := y + 8 + rowHeight*float64(i)
		c.Rect(x+10, ry, 24, 12, Style{Fill: s.Color, Opacity: 0.8})
		c.Text(x+42, ry+11, s.Name, Font{Size: 12, Color: labelColor})
	}
}
