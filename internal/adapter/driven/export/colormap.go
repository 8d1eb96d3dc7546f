package export

import "math"

// ylOrRd são os nove passos da escala sequencial YlOrRd do ColorBrewer.
var ylOrRd = []RGB{
	{255, 255, 204},
	{255, 237, 160},
	{254, 217, 118},
	{254, 178, 76},
	{253, 141, 60},
	{252, 78, 42},
	{227, 26, 28},
	{189, 0, 38},
	{128, 0, 38},
}

// Colormap maps a value in [VMin, VMax] onto the YlOrRd ramp with linear
// interpolation between the stops.
type Colormap struct {
	VMin, VMax float64
}

// Normalize leva v para [0, 1], saturando fora do intervalo.
func (m Colormap) Normalize(v float64) float64 {
	if m.VMax <= m.VMin || math.IsNaN(v) {
		return 0
	}
	t := (v - m.VMin) / (m.VMax - m.VMin)
	return math.Max(0, math.Min(1, t))
}

// Color returns the ramp colour for v.
func (m Colormap) Color(v float64) RGB {
	return rampAt(m.Normalize(v))
}

func rampAt(t float64) RGB {
	pos := t * float64(len(ylOrRd)-1)
	i := int(math.Floor(pos))
	if i >= len(ylOrRd)-1 {
		return ylOrRd[len(ylOrRd)-1]
	}
	frac := pos - float64(i)
	a, b := ylOrRd[i], ylOrRd[i+1]
	mix := func(x, y int) int {
		return int(math.Round(float64(x) + (float64(y)-float64(x))*frac))
	}
	return RGB{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B)}
}
