package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalystneuro/dandi-access-vis/internal/domain/entity"
)

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#26c6da")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0x26, G: 0xc6, B: 0xda}, c)
	assert.Equal(t, "#26c6da", c.Hex())

	c, err = ParseHexColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 255, G: 255, B: 255}, c)

	_, err = ParseHexColor("#12345")
	assert.Error(t, err)
	_, err = ParseHexColor("#zzzzzz")
	assert.Error(t, err)
}

func TestColormap(t *testing.T) {
	m := Colormap{VMin: 0, VMax: 8}

	assert.Equal(t, "#ffffcc", m.Color(0).Hex())
	assert.Equal(t, "#800026", m.Color(8).Hex())
	assert.Equal(t, "#fd8d3c", m.Color(4).Hex())
	assert.Equal(t, "#800026", m.Color(100).Hex())
	assert.Equal(t, "#ffffcc", m.Color(-1).Hex())

	assert.Zero(t, Colormap{VMin: 1, VMax: 1}.Normalize(1))
}

func TestProjection(t *testing.T) {
	p := NewProjection(0, 0, 360)
	assert.InDelta(t, 145.0, p.Height, 1e-9)

	assertPoint(t, Point{X: 0, Y: 0}, p.Project(entity.GeoPoint{Lon: -180, Lat: 85}))
	assertPoint(t, Point{X: 360, Y: 145}, p.Project(entity.GeoPoint{Lon: 180, Lat: -60}))
	assertPoint(t, Point{X: 180, Y: 85}, p.Project(entity.GeoPoint{Lon: 0, Lat: 0}))

	assert.True(t, p.Contains(entity.GeoPoint{Lon: 10, Lat: -59}))
	assert.False(t, p.Contains(entity.GeoPoint{Lon: 10, Lat: -61}))

	ring := p.ProjectRing([]entity.GeoPoint{{Lon: 0, Lat: -70}, {Lon: 0, Lat: 89}})
	assert.InDelta(t, 145.0, ring[0].Y, 1e-9)
	assert.InDelta(t, 0.0, ring[1].Y, 1e-9)
}

func assertPoint(t *testing.T, want, got Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9)
	assert.InDelta(t, want.Y, got.Y, 1e-9)
}

func TestNiceTicks(t *testing.T) {
	assert.Equal(t, []float64{0, 1}, niceTicks(0))
	ticks := niceTicks(0.5)
	require.Len(t, ticks, 6)
	assert.InDelta(t, 0.5, ticks[5], 1e-12)
	assert.Equal(t, []float64{0, 2, 4, 6, 8, 10}, niceTicks(9))
	assert.Equal(t, "0.3", formatTick(0.30000000000000004, 0.1))
	assert.Equal(t, "10", formatTick(10, 2))
	assert.Equal(t, "0.05", formatTick(0.05, 0.05))
}

func TestSVGStyle(t *testing.T) {
	assert.Equal(t, "fill:none", svgStyle(Style{}))
	assert.Equal(t, "fill:#ffffff;stroke:#000000;stroke-width:5;opacity:0.8",
		svgStyle(Style{Fill: "#ffffff", Stroke: "#000000", StrokeWidth: 0.5, Opacity: 0.8}))
}
