package export

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNGCanvasFillsShapes(t *testing.T) {
	c := NewPNGCanvas(100, 50)
	c.Rect(10, 10, 20, 20, Style{Fill: "#ff0000"})
	c.Circle(70, 25, 10, Style{Fill: "#0000ff"})

	img := c.Image()
	assert.Equal(t, 100*pngScale, img.Bounds().Dx())
	assert.Equal(t, 50*pngScale, img.Bounds().Dy())

	assertPixel(t, img.At(20*pngScale, 20*pngScale), color.RGBA{R: 255, A: 255})
	assertPixel(t, img.At(70*pngScale, 25*pngScale), color.RGBA{B: 255, A: 255})
	assertPixel(t, img.At(2, 2), color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

func TestPNGCanvasStrokeAndOpacity(t *testing.T) {
	c := NewPNGCanvas(40, 40)
	c.Line(0, 20, 40, 20, Style{Stroke: "#000000", StrokeWidth: 2})
	c.Rect(0, 0, 10, 10, Style{Fill: "#000000", Opacity: 0.5})

	r, _, _, _ := c.Image().At(20*pngScale, 20*pngScale).RGBA()
	assert.Less(t, r>>8, uint32(10))

	// Meio preto sobre branco.
	r, _, _, _ = c.Image().At(5*pngScale, 5*pngScale).RGBA()
	assert.InDelta(t, 128, float64(r>>8), 3)
}

func TestDashes(t *testing.T) {
	assert.Len(t, dashes(Point{0, 0}, Point{10, 0}, false), 1)

	segs := dashes(Point{0, 0}, Point{10, 0}, true)
	require.Len(t, segs, 2)
	assert.Equal(t, Point{7, 0}, segs[1][0])
	assert.Equal(t, Point{10, 0}, segs[1][1])

	assert.Empty(t, dashes(Point{1, 1}, Point{1, 1}, true))
}

func TestExportChoroplethPNG(t *testing.T) {
	dir := t.TempDir()

	paths, err := NewExportRepository().ExportChoropleth(sampleChoropleth(), filepath.Join(dir, "map.png"))
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.True(t, strings.HasSuffix(paths[0], "map.png"))
	assert.True(t, strings.HasSuffix(paths[1], "map.pdf"))
	assert.NoFileExists(t, filepath.Join(dir, "map.svg"))

	file, err := os.Open(paths[0])
	require.NoError(t, err)
	defer file.Close()

	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, int(choroplethWidth*pngScale), img.Bounds().Dx())
}

func assertPixel(t *testing.T, got color.Color, want color.RGBA) {
	t.Helper()
	r, g, b, a := got.RGBA()
	assert.Equal(t, want, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)})
}
