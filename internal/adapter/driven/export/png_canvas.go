package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// pngScale é a densidade da imagem em pixels por unidade do canvas.
const pngScale = 2

const circleSegments = 48

// PNGCanvas rasteriza o gráfico em memória com golang.org/x/image/vector.
type PNGCanvas struct {
	img           *image.RGBA
	raster        *vector.Rasterizer
	fonts         map[fontKey]font.Face
	width, height float64
}

type fontKey struct {
	size float64
	bold bool
}

var (
	regularFont, _ = opentype.Parse(goregular.TTF)
	boldFont, _    = opentype.Parse(gobold.TTF)
)

// NewPNGCanvas creates a white raster of the given size.
func NewPNGCanvas(width, height float64) *PNGCanvas {
	w, h := int(math.Ceil(width*pngScale)), int(math.Ceil(height*pngScale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	r := vector.NewRasterizer(w, h)
	r.DrawOp = draw.Over

	return &PNGCanvas{
		img:    img,
		raster: r,
		fonts:  map[fontKey]font.Face{},
		width:  width,
		height: height,
	}
}

// Image expõe a imagem rasterizada.
func (c *PNGCanvas) Image() image.Image {
	return c.img
}

// Write codifica a imagem como PNG em w.
func (c *PNGCanvas) Write(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *PNGCanvas) Size() (float64, float64) {
	return c.width, c.height
}

func (c *PNGCanvas) Rect(x, y, w, h float64, s Style) {
	c.Polygon([]Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}, s)
}

func (c *PNGCanvas) Polygon(points []Point, s Style) {
	if len(points) < 3 {
		return
	}
	if s.Fill != "" {
		c.begin()
		c.path(points)
		c.paint(s.Fill, s.Opacity)
	}
	if s.Stroke != "" {
		closed := append(append([]Point{}, points...), points[0])
		c.stroke(closed, s)
	}
}

func (c *PNGCanvas) Polyline(points []Point, s Style) {
	if len(points) < 2 || s.Stroke == "" {
		return
	}
	c.stroke(points, s)
}

func (c *PNGCanvas) Circle(cx, cy, r float64, s Style) {
	outline := circlePoints(cx, cy, r)
	if s.Fill != "" {
		c.begin()
		c.path(outline)
		c.paint(s.Fill, s.Opacity)
	}
	if s.Stroke != "" {
		c.stroke(append(outline, outline[0]), s)
	}
}

func (c *PNGCanvas) Line(x1, y1, x2, y2 float64, s Style) {
	if s.Stroke == "" {
		return
	}
	c.stroke([]Point{{x1, y1}, {x2, y2}}, s)
}

func (c *PNGCanvas) Text(x, y float64, text string, f Font) {
	face := c.face(f)
	if face == nil || text == "" {
		return
	}
	col := mustRGB(colorOr(f.Color, "#000000"))
	src := image.NewUniform(color.RGBA{R: uint8(col.R), G: uint8(col.G), B: uint8(col.B), A: 255})

	advance := font.MeasureString(face, text).Ceil()
	offset := 0
	switch f.Anchor {
	case AnchorMiddle:
		offset = advance / 2
	case AnchorEnd:
		offset = advance
	}

	if f.Rotate == 0 {
		d := font.Drawer{
			Dst:  c.img,
			Src:  src,
			Face: face,
			Dot:  fixed.P(int(math.Round(x*pngScale))-offset, int(math.Round(y*pngScale))),
		}
		d.DrawString(text)
		return
	}

	// Texto girado: desenha numa imagem auxiliar e copia com a rotação.
	metrics := face.Metrics()
	ascent, descent := metrics.Ascent.Ceil(), metrics.Descent.Ceil()
	tmp := image.NewRGBA(image.Rect(0, 0, advance, ascent+descent))
	d := font.Drawer{Dst: tmp, Src: src, Face: face, Dot: fixed.P(0, ascent)}
	d.DrawString(text)

	theta := f.Rotate * math.Pi / 180
	sin, cos := math.Sin(theta), math.Cos(theta)
	ox, oy := x*pngScale, y*pngScale
	b := tmp.Bounds()
	for ty := b.Min.Y; ty < b.Max.Y; ty++ {
		for tx := b.Min.X; tx < b.Max.X; tx++ {
			px := tmp.RGBAAt(tx, ty)
			if px.A == 0 {
				continue
			}
			// Coordenadas relativas à linha de base, antes da rotação.
			rx, ry := float64(tx-offset), float64(ty-ascent)
			dx := ox + rx*cos + ry*sin
			dy := oy - rx*sin + ry*cos
			c.blend(int(math.Round(dx)), int(math.Round(dy)), px)
		}
	}
}

func (c *PNGCanvas) face(f Font) font.Face {
	key := fontKey{size: f.Size, bold: f.Bold}
	if face, ok := c.fonts[key]; ok {
		return face
	}
	parsed := regularFont
	if f.Bold {
		parsed = boldFont
	}
	if parsed == nil {
		return nil
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    f.Size * pngScale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	c.fonts[key] = face
	return face
}

func (c *PNGCanvas) blend(x, y int, src color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(c.img.Bounds()) {
		return
	}
	dst := c.img.RGBAAt(x, y)
	a := uint32(src.A)
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*255 + uint32(d)*(255-a)) / 255)
	}
	c.img.SetRGBA(x, y, color.RGBA{R: mix(src.R, dst.R), G: mix(src.G, dst.G), B: mix(src.B, dst.B), A: 255})
}

func (c *PNGCanvas) begin() {
	b := c.img.Bounds()
	c.raster.Reset(b.Dx(), b.Dy())
	c.raster.DrawOp = draw.Over
}

func (c *PNGCanvas) path(points []Point) {
	c.raster.MoveTo(float32(points[0].X*pngScale), float32(points[0].Y*pngScale))
	for _, p := range points[1:] {
		c.raster.LineTo(float32(p.X*pngScale), float32(p.Y*pngScale))
	}
	c.raster.ClosePath()
}

func (c *PNGCanvas) paint(hex string, opacity float64) {
	col := mustRGB(hex)
	alpha := 1.0
	if opacity > 0 && opacity < 1 {
		alpha = opacity
	}
	src := image.NewUniform(color.NRGBA{R: uint8(col.R), G: uint8(col.G), B: uint8(col.B), A: uint8(math.Round(alpha * 255))})
	c.raster.Draw(c.img, c.img.Bounds(), src, image.Point{})
}

// stroke desenha cada segmento como um quadrilátero com orientação positiva,
// assim sobreposições nas junções não se anulam.
func (c *PNGCanvas) stroke(points []Point, s Style) {
	width := s.StrokeWidth
	if width == 0 {
		width = 1
	}
	half := math.Max(width*pngScale/2, 0.5)

	c.begin()
	for i := 1; i < len(points); i++ {
		for _, seg := range dashes(points[i-1], points[i], s.Dashed) {
			c.segment(seg[0], seg[1], half)
		}
	}
	c.paint(s.Stroke, s.Opacity)
}

func (c *PNGCanvas) segment(a, b Point, half float64) {
	ax, ay := a.X*pngScale, a.Y*pngScale
	bx, by := b.X*pngScale, b.Y*pngScale
	dx, dy := bx-ax, by-ay
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*half, dx/length*half
	quad := [4][2]float64{{ax + nx, ay + ny}, {bx + nx, by + ny}, {bx - nx, by - ny}, {ax - nx, ay - ny}}

	area := 0.0
	for i := range quad {
		j := (i + 1) % 4
		area += quad[i][0]*quad[j][1] - quad[j][0]*quad[i][1]
	}
	if area < 0 {
		quad[1], quad[3] = quad[3], quad[1]
	}

	c.raster.MoveTo(float32(quad[0][0]), float32(quad[0][1]))
	for _, q := range quad[1:] {
		c.raster.LineTo(float32(q[0]), float32(q[1]))
	}
	c.raster.ClosePath()
}

// dashes divide o segmento em traços de 4 unidades com 3 de intervalo.
func dashes(a, b Point, dashed bool) [][2]Point {
	if !dashed {
		return [][2]Point{{a, b}}
	}
	const on, off = 4.0, 3.0
	length := math.Hypot(b.X-a.X, b.Y-a.Y)
	if length == 0 {
		return nil
	}
	ux, uy := (b.X-a.X)/length, (b.Y-a.Y)/length
	var out [][2]Point
	for t := 0.0; t < length; t += on + off {
		end := math.Min(t+on, length)
		out = append(out, [2]Point{
			{a.X + ux*t, a.Y + uy*t},
			{a.X + ux*end, a.Y + uy*end},
		})
	}
	return out
}

func circlePoints(cx, cy, r float64) []Point {
	points := make([]Point, circleSegments)
	for i := range points {
		theta := 2 * math.Pi * float64(i) / circleSegments
		points[i] = Point{X: cx + r*math.Cos(theta), Y: cy + r*math.Sin(theta)}
	}
	return points
}
