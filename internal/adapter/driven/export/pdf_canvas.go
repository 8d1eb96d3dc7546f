package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDFCanvas desenha em uma página PDF do tamanho do gráfico, em pontos.
type PDFCanvas struct {
	pdf           *gofpdf.Fpdf
	tr            func(string) string
	width, height float64
}

// NewPDFCanvas creates a single-page PDF whose page matches the chart size.
func NewPDFCanvas(width, height float64) *PDFCanvas {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("dandi-access-vis", false)
	pdf.AddPage()

	return &PDFCanvas{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		width:  width,
		height: height,
	}
}

// SetTitle grava o título nos metadados do documento.
func (c *PDFCanvas) SetTitle(title string) {
	c.pdf.SetTitle(title, true)
}

// Write serializa o documento em w.
func (c *PDFCanvas) Write(w io.Writer) error {
	return c.pdf.Output(w)
}

// Save grava o documento em path.
func (c *PDFCanvas) Save(path string) error {
	return c.pdf.OutputFileAndClose(path)
}

func (c *PDFCanvas) Size() (float64, float64) {
	return c.width, c.height
}

func (c *PDFCanvas) Rect(x, y, w, h float64, s Style) {
	mode := c.apply(s)
	if mode == "" {
		return
	}
	c.pdf.Rect(x, y, w, h, mode)
	c.reset(s)
}

func (c *PDFCanvas) Polygon(points []Point, s Style) {
	if len(points) < 3 {
		return
	}
	mode := c.apply(s)
	if mode == "" {
		return
	}
	pts := make([]gofpdf.PointType, len(points))
	for i, p := range points {
		pts[i] = gofpdf.PointType{X: p.X, Y: p.Y}
	}
	c.pdf.Polygon(pts, mode)
	c.reset(s)
}

func (c *PDFCanvas) Polyline(points []Point, s Style) {
	if len(points) < 2 || s.Stroke == "" {
		return
	}
	s.Fill = ""
	c.apply(s)
	c.pdf.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.pdf.LineTo(p.X, p.Y)
	}
	c.pdf.DrawPath("D")
	c.reset(s)
}

func (c *PDFCanvas) Circle(cx, cy, r float64, s Style) {
	mode := c.apply(s)
	if mode == "" {
		return
	}
	c.pdf.Circle(cx, cy, r, mode)
	c.reset(s)
}

func (c *PDFCanvas) Line(x1, y1, x2, y2 float64, s Style) {
	if s.Stroke == "" {
		return
	}
	s.Fill = ""
	c.apply(s)
	c.pdf.Line(x1, y1, x2, y2)
	c.reset(s)
}

func (c *PDFCanvas) Text(x, y float64, text string, f Font) {
	style := ""
	if f.Bold {
		style = "B"
	}
	c.pdf.SetFont("Helvetica", style, f.Size)
	col := mustRGB(colorOr(f.Color, "#000000"))
	c.pdf.SetTextColor(col.R, col.G, col.B)

	text = c.tr(text)
	offset := 0.0
	switch f.Anchor {
	case AnchorMiddle:
		offset = c.pdf.GetStringWidth(text) / 2
	case AnchorEnd:
		offset = c.pdf.GetStringWidth(text)
	}

	if f.Rotate != 0 {
		c.pdf.TransformBegin()
		c.pdf.TransformRotate(f.Rotate, x, y)
		c.pdf.Text(x-offset, y, text)
		c.pdf.TransformEnd()
		return
	}
	c.pdf.Text(x-offset, y, text)
}

// apply configura cores, espessura e opacidade, e devolve o modo de pintura
// do gofpdf ("F", "D", "FD"), ou "" se não há nada a pintar.
func (c *PDFCanvas) apply(s Style) string {
	mode := ""
	if s.Fill != "" {
		col := mustRGB(s.Fill)
		c.pdf.SetFillColor(col.R, col.G, col.B)
		mode = "F"
	}
	if s.Stroke != "" {
		col := mustRGB(s.Stroke)
		c.pdf.SetDrawColor(col.R, col.G, col.B)
		width := s.StrokeWidth
		if width == 0 {
			width = 1
		}
		c.pdf.SetLineWidth(width)
		if s.Dashed {
			c.pdf.SetDashPattern([]float64{4, 3}, 0)
		}
		mode += "D"
	}
	if mode != "" && s.Opacity > 0 && s.Opacity < 1 {
		c.pdf.SetAlpha(s.Opacity, "Normal")
	}
	return mode
}

func (c *PDFCanvas) reset(s Style) {
	if s.Dashed {
		c.pdf.SetDashPattern([]float64{}, 0)
	}
	if s.Opacity > 0 && s.Opacity < 1 {
		c.pdf.SetAlpha(1, "Normal")
	}
}
