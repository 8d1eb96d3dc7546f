package export

import (
	"fmt"
	"strconv"
	"strings"
)

// Point é uma coordenada no espaço do canvas (origem no canto superior esquerdo).
type Point struct {
	X, Y float64
}

// Style describes how a shape is painted. An empty Fill or Stroke paints
// nothing for that part; Opacity 0 means fully opaque.
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64
	Dashed      bool
}

// Anchor alinha o texto horizontalmente em relação ao ponto.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Font describes a text run. Rotate is in degrees, counter-clockwise.
type Font struct {
	Size   float64
	Bold   bool
	Color  string
	Anchor Anchor
	Rotate float64
}

// Canvas is the drawing surface shared by the SVG and PDF writers. Charts are
// drawn once against it and replayed on each output format.
type Canvas interface {
	Size() (width, height float64)
	Rect(x, y, w, h float64, s Style)
	Polygon(points []Point, s Style)
	Polyline(points []Point, s Style)
	Circle(cx, cy, r float64, s Style)
	Line(x1, y1, x2, y2 float64, s Style)
	Text(x, y float64, text string, f Font)
}

// RGB é uma cor decodificada de "#rrggbb".
type RGB struct {
	R, G, B int
}

// ParseHexColor decodes "#rrggbb" or "#rgb".
func ParseHexColor(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return RGB{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}, nil
}

// Hex formata a cor como "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func mustRGB(hex string) RGB {
	c, err := ParseHexColor(hex)
	if err != nil {
		return RGB{}
	}
	return c
}
