package export

import "github.com/catalystneuro/dandi-access-vis/internal/domain/entity"

// Limites do mapa: a Antártida fica de fora.
const (
	minLon = -180.0
	maxLon = 180.0
	minLat = -60.0
	maxLat = 85.0
)

// Projection is an equirectangular (plate carrée) projection of the map
// extent onto a rectangle of the canvas.
type Projection struct {
	X, Y, Width, Height float64
}

// NewProjection fits the map extent into a box of the given width placed at
// (x, y), keeping the aspect ratio of the extent.
func NewProjection(x, y, width float64) Projection {
	height := width * (maxLat - minLat) / (maxLon - minLon)
	return Projection{X: x, Y: y, Width: width, Height: height}
}

// Project converte lon/lat em coordenadas do canvas.
func (p Projection) Project(pt entity.GeoPoint) Point {
	return Point{
		X: p.X + (pt.Lon-minLon)/(maxLon-minLon)*p.Width,
		Y: p.Y + (maxLat-pt.Lat)/(maxLat-minLat)*p.Height,
	}
}

// Contains reports whether pt lies inside the map extent.
func (p Projection) Contains(pt entity.GeoPoint) bool {
	return pt.Lon >= minLon && pt.Lon <= maxLon && pt.Lat >= minLat && pt.Lat <= maxLat
}

// ProjectRing projects a ring, clamping latitudes to the extent so that
// polygons crossing the southern edge are cut at the frame.
func (p Projection) ProjectRing(ring []entity.GeoPoint) []Point {
	out := make([]Point, 0, len(ring))
	for _, pt := range ring {
		if pt.Lat < minLat {
			pt.Lat = minLat
		}
		if pt.Lat > maxLat {
			pt.Lat = maxLat
		}
		out = append(out, p.Project(pt))
	}
	return out
}

// outsideExtent indica um anel totalmente abaixo do limite sul.
func outsideExtent(ring []entity.GeoPoint) bool {
	for _, pt := range ring {
		if pt.Lat > minLat {
			return false
		}
	}
	return true
}
