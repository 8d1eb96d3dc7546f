package entity

// GeoPoint is a longitude/latitude pair in degrees.
type GeoPoint struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// GeoFeature is a named country outline; each ring is a closed polygon in
// lon/lat. Holes are not kept.
type GeoFeature struct {
	Name  string       `json:"name"`
	Rings [][]GeoPoint `json:"rings"`
}

// Coordinates holds the optional position of a region code.
type Coordinates struct {
	Latitude  *float64 `json:"latitude" yaml:"latitude"`
	Longitude *float64 `json:"longitude" yaml:"longitude"`
}

// CoordinateTable maps region codes to coordinates.
type CoordinateTable map[string]Coordinates

// Lookup devolve a posição da região quando ambas as coordenadas existem.
func (t CoordinateTable) Lookup(region string) (GeoPoint, bool) {
	c, ok := t[region]
	if !ok || c.Latitude == nil || c.Longitude == nil {
		return GeoPoint{}, false
	}
	return GeoPoint{Lon: *c.Longitude, Lat: *c.Latitude}, true
}
