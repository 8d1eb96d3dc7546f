package entity

import "time"

// ColorbarTick is a labelled position on a colour scale, in plot units.
type ColorbarTick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// ShadedFeature is a country outline with its optional plot value.
type ShadedFeature struct {
	Feature  GeoFeature `json:"feature"`
	HasValue bool       `json:"has_value"`
	Value    float64    `json:"value,omitempty"`
}

// ChoroplethMap is everything needed to draw the country map.
type ChoroplethMap struct {
	Title        string          `json:"title"`
	Subtitle     string          `json:"subtitle"`
	ScaleLabel   string          `json:"scale_label"`
	LogScale     bool            `json:"log_scale"`
	Features     []ShadedFeature `json:"features"`
	VMin         float64         `json:"vmin"`
	VMax         float64         `json:"vmax"`
	Ticks        []ColorbarTick  `json:"ticks"`
	ColoredCount int             `json:"colored_count"`
}

// MapPoint is one plotted region of the scatter map.
type MapPoint struct {
	Region   string         `json:"region"`
	Position GeoPoint       `json:"position"`
	Bytes    int64          `json:"bytes"`
	Category VolumeCategory `json:"category"`
}

// LegendEntry counts the points drawn in a category.
type LegendEntry struct {
	Category VolumeCategory `json:"category"`
	Count    int            `json:"count"`
}

// ScatterMap is everything needed to draw the region scatter map. Points are
// ordered smallest volume first so the largest end up on top.
type ScatterMap struct {
	Title  string        `json:"title"`
	Land   []GeoFeature  `json:"-"`
	Points []MapPoint    `json:"points"`
	Legend []LegendEntry `json:"legend"`
}

// StackedSeries is one layer of the cumulative chart.
type StackedSeries struct {
	Name   string    `json:"name"`
	Color  string    `json:"color"`
	Values []float64 `json:"values"`
}

// TemporalChart is a stacked area chart over consecutive days.
type TemporalChart struct {
	Title  string          `json:"title"`
	XLabel string          `json:"x_label"`
	YLabel string          `json:"y_label"`
	Dates  []time.Time     `json:"dates"`
	Series []StackedSeries `json:"series"`
}
