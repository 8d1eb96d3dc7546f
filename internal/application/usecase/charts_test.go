package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalystneuro/dandi-access-vis/internal/domain/entity"
)

func square(name string) entity.GeoFeature {
	return entity.GeoFeature{Name: name, Rings: [][]entity.GeoPoint{{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}, {Lon: 1, Lat: 1}, {Lon: 0, Lat: 1}}}}
}

func ptr(v float64) *float64 { return &v }

func TestBuildChoroplethMapLinear(t *testing.T) {
	reconciler := entity.NewNameReconciler(
		map[string]string{"US": "USA", "DE": "Germany", "GB": "England"},
		entity.DefaultFeatureAlternates(),
	)
	features := []entity.GeoFeature{
		square("United States of America"),
		square("Germany"),
		square("France"),
	}
	totals := entity.CountryTotals{"US": 7_000_000, "DE": 500, "ZZ": 42}

	chart, mapped := BuildChoroplethMap(totals, reconciler, features, false, nil)

	assert.Equal(t, 2, mapped)
	assert.Equal(t, 2, chart.ColoredCount)
	assert.Equal(t, "DANDI Data Downloads by Country", chart.Title)
	assert.Equal(t, "Scale: Linear | Countries with data: 2", chart.Subtitle)
	assert.Equal(t, 500.0, chart.VMin)
	assert.Equal(t, 7_000_000.0, chart.VMax)

	require.Len(t, chart.Features, 3)
	assert.True(t, chart.Features[0].HasValue)
	assert.Equal(t, 7_000_000.0, chart.Features[0].Value)
	assert.Equal(t, 500.0, chart.Features[1].Value)
	assert.False(t, chart.Features[2].HasValue)

	require.Len(t, chart.Ticks, 2)
	assert.Equal(t, "1 KB", chart.Ticks[0].Label)
	assert.Equal(t, "1 MB", chart.Ticks[1].Label)
}

func TestBuildChoroplethMapLogScale(t *testing.T) {
	reconciler := entity.NewNameReconciler(map[string]string{"US": "USA", "DE": "Germany"}, entity.DefaultFeatureAlternates())
	totals := entity.CountryTotals{"US": 1 << 40, "DE": 0}

	chart, _ := BuildChoroplethMap(totals, reconciler, []entity.GeoFeature{square("United States"), square("Germany")}, true, []string{"000026"})

	assert.Equal(t, "DANDI Data Downloads by Country - Dandiset 000026", chart.Title)
	assert.Equal(t, "Scale: Logarithmic | Countries with data: 2", chart.Subtitle)
	assert.Equal(t, 0.0, chart.VMin)
	assert.InDelta(t, math.Log10(float64(1<<40)+1), chart.VMax, 1e-9)

	var labels []string
	for _, tick := range chart.Ticks {
		labels = append(labels, tick.Label)
	}
	assert.Equal(t, []string{"1 KB", "1 MB", "1 GB", "1 TB"}, labels)
}

func TestBuildChoroplethMapSumsSharedNames(t *testing.T) {
	reconciler := entity.NewNameReconciler(map[string]string{"GB": "England", "UK": "England"}, entity.DefaultFeatureAlternates())

	chart, mapped := BuildChoroplethMap(entity.CountryTotals{"GB": 10, "UK": 5}, reconciler, []entity.GeoFeature{square("United Kingdom")}, false, nil)

	assert.Equal(t, 2, mapped)
	require.Len(t, chart.Features, 1)
	assert.Equal(t, 15.0, chart.Features[0].Value)
}

func TestBuildChoroplethMapWithoutNames(t *testing.T) {
	reconciler := entity.NewNameReconciler(nil, nil)

	chart, mapped := BuildChoroplethMap(entity.CountryTotals{"US": 1}, reconciler, []entity.GeoFeature{square("USA")}, true, []string{"a", "b"})

	assert.Zero(t, mapped)
	assert.Zero(t, chart.ColoredCount)
	assert.Equal(t, 0.0, chart.VMin)
	assert.Equal(t, 1.0, chart.VMax)
	assert.Empty(t, chart.Ticks)
	assert.Equal(t, "DANDI Data Downloads by Country - 2 Dandisets", chart.Title)
}

func TestBuildScatterMap(t *testing.T) {
	coords := entity.CoordinateTable{
		"US/California": {Latitude: ptr(36.7), Longitude: ptr(-119.4)},
		"DE":            {Latitude: ptr(51.1), Longitude: ptr(10.4)},
		"AQ":            {Latitude: ptr(-75), Longitude: ptr(0)},
		"FR":            {Latitude: ptr(46.2)},
		"JP/Tokyo":      {Latitude: ptr(35.6), Longitude: ptr(139.7)},
		"BR/Sao Paulo":  {Latitude: ptr(-23.5), Longitude: ptr(-46.6)},
	}
	totals := entity.RegionTotals{
		"US/California": 20 * entity.TiB,
		"DE":            10*entity.MiB - 1,
		"AQ":            entity.GiB,
		"FR":            entity.GiB,
		"JP/Tokyo":      10 * entity.MiB,
		"BR/Sao Paulo":  10 * entity.GiB,
		"XX":            5,
	}
	scale := entity.DefaultVolumeScale()

	chart := BuildScatterMap(totals, coords, scale, nil, nil)

	var regions []string
	for _, p := range chart.Points {
		regions = append(regions, p.Region)
	}
	assert.Equal(t, []string{"DE", "JP/Tokyo", "BR/Sao Paulo", "US/California"}, regions)
	assert.Equal(t, "low", chart.Points[0].Category.Key)
	assert.Equal(t, "medium", chart.Points[1].Category.Key)
	assert.Equal(t, "high", chart.Points[2].Category.Key)
	assert.Equal(t, "very-high", chart.Points[3].Category.Key)

	require.Len(t, chart.Legend, 4)
	for _, e := range chart.Legend {
		assert.Equal(t, 1, e.Count, e.Category.Key)
	}
	assert.Equal(t, "DANDI Data Downloads by Region", chart.Title)
}

func TestBuildTemporalChartTopNAndOther(t *testing.T) {
	series := entity.DatasetSeries{
		"a": {{Date: day(2024, 1, 1), BytesSent: entity.PiB}, {Date: day(2024, 1, 3), BytesSent: entity.PiB}},
		"b": {{Date: day(2024, 1, 2), BytesSent: entity.PiB}},
		"c": {{Date: day(2024, 1, 2), BytesSent: entity.PiB / 2}},
		"d": {{Date: day(2024, 1, 3), BytesSent: entity.PiB / 4}},
	}

	chart, summary, ok := BuildTemporalChart(series, 2)
	require.True(t, ok)

	require.Len(t, chart.Dates, 3)
	require.Len(t, chart.Series, 3)
	assert.Equal(t, "a", chart.Series[0].Name)
	assert.Equal(t, "#8dd3c7", chart.Series[0].Color)
	assert.Equal(t, []float64{1, 1, 2}, chart.Series[0].Values)
	assert.Equal(t, "b", chart.Series[1].Name)
	assert.Equal(t, []float64{0, 1, 1}, chart.Series[1].Values)
	assert.Equal(t, OtherSeries, chart.Series[2].Name)
	assert.Equal(t, "#999999", chart.Series[2].Color)
	assert.Equal(t, []float64{0, 0.5, 0.75}, chart.Series[2].Values)

	assert.Equal(t, 2, summary.OtherCount)
	assert.Equal(t, entity.PiB/2+entity.PiB/4, summary.OtherTotal)
	assert.Equal(t, 4, summary.Datasets)
	assert.Equal(t, day(2024, 1, 2), summary.PeakDay)
	assert.Equal(t, entity.PiB+entity.PiB/2, summary.PeakBytes)
	assert.Equal(t, 3*entity.PiB+entity.PiB/2+entity.PiB/4, summary.Total)
}

func TestBuildTemporalChartWithoutOther(t *testing.T) {
	series := entity.DatasetSeries{
		"a": {{Date: day(2024, 1, 1), BytesSent: 1}},
	}

	chart, summary, ok := BuildTemporalChart(series, 10)
	require.True(t, ok)
	require.Len(t, chart.Series, 1)
	assert.Zero(t, summary.OtherCount)

	chart, summary, ok = BuildTemporalChart(series, -3)
	require.True(t, ok)
	require.Len(t, chart.Series, 1)
	assert.Equal(t, OtherSeries, chart.Series[0].Name)
	assert.Equal(t, 1, summary.OtherCount)
}

func TestBuildTemporalChartEmpty(t *testing.T) {
	_, _, ok := BuildTemporalChart(entity.DatasetSeries{"a": nil}, 10)
	assert.False(t, ok)
}
