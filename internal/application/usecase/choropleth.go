package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/catalystneuro/dandi-access-vis/internal/domain/entity"
	"github.com/catalystneuro/dandi-access-vis/internal/shared/types"
	"github.com/catalystneuro/dandi-access-vis/pkg/bytesize"
)

// topCountries é o tamanho da lista de maiores países no resumo.
const topCountries = 10

// colorbarUnits são os ticks fixos da barra de cores.
var colorbarUnits = []entity.ColorbarTick{
	{Value: 1 << 10, Label: "1 KB"},
	{Value: 1 << 20, Label: "1 MB"},
	{Value: 1 << 30, Label: "1 GB"},
	{Value: 1 << 40, Label: "1 TB"},
	{Value: 1 << 50, Label: "1 PB"},
}

// BuildChoroplethMap joins the country totals to the geo features through
// the reconciler and computes the colour scale. Mapped is the number of
// country codes that have a display name.
func BuildChoroplethMap(
	totals entity.CountryTotals,
	reconciler *entity.NameReconciler,
	features []entity.GeoFeature,
	logScale bool,
	dandisets []string,
) (chart entity.ChoroplethMap, mapped int) {
	byName := map[string]float64{}
	for code, bytes := range totals {
		name, ok := reconciler.DisplayName(code)
		if !ok {
			continue
		}
		mapped++
		byName[name] += float64(bytes)
	}

	plotValues := make(map[string]float64, len(byName))
	for name, v := range byName {
		if logScale {
			plotValues[name] = math.Log10(v + 1)
		} else {
			plotValues[name] = v
		}
	}

	chart = entity.ChoroplethMap{
		Title:      chartTitle("DANDI Data Downloads by Country", dandisets),
		ScaleLabel: "Data Downloaded",
		LogScale:   logScale,
		VMin:       0,
		VMax:       1,
	}

	if len(plotValues) > 0 {
		chart.VMin, chart.VMax = math.Inf(1), math.Inf(-1)
		for _, v := range plotValues {
			chart.VMin = math.Min(chart.VMin, v)
			chart.VMax = math.Max(chart.VMax, v)
		}
		chart.Ticks = colorbarTicks(byName, logScale)
	}

	chart.Features = make([]entity.ShadedFeature, 0, len(features))
	for _, f := range features {
		shaded := entity.ShadedFeature{Feature: f}
		if _, v, ok := reconciler.ResolveFeature(f.Name, plotValues); ok {
			shaded.HasValue = true
			shaded.Value = v
			chart.ColoredCount++
		}
		chart.Features = append(chart.Features, shaded)
	}

	scaleType := "Linear"
	if logScale {
		scaleType = "Logarithmic"
	}
	chart.Subtitle = fmt.Sprintf("Scale: %s | Countries with data: %d", scaleType, chart.ColoredCount)

	return chart, mapped
}

// colorbarTicks mantém apenas os ticks dentro do intervalo dos dados.
func colorbarTicks(byName map[string]float64, logScale bool) []entity.ColorbarTick {
	minVal, maxVal := math.Inf(1), math.Inf(-1)
	for _, v := range byName {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}

	var ticks []entity.ColorbarTick
	if logScale {
		minLog := 0.0
		if minVal > 0 {
			minLog = math.Log10(minVal + 1)
		}
		maxLog := math.Log10(maxVal + 1)
		for _, u := range colorbarUnits {
			v := math.Log10(u.Value + 1)
			if v >= minLog && v <= maxLog {
				ticks = append(ticks, entity.ColorbarTick{Value: v, Label: u.Label})
			}
		}
		return ticks
	}

	for _, u := range colorbarUnits {
		if u.Value >= minVal && u.Value <= maxVal {
			ticks = append(ticks, u)
		}
	}
	return ticks
}

// RunChoropleth aggregates country totals and writes the choropleth map.
func (uc *VisualizationUseCase) RunChoropleth(ctx context.Context, args *types.CLIArgs) error {
	uc.console.LogInfo("Loading and processing country data %s...", describeSelection(args.Dandisets))

	result, err := uc.aggregator.CountryTotals(ctx, args.DataPath, args.Dandisets)
	if err != nil {
		if isMissingInput(err) {
			return nil
		}
		return err
	}
	if len(result.Totals) == 0 {
		uc.console.LogInfo("No valid country data found!")
		return nil
	}
	uc.console.LogInfo("Found data for %d countries", len(result.Totals))

	names, err := uc.references.LoadCountryNames(args.CountryMapping)
	if err != nil {
		uc.console.LogError("Error loading country mapping: %s", err)
		names = map[string]string{}
	}
	reconciler := entity.NewNameReconciler(names, uc.alternates)

	var features []entity.GeoFeature
	err = uc.loadStatus(ctx, "Loading country outlines...", func(context.Context) error {
		var loadErr error
		features, loadErr = uc.references.LoadGeoFeatures(args.Features)
		return loadErr
	})
	if err != nil {
		uc.console.LogError("Error loading geo features: %s", err)
		uc.console.LogInfo("No country outlines to draw; skipping choropleth")
		return nil
	}

	uc.console.LogInfo("Creating choropleth map...")
	chart, mapped := BuildChoroplethMap(result.Totals, reconciler, features, args.LogScale, args.Dandisets)
	uc.console.LogInfo("Successfully mapped %d out of %d countries", mapped, len(result.Totals))
	uc.console.LogInfo("Colored %d countries on the map", chart.ColoredCount)

	output := ResolveOutputPath(args.Output, DefaultChoroplethOutput, args.Dandisets)
	paths, err := uc.exportRepo.ExportChoropleth(chart, output)
	if err != nil {
		return fmt.Errorf("error exporting choropleth map: %w", err)
	}
	uc.reportExported("Choropleth map", paths)

	uc.printCountrySummary(result.Totals)
	uc.exportTotals(result.Totals.Sorted(), "country", output, args.ExportData)
	return nil
}

func (uc *VisualizationUseCase) printCountrySummary(totals entity.CountryTotals) {
	uc.console.Println()
	uc.console.Println("Summary Statistics:")
	uc.console.Printf("Total countries: %d\n", len(totals))
	uc.console.Printf("Total data downloaded: %s\n", bytesize.FormatInt(totals.Sum()))

	var bars []types.VolumeBar
	for _, e := range totals.Top(topCountries) {
		bars = append(bars, types.VolumeBar{Label: e.Key, Bytes: e.Bytes})
	}
	uc.console.DisplayVolumeBars(fmt.Sprintf("Top %d countries by download volume", topCountries), bars)
}
