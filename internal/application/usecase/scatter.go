package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/catalystneuro/dandi-access-vis/internal/domain/entity"
	"github.com/catalystneuro/dandi-access-vis/internal/shared/types"
)

// minPlotLatitude corta a Antártida do mapa de pontos.
const minPlotLatitude = -60.0

// BuildScatterMap places every region that has both coordinates and lies north
// of the map's southern edge. Points are sorted by volume, smallest first.
func BuildScatterMap(
	totals entity.RegionTotals,
	coords entity.CoordinateTable,
	scale entity.VolumeScale,
	land []entity.GeoFeature,
	dandisets []string,
) entity.ScatterMap {
	chart := entity.ScatterMap{
		Title: chartTitle("DANDI Data Downloads by Region", dandisets),
		Land:  land,
	}

	for region, bytes := range totals {
		pos, ok := coords.Lookup(region)
		if !ok || pos.Lat <= minPlotLatitude {
			continue
		}
		chart.Points = append(chart.Points, entity.MapPoint{
			Region:   region,
			Position: pos,
			Bytes:    bytes,
			Category: scale.Classify(bytes),
		})
	}

	sort.Slice(chart.Points, func(i, j int) bool {
		a, b := chart.Points[i], chart.Points[j]
		if a.Bytes != b.Bytes {
			return a.Bytes < b.Bytes
		}
		return a.Region < b.Region
	})

	counts := make([]int, len(scale))
	for _, p := range chart.Points {
		counts[scale.Index(p.Bytes)]++
	}
	chart.Legend = make([]entity.LegendEntry, len(scale))
	for i, c := range scale {
		chart.Legend[i] = entity.LegendEntry{Category: c, Count: counts[i]}
	}

	return chart
}

// RunScatter aggregates region totals and writes the scatter map.
func (uc *VisualizationUseCase) RunScatter(ctx context.Context, args *types.CLIArgs) error {
	uc.console.LogInfo("Loading region data %s...", describeSelection(args.Dandisets))

	result, err := uc.aggregator.RegionTotals(ctx, args.DataPath, args.Dandisets)
	if err != nil {
		if isMissingInput(err) {
			return nil
		}
		return err
	}
	if len(result.Totals) == 0 {
		uc.console.LogInfo("No valid region data found!")
		return nil
	}
	uc.console.LogInfo("Found data for %d regions", len(result.Totals))

	var coords entity.CoordinateTable
	err = uc.loadStatus(ctx, "Loading coordinate data...", func(ctx context.Context) error {
		var loadErr error
		coords, loadErr = uc.references.LoadCoordinates(ctx, args.DataPath)
		return loadErr
	})
	if err != nil {
		uc.console.LogError("Error loading coordinates: %s", err)
	}
	if len(coords) == 0 {
		uc.console.LogInfo("No coordinate data found!")
		return nil
	}
	uc.console.LogInfo("Found coordinates for %d regions", len(coords))

	land, err := uc.references.LoadGeoFeatures(args.Features)
	if err != nil {
		uc.console.LogWarning("Country outlines unavailable, drawing points only: %s", err)
		land = nil
	}

	uc.console.LogInfo("Creating scatter map...")
	chart := BuildScatterMap(result.Totals, coords, uc.scale, land, args.Dandisets)
	if len(chart.Points) == 0 {
		uc.console.LogInfo("No plottable data found")
		return nil
	}
	uc.console.LogInfo("Found %d regions with coordinates and data", len(chart.Points))

	output := ResolveOutputPath(args.Output, DefaultScatterOutput, args.Dandisets)
	paths, err := uc.exportRepo.ExportScatterMap(chart, output)
	if err != nil {
		return fmt.Errorf("error exporting scatter map: %w", err)
	}
	uc.reportExported("Scatter map", paths)

	uc.printLegend(chart.Legend)
	uc.exportTotals(result.Totals.Sorted(), "region", output, args.ExportData)
	return nil
}

func (uc *VisualizationUseCase) printLegend(legend []entity.LegendEntry) {
	table := uc.console.CreateTable()
	table.AddColumn("Download Volume")
	table.AddColumn("Color")
	table.AddColumn("Regions")
	for _, e := range legend {
		table.AddRow(e.Category.Label, e.Category.ColorName, e.Count)
	}
	uc.console.Println()
	uc.console.Println(table.Render())
}
