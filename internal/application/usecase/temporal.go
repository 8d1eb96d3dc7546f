package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/catalystneuro/dandi-access-vis/internal/domain/entity"
	"github.com/catalystneuro/dandi-access-vis/internal/shared/types"
	"github.com/catalystneuro/dandi-access-vis/pkg/bytesize"
	"github.com/catalystneuro/dandi-access-vis/pkg/console"
)

// OtherSeries agrupa os dandisets fora do top N.
const OtherSeries = "Other"

const otherColor = "#999999"

// set3Palette é a paleta ColorBrewer Set3.
var set3Palette = []string{
	"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3", "#fdb462",
	"#b3de69", "#fccde5", "#d9d9d9", "#bc80bd", "#ccebc5", "#ffed6f",
}

// TemporalSummary is what the temporal command prints after drawing.
type TemporalSummary struct {
	Top        []entity.TotalEntry
	OtherCount int
	OtherTotal int64
	Datasets   int
	Start      time.Time
	End        time.Time
	Total      int64
	PeakDay    time.Time
	PeakBytes  int64
}

// BuildTemporalChart reindexes every series on the global date range, keeps
// the topN datasets by total and folds the rest into "Other". Values are
// cumulative and expressed in PiB. ok is false when no series has a date.
func BuildTemporalChart(series entity.DatasetSeries, topN int) (chart entity.TemporalChart, summary TemporalSummary, ok bool) {
	start, end, ok := series.Span()
	if !ok {
		return chart, summary, false
	}
	if topN < 0 {
		topN = 0
	}

	totals := series.Totals()
	top := totals
	if len(top) > topN {
		top = totals[:topN]
	}
	rest := totals[len(top):]

	dates := entity.DateRange(start, end)
	daily := make([]int64, len(dates))

	chart = entity.TemporalChart{
		Title:  "DANDI Cumulative Downloads Over Time by Dandiset",
		XLabel: "Date",
		YLabel: "Cumulative Downloads (PiB)",
		Dates:  dates,
	}

	for i, e := range top {
		values := series[e.Key].Reindex(start, end)
		accumulate(daily, values)
		chart.Series = append(chart.Series, entity.StackedSeries{
			Name:   e.Key,
			Color:  set3Palette[i%len(set3Palette)],
			Values: cumulativePiB(values),
		})
	}

	if len(rest) > 0 {
		other := make([]int64, len(dates))
		for _, e := range rest {
			accumulate(other, series[e.Key].Reindex(start, end))
			summary.OtherTotal += e.Bytes
		}
		accumulate(daily, other)
		chart.Series = append(chart.Series, entity.StackedSeries{
			Name:   OtherSeries,
			Color:  otherColor,
			Values: cumulativePiB(other),
		})
	}

	summary.Top = top
	summary.OtherCount = len(rest)
	summary.Datasets = len(series)
	summary.Start, summary.End = start, end
	for i, v := range daily {
		summary.Total += v
		if i == 0 || v > summary.PeakBytes {
			summary.PeakDay, summary.PeakBytes = dates[i], v
		}
	}

	return chart, summary, true
}

func accumulate(dst, src []int64) {
	for i := range dst {
		dst[i] += src[i]
	}
}

func cumulativePiB(values []int64) []float64 {
	out := make([]float64, len(values))
	var running int64
	for i, v := range values {
		running += v
		out[i] = float64(running) / float64(entity.PiB)
	}
	return out
}

// RunTemporal loads the daily series and writes the cumulative chart.
func (uc *VisualizationUseCase) RunTemporal(ctx context.Context, args *types.CLIArgs) error {
	uc.console.LogInfo("Loading temporal data %s...", describeSelection(args.Dandisets))

	result, err := uc.aggregator.DailySeries(ctx, args.DataPath, args.Dandisets)
	if err != nil {
		if isMissingInput(err) {
			return nil
		}
		return err
	}
	if len(result.Series) == 0 {
		uc.console.LogInfo("No valid temporal data found!")
		return nil
	}

	uc.console.LogInfo("Creating temporal visualization with top %d dandisets...", args.TopN)
	chart, summary, ok := BuildTemporalChart(result.Series, args.TopN)
	if !ok {
		uc.console.LogInfo("No dates found in temporal data")
		return nil
	}

	output := ResolveOutputPath(args.Output, DefaultTemporalOutput, args.Dandisets)
	paths, err := uc.exportRepo.ExportTemporalChart(chart, output)
	if err != nil {
		return fmt.Errorf("error exporting temporal chart: %w", err)
	}
	uc.reportExported("Temporal chart", paths)

	uc.printTemporalSummary(summary)
	uc.exportTotals(result.Series.Totals(), "dandiset", output, args.ExportData)
	return nil
}

func (uc *VisualizationUseCase) printTemporalSummary(s TemporalSummary) {
	var bars []types.VolumeBar
	for _, e := range s.Top {
		bars = append(bars, types.VolumeBar{Label: e.Key, Bytes: e.Bytes})
	}
	if s.OtherCount > 0 {
		bars = append(bars, types.VolumeBar{
			Label: fmt.Sprintf("%s (%d dandisets)", OtherSeries, s.OtherCount),
			Bytes: s.OtherTotal,
		})
	}
	uc.console.DisplayVolumeBars(fmt.Sprintf("Top %d dandisets by total volume", len(s.Top)), bars)

	uc.console.Println()
	uc.console.Println(console.BrightMagenta("Summary Statistics:"))
	uc.console.Printf("Total dandisets analyzed: %s\n", console.BrightCyan(s.Datasets))
	uc.console.Printf("Date range: %s to %s\n", s.Start.Format("2006-01-02"), s.End.Format("2006-01-02"))
	uc.console.Printf("Total data across all time: %s\n", console.BrightGreen(bytesize.FormatInt(s.Total)))
	uc.console.Printf("Peak download day: %s (%s)\n",
		s.PeakDay.Format("2006-01-02"), console.BrightYellow(bytesize.FormatInt(s.PeakBytes)))
}
