package repository

import (
	"github.com/catalystneuro/dandi-access-vis/internal/domain/entity"
)

// ExportRepository writes charts and aggregated tables to disk. Chart exports
// write an SVG at outputFile and a PDF next to it, returning both paths.
type ExportRepository interface {
	ExportChoropleth(chart entity.ChoroplethMap, outputFile string) ([]string, error)
	ExportScatterMap(chart entity.ScatterMap, outputFile string) ([]string, error)
	ExportTemporalChart(chart entity.TemporalChart, outputFile string) ([]string, error)

	// Aggregated tables
	ExportTotalsToCSV(entries []entity.TotalEntry, keyHeader, outputFile string) (string, error)
	ExportTotalsToJSON(entries []entity.TotalEntry, outputFile string) (string, error)
}
