package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/catalystneuro/dandi-access-vis/internal/domain/entity"
	"github.com/catalystneuro/dandi-access-vis/internal/domain/repository"
	"github.com/catalystneuro/dandi-access-vis/internal/shared/types"
)

// VisualizationUseCase drives the three chart commands: load, aggregate,
// build the chart model, export it and print a summary.
type VisualizationUseCase struct {
	aggregator *Aggregator
	references repository.ReferenceRepository
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
	scale      entity.VolumeScale
	alternates []entity.FeatureAlternate
}

// NewVisualizationUseCase creates a new visualization use case. The volume
// scale and the feature alternates are fixed for the lifetime of the process.
func NewVisualizationUseCase(
	summaries repository.SummaryRepository,
	references repository.ReferenceRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
	scale entity.VolumeScale,
	alternates []entity.FeatureAlternate,
) *VisualizationUseCase {
	return &VisualizationUseCase{
		aggregator: NewAggregator(summaries, console),
		references: references,
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
		scale:      scale,
		alternates: alternates,
	}
}

// ApplyConfigFile merges the config file named by args.ConfigFile into args.
// Flags the user set explicitly, as reported by isExplicit, keep their value.
func (uc *VisualizationUseCase) ApplyConfigFile(args *types.CLIArgs, isExplicit func(flag string) bool) error {
	if args.ConfigFile == "" {
		return nil
	}

	cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}

	if cfg.DataPath != "" && !isExplicit("data-path") {
		args.DataPath = cfg.DataPath
	}
	if len(cfg.Dandisets) > 0 && !isExplicit("dandiset") {
		args.Dandisets = cfg.Dandisets
	}
	if cfg.CountryMapping != "" && !isExplicit("country-mapping") {
		args.CountryMapping = cfg.CountryMapping
	}
	if cfg.Features != "" && !isExplicit("features") {
		args.Features = cfg.Features
	}
	if cfg.LogScale && !isExplicit("log-scale") {
		args.LogScale = true
	}
	if cfg.TopN > 0 && !isExplicit("top-n") {
		args.TopN = cfg.TopN
	}
	if len(cfg.ExportData) > 0 && !isExplicit("export-data") {
		args.ExportData = cfg.ExportData
	}
	if cfg.OutputDir != "" && !isExplicit("output") {
		args.Output = filepath.Join(cfg.OutputDir, filepath.Base(args.Output))
	}

	uc.console.LogInfo("Loaded configuration from %s", args.ConfigFile)
	return nil
}

// describeSelection monta o trecho "for dandiset X" usado nas mensagens.
func describeSelection(dandisets []string) string {
	switch len(dandisets) {
	case 0:
		return "for all dandisets"
	case 1:
		return fmt.Sprintf("for dandiset %s", dandisets[0])
	default:
		return fmt.Sprintf("for %d dandisets", len(dandisets))
	}
}

// chartTitle acrescenta a seleção de dandisets ao título base.
func chartTitle(base string, dandisets []string) string {
	switch len(dandisets) {
	case 0:
		return base
	case 1:
		return fmt.Sprintf("%s - Dandiset %s", base, dandisets[0])
	default:
		return fmt.Sprintf("%s - %d Dandisets", base, len(dandisets))
	}
}

// isMissingInput reports whether err means the aggregation had nothing to
// read, which ends a command quietly rather than failing it.
func isMissingInput(err error) bool {
	return errors.Is(err, types.ErrSummariesNotFound)
}

// exportTotals grava a tabela agregada nos formatos pedidos em --export-data.
func (uc *VisualizationUseCase) exportTotals(entries []entity.TotalEntry, keyHeader, chartOutput string, formats []string) {
	stem := strings.TrimSuffix(chartOutput, filepath.Ext(chartOutput)) + "_data"
	for _, format := range formats {
		switch strings.ToLower(strings.TrimSpace(format)) {
		case "csv":
			path, err := uc.exportRepo.ExportTotalsToCSV(entries, keyHeader, stem+".csv")
			if err != nil {
				uc.console.LogError("Failed to export data to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported data to CSV: %s", path)
			}
		case "json":
			path, err := uc.exportRepo.ExportTotalsToJSON(entries, stem+".json")
			if err != nil {
				uc.console.LogError("Failed to export data to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported data to JSON: %s", path)
			}
		case "":
		default:
			uc.console.LogWarning("Unsupported export format %q (expected csv or json)", format)
		}
	}
}

// reportExported imprime os caminhos gravados por um export de gráfico.
func (uc *VisualizationUseCase) reportExported(kind string, paths []string) {
	for _, p := range paths {
		switch filepath.Ext(p) {
		case ".pdf":
			uc.console.LogSuccess("PDF version saved as: %s", p)
		default:
			uc.console.LogSuccess("%s saved as: %s", kind, p)
		}
	}
}

// loadStatus mostra um spinner enquanto fn executa.
func (uc *VisualizationUseCase) loadStatus(ctx context.Context, message string, fn func(ctx context.Context) error) error {
	status := uc.console.Status(message)
	defer status.Stop()
	return fn(ctx)
}
