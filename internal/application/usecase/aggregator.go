package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/catalystneuro/dandi-access-vis/internal/domain/entity"
	"github.com/catalystneuro/dandi-access-vis/internal/domain/repository"
	"github.com/catalystneuro/dandi-access-vis/internal/shared/types"
)

// ArchiveDataset é o diretório agregado de todos os dandisets. Contá-lo junto
// com os demais duplicaria os totais, por isso só entra quando pedido.
const ArchiveDataset = "archive"

// Selection records which datasets an aggregation actually read.
type Selection struct {
	Requested []string `json:"requested,omitempty"`
	Found     []string `json:"found"`
	Missing   []string `json:"missing,omitempty"`
}

// RegionResult is the outcome of Aggregator.RegionTotals.
type RegionResult struct {
	Totals entity.RegionTotals
	Selection
}

// CountryResult is the outcome of Aggregator.CountryTotals.
type CountryResult struct {
	Totals entity.CountryTotals
	Selection
}

// DailyResult is the outcome of Aggregator.DailySeries.
type DailyResult struct {
	Series entity.DatasetSeries
	Selection
}

// Aggregator sums the per-dataset summaries of an access-summaries tree.
// Unreadable files are skipped with a warning; they never abort a scan.
type Aggregator struct {
	summaries repository.SummaryRepository
	console   types.ConsoleInterface
}

// NewAggregator cria um novo agregador.
func NewAggregator(summaries repository.SummaryRepository, console types.ConsoleInterface) *Aggregator {
	return &Aggregator{
		summaries: summaries,
		console:   console,
	}
}

// RegionTotals sums bytes_sent per exact region string over every selected
// by_region.tsv. Rows tagged GitHub, VPN, bogon or unknown are dropped.
// A missing summaries directory yields an empty result and
// types.ErrSummariesNotFound.
func (a *Aggregator) RegionTotals(ctx context.Context, root string, dandisets []string) (RegionResult, error) {
	totals := entity.RegionTotals{}

	selection, err := a.scan(ctx, root, dandisets, "region data", func(dataset string) error {
		records, err := a.summaries.ReadRegionRecords(ctx, root, dataset)
		if err != nil {
			return err
		}
		for _, r := range records {
			if entity.IsNonGeographicTag(r.Region) {
				continue
			}
			totals.Add(r.Region, r.BytesSent)
		}
		return nil
	})

	return RegionResult{Totals: totals, Selection: selection}, err
}

// CountryTotals folds RegionTotals by country code.
func (a *Aggregator) CountryTotals(ctx context.Context, root string, dandisets []string) (CountryResult, error) {
	regions, err := a.RegionTotals(ctx, root, dandisets)
	return CountryResult{Totals: regions.Totals.Countries(), Selection: regions.Selection}, err
}

// DailySeries loads the by_day.tsv of every selected dataset, ordered by date
// with duplicate dates summed.
func (a *Aggregator) DailySeries(ctx context.Context, root string, dandisets []string) (DailyResult, error) {
	series := entity.DatasetSeries{}

	selection, err := a.scan(ctx, root, dandisets, "temporal data", func(dataset string) error {
		records, err := a.summaries.ReadDailyRecords(ctx, root, dataset)
		if err != nil {
			return err
		}
		series[dataset] = entity.NormalizeDailySeries(records)
		return nil
	})

	return DailyResult{Series: series, Selection: selection}, err
}

// scan visita cada dandiset selecionado. Sem filtro, "archive" é ignorado.
// Arquivos ausentes são ignorados em silêncio; arquivos inválidos geram aviso.
func (a *Aggregator) scan(
	ctx context.Context,
	root string,
	dandisets []string,
	what string,
	visit func(dataset string) error,
) (Selection, error) {
	requested := toSet(dandisets)
	selection := Selection{Requested: sortedKeys(requested), Found: []string{}}

	datasets, err := a.summaries.ListDatasets(ctx, root)
	if err != nil {
		if errors.Is(err, types.ErrSummariesNotFound) {
			a.console.LogError("Cannot read access summaries: %s", err)
		}
		return selection, err
	}

	progress := a.console.ProgressWithTotal(len(datasets))
	for _, dataset := range datasets {
		progress.Increment()

		if requested != nil {
			if _, ok := requested[dataset]; !ok {
				continue
			}
		} else if dataset == ArchiveDataset {
			continue
		}

		if err := ctx.Err(); err != nil {
			progress.Stop()
			return selection, err
		}

		err := visit(dataset)
		if errors.Is(err, types.ErrFileNotFound) {
			continue
		}
		if err != nil {
			a.console.LogWarning("Error processing dandiset %s: %s", dataset, err)
			continue
		}
		selection.Found = append(selection.Found, dataset)
	}
	progress.Stop()

	if requested != nil {
		a.console.LogInfo("Processed %s for dandisets: %s", what, strings.Join(selection.Found, ", "))
		for _, id := range selection.Requested {
			if !contains(selection.Found, id) {
				selection.Missing = append(selection.Missing, id)
			}
		}
		if len(selection.Missing) > 0 {
			a.console.LogWarning("No %s found for dandisets: %s", what, strings.Join(selection.Missing, ", "))
		}
	} else {
		a.console.LogInfo("Processed %s for %d dandisets", what, len(selection.Found))
	}

	return selection, nil
}

// toSet devolve nil para uma lista vazia, o que significa "sem filtro".
func toSet(ids []string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" {
			set[id] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	if set == nil {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
