package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/catalystneuro/dandi-access-vis/internal/domain/entity"
	"github.com/catalystneuro/dandi-access-vis/internal/shared/types"
)

// fakeConsole grava as mensagens para inspeção nos testes.
type fakeConsole struct {
	infos    []string
	warnings []string
	errors   []string
	success  []string
	printed  strings.Builder
	bars     map[string][]types.VolumeBar
}

func newFakeConsole() *fakeConsole {
	return &fakeConsole{bars: map[string][]types.VolumeBar{}}
}

func (c *fakeConsole) Print(a ...interface{}) { fmt.Fprint(&c.printed, a...) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { fmt.Fprintf(&c.printed, format, a...) }
func (c *fakeConsole) Println(a ...interface{}) { fmt.Fprintln(&c.printed, a...) }

func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Status(string) types.StatusHandle { return noopHandle{} }
func (c *fakeConsole) ProgressWithTotal(int) types.ProgressHandle { return noopHandle{} }
func (c *fakeConsole) CreateTable() types.TableInterface { return &fakeTable{} }

func (c *fakeConsole) DisplayVolumeBars(title string, bars []types.VolumeBar) {
	c.bars[title] = bars
}

type noopHandle struct{}

func (noopHandle) Update(string) {}
func (noopHandle) Increment() {}
func (noopHandle) Stop() {}

type fakeTable struct {
	rows [][]string
}

func (t *fakeTable) AddColumn(string, ...interface{}) {}

func (t *fakeTable) AddRow(cells ...interface{}) {
	row := make([]string, len(cells))
	for i, c := range cells {
		row[i] = fmt.Sprint(c)
	}
	t.rows = append(t.rows, row)
}

func (t *fakeTable) Render() string {
	var lines []string
	for _, r := range t.rows {
		lines = append(lines, strings.Join(r, " | "))
	}
	return strings.Join(lines, "\n")
}

// fakeSummaries é uma árvore de summaries em memória.
type fakeSummaries struct {
	missingRoot bool
	regions     map[string][]entity.RegionRecord
	daily       map[string][]entity.DailyRecord
	broken      map[string]bool
	extraDirs   []string
}

func newFakeSummaries() *fakeSummaries {
	return &fakeSummaries{
		regions: map[string][]entity.RegionRecord{},
		daily:   map[string][]entity.DailyRecord{},
		broken:  map[string]bool{},
	}
}

func (f *fakeSummaries) ListDatasets(_ context.Context, _ string) ([]string, error) {
	if f.missingRoot {
		return nil, fmt.Errorf("%w: summaries", types.ErrSummariesNotFound)
	}
	set := map[string]bool{}
	for k := range f.regions {
		set[k] = true
	}
	for k := range f.daily {
		set[k] = true
	}
	for k := range f.broken {
		set[k] = true
	}
	for _, k := range f.extraDirs {
		set[k] = true
	}
	var out []string
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeSummaries) ReadRegionRecords(_ context.Context, _ string, dataset string) ([]entity.RegionRecord, error) {
	if f.broken[dataset] {
		return nil, fmt.Errorf("bad row: %w", types.ErrMalformedFile)
	}
	records, ok := f.regions[dataset]
	if !ok {
		return nil, types.ErrFileNotFound
	}
	return records, nil
}

func (f *fakeSummaries) ReadDailyRecords(_ context.Context, _ string, dataset string) ([]entity.DailyRecord, error) {
	if f.broken[dataset] {
		return nil, fmt.Errorf("bad row: %w", types.ErrMalformedFile)
	}
	records, ok := f.daily[dataset]
	if !ok {
		return nil, types.ErrFileNotFound
	}
	return records, nil
}

func (f *fakeSummaries) OpenFile(context.Context, string, string) (io.ReadCloser, error) {
	return nil, types.ErrFileNotFound
}

type fakeReferences struct {
	coords      entity.CoordinateTable
	names       map[string]string
	features    []entity.GeoFeature
	namesErr    error
	featuresErr error
}

func (f *fakeReferences) LoadCoordinates(context.Context, string) (entity.CoordinateTable, error) {
	return f.coords, nil
}

func (f *fakeReferences) LoadCountryNames(string) (map[string]string, error) {
	return f.names, f.namesErr
}

func (f *fakeReferences) LoadGeoFeatures(string) ([]entity.GeoFeature, error) {
	return f.features, f.featuresErr
}

type fakeExport struct {
	choropleth *entity.ChoroplethMap
	scatter    *entity.ScatterMap
	temporal   *entity.TemporalChart
	outputs    []string
	tables     map[string][]entity.TotalEntry
}

func newFakeExport() *fakeExport {
	return &fakeExport{tables: map[string][]entity.TotalEntry{}}
}

func (f *fakeExport) ExportChoropleth(chart entity.ChoroplethMap, outputFile string) ([]string, error) {
	f.choropleth = &chart
	f.outputs = append(f.outputs, outputFile)
	return []string{outputFile}, nil
}

func (f *fakeExport) ExportScatterMap(chart entity.ScatterMap, outputFile string) ([]string, error) {
	f.scatter = &chart
	f.outputs = append(f.outputs, outputFile)
	return []string{outputFile}, nil
}

func (f *fakeExport) ExportTemporalChart(chart entity.TemporalChart, outputFile string) ([]string, error) {
	f.temporal = &chart
	f.outputs = append(f.outputs, outputFile)
	return []string{outputFile}, nil
}

func (f *fakeExport) ExportTotalsToCSV(entries []entity.TotalEntry, _ string, outputFile string) (string, error) {
	f.tables[outputFile] = entries
	return outputFile, nil
}

func (f *fakeExport) ExportTotalsToJSON(entries []entity.TotalEntry, outputFile string) (string, error) {
	f.tables[outputFile] = entries
	return outputFile, nil
}

type fakeConfig struct {
	cfg *types.Config
	err error
}

func (f *fakeConfig) LoadConfigFile(string) (*types.Config, error) {
	return f.cfg, f.err
}
