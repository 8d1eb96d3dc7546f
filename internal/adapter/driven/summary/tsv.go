package summary

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/catalystneuro/dandi-access-vis/internal/domain/entity"
	"github.com/catalystneuro/dandi-access-vis/internal/shared/types"
)

// Nomes dos arquivos e colunas produzidos pelo pipeline de logs.
const (
	RegionFile = "by_region.tsv"
	DailyFile  = "by_day.tsv"

	columnRegion    = "region"
	columnDate      = "date"
	columnBytesSent = "bytes_sent"
)

// dateLayouts são tentados em ordem ao interpretar a coluna date.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

type tsvTable struct {
	columns map[string]int
	rows    [][]string
}

func readTSV(r io.Reader) (*tsvTable, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrMalformedFile, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no header row", types.ErrMalformedFile)
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	return &tsvTable{columns: columns, rows: records[1:]}, nil
}

func (t *tsvTable) column(name string) (int, error) {
	idx, ok := t.columns[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing column %q", types.ErrMalformedFile, name)
	}
	return idx, nil
}

// parseRegionRecords lê um by_region.tsv. Linhas com região vazia são ignoradas.
func parseRegionRecords(r io.Reader) ([]entity.RegionRecord, error) {
	table, err := readTSV(r)
	if err != nil {
		return nil, err
	}
	regionIdx, err := table.column(columnRegion)
	if err != nil {
		return nil, err
	}
	bytesIdx, err := table.column(columnBytesSent)
	if err != nil {
		return nil, err
	}

	records := make([]entity.RegionRecord, 0, len(table.rows))
	for i, row := range table.rows {
		region := strings.TrimSpace(row[regionIdx])
		if region == "" {
			continue
		}
		bytes, err := parseBytes(row[bytesIdx])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", types.ErrMalformedFile, i+2, err)
		}
		records = append(records, entity.RegionRecord{Region: region, BytesSent: bytes})
	}
	return records, nil
}

// parseDailyRecords lê um by_day.tsv.
func parseDailyRecords(r io.Reader) ([]entity.DailyRecord, error) {
	table, err := readTSV(r)
	if err != nil {
		return nil, err
	}
	dateIdx, err := table.column(columnDate)
	if err != nil {
		return nil, err
	}
	bytesIdx, err := table.column(columnBytesSent)
	if err != nil {
		return nil, err
	}

	records := make([]entity.DailyRecord, 0, len(table.rows))
	for i, row := range table.rows {
		date, err := parseDate(row[dateIdx])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", types.ErrMalformedFile, i+2, err)
		}
		bytes, err := parseBytes(row[bytesIdx])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", types.ErrMalformedFile, i+2, err)
		}
		records = append(records, entity.DailyRecord{Date: date, BytesSent: bytes})
	}
	return records, nil
}

func parseBytes(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negative bytes_sent %d", n)
		}
		return n, nil
	}

	// Alguns resumos antigos gravam contagens como "1234.0".
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid bytes_sent %q", raw)
	}
	if f < 0 {
		return 0, fmt.Errorf("negative bytes_sent %q", raw)
	}
	if f >= math.MaxInt64 {
		return 0, fmt.Errorf("bytes_sent %q out of range", raw)
	}
	return int64(f), nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return entity.TruncateDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}
