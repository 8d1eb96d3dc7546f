package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/catalystneuro/dandi-access-vis/internal/domain/entity"
	"github.com/catalystneuro/dandi-access-vis/internal/domain/repository"
	"github.com/catalystneuro/dandi-access-vis/pkg/bytesize"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// --- Gráficos ---

func (r *ExportRepositoryImpl) ExportChoropleth(chart entity.ChoroplethMap, outputFile string) ([]string, error) {
	return exportChart(outputFile, chart.Title, choroplethWidth, choroplethHeight, func(c Canvas) {
		DrawChoropleth(c, chart)
	})
}

func (r *ExportRepositoryImpl) ExportScatterMap(chart entity.ScatterMap, outputFile string) ([]string, error) {
	return exportChart(outputFile, chart.Title, scatterWidth, scatterHeight, func(c Canvas) {
		DrawScatterMap(c, chart)
	})
}

func (r *ExportRepositoryImpl) ExportTemporalChart(chart entity.TemporalChart, outputFile string) ([]string, error) {
	return exportChart(outputFile, chart.Title, temporalWidth, temporalHeight, func(c Canvas) {
		DrawTemporalChart(c, chart)
	})
}

// exportChart desenha o gráfico em SVG (ou PNG, pela extensão) no caminho
// pedido e em PDF ao lado. Um caminho terminado em .pdf gera apenas o PDF.
func exportChart(outputFile, title string, width, height float64, draw func(Canvas)) ([]string, error) {
	if err := ensureDir(outputFile); err != nil {
		return nil, err
	}

	var paths []string
	ext := filepath.Ext(outputFile)
	switch {
	case strings.EqualFold(ext, ".pdf"):
	case strings.EqualFold(ext, ".png"):
		path, err := writePNG(outputFile, width, height, draw)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	default:
		path, err := writeSVG(outputFile, title, width, height, draw)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	pdfFile := strings.TrimSuffix(outputFile, ext) + ".pdf"
	path, err := writePDF(pdfFile, title, width, height, draw)
	if err != nil {
		return paths, err
	}
	return append(paths, path), nil
}

func writeSVG(outputFile, title string, width, height float64, draw func(Canvas)) (string, error) {
	file, err := os.Create(outputFile)
	if err != nil {
		return "", fmt.Errorf("error creating SVG file: %w", err)
	}
	defer file.Close()

	canvas := NewSVGCanvas(file, width, height)
	canvas.Title(title)
	draw(canvas)
	canvas.End()

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("error writing SVG file: %w", err)
	}
	return filepath.Abs(outputFile)
}

func writePNG(outputFile string, width, height float64, draw func(Canvas)) (string, error) {
	canvas := NewPNGCanvas(width, height)
	draw(canvas)

	file, err := os.Create(outputFile)
	if err != nil {
		return "", fmt.Errorf("error creating PNG file: %w", err)
	}
	defer file.Close()

	if err := canvas.Write(file); err != nil {
		return "", fmt.Errorf("error encoding PNG file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("error writing PNG file: %w", err)
	}
	return filepath.Abs(outputFile)
}

func writePDF(outputFile, title string, width, height float64, draw func(Canvas)) (string, error) {
	canvas := NewPDFCanvas(width, height)
	canvas.SetTitle(title)
	draw(canvas)

	if err := canvas.Save(outputFile); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}
	return filepath.Abs(outputFile)
}

// --- Tabelas agregadas ---

func (r *ExportRepositoryImpl) ExportTotalsToCSV(entries []entity.TotalEntry, keyHeader, outputFile string) (string, error) {
	if err := ensureDir(outputFile); err != nil {
		return "", err
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Write([]string{keyHeader, "bytes_sent", "formatted"})
	for _, e := range entries {
		writer.Write([]string{e.Key, strconv.FormatInt(e.Bytes, 10), bytesize.FormatInt(e.Bytes)})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error writing CSV data: %w", err)
	}

	return filepath.Abs(outputFile)
}

// totalRecord é a forma de cada entrada no JSON exportado.
type totalRecord struct {
	Key       string `json:"key"`
	BytesSent int64  `json:"bytes_sent"`
	Formatted string `json:"formatted"`
}

func (r *ExportRepositoryImpl) ExportTotalsToJSON(entries []entity.TotalEntry, outputFile string) (string, error) {
	if err := ensureDir(outputFile); err != nil {
		return "", err
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	records := make([]totalRecord, len(entries))
	for i, e := range entries {
		records[i] = totalRecord{Key: e.Key, BytesSent: e.Bytes, Formatted: bytesize.FormatInt(e.Bytes)}
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFile)
}

func ensureDir(outputFile string) error {
	dir := filepath.Dir(outputFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	return nil
}
