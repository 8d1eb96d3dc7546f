package usecase

import (
	"fmt"
	"strings"
)

// Caminhos padrão de saída de cada comando.
const (
	DefaultChoroplethOutput = "output/choropleth_map.svg"
	DefaultScatterOutput    = "output/scatter_map.svg"
	DefaultTemporalOutput   = "output/temporal_chart.svg"
)

// maxSuffixLength limita o sufixo de dandisets no nome do arquivo.
const maxSuffixLength = 50

// ResolveOutputPath appends the selected dandiset ids to the default output
// name so runs over different selections do not overwrite each other. An
// output chosen by the user is returned unchanged.
func ResolveOutputPath(output, defaultOutput string, dandisets []string) string {
	if len(dandisets) == 0 || output != defaultOutput {
		return output
	}

	base := strings.TrimSuffix(output, ".svg")
	if len(dandisets) == 1 {
		return fmt.Sprintf("%s_%s.svg", base, dandisets[0])
	}

	suffix := strings.Join(dandisets, "_")
	if len(suffix) > maxSuffixLength {
		suffix = fmt.Sprintf("%s_and_%d_others", dandisets[0], len(dandisets)-1)
	}
	return fmt.Sprintf("%s_%s.svg", base, suffix)
}

// ParseDandisetList splits a comma-separated list, dropping blanks.
func ParseDandisetList(values []string) []string {
	var ids []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if id := strings.TrimSpace(part); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
