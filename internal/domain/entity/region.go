package entity

import (
	"sort"
	"strings"
)

// RegionRecord is a single row of a by_region.tsv summary.
type RegionRecord struct {
	Region    string `json:"region"`
	BytesSent int64  `json:"bytes_sent"`
}

// RegionTotals maps a full region string (e.g. "US/California/Los Angeles")
// to the cumulative bytes sent to it.
type RegionTotals map[string]int64

// CountryTotals maps a 2-letter country code to the cumulative bytes sent.
type CountryTotals map[string]int64

// TotalEntry is one key of an aggregated table with its byte count.
type TotalEntry struct {
	Key   string `json:"key"`
	Bytes int64  `json:"bytes_sent"`
}

// nonGeographicPrefixes marcam regiões de infraestrutura (provedores de nuvem).
var nonGeographicPrefixes = []string{"AWS/", "GCP/"}

// nonGeographicTags são valores literais que não representam um lugar.
var nonGeographicTags = []string{"GitHub", "VPN", "bogon", "unknown"}

// IsNonGeographicTag reports whether region is exactly one of the literal
// non-geographic tags. Cloud prefixes such as "AWS/" are not tags.
func IsNonGeographicTag(region string) bool {
	for _, tag := range nonGeographicTags {
		if region == tag {
			return true
		}
	}
	return false
}

// ExtractCountryCode returns the country code of a region string, or false
// when the region is non-geographic. The code is not validated against ISO.
func ExtractCountryCode(region string) (string, bool) {
	for _, prefix := range nonGeographicPrefixes {
		if strings.HasPrefix(region, prefix) {
			return "", false
		}
	}
	if IsNonGeographicTag(region) {
		return "", false
	}

	if idx := strings.Index(region, "/"); idx >= 0 {
		return region[:idx], true
	}
	return region, true
}

// Add acumula bytes para a região.
func (t RegionTotals) Add(region string, bytes int64) {
	t[region] += bytes
}

// Countries folds the region totals into country totals. Regions without a
// country code contribute nothing.
func (t RegionTotals) Countries() CountryTotals {
	countries := make(CountryTotals)
	for region, bytes := range t {
		code, ok := ExtractCountryCode(region)
		if !ok {
			continue
		}
		countries[code] += bytes
	}
	return countries
}

// Sum retorna o total de bytes de todas as regiões.
func (t RegionTotals) Sum() int64 {
	return sumValues(t)
}

// Sorted returns the entries ordered by bytes, largest first.
func (t RegionTotals) Sorted() []TotalEntry {
	return sortedEntries(t)
}

// Sum retorna o total de bytes de todos os países.
func (t CountryTotals) Sum() int64 {
	return sumValues(t)
}

// Sorted returns the entries ordered by bytes, largest first.
func (t CountryTotals) Sorted() []TotalEntry {
	return sortedEntries(t)
}

// Top returns at most n entries, largest first.
func (t CountryTotals) Top(n int) []TotalEntry {
	entries := t.Sorted()
	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

func sumValues[M ~map[string]int64](m M) int64 {
	var total int64
	for _, v := range m {
		total += v
	}
	return total
}

// sortedEntries ordena por volume decrescente, desempatando pela chave.
func sortedEntries[M ~map[string]int64](m M) []TotalEntry {
	entries := make([]TotalEntry, 0, len(m))
	for k, v := range m {
		entries = append(entries, TotalEntry{Key: k, Bytes: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Bytes != entries[j].Bytes {
			return entries[i].Bytes > entries[j].Bytes
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}
