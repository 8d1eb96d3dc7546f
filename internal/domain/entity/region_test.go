package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCountryCode(t *testing.T) {
	tests := []struct {
		region string
		code   string
		ok     bool
	}{
		{"US/California/Los Angeles", "US", true},
		{"DE", "DE", true},
		{"XX/Nowhere", "XX", true},
		{"AWS/us-east-1", "", false},
		{"GCP/europe-west1", "", false},
		{"GitHub", "", false},
		{"VPN", "", false},
		{"bogon", "", false},
		{"unknown", "", false},
		// Só os valores exatos são descartados.
		{"GitHub/Actions", "GitHub", true},
		{"unknown/place", "unknown", true},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			code, ok := ExtractCountryCode(tt.region)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestRegionTotalsCountries(t *testing.T) {
	totals := RegionTotals{}
	totals.Add("US/California", 100)
	totals.Add("US/Texas", 50)
	totals.Add("US/California", 25)
	totals.Add("DE/Berlin", 10)
	totals.Add("AWS/us-east-1", 1000)
	totals.Add("VPN", 7)

	assert.Equal(t, int64(1192), totals.Sum())
	assert.Equal(t, CountryTotals{"US": 175, "DE": 10}, totals.Countries())
}

func TestSortedBreaksTiesByKey(t *testing.T) {
	countries := CountryTotals{"FR": 5, "DE": 5, "US": 9, "JP": 1}

	assert.Equal(t, []TotalEntry{
		{Key: "US", Bytes: 9},
		{Key: "DE", Bytes: 5},
		{Key: "FR", Bytes: 5},
		{Key: "JP", Bytes: 1},
	}, countries.Sorted())

	assert.Len(t, countries.Top(2), 2)
	assert.Len(t, countries.Top(10), 4)
	assert.Empty(t, countries.Top(0))
}
