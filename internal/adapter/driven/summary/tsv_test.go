package summary

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalystneuro/dandi-access-vis/internal/domain/entity"
	"github.com/catalystneuro/dandi-access-vis/internal/shared/types"
)

func TestParseRegionRecords(t *testing.T) {
	input := "region\tbytes_sent\nUS/California/Los Angeles\t5000000\nGitHub\t1000\n\t42\nDE\t500.0\n"

	records, err := parseRegionRecords(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []entity.RegionRecord{
		{Region: "US/California/Los Angeles", BytesSent: 5_000_000},
		{Region: "GitHub", BytesSent: 1000},
		{Region: "DE", BytesSent: 500},
	}, records)
}

func TestParseRegionRecordsColumnOrderIndependent(t *testing.T) {
	input := "bytes_sent\tregion\n7\tFR\n"

	records, err := parseRegionRecords(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []entity.RegionRecord{{Region: "FR", BytesSent: 7}}, records)
}

func TestParseRegionRecordsMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"missing column": "region\tbytes\nUS\t1\n",
		"bad number":     "region\tbytes_sent\nUS\tlots\n",
		"negative":       "region\tbytes_sent\nUS\t-1\n",
		"ragged row":     "region\tbytes_sent\nUS\t1\textra\n",
		"out of range":   "region\tbytes_sent\nUS\t1e30\n",
		"just past max":  "region\tbytes_sent\nUS\t9223372036854775808\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseRegionRecords(strings.NewReader(input))
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrMalformedFile)
		})
	}
}

func TestParseDailyRecords(t *testing.T) {
	input := "date\tbytes_sent\n2024-01-01\t10\n2024-01-03T00:00:00Z\t30\n2024-01-02 12:30:00\t20\n"

	records, err := parseDailyRecords(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), records[0].Date)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), records[1].Date)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), records[2].Date)
	assert.Equal(t, int64(20), records[2].BytesSent)
}

func TestParseDailyRecordsBadDate(t *testing.T) {
	_, err := parseDailyRecords(strings.NewReader("date\tbytes_sent\nyesterday\t1\n"))
	assert.ErrorIs(t, err, types.ErrMalformedFile)
}
