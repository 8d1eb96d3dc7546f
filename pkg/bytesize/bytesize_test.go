package bytesize

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00 B"},
		{1023, "1023.00 B"},
		{1024, "1.00 KB"},
		{1073741824, "1.00 GB"},
		{1234567890, "1.15 GB"},
		{math.Pow(1024, 4), "1.00 TB"},
		{math.Pow(1024, 5), "1.00 PB"},
		{math.Pow(1024, 6), "1.00 EB"},
		{3 * math.Pow(1024, 7), "3072.00 EB"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Format(tc.in), "input %v", tc.in)
	}
}

func TestFormatUnitSelectionIsMonotonic(t *testing.T) {
	rank := map[string]int{"B": 0, "KB": 1, "MB": 2, "GB": 3, "TB": 4, "PB": 5, "EB": 6}
	prev := -1
	for exp := 0; exp <= 70; exp++ {
		out := Format(math.Pow(2, float64(exp)))
		var v float64
		var unit string
		_, err := fmt.Sscan(out, &v, &unit)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, rank[unit], prev, "2^%d -> %s", exp, out)
		prev = rank[unit]
	}
}

func TestFormatSmallValuesUnchanged(t *testing.T) {
	for _, v := range []float64{0, 1, 17.5, 512, 1023.99} {
		assert.Equal(t, fmt.Sprintf("%.2f B", v), Format(v))
	}
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "6.68 MB", FormatInt(7_000_000))
}
