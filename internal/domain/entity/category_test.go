package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBoundaries(t *testing.T) {
	scale := DefaultVolumeScale()

	tests := []struct {
		name  string
		bytes int64
		key   string
	}{
		{"zero", 0, "low"},
		{"negative", -1, "low"},
		{"just below 10 MiB", 10*MiB - 1, "low"},
		{"10 MiB", 10 * MiB, "medium"},
		{"just below 10 GiB", 10*GiB - 1, "medium"},
		{"10 GiB", 10 * GiB, "high"},
		{"just below 10 TiB", 10*TiB - 1, "high"},
		{"10 TiB", 10 * TiB, "very-high"},
		{"1 PiB", PiB, "very-high"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, scale.Classify(tt.bytes).Key)
		})
	}
}

func TestIndexMatchesClassify(t *testing.T) {
	scale := DefaultVolumeScale()
	for _, b := range []int64{0, 10 * MiB, 10 * GiB, 10 * TiB} {
		assert.Equal(t, scale.Classify(b), scale[scale.Index(b)])
	}
	assert.Equal(t, 3, scale.Index(20*TiB))
}
