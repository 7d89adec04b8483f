package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   Classification
	}{
		{"1080p", 1920, 1080, ClassificationLandscape},
		{"720p", 1280, 720, ClassificationLandscape},
		{"4k", 3840, 2160, ClassificationLandscape},
		{"near 16:9 within tolerance", 1710, 1000, ClassificationLandscape},
		{"vertical 1080p", 1080, 1920, ClassificationPortrait},
		{"vertical 720p", 720, 1280, ClassificationPortrait},
		{"near 9:16 within tolerance", 600, 1000, ClassificationPortrait},
		{"square", 1000, 1000, ClassificationOther},
		{"4:3", 1440, 1080, ClassificationOther},
		{"ultrawide", 2560, 1080, ClassificationOther},
		{"just outside landscape band", 1900, 1000, ClassificationOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.width, tt.height))
		})
	}
}
