package styles

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		name       string
		progress   float64
		wantFilled int
		wantLabel  string
	}{
		{name: "empty", progress: 0, wantFilled: 0, wantLabel: "  0.0%"},
		{name: "half", progress: 50, wantFilled: 5, wantLabel: " 50.0%"},
		{name: "full", progress: 100, wantFilled: 10, wantLabel: "100.0%"},
		{name: "above range", progress: 250, wantFilled: 10, wantLabel: "100.0%"},
		{name: "below range", progress: -30, wantFilled: 0, wantLabel: "  0.0%"},
		{name: "not a number", progress: math.NaN(), wantFilled: 0, wantLabel: "  0.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := RenderProgressBar(tt.progress, 10)
			assert.Equal(t, tt.wantFilled, strings.Count(bar, "█"))
			assert.Equal(t, 10-tt.wantFilled, strings.Count(bar, "░"))
			assert.True(t, strings.HasSuffix(bar, tt.wantLabel), "got %q", bar)
		})
	}
}
