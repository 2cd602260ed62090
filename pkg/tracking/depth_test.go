package tracking

import (
	"math"
	"testing"
)

func TestEstimateDepth(t *testing.T) {
	tests := []struct {
		name      string
		faceWidth float64
		want      float64
	}{
		{"one meter at 20% width", 0.2, 1.0},
		{"half meter at 40% width", 0.4, 0.5},
		{"two meters at 10% width", 0.1, 2.0},
		{"clamped near", 0.9, 0.3},
		{"clamped far", 0.01, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateDepth(tt.faceWidth)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("EstimateDepth(%v) = %v, want %v", tt.faceWidth, got, tt.want)
			}
		})
	}
}

func TestEstimateDepth_Invalid(t *testing.T) {
	for _, w := range []float64{0, -0.1, 1.5} {
		if got := EstimateDepth(w); got != 0 {
			t.Errorf("EstimateDepth(%v) = %v, want 0 (invalid input)", w, got)
		}
	}
}

func TestDistanceCategory(t *testing.T) {
	tests := []struct {
		distance float64
		want     string
	}{
		{0, "unknown"},
		{0.4, "very close"},
		{0.8, "close"},
		{1.5, "nearby"},
		{2.5, "moderate"},
		{4.0, "far"},
	}

	for _, tt := range tests {
		if got := DistanceCategory(tt.distance); got != tt.want {
			t.Errorf("DistanceCategory(%v) = %q, want %q", tt.distance, got, tt.want)
		}
	}
}
