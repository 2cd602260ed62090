package gaze

import (
	"math"
	"testing"
)

func TestMapper_Map(t *testing.T) {
	cfg := DefaultConfig()
	vp := Viewport{Width: 800, Height: 600}
	m := NewMapper(cfg, vp)

	tests := []struct {
		name  string
		est   Estimate
		wantX float64
		wantY float64
	}{
		{
			name:  "neutral gaze maps to center",
			est:   Estimate{},
			wantX: 400,
			wantY: 300,
		},
		{
			name:  "positive x offset swings toward the low-x side",
			est:   Estimate{OffsetX: 0.1},
			wantX: 400 - 0.1*800*cfg.RangeMultiplierX,
			wantY: 300,
		},
		{
			name:  "negative y offset swings down",
			est:   Estimate{OffsetY: -0.1},
			wantX: 400,
			wantY: 300 + 0.1*600*cfg.RangeMultiplierY,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt := m.Map(tt.est)
			if math.Abs(pt.X-tt.wantX) > 1e-9 {
				t.Errorf("X = %v, want %v", pt.X, tt.wantX)
			}
			if math.Abs(pt.Y-tt.wantY) > 1e-9 {
				t.Errorf("Y = %v, want %v", pt.Y, tt.wantY)
			}
		})
	}
}

func TestMapper_MapClampsToViewport(t *testing.T) {
	m := NewMapper(DefaultConfig(), Viewport{Width: 800, Height: 600})

	// Far out-of-range offsets must still land inside the viewport.
	offsets := []float64{-100, -1, -0.5, 0.5, 1, 100}
	for _, off := range offsets {
		pt := m.Map(Estimate{OffsetX: off, OffsetY: off})
		if pt.X < 0 || pt.X > 800 {
			t.Errorf("offset %v: X = %v out of [0, 800]", off, pt.X)
		}
		if pt.Y < 0 || pt.Y > 600 {
			t.Errorf("offset %v: Y = %v out of [0, 600]", off, pt.Y)
		}
	}
}
