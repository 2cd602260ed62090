package gaze

import (
	"math"
	"testing"

	"github.com/studiolark/gazekit/pkg/landmarks"
)

// head builds a sampled triple with ears at noseX±width/2 and the nose
// offset from the ear center by offset*width.
func head(offset, width float64) landmarks.HeadPoints {
	center := 0.5
	return landmarks.HeadPoints{
		LeftEar:  landmarks.Point{X: center - width/2, Y: 0.4},
		RightEar: landmarks.Point{X: center + width/2, Y: 0.4},
		Nose:     landmarks.Point{X: center + offset*width, Y: 0.4},
	}
}

func TestEstimator_Classification(t *testing.T) {
	cfg := DefaultConfig()
	const eps = 0.001

	tests := []struct {
		name   string
		offset float64
		want   Direction
	}{
		{"dead center", 0, Center},
		{"just inside threshold", cfg.DirectionThreshold - eps, Center},
		{"just past threshold", cfg.DirectionThreshold + eps, Right},
		{"just inside negative threshold", -(cfg.DirectionThreshold - eps), Center},
		{"just past negative threshold", -(cfg.DirectionThreshold + eps), Left},
		{"far right", 0.4, Right},
		{"far left", -0.4, Left},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(cfg)
			// First sample seeds the filter directly, so the smoothed
			// value equals the raw offset.
			est, ok := e.Update(head(tt.offset, 0.2))
			if !ok {
				t.Fatal("Update() ok = false, want true")
			}
			if est.Direction != tt.want {
				t.Errorf("Direction = %v, want %v (offset %v)", est.Direction, tt.want, est.OffsetX)
			}
		})
	}
}

func TestEstimator_SmoothingClosedForm(t *testing.T) {
	// After N frames of constant raw input R starting from smoothed value S0,
	// smoothed_N = R + (S0-R) * smoothingFactor^N.
	cfg := DefaultConfig()
	e := New(cfg)

	s0 := 0.0
	e.Update(head(s0, 0.2)) // Seed filter at S0

	r := 0.3
	n := 10
	var est Estimate
	for i := 0; i < n; i++ {
		est, _ = e.Update(head(r, 0.2))
	}

	want := r + (s0-r)*math.Pow(cfg.SmoothingFactor, float64(n))
	if math.Abs(est.OffsetX-want) > 1e-9 {
		t.Errorf("smoothed after %d frames = %v, want %v", n, est.OffsetX, want)
	}
}

func TestEstimator_Convergence(t *testing.T) {
	// 50 frames of constant input at the default smoothing factor must land
	// within 1% of the raw value.
	e := New(DefaultConfig())
	e.Update(head(0, 0.2))

	r := 0.25
	var est Estimate
	for i := 0; i < 50; i++ {
		est, _ = e.Update(head(r, 0.2))
	}

	if math.Abs(est.OffsetX-r) > 0.01*math.Abs(r) {
		t.Errorf("smoothed = %v, want within 1%% of %v", est.OffsetX, r)
	}
}

func TestEstimator_DegenerateFaceWidth(t *testing.T) {
	e := New(DefaultConfig())

	// Establish a prior estimate.
	prev, ok := e.Update(head(0.3, 0.2))
	if !ok {
		t.Fatal("seed Update() failed")
	}

	// Ears coincident: must report unavailable without dividing by zero,
	// and must not disturb the carried estimate.
	coincident := landmarks.HeadPoints{
		LeftEar:  landmarks.Point{X: 0.5, Y: 0.4},
		RightEar: landmarks.Point{X: 0.5, Y: 0.4},
		Nose:     landmarks.Point{X: 0.52, Y: 0.42},
	}
	est, ok := e.Update(coincident)
	if ok {
		t.Error("Update() with coincident ears ok = true, want false")
	}
	if est.OffsetX != prev.OffsetX {
		t.Errorf("carried OffsetX = %v, want %v", est.OffsetX, prev.OffsetX)
	}
	if math.IsNaN(est.OffsetX) || math.IsInf(est.OffsetX, 0) {
		t.Errorf("carried OffsetX is not finite: %v", est.OffsetX)
	}
}

func TestEstimator_MissResetsDirectionKeepsOffsets(t *testing.T) {
	e := New(DefaultConfig())

	est, _ := e.Update(head(0.4, 0.2))
	if est.Direction != Right {
		t.Fatalf("seed Direction = %v, want Right", est.Direction)
	}

	// Face drops out: discrete label resets to Center immediately, the
	// continuous smoothed value persists.
	missed := e.Miss()
	if missed.Direction != Center {
		t.Errorf("Miss() Direction = %v, want Center", missed.Direction)
	}
	if missed.OffsetX != est.OffsetX {
		t.Errorf("Miss() OffsetX = %v, want %v (unchanged)", missed.OffsetX, est.OffsetX)
	}

	// Next valid sample resumes smoothing from the preserved value.
	resumed, ok := e.Update(head(0.4, 0.2))
	if !ok {
		t.Fatal("resume Update() failed")
	}
	if resumed.Direction != Right {
		t.Errorf("resumed Direction = %v, want Right", resumed.Direction)
	}
}

func TestEstimator_OffsetsScaleInvariant(t *testing.T) {
	// The same head pose at different camera distances (different face
	// widths) must produce identical normalized offsets.
	near := New(DefaultConfig())
	far := New(DefaultConfig())

	a, _ := near.Update(head(0.2, 0.4))
	b, _ := far.Update(head(0.2, 0.1))

	if math.Abs(a.OffsetX-b.OffsetX) > 1e-9 {
		t.Errorf("offsets differ across face widths: %v vs %v", a.OffsetX, b.OffsetX)
	}
}

func TestEstimator_Reset(t *testing.T) {
	e := New(DefaultConfig())
	e.Update(head(0.3, 0.2))
	e.Reset()

	if last := e.Last(); last.OffsetX != 0 || last.Direction != Center {
		t.Errorf("after Reset, Last() = %+v, want zero estimate", last)
	}
}

func TestDirection_String(t *testing.T) {
	tests := []struct {
		d    Direction
		want string
	}{
		{Left, "left"},
		{Center, "center"},
		{Right, "right"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", int(tt.d), got, tt.want)
		}
	}
}
