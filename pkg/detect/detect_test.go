package detect

import (
	"testing"

	"github.com/studiolark/gazekit/pkg/landmarks"
)

func TestSelectBest_Empty(t *testing.T) {
	if best := SelectBest(nil); best != nil {
		t.Errorf("SelectBest(nil) = %v, want nil", best)
	}
}

func TestSelectBest_Single(t *testing.T) {
	dets := []Detection{{X: 0.1, Y: 0.1, W: 0.2, H: 0.2, Confidence: 0.6}}
	best := SelectBest(dets)
	if best == nil {
		t.Fatal("SelectBest() = nil, want the only detection")
	}
	if best.Confidence != 0.6 {
		t.Errorf("Confidence = %v, want 0.6", best.Confidence)
	}
}

func TestSelectBest_ConfidenceWins(t *testing.T) {
	dets := []Detection{
		{W: 0.2, H: 0.2, Confidence: 0.5},
		{W: 0.2, H: 0.2, Confidence: 0.9},
	}
	best := SelectBest(dets)
	if best.Confidence != 0.9 {
		t.Errorf("best Confidence = %v, want 0.9", best.Confidence)
	}
}

func TestSelectBest_AreaBreaksNearTies(t *testing.T) {
	// Same confidence: the larger (closer) face should win.
	dets := []Detection{
		{W: 0.1, H: 0.1, Confidence: 0.8},
		{W: 0.4, H: 0.4, Confidence: 0.8},
	}
	best := SelectBest(dets)
	if best.W != 0.4 {
		t.Errorf("best W = %v, want 0.4 (larger face)", best.W)
	}
}

func TestSelectBest_AllZeroArea(t *testing.T) {
	// Degenerate boxes must still yield a selection, on confidence alone.
	dets := []Detection{
		{Confidence: 0.4},
		{Confidence: 0.7},
		{Confidence: 0.6},
	}
	best := SelectBest(dets)
	if best == nil {
		t.Fatal("SelectBest() = nil for non-empty zero-area input")
	}
	if best.Confidence != 0.7 {
		t.Errorf("best Confidence = %v, want 0.7", best.Confidence)
	}
}

func TestDetection_Center(t *testing.T) {
	d := Detection{X: 0.2, Y: 0.3, W: 0.2, H: 0.2}
	cx, cy := d.Center()
	if cx != 0.3 || cy != 0.4 {
		t.Errorf("Center() = (%v, %v), want (0.3, 0.4)", cx, cy)
	}
}

func TestDetection_ToFace(t *testing.T) {
	d := Detection{
		X: 0.3, Y: 0.2, W: 0.2, H: 0.25,
		Confidence: 0.85,
		RightEye:   landmarks.Point{X: 0.36, Y: 0.30},
		LeftEye:    landmarks.Point{X: 0.44, Y: 0.30},
		Nose:       landmarks.Point{X: 0.40, Y: 0.34},
	}

	face := d.ToFace()

	if len(face.Points) != landmarks.NumHeadLandmarks {
		t.Fatalf("len(Points) = %d, want %d", len(face.Points), landmarks.NumHeadLandmarks)
	}
	if face.Confidence != 0.85 {
		t.Errorf("Confidence = %v, want 0.85", face.Confidence)
	}

	head, ok := landmarks.SampleHead(face)
	if !ok {
		t.Fatal("SampleHead() on converted face failed")
	}

	// Ear proxies sit on the bounding box edges at eye height.
	if head.LeftEar.X != 0.3 {
		t.Errorf("LeftEar.X = %v, want bbox left edge 0.3", head.LeftEar.X)
	}
	if head.RightEar.X != 0.5 {
		t.Errorf("RightEar.X = %v, want bbox right edge 0.5", head.RightEar.X)
	}
	if head.LeftEar.Y != 0.30 {
		t.Errorf("LeftEar.Y = %v, want eye height 0.30", head.LeftEar.Y)
	}
	if head.Nose.X != 0.40 {
		t.Errorf("Nose.X = %v, want 0.40", head.Nose.X)
	}
}
