package tracking

import (
	"testing"
	"time"

	"github.com/studiolark/gazekit/pkg/landmarks"
)

func TestPresence_ObserveCreatesRecord(t *testing.T) {
	p := NewPresence(DefaultConfig())

	p.Observe([]landmarks.Face{faceAt(0, 0.2)})

	if count := p.Count(); count != 1 {
		t.Errorf("Count() = %d, want 1", count)
	}

	recs := p.Records()
	if len(recs) != 1 {
		t.Fatalf("len(Records()) = %d, want 1", len(recs))
	}
	if recs[0].ID == "" {
		t.Error("record should have an assigned ID")
	}
	if recs[0].Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", recs[0].Confidence)
	}
}

func TestPresence_NearbyDetectionKeepsIdentity(t *testing.T) {
	p := NewPresence(DefaultConfig())

	p.Observe([]landmarks.Face{faceAt(0, 0.2)})
	id := p.Records()[0].ID

	// Small movement: same face.
	p.Observe([]landmarks.Face{faceAt(0.05, 0.2)})

	recs := p.Records()
	if len(recs) != 1 {
		t.Fatalf("len(Records()) = %d, want 1 (matched, not duplicated)", len(recs))
	}
	if recs[0].ID != id {
		t.Errorf("ID changed across nearby frames: %q -> %q", id, recs[0].ID)
	}
}

func TestPresence_DistantDetectionIsNewRecord(t *testing.T) {
	p := NewPresence(DefaultConfig())

	p.Observe([]landmarks.Face{faceAt(0, 0.1)})

	// A face far across the frame is somebody else.
	far := faceAt(0, 0.1)
	for i := range far.Points {
		far.Points[i].X += 0.4
	}
	p.Observe([]landmarks.Face{far})

	if count := p.Count(); count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}
}

func TestPresence_DecayForgets(t *testing.T) {
	p := NewPresence(DefaultConfig())
	p.Observe([]landmarks.Face{faceAt(0, 0.2)})

	// Decay well past the forget threshold.
	p.Decay(10)

	if count := p.Count(); count != 0 {
		t.Errorf("Count() after decay = %d, want 0", count)
	}
	if recs := p.Records(); len(recs) != 0 {
		t.Errorf("len(Records()) after decay = %d, want 0", len(recs))
	}
}

func TestPresence_ForgetTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConfidenceDecay = 0 // Isolate the timeout path
	cfg.ForgetTimeout = 10 * time.Millisecond
	p := NewPresence(cfg)

	p.Observe([]landmarks.Face{faceAt(0, 0.2)})
	time.Sleep(20 * time.Millisecond)
	p.Decay(0.02)

	if count := p.Count(); count != 0 {
		t.Errorf("Count() after timeout = %d, want 0", count)
	}
}

func TestPresence_SkipsUnsampleableFaces(t *testing.T) {
	p := NewPresence(DefaultConfig())

	// Two landmarks only - cannot sample a head triple.
	p.Observe([]landmarks.Face{{Points: []landmarks.Point{{}, {}}}})

	if count := p.Count(); count != 0 {
		t.Errorf("Count() = %d, want 0 (unsampleable face ignored)", count)
	}
}

func TestPresence_Clear(t *testing.T) {
	p := NewPresence(DefaultConfig())
	p.Observe([]landmarks.Face{faceAt(0, 0.2)})
	p.Clear()

	if count := p.Count(); count != 0 {
		t.Errorf("Count() after Clear = %d, want 0", count)
	}
}
