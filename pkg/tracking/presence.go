package tracking

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/studiolark/gazekit/pkg/landmarks"
)

// matchRadius is the maximum normalized nose-position distance for
// associating a detection with an existing record across frames.
const matchRadius = 0.15

// Record is one face the presence model is following. Identity is a best
// effort: detections carry no IDs, so records are matched frame to frame
// by nose position.
type Record struct {
	ID         string    // Assigned on first sight
	X, Y       float64   // Last nose position (0-1 normalized)
	Confidence float64   // 0-1, decays over time when not seen
	LastSeen   time.Time // When last observed
	FaceWidth  float64   // Last normalized inter-ear width
}

// Presence maintains the set of recently seen faces with confidence that
// decays while they are out of frame. It answers "is anyone here" while a
// face briefly drops out, so the tracker can distinguish a blink of the
// detector from an empty room.
type Presence struct {
	mu      sync.RWMutex
	records map[string]*Record

	confidenceDecay float64
	forgetThreshold float64
	forgetTimeout   time.Duration
}

// NewPresence creates a presence model from the tracker config
func NewPresence(config Config) *Presence {
	return &Presence{
		records:         make(map[string]*Record),
		confidenceDecay: config.ConfidenceDecay,
		forgetThreshold: config.ForgetThreshold,
		forgetTimeout:   config.ForgetTimeout,
	}
}

// Observe updates the model with one frame of detections
func (p *Presence) Observe(faces []landmarks.Face) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()

	for _, face := range faces {
		head, ok := landmarks.SampleHead(face)
		if !ok {
			continue
		}

		faceWidth := math.Abs(head.LeftEar.X - head.RightEar.X)
		rec := p.match(head.Nose.X, head.Nose.Y)
		if rec == nil {
			rec = &Record{ID: uuid.New().String()}
			p.records[rec.ID] = rec
		}

		rec.X = head.Nose.X
		rec.Y = head.Nose.Y
		rec.Confidence = 1.0
		rec.LastSeen = now
		rec.FaceWidth = faceWidth
	}
}

// match finds the nearest record within the match radius.
// Caller must hold the lock.
func (p *Presence) match(x, y float64) *Record {
	var best *Record
	bestDist := matchRadius

	for _, rec := range p.records {
		dx := rec.X - x
		dy := rec.Y - y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist < bestDist {
			bestDist = dist
			best = rec
		}
	}
	return best
}

// Decay reduces confidence of all records and forgets stale ones
func (p *Presence) Decay(dt float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for id, rec := range p.records {
		rec.Confidence -= p.confidenceDecay * dt
		if rec.Confidence < 0 {
			rec.Confidence = 0
		}

		if rec.Confidence < p.forgetThreshold ||
			time.Since(rec.LastSeen) > p.forgetTimeout {
			delete(p.records, id)
		}
	}
}

// Count returns the number of faces currently considered present
func (p *Presence) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	count := 0
	for _, rec := range p.records {
		if rec.Confidence >= p.forgetThreshold {
			count++
		}
	}
	return count
}

// Records returns a copy of all current records
func (p *Presence) Records() []Record {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]Record, 0, len(p.records))
	for _, rec := range p.records {
		result = append(result, *rec)
	}
	return result
}

// Clear removes all records
func (p *Presence) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.records = make(map[string]*Record)
}
