// Package tracking drives the per-frame gaze pipeline: sample the latest
// landmark frame, update the estimator, map to screen coordinates, and
// publish the result.
package tracking

import (
	"context"
	"sync"
	"time"

	"github.com/studiolark/gazekit/internal/log"
	"github.com/studiolark/gazekit/pkg/gaze"
	"github.com/studiolark/gazekit/pkg/landmarks"
)

// FrameSource supplies the most recent landmark frame. Implementations are
// latest-value only: no queueing, no ordering guarantee beyond "most recent
// available".
type FrameSource interface {
	// LatestFaces returns the newest frame, or ok=false when no fresh
	// frame is available.
	LatestFaces() ([]landmarks.Face, bool)

	// Connected reports whether the source currently has live input.
	Connected() bool
}

// StateSink receives published tracker state (e.g. the dashboard)
type StateSink interface {
	UpdateGaze(state State)
	AddLog(logType, message string)
}

// State is one published tracker snapshot
type State struct {
	Direction        string           `json:"direction"`
	OffsetX          float64          `json:"offset_x"`
	OffsetY          float64          `json:"offset_y"`
	Screen           gaze.ScreenPoint `json:"screen"`
	FaceWidth        float64          `json:"face_width"`
	FaceCount        int              `json:"face_count"`
	Distance         float64          `json:"distance_m"`
	DistanceCategory string           `json:"distance_category"`
	SourceConnected  bool             `json:"source_connected"`
	FaceVisible      bool             `json:"face_visible"`
}

// Tracker runs the gaze pipeline against a frame source.
// All estimator state is owned by the tracker's run loop; concurrent
// readers only ever see published copies.
type Tracker struct {
	config Config
	source FrameSource
	sink   StateSink

	// Core components
	estimator *gaze.Estimator
	mapper    *gaze.Mapper
	presence  *Presence

	mu            sync.RWMutex
	state         State
	lastDirection gaze.Direction

	sampleTickerReset chan time.Duration
}

// New creates a tracker reading from source
func New(config Config, source FrameSource) *Tracker {
	return &Tracker{
		config:            config,
		source:            source,
		estimator:         gaze.New(config.Gaze),
		mapper:            gaze.NewMapper(config.Gaze, config.Viewport),
		presence:          NewPresence(config),
		sampleTickerReset: make(chan time.Duration, 1),
	}
}

// SetStateSink sets the dashboard sink
func (t *Tracker) SetStateSink(sink StateSink) {
	t.sink = sink
}

// State returns the last published snapshot
func (t *Tracker) State() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// Presence returns the presence model for inspection
func (t *Tracker) Presence() *Presence {
	return t.presence
}

// Run drives the sample and decay loops until the context is cancelled
func (t *Tracker) Run(ctx context.Context) {
	sampleTicker := time.NewTicker(t.config.SampleInterval)
	decayTicker := time.NewTicker(t.config.DecayInterval)
	defer sampleTicker.Stop()
	defer decayTicker.Stop()

	log.Info("gaze tracker started",
		"sample_interval", t.config.SampleInterval,
		"smoothing", t.config.Gaze.SmoothingFactor,
		"threshold", t.config.Gaze.DirectionThreshold)

	lastDecay := time.Now()

	for {
		select {
		case <-ctx.Done():
			return

		case <-sampleTicker.C:
			t.sample()

		case <-decayTicker.C:
			dt := time.Since(lastDecay).Seconds()
			t.presence.Decay(dt)
			lastDecay = time.Now()

		case interval := <-t.sampleTickerReset:
			sampleTicker.Reset(interval)
		}
	}
}

// sample processes one frame: read the latest detection, update the
// estimator, map to screen, publish. Every path produces some usable
// output; a frame with no face carries the prior estimate forward with
// the direction reset to center.
func (t *Tracker) sample() {
	faces, fresh := t.source.LatestFaces()

	t.mu.Lock()

	var est gaze.Estimate
	visible := false

	if fresh && len(faces) > 0 {
		t.presence.Observe(faces)

		if head, ok := landmarks.SampleHead(bestFace(faces)); ok {
			est, visible = t.estimator.Update(head)
		}
	}

	if !visible {
		est = t.estimator.Miss()
	}

	distance := EstimateDepth(est.FaceWidth)
	state := State{
		Direction:        est.Direction.String(),
		OffsetX:          est.OffsetX,
		OffsetY:          est.OffsetY,
		Screen:           t.mapper.Map(est),
		FaceWidth:        est.FaceWidth,
		FaceCount:        t.presence.Count(),
		Distance:         distance,
		DistanceCategory: DistanceCategory(distance),
		SourceConnected:  t.source.Connected(),
		FaceVisible:      visible,
	}
	t.state = state

	transition := est.Direction != t.lastDirection
	t.lastDirection = est.Direction

	t.mu.Unlock()

	if transition && t.config.LogTransitions {
		log.Info("gaze direction changed",
			"direction", state.Direction,
			"offset_x", state.OffsetX)
		if t.sink != nil {
			t.sink.AddLog("gaze", "direction: "+state.Direction)
		}
	}

	if t.sink != nil {
		t.sink.UpdateGaze(state)
	}
}

// bestFace picks the detection to track when several faces are in frame:
// highest confidence, matching the detector-side selection policy.
func bestFace(faces []landmarks.Face) landmarks.Face {
	best := faces[0]
	for _, f := range faces[1:] {
		if f.Confidence > best.Confidence {
			best = f
		}
	}
	return best
}
