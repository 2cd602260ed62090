// Package gaze estimates horizontal gaze direction from face landmarks.
//
// The estimator turns an (ear, ear, nose) triple into a unitless offset
// normalized by inter-ear distance, low-pass filters it across frames, and
// classifies it into a discrete direction. It is single-writer: one Update
// or Miss call per rendered frame, from one goroutine.
package gaze

import (
	"math"

	"github.com/studiolark/gazekit/pkg/landmarks"
)

// Direction is the discrete gaze classification
type Direction int

const (
	Center Direction = iota
	Left
	Right
)

// String returns the direction label for logging and the wire format
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "center"
	}
}

// Estimate is one frame's gaze output. Offsets are unitless ratios
// normalized by face width, so they stay stable as the viewer moves
// closer to or further from the camera.
type Estimate struct {
	OffsetX   float64   `json:"offset_x"`
	OffsetY   float64   `json:"offset_y"`
	Direction Direction `json:"-"`
	FaceWidth float64   `json:"face_width"` // Normalized inter-ear distance
}

// Estimator converts sampled head landmarks into smoothed gaze estimates.
// The previous frame's smoothed offsets are the only state carried across
// frames. Construct with New; the zero value is not usable.
type Estimator struct {
	config Config

	smoothedX float64
	smoothedY float64
	hasSample bool

	last Estimate
}

// New creates an estimator with the given configuration
func New(config Config) *Estimator {
	return &Estimator{config: config}
}

// Update computes the estimate for one frame from sampled head landmarks.
// Returns ok=false for a degenerate frame (ears coincident); the frame is
// skipped and the previous output carried forward, per the one recoverable
// condition this package has. It never returns an error and never panics.
func (e *Estimator) Update(head landmarks.HeadPoints) (Estimate, bool) {
	faceWidth := math.Abs(head.LeftEar.X - head.RightEar.X)
	if faceWidth < e.config.MinFaceWidth {
		return e.last, false
	}

	earCenterX := (head.LeftEar.X + head.RightEar.X) / 2
	earCenterY := (head.LeftEar.Y + head.RightEar.Y) / 2

	rawX := (head.Nose.X - earCenterX) / faceWidth
	rawY := (head.Nose.Y - earCenterY) / faceWidth

	if e.hasSample {
		e.smoothedX = lerp(e.smoothedX, rawX, 1-e.config.SmoothingFactor)
		e.smoothedY = lerp(e.smoothedY, rawY, 1-e.config.SmoothingFactor)
	} else {
		e.smoothedX = rawX
		e.smoothedY = rawY
		e.hasSample = true
	}

	e.last = Estimate{
		OffsetX:   e.smoothedX,
		OffsetY:   e.smoothedY,
		Direction: e.classify(e.smoothedX),
		FaceWidth: faceWidth,
	}
	return e.last, true
}

// Miss records a frame with no usable detection. The discrete direction
// resets to Center immediately, but the continuous smoothed offsets are
// kept until the next valid sample so gaze does not snap when a face
// briefly drops out of frame.
func (e *Estimator) Miss() Estimate {
	e.last.Direction = Center
	return e.last
}

// Last returns the most recent estimate without advancing state
func (e *Estimator) Last() Estimate {
	return e.last
}

// Config returns the estimator's current configuration
func (e *Estimator) Config() Config {
	return e.config
}

// SetConfig swaps the tunables without disturbing the smoothing state.
// Used by the runtime tuning API.
func (e *Estimator) SetConfig(config Config) {
	e.config = config
}

// Reset clears the smoothing state entirely
func (e *Estimator) Reset() {
	e.smoothedX = 0
	e.smoothedY = 0
	e.hasSample = false
	e.last = Estimate{}
}

func (e *Estimator) classify(offset float64) Direction {
	switch {
	case offset < -e.config.DirectionThreshold:
		return Left
	case offset > e.config.DirectionThreshold:
		return Right
	default:
		return Center
	}
}

// lerp performs linear interpolation between two values.
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// clamp restricts a value to a range
func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
