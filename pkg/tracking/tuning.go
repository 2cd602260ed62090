package tracking

import (
	"time"

	"github.com/studiolark/gazekit/pkg/gaze"
)

// TuningParams holds the real-time adjustable tracking parameters.
// These can be modified via the tuning API without restarting the daemon.
type TuningParams struct {
	SmoothingFactor    float64 `json:"smoothing_factor"`    // EMA weight on previous value (0.4=responsive, 0.7=smooth)
	DirectionThreshold float64 `json:"direction_threshold"` // Left/Right threshold (fraction of face width)
	RangeMultiplierX   float64 `json:"range_multiplier_x"`  // Screen mapping gain, X
	RangeMultiplierY   float64 `json:"range_multiplier_y"`  // Screen mapping gain, Y
	SampleHz           float64 `json:"sample_hz"`           // Tracker sample frequency (1-60 Hz)
}

// GetTuningParams returns the current tuning parameters.
func (t *Tracker) GetTuningParams() TuningParams {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cfg := t.estimator.Config()
	return TuningParams{
		SmoothingFactor:    cfg.SmoothingFactor,
		DirectionThreshold: cfg.DirectionThreshold,
		RangeMultiplierX:   cfg.RangeMultiplierX,
		RangeMultiplierY:   cfg.RangeMultiplierY,
		SampleHz:           1.0 / t.config.SampleInterval.Seconds(),
	}
}

// SetTuningParams updates tuning parameters at runtime.
// Only positive values are applied; zero fields leave the current value.
func (t *Tracker) SetTuningParams(params TuningParams) {
	t.mu.Lock()

	cfg := t.estimator.Config()
	if params.SmoothingFactor > 0 && params.SmoothingFactor < 1 {
		cfg.SmoothingFactor = params.SmoothingFactor
	}
	if params.DirectionThreshold > 0 {
		cfg.DirectionThreshold = params.DirectionThreshold
	}
	if params.RangeMultiplierX > 0 {
		cfg.RangeMultiplierX = params.RangeMultiplierX
	}
	if params.RangeMultiplierY > 0 {
		cfg.RangeMultiplierY = params.RangeMultiplierY
	}
	t.estimator.SetConfig(cfg)
	t.mapper = gaze.NewMapper(cfg, t.config.Viewport)
	t.config.Gaze = cfg

	t.mu.Unlock()

	// Sample rate is handled outside the lock via the ticker reset channel
	if params.SampleHz > 0 {
		t.setSampleHz(params.SampleHz)
	}
}

// setSampleHz updates the sample rate at runtime.
// Valid range: 1-60 Hz.
func (t *Tracker) setSampleHz(hz float64) {
	if hz < 1 {
		hz = 1
	}
	if hz > 60 {
		hz = 60
	}

	interval := time.Duration(float64(time.Second) / hz)

	t.mu.Lock()
	t.config.SampleInterval = interval
	t.mu.Unlock()

	// Non-blocking send; a pending update is fine to skip
	select {
	case t.sampleTickerReset <- interval:
	default:
	}
}
