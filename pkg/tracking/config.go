package tracking

import (
	"time"

	"github.com/studiolark/gazekit/pkg/gaze"
)

// Config holds all tunable parameters for the gaze tracker
type Config struct {
	// Timing
	SampleInterval time.Duration // How often to sample the frame source
	DecayInterval  time.Duration // How often to decay presence confidence

	// Core estimation
	Gaze     gaze.Config
	Viewport gaze.Viewport

	// Presence
	ConfidenceDecay float64       // How fast presence confidence decays (per second)
	ForgetThreshold float64       // Remove records below this confidence
	ForgetTimeout   time.Duration // Remove records not seen for this long

	// Logging
	LogTransitions bool // Log discrete direction changes
}

// DefaultConfig returns the recommended configuration for responsive tracking
func DefaultConfig() Config {
	return Config{
		SampleInterval: 50 * time.Millisecond,  // 20 samples per second
		DecayInterval:  100 * time.Millisecond, // 10 decay updates per second

		Gaze:     gaze.DefaultConfig(),
		Viewport: gaze.Viewport{Width: 800, Height: 600},

		ConfidenceDecay: 0.3,              // Lose 30% confidence per second
		ForgetThreshold: 0.1,              // Forget below 10% confidence
		ForgetTimeout:   10 * time.Second, // Forget after 10 seconds

		LogTransitions: true,
	}
}

// SlowConfig returns a configuration for slower, steadier updates
func SlowConfig() Config {
	cfg := DefaultConfig()
	cfg.SampleInterval = 100 * time.Millisecond
	cfg.Gaze = gaze.SmoothConfig()
	return cfg
}
