package gaze

// Config holds all tunable parameters for gaze estimation
type Config struct {
	// Smoothing
	SmoothingFactor float64 // Weight of the previous smoothed value (0-1, higher = more lag, less jitter)

	// Classification
	DirectionThreshold float64 // Classify Left/Right beyond this offset (fraction of face width)

	// Degenerate-frame guard
	MinFaceWidth float64 // Skip frames with inter-ear distance below this

	// Screen mapping
	RangeMultiplierX float64 // How far a small head turn swings the mapped X
	RangeMultiplierY float64 // Same for Y
}

// DefaultConfig returns the recommended configuration for responsive estimation
func DefaultConfig() Config {
	return Config{
		SmoothingFactor:    0.4,  // 60% new, 40% old
		DirectionThreshold: 0.15, // ~15% of face width off center
		MinFaceWidth:       1e-6,
		RangeMultiplierX:   2.0,
		RangeMultiplierY:   2.0,
	}
}

// SmoothConfig returns a configuration for slower, steadier output
func SmoothConfig() Config {
	cfg := DefaultConfig()
	cfg.SmoothingFactor = 0.7    // More lag, much less jitter
	cfg.DirectionThreshold = 0.2 // Harder to trigger a direction change
	return cfg
}

// ResponsiveConfig returns a configuration that trusts new readings more
func ResponsiveConfig() Config {
	cfg := DefaultConfig()
	cfg.SmoothingFactor = 0.2
	cfg.DirectionThreshold = 0.1
	return cfg
}
