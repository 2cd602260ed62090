package tracking

// Depth estimation constants, calibrated for a typical webcam field of view.
const (
	// When the inter-ear width fills ~20% of the frame, the viewer is ~1m
	// away. This gives us: distance = depthCalibrationConstant / faceWidth
	// At 20% width (0.2): distance = 0.2 / 0.2 = 1.0m
	// At 40% width (0.4): distance = 0.2 / 0.4 = 0.5m
	// At 10% width (0.1): distance = 0.2 / 0.1 = 2.0m
	depthCalibrationConstant = 0.2
)

// EstimateDepth calculates approximate viewer distance from the normalized
// inter-ear face width (0-1, as a fraction of frame width).
// Returns distance in meters, or 0 if face width is invalid.
//
// This uses a simple inverse relationship: distance ≈ k / faceWidth.
// Accuracy is approximately ±30% at distances under 3 meters.
func EstimateDepth(faceWidth float64) float64 {
	if faceWidth <= 0 || faceWidth > 1 {
		return 0 // Invalid or unknown
	}

	distance := depthCalibrationConstant / faceWidth

	// Clamp to reasonable range (0.3m to 5m)
	if distance < 0.3 {
		distance = 0.3
	}
	if distance > 5.0 {
		distance = 5.0
	}

	return distance
}

// DistanceCategory returns a human-readable distance category
func DistanceCategory(distance float64) string {
	if distance <= 0 {
		return "unknown"
	}
	if distance < 0.5 {
		return "very close"
	}
	if distance < 1.0 {
		return "close"
	}
	if distance < 2.0 {
		return "nearby"
	}
	if distance < 3.0 {
		return "moderate"
	}
	return "far"
}
