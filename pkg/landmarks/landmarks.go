// Package landmarks defines the face landmark types consumed by the gaze
// estimator and the sampler that pulls named keypoints out of a detection.
package landmarks

// Head landmark indices following the PoseNet/MoveNet convention.
// Detectors that emit a different layout adapt to this one at the edge.
const (
	Nose     = 0
	LeftEye  = 1
	RightEye = 2
	LeftEar  = 3
	RightEar = 4

	// NumHeadLandmarks is the minimum landmark count for head sampling.
	NumHeadLandmarks = 5
)

// Point is a detected 2D/3D position. Z is zero for detectors that only
// report image-plane coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// Face is one detection result: an ordered landmark list plus a confidence
// score. A Face is replaced wholesale every frame; no identity persists
// across frames beyond index position.
type Face struct {
	Points     []Point `json:"points"`
	Confidence float64 `json:"confidence"`
}

// At returns the landmark at index i. The second return is false when the
// index is out of range - a face partially out of frame is a normal case,
// not an error.
func (f Face) At(i int) (Point, bool) {
	if i < 0 || i >= len(f.Points) {
		return Point{}, false
	}
	return f.Points[i], true
}

// HeadPoints holds the three reference landmarks the gaze estimator needs.
type HeadPoints struct {
	LeftEar  Point
	RightEar Point
	Nose     Point
}

// SampleHead extracts the left ear, right ear and nose from a detection.
// Returns ok=false if any of the three is missing. No side effects.
func SampleHead(f Face) (HeadPoints, bool) {
	left, ok := f.At(LeftEar)
	if !ok {
		return HeadPoints{}, false
	}
	right, ok := f.At(RightEar)
	if !ok {
		return HeadPoints{}, false
	}
	nose, ok := f.At(Nose)
	if !ok {
		return HeadPoints{}, false
	}
	return HeadPoints{LeftEar: left, RightEar: right, Nose: nose}, true
}
