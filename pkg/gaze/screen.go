package gaze

// Viewport is the destination surface for screen mapping
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ScreenPoint is a mapped on-screen coordinate, always within viewport bounds
type ScreenPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Mapper converts smoothed gaze offsets into on-screen coordinates via a
// linear range expansion around the viewport center. Output is hard-clamped
// to the viewport; out-of-range offsets are not an error.
type Mapper struct {
	viewport    Viewport
	multiplierX float64
	multiplierY float64
}

// NewMapper creates a mapper for the given viewport using the config's
// range multipliers
func NewMapper(config Config, viewport Viewport) *Mapper {
	return &Mapper{
		viewport:    viewport,
		multiplierX: config.RangeMultiplierX,
		multiplierY: config.RangeMultiplierY,
	}
}

// Viewport returns the destination viewport
func (m *Mapper) Viewport() Viewport {
	return m.viewport
}

// Map converts an estimate to a screen coordinate.
// Positive OffsetX means the nose points toward the image's high-x side,
// which mirrors to the left half of the screen from the viewer's side.
func (m *Mapper) Map(est Estimate) ScreenPoint {
	centerX := m.viewport.Width / 2
	centerY := m.viewport.Height / 2

	x := centerX - est.OffsetX*m.viewport.Width*m.multiplierX
	y := centerY - est.OffsetY*m.viewport.Height*m.multiplierY

	return ScreenPoint{
		X: clamp(x, 0, m.viewport.Width),
		Y: clamp(y, 0, m.viewport.Height),
	}
}
