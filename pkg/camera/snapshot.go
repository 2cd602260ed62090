// Package camera sources landmark frames from a camera's HTTP JPEG
// snapshot endpoint, running local face detection on each poll.
package camera

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/studiolark/gazekit/internal/httpc"
	"github.com/studiolark/gazekit/internal/log"
	"github.com/studiolark/gazekit/pkg/detect"
	"github.com/studiolark/gazekit/pkg/landmarks"
)

const (
	// DefaultPollInterval matches a 4 Hz detection cadence.
	DefaultPollInterval = 250 * time.Millisecond

	// staleAfter bounds how long a detection result stays usable.
	staleAfter = 750 * time.Millisecond

	maxSnapshotBytes = 8 << 20
)

// SnapshotSource polls a JPEG snapshot URL, runs the detector on each
// frame, and keeps the most recent result as a latest-value read.
type SnapshotSource struct {
	url      string
	detector detect.Detector
	interval time.Duration

	mu         sync.RWMutex
	faces      []landmarks.Face
	receivedAt time.Time
	connected  bool
}

// NewSnapshotSource creates a source polling url with the given detector.
// A zero interval uses DefaultPollInterval.
func NewSnapshotSource(url string, detector detect.Detector, interval time.Duration) *SnapshotSource {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &SnapshotSource{
		url:      url,
		detector: detector,
		interval: interval,
	}
}

// Run polls until the context is cancelled. It blocks; run it in a goroutine.
func (s *SnapshotSource) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.poll(); err != nil {
				s.setConnected(false)
				log.Debug("camera poll failed", "url", s.url, "err", err)
			}
		}
	}
}

func (s *SnapshotSource) poll() error {
	resp, err := httpc.Get(s.url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return fmt.Errorf("snapshot returned status %d", resp.StatusCode)
	}

	jpeg, err := io.ReadAll(io.LimitReader(resp.Body, maxSnapshotBytes))
	if err != nil {
		return err
	}

	detections, err := s.detector.Detect(jpeg)
	if err != nil {
		return fmt.Errorf("detect: %w", err)
	}

	faces := make([]landmarks.Face, 0, len(detections))
	for _, d := range detections {
		faces = append(faces, d.ToFace())
	}

	s.mu.Lock()
	s.faces = faces
	s.receivedAt = time.Now()
	s.connected = true
	s.mu.Unlock()

	return nil
}

// LatestFaces returns the most recent detection result. The second return
// is false when nothing has been captured yet or the result has gone stale.
func (s *SnapshotSource) LatestFaces() ([]landmarks.Face, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.receivedAt.IsZero() || time.Since(s.receivedAt) > staleAfter {
		return nil, false
	}
	return s.faces, true
}

// Connected reports whether the last poll succeeded
func (s *SnapshotSource) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

func (s *SnapshotSource) setConnected(v bool) {
	s.mu.Lock()
	s.connected = v
	s.mu.Unlock()
}
