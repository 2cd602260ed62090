// gaze-replay feeds a recorded landmark session through the estimator and
// prints the per-frame classification. Useful for tuning the smoothing
// factor and direction threshold offline.
//
// The input is one JSON landmarks message per line, in the same format the
// detector feed pushes over WebSocket.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/studiolark/gazekit/pkg/gaze"
	"github.com/studiolark/gazekit/pkg/landmarks"
	"github.com/studiolark/gazekit/pkg/protocol"
)

func main() {
	file := flag.String("file", "", "JSONL recording of landmark messages")
	smoothing := flag.Float64("smoothing", 0, "Override smoothing factor")
	threshold := flag.Float64("threshold", 0, "Override direction threshold")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: gaze-replay -file session.jsonl [-smoothing 0.4] [-threshold 0.15]")
		os.Exit(1)
	}

	f, err := os.Open(*file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	defer f.Close()

	cfg := gaze.DefaultConfig()
	if *smoothing > 0 && *smoothing < 1 {
		cfg.SmoothingFactor = *smoothing
	}
	if *threshold > 0 {
		cfg.DirectionThreshold = *threshold
	}

	estimator := gaze.New(cfg)
	mapper := gaze.NewMapper(cfg, gaze.Viewport{Width: 800, Height: 600})

	var frames, misses int
	transitions := make(map[string]int)
	last := ""

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		frames++

		msg, err := protocol.ParseMessage(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "frame %d: skipping bad line: %v\n", frames, err)
			continue
		}
		if msg.Type != protocol.TypeLandmarks {
			continue
		}

		var data protocol.LandmarksData
		if err := msg.ParseData(&data); err != nil {
			fmt.Fprintf(os.Stderr, "frame %d: bad payload: %v\n", frames, err)
			continue
		}

		est, ok := update(estimator, data.Faces)
		if !ok {
			misses++
		}

		pt := mapper.Map(est)
		dir := est.Direction.String()
		if dir != last {
			transitions[dir]++
			last = dir
		}

		fmt.Printf("frame %4d  dir=%-6s offset=(%+.3f, %+.3f)  screen=(%.0f, %.0f)\n",
			frames, dir, est.OffsetX, est.OffsetY, pt.X, pt.Y)
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "Error reading recording:", err)
		os.Exit(1)
	}

	fmt.Printf("\n%d frames, %d without a usable face\n", frames, misses)
	for dir, n := range transitions {
		fmt.Printf("  entered %-6s %d time(s)\n", dir, n)
	}
}

// update runs one frame through the estimator, applying the miss policy
// when no face is usable.
func update(estimator *gaze.Estimator, faces []landmarks.Face) (gaze.Estimate, bool) {
	for _, face := range faces {
		head, ok := landmarks.SampleHead(face)
		if !ok {
			continue
		}
		if est, ok := estimator.Update(head); ok {
			return est, true
		}
	}
	return estimator.Miss(), false
}
