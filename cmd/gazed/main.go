// gazed runs the gaze tracking daemon: it consumes face landmarks from a
// detector feed (or a camera snapshot endpoint with local detection),
// estimates gaze direction per frame, and serves a live dashboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/studiolark/gazekit/internal/config"
	"github.com/studiolark/gazekit/internal/log"
	"github.com/studiolark/gazekit/pkg/camera"
	"github.com/studiolark/gazekit/pkg/detect"
	"github.com/studiolark/gazekit/pkg/feed"
	"github.com/studiolark/gazekit/pkg/gaze"
	"github.com/studiolark/gazekit/pkg/tracking"
	"github.com/studiolark/gazekit/pkg/web"
)

// runner is the common run-loop shape of both frame sources
type runner interface {
	tracking.FrameSource
	Run(ctx context.Context)
}

func main() {
	feedURL := flag.String("feed", "", "Landmark feed WebSocket URL (or set FEED_URL)")
	snapshotURL := flag.String("snapshot", "", "Camera JPEG snapshot URL (or set SNAPSHOT_URL)")
	smooth := flag.Bool("smooth", false, "Use the steadier smoothing preset")
	flag.Parse()

	config.Load()
	log.Init(config.LogLevel())

	source, err := buildSource(*feedURL, *snapshotURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		fmt.Fprintln(os.Stderr, "Usage: gazed -feed ws://detector:9001/landmarks")
		fmt.Fprintln(os.Stderr, "       gazed -snapshot http://camera/snapshot.jpg")
		os.Exit(1)
	}

	cfg := tracking.DefaultConfig()
	if *smooth {
		cfg = tracking.SlowConfig()
	}
	cfg.Viewport = gaze.Viewport{
		Width:  config.ViewportWidth(),
		Height: config.ViewportHeight(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("shutting down")
		cancel()
	}()

	tracker := tracking.New(cfg, source)
	tracker.SetTuningParams(tracking.TuningParams{SampleHz: config.SampleHz()})

	server := web.NewServer(config.WebPort(), tracker)
	tracker.SetStateSink(server)
	server.StartAsync()
	defer server.Shutdown()

	go source.Run(ctx)
	tracker.Run(ctx)
}

// buildSource picks the frame source from flags and environment.
// The remote feed wins when both are configured.
func buildSource(feedURL, snapshotURL string) (runner, error) {
	if feedURL == "" {
		feedURL = config.FeedURL()
	}
	if snapshotURL == "" {
		snapshotURL = config.SnapshotURL()
	}

	if feedURL != "" {
		return feed.NewClient(feedURL), nil
	}

	if snapshotURL != "" {
		detectCfg := detect.DefaultConfig()
		if path := config.ModelPath(); path != "" {
			detectCfg.ModelPath = path
		}
		detector, err := detect.NewYuNet(detectCfg)
		if err != nil {
			return nil, fmt.Errorf("detector: %w", err)
		}
		return camera.NewSnapshotSource(snapshotURL, detector, camera.DefaultPollInterval), nil
	}

	return nil, fmt.Errorf("no frame source configured")
}
