// Package feed consumes face landmark frames from an external detector
// process over WebSocket.
//
// The feed is a latest-value source: each incoming frame replaces the
// previous one and readers always see the most recent available. There is
// no queueing and no backpressure; a slow consumer simply skips frames.
package feed

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/studiolark/gazekit/internal/log"
	"github.com/studiolark/gazekit/pkg/landmarks"
	"github.com/studiolark/gazekit/pkg/protocol"
)

const (
	dialTimeout  = 10 * time.Second
	pingInterval = 30 * time.Second
	writeTimeout = 10 * time.Second
	reconnectMin = 500 * time.Millisecond
	reconnectMax = 10 * time.Second

	// StaleAfter is how long a frame stays usable. Past this the source
	// reports no detection rather than serving old landmarks.
	StaleAfter = 500 * time.Millisecond
)

// Client connects to a landmark detector's WebSocket endpoint and keeps
// the most recent frame available for the tracker.
type Client struct {
	url string

	mu         sync.RWMutex
	faces      []landmarks.Face
	receivedAt time.Time
	frameID    uint64
	connected  bool
}

// NewClient creates a feed client for the given ws:// URL
func NewClient(url string) *Client {
	return &Client{url: url}
}

// Run connects and consumes frames until the context is cancelled,
// reconnecting with backoff on failure. It blocks; run it in a goroutine.
func (c *Client) Run(ctx context.Context) {
	backoff := reconnectMin

	for {
		if ctx.Err() != nil {
			return
		}

		err := c.consume(ctx)
		c.setConnected(false)

		if ctx.Err() != nil {
			return
		}
		if err != nil {
			log.Warn("feed disconnected", "url", c.url, "err", err, "retry_in", backoff)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > reconnectMax {
			backoff = reconnectMax
		}
	}
}

// consume runs one connection until it drops
func (c *Client) consume(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: dialTimeout}

	conn, _, err := dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	c.setConnected(true)
	log.Info("feed connected", "url", c.url)

	// The keepalive goroutine and the read loop's pong replies both write to
	// the connection; gorilla allows a single writer at a time.
	var wsMutex sync.Mutex
	write := func(messageType int, data []byte) error {
		wsMutex.Lock()
		defer wsMutex.Unlock()
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		return conn.WriteMessage(messageType, data)
	}

	// Close the connection when the context ends so ReadMessage unblocks.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	// Keepalive pings
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := write(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		msg, err := protocol.ParseMessage(data)
		if err != nil {
			log.Debug("feed: dropping malformed message", "err", err)
			continue
		}

		switch msg.Type {
		case protocol.TypeLandmarks:
			var frame protocol.LandmarksData
			if err := msg.ParseData(&frame); err != nil {
				log.Debug("feed: dropping bad landmarks payload", "err", err)
				continue
			}
			c.store(frame)

		case protocol.TypePing:
			pong, _ := protocol.NewPongMessage()
			if b, err := pong.Bytes(); err == nil {
				write(websocket.TextMessage, b)
			}

		default:
			// Status and unknown types are informational only
		}
	}
}

// store replaces the latest frame
func (c *Client) store(frame protocol.LandmarksData) {
	c.mu.Lock()
	c.faces = frame.Faces
	c.frameID = frame.FrameID
	c.receivedAt = time.Now()
	c.mu.Unlock()
}

// LatestFaces returns the most recent frame. The second return is false
// when no frame has arrived yet or the latest one has gone stale.
func (c *Client) LatestFaces() ([]landmarks.Face, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.receivedAt.IsZero() || time.Since(c.receivedAt) > StaleAfter {
		return nil, false
	}
	return c.faces, true
}

// Connected reports whether the feed currently has a live connection
func (c *Client) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

func (c *Client) setConnected(v bool) {
	c.mu.Lock()
	c.connected = v
	c.mu.Unlock()
}
