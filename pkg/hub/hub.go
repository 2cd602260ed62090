// Package hub fans dashboard events out to websocket clients. The web
// server runs one hub per stream (gaze state, logs); every event is a
// JSON-encoded payload broadcast to all connected clients.
package hub

import (
	"encoding/json"
	"sync/atomic"

	"github.com/studiolark/gazekit/internal/log"
)

// Hub owns a set of websocket clients and replicates each event to all of
// them. The client map is touched only by the Run goroutine; other
// goroutines talk to it through channels.
type Hub struct {
	// Name for logging
	name string

	clients map[*Client]struct{}

	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	// Client count mirror for the status endpoint, maintained by Run
	count atomic.Int64
}

// New creates a hub for one event stream
func New(name string) *Hub {
	return &Hub{
		name:       name,
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run drives the hub's event loop. Call it in a goroutine before serving
// websocket routes that attach clients.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.count.Store(int64(len(h.clients)))
			log.Debug("hub client connected", "hub", h.name, "total", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.count.Store(int64(len(h.clients)))
			log.Debug("hub client disconnected", "hub", h.name, "remaining", len(h.clients))

		case event := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- event:
				default:
					// Client can't keep up with the stream; drop it
					// rather than stall everyone else.
					delete(h.clients, client)
					close(client.send)
					log.Warn("hub dropped slow client", "hub", h.name)
				}
			}
			h.count.Store(int64(len(h.clients)))
		}
	}
}

// BroadcastJSON encodes v and queues it for every connected client.
// If the hub's event queue is full the update is dropped; the next one
// will carry fresher state anyway.
func (h *Hub) BroadcastJSON(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	select {
	case h.broadcast <- data:
	default:
		log.Warn("hub event queue full, dropping update", "hub", h.name)
	}
	return nil
}

// ClientCount reports how many dashboard clients are connected
func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}
