// Package protocol defines the WebSocket message types exchanged with an
// external landmark detector process. The detector pushes one landmarks
// message per processed frame; the consumer keeps only the most recent one.
package protocol

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/studiolark/gazekit/pkg/landmarks"
)

// MessageType identifies the type of WebSocket message
type MessageType string

const (
	// Detector → gazed messages
	TypeLandmarks MessageType = "landmarks" // One frame of face landmark sets
	TypeStatus    MessageType = "status"    // Detector health/state

	// Bidirectional
	TypePing MessageType = "ping" // Health check
	TypePong MessageType = "pong" // Health check response
)

// Message is the base wrapper for all WebSocket messages
type Message struct {
	Type      MessageType     `json:"type"`
	Timestamp int64           `json:"ts,omitempty"` // Unix milliseconds
	Data      json.RawMessage `json:"data,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(msgType MessageType, data interface{}) (*Message, error) {
	var rawData json.RawMessage
	if data != nil {
		var err error
		rawData, err = json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal message data: %w", err)
		}
	}

	return &Message{
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
		Data:      rawData,
	}, nil
}

// ParseData unmarshals the message data into the provided struct
func (m *Message) ParseData(v interface{}) error {
	if m.Data == nil {
		return nil
	}
	return json.Unmarshal(m.Data, v)
}

// Bytes returns the JSON-encoded message
func (m *Message) Bytes() ([]byte, error) {
	return json.Marshal(m)
}

// ParseMessage parses a JSON message from bytes
func ParseMessage(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}
	return &msg, nil
}

// LandmarksData carries one frame of detections. Faces may be empty - a
// frame with nobody in view is a normal message, not an error.
type LandmarksData struct {
	Faces   []landmarks.Face `json:"faces"`
	FrameID uint64           `json:"frame_id,omitempty"`
	Width   int              `json:"width,omitempty"`  // Source frame width in pixels
	Height  int              `json:"height,omitempty"` // Source frame height in pixels
}

// StatusData reports detector-side health
type StatusData struct {
	Connected bool    `json:"connected"`
	FPS       float64 `json:"fps,omitempty"`
	Model     string  `json:"model,omitempty"`
}

// NewLandmarksMessage creates a landmarks message for one frame
func NewLandmarksMessage(faces []landmarks.Face, frameID uint64) (*Message, error) {
	return NewMessage(TypeLandmarks, LandmarksData{
		Faces:   faces,
		FrameID: frameID,
	})
}

// NewPingMessage creates a ping message
func NewPingMessage() (*Message, error) {
	return NewMessage(TypePing, nil)
}

// NewPongMessage creates a pong message
func NewPongMessage() (*Message, error) {
	return NewMessage(TypePong, nil)
}
