package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/studiolark/gazekit/pkg/hub"
	"github.com/studiolark/gazekit/pkg/tracking"
)

// statusResponse is the /api/status payload: the latest tracker state plus
// how many dashboard clients are watching the state stream
type statusResponse struct {
	tracking.State
	Viewers int `json:"viewers"`
}

// handleStatus returns the latest tracker state
func (s *Server) handleStatus(c *fiber.Ctx) error {
	s.stateMu.RLock()
	state := s.state
	s.stateMu.RUnlock()

	return c.JSON(statusResponse{
		State:   state,
		Viewers: s.stateHub.ClientCount(),
	})
}

// handleGetLogs returns recent log entries
func (s *Server) handleGetLogs(c *fiber.Ctx) error {
	s.logsMu.RLock()
	defer s.logsMu.RUnlock()
	return c.JSON(s.logs)
}

// handleGetTuning returns the current tuning parameters
func (s *Server) handleGetTuning(c *fiber.Ctx) error {
	if s.tracker == nil {
		return c.Status(500).JSON(fiber.Map{"error": "tracker not configured"})
	}
	return c.JSON(s.tracker.GetTuningParams())
}

// handleSetTuning applies tuning parameters at runtime.
// Zero-valued fields leave the current setting untouched.
func (s *Server) handleSetTuning(c *fiber.Ctx) error {
	if s.tracker == nil {
		return c.Status(500).JSON(fiber.Map{"error": "tracker not configured"})
	}

	var params tracking.TuningParams
	if err := c.BodyParser(&params); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid tuning payload"})
	}

	s.tracker.SetTuningParams(params)
	s.AddLog("info", "tuning updated")

	return c.JSON(s.tracker.GetTuningParams())
}

// handleStatusWS streams tracker state updates
func (s *Server) handleStatusWS(c *websocket.Conn) {
	// Send current state before switching to the broadcast stream
	s.stateMu.RLock()
	c.WriteJSON(s.state)
	s.stateMu.RUnlock()

	client := hub.NewClient(s.stateHub, c)
	client.Run() // Blocks until the connection closes
}

// handleLogsWS streams log entries
func (s *Server) handleLogsWS(c *websocket.Conn) {
	// Replay the recent buffer first
	s.logsMu.RLock()
	for _, entry := range s.logs {
		c.WriteJSON(entry)
	}
	s.logsMu.RUnlock()

	client := hub.NewClient(s.logHub, c)
	client.Run() // Blocks until the connection closes
}
