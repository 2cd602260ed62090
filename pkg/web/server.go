// Package web provides a real-time dashboard for the gaze tracker
package web

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/studiolark/gazekit/internal/log"
	"github.com/studiolark/gazekit/pkg/hub"
	"github.com/studiolark/gazekit/pkg/tracking"
)

// LogEntry represents a log line for the dashboard
type LogEntry struct {
	Time    string `json:"time"`
	Type    string `json:"type"` // info, gaze, error
	Message string `json:"message"`
}

// maxLogEntries bounds the in-memory log buffer
const maxLogEntries = 500

// Server is the dashboard server. It implements tracking.StateSink so the
// tracker can push state into it directly.
type Server struct {
	app     *fiber.App
	port    string
	tracker *tracking.Tracker

	// State
	state   tracking.State
	stateMu sync.RWMutex

	// Log buffer
	logs   []LogEntry
	logsMu sync.RWMutex

	// Hubs for websocket broadcast
	stateHub *hub.Hub
	logHub   *hub.Hub
}

// NewServer creates a dashboard server for the given tracker
func NewServer(port string, tracker *tracking.Tracker) *Server {
	s := &Server{
		port:     port,
		tracker:  tracker,
		logs:     make([]LogEntry, 0, maxLogEntries),
		stateHub: hub.New("state"),
		logHub:   hub.New("logs"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "gazekit dashboard",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	// Static files
	app.Static("/", "./web")

	// API routes
	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/logs", s.handleGetLogs)
	api.Get("/tuning", s.handleGetTuning)
	api.Post("/tuning", s.handleSetTuning)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	// WebSocket routes
	app.Get("/ws/status", websocket.New(s.handleStatusWS))
	app.Get("/ws/logs", websocket.New(s.handleLogsWS))

	s.app = app
	return s
}

// Start starts the web server
func (s *Server) Start() error {
	log.Info("dashboard listening", "port", s.port)

	go s.stateHub.Run()
	go s.logHub.Run()

	return s.app.Listen(":" + s.port)
}

// StartAsync starts the web server in a goroutine
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			log.Error("web server stopped", "err", err)
		}
	}()
}

// UpdateGaze stores the latest tracker state and broadcasts it.
// Part of the tracking.StateSink interface.
func (s *Server) UpdateGaze(state tracking.State) {
	s.stateMu.Lock()
	s.state = state
	s.stateMu.Unlock()

	s.stateHub.BroadcastJSON(state)
}

// AddLog adds a log entry and broadcasts it.
// Part of the tracking.StateSink interface.
func (s *Server) AddLog(logType, message string) {
	entry := LogEntry{
		Time:    time.Now().Format("15:04:05"),
		Type:    logType,
		Message: message,
	}

	s.logsMu.Lock()
	s.logs = append(s.logs, entry)
	if len(s.logs) > maxLogEntries {
		s.logs = s.logs[1:]
	}
	s.logsMu.Unlock()

	s.logHub.BroadcastJSON(entry)
}

// Shutdown gracefully stops the web server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
