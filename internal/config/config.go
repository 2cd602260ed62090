// Package config provides environment configuration for gazekit commands.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults for the gazed daemon.
const (
	DefaultWebPort        = "8090"
	DefaultViewportWidth  = 800.0
	DefaultViewportHeight = 600.0
	DefaultSampleHz       = 20.0
)

// Load reads a .env file if one is present. Missing files are fine;
// the environment wins either way.
func Load() {
	godotenv.Load()
}

// Env returns the value of key or fallback if unset or empty.
func Env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// EnvFloat returns the float value of key or fallback if unset or invalid.
func EnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// FeedURL returns the landmark feed WebSocket URL from FEED_URL.
// Empty means no remote feed is configured.
func FeedURL() string {
	return os.Getenv("FEED_URL")
}

// SnapshotURL returns the camera JPEG snapshot URL from SNAPSHOT_URL.
// Empty means no local camera path is configured.
func SnapshotURL() string {
	return os.Getenv("SNAPSHOT_URL")
}

// WebPort returns the dashboard port from WEB_PORT or the default.
func WebPort() string {
	return Env("WEB_PORT", DefaultWebPort)
}

// LogLevel returns the log level from LOG_LEVEL or "info".
func LogLevel() string {
	return Env("LOG_LEVEL", "info")
}

// ViewportWidth returns the mapping viewport width from VIEWPORT_WIDTH.
func ViewportWidth() float64 {
	return EnvFloat("VIEWPORT_WIDTH", DefaultViewportWidth)
}

// ViewportHeight returns the mapping viewport height from VIEWPORT_HEIGHT.
func ViewportHeight() float64 {
	return EnvFloat("VIEWPORT_HEIGHT", DefaultViewportHeight)
}

// SampleHz returns the tracker sample rate from SAMPLE_HZ.
func SampleHz() float64 {
	return EnvFloat("SAMPLE_HZ", DefaultSampleHz)
}

// ModelPath returns the YuNet model path from MODEL_PATH.
// Empty falls back to the detector's default.
func ModelPath() string {
	return os.Getenv("MODEL_PATH")
}
