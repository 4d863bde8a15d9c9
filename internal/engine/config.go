package engine

import (
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	RedisURL               string // empty = in-memory sessions only
	SessionTTL             time.Duration
	SessionMaxEntries      int
	SessionCleanupInterval time.Duration
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (store reads the
// session settings from it). Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
