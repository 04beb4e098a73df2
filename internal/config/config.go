package config

import (
	"os"
	"time"
)

// HTTP server tuning.
const (
	ReadTimeout    = 10 * time.Second
	WriteTimeout   = 10 * time.Second
	MaxHeaderBytes = 1 << 20
)

// Config carries the runtime settings read from the environment.
type Config struct {
	// ListenAddr is the HTTP listen address, e.g. ":8080".
	ListenAddr string
	// GinMode is "debug" or "release".
	GinMode string
	// SeedDemo loads the demo properties and users at startup.
	SeedDemo bool
}

// Load reads the configuration from environment variables, applying
// defaults for anything unset.
func Load() Config {
	cfg := Config{
		ListenAddr: ":8080",
		GinMode:    "debug",
		SeedDemo:   true,
	}
	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		cfg.GinMode = mode
	}
	if seed := os.Getenv("SEED_DEMO"); seed == "false" || seed == "0" {
		cfg.SeedDemo = false
	}
	return cfg
}
