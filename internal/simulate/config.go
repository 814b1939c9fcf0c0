// Package simulate generates archetypal synthetic gestures, runs them
// against a live service instance, and verifies the labels that come
// back. It doubles as a smoke test and a light load generator.
package simulate

import (
	"runtime"
	"time"
)

// Default simulator configuration constants.
const (
	DefaultBaseURL = "http://localhost:9080"
	DefaultRounds  = 25
	DefaultTimeout = 30 * time.Second
)

// Config holds the simulator settings parsed from flags.
type Config struct {
	// BaseURL of the running service.
	BaseURL string

	// Rounds is how many jittered copies of each scenario to run.
	Rounds int

	// Workers is the number of concurrent submitters.
	Workers int

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// Bulk also exercises the async assignment pipeline.
	Bulk bool

	// Verbose enables per-request logging.
	Verbose bool
}

// NewConfig creates a Config with defaults.
func NewConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		Rounds:  DefaultRounds,
		Workers: runtime.NumCPU(),
		Timeout: DefaultTimeout,
		Bulk:    true,
	}
}
