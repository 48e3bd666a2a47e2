// Package config loads application configuration from environment
// variables.  Every value has a working default so the demo starts
// with no environment at all; optional infrastructure (Redis, the
// message broker) simply stays disabled when unconfigured.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the core runtime settings.
type Config struct {
	Env          string        // application environment ("dev", "prod")
	Port         string        // HTTP port to listen on
	BookingsFile string        // path of the file-backed booking store
	BookingsKey  string        // storage key holding the booking collection
	SettleDelay  time.Duration // simulated payment settlement delay
}

// Load reads the core settings.
func Load() Config {
	return Config{
		Env:          getenv("APP_ENV", "dev"),
		Port:         getenv("APP_PORT", "8080"),
		BookingsFile: getenv("BOOKINGS_FILE", "data/bookings.json"),
		BookingsKey:  getenv("BOOKINGS_KEY", "bookings"),
		SettleDelay:  parseDur(getenv("PAYMENT_SETTLE_DELAY", "2s")),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
