package config

import "time"

// CacheConfig defines settings for the rendered-page cache middleware.
// When Enabled is false or no Redis client is available the middleware
// is a no-op.  TTL bounds staleness of the browse pages (availability
// counts shown there lag a booking by at most the TTL); MaxBodyBytes
// caps the size of a cached page.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads the cache settings with defaults.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      getenv("CACHE_ENABLED", "true") == "true",
		TTL:          parseDur(getenv("CACHE_TTL", "30s")),
		Prefix:       getenv("CACHE_PREFIX", "page"),
		MaxBodyBytes: atoi(getenv("CACHE_MAX_BODY_BYTES", "1048576")),
	}
}
