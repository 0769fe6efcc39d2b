package config

import "time"

// CacheConfig drives the response cache middleware applied to the public
// catalog listing. Entries are keyed by route and query string.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: envStr("CACHE_ENABLED", "true") == "true",
		TTL:     envDur("CACHE_TTL", 30*time.Second),
		Prefix:  envStr("CACHE_PREFIX", "cache"),
	}
}
