package config

import (
	"os"
	"time"
)

// Server captures process-level configuration so main stays lean.
type Server struct {
	Addr     string
	RedisURL string // empty means the in-memory response cache is used
	CacheTTL time.Duration
	Ayanamsa string // default ayanamsa name when a request omits one
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	addr := os.Getenv("JYOTISH_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	ttl := 6 * time.Hour
	if v := os.Getenv("JYOTISH_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			ttl = d
		}
	}

	ayanamsa := os.Getenv("JYOTISH_AYANAMSA")
	if ayanamsa == "" {
		ayanamsa = "KP"
	}

	return Server{
		Addr:     addr,
		RedisURL: os.Getenv("JYOTISH_REDIS_URL"),
		CacheTTL: ttl,
		Ayanamsa: ayanamsa,
	}
}
