package server

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server's runtime configuration, read from environment
// variables with optional .env overrides.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// RedisURL enables the shared Redis cache when set (redis:// URL).
	// Unset falls back to an in-process LRU cache.
	RedisURL string

	// MongoURI enables persistent layout storage when set. Unset falls
	// back to an in-memory store that is lost on restart.
	MongoURI string

	// MongoDatabase is the database name for layout storage.
	MongoDatabase string

	// CacheEntries bounds the in-process cache when Redis is not used.
	CacheEntries int

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// LoadConfig reads the server configuration from the environment.
// A .env file in the working directory is loaded first when present;
// real environment variables win over .env values.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Addr:            envOr("TIEBACK_ADDR", ":8080"),
		RedisURL:        os.Getenv("TIEBACK_REDIS_URL"),
		MongoURI:        os.Getenv("TIEBACK_MONGO_URI"),
		MongoDatabase:   envOr("TIEBACK_MONGO_DB", "tieback"),
		CacheEntries:    envInt("TIEBACK_CACHE_ENTRIES", 1024),
		ShutdownTimeout: envDuration("TIEBACK_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
