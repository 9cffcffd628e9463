package config

import (
	"time"

	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host       string
		Port       int
		LogQueries bool
	}
	Auth struct {
		// SessionTTL is a duration string such as "168h". Empty means
		// the application default.
		SessionTTL string
	}
}

// SessionTTL parses the configured session lifetime; zero when unset or
// invalid, letting the caller fall back to its default.
func (c *Config) SessionTTL() time.Duration {
	if c.Auth.SessionTTL == "" {
		return 0
	}

	ttl, err := time.ParseDuration(c.Auth.SessionTTL)
	if err != nil {
		return 0
	}

	return ttl
}
