package docstore

import (
	"time"

	"github.com/Alijeyrad/portfolio_backend/config"
)

// Config holds document store connection settings
type Config struct {
	URL  string
	Name string

	ConnectTimeoutSeconds         int
	ServerSelectionTimeoutSeconds int
	MaxPoolSize                   uint64
}

// Configured reports whether enough is set to open a connection.
func (c Config) Configured() bool {
	return c.URL != "" && c.Name != ""
}

// ConnectTimeout returns the connect timeout as a duration
func (c Config) ConnectTimeout() time.Duration {
	if c.ConnectTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.ConnectTimeoutSeconds) * time.Second
}

// ServerSelectionTimeout bounds how long an operation waits for a reachable server.
func (c Config) ServerSelectionTimeout() time.Duration {
	if c.ServerSelectionTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.ServerSelectionTimeoutSeconds) * time.Second
}

// FromCentralConfig converts central config.DatabaseConfig to package Config
func FromCentralConfig(c config.DatabaseConfig) Config {
	return Config{
		URL:                           c.URL,
		Name:                          c.Name,
		ConnectTimeoutSeconds:         c.ConnectTimeoutSeconds,
		ServerSelectionTimeoutSeconds: c.ServerSelectionTimeoutSeconds,
		MaxPoolSize:                   c.MaxPoolSize,
	}
}
