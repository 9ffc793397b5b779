package products

import (
	"time"

	"github.com/dmitrymomot/bindkit/core/server"
)

// Config holds the sample application configuration.
type Config struct {
	Server server.Config

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// PostgresURL enables the PostgreSQL store when set; otherwise the
	// in-memory store is used.
	PostgresURL    string `env:"PG_CONN_URL" envDefault:""`
	MigrationsPath string `env:"PG_MIGRATIONS_PATH" envDefault:""`

	// RedisURL enables the read-through cache decorator when set.
	RedisURL string        `env:"REDIS_URL" envDefault:""`
	CacheTTL time.Duration `env:"PRODUCT_CACHE_TTL" envDefault:"5m"`
}
