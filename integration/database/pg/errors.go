package pg

import "errors"

// Domain-specific PostgreSQL errors for consistent error handling.
// Use errors.Is() to check error types.
var (
	ErrEmptyConnectionString   = errors.New("empty postgres connection string")
	ErrFailedToParseConnString = errors.New("failed to parse postgres connection string")
	ErrFailedToConnect         = errors.New("failed to connect to postgres")
	ErrHealthcheckFailed       = errors.New("postgres healthcheck failed")
	ErrMigrationsDirNotFound   = errors.New("migrations directory not found")
	ErrMigrationFailed         = errors.New("failed to apply migrations")
)
