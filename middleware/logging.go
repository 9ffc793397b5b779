package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/bindkit/core/handler"
	"github.com/dmitrymomot/bindkit/core/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for request logging (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowRequestThreshold logs requests exceeding it at warn level (0 disables)
	SlowRequestThreshold time.Duration
}

// Logging creates a request logging middleware with default configuration.
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithConfig creates a request logging middleware with custom configuration.
// Each request is logged after rendering with method, path, request ID and
// elapsed time. Rendering errors are logged and passed through to the error
// handler unchanged; this middleware only observes.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			req := ctx.Request()

			response := next(ctx)
			if response == nil {
				return nil
			}

			return func(w http.ResponseWriter, r *http.Request) error {
				err := response(w, r)

				level := cfg.LogLevel
				if cfg.SlowRequestThreshold > 0 && time.Since(start) > cfg.SlowRequestThreshold {
					level = slog.LevelWarn
				}

				cfg.Logger.Log(r.Context(), level, "request handled",
					logger.Method(req.Method),
					logger.Path(req.URL.Path),
					logger.RequestID(GetRequestID(ctx)),
					logger.Elapsed(start),
					logger.Error(err),
				)

				return err
			}
		}
	}
}
