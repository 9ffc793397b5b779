// Package logger provides structured logging built on log/slog with
// constructors for common configurations and type-safe attribute helpers.
//
// # Usage
//
//	log := logger.New()
//	log.Info("request handled",
//		logger.Method(r.Method),
//		logger.Path(r.URL.Path),
//		logger.StatusCode(200),
//		logger.Elapsed(start),
//	)
//
// Attribute helpers return an empty slog.Attr for zero values (nil error,
// empty ID), so call sites never need conditional logging.
package logger
