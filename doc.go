// Package bindkit provides a toolkit for HTTP request-to-model binding and
// action result resolution in Go web applications. It implements modern Go
// patterns including generics for type safety, functional options for
// configuration, and interface-based design for flexibility and testability.
//
// # Package Organization
//
// Core framework packages:
//
//	github.com/dmitrymomot/bindkit/core/binder    - Request data binding: struct-tag binders and a typed binder registry
//	github.com/dmitrymomot/bindkit/core/config    - Type-safe environment variable loading
//	github.com/dmitrymomot/bindkit/core/handler   - Type-safe HTTP handler abstractions
//	github.com/dmitrymomot/bindkit/core/logger    - Structured logging built on slog
//	github.com/dmitrymomot/bindkit/core/outcome   - Normalized action outcomes resolved to HTTP responses
//	github.com/dmitrymomot/bindkit/core/response  - HTTP response primitives (JSON, streaming, errors)
//	github.com/dmitrymomot/bindkit/core/server    - HTTP server with graceful shutdown
//	github.com/dmitrymomot/bindkit/core/validator - Struct-tag validation with per-field errors
//
// Middleware:
//
//	github.com/dmitrymomot/bindkit/middleware - Request ID and logging middleware
//
// Integrations:
//
//	github.com/dmitrymomot/bindkit/integration/database/pg    - PostgreSQL via pgx with goose migrations
//	github.com/dmitrymomot/bindkit/integration/database/redis - Redis via go-redis
//
// Sample application:
//
//	github.com/dmitrymomot/bindkit/app/products - Products API exercising the full pipeline
//	github.com/dmitrymomot/bindkit/cmd/products - Its entry point
//
// # Request Pipeline
//
// Raw request values flow through binder resolution into typed handler
// arguments; the handler's outcome flows through result resolution into a
// status code, headers and body. The two halves stay separate on purpose:
// binders report "did we get a value", outcomes decide HTTP semantics.
package bindkit
