// Package handler provides types and interfaces for HTTP request processing
// with type-safe context handling and middleware support. It defines the core
// abstractions for building HTTP handlers with custom context types and
// composable middleware chains.
//
// # Core Types
//
//	// Response function renders HTTP responses
//	type Response func(w http.ResponseWriter, r *http.Request) error
//
//	// Type-safe handler with custom context
//	type HandlerFunc[C Context] func(ctx C) Response
//
//	// Error handling function
//	type ErrorHandler[C Context] func(ctx C, err error)
//
//	// Middleware function for handler composition
//	type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
//
// Handlers return a Response instead of writing to the ResponseWriter
// directly, which keeps business logic separate from HTTP encoding and makes
// handlers trivial to test.
//
// # Router Integration
//
// Wrap converts a HandlerFunc into a standard http.HandlerFunc, so handlers
// plug into any routing library:
//
//	factory := func(w http.ResponseWriter, r *http.Request) handler.Context {
//		return handler.NewContext(w, r, chi.URLParam)
//	}
//
//	r := chi.NewRouter()
//	r.Get("/users/{id}", handler.Wrap(getUser, factory, errorHandler))
//
// # Custom Contexts
//
// Applications implement the Context interface to carry request-scoped data
// (auth info, loaded entities) through middleware into handlers without
// untyped context.Value lookups.
package handler
