// Package middleware provides HTTP middleware for cross-cutting concerns,
// implemented as type-safe handler.Middleware functions.
//
//	h := handler.Chain(getProduct,
//		middleware.RequestID[handler.Context](),
//		middleware.Logging[handler.Context](),
//	)
//
// Middlewares run in declaration order: the first listed wraps all the rest.
package middleware
