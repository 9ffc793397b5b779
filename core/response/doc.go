// Package response provides HTTP response primitives built around the
// handler.Response function type. Responses are values describing how to
// render status, headers and body; nothing is written until the framework
// invokes them, which keeps handlers pure and testable.
//
// # Basic Responses
//
//	response.JSON(user)                            // 200, JSON body
//	response.JSONWithStatus(user, http.StatusCreated)
//	response.Status(http.StatusAccepted)           // status only, no body
//	response.NoContent()                           // 204
//
// # Streaming
//
// StreamJSON writes newline-delimited JSON, one element per flush, with
// bounded memory and natural backpressure. See StreamJSON for details.
//
// # Errors
//
// HTTPError carries a status code, machine-readable code and optional
// details. JSONErrorHandler converts any error into a structured JSON error
// response; unknown errors become a bare 500 with no internal details.
//
// # Decorators
//
// WithHeader and WithHeaders wrap an existing response with extra headers,
// e.g. a Location header on a 201:
//
//	response.WithHeader(
//		response.JSONWithStatus(p, http.StatusCreated),
//		"Location", "/products/42",
//	)
package response
