// Package products is the sample application demonstrating the bindkit
// pipeline end to end: typed parameter binding through the binder registry,
// struct-tag binding and validation for request bodies, and outcome-based
// result resolution.
//
// Endpoints:
//
//	GET  /products                 paged listing (query binding)
//	GET  /products/{id}            keyed-entity binding, 200 or 404
//	GET  /products/page/{pageSize} NDJSON stream, one product per flush
//	POST /products                 JSON binding + validation, 201 with Location or 400
//
// The Store collaborator has in-memory, PostgreSQL (pgx) and Redis-cached
// implementations; handlers only see the interface.
package products
