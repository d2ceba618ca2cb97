// Package http implements the HTTP transport layer of the registry.
//
// It exposes route wiring, request handlers, and middleware for the REST API.
// Cross-cutting concerns such as encoder authentication, request tracing,
// access logging, and response compression are handled in this package before
// requests are delegated to the service layer. Validation failures surface
// here as 422 responses carrying the full field-level result.
package http
