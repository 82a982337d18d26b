// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, food request handlers, and middleware used by the
// REST API. Authentication, request tracing, access logging, response
// compression and the inbound per-IP limit on routes that reach Open Food
// Facts are handled here before requests are delegated to the service layer.
package http
