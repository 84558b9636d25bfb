// Package http implements the HTTP transport of the users server.
//
// It exposes the users endpoint read by the client, the static assets the
// client loads its runtime configuration from, and the version endpoint.
// Request tracing, access logging, response compression and rate limiting
// are applied here before requests reach the service layer.
package http
