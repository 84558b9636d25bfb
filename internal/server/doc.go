// Package server runs the HTTP and gRPC transports of the users server and
// stops them gracefully on shutdown signals.
package server
