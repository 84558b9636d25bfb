package server

import "context"

// Server is the lifecycle contract of the users server.
type Server interface {
	// RunServer serves until a stop signal arrives.
	RunServer()

	// Run serves until ctx is done.
	Run(ctx context.Context) error

	// Shutdown gracefully stops every transport.
	Shutdown()
}
