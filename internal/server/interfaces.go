package server

import "context"

// Server defines the lifecycle contract of the transport server managed by
// this package.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a stop signal
	// arrives, then shuts down gracefully. It returns an error only when the
	// listener could not be started or failed.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server within ctx.
	Shutdown(ctx context.Context) error
}
