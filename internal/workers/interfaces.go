// Package workers runs long-lived background jobs tied to a context.
//
// A Worker blocks in Run until its context is cancelled. Workers starts a
// group of them on their own goroutines and lets the caller wait for all of
// them to return during shutdown.
package workers

import "context"

// Worker is a background job. Run must return once ctx is done.
//
// Example implementation:
//
//	type ticker struct{ every time.Duration }
//
//	func (w *ticker) Run(ctx context.Context) {
//	    t := time.NewTicker(w.every)
//	    defer t.Stop()
//	    for {
//	        select {
//	        case <-ctx.Done():
//	            return
//	        case <-t.C:
//	            // periodic work
//	        }
//	    }
//	}
type Worker interface {
	Run(ctx context.Context)
}

// WorkerFunc adapts an ordinary function to the Worker interface.
type WorkerFunc func(ctx context.Context)

func (f WorkerFunc) Run(ctx context.Context) {
	f(ctx)
}
