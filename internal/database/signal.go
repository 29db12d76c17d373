// Package database provides DuckDB session management for tpcdsgen.
package database

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalHandler creates a context that is canceled on SIGTERM or SIGINT.
// The interactive prompt listens to this context so an interrupt during
// input collection turns into a clean cancellation instead of a hard kill.
// The returned cancel func unregisters the handler before cancelling, so
// after it runs the default signal disposition applies again.
func SetupSignalHandler() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
			// Context was cancelled elsewhere
		}
	}()

	stop := func() {
		signal.Stop(sigChan)
		cancel()
	}
	return ctx, stop
}
