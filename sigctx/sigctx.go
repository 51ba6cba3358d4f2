// Package sigctx provides a context that is canceled on SIGINT or SIGTERM.
package sigctx

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// New returns a context that is canceled the first time the process
// receives an interrupt. A second interrupt kills the process as usual.
func New() context.Context {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		cancel()
	}()
	return ctx
}
