// Package sigctx binds a context to the process termination signals.
package sigctx

import (
	"context"
	"os/signal"
	"syscall"
)

// NotifyContext returns a context cancelled on SIGINT, SIGTERM or
// SIGQUIT.
func NotifyContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
}
