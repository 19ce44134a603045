package sigctx

import (
	"context"
	"os/signal"
	"syscall"
)

// NotifyContext derives a context cancelled on the usual
// termination signals.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
}
