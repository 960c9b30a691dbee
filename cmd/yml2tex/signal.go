package main

import (
	"context"
	"os/signal"
)

// notifyContext returns a context canceled when one of shutdownSignals is
// received. Call stop() to release resources.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
