package shutdown

import (
	"context"
	"os"
	"os/signal"

	"github.com/keturi/jobwatch/pkg/logging"
)

// Context returns a copy of parent that is cancelled when one of the given
// signals arrives. The run is a single pass, so a signal simply cancels the
// in-flight call and lets the process exit; nothing needs draining.
func Context(parent context.Context, log *logging.Logger, signals ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, signals...)

	go func() {
		defer signal.Stop(ch)
		select {
		case sig := <-ch:
			if log != nil {
				log.Info("shutdown signal received, cancelling run", "signal", sig.String())
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
