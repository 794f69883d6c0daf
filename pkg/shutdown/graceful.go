package shutdown

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/avoronova/hh-scout/pkg/logging"
)

type Stoppable interface {
	Shutdown(ctx context.Context) error
}

// Graceful blocks until one of the signals arrives, releases the given
// resources, and exits the process. The interactive loop blocks on stdin,
// so once resources are released there is nothing left to unwind.
func Graceful(signals []os.Signal, s Stoppable, timeout time.Duration, log *logging.Logger) {
	sigCtx, stop := signal.NotifyContext(context.Background(), signals...)
	defer stop()

	<-sigCtx.Done()
	log.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Warn("shutdown completed with error", "err", err)
		os.Exit(1)
	}

	log.Info("shutdown completed")
	os.Exit(0)
}
