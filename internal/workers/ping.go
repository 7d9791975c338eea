package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-book-keeper/internal/logger"
)

// PingWorker periodically pings the database to keep the connection pool
// warm and to surface connectivity loss in the logs before a request hits it.
type PingWorker struct {
	pinger   Pinger
	interval time.Duration
	log      *logger.Logger
}

// NewPingWorker constructs a PingWorker that pings pinger every interval.
func NewPingWorker(pinger Pinger, interval time.Duration, log *logger.Logger) *PingWorker {
	return &PingWorker{pinger: pinger, interval: interval, log: log}
}

// Run blocks, pinging the database on every tick until ctx is cancelled.
func (w *PingWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug().Msg("ping worker stopped")
			return
		case <-ticker.C:
			if err := w.pinger.PingContext(ctx); err != nil {
				w.log.Error().Err(err).Msg("database ping failed")
				continue
			}
			w.log.Debug().Msg("database ping ok")
		}
	}
}
