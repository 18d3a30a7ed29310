package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/indiabills/console/internal/service"
)

// CatalogRefreshWorker repopulates the Redis catalog cache on an
// interval so product prices shown at checkout stay close to upstream.
type CatalogRefreshWorker struct {
	catalog  *service.CatalogService
	interval time.Duration
}

// NewCatalogRefreshWorker constructs a CatalogRefreshWorker.
func NewCatalogRefreshWorker(catalog *service.CatalogService, interval time.Duration) *CatalogRefreshWorker {
	return &CatalogRefreshWorker{catalog: catalog, interval: interval}
}

// Start begins the periodic refresh loop until context is canceled.
func (w *CatalogRefreshWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting catalog refresh worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.catalog.Refresh(ctx); err != nil {
				log.Error().Err(err).Msg("Catalog refresh failed")
			}
		case <-ctx.Done():
			log.Info().Msg("Catalog refresh worker stopped")
			return
		}
	}
}
