package workers

import (
	"context"
	"time"

	"github.com/jdcruz/rbi-registry/internal/logger"
)

// CatalogSource is the slice of the PSOC client the refresher needs.
type CatalogSource interface {
	RefreshCatalog(ctx context.Context) error
}

// CatalogRefresher periodically re-warms the local PSOC occupation-code
// cache so that validation keeps answering from memory even when the
// upstream search service has a bad day.
type CatalogRefresher struct {
	catalog  CatalogSource
	interval time.Duration
	logger   *logger.Logger
}

// NewCatalogRefresher returns a refresher ticking at interval, or nil when
// catalog is absent or interval is non-positive, so standalone installs can
// wire the result straight into [NewWorkers].
func NewCatalogRefresher(catalog CatalogSource, interval time.Duration, logger *logger.Logger) *CatalogRefresher {
	if catalog == nil || interval <= 0 {
		return nil
	}
	return &CatalogRefresher{
		catalog:  catalog,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the refresh loop in its own goroutine. The first refresh fires
// immediately so the cache is warm before the first form submission.
// Safe to call on a nil receiver; a disabled refresher simply does nothing.
func (c *CatalogRefresher) Run(ctx context.Context) {
	if c == nil {
		return
	}
	go func() {
		c.refresh(ctx)

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				c.logger.Info().Msg("catalog refresher stopped")
				return
			case <-ticker.C:
				c.refresh(ctx)
			}
		}
	}()
}

func (c *CatalogRefresher) refresh(ctx context.Context) {
	if err := c.catalog.RefreshCatalog(ctx); err != nil {
		// stale cache is still usable; the next tick retries
		c.logger.Err(err).Msg("PSOC catalog refresh failed")
		return
	}
	c.logger.Info().Msg("PSOC catalog refreshed")
}
