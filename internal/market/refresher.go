package market

import (
	"context"
	"time"

	"github.com/quantego/coinsight/internal/core"
	"github.com/quantego/coinsight/internal/metrics"
	"github.com/quantego/coinsight/internal/provider"
	"go.uber.org/zap"
)

// DefaultRefreshInterval is the listing refresh period used when none is
// configured.
const DefaultRefreshInterval = 5 * time.Second

// Refresher periodically fetches the full market listing and publishes it
// into a SnapshotStore. It is the store's only writer. Fetch failures are
// logged and never stop the loop; the previous snapshot keeps serving.
type Refresher struct {
	provider provider.Provider
	store    *SnapshotStore
	interval time.Duration
	logger   *zap.Logger
	metrics  *metrics.Registry

	// For testing: allow time control
	now func() time.Time
}

// NewRefresher creates a refresher. A nil logger disables logging and a nil
// registry disables metrics; a non-positive interval falls back to
// DefaultRefreshInterval.
func NewRefresher(p provider.Provider, store *SnapshotStore, interval time.Duration, logger *zap.Logger, reg *metrics.Registry) *Refresher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Refresher{
		provider: p,
		store:    store,
		interval: interval,
		logger:   logger,
		metrics:  reg,
		now:      time.Now,
	}
}

// Run performs an immediate refresh and then loops on a fixed ticker until
// ctx is cancelled. It always returns ctx.Err().
func (r *Refresher) Run(ctx context.Context) error {
	r.logger.Info("refresher starting",
		zap.String("provider", r.provider.Name()),
		zap.Duration("interval", r.interval),
	)

	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("refresher stopping")
			return ctx.Err()
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

// refresh fetches the listing once and publishes it. Errors are absorbed
// here so a failed upstream call leaves the current snapshot untouched.
func (r *Refresher) refresh(ctx context.Context) {
	assets, err := r.provider.FetchMarketListing(ctx)
	if err != nil {
		r.metrics.RecordRefreshFailure()
		r.logger.Warn("market listing refresh failed", zap.Error(err))
		return
	}

	fetchedAt := r.now()
	r.store.Publish(core.NewSnapshot(assets, fetchedAt))
	r.metrics.RecordRefreshSuccess(len(assets))

	r.logger.Debug("market listing refreshed",
		zap.Int("assets", len(assets)),
		zap.Time("fetched_at", fetchedAt),
	)
}
