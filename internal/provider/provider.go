package provider

import (
	"context"

	"github.com/quantego/coinsight/internal/core"
)

// Provider defines the interface for upstream market-data sources
type Provider interface {
	// Name returns the provider identifier (e.g., "coingecko")
	Name() string

	// FetchMarketListing fetches the full market listing in provider order
	FetchMarketListing(ctx context.Context) ([]core.Asset, error)

	// FetchAssetDetail fetches the descriptive record for one asset
	FetchAssetDetail(ctx context.Context, id string) (*core.AssetDetail, error)

	// FetchTimeSeries fetches price/volume history for an asset over the
	// given number of days
	FetchTimeSeries(ctx context.Context, id string, days int) (*core.TimeSeries, error)
}
