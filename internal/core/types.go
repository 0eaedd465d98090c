package core

import "time"

// Asset is one entry of the provider's full market listing.
// Immutable once constructed from a provider response.
type Asset struct {
	ID             string  `json:"id"`
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	CurrentPrice   float64 `json:"current_price"`
	Volume24h      float64 `json:"volume_24h"`
	PriceChangePct float64 `json:"price_change_percentage_24h"`
	Low24h         float64 `json:"low_24h"`
	High24h        float64 `json:"high_24h"`
}

// Snapshot is an immutable point-in-time view of the full market listing.
// A new Snapshot fully replaces the old one; it is never mutated in place.
type Snapshot struct {
	assets    []Asset
	byID      map[string]Asset
	fetchedAt time.Time
}

// NewSnapshot builds a snapshot from a listing in provider order.
func NewSnapshot(assets []Asset, fetchedAt time.Time) *Snapshot {
	byID := make(map[string]Asset, len(assets))
	for _, a := range assets {
		byID[a.ID] = a
	}
	return &Snapshot{
		assets:    assets,
		byID:      byID,
		fetchedAt: fetchedAt,
	}
}

// Assets returns the listing in provider order. Callers must not modify
// the returned slice.
func (s *Snapshot) Assets() []Asset {
	return s.assets
}

// Lookup returns the asset with the given ID.
func (s *Snapshot) Lookup(id string) (Asset, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Len returns the number of assets in the listing.
func (s *Snapshot) Len() int {
	return len(s.assets)
}

// FetchedAt returns when the listing was fetched from the provider.
func (s *Snapshot) FetchedAt() time.Time {
	return s.fetchedAt
}

// Point is a single time series observation. Timestamp is in epoch
// milliseconds, as delivered by the provider.
type Point struct {
	Timestamp int64
	Value     float64
}

// Series is an ordered sequence of points, ascending by timestamp.
type Series []Point

// Values extracts just the observation values, in order.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}

// TimeSeries holds the price and volume history for one asset/window.
type TimeSeries struct {
	Prices  Series
	Volumes Series
}

// AssetLinks are the external links reported for an asset.
type AssetLinks struct {
	Homepage string `json:"homepage"`
	Twitter  string `json:"twitter"`
	Reddit   string `json:"reddit"`
}

// ExchangeTicker is one market listing an asset trades on.
type ExchangeTicker struct {
	ExchangeName string `json:"exchange_name"`
	Base         string `json:"base"`
	Target       string `json:"target"`
	TradeURL     string `json:"trade_url"`
}

// AssetDetail is the descriptive record for a single asset.
type AssetDetail struct {
	ID                string           `json:"id"`
	Symbol            string           `json:"symbol"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	CirculatingSupply float64          `json:"circulating_supply"`
	TotalSupply       float64          `json:"total_supply"`
	MarketCap         float64          `json:"market_cap"`
	CurrentPrice      float64          `json:"current_price"`
	ATH               float64          `json:"ath"`
	ATHDate           string           `json:"ath_date"`
	ATL               float64          `json:"atl"`
	ATLDate           string           `json:"atl_date"`
	Links             AssetLinks       `json:"links"`
	SentimentUpPct    float64          `json:"sentiment_votes_up_percentage"`
	SentimentDownPct  float64          `json:"sentiment_votes_down_percentage"`
	HasSentiment      bool             `json:"-"`
	Tickers           []ExchangeTicker `json:"-"`
}
