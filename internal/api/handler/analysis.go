package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/quantego/coinsight/internal/api/response"
	"github.com/quantego/coinsight/internal/core"
	"github.com/quantego/coinsight/internal/indicator"
	"github.com/quantego/coinsight/internal/market"
	"github.com/quantego/coinsight/internal/provider"
	"gonum.org/v1/gonum/stat"
)

// EMA windows and history ranges used by the analysis endpoints. The trend
// endpoints both read 1-day history; only the window differs.
const (
	shortTermWindow = 20
	longTermWindow  = 200

	signalDays      = 1
	historyDays     = 30
	correlationDays = 180
	volatilityDays  = 90
)

// Reference assets every correlation analysis is computed against.
const (
	correlationBaseBTC = "bitcoin"
	correlationBaseETH = "ethereum"
)

// AnalysisHandler serves the indicator endpoints. Time series are fetched
// through the request cache so identical upstream calls are deduplicated.
type AnalysisHandler struct {
	store    *market.SnapshotStore
	cache    *market.Cache
	provider provider.Provider
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(store *market.SnapshotStore, cache *market.Cache, p provider.Provider) *AnalysisHandler {
	return &AnalysisHandler{store: store, cache: cache, provider: p}
}

// series fetches an asset's time series through the cache, detached from
// the request context (see DetailHandler.detail).
func (h *AnalysisHandler) series(id string, days int) (*core.TimeSeries, error) {
	key := market.Key("market_chart", id, strconv.Itoa(days))
	v, err := h.cache.GetOrFetch(key, func() (any, error) {
		return h.provider.FetchTimeSeries(context.Background(), id, days)
	})
	if err != nil {
		return nil, err
	}
	return v.(*core.TimeSeries), nil
}

func (h *AnalysisHandler) signal(w http.ResponseWriter, id string, window int) {
	ts, err := h.series(id, signalDays)
	if err != nil {
		response.Error(w, err)
		return
	}

	sig, err := indicator.Classify(ts.Prices.Values(), window)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, sig)
}

// ShortTerm handles GET /short-term/{id}
func (h *AnalysisHandler) ShortTerm(w http.ResponseWriter, r *http.Request) {
	h.signal(w, r.PathValue("id"), shortTermWindow)
}

// LongTerm handles GET /long-term/{id}
func (h *AnalysisHandler) LongTerm(w http.ResponseWriter, r *http.Request) {
	h.signal(w, r.PathValue("id"), longTermWindow)
}

// AverageVolume handles GET /average-volume/{id}
func (h *AnalysisHandler) AverageVolume(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ts, err := h.series(id, historyDays)
	if err != nil {
		response.Error(w, err)
		return
	}

	volumes := ts.Volumes.Values()
	if len(volumes) == 0 {
		response.Error(w, core.ErrInsufficientData)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"crypto_id":              id,
		"average_volume_30_days": round2(stat.Mean(volumes, nil)),
	})
}

type pricePoint struct {
	Timestamp string  `json:"timestamp"`
	Price     float64 `json:"price"`
}

// HistoricalPrices handles GET /historical-prices/{id}
func (h *AnalysisHandler) HistoricalPrices(w http.ResponseWriter, r *http.Request) {
	ts, err := h.series(r.PathValue("id"), historyDays)
	if err != nil {
		response.Error(w, err)
		return
	}

	// Newest first.
	points := make([]pricePoint, 0, len(ts.Prices))
	for i := len(ts.Prices) - 1; i >= 0; i-- {
		p := ts.Prices[i]
		points = append(points, pricePoint{
			Timestamp: time.UnixMilli(p.Timestamp).Format("2006-01-02 15:04:05"),
			Price:     round2(p.Value),
		})
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"price_data": points,
	})
}

// Correlation handles GET /correlation-analysis/{id}
func (h *AnalysisHandler) Correlation(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	ts, err := h.series(id, correlationDays)
	if err != nil {
		response.Error(w, err)
		return
	}
	btc, err := h.series(correlationBaseBTC, correlationDays)
	if err != nil {
		response.Error(w, err)
		return
	}
	eth, err := h.series(correlationBaseETH, correlationDays)
	if err != nil {
		response.Error(w, err)
		return
	}

	prices := ts.Prices.Values()

	withBTC, err := indicator.Correlation(prices, btc.Prices.Values())
	if err != nil {
		response.Error(w, err)
		return
	}
	withETH, err := indicator.Correlation(prices, eth.Prices.Values())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"crypto_id":            id,
		"correlation_with_btc": withBTC,
		"correlation_with_eth": withETH,
	})
}

// Volatility handles GET /volatility-heatmap/{id}
func (h *AnalysisHandler) Volatility(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	// Existence check against the current listing before spending an
	// upstream call on history.
	snap, _, err := h.store.Get()
	if err != nil {
		response.Error(w, err)
		return
	}
	if _, ok := snap.Lookup(id); !ok {
		response.Error(w, core.WrapError(core.ErrNotFound, notFoundCause(id)))
		return
	}

	ts, err := h.series(id, volatilityDays)
	if err != nil {
		response.Error(w, err)
		return
	}

	vol, err := indicator.Volatility(ts.Prices.Values())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"crypto_name": id,
		"volatility":  vol,
	})
}
