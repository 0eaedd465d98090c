package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/quantego/coinsight/internal/api/response"
	"github.com/quantego/coinsight/internal/core"
	"github.com/quantego/coinsight/internal/market"
	"github.com/quantego/coinsight/internal/provider"
)

// DetailHandler serves per-asset endpoints backed by the asset detail
// record, deduplicated through the request cache.
type DetailHandler struct {
	cache    *market.Cache
	provider provider.Provider
}

// NewDetailHandler creates a new detail handler.
func NewDetailHandler(cache *market.Cache, p provider.Provider) *DetailHandler {
	return &DetailHandler{cache: cache, provider: p}
}

// detail fetches the asset detail record through the cache. The fetch runs
// detached from the request context: concurrent waiters share it and it is
// allowed to complete even if the first caller goes away. The provider's
// client timeout bounds it.
func (h *DetailHandler) detail(id string) (*core.AssetDetail, error) {
	v, err := h.cache.GetOrFetch(market.Key("coin_detail", id), func() (any, error) {
		return h.provider.FetchAssetDetail(context.Background(), id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*core.AssetDetail), nil
}

// Details handles GET /cryptos/{id}/details
func (h *DetailHandler) Details(w http.ResponseWriter, r *http.Request) {
	d, err := h.detail(r.PathValue("id"))
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"name":               d.Name,
		"symbol":             d.Symbol,
		"description":        d.Description,
		"circulating_supply": d.CirculatingSupply,
		"total_supply":       d.TotalSupply,
		"market_cap":         d.MarketCap,
		"current_price":      round2(d.CurrentPrice),
		"ath":                d.ATH,
		"ath_date":           d.ATHDate,
		"atl":                d.ATL,
		"atl_date":           d.ATLDate,
		"links":              d.Links,
	})
}

// Exchanges handles GET /crypto-exchanges/{id}
func (h *DetailHandler) Exchanges(w http.ResponseWriter, r *http.Request) {
	d, err := h.detail(r.PathValue("id"))
	if err != nil {
		response.Error(w, err)
		return
	}

	if len(d.Tickers) == 0 {
		response.Error(w, core.WrapError(core.ErrNotFound,
			fmt.Errorf("exchange data not available for this cryptocurrency")))
		return
	}

	response.JSON(w, http.StatusOK, d.Tickers)
}

// Sentiment handles GET /social-sentiment-analysis/{id}
func (h *DetailHandler) Sentiment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	d, err := h.detail(id)
	if err != nil {
		response.Error(w, err)
		return
	}

	if !d.HasSentiment {
		response.Error(w, core.WrapError(core.ErrNotFound,
			fmt.Errorf("sentiment data not available")))
		return
	}

	score := d.SentimentUpPct - d.SentimentDownPct
	sentiment := "neutral"
	if score > 0.1 {
		sentiment = "positive"
	} else if score < -0.1 {
		sentiment = "negative"
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"crypto_id":       id,
		"sentiment":       sentiment,
		"sentiment_score": score,
	})
}
