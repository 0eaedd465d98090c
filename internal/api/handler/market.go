package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/quantego/coinsight/internal/api/response"
	"github.com/quantego/coinsight/internal/core"
	"github.com/quantego/coinsight/internal/market"
)

// round2 rounds to two decimals, the precision the listing endpoints report
// prices at.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MarketHandler serves listing-style endpoints from the snapshot store.
type MarketHandler struct {
	store *market.SnapshotStore
}

// NewMarketHandler creates a new market handler.
func NewMarketHandler(store *market.SnapshotStore) *MarketHandler {
	return &MarketHandler{store: store}
}

type listEntry struct {
	ID           string  `json:"id"`
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"current_price"`
}

// List handles GET /cryptos?skip=N&limit=N
func (h *MarketHandler) List(w http.ResponseWriter, r *http.Request) {
	snap, _, err := h.store.Get()
	if err != nil {
		response.Error(w, err)
		return
	}

	skip, limit := 0, 20
	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			limit = n
		}
	}

	assets := snap.Assets()
	total := len(assets)

	if skip > total {
		skip = total
	}
	end := skip + limit
	if end > total {
		end = total
	}

	page := make([]listEntry, 0, end-skip)
	for _, a := range assets[skip:end] {
		page = append(page, listEntry{
			ID:           a.ID,
			Symbol:       a.Symbol,
			Name:         a.Name,
			CurrentPrice: round2(a.CurrentPrice),
		})
	}

	w.Header().Set("Cache-Control", "no-store, max-age=0")
	w.Header().Set("X-Total-Count", strconv.Itoa(total))
	response.JSON(w, http.StatusOK, page)
}

// Get handles GET /cryptos/{id}
func (h *MarketHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, _, err := h.store.Get()
	if err != nil {
		response.Error(w, err)
		return
	}

	id := r.PathValue("id")
	asset, ok := snap.Lookup(id)
	if !ok {
		response.Error(w, core.WrapError(core.ErrNotFound,
			notFoundCause(id)))
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"id":                          asset.ID,
		"symbol":                      asset.Symbol,
		"name":                        asset.Name,
		"current_price":               round2(asset.CurrentPrice),
		"volume_24h":                  asset.Volume24h,
		"price_change_percentage_24h": asset.PriceChangePct,
		"low_24h":                     asset.Low24h,
		"high_24h":                    asset.High24h,
	})
}
