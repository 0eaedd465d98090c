package handler

import (
	"net/http"

	"github.com/quantego/coinsight/internal/api/response"
	"github.com/quantego/coinsight/internal/news"
)

// NewsHandler serves the aggregated RSS news feed.
type NewsHandler struct {
	agg *news.Aggregator
}

// NewNewsHandler creates a new news handler.
func NewNewsHandler(agg *news.Aggregator) *NewsHandler {
	return &NewsHandler{agg: agg}
}

// List handles GET /crypto-news
func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.agg.Fetch(r.Context())
	if items == nil {
		items = []news.Item{}
	}
	response.JSON(w, http.StatusOK, items)
}
