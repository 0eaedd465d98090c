package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/quantego/coinsight/internal/api/response"
	"github.com/quantego/coinsight/internal/core"
	"github.com/quantego/coinsight/internal/indicator"
	"github.com/quantego/coinsight/internal/market"
)

// CalculatorHandler serves the profit/loss calculator against the current
// market snapshot.
type CalculatorHandler struct {
	store *market.SnapshotStore
}

// NewCalculatorHandler creates a new calculator handler.
func NewCalculatorHandler(store *market.SnapshotStore) *CalculatorHandler {
	return &CalculatorHandler{store: store}
}

// ProfitLoss handles
// GET /profit-loss-calculator?crypto_name&amount&purchase_price&operation
func (h *CalculatorHandler) ProfitLoss(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := q.Get("crypto_name")
	amountStr := q.Get("amount")
	priceStr := q.Get("purchase_price")
	operation := q.Get("operation")

	if name == "" || amountStr == "" || priceStr == "" || operation == "" {
		response.Error(w, core.WrapError(core.ErrMissingParameter,
			errors.New(indicator.ProfitLossUsage)))
		return
	}

	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		response.Error(w, core.WrapError(core.ErrMissingParameter,
			errors.New(indicator.ProfitLossUsage)))
		return
	}
	purchasePrice, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		response.Error(w, core.WrapError(core.ErrMissingParameter,
			errors.New(indicator.ProfitLossUsage)))
		return
	}

	snap, _, err := h.store.Get()
	if err != nil {
		response.Error(w, err)
		return
	}

	asset, ok := snap.Lookup(name)
	if !ok {
		response.Error(w, core.WrapError(core.ErrNotFound, notFoundCause(name)))
		return
	}

	pnl, err := indicator.CalculateProfitLoss(asset.CurrentPrice, purchasePrice, amount, operation)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"crypto_name":        name,
		"operation":          operation,
		"current_price":      asset.CurrentPrice,
		"profit_loss_status": pnl.Status,
		"profit_loss_value":  pnl.Value,
	})
}
