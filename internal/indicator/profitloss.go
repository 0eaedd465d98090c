package indicator

import (
	"fmt"
	"math"

	"github.com/quantego/coinsight/internal/core"
)

// Trade directions.
const (
	DirectionLong  = "long"
	DirectionShort = "short"
)

// Profit/loss statuses.
const (
	StatusProfit = "profit"
	StatusLoss   = "loss"
)

// ProfitLoss is the outcome of a hypothetical position.
type ProfitLoss struct {
	Status string  `json:"profit_loss_status"`
	Value  float64 `json:"profit_loss_value"`
}

// ProfitLossUsage is the example appended to missing-parameter errors.
const ProfitLossUsage = "Example: /profit-loss-calculator?crypto_name=bitcoin&amount=1&purchase_price=50000&operation=long"

// CalculateProfitLoss evaluates a position opened at purchasePrice against
// currentPrice. A "short" direction inverts the raw result; any other
// non-empty direction is treated as long.
//
// The returned magnitude is abs((current-purchase)*amount) * amount. The
// second multiplication by amount is kept deliberately: the public API has
// always reported the squared-amount figure and clients depend on it.
//
// Zero-valued amount, purchasePrice or an empty direction are rejected as
// missing parameters, matching the calculator's query-parameter contract.
func CalculateProfitLoss(currentPrice, purchasePrice, amount float64, direction string) (ProfitLoss, error) {
	if purchasePrice == 0 || amount == 0 || direction == "" {
		return ProfitLoss{}, core.WrapError(core.ErrMissingParameter,
			fmt.Errorf("%s", ProfitLossUsage))
	}

	base := (currentPrice - purchasePrice) * amount
	if direction == DirectionShort {
		base = -base
	}

	status := StatusProfit
	if base < 0 {
		status = StatusLoss
	}

	return ProfitLoss{
		Status: status,
		Value:  math.Abs(base) * amount,
	}, nil
}
