package indicator

import (
	"fmt"
	"math"

	"github.com/quantego/coinsight/internal/core"
	"gonum.org/v1/gonum/stat"
)

// TradingDaysPerYear is the annualization factor for daily log-returns.
const TradingDaysPerYear = 252

// Volatility computes annualized volatility from a price series: the
// population standard deviation of log-returns scaled by sqrt(252).
//
// Requires at least 2 prices, all strictly positive (log-returns are
// undefined otherwise).
func Volatility(prices []float64) (float64, error) {
	if len(prices) < 2 {
		return 0, core.WrapError(core.ErrInsufficientData,
			fmt.Errorf("need at least 2 prices, got %d", len(prices)))
	}
	for i, p := range prices {
		if p <= 0 {
			return 0, core.WrapError(core.ErrInvalidInput,
				fmt.Errorf("price at index %d is %v, must be positive", i, p))
		}
	}

	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		returns[i-1] = math.Log(prices[i]) - math.Log(prices[i-1])
	}

	return stat.PopStdDev(returns, nil) * math.Sqrt(TradingDaysPerYear), nil
}
