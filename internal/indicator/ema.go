package indicator

import (
	"fmt"
	"math"

	"github.com/quantego/coinsight/internal/core"
)

// EMA computes an exponentially weighted moving average over prices.
//
// The weight vector has length window, with w_i = exp(lerp(-1, 0, i/(window-1)))
// normalized to sum to 1. The output is the full convolution of prices with
// the weights, truncated to the first len(prices) entries. The leading
// window-1 outputs are partial: fewer true samples contribute, so they are
// biased low. That truncation policy is part of the contract; callers that
// only want fully-covered values must skip the prefix themselves.
//
// window may exceed len(prices); the output is degenerate but accepted.
func EMA(prices []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, core.WrapError(core.ErrInvalidWindow, fmt.Errorf("got %d", window))
	}
	if len(prices) == 0 {
		return nil, core.ErrInsufficientData
	}

	weights := emaWeights(window)

	out := make([]float64, len(prices))
	for n := range out {
		var acc float64
		for k := 0; k <= n; k++ {
			if j := n - k; j < window {
				acc += prices[k] * weights[j]
			}
		}
		out[n] = acc
	}
	return out, nil
}

// emaWeights returns the normalized weight vector for the given window.
func emaWeights(window int) []float64 {
	w := make([]float64, window)
	var sum float64
	for i := range w {
		t := 0.0
		if window > 1 {
			t = float64(i) / float64(window-1)
		}
		w[i] = math.Exp(t - 1)
		sum += w[i]
	}
	for i := range w {
		w[i] /= sum
	}
	return w
}

// Trend signal values.
const (
	SignalLong  = "long"
	SignalShort = "short"
)

// Signal is a trend classification of the latest price against its EMA.
type Signal struct {
	Signal   string `json:"signal"`
	Position string `json:"position"`
}

// Classify compares the latest price to the latest EMA value and labels the
// position "long" (price above EMA) or "short" (price at or below EMA).
func Classify(prices []float64, window int) (Signal, error) {
	ema, err := EMA(prices, window)
	if err != nil {
		return Signal{}, err
	}

	last := prices[len(prices)-1]
	if last > ema[len(ema)-1] {
		return Signal{
			Signal:   SignalLong,
			Position: fmt.Sprintf("price above EMA %d", window),
		}, nil
	}
	return Signal{
		Signal:   SignalShort,
		Position: fmt.Sprintf("price below EMA %d", window),
	}, nil
}
