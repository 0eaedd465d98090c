package indicator

import (
	"fmt"

	"github.com/quantego/coinsight/internal/core"
	"gonum.org/v1/gonum/stat"
)

// Correlation computes the Pearson correlation coefficient between two
// series aligned index-by-index. Unequal lengths are rejected rather than
// silently truncated.
func Correlation(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, core.WrapError(core.ErrLengthMismatch,
			fmt.Errorf("len(a)=%d, len(b)=%d", len(a), len(b)))
	}
	if len(a) < 2 {
		return 0, core.WrapError(core.ErrInsufficientData,
			fmt.Errorf("need at least 2 points, got %d", len(a)))
	}

	return stat.Correlation(a, b, nil), nil
}
