package indicator

import (
	"errors"
	"math"
	"testing"

	"github.com/quantego/coinsight/internal/core"
)

func TestCorrelation_SelfIsOne(t *testing.T) {
	series := []float64{100, 102, 99, 107, 111, 104}
	r, err := Correlation(series, series)
	if err != nil {
		t.Fatalf("Correlation failed: %v", err)
	}
	if math.Abs(r-1) > 1e-9 {
		t.Errorf("expected 1, got %v", r)
	}
}

func TestCorrelation_PerfectLinear(t *testing.T) {
	a := []float64{1, 2, 3, 4}

	r, err := Correlation(a, []float64{2, 4, 6, 8})
	if err != nil {
		t.Fatalf("Correlation failed: %v", err)
	}
	if math.Abs(r-1) > 1e-9 {
		t.Errorf("expected 1, got %v", r)
	}

	r, err = Correlation(a, []float64{8, 6, 4, 2})
	if err != nil {
		t.Fatalf("Correlation failed: %v", err)
	}
	if math.Abs(r+1) > 1e-9 {
		t.Errorf("expected -1, got %v", r)
	}
}

func TestCorrelation_LengthMismatch(t *testing.T) {
	_, err := Correlation([]float64{1, 2, 3}, []float64{1, 2})
	if !errors.Is(err, core.ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestCorrelation_InsufficientData(t *testing.T) {
	_, err := Correlation([]float64{1}, []float64{2})
	if !errors.Is(err, core.ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}
