package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quantego/coinsight/internal/core"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing parameter", core.ErrMissingParameter, http.StatusBadRequest},
		{"invalid window", core.ErrInvalidWindow, http.StatusBadRequest},
		{"invalid input", core.ErrInvalidInput, http.StatusBadRequest},
		{"not found", core.ErrNotFound, http.StatusNotFound},
		{"length mismatch", core.ErrLengthMismatch, http.StatusUnprocessableEntity},
		{"insufficient data", core.ErrInsufficientData, http.StatusUnprocessableEntity},
		{"no data", core.ErrNoData, http.StatusServiceUnavailable},
		{"upstream without status", core.ErrUpstreamUnavailable, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusFor(tc.err); got != tc.want {
				t.Errorf("StatusFor(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestStatusFor_UpstreamStatusVerbatim(t *testing.T) {
	err := core.WrapError(core.ErrUpstreamUnavailable, &core.UpstreamError{StatusCode: 429})
	if got := StatusFor(err); got != 429 {
		t.Errorf("expected verbatim 429, got %d", got)
	}
}

func TestError_Body(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, core.WrapError(core.ErrNotFound, errors.New("cryptocurrency \"nope\" not found")))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}

	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Error.Code != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND, got %q", body.Error.Code)
	}
	if body.Error.Cause == "" {
		t.Error("expected cause to be present")
	}
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, map[string]int{"n": 1})

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type %q", ct)
	}
	var body map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["n"] != 1 {
		t.Errorf("unexpected body: %v", body)
	}
}
