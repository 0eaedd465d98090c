package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quantego/coinsight/internal/core"
)

// JSON writes data as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   string `json:"cause,omitempty"`
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// Error writes an error response with a status derived from the error.
func Error(w http.ResponseWriter, err error) {
	detail := ErrorDetail{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
	}

	var coreErr *core.Error
	if errors.As(err, &coreErr) {
		detail.Code = coreErr.Code
		detail.Message = coreErr.Message
		if coreErr.Cause != nil {
			detail.Cause = coreErr.Cause.Error()
		}
	}

	JSON(w, StatusFor(err), ErrorResponse{Error: detail})
}

// StatusFor maps domain errors to HTTP status codes. Upstream failures keep
// the provider's status code verbatim.
func StatusFor(err error) int {
	var upstream *core.UpstreamError
	if errors.As(err, &upstream) {
		return upstream.StatusCode
	}

	switch {
	case errors.Is(err, core.ErrMissingParameter),
		errors.Is(err, core.ErrInvalidWindow),
		errors.Is(err, core.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrLengthMismatch),
		errors.Is(err, core.ErrInsufficientData):
		return http.StatusUnprocessableEntity
	case errors.Is(err, core.ErrNoData):
		return http.StatusServiceUnavailable
	case errors.Is(err, core.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
