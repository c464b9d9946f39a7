package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"linguaspark/internal/manager"
	"linguaspark/pkg/bergamot"
	"linguaspark/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// statusForError maps service and binding errors to HTTP status codes.
func statusForError(err error) int {
	var he HTTPError
	switch {
	case bergamot.IsStringConversion(err), manager.IsBadRequest(err):
		return http.StatusBadRequest
	case manager.IsPairNotFound(err):
		return http.StatusNotFound
	case bergamot.IsTranslationFailed(err):
		return http.StatusBadGateway
	case bergamot.IsEngineUnavailable(err), manager.IsLoadFailed(err),
		errors.Is(err, manager.ErrClosed), errors.Is(err, bergamot.ErrClosed):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &he):
		return he.StatusCode()
	default:
		return http.StatusInternalServerError
	}
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}
