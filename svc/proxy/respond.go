package proxy

import (
	"encoding/json"
	"errors"
	"net/http"
)

// errorResponse is the wire shape for every failure. Status and Details are
// present only for upstream failures, where they carry the provider's
// response unmodified.
type errorResponse struct {
	Error   string `json:"error"`
	Status  int    `json:"status,omitempty"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps service errors onto the shared contract. Everything here
// is the caller's 500 except a malformed request body.
func writeError(w http.ResponseWriter, err error) {
	var upstream *upstreamError
	switch {
	case errors.As(err, &upstream):
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "upstream request failed",
			Status:  upstream.Status,
			Details: upstream.Body,
		})
	case errors.Is(err, ErrInvalidRequest):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, ErrMissingSecret):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}
