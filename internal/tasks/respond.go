package tasks

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{"message": msg},
	})
}

func writeValidationError(w http.ResponseWriter, ve *ValidationError) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error": map[string]any{
			"message": "validation failed",
			"details": ve.Fields,
		},
	})
}

// respondDomainError maps validation and not-found failures onto their
// status codes; anything else is logged and reported as a server error.
func respondDomainError(w http.ResponseWriter, lg *log.Logger, err error, notFoundMsg string) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		writeValidationError(w, ve)
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMsg)
	default:
		lg.Error("request failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
