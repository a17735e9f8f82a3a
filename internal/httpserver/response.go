package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"

	domain "accounts/backend/internal/domain/auth"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeDomainError maps the failure's status classification to an HTTP
// code. Provider and repository failures answer with a terse 500; the
// diagnostic message stays in the logs.
func writeDomainError(w http.ResponseWriter, err domain.DomainError) {
	switch err.Status() {
	case domain.StatusConflict:
		writeError(w, http.StatusConflict, err.Error())
	case domain.StatusInvalid:
		writeError(w, http.StatusBadRequest, err.Error())
	case domain.StatusNotFound:
		writeError(w, http.StatusNotFound, err.Error())
	case domain.StatusUnauthorized:
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeMethodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
