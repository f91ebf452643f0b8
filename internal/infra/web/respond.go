package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"resumepulse/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeDomainError maps domain sentinels onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrQuotaExceeded):
		writeError(w, http.StatusForbidden, "no analyses remaining, please upgrade your plan")
	case errors.Is(err, domain.ErrSourceNotReady):
		writeError(w, http.StatusBadRequest, "resume text not extracted")
	case errors.Is(err, domain.ErrExtractionFailed):
		writeError(w, http.StatusBadRequest, "failed to extract text from file")
	case errors.Is(err, domain.ErrUnsupportedFile):
		writeError(w, http.StatusBadRequest, "only pdf and docx files are allowed")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusBadRequest, "already exists")
	case errors.Is(err, domain.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, "invalid request")
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
