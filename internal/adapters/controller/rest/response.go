package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gatherhub/gatherhub/internal/domain/common/errorz"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps domain sentinel errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errorz.NotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errorz.Forbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, errorz.EventFull),
		errors.Is(err, errorz.InvalidRsvpStatus),
		errors.Is(err, errorz.InvalidRating):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
