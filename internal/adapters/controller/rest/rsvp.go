package rest

import (
	"net/http"

	"github.com/gatherhub/gatherhub/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

type rsvpRequest struct {
	Status entity.RsvpStatus `json:"status"`
}

func (h *Handler) listEventRsvps(w http.ResponseWriter, r *http.Request) {
	rsvps, err := h.rsvps.GetByEvent(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if rsvps == nil {
		rsvps = []entity.Rsvp{}
	}
	writeJSON(w, http.StatusOK, rsvps)
}

func (h *Handler) setRsvp(w http.ResponseWriter, r *http.Request) {
	var req rsvpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	rsvp, err := h.rsvps.Set(r.Context(), chi.URLParam(r, "eventID"), currentUser(r), req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rsvp)
}

func (h *Handler) deleteRsvp(w http.ResponseWriter, r *http.Request) {
	err := h.rsvps.Delete(r.Context(), chi.URLParam(r, "eventID"), currentUser(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "rsvp deleted"})
}

func (h *Handler) getUserRsvp(w http.ResponseWriter, r *http.Request) {
	rsvp, err := h.rsvps.Get(r.Context(), chi.URLParam(r, "eventID"), currentUser(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rsvp)
}

func (h *Handler) listUserRsvps(w http.ResponseWriter, r *http.Request) {
	rsvps, err := h.rsvps.GetByUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rsvps)
}
