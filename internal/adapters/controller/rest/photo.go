package rest

import (
	"net/http"

	"github.com/gatherhub/gatherhub/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

type photoRequest struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

func (h *Handler) listEventPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := h.photos.GetByEvent(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if photos == nil {
		photos = []entity.EventPhoto{}
	}
	writeJSON(w, http.StatusOK, photos)
}

func (h *Handler) addEventPhoto(w http.ResponseWriter, r *http.Request) {
	var req photoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	photo, err := h.photos.Create(
		r.Context(), chi.URLParam(r, "eventID"), currentUser(r), req.URL, req.Caption)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, photo)
}
