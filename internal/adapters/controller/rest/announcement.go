package rest

import (
	"net/http"

	"github.com/gatherhub/gatherhub/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

type announcementRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *Handler) listAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcements.GetByEvent(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if announcements == nil {
		announcements = []entity.Announcement{}
	}
	writeJSON(w, http.StatusOK, announcements)
}

func (h *Handler) sendAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req announcementRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Subject == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "subject and message are required")
		return
	}

	announcement, recipients, err := h.announcements.Send(
		r.Context(), chi.URLParam(r, "eventID"), currentUser(r), req.Subject, req.Message)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"announcement":   announcement,
		"recipientCount": recipients,
	})
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.GetByEvent(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if reviews == nil {
		reviews = []entity.Review{}
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	review, err := h.reviews.Create(
		r.Context(), chi.URLParam(r, "eventID"), currentUser(r), req.Rating, req.Comment)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}
