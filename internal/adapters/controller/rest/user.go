package rest

import (
	"net/http"

	"github.com/gatherhub/gatherhub/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

type userRequest struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// registerUser finds or creates a profile by email. The gateway calls this
// once per login to resolve the id it then forwards in X-User-ID.
func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Email == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "email and name are required")
		return
	}

	user, err := h.users.GetOrCreate(r.Context(), entity.User{
		Email:  req.Email,
		Name:   req.Name,
		Avatar: req.Avatar,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID != currentUser(r) {
		writeError(w, http.StatusForbidden, "access denied")
		return
	}

	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	user, err := h.users.Get(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	updated, err := h.users.Update(r.Context(), user)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) listUserFavorites(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID != currentUser(r) {
		writeError(w, http.StatusForbidden, "access denied")
		return
	}

	events, err := h.favorites.GetEvents(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if events == nil {
		events = []entity.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *Handler) getFavorite(w http.ResponseWriter, r *http.Request) {
	favorited, err := h.favorites.IsFavorited(r.Context(), currentUser(r), chi.URLParam(r, "eventID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"favorited": favorited})
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	favorited, err := h.favorites.Toggle(r.Context(), currentUser(r), chi.URLParam(r, "eventID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"favorited": favorited})
}

func (h *Handler) hostDashboard(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID != currentUser(r) {
		writeError(w, http.StatusForbidden, "access denied")
		return
	}

	dashboard, err := h.dashboard.ForHost(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}
