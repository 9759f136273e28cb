package rest

import (
	"net/http"

	"github.com/gatherhub/gatherhub/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUserNotifications(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID != currentUser(r) {
		writeError(w, http.StatusForbidden, "access denied")
		return
	}

	notifications, err := h.notifications.GetByUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if notifications == nil {
		notifications = []entity.Notification{}
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	err := h.notifications.MarkRead(r.Context(), chi.URLParam(r, "notificationID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "notification marked as read"})
}

func (h *Handler) markAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	err := h.notifications.MarkAllRead(r.Context(), currentUser(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "all notifications marked as read"})
}
