package rest

import (
	"net/http"

	"github.com/gatherhub/gatherhub/internal/domain/common/errorz"
	"github.com/gatherhub/gatherhub/internal/domain/entity"
	qr "github.com/gatherhub/gatherhub/pkg/qrcode"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) eventCalendar(w http.ResponseWriter, r *http.Request) {
	data, err := h.calendar.ExportEvent(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar")
	w.Header().Set("Content-Disposition", `attachment; filename="event.ics"`)
	_, _ = w.Write(data)
}

func (h *Handler) userCalendar(w http.ResponseWriter, r *http.Request) {
	data, err := h.calendar.ExportUserCalendar(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar")
	w.Header().Set("Content-Disposition", `attachment; filename="events.ics"`)
	_, _ = w.Write(data)
}

func (h *Handler) syncCalendar(w http.ResponseWriter, r *http.Request) {
	err := h.calendar.SyncEvent(r.Context(), chi.URLParam(r, "eventID"), currentUser(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "event synced to calendar"})
}

// eventTicket renders a QR code for an attending user's ticket.
func (h *Handler) eventTicket(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	userID := currentUser(r)

	rsvp, err := h.rsvps.Get(r.Context(), eventID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if rsvp.Status != entity.RsvpStatusAttending {
		writeServiceError(w, errorz.Forbidden)
		return
	}

	event, err := h.events.Get(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	code := qr.Ticket
	code.Content = event.Link(h.baseURL)
	png, err := code.Generate()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}
