package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain/dto"
	"github.com/gatherhub/gatherhub/internal/domain/entity"
	"github.com/go-chi/chi/v5"
	"github.com/lib/pq"
)

type eventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CategoryID  string    `json:"categoryId"`
	Location    string    `json:"location"`
	StartTime   time.Time `json:"startTime"`
	Capacity    int       `json:"capacity"`
	Price       float64   `json:"price"`
	IsPaid      bool      `json:"isPaid"`
	Tags        []string  `json:"tags"`
	ImageURL    string    `json:"imageUrl"`
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.events.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	filter := dto.EventFilter{
		CategoryID: r.URL.Query().Get("category"),
		Status:     entity.EventStatus(r.URL.Query().Get("status")),
		HostID:     r.URL.Query().Get("hostId"),
		Search:     r.URL.Query().Get("search"),
	}
	if raw := r.URL.Query().Get("isPaid"); raw != "" {
		isPaid := raw == "true"
		filter.IsPaid = &isPaid
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && offset > 0 {
		filter.Offset = offset
	}

	events, err := h.events.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if events == nil {
		events = []dto.EventSummary{}
	}

	if total, err := h.events.Count(r.Context()); err == nil {
		w.Header().Set("X-Total-Count", strconv.FormatInt(total, 10))
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *Handler) getEvent(w http.ResponseWriter, r *http.Request) {
	detail, err := h.events.GetDetail(r.Context(), chi.URLParam(r, "eventID"), currentUser(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Title == "" || req.Location == "" || req.StartTime.IsZero() {
		writeError(w, http.StatusBadRequest, "title, location and startTime are required")
		return
	}

	event := &entity.Event{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		HostID:      currentUser(r),
		Location:    req.Location,
		StartTime:   req.StartTime,
		Capacity:    req.Capacity,
		Price:       req.Price,
		IsPaid:      req.IsPaid,
		Tags:        pq.StringArray(req.Tags),
		ImageURL:    req.ImageURL,
	}

	event, err := h.events.Create(r.Context(), event)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (h *Handler) updateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	existing, err := h.events.Get(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var req eventRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.CategoryID = req.CategoryID
	existing.Location = req.Location
	existing.StartTime = req.StartTime
	existing.Capacity = req.Capacity
	existing.Price = req.Price
	existing.IsPaid = req.IsPaid
	existing.Tags = pq.StringArray(req.Tags)
	existing.ImageURL = req.ImageURL

	updated, err := h.events.Update(r.Context(), currentUser(r), existing)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	err := h.events.Delete(r.Context(), currentUser(r), chi.URLParam(r, "eventID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "event deleted"})
}
