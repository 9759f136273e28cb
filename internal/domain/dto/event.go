package dto

import "github.com/gatherhub/gatherhub/internal/domain/entity"

// EventFilter narrows event listings. Zero values mean "no constraint".
type EventFilter struct {
	CategoryID string
	Status     entity.EventStatus
	HostID     string
	IsPaid     *bool
	Search     string
	Limit      int
	Offset     int
}

// EventSummary is an event enriched with its category and attending count,
// as returned by listing endpoints.
type EventSummary struct {
	entity.Event
	Category       *entity.Category `json:"category,omitempty"`
	AttendingCount int64            `json:"attendingCount"`
}

func NewEventSummary(event entity.Event, category *entity.Category, attending int64) EventSummary {
	return EventSummary{
		Event:          event,
		Category:       category,
		AttendingCount: attending,
	}
}

// EventDetail is the full event page payload.
type EventDetail struct {
	EventSummary
	Host          *entity.User        `json:"host,omitempty"`
	Reviews       []entity.Review     `json:"reviews"`
	Photos        []entity.EventPhoto `json:"photos"`
	AverageRating float64             `json:"averageRating"`
	Favorited     bool                `json:"favorited"`
}

// UserRsvp pairs a user's RSVP with the event it belongs to.
type UserRsvp struct {
	entity.Rsvp
	Event *EventSummary `json:"event,omitempty"`
}
