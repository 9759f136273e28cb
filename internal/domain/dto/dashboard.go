package dto

import (
	"time"

	"github.com/gatherhub/gatherhub/internal/domain/entity"
)

// HostEventStats is the per-event row of the host dashboard.
type HostEventStats struct {
	EventID        string             `json:"eventId"`
	Title          string             `json:"title"`
	StartTime      time.Time          `json:"startTime"`
	Status         entity.EventStatus `json:"status"`
	Capacity       int                `json:"capacity"`
	AttendingCount int64              `json:"attendingCount"`
	AverageRating  float64            `json:"averageRating"`
}

// HostDashboard aggregates analytics across all events hosted by one user.
type HostDashboard struct {
	HostedEvents   int              `json:"hostedEvents"`
	UpcomingEvents int              `json:"upcomingEvents"`
	TotalAttending int64            `json:"totalAttending"`
	AverageRating  float64          `json:"averageRating"`
	Events         []HostEventStats `json:"events"`
}
