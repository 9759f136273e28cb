package service

import (
	"context"

	"github.com/gatherhub/gatherhub/internal/domain/dto"
	"github.com/gatherhub/gatherhub/internal/domain/entity"
)

type dashboardEventStorage interface {
	GetByHost(ctx context.Context, hostID string) ([]entity.Event, error)
}

type dashboardRsvpStorage interface {
	CountAttending(ctx context.Context, eventID string) (int64, error)
}

type dashboardReviewStorage interface {
	GetByEvent(ctx context.Context, eventID string) ([]entity.Review, error)
}

// DashboardService computes host analytics across all hosted events.
type DashboardService struct {
	eventStorage  dashboardEventStorage
	rsvpStorage   dashboardRsvpStorage
	reviewStorage dashboardReviewStorage
}

func NewDashboardService(
	eventStorage dashboardEventStorage,
	rsvpStorage dashboardRsvpStorage,
	reviewStorage dashboardReviewStorage,
) *DashboardService {
	return &DashboardService{
		eventStorage:  eventStorage,
		rsvpStorage:   rsvpStorage,
		reviewStorage: reviewStorage,
	}
}

func (s *DashboardService) ForHost(ctx context.Context, hostID string) (*dto.HostDashboard, error) {
	events, err := s.eventStorage.GetByHost(ctx, hostID)
	if err != nil {
		return nil, err
	}

	dashboard := &dto.HostDashboard{
		HostedEvents: len(events),
		Events:       make([]dto.HostEventStats, 0, len(events)),
	}

	var ratingSum float64
	var ratedEvents int

	for _, event := range events {
		attending, err := s.rsvpStorage.CountAttending(ctx, event.ID)
		if err != nil {
			return nil, err
		}

		reviews, err := s.reviewStorage.GetByEvent(ctx, event.ID)
		if err != nil {
			return nil, err
		}
		rating := averageRating(reviews)

		if event.Status == entity.EventStatusUpcoming {
			dashboard.UpcomingEvents++
		}
		dashboard.TotalAttending += attending
		if len(reviews) > 0 {
			ratingSum += rating
			ratedEvents++
		}

		dashboard.Events = append(dashboard.Events, dto.HostEventStats{
			EventID:        event.ID,
			Title:          event.Title,
			StartTime:      event.StartTime,
			Status:         event.Status,
			Capacity:       event.Capacity,
			AttendingCount: attending,
			AverageRating:  rating,
		})
	}

	if ratedEvents > 0 {
		dashboard.AverageRating = ratingSum / float64(ratedEvents)
	}
	return dashboard, nil
}
