package service

import (
	"context"
	"testing"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain/entity"
)

func TestDashboardForHost(t *testing.T) {
	events := &fakeEventStorage{}
	rsvps := &fakeRsvpStorage{}
	reviews := &fakeReviewStorage{}
	service := NewDashboardService(events, rsvps, reviews)

	events.events = append(events.events,
		entity.Event{
			ID:        "event-1",
			Title:     "Jazz Evening",
			HostID:    "host-1",
			Capacity:  50,
			StartTime: time.Now().Add(24 * time.Hour),
			Status:    entity.EventStatusUpcoming,
		},
		entity.Event{
			ID:        "event-2",
			Title:     "Jazz Evening Vol. 1",
			HostID:    "host-1",
			Capacity:  50,
			StartTime: time.Now().Add(-7 * 24 * time.Hour),
			Status:    entity.EventStatusCompleted,
		},
		entity.Event{
			ID:        "event-3",
			Title:     "Somebody else's party",
			HostID:    "host-2",
			StartTime: time.Now().Add(24 * time.Hour),
			Status:    entity.EventStatusUpcoming,
		},
	)

	for _, userID := range []string{"user-1", "user-2", "user-3"} {
		rsvps.rsvps = append(rsvps.rsvps, entity.Rsvp{
			EventID: "event-1", UserID: userID, Status: entity.RsvpStatusAttending,
		})
	}
	rsvps.rsvps = append(rsvps.rsvps,
		entity.Rsvp{EventID: "event-1", UserID: "user-4", Status: entity.RsvpStatusMaybe},
		entity.Rsvp{EventID: "event-2", UserID: "user-1", Status: entity.RsvpStatusAttending},
	)

	reviews.reviews = append(reviews.reviews,
		entity.Review{EventID: "event-2", UserID: "user-1", Rating: 4},
		entity.Review{EventID: "event-2", UserID: "user-2", Rating: 2},
	)

	dashboard, err := service.ForHost(context.Background(), "host-1")
	if err != nil {
		t.Fatalf("ForHost: %v", err)
	}

	if dashboard.HostedEvents != 2 {
		t.Errorf("hosted events = %d, want 2", dashboard.HostedEvents)
	}
	if dashboard.UpcomingEvents != 1 {
		t.Errorf("upcoming events = %d, want 1", dashboard.UpcomingEvents)
	}
	if dashboard.TotalAttending != 4 {
		t.Errorf("total attending = %d, want 4", dashboard.TotalAttending)
	}
	if dashboard.AverageRating != 3 {
		t.Errorf("average rating = %v, want 3", dashboard.AverageRating)
	}
	if len(dashboard.Events) != 2 {
		t.Fatalf("event stats = %d, want 2", len(dashboard.Events))
	}

	first := dashboard.Events[0]
	if first.EventID != "event-1" || first.AttendingCount != 3 {
		t.Errorf("event-1 stats = %+v, want 3 attending", first)
	}
}
