package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain/common/errorz"
	"github.com/gatherhub/gatherhub/internal/domain/entity"
)

func TestCalendarExportUserCalendar(t *testing.T) {
	events := &fakeEventStorage{}
	rsvps := &fakeRsvpStorage{}
	notifications := &fakeNotificationStorage{}
	service := NewCalendarService(events, rsvps, notifications)

	events.events = append(events.events,
		entity.Event{ID: "event-1", Title: "Morning Yoga", StartTime: time.Now().Add(24 * time.Hour), Status: entity.EventStatusUpcoming},
		entity.Event{ID: "event-2", Title: "Book Club", StartTime: time.Now().Add(48 * time.Hour), Status: entity.EventStatusUpcoming},
	)
	rsvps.rsvps = append(rsvps.rsvps,
		entity.Rsvp{EventID: "event-1", UserID: "user-1", Status: entity.RsvpStatusAttending},
		entity.Rsvp{EventID: "event-2", UserID: "user-1", Status: entity.RsvpStatusMaybe},
	)

	data, err := service.ExportUserCalendar(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ExportUserCalendar: %v", err)
	}
	ics := string(data)

	if !strings.Contains(ics, "SUMMARY:Morning Yoga") {
		t.Error("attending event missing from feed")
	}
	if strings.Contains(ics, "SUMMARY:Book Club") {
		t.Error("maybe event should not appear in feed")
	}
}

func TestCalendarSyncEvent(t *testing.T) {
	events := &fakeEventStorage{}
	rsvps := &fakeRsvpStorage{}
	notifications := &fakeNotificationStorage{}
	service := NewCalendarService(events, rsvps, notifications)

	events.events = append(events.events, entity.Event{
		ID: "event-1", Title: "Morning Yoga", StartTime: time.Now().Add(24 * time.Hour),
	})

	if err := service.SyncEvent(context.Background(), "event-1", "user-1"); err != nil {
		t.Fatalf("SyncEvent: %v", err)
	}
	if got := notifications.count("user-1", entity.NotificationTypeCalendarSync); got != 1 {
		t.Fatalf("sync notifications = %d, want 1", got)
	}

	if err := service.SyncEvent(context.Background(), "missing", "user-1"); !errors.Is(err, errorz.NotFound) {
		t.Fatalf("err = %v, want %v", err, errorz.NotFound)
	}
}

func TestFavoriteToggle(t *testing.T) {
	favorites := &fakeFavoriteStorage{favorites: map[string]bool{}}
	events := &fakeEventStorage{}
	service := NewFavoriteService(favorites, events)

	events.events = append(events.events, entity.Event{ID: "event-1", Title: "Morning Yoga"})

	on, err := service.Toggle(context.Background(), "user-1", "event-1")
	if err != nil {
		t.Fatalf("first Toggle: %v", err)
	}
	if !on {
		t.Fatal("first toggle = false, want true")
	}

	list, err := service.GetEvents(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetEvents: %v", err)
	}
	if len(list) != 1 || list[0].ID != "event-1" {
		t.Fatalf("favorites = %+v, want [event-1]", list)
	}

	off, err := service.Toggle(context.Background(), "user-1", "event-1")
	if err != nil {
		t.Fatalf("second Toggle: %v", err)
	}
	if off {
		t.Fatal("second toggle = true, want false")
	}
}
