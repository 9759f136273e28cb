package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain/common/errorz"
	"github.com/gatherhub/gatherhub/internal/domain/entity"
)

type rsvpFixture struct {
	events        *fakeEventStorage
	rsvps         *fakeRsvpStorage
	notifications *fakeNotificationStorage
	users         *fakeUserStorage
	cache         *fakeCache
	service       *RsvpService
}

func newRsvpFixture(t *testing.T) *rsvpFixture {
	t.Helper()
	f := &rsvpFixture{
		events:        &fakeEventStorage{},
		rsvps:         &fakeRsvpStorage{},
		notifications: &fakeNotificationStorage{},
		users:         &fakeUserStorage{users: map[string]entity.User{}},
		cache:         &fakeCache{},
	}
	f.service = NewRsvpService(
		testLogger(), f.rsvps, f.events, f.notifications, f.users, f.cache)
	return f
}

func (f *rsvpFixture) addEvent(id string, hostID string, capacity int) {
	f.events.events = append(f.events.events, entity.Event{
		ID:        id,
		Title:     "Morning Run",
		HostID:    hostID,
		Capacity:  capacity,
		StartTime: time.Now().Add(48 * time.Hour),
		Status:    entity.EventStatusUpcoming,
	})
}

func TestRsvpSetRejectsInvalidStatus(t *testing.T) {
	f := newRsvpFixture(t)
	f.addEvent("event-1", "host-1", 0)

	_, err := f.service.Set(context.Background(), "event-1", "user-1", entity.RsvpStatus("going"))
	if !errors.Is(err, errorz.InvalidRsvpStatus) {
		t.Fatalf("err = %v, want %v", err, errorz.InvalidRsvpStatus)
	}
}

func TestRsvpSetUnknownEvent(t *testing.T) {
	f := newRsvpFixture(t)

	_, err := f.service.Set(context.Background(), "missing", "user-1", entity.RsvpStatusAttending)
	if !errors.Is(err, errorz.NotFound) {
		t.Fatalf("err = %v, want %v", err, errorz.NotFound)
	}
}

func TestRsvpSetNotifiesHost(t *testing.T) {
	f := newRsvpFixture(t)
	f.addEvent("event-1", "host-1", 0)
	f.users.users["user-1"] = entity.User{ID: "user-1", Name: "Sam Carter"}

	rsvp, err := f.service.Set(context.Background(), "event-1", "user-1", entity.RsvpStatusAttending)
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if rsvp.Status != entity.RsvpStatusAttending {
		t.Errorf("status = %q, want attending", rsvp.Status)
	}

	if got := f.notifications.count("host-1", entity.NotificationTypeRsvpUpdate); got != 1 {
		t.Fatalf("host notifications = %d, want 1", got)
	}
	if len(f.cache.cleared) == 0 || f.cache.cleared[0] != "event-1" {
		t.Errorf("cache cleared = %v, want [event-1]", f.cache.cleared)
	}
}

func TestRsvpSetByHostDoesNotSelfNotify(t *testing.T) {
	f := newRsvpFixture(t)
	f.addEvent("event-1", "host-1", 0)

	if _, err := f.service.Set(context.Background(), "event-1", "host-1", entity.RsvpStatusAttending); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := f.notifications.count("host-1", entity.NotificationTypeRsvpUpdate); got != 0 {
		t.Fatalf("host notifications = %d, want 0", got)
	}
}

func TestRsvpSetFullEvent(t *testing.T) {
	f := newRsvpFixture(t)
	f.addEvent("event-1", "host-1", 1)
	if _, err := f.service.Set(context.Background(), "event-1", "user-1", entity.RsvpStatusAttending); err != nil {
		t.Fatalf("first Set: %v", err)
	}

	_, err := f.service.Set(context.Background(), "event-1", "user-2", entity.RsvpStatusAttending)
	if !errors.Is(err, errorz.EventFull) {
		t.Fatalf("err = %v, want %v", err, errorz.EventFull)
	}

	// A "maybe" against a full event is still allowed.
	if _, err := f.service.Set(context.Background(), "event-1", "user-2", entity.RsvpStatusMaybe); err != nil {
		t.Fatalf("maybe Set: %v", err)
	}
}

func TestRsvpSetUpdatesExisting(t *testing.T) {
	f := newRsvpFixture(t)
	f.addEvent("event-1", "host-1", 0)

	if _, err := f.service.Set(context.Background(), "event-1", "user-1", entity.RsvpStatusMaybe); err != nil {
		t.Fatalf("first Set: %v", err)
	}
	rsvp, err := f.service.Set(context.Background(), "event-1", "user-1", entity.RsvpStatusAttending)
	if err != nil {
		t.Fatalf("second Set: %v", err)
	}
	if rsvp.Status != entity.RsvpStatusAttending {
		t.Errorf("status = %q, want attending", rsvp.Status)
	}

	stored, err := f.service.Get(context.Background(), "event-1", "user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Status != entity.RsvpStatusAttending {
		t.Errorf("stored status = %q, want attending", stored.Status)
	}
	if len(f.rsvps.rsvps) != 1 {
		t.Errorf("rsvp rows = %d, want 1", len(f.rsvps.rsvps))
	}
}

func TestRsvpUpgradeToAttendingChecksCapacity(t *testing.T) {
	f := newRsvpFixture(t)
	f.addEvent("event-1", "host-1", 1)

	if _, err := f.service.Set(context.Background(), "event-1", "user-1", entity.RsvpStatusAttending); err != nil {
		t.Fatalf("first Set: %v", err)
	}
	if _, err := f.service.Set(context.Background(), "event-1", "user-2", entity.RsvpStatusMaybe); err != nil {
		t.Fatalf("maybe Set: %v", err)
	}

	_, err := f.service.Set(context.Background(), "event-1", "user-2", entity.RsvpStatusAttending)
	if !errors.Is(err, errorz.EventFull) {
		t.Fatalf("err = %v, want %v", err, errorz.EventFull)
	}
}

func TestRsvpDelete(t *testing.T) {
	f := newRsvpFixture(t)
	f.addEvent("event-1", "host-1", 0)

	if _, err := f.service.Set(context.Background(), "event-1", "user-1", entity.RsvpStatusAttending); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := f.service.Delete(context.Background(), "event-1", "user-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := f.service.Get(context.Background(), "event-1", "user-1"); !errors.Is(err, errorz.NotFound) {
		t.Fatalf("Get after delete: err = %v, want %v", err, errorz.NotFound)
	}
}
