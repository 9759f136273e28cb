package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain/common/errorz"
	"github.com/gatherhub/gatherhub/internal/domain/entity"
)

type reviewFixture struct {
	events        *fakeEventStorage
	reviews       *fakeReviewStorage
	notifications *fakeNotificationStorage
	users         *fakeUserStorage
	service       *ReviewService
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()
	f := &reviewFixture{
		events:        &fakeEventStorage{},
		reviews:       &fakeReviewStorage{},
		notifications: &fakeNotificationStorage{},
		users:         &fakeUserStorage{users: map[string]entity.User{}},
	}
	f.service = NewReviewService(
		testLogger(), f.reviews, f.events, f.notifications, f.users)

	f.events.events = append(f.events.events, entity.Event{
		ID:        "event-1",
		Title:     "Pottery Workshop",
		HostID:    "host-1",
		StartTime: time.Now().Add(-24 * time.Hour),
		Status:    entity.EventStatusCompleted,
	})
	return f
}

func TestReviewCreateValidatesRating(t *testing.T) {
	f := newReviewFixture(t)

	for _, rating := range []int{0, -1, 6} {
		if _, err := f.service.Create(context.Background(), "event-1", "user-1", rating, ""); !errors.Is(err, errorz.InvalidRating) {
			t.Errorf("rating %d: err = %v, want %v", rating, err, errorz.InvalidRating)
		}
	}
}

func TestReviewCreateNotifiesHost(t *testing.T) {
	f := newReviewFixture(t)
	f.users.users["user-1"] = entity.User{ID: "user-1", Name: "Dana Brooks"}

	review, err := f.service.Create(context.Background(), "event-1", "user-1", 4, "great clay")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if review.Rating != 4 {
		t.Errorf("rating = %d, want 4", review.Rating)
	}
	if got := f.notifications.count("host-1", entity.NotificationTypeReview); got != 1 {
		t.Fatalf("host notifications = %d, want 1", got)
	}
}

func TestReviewByHostDoesNotSelfNotify(t *testing.T) {
	f := newReviewFixture(t)

	if _, err := f.service.Create(context.Background(), "event-1", "host-1", 5, "went well"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got := f.notifications.count("host-1", entity.NotificationTypeReview); got != 0 {
		t.Fatalf("host notifications = %d, want 0", got)
	}
}

func TestReviewCreateUnknownEvent(t *testing.T) {
	f := newReviewFixture(t)

	if _, err := f.service.Create(context.Background(), "missing", "user-1", 3, ""); !errors.Is(err, errorz.NotFound) {
		t.Fatalf("err = %v, want %v", err, errorz.NotFound)
	}
}
