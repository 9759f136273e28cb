package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherhub/gatherhub/internal/domain/common/errorz"
	"github.com/gatherhub/gatherhub/internal/domain/entity"
	"github.com/gatherhub/gatherhub/internal/domain/utils/calendar"
	"gorm.io/gorm"
)

type calendarEventStorage interface {
	Get(ctx context.Context, id string) (*entity.Event, error)
}

type calendarRsvpStorage interface {
	GetByUser(ctx context.Context, userID string) ([]entity.Rsvp, error)
}

type calendarNotificationStorage interface {
	Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error)
}

// CalendarService exports events as iCalendar data and records sync
// outcomes as notifications. Provider API integration lives outside
// this service.
type CalendarService struct {
	eventStorage        calendarEventStorage
	rsvpStorage         calendarRsvpStorage
	notificationStorage calendarNotificationStorage
}

func NewCalendarService(
	eventStorage calendarEventStorage,
	rsvpStorage calendarRsvpStorage,
	notificationStorage calendarNotificationStorage,
) *CalendarService {
	return &CalendarService{
		eventStorage:        eventStorage,
		rsvpStorage:         rsvpStorage,
		notificationStorage: notificationStorage,
	}
}

// ExportEvent renders a single event as .ics data.
func (s *CalendarService) ExportEvent(ctx context.Context, eventID string) ([]byte, error) {
	event, err := s.eventStorage.Get(ctx, eventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.NotFound
	}
	if err != nil {
		return nil, err
	}
	return calendar.ExportEventToICS(*event)
}

// ExportUserCalendar renders every event the user is attending as one
// .ics feed.
func (s *CalendarService) ExportUserCalendar(ctx context.Context, userID string) ([]byte, error) {
	rsvps, err := s.rsvpStorage.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var events []entity.Event
	for _, rsvp := range rsvps {
		if rsvp.Status != entity.RsvpStatusAttending {
			continue
		}
		if event, err := s.eventStorage.Get(ctx, rsvp.EventID); err == nil {
			events = append(events, *event)
		}
	}
	return calendar.ExportEventsToICS(events)
}

// SyncEvent records a calendar sync outcome for the user.
func (s *CalendarService) SyncEvent(ctx context.Context, eventID string, userID string) error {
	event, err := s.eventStorage.Get(ctx, eventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorz.NotFound
	}
	if err != nil {
		return err
	}

	_, err = s.notificationStorage.Create(ctx, &entity.Notification{
		UserID:  userID,
		Type:    entity.NotificationTypeCalendarSync,
		Title:   "Calendar Synced",
		Message: fmt.Sprintf("%q has been added to your calendar", event.Title),
		EventID: event.ID,
	})
	return err
}
