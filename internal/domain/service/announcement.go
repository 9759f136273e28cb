package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherhub/gatherhub/internal/domain/common/errorz"
	"github.com/gatherhub/gatherhub/internal/domain/entity"
	"github.com/gatherhub/gatherhub/pkg/logger/types"
	"gorm.io/gorm"
)

type AnnouncementStorage interface {
	Create(ctx context.Context, announcement *entity.Announcement) (*entity.Announcement, error)
	GetByEvent(ctx context.Context, eventID string) ([]entity.Announcement, error)
}

type announcementEventStorage interface {
	Get(ctx context.Context, id string) (*entity.Event, error)
}

type announcementRsvpStorage interface {
	GetByEvent(ctx context.Context, eventID string) ([]entity.Rsvp, error)
}

type announcementNotificationStorage interface {
	Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error)
}

type AnnouncementService struct {
	announcementStorage AnnouncementStorage
	eventStorage        announcementEventStorage
	rsvpStorage         announcementRsvpStorage
	notificationStorage announcementNotificationStorage

	logger *types.Logger
}

func NewAnnouncementService(
	logger *types.Logger,
	announcementStorage AnnouncementStorage,
	eventStorage announcementEventStorage,
	rsvpStorage announcementRsvpStorage,
	notificationStorage announcementNotificationStorage,
) *AnnouncementService {
	return &AnnouncementService{
		announcementStorage: announcementStorage,
		eventStorage:        eventStorage,
		rsvpStorage:         rsvpStorage,
		notificationStorage: notificationStorage,
		logger:              logger,
	}
}

// Send stores a host announcement and fans out a notification to every
// attending user. Only the event host may send; a notification failure
// for one attendee does not stop delivery to the rest.
func (s *AnnouncementService) Send(ctx context.Context, eventID string, hostID string, subject string, message string) (*entity.Announcement, int, error) {
	event, err := s.eventStorage.Get(ctx, eventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, errorz.NotFound
	}
	if err != nil {
		return nil, 0, err
	}
	if event.HostID != hostID {
		return nil, 0, errorz.Forbidden
	}

	announcement, err := s.announcementStorage.Create(ctx, &entity.Announcement{
		EventID: eventID,
		HostID:  hostID,
		Subject: subject,
		Message: message,
	})
	if err != nil {
		return nil, 0, err
	}

	rsvps, err := s.rsvpStorage.GetByEvent(ctx, eventID)
	if err != nil {
		return announcement, 0, err
	}

	recipients := 0
	for _, rsvp := range rsvps {
		if rsvp.Status != entity.RsvpStatusAttending {
			continue
		}

		notification := &entity.Notification{
			UserID:  rsvp.UserID,
			Type:    entity.NotificationTypeAnnouncement,
			Title:   fmt.Sprintf("Announcement: %s", subject),
			Message: message,
			EventID: eventID,
		}
		if _, err = s.notificationStorage.Create(ctx, notification); err != nil {
			s.logger.Errorf("failed to deliver announcement to user %s (event_id=%s): %v", rsvp.UserID, eventID, err)
			continue
		}
		recipients++
	}

	return announcement, recipients, nil
}

func (s *AnnouncementService) GetByEvent(ctx context.Context, eventID string) ([]entity.Announcement, error) {
	return s.announcementStorage.GetByEvent(ctx, eventID)
}
