package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherhub/gatherhub/internal/domain/common/errorz"
	"github.com/gatherhub/gatherhub/internal/domain/dto"
	"github.com/gatherhub/gatherhub/internal/domain/entity"
	"github.com/gatherhub/gatherhub/pkg/logger/types"
	"gorm.io/gorm"
)

type RsvpStorage interface {
	Create(ctx context.Context, rsvp *entity.Rsvp) (*entity.Rsvp, error)
	Get(ctx context.Context, eventID string, userID string) (*entity.Rsvp, error)
	Update(ctx context.Context, rsvp *entity.Rsvp) (*entity.Rsvp, error)
	Delete(ctx context.Context, eventID string, userID string) error
	GetByEvent(ctx context.Context, eventID string) ([]entity.Rsvp, error)
	GetByUser(ctx context.Context, userID string) ([]entity.Rsvp, error)
	CountAttending(ctx context.Context, eventID string) (int64, error)
}

type rsvpEventStorage interface {
	Get(ctx context.Context, id string) (*entity.Event, error)
}

type rsvpNotificationStorage interface {
	Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error)
}

type rsvpUserStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
}

type rsvpCache interface {
	Clear(ctx context.Context, eventID string)
}

type RsvpService struct {
	rsvpStorage         RsvpStorage
	eventStorage        rsvpEventStorage
	notificationStorage rsvpNotificationStorage
	userStorage         rsvpUserStorage
	cache               rsvpCache

	logger *types.Logger
}

func NewRsvpService(
	logger *types.Logger,
	rsvpStorage RsvpStorage,
	eventStorage rsvpEventStorage,
	notificationStorage rsvpNotificationStorage,
	userStorage rsvpUserStorage,
	cache rsvpCache,
) *RsvpService {
	return &RsvpService{
		rsvpStorage:         rsvpStorage,
		eventStorage:        eventStorage,
		notificationStorage: notificationStorage,
		userStorage:         userStorage,
		cache:               cache,
		logger:              logger,
	}
}

// Set creates or updates a user's RSVP. A new "attending" RSVP notifies
// the event host, and an attending RSVP against a full event is rejected.
func (s *RsvpService) Set(ctx context.Context, eventID string, userID string, status entity.RsvpStatus) (*entity.Rsvp, error) {
	if !status.Valid() {
		return nil, errorz.InvalidRsvpStatus
	}

	event, err := s.eventStorage.Get(ctx, eventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.NotFound
	}
	if err != nil {
		return nil, err
	}

	existing, err := s.rsvpStorage.Get(ctx, eventID, userID)
	switch {
	case err == nil:
		if status == entity.RsvpStatusAttending && existing.Status != entity.RsvpStatusAttending {
			if err = s.checkCapacity(ctx, event); err != nil {
				return nil, err
			}
		}
		existing.Status = status
		existing, err = s.rsvpStorage.Update(ctx, existing)
		if err != nil {
			return nil, err
		}
		s.clearCache(ctx, eventID)
		return existing, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		if status == entity.RsvpStatusAttending {
			if err = s.checkCapacity(ctx, event); err != nil {
				return nil, err
			}
		}
		rsvp := &entity.Rsvp{
			EventID: eventID,
			UserID:  userID,
			Status:  status,
		}
		rsvp, err = s.rsvpStorage.Create(ctx, rsvp)
		if err != nil {
			return nil, err
		}
		s.clearCache(ctx, eventID)

		if status == entity.RsvpStatusAttending && event.HostID != userID {
			s.notifyHost(ctx, event, userID)
		}
		return rsvp, nil

	default:
		return nil, err
	}
}

func (s *RsvpService) Get(ctx context.Context, eventID string, userID string) (*entity.Rsvp, error) {
	rsvp, err := s.rsvpStorage.Get(ctx, eventID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.NotFound
	}
	return rsvp, err
}

func (s *RsvpService) Delete(ctx context.Context, eventID string, userID string) error {
	if err := s.rsvpStorage.Delete(ctx, eventID, userID); err != nil {
		return err
	}
	s.clearCache(ctx, eventID)
	return nil
}

func (s *RsvpService) GetByEvent(ctx context.Context, eventID string) ([]entity.Rsvp, error) {
	return s.rsvpStorage.GetByEvent(ctx, eventID)
}

// GetByUser returns the user's RSVPs paired with their events.
func (s *RsvpService) GetByUser(ctx context.Context, userID string) ([]dto.UserRsvp, error) {
	rsvps, err := s.rsvpStorage.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	userRsvps := make([]dto.UserRsvp, 0, len(rsvps))
	for _, rsvp := range rsvps {
		userRsvp := dto.UserRsvp{Rsvp: rsvp}
		if event, err := s.eventStorage.Get(ctx, rsvp.EventID); err == nil {
			summary := dto.NewEventSummary(*event, nil, 0)
			userRsvp.Event = &summary
		}
		userRsvps = append(userRsvps, userRsvp)
	}
	return userRsvps, nil
}

func (s *RsvpService) checkCapacity(ctx context.Context, event *entity.Event) error {
	attending, err := s.rsvpStorage.CountAttending(ctx, event.ID)
	if err != nil {
		return err
	}
	if event.IsFull(attending) {
		return errorz.EventFull
	}
	return nil
}

// notifyHost informs the host of a new attending RSVP. A failure here is
// logged, never surfaced to the RSVP caller.
func (s *RsvpService) notifyHost(ctx context.Context, event *entity.Event, userID string) {
	name := "Someone"
	if user, err := s.userStorage.Get(ctx, userID); err == nil && user.Name != "" {
		name = user.Name
	}

	notification := &entity.Notification{
		UserID:  event.HostID,
		Type:    entity.NotificationTypeRsvpUpdate,
		Title:   "New RSVP",
		Message: fmt.Sprintf("%s is attending your event %q", name, event.Title),
		EventID: event.ID,
	}
	if _, err := s.notificationStorage.Create(ctx, notification); err != nil {
		s.logger.Errorf("failed to notify host %s about rsvp (event_id=%s): %v", event.HostID, event.ID, err)
	}
}

func (s *RsvpService) clearCache(ctx context.Context, eventID string) {
	if s.cache != nil {
		s.cache.Clear(ctx, eventID)
	}
}
