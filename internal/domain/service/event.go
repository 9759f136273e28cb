package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain/common/errorz"
	"github.com/gatherhub/gatherhub/internal/domain/dto"
	"github.com/gatherhub/gatherhub/internal/domain/entity"
	"github.com/gatherhub/gatherhub/pkg/logger/types"
	"gorm.io/gorm"
)

type EventStorage interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Get(ctx context.Context, id string) (*entity.Event, error)
	GetFiltered(ctx context.Context, filter dto.EventFilter) ([]entity.Event, error)
	GetByHost(ctx context.Context, hostID string) ([]entity.Event, error)
	Update(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type CategoryStorage interface {
	Get(ctx context.Context, id string) (*entity.Category, error)
	GetAll(ctx context.Context) ([]entity.Category, error)
}

type eventRsvpStorage interface {
	CountAttending(ctx context.Context, eventID string) (int64, error)
	GetByEvent(ctx context.Context, eventID string) ([]entity.Rsvp, error)
}

type eventUserStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
}

type eventReviewStorage interface {
	GetByEvent(ctx context.Context, eventID string) ([]entity.Review, error)
}

type eventFavoriteStorage interface {
	Exists(ctx context.Context, userID string, eventID string) (bool, error)
}

type eventPhotoStorage interface {
	GetByEvent(ctx context.Context, eventID string) ([]entity.EventPhoto, error)
}

type eventNotificationStorage interface {
	Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error)
}

type eventCache interface {
	Get(ctx context.Context, eventID string) (dto.EventSummary, bool)
	Set(ctx context.Context, summary dto.EventSummary, expiration time.Duration)
	Clear(ctx context.Context, eventID string)
}

const summaryCacheTTL = time.Minute

type EventService struct {
	eventStorage        EventStorage
	categoryStorage     CategoryStorage
	rsvpStorage         eventRsvpStorage
	userStorage         eventUserStorage
	reviewStorage       eventReviewStorage
	favoriteStorage     eventFavoriteStorage
	photoStorage        eventPhotoStorage
	notificationStorage eventNotificationStorage
	cache               eventCache

	logger *types.Logger
}

// NewEventService wires event CRUD and enrichment. A nil cache disables
// summary caching.
func NewEventService(
	logger *types.Logger,
	eventStorage EventStorage,
	categoryStorage CategoryStorage,
	rsvpStorage eventRsvpStorage,
	userStorage eventUserStorage,
	reviewStorage eventReviewStorage,
	favoriteStorage eventFavoriteStorage,
	photoStorage eventPhotoStorage,
	notificationStorage eventNotificationStorage,
	cache eventCache,
) *EventService {
	return &EventService{
		eventStorage:        eventStorage,
		categoryStorage:     categoryStorage,
		rsvpStorage:         rsvpStorage,
		userStorage:         userStorage,
		reviewStorage:       reviewStorage,
		favoriteStorage:     favoriteStorage,
		photoStorage:        photoStorage,
		notificationStorage: notificationStorage,
		cache:               cache,
		logger:              logger,
	}
}

func (s *EventService) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	event.Status = entity.EventStatusUpcoming
	return s.eventStorage.Create(ctx, event)
}

func (s *EventService) Get(ctx context.Context, id string) (*entity.Event, error) {
	event, err := s.eventStorage.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.NotFound
	}
	return event, err
}

func (s *EventService) Update(ctx context.Context, hostID string, event *entity.Event) (*entity.Event, error) {
	existing, err := s.Get(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	if existing.HostID != hostID {
		return nil, errorz.Forbidden
	}

	updated, err := s.eventStorage.Update(ctx, event)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Clear(ctx, event.ID)
	}

	s.notifyAttendees(ctx, updated)
	return updated, nil
}

// notifyAttendees tells every attending user that the host changed the
// event. A failure for one attendee is logged and does not stop the rest.
func (s *EventService) notifyAttendees(ctx context.Context, event *entity.Event) {
	rsvps, err := s.rsvpStorage.GetByEvent(ctx, event.ID)
	if err != nil {
		s.logger.Errorf("failed to get attendees for event update (event_id=%s): %v", event.ID, err)
		return
	}

	for _, rsvp := range rsvps {
		if rsvp.Status != entity.RsvpStatusAttending || rsvp.UserID == event.HostID {
			continue
		}

		notification := &entity.Notification{
			UserID:  rsvp.UserID,
			Type:    entity.NotificationTypeEventUpdate,
			Title:   "Event Update",
			Message: fmt.Sprintf("%s: Event details have been changed", event.Title),
			EventID: event.ID,
		}
		if _, err = s.notificationStorage.Create(ctx, notification); err != nil {
			s.logger.Errorf("failed to notify user %s about event update (event_id=%s): %v", rsvp.UserID, event.ID, err)
		}
	}
}

func (s *EventService) Delete(ctx context.Context, hostID string, id string) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.HostID != hostID {
		return errorz.Forbidden
	}

	if err = s.eventStorage.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Clear(ctx, id)
	}
	return nil
}

// List returns filtered events enriched with category and attending count.
func (s *EventService) List(ctx context.Context, filter dto.EventFilter) ([]dto.EventSummary, error) {
	events, err := s.eventStorage.GetFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.EventSummary, 0, len(events))
	for _, event := range events {
		summary, err := s.summarize(ctx, event)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetDetail builds the full event page payload. userID may be empty for
// anonymous requests; it only affects the favorited flag.
func (s *EventService) GetDetail(ctx context.Context, id string, userID string) (*dto.EventDetail, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	summary, err := s.summarize(ctx, *event)
	if err != nil {
		return nil, err
	}

	detail := &dto.EventDetail{EventSummary: summary}

	if host, err := s.userStorage.Get(ctx, event.HostID); err == nil {
		detail.Host = host
	}

	reviews, err := s.reviewStorage.GetByEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Reviews = reviews
	detail.AverageRating = averageRating(reviews)

	photos, err := s.photoStorage.GetByEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Photos = photos

	if userID != "" {
		favorited, err := s.favoriteStorage.Exists(ctx, userID, id)
		if err == nil {
			detail.Favorited = favorited
		}
	}

	return detail, nil
}

func (s *EventService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryStorage.GetAll(ctx)
}

// Count returns the total number of events, for listing pagination.
func (s *EventService) Count(ctx context.Context) (int64, error) {
	return s.eventStorage.Count(ctx)
}

// summarize enriches one event, consulting the cache first.
func (s *EventService) summarize(ctx context.Context, event entity.Event) (dto.EventSummary, error) {
	if s.cache != nil {
		if summary, ok := s.cache.Get(ctx, event.ID); ok {
			return summary, nil
		}
	}

	attending, err := s.rsvpStorage.CountAttending(ctx, event.ID)
	if err != nil {
		return dto.EventSummary{}, err
	}

	var category *entity.Category
	if c, err := s.categoryStorage.Get(ctx, event.CategoryID); err == nil {
		category = c
	}

	summary := dto.NewEventSummary(event, category, attending)
	if s.cache != nil {
		s.cache.Set(ctx, summary, summaryCacheTTL)
	}
	return summary, nil
}

func averageRating(reviews []entity.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for _, review := range reviews {
		sum += review.Rating
	}
	return float64(sum) / float64(len(reviews))
}
