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

type ReviewStorage interface {
	Create(ctx context.Context, review *entity.Review) (*entity.Review, error)
	GetByEvent(ctx context.Context, eventID string) ([]entity.Review, error)
}

type reviewEventStorage interface {
	Get(ctx context.Context, id string) (*entity.Event, error)
}

type reviewNotificationStorage interface {
	Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error)
}

type reviewUserStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
}

type ReviewService struct {
	reviewStorage       ReviewStorage
	eventStorage        reviewEventStorage
	notificationStorage reviewNotificationStorage
	userStorage         reviewUserStorage

	logger *types.Logger
}

func NewReviewService(
	logger *types.Logger,
	reviewStorage ReviewStorage,
	eventStorage reviewEventStorage,
	notificationStorage reviewNotificationStorage,
	userStorage reviewUserStorage,
) *ReviewService {
	return &ReviewService{
		reviewStorage:       reviewStorage,
		eventStorage:        eventStorage,
		notificationStorage: notificationStorage,
		userStorage:         userStorage,
		logger:              logger,
	}
}

// Create stores a review and notifies the event host, unless the reviewer
// is the host.
func (s *ReviewService) Create(ctx context.Context, eventID string, userID string, rating int, comment string) (*entity.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, errorz.InvalidRating
	}

	event, err := s.eventStorage.Get(ctx, eventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.NotFound
	}
	if err != nil {
		return nil, err
	}

	review, err := s.reviewStorage.Create(ctx, &entity.Review{
		EventID: eventID,
		UserID:  userID,
		Rating:  rating,
		Comment: comment,
	})
	if err != nil {
		return nil, err
	}

	if event.HostID != userID {
		name := "Someone"
		if user, err := s.userStorage.Get(ctx, userID); err == nil && user.Name != "" {
			name = user.Name
		}

		notification := &entity.Notification{
			UserID:  event.HostID,
			Type:    entity.NotificationTypeReview,
			Title:   "New Review",
			Message: fmt.Sprintf("%s left a review for your event %q", name, event.Title),
			EventID: eventID,
		}
		if _, err = s.notificationStorage.Create(ctx, notification); err != nil {
			s.logger.Errorf("failed to notify host %s about review (event_id=%s): %v", event.HostID, eventID, err)
		}
	}

	return review, nil
}

func (s *ReviewService) GetByEvent(ctx context.Context, eventID string) ([]entity.Review, error) {
	return s.reviewStorage.GetByEvent(ctx, eventID)
}
