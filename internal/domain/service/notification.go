package service

import (
	"context"

	"github.com/gatherhub/gatherhub/internal/domain/entity"
)

type NotificationStorage interface {
	Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error)
	GetByUser(ctx context.Context, userID string) ([]entity.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type NotificationService struct {
	notificationStorage NotificationStorage
}

func NewNotificationService(storage NotificationStorage) *NotificationService {
	return &NotificationService{
		notificationStorage: storage,
	}
}

func (s *NotificationService) Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error) {
	return s.notificationStorage.Create(ctx, notification)
}

func (s *NotificationService) GetByUser(ctx context.Context, userID string) ([]entity.Notification, error) {
	return s.notificationStorage.GetByUser(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	return s.notificationStorage.MarkRead(ctx, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.notificationStorage.MarkAllRead(ctx, userID)
}
