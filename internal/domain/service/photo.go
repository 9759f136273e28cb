package service

import (
	"context"
	"errors"

	"github.com/gatherhub/gatherhub/internal/domain/common/errorz"
	"github.com/gatherhub/gatherhub/internal/domain/entity"
	"gorm.io/gorm"
)

type PhotoStorage interface {
	Create(ctx context.Context, photo *entity.EventPhoto) (*entity.EventPhoto, error)
	GetByEvent(ctx context.Context, eventID string) ([]entity.EventPhoto, error)
}

type photoEventStorage interface {
	Get(ctx context.Context, id string) (*entity.Event, error)
}

// PhotoService manages the user-contributed photo gallery of an event.
type PhotoService struct {
	photoStorage PhotoStorage
	eventStorage photoEventStorage
}

func NewPhotoService(photoStorage PhotoStorage, eventStorage photoEventStorage) *PhotoService {
	return &PhotoService{
		photoStorage: photoStorage,
		eventStorage: eventStorage,
	}
}

func (s *PhotoService) Create(ctx context.Context, eventID string, userID string, url string, caption string) (*entity.EventPhoto, error) {
	_, err := s.eventStorage.Get(ctx, eventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.NotFound
	}
	if err != nil {
		return nil, err
	}

	return s.photoStorage.Create(ctx, &entity.EventPhoto{
		EventID: eventID,
		UserID:  userID,
		URL:     url,
		Caption: caption,
	})
}

func (s *PhotoService) GetByEvent(ctx context.Context, eventID string) ([]entity.EventPhoto, error) {
	return s.photoStorage.GetByEvent(ctx, eventID)
}
