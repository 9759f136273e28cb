package postgres

import (
	"context"

	"github.com/gatherhub/gatherhub/internal/domain/entity"
	"gorm.io/gorm"
)

type PhotoStorage struct {
	db *gorm.DB
}

func NewPhotoStorage(db *gorm.DB) *PhotoStorage {
	return &PhotoStorage{
		db: db,
	}
}

func (s *PhotoStorage) Create(ctx context.Context, photo *entity.EventPhoto) (*entity.EventPhoto, error) {
	err := s.db.WithContext(ctx).Create(&photo).Error
	return photo, err
}

func (s *PhotoStorage) GetByEvent(ctx context.Context, eventID string) ([]entity.EventPhoto, error) {
	var photos []entity.EventPhoto
	err := s.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&photos).Error
	return photos, err
}
