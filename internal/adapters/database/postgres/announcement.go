package postgres

import (
	"context"

	"github.com/gatherhub/gatherhub/internal/domain/entity"
	"gorm.io/gorm"
)

type AnnouncementStorage struct {
	db *gorm.DB
}

func NewAnnouncementStorage(db *gorm.DB) *AnnouncementStorage {
	return &AnnouncementStorage{
		db: db,
	}
}

func (s *AnnouncementStorage) Create(ctx context.Context, announcement *entity.Announcement) (*entity.Announcement, error) {
	err := s.db.WithContext(ctx).Create(&announcement).Error
	return announcement, err
}

func (s *AnnouncementStorage) GetByEvent(ctx context.Context, eventID string) ([]entity.Announcement, error) {
	var announcements []entity.Announcement
	err := s.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&announcements).Error
	return announcements, err
}
