package postgres

import (
	"context"

	"github.com/gatherhub/gatherhub/internal/domain/entity"
	"gorm.io/gorm"
)

type ReviewStorage struct {
	db *gorm.DB
}

func NewReviewStorage(db *gorm.DB) *ReviewStorage {
	return &ReviewStorage{
		db: db,
	}
}

func (s *ReviewStorage) Create(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	err := s.db.WithContext(ctx).Create(&review).Error
	return review, err
}

func (s *ReviewStorage) GetByEvent(ctx context.Context, eventID string) ([]entity.Review, error) {
	var reviews []entity.Review
	err := s.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
