package postgres

import (
	"context"

	"github.com/gatherhub/gatherhub/internal/domain/entity"
	"gorm.io/gorm"
)

type FavoriteStorage struct {
	db *gorm.DB
}

func NewFavoriteStorage(db *gorm.DB) *FavoriteStorage {
	return &FavoriteStorage{
		db: db,
	}
}

func (s *FavoriteStorage) Create(ctx context.Context, favorite *entity.Favorite) (*entity.Favorite, error) {
	err := s.db.WithContext(ctx).Create(&favorite).Error
	return favorite, err
}

func (s *FavoriteStorage) Delete(ctx context.Context, userID string, eventID string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&entity.Favorite{}).Error
}

func (s *FavoriteStorage) Exists(ctx context.Context, userID string, eventID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.Favorite{}).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Count(&count).Error
	return count > 0, err
}

func (s *FavoriteStorage) GetByUser(ctx context.Context, userID string) ([]entity.Favorite, error) {
	var favorites []entity.Favorite
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}
