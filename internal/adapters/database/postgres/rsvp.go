package postgres

import (
	"context"

	"github.com/gatherhub/gatherhub/internal/domain/entity"
	"gorm.io/gorm"
)

type RsvpStorage struct {
	db *gorm.DB
}

func NewRsvpStorage(db *gorm.DB) *RsvpStorage {
	return &RsvpStorage{
		db: db,
	}
}

func (s *RsvpStorage) Create(ctx context.Context, rsvp *entity.Rsvp) (*entity.Rsvp, error) {
	err := s.db.WithContext(ctx).Create(&rsvp).Error
	return rsvp, err
}

func (s *RsvpStorage) Get(ctx context.Context, eventID string, userID string) (*entity.Rsvp, error) {
	var rsvp entity.Rsvp
	err := s.db.WithContext(ctx).Where("event_id = ? AND user_id = ?", eventID, userID).First(&rsvp).Error
	return &rsvp, err
}

func (s *RsvpStorage) Update(ctx context.Context, rsvp *entity.Rsvp) (*entity.Rsvp, error) {
	err := s.db.WithContext(ctx).Save(&rsvp).Error
	return rsvp, err
}

func (s *RsvpStorage) Delete(ctx context.Context, eventID string, userID string) error {
	return s.db.WithContext(ctx).Where("event_id = ? AND user_id = ?", eventID, userID).Delete(&entity.Rsvp{}).Error
}

func (s *RsvpStorage) GetByEvent(ctx context.Context, eventID string) ([]entity.Rsvp, error) {
	var rsvps []entity.Rsvp
	err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&rsvps).Error
	return rsvps, err
}

func (s *RsvpStorage) GetByUser(ctx context.Context, userID string) ([]entity.Rsvp, error) {
	var rsvps []entity.Rsvp
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&rsvps).Error
	return rsvps, err
}

func (s *RsvpStorage) CountAttending(ctx context.Context, eventID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.Rsvp{}).
		Where("event_id = ? AND status = ?", eventID, entity.RsvpStatusAttending).
		Count(&count).Error
	return count, err
}
