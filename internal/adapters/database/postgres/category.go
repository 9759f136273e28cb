package postgres

import (
	"context"

	"github.com/gatherhub/gatherhub/internal/domain/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryStorage struct {
	db *gorm.DB
}

func NewCategoryStorage(db *gorm.DB) *CategoryStorage {
	return &CategoryStorage{
		db: db,
	}
}

func (s *CategoryStorage) Get(ctx context.Context, id string) (*entity.Category, error) {
	var category entity.Category
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	return &category, err
}

func (s *CategoryStorage) GetAll(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	err := s.db.WithContext(ctx).Order("name").Find(&categories).Error
	return categories, err
}

// Seed upserts the fixed category set.
func (s *CategoryStorage) Seed(ctx context.Context, categories []entity.Category) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&categories).Error
}
