package service

import (
	"context"
	"errors"

	"github.com/gatherhub/gatherhub/internal/domain/common/errorz"
	"github.com/gatherhub/gatherhub/internal/domain/entity"
	"gorm.io/gorm"
)

type UserStorage interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
}

type UserService struct {
	userStorage UserStorage
}

func NewUserService(storage UserStorage) *UserService {
	return &UserService{
		userStorage: storage,
	}
}

func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.userStorage.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.NotFound
	}
	return user, err
}

// GetOrCreate finds a user by email, creating the record on first sight.
func (s *UserService) GetOrCreate(ctx context.Context, user entity.User) (*entity.User, error) {
	existing, err := s.userStorage.GetByEmail(ctx, user.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return s.userStorage.Create(ctx, &user)
}

func (s *UserService) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	return s.userStorage.Update(ctx, user)
}
