package service

import (
	"context"

	"github.com/gatherhub/gatherhub/internal/domain/entity"
)

type FavoriteStorage interface {
	Create(ctx context.Context, favorite *entity.Favorite) (*entity.Favorite, error)
	Delete(ctx context.Context, userID string, eventID string) error
	Exists(ctx context.Context, userID string, eventID string) (bool, error)
	GetByUser(ctx context.Context, userID string) ([]entity.Favorite, error)
}

type favoriteEventStorage interface {
	Get(ctx context.Context, id string) (*entity.Event, error)
}

type FavoriteService struct {
	favoriteStorage FavoriteStorage
	eventStorage    favoriteEventStorage
}

func NewFavoriteService(favoriteStorage FavoriteStorage, eventStorage favoriteEventStorage) *FavoriteService {
	return &FavoriteService{
		favoriteStorage: favoriteStorage,
		eventStorage:    eventStorage,
	}
}

// Toggle flips the favorite state and reports the new state.
func (s *FavoriteService) Toggle(ctx context.Context, userID string, eventID string) (bool, error) {
	exists, err := s.favoriteStorage.Exists(ctx, userID, eventID)
	if err != nil {
		return false, err
	}

	if exists {
		return false, s.favoriteStorage.Delete(ctx, userID, eventID)
	}

	_, err = s.favoriteStorage.Create(ctx, &entity.Favorite{
		UserID:  userID,
		EventID: eventID,
	})
	return true, err
}

func (s *FavoriteService) IsFavorited(ctx context.Context, userID string, eventID string) (bool, error) {
	return s.favoriteStorage.Exists(ctx, userID, eventID)
}

// GetEvents returns the events the user has favorited.
func (s *FavoriteService) GetEvents(ctx context.Context, userID string) ([]entity.Event, error) {
	favorites, err := s.favoriteStorage.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	events := make([]entity.Event, 0, len(favorites))
	for _, favorite := range favorites {
		if event, err := s.eventStorage.Get(ctx, favorite.EventID); err == nil {
			events = append(events, *event)
		}
	}
	return events, nil
}
