package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain/dto"
	"github.com/redis/go-redis/v9"
)

// Storage caches enriched event summaries keyed by event id. Entries are
// short lived and invalidated on RSVP writes, so listing endpoints do not
// recount attendees on every request.
type Storage struct {
	redis *redis.Client
}

func NewStorage(client *redis.Client) *Storage {
	return &Storage{
		redis: client,
	}
}

func (s *Storage) Get(ctx context.Context, eventID string) (dto.EventSummary, bool) {
	summaryBytes, err := s.redis.Get(ctx, key(eventID)).Result()
	if err != nil {
		return dto.EventSummary{}, false
	}

	var summary dto.EventSummary
	if err = json.Unmarshal([]byte(summaryBytes), &summary); err != nil {
		return dto.EventSummary{}, false
	}

	return summary, true
}

func (s *Storage) Set(ctx context.Context, summary dto.EventSummary, expiration time.Duration) {
	summaryBytes, _ := json.Marshal(summary)
	s.redis.Set(ctx, key(summary.ID), summaryBytes, expiration)
}

func (s *Storage) Clear(ctx context.Context, eventID string) {
	s.redis.Del(ctx, key(eventID))
}

func key(eventID string) string {
	return fmt.Sprintf("event-summary:%s", eventID)
}
